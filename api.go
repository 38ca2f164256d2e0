package kinematics

import (
	"iter"

	"github.com/TheBitDrifter/table"
)

type Storage interface {
	Entity(id int) (Entity, error)
	NewEntities(int, ...Component) ([]Entity, error)
	EnqueueNewEntities(int, ...Component) error
	DestroyEntities(...Entity) error
	EnqueueDestroyEntities(...Entity) error
	NewOrExistingArchetype(...Component) (Archetype, error)
	Archetypes() []Archetype
	RowIndexFor(Component) uint32
	Len() int
	Locked() bool
	AddLock(bit uint32)
	RemoveLock(bit uint32) error
}

// EntityDestroyCallback runs after an entity has been destroyed.
type EntityDestroyCallback func(Entity)

// Entity is a stable handle to a row in some archetype table. Index and
// Table follow the entity as it migrates between archetypes.
type Entity interface {
	table.Entry
	Valid() bool
	SetParent(parent Entity, callback EntityDestroyCallback) error
	Parent() Entity
	SetDestroyCallback(EntityDestroyCallback) error
	Components() []Component
	AddComponent(Component) error
	RemoveComponent(Component) error
	EnqueueAddComponent(Component) error
	EnqueueRemoveComponent(Component) error
}

type Archetype interface {
	ID() uint32
	Table() table.Table
}

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

type QueryNode interface {
	Evaluate(archetype Archetype, storage Storage) bool
}

// Processor is invoked once per world tick.
type Processor interface {
	Process()
}

// MotionSource yields every entity that carries both a Position2D and a
// Velocity2D. Writes through the yielded position are visible to the
// source afterwards; the velocity is a copy.
type MotionSource interface {
	Motions() iter.Seq2[*Position2D, Velocity2D]
}

// MotionBinder is implemented by processors that read motion pairs.
// World.AddProcessor binds them to itself and RemoveProcessor unbinds them.
type MotionBinder interface {
	Bind(MotionSource)
	Source() MotionSource
}

type Logger interface {
	Info(msg string, keyValues ...any)
	Warn(msg string, keyValues ...any)
	Error(msg string, keyValues ...any)
	Debug(msg string, keyValues ...any)
}

type iCursor interface {
	Entities() iter.Seq2[int, table.Table]
	Next() bool
}

// Warning: internal Dependencies abound!
type Cursor struct {
	query   QueryNode
	storage *storage

	currentArchetype archetype
	archetypeIndex   int
	entityIndex      int
	remaining        int

	initialized       bool
	matchedArchetypes []archetype
}

type AccessibleComponent[T any] struct {
	Component
	table.Accessor[T] // concrete.
}
