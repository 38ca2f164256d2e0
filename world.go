package kinematics

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/TheBitDrifter/table"
)

var _ MotionSource = &World{}

const (
	processingLock uint32 = 1

	defaultDirectoryCapacity = 1024
)

type registeredProcessor struct {
	processor Processor
	priority  int
}

// World owns a storage and the processors that run over it each tick.
type World struct {
	storage     *storage
	processors  []registeredProcessor
	directory   *Directory
	motionQuery QueryNode
	logger      Logger
	ticks       uint64
}

type WorldOption func(*World)

func WithLogger(l Logger) WorldOption {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

func WithSchema(schema table.Schema) WorldOption {
	return func(w *World) {
		w.storage = newStorage(schema)
	}
}

func WithDirectoryCapacity(capacity int) WorldOption {
	return func(w *World) {
		w.directory = newDirectory(capacity)
	}
}

func NewWorld(opts ...WorldOption) *World {
	w := &World{
		logger:    Config.logger,
		directory: newDirectory(defaultDirectoryCapacity),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.storage == nil {
		w.storage = newStorage(table.Factory.NewSchema())
	}
	w.motionQuery = newQuery().And(Position, Velocity)
	w.storage.addDestroyHook(func(en Entity) {
		if name, ok := w.directory.UnregisterEntity(en); ok {
			w.logger.Debug("named entity destroyed", "name", name, "id", en.ID())
		}
	})
	return w
}

func (w *World) Storage() Storage {
	return w.storage
}

// Ticks is the number of completed Process calls.
func (w *World) Ticks() uint64 {
	return w.ticks
}

func (w *World) CreateEntity(components ...Component) (Entity, error) {
	entities, err := w.storage.NewEntities(1, components...)
	if err != nil {
		return nil, err
	}
	return entities[0], nil
}

// Spawn creates a body at pos. A nil vel leaves the body without a
// Velocity2D, so kinematics never moves it.
func (w *World) Spawn(pos Position2D, vel *Velocity2D) (Entity, error) {
	comps := []Component{Position}
	if vel != nil {
		comps = append(comps, Velocity)
	}
	en, err := w.CreateEntity(comps...)
	if err != nil {
		return nil, err
	}
	*Position.GetFromEntity(en) = pos
	if vel != nil {
		*Velocity.GetFromEntity(en) = *vel
	}
	return en, nil
}

func (w *World) CreateNamedEntity(name string, components ...Component) (Entity, error) {
	if _, taken := w.directory.Lookup(name); taken {
		return nil, NameTakenError{Name: name}
	}
	en, err := w.CreateEntity(components...)
	if err != nil {
		return nil, err
	}
	if _, err := w.directory.Register(name, en); err != nil {
		return nil, errors.Join(err, w.storage.DestroyEntities(en))
	}
	return en, nil
}

// EntityByName returns a named entity if it is still alive.
func (w *World) EntityByName(name string) (Entity, bool) {
	en, ok := w.directory.Lookup(name)
	if !ok || !w.storage.live(en) {
		return nil, false
	}
	return en, true
}

func (w *World) Names() []string {
	return w.directory.Names()
}

// DestroyEntity removes en, deferring the removal to the end of the tick
// when called from a processor.
func (w *World) DestroyEntity(en Entity) error {
	return w.storage.EnqueueDestroyEntities(en)
}

// AddProcessor registers p. Higher priorities run first and equal priorities
// run in registration order. Processors implementing MotionBinder are bound
// to the world; one already bound to another source is refused.
func (w *World) AddProcessor(p Processor, priority int) error {
	if b, ok := p.(MotionBinder); ok {
		if src := b.Source(); src != nil && src != MotionSource(w) {
			return ProcessorBoundError{Processor: p}
		}
		b.Bind(w)
	}
	w.processors = append(w.processors, registeredProcessor{processor: p, priority: priority})
	slices.SortStableFunc(w.processors, func(a, b registeredProcessor) int {
		return cmp.Compare(b.priority, a.priority)
	})
	w.logger.Debug("processor added", "type", fmt.Sprintf("%T", p), "priority", priority)
	return nil
}

// RemoveProcessor unregisters p and reports whether it was registered. A
// MotionBinder bound to the world is unbound.
func (w *World) RemoveProcessor(p Processor) bool {
	before := len(w.processors)
	w.processors = slices.DeleteFunc(w.processors, func(rp registeredProcessor) bool {
		return rp.processor == p
	})
	removed := len(w.processors) != before
	if b, ok := p.(MotionBinder); ok && removed && b.Source() == MotionSource(w) {
		b.Bind(nil)
	}
	return removed
}

// Process runs every processor once. Structural changes requested while
// processing are applied after the last processor returns.
func (w *World) Process() error {
	w.storage.AddLock(processingLock)
	for _, rp := range w.processors {
		rp.processor.Process()
	}
	pending := w.storage.opQueue.len()
	if err := w.storage.RemoveLock(processingLock); err != nil {
		w.logger.Error("deferred operations failed", "tick", w.ticks, "err", err)
		return fmt.Errorf("tick %d: %w", w.ticks, err)
	}
	w.ticks++
	w.logger.Debug("tick", "tick", w.ticks, "processors", len(w.processors), "deferred", pending, "entities", w.storage.Len())
	return nil
}

// Motions yields the position and velocity of every moving entity.
func (w *World) Motions() iter.Seq2[*Position2D, Velocity2D] {
	return func(yield func(*Position2D, Velocity2D) bool) {
		cursor := newCursor(w.motionQuery, w.storage)
		for cursor.Next() {
			if !yield(Position.GetFromCursor(cursor), *Velocity.GetFromCursor(cursor)) {
				cursor.Reset()
				return
			}
		}
	}
}
