package kinematics

import (
	"fmt"

	"github.com/TheBitDrifter/table"
	iter_util "github.com/TheBitDrifter/util/iter"
)

var _ Entity = &entity{}

// entity is a stable handle. Its ID never changes, while the table entry
// behind it is replaced whenever the entity migrates between archetypes.
type entity struct {
	sto           *storage
	id            table.EntryID
	entry         table.EntryID
	relationships relationships
}

type relationships struct {
	parent    Entity
	onDestroy EntityDestroyCallback
}

func (e *entity) ID() table.EntryID {
	return e.id
}

// resolve returns the current table entry, or false once the entity is destroyed.
func (e *entity) resolve() (table.Entry, bool) {
	if !e.sto.live(e) {
		return nil, false
	}
	en, err := e.sto.entryIndex.Entry(int(e.entry) - 1)
	if err != nil {
		return nil, false
	}
	return en, true
}

func (e *entity) Valid() bool {
	_, ok := e.resolve()
	return ok
}

// Index is the entity's current row, or -1 once destroyed.
func (e *entity) Index() int {
	en, ok := e.resolve()
	if !ok {
		return -1
	}
	return en.Index()
}

// Table is the entity's current archetype table, or nil once destroyed.
func (e *entity) Table() table.Table {
	en, ok := e.resolve()
	if !ok {
		return nil
	}
	return en.Table()
}

func (e *entity) Recycled() int {
	en, ok := e.resolve()
	if !ok {
		return 0
	}
	return en.Recycled()
}

// SetParent records parent and installs callback as the parent's destroy callback.
func (e *entity) SetParent(parent Entity, callback EntityDestroyCallback) error {
	if e.relationships.parent != nil {
		return EntityRelationError{Child: e, Parent: e.relationships.parent}
	}
	if parent == nil || Entity(e) == parent {
		return EntityRelationError{Child: e, Parent: parent}
	}
	if err := parent.SetDestroyCallback(callback); err != nil {
		return err
	}
	e.relationships.parent = parent
	return nil
}

func (e *entity) Parent() Entity {
	return e.relationships.parent
}

// SetDestroyCallback replaces the callback run after the entity is destroyed.
func (e *entity) SetDestroyCallback(callback EntityDestroyCallback) error {
	e.relationships.onDestroy = callback
	return nil
}

func (e *entity) Components() []Component {
	tbl := e.Table()
	if tbl == nil {
		return nil
	}
	elementTypes := iter_util.Collect(tbl.ElementTypes())
	comps := make([]Component, len(elementTypes))
	for i, et := range elementTypes {
		comps[i] = et
	}
	return comps
}

func (e *entity) AddComponent(c Component) error {
	if e.sto.Locked() {
		return LockedStorageError{}
	}
	tbl := e.Table()
	if tbl == nil {
		return EntityNotFoundError{ID: int(e.id)}
	}
	if tbl.Contains(c) {
		return ComponentExistsError{Component: c}
	}
	return e.migrate(append(e.Components(), c))
}

func (e *entity) RemoveComponent(c Component) error {
	if e.sto.Locked() {
		return LockedStorageError{}
	}
	tbl := e.Table()
	if tbl == nil {
		return EntityNotFoundError{ID: int(e.id)}
	}
	if !tbl.Contains(c) {
		return ComponentNotFoundError{Component: c}
	}
	current := e.Components()
	remaining := make([]Component, 0, len(current))
	removeBit := e.sto.RowIndexFor(c)
	for _, comp := range current {
		if e.sto.RowIndexFor(comp) != removeBit {
			remaining = append(remaining, comp)
		}
	}
	if len(remaining) == 0 {
		return EmptyEntityError{}
	}
	return e.migrate(remaining)
}

// migrate moves the entity into the archetype for comps, carrying shared
// values over. The table appends the moved row to the destination, so the
// new entry is read back from the destination's previous length.
func (e *entity) migrate(comps []Component) error {
	dest, err := e.sto.archetypeFor(comps)
	if err != nil {
		return fmt.Errorf("failed to get/create archetype: %w", err)
	}
	row := dest.table.Length()
	if err := e.Table().TransferEntries(dest.table, e.Index()); err != nil {
		return fmt.Errorf("failed to transfer entity: %w", err)
	}
	moved, err := dest.table.Entry(row)
	if err != nil {
		return fmt.Errorf("failed to locate transferred entity: %w", err)
	}
	e.entry = moved.ID()
	return nil
}

func (e *entity) EnqueueAddComponent(c Component) error {
	if !e.sto.Locked() {
		return e.AddComponent(c)
	}
	e.sto.opQueue.enqueueComponentOp(opAddComponent, e, c)
	return nil
}

func (e *entity) EnqueueRemoveComponent(c Component) error {
	if !e.sto.Locked() {
		return e.RemoveComponent(c)
	}
	e.sto.opQueue.enqueueComponentOp(opRemoveComponent, e, c)
	return nil
}
