package kinematics

import (
	"errors"
	"fmt"
	"slices"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

var _ Storage = &storage{}

type storage struct {
	locks      mask.Mask
	schema     table.Schema
	entryIndex table.EntryIndex
	archetypes *archetypes
	opQueue    opQueue
	entities   map[table.EntryID]*entity
	lastID     table.EntryID
	onDestroy  []EntityDestroyCallback
}

func newStorage(schema table.Schema) *storage {
	return &storage{
		schema:     schema,
		entryIndex: table.Factory.NewEntryIndex(),
		archetypes: newArchetypes(),
		opQueue:    newOpQueue(),
		entities:   make(map[table.EntryID]*entity),
	}
}

func (sto *storage) Entity(id int) (Entity, error) {
	en, ok := sto.entities[table.EntryID(id)]
	if !ok {
		return nil, EntityNotFoundError{ID: id}
	}
	return en, nil
}

func (sto *storage) Len() int {
	return len(sto.entities)
}

func (sto *storage) maskOf(components []Component) mask.Mask {
	var m mask.Mask
	for _, c := range components {
		m.Mark(sto.RowIndexFor(c))
	}
	return m
}

// NewOrExistingArchetype returns the archetype for the component set,
// creating it on first use. Component order does not matter.
func (sto *storage) NewOrExistingArchetype(components ...Component) (Archetype, error) {
	return sto.archetypeFor(components)
}

func (sto *storage) archetypeFor(components []Component) (archetype, error) {
	m := sto.maskOf(components)
	if found, ok := sto.archetypes.find(m); ok {
		return found, nil
	}
	created, err := sto.archetypes.create(sto, m, components)
	if err != nil {
		return archetype{}, fmt.Errorf("failed to create archetype: %w", err)
	}
	return created, nil
}

func (sto *storage) Archetypes() []Archetype {
	result := make([]Archetype, len(sto.archetypes.asSlice))
	for i, arch := range sto.archetypes.asSlice {
		result[i] = arch
	}
	return result
}

func (sto *storage) NewEntities(n int, components ...Component) ([]Entity, error) {
	if sto.Locked() {
		return nil, LockedStorageError{}
	}
	if len(components) == 0 {
		return nil, EmptyEntityError{}
	}
	arch, err := sto.archetypeFor(components)
	if err != nil {
		return nil, err
	}
	entries, err := arch.table.NewEntries(n)
	if err != nil {
		return nil, err
	}
	entities := make([]Entity, len(entries))
	for i, entry := range entries {
		sto.lastID++
		en := &entity{sto: sto, id: sto.lastID, entry: entry.ID()}
		sto.entities[en.id] = en
		entities[i] = en
	}
	return entities, nil
}

func (sto *storage) EnqueueNewEntities(n int, components ...Component) error {
	if !sto.Locked() {
		_, err := sto.NewEntities(n, components...)
		if err != nil {
			return fmt.Errorf("failed to create entities directly: %w", err)
		}
		return nil
	}
	sto.opQueue.enqueueOp(operation{
		typ:    opCreate,
		amount: n,
		comps:  components,
	})
	return nil
}

// DestroyEntities removes every live entity in entities. Destroy callbacks
// run once all rows are gone, so a callback may destroy further entities.
func (sto *storage) DestroyEntities(entities ...Entity) error {
	if sto.Locked() {
		return LockedStorageError{}
	}
	tableGroups := make(map[table.Table][]*entity)
	var order []*entity
	for _, en := range entities {
		if !sto.live(en) {
			continue
		}
		e := sto.entities[en.ID()]
		if slices.Contains(order, e) {
			continue
		}
		order = append(order, e)
		tbl := e.Table()
		tableGroups[tbl] = append(tableGroups[tbl], e)
	}

	var errs []error
	for tbl, group := range tableGroups {
		rows := make([]int, len(group))
		for i, e := range group {
			rows[i] = e.Index()
		}
		if _, err := tbl.DeleteEntries(rows...); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete entries: %w", err))
			continue
		}
		for _, e := range group {
			delete(sto.entities, e.id)
		}
	}

	for _, e := range order {
		if sto.live(e) {
			continue
		}
		for _, hook := range sto.onDestroy {
			hook(e)
		}
		if cb := e.relationships.onDestroy; cb != nil {
			cb(e)
		}
	}
	return errors.Join(errs...)
}

// addDestroyHook registers hook to run for every destroyed entity, before
// the entity's own destroy callback.
func (sto *storage) addDestroyHook(hook EntityDestroyCallback) {
	sto.onDestroy = append(sto.onDestroy, hook)
}

func (sto *storage) EnqueueDestroyEntities(entities ...Entity) error {
	if !sto.Locked() {
		return sto.DestroyEntities(entities...)
	}
	sto.opQueue.enqueueDestroy(entities)
	return nil
}

// live reports whether en is still the entity registered under its ID.
func (sto *storage) live(en Entity) bool {
	if en == nil {
		return false
	}
	current, ok := sto.entities[en.ID()]
	return ok && Entity(current) == en
}

func (sto *storage) RowIndexFor(c Component) uint32 {
	sto.schema.Register(c)
	return sto.schema.RowIndexFor(c)
}

func (sto *storage) Locked() bool {
	return sto.locks != mask.Mask{}
}

// AddLock marks bit as a lock holder. Structural changes fail, or are queued
// by the Enqueue variants, until every holder releases.
func (sto *storage) AddLock(bit uint32) {
	sto.locks.Mark(bit)
}

// RemoveLock releases bit. Releasing the last holder flushes the operation queue.
func (sto *storage) RemoveLock(bit uint32) error {
	var held mask.Mask
	held.Mark(bit)
	if !sto.locks.ContainsAll(held) {
		return LockNotHeldError{Bit: bit}
	}
	sto.locks.Unmark(bit)
	if sto.Locked() {
		return nil
	}
	return sto.processOperationQueue()
}
