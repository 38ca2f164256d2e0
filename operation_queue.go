package kinematics

import (
	"errors"
	"fmt"

	"github.com/TheBitDrifter/table"
)

type operationType int

const (
	opCreate operationType = iota
	opDestroy
	opAddComponent
	opRemoveComponent
	opCancelled
)

type operation struct {
	typ      operationType
	amount   int
	comps    []Component
	entities []Entity
}

// opKey identifies the pending change of one component on one entity.
type opKey struct {
	entity    Entity
	component table.ElementTypeID
}

// opQueue defers structural changes made while the storage is locked.
// A flush applies creates, then component changes, then destroys.
type opQueue struct {
	createOps      []operation
	componentOps   []operation
	destroyOps     []operation
	pendingDestroy map[Entity]struct{}
	pendingMods    map[opKey]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[Entity]struct{}),
		pendingMods:    make(map[opKey]int),
	}
}

func (q *opQueue) len() int {
	return len(q.createOps) + len(q.componentOps) + len(q.destroyOps)
}

func (q *opQueue) enqueueOp(op operation) {
	switch op.typ {
	case opCreate:
		q.createOps = append(q.createOps, op)
	case opDestroy:
		q.destroyOps = append(q.destroyOps, op)
	case opAddComponent, opRemoveComponent:
		q.componentOps = append(q.componentOps, op)
	}
}

func (q *opQueue) enqueueDestroy(entities []Entity) {
	var fresh []Entity
	for _, en := range entities {
		if en == nil {
			continue
		}
		if _, queued := q.pendingDestroy[en]; queued {
			continue
		}
		q.pendingDestroy[en] = struct{}{}
		fresh = append(fresh, en)

		// changes to an entity that is about to go away are dropped
		for key, idx := range q.pendingMods {
			if key.entity == en {
				q.componentOps[idx].typ = opCancelled
				delete(q.pendingMods, key)
			}
		}
	}
	if len(fresh) > 0 {
		q.enqueueOp(operation{typ: opDestroy, entities: fresh})
	}
}

// enqueueComponentOp queues a change of c on en. Repeating a pending change
// is a no-op and reversing it cancels both.
func (q *opQueue) enqueueComponentOp(typ operationType, en Entity, c Component) {
	if _, doomed := q.pendingDestroy[en]; doomed {
		return
	}
	key := opKey{entity: en, component: c.ID()}
	if idx, pending := q.pendingMods[key]; pending {
		if q.componentOps[idx].typ != typ {
			q.componentOps[idx].typ = opCancelled
			delete(q.pendingMods, key)
		}
		return
	}
	q.pendingMods[key] = len(q.componentOps)
	q.enqueueOp(operation{
		typ:      typ,
		entities: []Entity{en},
		comps:    []Component{c},
	})
}

func (q *opQueue) reset() {
	q.createOps = q.createOps[:0]
	q.componentOps = q.componentOps[:0]
	q.destroyOps = q.destroyOps[:0]
	clear(q.pendingDestroy)
	clear(q.pendingMods)
}

// processOperationQueue applies every queued change. A failing change does
// not stop the ones after it; all failures are returned together.
func (sto *storage) processOperationQueue() error {
	if sto.opQueue.len() == 0 {
		return nil
	}
	defer sto.opQueue.reset()

	var errs []error
	for _, op := range sto.opQueue.createOps {
		if _, err := sto.NewEntities(op.amount, op.comps...); err != nil {
			errs = append(errs, fmt.Errorf("failed to process queued entity creation: %w", err))
		}
	}

	for _, op := range sto.opQueue.componentOps {
		en := op.entities[0]
		if !sto.live(en) {
			continue
		}
		switch op.typ {
		case opAddComponent:
			if err := en.AddComponent(op.comps[0]); err != nil {
				errs = append(errs, fmt.Errorf("failed to add queued component: %w", err))
			}
		case opRemoveComponent:
			if err := en.RemoveComponent(op.comps[0]); err != nil {
				errs = append(errs, fmt.Errorf("failed to remove queued component: %w", err))
			}
		}
	}

	for _, op := range sto.opQueue.destroyOps {
		if err := sto.DestroyEntities(op.entities...); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete queued entries: %w", err))
		}
	}
	return errors.Join(errs...)
}
