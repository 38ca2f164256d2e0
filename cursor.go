package kinematics

import (
	"iter"

	"github.com/TheBitDrifter/table"
)

var _ iCursor = &Cursor{}

func newCursor(query QueryNode, sto *storage) *Cursor {
	return &Cursor{
		query:   query,
		storage: sto,
	}
}

// Next advances to the next matching entity. It returns false, and resets
// the cursor, once every matching archetype has been visited.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	for c.archetypeIndex < len(c.matchedArchetypes) {
		if c.entityIndex < c.remaining {
			c.entityIndex++
			return true
		}
		c.archetypeIndex++
		c.entityIndex = 0
		c.load()
	}
	c.Reset()
	return false
}

// Entities yields the row index and table of every matching entity.
func (c *Cursor) Entities() iter.Seq2[int, table.Table] {
	return func(yield func(int, table.Table) bool) {
		defer c.Reset()
		for c.Next() {
			if !yield(c.entityIndex-1, c.currentArchetype.table) {
				return
			}
		}
	}
}

func (c *Cursor) initialize() {
	c.matchedArchetypes = c.matchedArchetypes[:0]
	for _, arch := range c.storage.archetypes.asSlice {
		if c.query.Evaluate(arch, c.storage) {
			c.matchedArchetypes = append(c.matchedArchetypes, arch)
		}
	}
	c.archetypeIndex = 0
	c.entityIndex = 0
	c.load()
	c.initialized = true
}

func (c *Cursor) load() {
	if c.archetypeIndex >= len(c.matchedArchetypes) {
		c.currentArchetype = archetype{}
		c.remaining = 0
		return
	}
	c.currentArchetype = c.matchedArchetypes[c.archetypeIndex]
	c.remaining = c.currentArchetype.table.Length()
}

func (c *Cursor) Reset() {
	c.archetypeIndex = 0
	c.entityIndex = 0
	c.remaining = 0
	c.matchedArchetypes = c.matchedArchetypes[:0]
	c.initialized = false
}

func (c *Cursor) CurrentEntity() (int, table.Table) {
	return c.entityIndex - 1, c.currentArchetype.table
}

func (c *Cursor) RemainingInArchetype() int {
	return c.remaining - c.entityIndex
}

// TotalMatched counts the entities the query currently matches without
// moving the cursor.
func (c *Cursor) TotalMatched() int {
	total := 0
	for _, arch := range c.storage.archetypes.asSlice {
		if c.query.Evaluate(arch, c.storage) {
			total += arch.table.Length()
		}
	}
	return total
}
