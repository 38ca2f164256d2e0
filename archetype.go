package kinematics

import (
	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

var _ Archetype = archetype{}

type archetypeID uint32

// archetype is one table per distinct component set, keyed by its mask
type archetype struct {
	id    archetypeID
	mask  mask.Mask
	table table.Table
}

type archetypes struct {
	nextID  archetypeID
	asSlice []archetype
	byMask  map[mask.Mask]archetypeID
}

func newArchetypes() *archetypes {
	return &archetypes{
		nextID: 1,
		byMask: make(map[mask.Mask]archetypeID),
	}
}

func (a *archetypes) find(m mask.Mask) (archetype, bool) {
	id, ok := a.byMask[m]
	if !ok {
		return archetype{}, false
	}
	return a.asSlice[id-1], true
}

func (a *archetypes) create(sto *storage, m mask.Mask, components []Component) (archetype, error) {
	elementTypes := make([]table.ElementType, len(components))
	for i, comp := range components {
		elementTypes[i] = comp
	}
	tbl, err := table.NewTableBuilder().
		WithSchema(sto.schema).
		WithEntryIndex(sto.entryIndex).
		WithElementTypes(elementTypes...).
		WithEvents(Config.tableEvents).
		Build()
	if err != nil {
		return archetype{}, err
	}
	created := archetype{id: a.nextID, mask: m, table: tbl}
	a.asSlice = append(a.asSlice, created)
	a.byMask[m] = created.id
	a.nextID++
	return created, nil
}

func (a archetype) ID() uint32 {
	return uint32(a.id)
}

func (a archetype) Table() table.Table {
	return a.table
}
