package kinematics

import "slices"

// Directory is a bounded name to entity registry. Names stay in
// registration order; unregistering frees the slot and the name.
type Directory struct {
	names       []string
	entities    []Entity
	indices     map[string]int
	maxCapacity int
}

func newDirectory(capacity int) *Directory {
	return &Directory{
		indices:     make(map[string]int),
		maxCapacity: capacity,
	}
}

// Register stores en under name and returns its position in Names.
func (d *Directory) Register(name string, en Entity) (int, error) {
	if _, taken := d.indices[name]; taken {
		return -1, NameTakenError{Name: name}
	}
	if len(d.indices) >= d.maxCapacity {
		return -1, DirectoryFullError{Capacity: d.maxCapacity}
	}
	idx := len(d.entities)
	d.indices[name] = idx
	d.names = append(d.names, name)
	d.entities = append(d.entities, en)
	return idx, nil
}

func (d *Directory) Lookup(name string) (Entity, bool) {
	idx, ok := d.indices[name]
	if !ok {
		return nil, false
	}
	return d.entities[idx], true
}

// Unregister drops name and reports whether it was registered.
func (d *Directory) Unregister(name string) bool {
	idx, ok := d.indices[name]
	if !ok {
		return false
	}
	d.names = slices.Delete(d.names, idx, idx+1)
	d.entities = slices.Delete(d.entities, idx, idx+1)
	delete(d.indices, name)
	for i := idx; i < len(d.names); i++ {
		d.indices[d.names[i]] = i
	}
	return true
}

// UnregisterEntity drops the name en is registered under, if any.
func (d *Directory) UnregisterEntity(en Entity) (string, bool) {
	idx := slices.Index(d.entities, en)
	if idx < 0 {
		return "", false
	}
	name := d.names[idx]
	return name, d.Unregister(name)
}

// Names returns registered names in registration order.
func (d *Directory) Names() []string {
	return slices.Clone(d.names)
}

func (d *Directory) Len() int {
	return len(d.entities)
}

func (d *Directory) Clear() {
	d.names = d.names[:0]
	d.entities = d.entities[:0]
	clear(d.indices)
}
