package kinematics

// GetFromCursor retrieves the component value for the entity at the cursor position
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor) *T {
	return c.Get(
		cursor.entityIndex-1,
		cursor.currentArchetype.table,
	)
}

// GetFromCursorSafe reports whether the cursor's archetype holds the component
// and, if so, returns a pointer to the value
func (c AccessibleComponent[T]) GetFromCursorSafe(cursor *Cursor) (bool, *T) {
	if !c.CheckCursor(cursor) {
		return false, nil
	}
	return true, c.GetFromCursor(cursor)
}

// CheckCursor determines if the component exists in the archetype at the cursor position
func (c AccessibleComponent[T]) CheckCursor(cursor *Cursor) bool {
	return c.Accessor.Check(cursor.currentArchetype.table)
}

// GetFromEntity retrieves the component value for the specified entity
func (c AccessibleComponent[T]) GetFromEntity(entity Entity) *T {
	return c.Get(entity.Index(), entity.Table())
}

// GetFromEntitySafe is GetFromEntity for entities that may lack the component
// or may have been destroyed
func (c AccessibleComponent[T]) GetFromEntitySafe(entity Entity) (bool, *T) {
	tbl := entity.Table()
	if tbl == nil || !c.Accessor.Check(tbl) {
		return false, nil
	}
	return true, c.Get(entity.Index(), tbl)
}
