package kinematics

import "fmt"

type LockedStorageError struct{}

func (e LockedStorageError) Error() string {
	return "storage is currently locked"
}

type LockNotHeldError struct {
	Bit uint32
}

func (e LockNotHeldError) Error() string {
	return fmt.Sprintf("storage lock %d is not held", e.Bit)
}

type EmptyEntityError struct{}

func (e EmptyEntityError) Error() string {
	return "entities need at least one component"
}

type EntityNotFoundError struct {
	ID int
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %d does not exist", e.ID)
}

type ComponentExistsError struct {
	Component Component
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component already exists on entity: %T", e.Component)
}

type ComponentNotFoundError struct {
	Component Component
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity: %T", e.Component)
}

type DirectoryFullError struct {
	Capacity int
}

func (e DirectoryFullError) Error() string {
	return fmt.Sprintf("directory at maximum capacity (%d)", e.Capacity)
}

type NameTakenError struct {
	Name string
}

func (e NameTakenError) Error() string {
	return fmt.Sprintf("name %q is already registered", e.Name)
}

type EntityRelationError struct {
	Child, Parent Entity
}

func (e EntityRelationError) Error() string {
	if e.Parent == nil || e.Parent == e.Child {
		return fmt.Sprintf("entity %d cannot be its own or a nil parent", e.Child.ID())
	}
	return fmt.Sprintf("entity %d already has parent %d", e.Child.ID(), e.Parent.ID())
}

type ProcessorBoundError struct {
	Processor Processor
}

func (e ProcessorBoundError) Error() string {
	return fmt.Sprintf("processor %T is already bound to another motion source", e.Processor)
}
