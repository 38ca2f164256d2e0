package kinematics

import "github.com/TheBitDrifter/table"

type factory struct{}

var Factory factory

func (f factory) NewStorage(schema table.Schema) Storage {
	return newStorage(schema)
}

func (f factory) NewQuery() Query {
	return newQuery()
}

// NewCursor panics if sto was not built by this package.
func (f factory) NewCursor(query QueryNode, sto Storage) *Cursor {
	return newCursor(query, sto.(*storage))
}

func (f factory) NewDirectory(capacity int) *Directory {
	return newDirectory(capacity)
}

func FactoryNewComponent[T any]() AccessibleComponent[T] {
	iden := table.FactoryNewElementType[T]()
	return AccessibleComponent[T]{
		Component: iden,
		Accessor:  table.FactoryNewAccessor[T](iden),
	}
}
