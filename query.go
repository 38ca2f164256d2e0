package kinematics

import (
	"github.com/TheBitDrifter/mask"
)

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

var (
	_ Query     = &query{}
	_ QueryNode = &compositeNode{}
)

type compositeNode struct {
	op         Operation
	children   []QueryNode
	components []Component
}

type query struct {
	root QueryNode
}

func newQuery() Query {
	return &query{}
}

func nodeMask(components []Component, storage Storage) mask.Mask {
	var m mask.Mask
	for _, comp := range components {
		m.Mark(storage.RowIndexFor(comp))
	}
	return m
}

func archetypeMask(arch Archetype) mask.Mask {
	if a, ok := arch.(archetype); ok {
		return a.mask
	}
	return arch.Table().(mask.Maskable).Mask()
}

func (n *compositeNode) Evaluate(arch Archetype, storage Storage) bool {
	own := nodeMask(n.components, storage)
	archeMask := archetypeMask(arch)

	switch n.op {
	case OpAnd:
		if !archeMask.ContainsAll(own) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(arch, storage) {
				return false
			}
		}
		return true

	case OpOr:
		if len(n.components) > 0 && archeMask.ContainsAny(own) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(arch, storage) {
				return true
			}
		}
		return false

	case OpNot:
		for _, child := range n.children {
			if child.Evaluate(arch, storage) {
				return false
			}
		}
		return len(n.components) == 0 || archeMask.ContainsNone(own)
	}
	return false
}

// And matches archetypes holding every listed component and satisfying every child node.
func (q *query) And(items ...interface{}) QueryNode {
	return q.node(OpAnd, items)
}

// Or matches archetypes holding any listed component or satisfying any child node.
func (q *query) Or(items ...interface{}) QueryNode {
	return q.node(OpOr, items)
}

// Not matches archetypes holding none of the listed components and satisfying no child node.
func (q *query) Not(items ...interface{}) QueryNode {
	return q.node(OpNot, items)
}

// node builds a composite node; the first node built becomes the query root.
func (q *query) node(op Operation, items []interface{}) QueryNode {
	n := &compositeNode{op: op}
	for _, item := range items {
		switch v := item.(type) {
		case Component:
			n.components = append(n.components, v)
		case []Component:
			n.components = append(n.components, v...)
		case QueryNode:
			n.children = append(n.children, v)
		}
	}
	if q.root == nil {
		q.root = n
	}
	return n
}

func (q *query) Evaluate(arch Archetype, storage Storage) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(arch, storage)
}
