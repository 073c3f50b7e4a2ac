package view

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/aleksaelezovic/ontoview/pkg/rdf"
)

// As resolves node as type t using the registry of m.
// The error matches ErrUnsupportedType when t is not registered and
// ErrConversion when the node does not have the shape of t.
func As(node rdf.Term, m Model, t *Type) (Object, error) {
	f, err := m.Registry().Lookup(t)
	if err != nil {
		return nil, err
	}
	return f.Wrap(node, m)
}

// Can reports whether node can be resolved as t. Unregistered types never match.
func Can(node rdf.Term, m Model, t *Type) bool {
	if node == nil {
		return false
	}
	f, err := m.Registry().Lookup(t)
	if err != nil {
		return false
	}
	return f.CanWrap(node, m)
}

// AsType is As with the result asserted to a concrete facade type.
func AsType[T Object](node rdf.Term, m Model, t *Type) (T, error) {
	var zero T
	obj, err := As(node, m, t)
	if err != nil {
		return zero, err
	}
	res, ok := obj.(T)
	if !ok {
		return zero, errors.Wrapf(ErrIllegalState, "factory for %s produced %T", t, obj)
	}
	return res, nil
}

// Create adds the declaring edges for node as t and returns its facade.
func Create(node rdf.Term, m Model, t *Type) (Object, error) {
	f, err := m.Registry().Lookup(t)
	if err != nil {
		return nil, err
	}
	return f.CreateInGraph(node, m)
}

// Objects lists every node of m resolvable as t. An unregistered type yields nothing.
func Objects(m Model, t *Type) iter.Seq[Object] {
	f, err := m.Registry().Lookup(t)
	if err != nil {
		return func(func(Object) bool) {}
	}
	return f.Iterator(m)
}

// ObjectsAs is Objects narrowed to a concrete facade type.
func ObjectsAs[T Object](m Model, t *Type) iter.Seq[T] {
	return func(yield func(T) bool) {
		for obj := range Objects(m, t) {
			v, ok := obj.(T)
			if ok && !yield(v) {
				return
			}
		}
	}
}
