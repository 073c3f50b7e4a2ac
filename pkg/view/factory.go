package view

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/aleksaelezovic/ontoview/pkg/rdf"
)

// Factory resolves nodes as one view type.
//
// Wrap fails with a *ConversionError exactly when CanWrap is false.
// CreateInstance never fails: it reports "no match" with ok == false.
// CreateInGraph fails with a *CreationError exactly when CanCreateInGraph is false.
type Factory interface {
	Type() *Type
	CanWrap(node rdf.Term, m Model) bool
	Wrap(node rdf.Term, m Model) (Object, error)
	CreateInstance(node rdf.Term, m Model) (obj Object, ok bool)
	CanCreateInGraph(node rdf.Term, m Model) bool
	CreateInGraph(node rdf.Term, m Model) (Object, error)
	Iterator(m Model) iter.Seq[Object]
}

// SimpleFactory binds one Locator, one Predicate and one Instantiator.
type SimpleFactory struct {
	typ       *Type
	locator   Locator
	predicate Predicate
	maker     Instantiator
}

var _ Factory = (*SimpleFactory)(nil)

// NewFactory creates a factory for t. Every component is required.
func NewFactory(t *Type, l Locator, p Predicate, i Instantiator) (*SimpleFactory, error) {
	switch {
	case t == nil:
		return nil, illegalArgument("factory: nil type")
	case l == nil:
		return nil, illegalArgument("factory %s: nil locator", t)
	case p == nil:
		return nil, illegalArgument("factory %s: nil predicate", t)
	case i == nil:
		return nil, illegalArgument("factory %s: nil instantiator", t)
	}
	return &SimpleFactory{typ: t, locator: l, predicate: p, maker: i}, nil
}

// Type returns the view type the factory produces.
func (f *SimpleFactory) Type() *Type { return f.typ }

// Predicate returns the shape test of the factory.
func (f *SimpleFactory) Predicate() Predicate { return f.predicate }

// CanWrap reports whether node passes the shape test.
func (f *SimpleFactory) CanWrap(node rdf.Term, m Model) bool {
	return f.predicate.Test(node, m)
}

// Wrap returns the facade of node, or a *ConversionError when the shape test fails.
func (f *SimpleFactory) Wrap(node rdf.Term, m Model) (Object, error) {
	if !f.CanWrap(node, m) {
		return nil, &ConversionError{Node: node, Type: f.typ}
	}
	obj, _ := f.CreateInstance(node, m)
	return obj, nil
}

// CreateInstance builds the facade without validating the node shape.
func (f *SimpleFactory) CreateInstance(node rdf.Term, m Model) (Object, bool) {
	return f.maker.NewInstance(node, m), true
}

// CanCreateInGraph reports whether the instantiator accepts node for insertion.
func (f *SimpleFactory) CanCreateInGraph(node rdf.Term, m Model) bool {
	return f.maker.CanInsert(node, m)
}

// CreateInGraph performs exactly one insertion followed by one instantiation.
// A failing insert is not rolled back.
func (f *SimpleFactory) CreateInGraph(node rdf.Term, m Model) (Object, error) {
	if !f.CanCreateInGraph(node, m) {
		return nil, &CreationError{Node: node, Type: f.typ}
	}
	if err := f.maker.Insert(node, m); err != nil {
		return nil, errors.Wrapf(err, "create %s as %s", node, f.typ)
	}
	obj, _ := f.CreateInstance(node, m)
	return obj, nil
}

// Iterator lists every node found by the locator that passes the predicate.
func (f *SimpleFactory) Iterator(m Model) iter.Seq[Object] {
	nodes := Restrict(f.locator, f.predicate).Iterate(m)
	return func(yield func(Object) bool) {
		for n := range nodes {
			if !yield(f.maker.NewInstance(n, m)) {
				return
			}
		}
	}
}
