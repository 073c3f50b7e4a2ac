package view

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/aleksaelezovic/ontoview/pkg/rdf"
)

// Composite resolves a node with the first of its sub-factories that accepts it.
//
// Nested composites are inlined at construction, so a composite built from
// [A, Composite(B, C)] holds [A, B, C]. The optional fitting predicate is a fast
// reject evaluated before any sub-factory; the optional locator replaces the union
// of the sub-factories' own iterators.
type Composite struct {
	typ       *Type
	locator   Locator
	fitting   Predicate
	factories []Factory
}

var _ Factory = (*Composite)(nil)

// NewComposite creates a composite factory for t. locator and fitting may be nil.
func NewComposite(t *Type, locator Locator, fitting Predicate, factories ...Factory) (*Composite, error) {
	if t == nil {
		return nil, illegalArgument("composite: nil type")
	}
	flat := make([]Factory, 0, len(factories))
	for _, f := range factories {
		switch sub := f.(type) {
		case nil:
			return nil, illegalArgument("composite %s: nil factory", t)
		case *Composite:
			flat = append(flat, sub.factories...)
		default:
			flat = append(flat, sub)
		}
	}
	if len(flat) == 0 {
		return nil, errors.WithHint(illegalArgument("composite %s: no factories", t),
			"a composite factory needs at least one sub-factory")
	}
	if fitting == nil {
		fitting = True
	}
	return &Composite{typ: t, locator: locator, fitting: fitting, factories: flat}, nil
}

// Type returns the view type the composite stands for.
func (c *Composite) Type() *Type { return c.typ }

// Factories returns the flattened sub-factories in resolution order.
func (c *Composite) Factories() []Factory {
	return append([]Factory(nil), c.factories...)
}

// CanWrap reports whether node fits the composite and any alternative accepts it.
func (c *Composite) CanWrap(node rdf.Term, m Model) bool {
	if !c.fitting.Test(node, m) {
		return false
	}
	for _, f := range c.factories {
		if f.CanWrap(node, m) {
			return true
		}
	}
	return false
}

// CreateInstance returns the result of the first sub-factory that can wrap node.
func (c *Composite) CreateInstance(node rdf.Term, m Model) (Object, bool) {
	if !c.fitting.Test(node, m) {
		return nil, false
	}
	for _, f := range c.factories {
		if f.CanWrap(node, m) {
			return f.CreateInstance(node, m)
		}
	}
	return nil, false
}

// Wrap tries each sub-factory in order; the failures of all of them are kept
// as suppressed causes of the returned *ConversionError.
func (c *Composite) Wrap(node rdf.Term, m Model) (Object, error) {
	if !c.fitting.Test(node, m) {
		return nil, &ConversionError{Node: node, Type: c.typ}
	}
	var suppressed []error
	for _, f := range c.factories {
		obj, err := f.Wrap(node, m)
		if err == nil {
			return obj, nil
		}
		if !errors.Is(err, ErrConversion) {
			return nil, err
		}
		suppressed = append(suppressed, err)
	}
	return nil, &ConversionError{Node: node, Type: c.typ, Suppressed: suppressed}
}

// CanCreateInGraph reports whether any alternative can insert node.
func (c *Composite) CanCreateInGraph(node rdf.Term, m Model) bool {
	for _, f := range c.factories {
		if f.CanCreateInGraph(node, m) {
			return true
		}
	}
	return false
}

// CreateInGraph delegates to the first sub-factory that permits creation.
func (c *Composite) CreateInGraph(node rdf.Term, m Model) (Object, error) {
	for _, f := range c.factories {
		if f.CanCreateInGraph(node, m) {
			return f.CreateInGraph(node, m)
		}
	}
	return nil, &CreationError{Node: node, Type: c.typ}
}

// Iterator lists each matching node once. With its own locator the located
// nodes are resolved through the alternatives; otherwise the alternatives'
// iterators are chained.
func (c *Composite) Iterator(m Model) iter.Seq[Object] {
	if c.locator != nil {
		return func(yield func(Object) bool) {
			for n := range c.locator.Iterate(m) {
				obj, ok := c.CreateInstance(n, m)
				if !ok {
					continue
				}
				if !yield(obj) {
					return
				}
			}
		}
	}
	return func(yield func(Object) bool) {
		seen := rdf.NewTermSet()
		for _, f := range c.factories {
			for obj := range f.Iterator(m) {
				if !seen.Add(obj.Node()) {
					continue
				}
				if !yield(obj) {
					return
				}
			}
		}
	}
}
