package view

import (
	"github.com/cockroachdb/errors"

	"github.com/aleksaelezovic/ontoview/pkg/ns"
	"github.com/aleksaelezovic/ontoview/pkg/rdf"
)

// Instantiator turns a qualifying node into a facade.
type Instantiator interface {
	// NewInstance builds the facade. It must not mutate the graph.
	NewInstance(node rdf.Term, m Model) Object
	// Insert adds the edges that make node qualify.
	Insert(node rdf.Term, m Model) error
	// CanInsert reports whether Insert is permitted for node.
	CanInsert(node rdf.Term, m Model) bool
}

// Constructor builds a facade for a node; it is the function-value replacement
// for looking up an implementation type at runtime.
type Constructor func(node rdf.Term, m Model) Object

type readOnly struct {
	construct Constructor
}

func (i *readOnly) NewInstance(node rdf.Term, m Model) Object {
	return i.construct(node, m)
}

func (i *readOnly) Insert(node rdf.Term, _ Model) error {
	return errors.Wrapf(ErrUnsupported, "illegal call: cannot insert %s", node)
}

func (i *readOnly) CanInsert(rdf.Term, Model) bool { return false }

// NewInstantiator creates an instantiator that does not support creation.
func NewInstantiator(c Constructor) Instantiator {
	return &readOnly{construct: c}
}

type withType struct {
	readOnly
	typ rdf.Term
}

func (i *withType) Insert(node rdf.Term, m Model) error {
	return m.Add(node, ns.RDFType, i.typ)
}

func (i *withType) CanInsert(rdf.Term, Model) bool { return true }

// WithType creates an instantiator whose Insert adds exactly (node, rdf:type, t).
func WithType(t rdf.Term, c Constructor) Instantiator {
	return &withType{readOnly: readOnly{construct: c}, typ: t}
}

type restrictedInsert struct {
	Instantiator
	predicate Predicate
}

func (i *restrictedInsert) CanInsert(node rdf.Term, m Model) bool {
	return i.Instantiator.CanInsert(node, m) && i.predicate.Test(node, m)
}

// RestrictInsert narrows CanInsert by p, leaving NewInstance and Insert unchanged.
func RestrictInsert(i Instantiator, p Predicate) Instantiator {
	if p == True {
		return i
	}
	return &restrictedInsert{Instantiator: i, predicate: p}
}
