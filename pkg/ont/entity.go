package ont

import (
	"iter"

	"github.com/aleksaelezovic/ontoview/pkg/graph"
	"github.com/aleksaelezovic/ontoview/pkg/ns"
	"github.com/aleksaelezovic/ontoview/pkg/rdf"
	"github.com/aleksaelezovic/ontoview/pkg/view"
)

// Class is a named class.
type Class struct {
	classExpression
}

// Datatype is a named datatype.
type Datatype struct {
	view.Base
}

// ObjectProperty is a named object property.
type ObjectProperty struct {
	property
}

// DataProperty is a named data property.
type DataProperty struct {
	property
}

// AnnotationProperty is a named annotation property. Its hierarchy is
// tree-shaped: equivalence cycles are not collapsed.
type AnnotationProperty struct {
	property
}

// NamedIndividual is an individual with an IRI.
type NamedIndividual struct {
	individual
}

// AnonymousIndividual is a blank node asserted to belong to a class.
type AnonymousIndividual struct {
	individual
}

// InverseObjectProperty is the blank-node expression inverse(P).
type InverseObjectProperty struct {
	property
}

// Named returns the object property this expression is the inverse of.
func (p *InverseObjectProperty) Named() (*ObjectProperty, error) {
	n, err := single(p.Model(), p.Node(), ns.OWLInverseOf)
	if err != nil {
		return nil, err
	}
	return view.AsType[*ObjectProperty](n, p.Model(), TypeObjectProperty)
}

// Inverses returns the anonymous inverse expressions pointing at p.
func (p *ObjectProperty) Inverses() iter.Seq[*InverseObjectProperty] {
	return resolved[*InverseObjectProperty](p.Model(), TypeInverseObjectProperty,
		graph.Subjects(p.Model(), ns.OWLInverseOf, p.Node()))
}

// DomainClasses resolves the domains of p as class expressions.
func (p *ObjectProperty) DomainClasses() iter.Seq[ClassExpression] {
	return resolved[ClassExpression](p.Model(), TypeClassExpression, p.Domains())
}

// RangeClasses resolves the ranges of p as class expressions.
func (p *ObjectProperty) RangeClasses() iter.Seq[ClassExpression] {
	return resolved[ClassExpression](p.Model(), TypeClassExpression, p.Ranges())
}

// DomainClasses resolves the domains of p as class expressions.
func (p *DataProperty) DomainClasses() iter.Seq[ClassExpression] {
	return resolved[ClassExpression](p.Model(), TypeClassExpression, p.Domains())
}

// RangeDatatypes resolves the ranges of p as data ranges.
func (p *DataProperty) RangeDatatypes() iter.Seq[*Datatype] {
	return resolved[*Datatype](p.Model(), TypeDatatype, p.Ranges())
}

func newClass(n rdf.Term, m view.Model) view.Object {
	return &Class{classExpression{view.NewBase(n, m, TypeClass)}}
}

func newDatatype(n rdf.Term, m view.Model) view.Object {
	return &Datatype{view.NewBase(n, m, TypeDatatype)}
}

func newObjectProperty(n rdf.Term, m view.Model) view.Object {
	return &ObjectProperty{newProperty(n, m, TypeObjectProperty, TypeObjectPropertyExpression)}
}

func newDataProperty(n rdf.Term, m view.Model) view.Object {
	return &DataProperty{newProperty(n, m, TypeDataProperty, TypeDataProperty)}
}

func newAnnotationProperty(n rdf.Term, m view.Model) view.Object {
	return &AnnotationProperty{newProperty(n, m, TypeAnnotationProperty, TypeAnnotationProperty)}
}

func newInverseObjectProperty(n rdf.Term, m view.Model) view.Object {
	return &InverseObjectProperty{newProperty(n, m, TypeInverseObjectProperty, TypeObjectPropertyExpression)}
}

func newNamedIndividual(n rdf.Term, m view.Model) view.Object {
	return &NamedIndividual{individual{view.NewBase(n, m, TypeNamedIndividual)}}
}

func newAnonymousIndividual(n rdf.Term, m view.Model) view.Object {
	return &AnonymousIndividual{individual{view.NewBase(n, m, TypeAnonymousIndividual)}}
}

type entityKind struct {
	typ       *view.Type
	declaring rdf.Term
	declared  view.Predicate
	construct view.Constructor
}

var entityKinds = []entityKind{
	{TypeClass, ns.OWLClass, nil, newClass},
	{TypeDatatype, ns.RDFSDatatype, nil, newDatatype},
	{TypeObjectProperty, ns.OWLObjectProperty, nil, newObjectProperty},
	{TypeDataProperty, ns.OWLDatatypeProperty, nil, newDataProperty},
	{TypeAnnotationProperty, ns.OWLAnnotationProperty, nil, newAnnotationProperty},
	{TypeNamedIndividual, ns.OWLNamedIndividual,
		view.Or(view.HasType(ns.OWLNamedIndividual), anyObject(ns.RDFType, classExpressionHead)),
		newNamedIndividual},
}

func entityFactory(k entityKind) (*view.SimpleFactory, error) {
	declared := k.declared
	if declared == nil {
		declared = view.HasType(k.declaring)
	}
	locator := view.SubjectsOfType(k.declaring)
	if k.typ == TypeNamedIndividual {
		locator = view.SubjectsOf(ns.RDFType, true)
	}
	notReserved := view.Func(func(n rdf.Term, m view.Model) bool {
		return !m.Registry().Reserved().Get(k.typ).Contains(n)
	})
	maker := view.RestrictInsert(view.WithType(k.declaring, k.construct), view.And(view.IsURI, notReserved))
	return view.NewFactory(k.typ, locator, entityShape(k.typ, declared), maker)
}
