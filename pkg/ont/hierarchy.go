package ont

import (
	"iter"

	"github.com/aleksaelezovic/ontoview/pkg/graph"
	"github.com/aleksaelezovic/ontoview/pkg/hierarchy"
	"github.com/aleksaelezovic/ontoview/pkg/ns"
	"github.com/aleksaelezovic/ontoview/pkg/rdf"
	"github.com/aleksaelezovic/ontoview/pkg/view"
)

// ClassExpression is implemented by every class-like facade.
type ClassExpression interface {
	view.Object
	// SuperClasses returns the direct super classes, or all of them when
	// direct is false.
	SuperClasses(direct bool) iter.Seq[ClassExpression]
	SubClasses(direct bool) iter.Seq[ClassExpression]
	// IsHierarchyRoot reports whether the class has no direct super class
	// other than owl:Thing and itself.
	IsHierarchyRoot() bool
	AddSuperClass(super ClassExpression) error
	DeclaredProperties(direct bool) iter.Seq[Property]
	Individuals() iter.Seq[Individual]
}

// Property is implemented by every property-like facade.
type Property interface {
	view.Object
	SuperProperties(direct bool) iter.Seq[Property]
	SubProperties(direct bool) iter.Seq[Property]
	AddSuperProperty(super Property) error
	Domains() iter.Seq[rdf.Term]
	Ranges() iter.Seq[rdf.Term]
	AddDomain(domain rdf.Term) error
	AddRange(rng rdf.Term) error
	// IsDeclaredOn reports whether the property is considered declared for c.
	IsDeclaredOn(c ClassExpression, direct bool) bool
}

// Individual is implemented by named and anonymous individuals.
type Individual interface {
	view.Object
	Classes() iter.Seq[ClassExpression]
	AddClassAssertion(c ClassExpression) error
}

var (
	_ ClassExpression = (*Class)(nil)
	_ ClassExpression = (*Restriction)(nil)
	_ ClassExpression = (*UnionOf)(nil)
	_ Property        = (*ObjectProperty)(nil)
	_ Property        = (*InverseObjectProperty)(nil)
	_ Property        = (*DataProperty)(nil)
	_ Property        = (*AnnotationProperty)(nil)
	_ Individual      = (*NamedIndividual)(nil)
	_ Individual      = (*AnonymousIndividual)(nil)
)

type hierarchySettings interface {
	collapseEquivalents() bool
}

func collapsing(m view.Model) bool {
	if s, ok := m.(hierarchySettings); ok {
		return s.collapseEquivalents()
	}
	return true
}

// relation returns the explicit up and down adjacencies of p restricted to nodes of type t.
func relation(m view.Model, p rdf.Term, t *view.Type) (up, down hierarchy.Adjacency) {
	qualifies := func(n rdf.Term) bool { return view.Can(n, m, t) }
	return hierarchy.Outgoing(m, p).Filter(qualifies), hierarchy.Incoming(m, p).Filter(qualifies)
}

func adjacent(m view.Model, root rdf.Term, next, back hierarchy.Adjacency, direct bool) *rdf.TermSet {
	switch {
	case !direct:
		return hierarchy.Closure(root, next)
	case collapsing(m):
		return hierarchy.ImplicitAdjacent(root, next, back)
	default:
		return hierarchy.ExplicitAdjacent(root, next, back)
	}
}

func lazy(compute func() *rdf.TermSet) iter.Seq[rdf.Term] {
	return func(yield func(rdf.Term) bool) {
		for n := range compute().All() {
			if !yield(n) {
				return
			}
		}
	}
}

type classExpression struct {
	view.Base
}

func (c classExpression) supers(direct bool) *rdf.TermSet {
	up, down := relation(c.Model(), ns.RDFSSubClassOf, TypeClassExpression)
	return adjacent(c.Model(), c.Node(), up, down, direct)
}

func (c classExpression) SuperClasses(direct bool) iter.Seq[ClassExpression] {
	return resolved[ClassExpression](c.Model(), TypeClassExpression,
		lazy(func() *rdf.TermSet { return c.supers(direct) }))
}

func (c classExpression) SubClasses(direct bool) iter.Seq[ClassExpression] {
	return resolved[ClassExpression](c.Model(), TypeClassExpression, lazy(func() *rdf.TermSet {
		up, down := relation(c.Model(), ns.RDFSSubClassOf, TypeClassExpression)
		return adjacent(c.Model(), c.Node(), down, up, direct)
	}))
}

func (c classExpression) IsHierarchyRoot() bool {
	for n := range c.supers(true).All() {
		if !n.Equals(ns.OWLThing) && !n.Equals(c.Node()) {
			return false
		}
	}
	return true
}

func (c classExpression) AddSuperClass(super ClassExpression) error {
	return c.Model().Add(c.Node(), ns.RDFSSubClassOf, super.Node())
}

func (c classExpression) Individuals() iter.Seq[Individual] {
	return resolved[Individual](c.Model(), TypeIndividual,
		graph.Distinct(graph.Subjects(c.Model(), ns.RDFType, c.Node())))
}

// DeclaredProperties lists the object, data and annotation properties
// declared on the class.
func (c classExpression) DeclaredProperties(direct bool) iter.Seq[Property] {
	return func(yield func(Property) bool) {
		for _, t := range []*view.Type{TypeObjectProperty, TypeDataProperty, TypeAnnotationProperty} {
			for p := range view.ObjectsAs[Property](c.Model(), t) {
				if HasDeclaredProperty(c, p, direct) && !yield(p) {
					return
				}
			}
		}
	}
}

// HasDeclaredProperty reports whether p counts as declared on c.
//
// A property without domains applies everywhere, directly only on hierarchy
// roots. Otherwise every informative domain must be c itself or a provable
// super class of c; owl:Thing and rdfs:Resource domains are not informative.
// A direct declaration needs c itself among the domains, or no informative
// domain and c a hierarchy root.
func HasDeclaredProperty(c ClassExpression, p Property, direct bool) bool {
	m := c.Model()
	up, _ := relation(m, ns.RDFSSubClassOf, TypeClassExpression)
	hasDomain, informative, seenDirect := false, false, false
	for d := range p.Domains() {
		hasDomain = true
		if d.Equals(ns.OWLThing) || d.Equals(ns.RDFSResource) {
			continue
		}
		informative = true
		if d.Equals(c.Node()) {
			seenDirect = true
			continue
		}
		if !hierarchy.Reachable(c.Node(), d, up) {
			return false
		}
	}
	if !hasDomain {
		return !direct || c.IsHierarchyRoot()
	}
	if !direct {
		return true
	}
	return seenDirect || (!informative && c.IsHierarchyRoot())
}

type property struct {
	view.Base
	family *view.Type
}

func newProperty(n rdf.Term, m view.Model, t, family *view.Type) property {
	return property{Base: view.NewBase(n, m, t), family: family}
}

func (p property) neighbors(down, direct bool) *rdf.TermSet {
	up, dn := relation(p.Model(), ns.RDFSSubPropertyOf, p.family)
	if down {
		up, dn = dn, up
	}
	if direct && p.family == TypeAnnotationProperty {
		return hierarchy.TreeDirect(p.Node(), up)
	}
	return adjacent(p.Model(), p.Node(), up, dn, direct)
}

func (p property) SuperProperties(direct bool) iter.Seq[Property] {
	return resolved[Property](p.Model(), p.family,
		lazy(func() *rdf.TermSet { return p.neighbors(false, direct) }))
}

func (p property) SubProperties(direct bool) iter.Seq[Property] {
	return resolved[Property](p.Model(), p.family,
		lazy(func() *rdf.TermSet { return p.neighbors(true, direct) }))
}

func (p property) AddSuperProperty(super Property) error {
	return p.Model().Add(p.Node(), ns.RDFSSubPropertyOf, super.Node())
}

func (p property) Domains() iter.Seq[rdf.Term] {
	return graph.Distinct(graph.Objects(p.Model(), p.Node(), ns.RDFSDomain))
}

func (p property) Ranges() iter.Seq[rdf.Term] {
	return graph.Distinct(graph.Objects(p.Model(), p.Node(), ns.RDFSRange))
}

func (p property) AddDomain(domain rdf.Term) error {
	return p.Model().Add(p.Node(), ns.RDFSDomain, domain)
}

func (p property) AddRange(rng rdf.Term) error {
	return p.Model().Add(p.Node(), ns.RDFSRange, rng)
}

func (p property) IsDeclaredOn(c ClassExpression, direct bool) bool {
	return HasDeclaredProperty(c, p, direct)
}

// IsBuiltin reports whether the property is a builtin of the vocabulary.
func (p property) IsBuiltin() bool {
	return BuiltinProperties(p.Model().Registry()).Contains(p.Node())
}

type individual struct {
	view.Base
}

func (i individual) Classes() iter.Seq[ClassExpression] {
	return resolved[ClassExpression](i.Model(), TypeClassExpression,
		graph.Distinct(graph.Objects(i.Model(), i.Node(), ns.RDFType)))
}

func (i individual) AddClassAssertion(c ClassExpression) error {
	return i.Model().Add(i.Node(), ns.RDFType, c.Node())
}
