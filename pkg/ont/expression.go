package ont

import (
	"github.com/aleksaelezovic/ontoview/pkg/graph"
	"github.com/aleksaelezovic/ontoview/pkg/ns"
	"github.com/aleksaelezovic/ontoview/pkg/rdf"
	"github.com/aleksaelezovic/ontoview/pkg/view"
)

// naryExpression is a class expression over a list of class expressions.
type naryExpression struct {
	classExpression
	predicate rdf.Term
}

// Operands resolves the list members as class expressions.
func (e naryExpression) Operands() ([]ClassExpression, error) {
	head, err := single(e.Model(), e.Node(), e.predicate)
	if err != nil {
		return nil, err
	}
	nodes, err := listMembers(head, e.Model())
	if err != nil {
		return nil, err
	}
	res := make([]ClassExpression, 0, len(nodes))
	for _, n := range nodes {
		c, err := view.AsType[ClassExpression](n, e.Model(), TypeClassExpression)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

// UnionOf is owl:unionOf over class expressions.
type UnionOf struct {
	naryExpression
}

// IntersectionOf is owl:intersectionOf over class expressions.
type IntersectionOf struct {
	naryExpression
}

// ComplementOf is owl:complementOf of a class expression.
type ComplementOf struct {
	classExpression
}

// Operand returns the complemented class expression.
func (c *ComplementOf) Operand() (ClassExpression, error) {
	n, err := single(c.Model(), c.Node(), ns.OWLComplementOf)
	if err != nil {
		return nil, err
	}
	return view.AsType[ClassExpression](n, c.Model(), TypeClassExpression)
}

// OneOf is an enumeration of individuals.
type OneOf struct {
	classExpression
}

// Members returns the enumerated individuals. They need not be declared.
func (o *OneOf) Members() ([]rdf.Term, error) {
	head, err := single(o.Model(), o.Node(), ns.OWLOneOf)
	if err != nil {
		return nil, err
	}
	return listMembers(head, o.Model())
}

func expressionFactories() ([]*view.SimpleFactory, error) {
	nary := func(t *view.Type, p rdf.Term, wrap func(naryExpression) view.Object) (*view.SimpleFactory, error) {
		construct := func(n rdf.Term, m view.Model) view.Object {
			return wrap(naryExpression{classExpression{view.NewBase(n, m, t)}, p})
		}
		return view.NewFactory(t, view.SubjectsOf(p, true),
			view.And(view.IsBlank, listOf(p, classExpressionHead, 0)),
			view.NewInstantiator(construct))
	}
	union, err := nary(TypeUnionOf, ns.OWLUnionOf, func(e naryExpression) view.Object { return &UnionOf{e} })
	if err != nil {
		return nil, err
	}
	intersection, err := nary(TypeIntersectionOf, ns.OWLIntersectionOf, func(e naryExpression) view.Object { return &IntersectionOf{e} })
	if err != nil {
		return nil, err
	}
	complement, err := view.NewFactory(TypeComplementOf, view.SubjectsOf(ns.OWLComplementOf, true),
		view.And(view.IsBlank, anyObject(ns.OWLComplementOf, classExpressionHead)),
		view.NewInstantiator(func(n rdf.Term, m view.Model) view.Object {
			return &ComplementOf{classExpression{view.NewBase(n, m, TypeComplementOf)}}
		}))
	if err != nil {
		return nil, err
	}
	oneOf, err := view.NewFactory(TypeOneOf, view.SubjectsOf(ns.OWLOneOf, true),
		view.AllOf(view.IsBlank, view.Not(view.HasType(ns.RDFSDatatype)), listOf(ns.OWLOneOf, individualHead, 0)),
		view.NewInstantiator(func(n rdf.Term, m view.Model) view.Object {
			return &OneOf{classExpression{view.NewBase(n, m, TypeOneOf)}}
		}))
	if err != nil {
		return nil, err
	}
	return []*view.SimpleFactory{union, intersection, complement, oneOf}, nil
}

// Disjoint is a group of pairwise disjoint classes or properties, or of
// pairwise different individuals. Its kind is its Type().
type Disjoint struct {
	view.Base
	kind *disjointKind
}

type disjointKind struct {
	typ       *view.Type
	declaring rdf.Term
	lists     []rdf.Term
	member    view.Predicate
	resolveAs *view.Type
}

var disjointKinds = []*disjointKind{
	{TypeDisjointClasses, ns.OWLAllDisjointClasses, []rdf.Term{ns.OWLMembers}, classExpressionHead, TypeClassExpression},
	{TypeDisjointObjectProperties, ns.OWLAllDisjointProps, []rdf.Term{ns.OWLMembers}, objectPropertyHead, TypeObjectPropertyExpression},
	{TypeDisjointDataProperties, ns.OWLAllDisjointProps, []rdf.Term{ns.OWLMembers}, isDataProperty, TypeDataProperty},
	{TypeDifferentIndividuals, ns.OWLAllDifferent, []rdf.Term{ns.OWLMembers, ns.OWLDistinctMembers}, individualHead, TypeIndividual},
}

func (k *disjointKind) factory() (*view.SimpleFactory, error) {
	var lists []view.Predicate
	for _, p := range k.lists {
		lists = append(lists, listOf(p, k.member, 2))
	}
	shape := view.And(view.HasType(k.declaring), view.AnyOf(lists...))
	return view.NewFactory(k.typ, view.SubjectsOfType(k.declaring), shape,
		view.NewInstantiator(func(n rdf.Term, m view.Model) view.Object {
			return &Disjoint{Base: view.NewBase(n, m, k.typ), kind: k}
		}))
}

// MemberNodes returns the raw members of the group.
func (d *Disjoint) MemberNodes() ([]rdf.Term, error) {
	for _, p := range d.kind.lists {
		if head, ok := graph.Object(d.Model(), d.Node(), p); ok {
			return listMembers(head, d.Model())
		}
	}
	return nil, view.MissingData(d.Node(), d.kind.lists[0])
}

// Members resolves the members of the group.
func (d *Disjoint) Members() ([]view.Object, error) {
	nodes, err := d.MemberNodes()
	if err != nil {
		return nil, err
	}
	res := make([]view.Object, 0, len(nodes))
	for _, n := range nodes {
		obj, err := view.As(n, d.Model(), d.kind.resolveAs)
		if err != nil {
			return nil, err
		}
		res = append(res, obj)
	}
	return res, nil
}
