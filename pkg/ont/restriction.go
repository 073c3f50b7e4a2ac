package ont

import (
	"iter"

	"github.com/aleksaelezovic/ontoview/pkg/graph"
	"github.com/aleksaelezovic/ontoview/pkg/ns"
	"github.com/aleksaelezovic/ontoview/pkg/rdf"
	"github.com/aleksaelezovic/ontoview/pkg/view"
)

// restrictionKind configures one restriction construct.
type restrictionKind struct {
	typ *view.Type
	// onProperty must pass this head.
	property view.Predicate
	// value is the filler predicate; for cardinalities, the unqualified one.
	value rdf.Term
	// filler checks the value node; nil means no filler.
	filler view.Predicate
	// qualified is the qualified cardinality predicate, with qualifier naming
	// the edge that carries the qualifying class or data range.
	qualified rdf.Term
	qualifier rdf.Term
	// fillerType resolves Filler.
	fillerType *view.Type
}

var (
	isDataProperty = view.CanAs(TypeDataProperty)
	isLiteral      = view.IsLiteral
	isNonLiteral   = view.Not(view.IsLiteral)
	isTrue         = view.Func(func(n rdf.Term, _ view.Model) bool {
		l, ok := n.(*rdf.Literal)
		return ok && l.Value == "true"
	})
	isCount = view.Func(func(n rdf.Term, _ view.Model) bool {
		l, ok := n.(*rdf.Literal)
		if !ok {
			return false
		}
		v, err := l.Int()
		return err == nil && v >= 0
	})
)

var restrictionKinds = []*restrictionKind{
	{typ: TypeObjectSomeValuesFrom, property: objectPropertyHead, value: ns.OWLSomeValuesFrom,
		filler: classExpressionHead, fillerType: TypeClassExpression},
	{typ: TypeObjectAllValuesFrom, property: objectPropertyHead, value: ns.OWLAllValuesFrom,
		filler: classExpressionHead, fillerType: TypeClassExpression},
	{typ: TypeObjectHasValue, property: objectPropertyHead, value: ns.OWLHasValue,
		filler: individualHead, fillerType: TypeIndividual},
	{typ: TypeObjectHasSelf, property: objectPropertyHead, value: ns.OWLHasSelf,
		filler: isTrue},
	{typ: TypeObjectMinCardinality, property: objectPropertyHead, value: ns.OWLMinCardinality,
		qualified: ns.OWLMinQualifiedCard, qualifier: ns.OWLOnClass,
		filler: classExpressionHead, fillerType: TypeClassExpression},
	{typ: TypeObjectMaxCardinality, property: objectPropertyHead, value: ns.OWLMaxCardinality,
		qualified: ns.OWLMaxQualifiedCard, qualifier: ns.OWLOnClass,
		filler: classExpressionHead, fillerType: TypeClassExpression},
	{typ: TypeObjectCardinality, property: objectPropertyHead, value: ns.OWLCardinality,
		qualified: ns.OWLQualifiedCardinality, qualifier: ns.OWLOnClass,
		filler: classExpressionHead, fillerType: TypeClassExpression},
	{typ: TypeDataSomeValuesFrom, property: isDataProperty, value: ns.OWLSomeValuesFrom,
		filler: dataRangeHead, fillerType: TypeDataRange},
	{typ: TypeDataAllValuesFrom, property: isDataProperty, value: ns.OWLAllValuesFrom,
		filler: dataRangeHead, fillerType: TypeDataRange},
	{typ: TypeDataHasValue, property: isDataProperty, value: ns.OWLHasValue,
		filler: isLiteral},
	{typ: TypeDataMinCardinality, property: isDataProperty, value: ns.OWLMinCardinality,
		qualified: ns.OWLMinQualifiedCard, qualifier: ns.OWLOnDataRange,
		filler: dataRangeHead, fillerType: TypeDataRange},
	{typ: TypeDataMaxCardinality, property: isDataProperty, value: ns.OWLMaxCardinality,
		qualified: ns.OWLMaxQualifiedCard, qualifier: ns.OWLOnDataRange,
		filler: dataRangeHead, fillerType: TypeDataRange},
	{typ: TypeDataCardinality, property: isDataProperty, value: ns.OWLCardinality,
		qualified: ns.OWLQualifiedCardinality, qualifier: ns.OWLOnDataRange,
		filler: dataRangeHead, fillerType: TypeDataRange},
}

func (k *restrictionKind) cardinality() bool { return k.qualified != nil }

// shape builds the predicate of k. Object and data variants of the same
// restriction differ by their property head and filler.
func (k *restrictionKind) shape() view.Predicate {
	head := view.And(view.And(isNonLiteral, view.HasType(ns.OWLRestriction)),
		anyObject(ns.OWLOnProperty, k.property))
	if !k.cardinality() {
		return view.And(head, anyObject(k.value, k.filler))
	}
	unqualified := view.And(anyObject(k.value, isCount), view.Not(view.HasPredicate(k.qualifier)))
	qualified := view.And(anyObject(k.qualified, isCount), anyObject(k.qualifier, k.filler))
	return view.And(head, view.Or(unqualified, qualified))
}

func (k *restrictionKind) factory() (*view.SimpleFactory, error) {
	construct := func(n rdf.Term, m view.Model) view.Object {
		return &Restriction{classExpression: classExpression{view.NewBase(n, m, k.typ)}, kind: k}
	}
	return view.NewFactory(k.typ, restrictionNodes, k.shape(), view.NewInstantiator(construct))
}

// Restriction is a property restriction. Its kind is its Type().
type Restriction struct {
	classExpression
	kind *restrictionKind
}

// OnProperty returns the restricted property.
func (r *Restriction) OnProperty() (Property, error) {
	n, err := single(r.Model(), r.Node(), ns.OWLOnProperty)
	if err != nil {
		return nil, err
	}
	t := TypeObjectPropertyExpression
	if r.kind.property == isDataProperty {
		t = TypeDataProperty
	}
	return view.AsType[Property](n, r.Model(), t)
}

// IsQualified reports whether a cardinality restriction carries a qualifier.
func (r *Restriction) IsQualified() bool {
	return r.kind.cardinality() && r.Model().Contains(r.Node(), r.kind.qualifier, nil)
}

// Value returns the raw filler node: the class, data range, individual or
// literal for value restrictions, the qualifier for qualified cardinalities.
func (r *Restriction) Value() (rdf.Term, error) {
	switch {
	case r.IsQualified():
		return single(r.Model(), r.Node(), r.kind.qualifier)
	case r.kind.cardinality():
		return nil, view.MissingData(r.Node(), r.kind.qualifier)
	}
	return single(r.Model(), r.Node(), r.kind.value)
}

// Filler resolves Value as a construct. Literal fillers cannot be resolved.
func (r *Restriction) Filler() (view.Object, error) {
	if r.kind.fillerType == nil {
		return nil, view.IllegalState("%s has no construct filler", r.Type())
	}
	n, err := r.Value()
	if err != nil {
		return nil, err
	}
	return view.As(n, r.Model(), r.kind.fillerType)
}

// Cardinality returns the cardinality of a cardinality restriction.
func (r *Restriction) Cardinality() (int64, error) {
	if !r.kind.cardinality() {
		return 0, view.IllegalState("%s has no cardinality", r.Type())
	}
	p := r.kind.value
	if r.IsQualified() {
		p = r.kind.qualified
	}
	n, err := single(r.Model(), r.Node(), p)
	if err != nil {
		return 0, err
	}
	l, ok := n.(*rdf.Literal)
	if !ok {
		return 0, view.IllegalState("%s: cardinality %s is not a literal", r.Node(), n)
	}
	v, err := l.Int()
	if err != nil {
		return 0, view.IllegalState("%s: %v", r.Node(), err)
	}
	return v, nil
}

// restrictionNodes lists the candidates shared by every restriction kind.
var restrictionNodes = view.NewLocator(func(m view.Model) iter.Seq[rdf.Term] {
	return graph.Distinct(graph.Subjects(m, ns.RDFType, ns.OWLRestriction))
})
