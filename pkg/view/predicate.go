package view

import (
	"github.com/aleksaelezovic/ontoview/pkg/ns"
	"github.com/aleksaelezovic/ontoview/pkg/rdf"
)

// Predicate is a shape test over a node in a model.
//
// Predicates are compared by identity: the constants True and False are
// recognised by And, Or, Not and Restrict and are never wrapped.
type Predicate interface {
	Test(node rdf.Term, m Model) bool
}

type constant struct {
	value bool
}

func (c *constant) Test(rdf.Term, Model) bool { return c.value }

func (c *constant) String() string {
	if c.value {
		return "TRUE"
	}
	return "FALSE"
}

var (
	// True accepts every node.
	True Predicate = &constant{value: true}
	// False rejects every node.
	False Predicate = &constant{value: false}
)

type funcPredicate struct {
	fn func(rdf.Term, Model) bool
}

func (f *funcPredicate) Test(node rdf.Term, m Model) bool { return f.fn(node, m) }

// Func adapts a function into a Predicate.
func Func(fn func(node rdf.Term, m Model) bool) Predicate {
	return &funcPredicate{fn: fn}
}

type and struct{ left, right Predicate }

func (p *and) Test(node rdf.Term, m Model) bool {
	return p.left.Test(node, m) && p.right.Test(node, m)
}

type or struct{ left, right Predicate }

func (p *or) Test(node rdf.Term, m Model) bool {
	return p.left.Test(node, m) || p.right.Test(node, m)
}

type not struct{ inner Predicate }

func (p *not) Test(node rdf.Term, m Model) bool {
	return !p.inner.Test(node, m)
}

// And returns a predicate accepting nodes accepted by both a and b.
// The right operand is not consulted when the left one rejects.
func And(a, b Predicate) Predicate {
	switch {
	case a == False || b == False:
		return False
	case a == True:
		return b
	case b == True:
		return a
	}
	return &and{left: a, right: b}
}

// Or returns a predicate accepting nodes accepted by a or b.
// The right operand is not consulted when the left one accepts.
func Or(a, b Predicate) Predicate {
	switch {
	case a == True || b == True:
		return True
	case a == False:
		return b
	case b == False:
		return a
	}
	return &or{left: a, right: b}
}

// Not negates p. Not(Not(p)) returns p itself.
func Not(p Predicate) Predicate {
	switch p {
	case True:
		return False
	case False:
		return True
	}
	if n, ok := p.(*not); ok {
		return n.inner
	}
	return &not{inner: p}
}

// AllOf folds predicates with And; it is True for no arguments.
func AllOf(ps ...Predicate) Predicate {
	res := True
	for _, p := range ps {
		res = And(res, p)
	}
	return res
}

// AnyOf folds predicates with Or; it is False for no arguments.
func AnyOf(ps ...Predicate) Predicate {
	res := False
	for _, p := range ps {
		res = Or(res, p)
	}
	return res
}

// Node kind atoms
var (
	IsURI     Predicate = Func(func(n rdf.Term, _ Model) bool { return rdf.IsURI(n) })
	IsBlank   Predicate = Func(func(n rdf.Term, _ Model) bool { return rdf.IsBlank(n) })
	IsLiteral Predicate = Func(func(n rdf.Term, _ Model) bool { return rdf.IsLiteral(n) })
)

type hasPredicate struct {
	predicate rdf.Term
}

func (p *hasPredicate) Test(node rdf.Term, m Model) bool {
	return !rdf.IsLiteral(node) && m.Contains(node, p.predicate, nil)
}

// HasPredicate accepts nodes that are the subject of at least one edge labelled p.
func HasPredicate(p rdf.Term) Predicate {
	return &hasPredicate{predicate: p}
}

type hasType struct {
	typ rdf.Term
}

func (p *hasType) Test(node rdf.Term, m Model) bool {
	return !rdf.IsLiteral(node) && m.Contains(node, ns.RDFType, p.typ)
}

// HasType accepts nodes carrying the edge (node, rdf:type, t).
func HasType(t rdf.Term) Predicate {
	return &hasType{typ: t}
}

type inSet struct {
	set *rdf.TermSet
}

func (p *inSet) Test(node rdf.Term, _ Model) bool {
	return p.set.Contains(node)
}

// InSet accepts members of a fixed node set. An empty set yields False.
func InSet(set *rdf.TermSet) Predicate {
	if set.Len() == 0 {
		return False
	}
	return &inSet{set: set}
}

type canAs struct {
	typ *Type
}

func (p *canAs) Test(node rdf.Term, m Model) bool {
	return Can(node, m, p.typ)
}

// CanAs accepts nodes that the model's registry can view as t.
func CanAs(t *Type) Predicate {
	return &canAs{typ: t}
}
