package view

import (
	"iter"

	"github.com/aleksaelezovic/ontoview/pkg/graph"
	"github.com/aleksaelezovic/ontoview/pkg/ns"
	"github.com/aleksaelezovic/ontoview/pkg/rdf"
)

// Locator produces a stream of distinct candidate nodes from a model.
type Locator interface {
	Iterate(m Model) iter.Seq[rdf.Term]
}

type funcLocator struct {
	fn func(Model) iter.Seq[rdf.Term]
}

func (l *funcLocator) Iterate(m Model) iter.Seq[rdf.Term] { return l.fn(m) }

// NewLocator adapts a function into a Locator. The function must yield distinct nodes.
func NewLocator(fn func(m Model) iter.Seq[rdf.Term]) Locator {
	return &funcLocator{fn: fn}
}

type emptyLocator struct{}

func (emptyLocator) Iterate(Model) iter.Seq[rdf.Term] {
	return func(func(rdf.Term) bool) {}
}

// Empty yields nothing.
var Empty Locator = emptyLocator{}

func positions(m Model, subjects, objects, predicates bool) iter.Seq[rdf.Term] {
	return graph.Distinct(func(yield func(rdf.Term) bool) {
		for t := range m.Find(nil, nil, nil) {
			if subjects && !yield(t.Subject) {
				return
			}
			if predicates && !yield(t.Predicate) {
				return
			}
			if objects && !yield(t.Object) {
				return
			}
		}
	})
}

// Built-in locators
var (
	AllSubjects = NewLocator(func(m Model) iter.Seq[rdf.Term] {
		return positions(m, true, false, false)
	})
	AllBlankSubjects = NewLocator(func(m Model) iter.Seq[rdf.Term] {
		return filter(positions(m, true, false, false), rdf.IsBlank)
	})
	AllSubjectsAndObjects = NewLocator(func(m Model) iter.Seq[rdf.Term] {
		return positions(m, true, true, false)
	})
	AllNodes = NewLocator(func(m Model) iter.Seq[rdf.Term] {
		return positions(m, true, true, true)
	})
)

type subjectsOf struct {
	predicate rdf.Term
	distinct  bool
}

func (l *subjectsOf) Iterate(m Model) iter.Seq[rdf.Term] {
	seq := graph.Subjects(m, l.predicate, nil)
	if l.distinct {
		return graph.Distinct(seq)
	}
	return seq
}

// SubjectsOf locates subjects of edges labelled p. Without distinct, a subject
// with several such edges is produced once per edge; use it only for predicates
// that are functional in practice.
func SubjectsOf(p rdf.Term, distinct bool) Locator {
	return &subjectsOf{predicate: p, distinct: distinct}
}

type subjectsOfType struct {
	typ rdf.Term
}

func (l *subjectsOfType) Iterate(m Model) iter.Seq[rdf.Term] {
	return graph.Subjects(m, ns.RDFType, l.typ)
}

// SubjectsOfType locates subjects carrying (s, rdf:type, t).
func SubjectsOfType(t rdf.Term) Locator {
	return &subjectsOfType{typ: t}
}

type restricted struct {
	inner     Locator
	predicate Predicate
}

func (l *restricted) Iterate(m Model) iter.Seq[rdf.Term] {
	return filter(l.inner.Iterate(m), func(n rdf.Term) bool {
		return l.predicate.Test(n, m)
	})
}

// Restrict narrows a locator by a predicate. True returns l itself and
// False returns Empty.
func Restrict(l Locator, p Predicate) Locator {
	switch p {
	case True:
		return l
	case False:
		return Empty
	}
	return &restricted{inner: l, predicate: p}
}

// Concat yields the distinct union of several locators, in order.
func Concat(ls ...Locator) Locator {
	return NewLocator(func(m Model) iter.Seq[rdf.Term] {
		return graph.Distinct(func(yield func(rdf.Term) bool) {
			for _, l := range ls {
				for n := range l.Iterate(m) {
					if !yield(n) {
						return
					}
				}
			}
		})
	})
}

func filter(seq iter.Seq[rdf.Term], keep func(rdf.Term) bool) iter.Seq[rdf.Term] {
	return func(yield func(rdf.Term) bool) {
		for n := range seq {
			if keep(n) && !yield(n) {
				return
			}
		}
	}
}
