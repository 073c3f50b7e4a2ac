package ont

import (
	"iter"

	"github.com/aleksaelezovic/ontoview/pkg/graph"
	"github.com/aleksaelezovic/ontoview/pkg/ns"
	"github.com/aleksaelezovic/ontoview/pkg/rdf"
	"github.com/aleksaelezovic/ontoview/pkg/view"
)

// entityShape accepts URIs that are not reserved for t and are either builtin
// or declared without a forbidden punning.
func entityShape(t *view.Type, declared view.Predicate) view.Predicate {
	return view.And(view.IsURI, view.Func(func(n rdf.Term, m view.Model) bool {
		r := m.Registry()
		if r.Reserved().Get(t).Contains(n) {
			return false
		}
		if r.Builtins().Get(t).Contains(n) {
			return true
		}
		if !declared.Test(n, m) {
			return false
		}
		for forbidden := range r.Punnings().Get(t).All() {
			if m.Contains(n, ns.RDFType, forbidden) {
				return false
			}
		}
		return true
	}))
}

// Nested constructs are checked by their head only, so that self-referencing
// anonymous expressions cannot recurse.
var (
	classExpressionHead = view.Or(
		view.And(view.IsURI, view.CanAs(TypeClass)),
		view.And(view.IsBlank, view.AnyOf(
			view.HasType(ns.OWLRestriction),
			view.HasPredicate(ns.OWLUnionOf),
			view.HasPredicate(ns.OWLIntersectionOf),
			view.HasPredicate(ns.OWLComplementOf),
			view.And(view.HasPredicate(ns.OWLOneOf), view.Not(view.HasType(ns.RDFSDatatype))),
		)),
	)
	dataRangeHead = view.Or(
		view.And(view.IsURI, view.CanAs(TypeDatatype)),
		view.And(view.IsBlank, view.HasType(ns.RDFSDatatype)),
	)
	objectPropertyHead = view.Or(
		view.CanAs(TypeObjectProperty),
		view.CanAs(TypeInverseObjectProperty),
	)
	individualHead = view.Or(
		view.IsURI,
		view.IsBlank,
	)
)

// anyObject reports whether some object of (n, p, ?) passes head.
func anyObject(p rdf.Term, head view.Predicate) view.Predicate {
	return view.Func(func(n rdf.Term, m view.Model) bool {
		for o := range graph.Objects(m, n, p) {
			if head.Test(o, m) {
				return true
			}
		}
		return false
	})
}

// listOf accepts nodes whose p value is a well-formed list of members passing head.
func listOf(p rdf.Term, head view.Predicate, minLen int) view.Predicate {
	return view.Func(func(n rdf.Term, m view.Model) bool {
		for o := range graph.Objects(m, n, p) {
			members, err := listMembers(o, m)
			if err != nil || len(members) < minLen {
				continue
			}
			ok := true
			for _, x := range members {
				if !head.Test(x, m) {
					ok = false
					break
				}
			}
			if ok {
				return true
			}
		}
		return false
	})
}

// resolved maps nodes to facades of type t, dropping those that do not qualify.
func resolved[T view.Object](m view.Model, t *view.Type, nodes iter.Seq[rdf.Term]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range nodes {
			obj, err := view.AsType[T](n, m, t)
			if err != nil {
				continue
			}
			if !yield(obj) {
				return
			}
		}
	}
}

// single returns the only object of (n, p, ?), failing with ErrMissingData
// when there is none and ErrIllegalState when there are several.
func single(m view.Model, n, p rdf.Term) (rdf.Term, error) {
	var res rdf.Term
	for o := range graph.Objects(m, n, p) {
		if res != nil && !res.Equals(o) {
			return nil, view.IllegalState("%s has more than one %s value", n, p)
		}
		res = o
	}
	if res == nil {
		return nil, view.MissingData(n, p)
	}
	return res, nil
}
