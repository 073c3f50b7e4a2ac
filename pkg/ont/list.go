package ont

import (
	"github.com/aleksaelezovic/ontoview/pkg/ns"
	"github.com/aleksaelezovic/ontoview/pkg/rdf"
	"github.com/aleksaelezovic/ontoview/pkg/view"
)

// List is an rdf:first/rdf:rest chain ending in rdf:nil.
type List struct {
	view.Base
}

func newList(n rdf.Term, m view.Model) view.Object {
	return &List{Base: view.NewBase(n, m, TypeList)}
}

var listShape = view.Or(
	view.InSet(rdf.NewTermSet(ns.RDFNil)),
	view.And(view.HasPredicate(ns.RDFFirst), view.HasPredicate(ns.RDFRest)),
)

// IsEmpty reports whether the list is rdf:nil.
func (l *List) IsEmpty() bool {
	return l.Node().Equals(ns.RDFNil)
}

// Members returns the list items in order.
func (l *List) Members() ([]rdf.Term, error) {
	return listMembers(l.Node(), l.Model())
}

// MembersAs resolves every item as t. The first item that does not qualify
// fails the whole call with a conversion error.
func (l *List) MembersAs(t *view.Type) ([]view.Object, error) {
	nodes, err := l.Members()
	if err != nil {
		return nil, err
	}
	res := make([]view.Object, 0, len(nodes))
	for _, n := range nodes {
		obj, err := view.As(n, l.Model(), t)
		if err != nil {
			return nil, err
		}
		res = append(res, obj)
	}
	return res, nil
}

func listMembers(head rdf.Term, m view.Model) ([]rdf.Term, error) {
	var res []rdf.Term
	seen := rdf.NewTermSet()
	for cur := head; !cur.Equals(ns.RDFNil); {
		if rdf.IsLiteral(cur) {
			return nil, view.IllegalState("list cell %s is a literal", cur)
		}
		if !seen.Add(cur) {
			return nil, view.IllegalState("list %s is cyclic at %s", head, cur)
		}
		first, err := single(m, cur, ns.RDFFirst)
		if err != nil {
			return nil, err
		}
		rest, err := single(m, cur, ns.RDFRest)
		if err != nil {
			return nil, err
		}
		res = append(res, first)
		cur = rest
	}
	return res, nil
}

// insertList writes items as a fresh list and returns its head.
func insertList(m view.Model, mint func() rdf.Term, items []rdf.Term) (rdf.Term, error) {
	var head rdf.Term = ns.RDFNil
	for i := len(items) - 1; i >= 0; i-- {
		cell := mint()
		if err := m.Add(cell, ns.RDFFirst, items[i]); err != nil {
			return nil, err
		}
		if err := m.Add(cell, ns.RDFRest, head); err != nil {
			return nil, err
		}
		head = cell
	}
	return head, nil
}
