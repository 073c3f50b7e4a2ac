// Package hierarchy computes direct and transitive neighbors in sub-of style
// relations, collapsing equivalence cycles. Traversals keep explicit visited
// sets and never recurse, so long chains and genuine cycles are both safe.
package hierarchy

import (
	"iter"

	"github.com/aleksaelezovic/ontoview/pkg/graph"
	"github.com/aleksaelezovic/ontoview/pkg/rdf"
)

// Adjacency yields the explicit neighbors of a node in one direction.
type Adjacency func(node rdf.Term) iter.Seq[rdf.Term]

// Outgoing follows edges (node, p, x) and yields x.
func Outgoing(g graph.Graph, p rdf.Term) Adjacency {
	return func(node rdf.Term) iter.Seq[rdf.Term] {
		if rdf.IsLiteral(node) {
			return func(func(rdf.Term) bool) {}
		}
		return graph.Objects(g, node, p)
	}
}

// Incoming follows edges (x, p, node) and yields x.
func Incoming(g graph.Graph, p rdf.Term) Adjacency {
	return func(node rdf.Term) iter.Seq[rdf.Term] {
		return graph.Subjects(g, p, node)
	}
}

// Filter narrows an adjacency to neighbors accepted by keep.
func (a Adjacency) Filter(keep func(rdf.Term) bool) Adjacency {
	return func(node rdf.Term) iter.Seq[rdf.Term] {
		return func(yield func(rdf.Term) bool) {
			for n := range a(node) {
				if keep(n) && !yield(n) {
					return
				}
			}
		}
	}
}

// Equivalents returns root plus every node linked to it both ways, directly or
// through a chain of such links. Root is always the first element.
func Equivalents(root rdf.Term, next, back Adjacency) *rdf.TermSet {
	res := rdf.NewTermSet(root)
	queue := []rdf.Term{root}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		backs := rdf.NewTermSet()
		for n := range back(x) {
			backs.Add(n)
		}
		for y := range next(x) {
			if backs.Contains(y) && res.Add(y) {
				queue = append(queue, y)
			}
		}
	}
	return res
}

// ImplicitAdjacent returns the direct neighbors of root in the direction of
// next, treating equivalent nodes as one group: an edge from any member of the
// root's group counts, members of the group itself are never neighbors, and
// every neighbor brings its own equivalents along.
func ImplicitAdjacent(root rdf.Term, next, back Adjacency) *rdf.TermSet {
	group := Equivalents(root, next, back)
	res := rdf.NewTermSet()
	for member := range group.All() {
		for n := range next(member) {
			if group.Contains(n) || res.Contains(n) {
				continue
			}
			for e := range Equivalents(n, next, back).All() {
				if !group.Contains(e) {
					res.Add(e)
				}
			}
		}
	}
	return res
}

// ExplicitAdjacent returns the explicit neighbors of root, without root itself
// and without nodes that are linked to root both ways.
func ExplicitAdjacent(root rdf.Term, next, back Adjacency) *rdf.TermSet {
	res := rdf.NewTermSet()
	var backs *rdf.TermSet
	for n := range next(root) {
		if n.Equals(root) || res.Contains(n) {
			continue
		}
		if backs == nil {
			backs = rdf.NewTermSet()
			for b := range back(root) {
				backs.Add(b)
			}
		}
		if !backs.Contains(n) {
			res.Add(n)
		}
	}
	return res
}

// Closure returns every node reachable from root over next, excluding root.
func Closure(root rdf.Term, next Adjacency) *rdf.TermSet {
	seen := rdf.NewTermSet(root)
	res := rdf.NewTermSet()
	queue := []rdf.Term{root}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for y := range next(x) {
			if seen.Add(y) {
				res.Add(y)
				queue = append(queue, y)
			}
		}
	}
	return res
}

// TreeDirect returns the neighbors of root that are reachable along one path
// only: a neighbor also reached through another node is transitive, not direct.
func TreeDirect(root rdf.Term, next Adjacency) *rdf.TermSet {
	res := rdf.NewTermSet()
	for n := range next(root) {
		if !n.Equals(root) {
			res.Add(n)
		}
	}
	seen := rdf.NewTermSet(root)
	queue := make([]rdf.Term, 0, res.Len())
	for n := range res.All() {
		seen.Add(n)
		queue = append(queue, n)
	}
	for len(queue) > 0 && res.Len() > 0 {
		x := queue[0]
		queue = queue[1:]
		for y := range next(x) {
			if !y.Equals(x) && res.Remove(y) && res.Len() == 0 {
				return res
			}
			if seen.Add(y) {
				queue = append(queue, y)
			}
		}
	}
	return res
}

// Reachable reports whether target is reachable from `from` in one or more steps.
// It stops at the first sighting of target.
func Reachable(from, target rdf.Term, next Adjacency) bool {
	seen := rdf.NewTermSet(from)
	queue := []rdf.Term{from}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for y := range next(x) {
			if y.Equals(target) {
				return true
			}
			if seen.Add(y) {
				queue = append(queue, y)
			}
		}
	}
	return false
}
