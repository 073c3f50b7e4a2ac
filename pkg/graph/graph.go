// Package graph defines the pattern-matching triple collection the facade layer reads
// and writes, together with an in-memory implementation.
package graph

import (
	"iter"

	"github.com/aleksaelezovic/ontoview/pkg/rdf"
)

// Graph is a pattern-matching triple collection.
//
// A nil term in Find or Contains matches any node in that position. Sequences returned
// by Find are lazy: they advance the underlying cursor on demand, and the graph must not
// be mutated while a sequence derived from it is still being consumed.
type Graph interface {
	// Find returns the triples matching the pattern.
	Find(s, p, o rdf.Term) iter.Seq[rdf.Triple]

	// Contains reports whether at least one triple matches the pattern.
	Contains(s, p, o rdf.Term) bool

	// Add inserts a triple; adding an existing triple is a no-op.
	Add(s, p, o rdf.Term) error

	// Remove deletes a triple; removing a missing triple is a no-op.
	Remove(s, p, o rdf.Term) error
}

// Objects returns the objects of triples (s, p, *).
func Objects(g Graph, s, p rdf.Term) iter.Seq[rdf.Term] {
	return func(yield func(rdf.Term) bool) {
		for t := range g.Find(s, p, nil) {
			if !yield(t.Object) {
				return
			}
		}
	}
}

// Subjects returns the subjects of triples (*, p, o).
func Subjects(g Graph, p, o rdf.Term) iter.Seq[rdf.Term] {
	return func(yield func(rdf.Term) bool) {
		for t := range g.Find(nil, p, o) {
			if !yield(t.Subject) {
				return
			}
		}
	}
}

// Object returns the first object of (s, p, *) and whether one exists.
func Object(g Graph, s, p rdf.Term) (rdf.Term, bool) {
	for o := range Objects(g, s, p) {
		return o, true
	}
	return nil, false
}

// Count returns the number of triples matching the pattern.
func Count(g Graph, s, p, o rdf.Term) int {
	n := 0
	for range g.Find(s, p, o) {
		n++
	}
	return n
}

// Distinct filters repeated nodes out of a sequence.
func Distinct(seq iter.Seq[rdf.Term]) iter.Seq[rdf.Term] {
	return func(yield func(rdf.Term) bool) {
		seen := rdf.NewTermSet()
		for t := range seq {
			if !seen.Add(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}
