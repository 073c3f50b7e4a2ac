package rdf

import (
	"iter"
	"strings"

	"github.com/zeebo/xxh3"
)

// Key is a 128-bit identity of a term, suitable as a map key.
// Terms that are Equals produce the same Key.
type Key [17]byte

// KeyOf hashes the canonical form of a term with xxh3 (128-bit), prefixed by the term type.
func KeyOf(t Term) Key {
	var k Key
	if t == nil {
		return k
	}
	k[0] = byte(t.Type())
	var h xxh3.Uint128
	switch n := t.(type) {
	case *NamedNode:
		h = xxh3.HashString128(n.IRI)
	case *BlankNode:
		h = xxh3.HashString128(n.ID)
	case *Literal:
		h = xxh3.HashString128(canonicalLiteral(n))
	default:
		h = xxh3.HashString128(t.String())
	}
	b := h.Bytes()
	copy(k[1:], b[:])
	return k
}

func canonicalLiteral(l *Literal) string {
	dt := ""
	if l.Datatype != nil {
		dt = l.Datatype.IRI
	}
	// \x00 cannot appear in IRIs or language tags
	return l.Value + "\x00" + strings.ToLower(l.Language) + "\x00" + dt
}

// TermSet is an insertion-ordered set of terms keyed by KeyOf.
// The zero value is not usable; use NewTermSet.
type TermSet struct {
	index map[Key]int
	terms []Term
}

// NewTermSet creates a set holding the given terms.
func NewTermSet(terms ...Term) *TermSet {
	s := &TermSet{index: make(map[Key]int, len(terms))}
	for _, t := range terms {
		s.Add(t)
	}
	return s
}

// Add inserts t and reports whether it was absent.
func (s *TermSet) Add(t Term) bool {
	k := KeyOf(t)
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.terms)
	s.terms = append(s.terms, t)
	return true
}

// Remove deletes t and reports whether it was present.
func (s *TermSet) Remove(t Term) bool {
	k := KeyOf(t)
	i, ok := s.index[k]
	if !ok {
		return false
	}
	delete(s.index, k)
	s.terms = append(s.terms[:i], s.terms[i+1:]...)
	for j := i; j < len(s.terms); j++ {
		s.index[KeyOf(s.terms[j])] = j
	}
	return true
}

func (s *TermSet) Contains(t Term) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[KeyOf(t)]
	return ok
}

func (s *TermSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.terms)
}

// Slice returns the members in insertion order. The result must not be modified.
func (s *TermSet) Slice() []Term {
	if s == nil {
		return nil
	}
	return s.terms
}

// All iterates the members in insertion order.
func (s *TermSet) All() iter.Seq[Term] {
	return func(yield func(Term) bool) {
		if s == nil {
			return
		}
		for _, t := range s.terms {
			if !yield(t) {
				return
			}
		}
	}
}

// Union returns a new set with the members of s followed by those of others.
func (s *TermSet) Union(others ...*TermSet) *TermSet {
	res := NewTermSet(s.Slice()...)
	for _, o := range others {
		for _, t := range o.Slice() {
			res.Add(t)
		}
	}
	return res
}
