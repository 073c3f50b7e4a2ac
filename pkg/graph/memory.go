package graph

import (
	"fmt"
	"iter"

	"github.com/aleksaelezovic/ontoview/pkg/rdf"
)

type index map[rdf.Key]map[rdf.Key]map[rdf.Key]rdf.Triple

// Memory is an in-memory Graph with SPO, POS and OSP indexes.
// It is not safe for concurrent writers.
type Memory struct {
	spo  index
	pos  index
	osp  index
	size int
}

// NewMemory creates an empty in-memory graph.
func NewMemory() *Memory {
	return &Memory{
		spo: make(index),
		pos: make(index),
		osp: make(index),
	}
}

// Len returns the number of triples in the graph.
func (m *Memory) Len() int {
	return m.size
}

func (ix index) put(a, b, c rdf.Key, t rdf.Triple) bool {
	l1, ok := ix[a]
	if !ok {
		l1 = make(map[rdf.Key]map[rdf.Key]rdf.Triple)
		ix[a] = l1
	}
	l2, ok := l1[b]
	if !ok {
		l2 = make(map[rdf.Key]rdf.Triple)
		l1[b] = l2
	}
	if _, exists := l2[c]; exists {
		return false
	}
	l2[c] = t
	return true
}

func (ix index) drop(a, b, c rdf.Key) bool {
	l1, ok := ix[a]
	if !ok {
		return false
	}
	l2, ok := l1[b]
	if !ok {
		return false
	}
	if _, ok := l2[c]; !ok {
		return false
	}
	delete(l2, c)
	if len(l2) == 0 {
		delete(l1, b)
		if len(l1) == 0 {
			delete(ix, a)
		}
	}
	return true
}

// Add inserts a triple into all three indexes.
func (m *Memory) Add(s, p, o rdf.Term) error {
	if s == nil || p == nil || o == nil {
		return fmt.Errorf("cannot add a triple with an unbound position: %v %v %v", s, p, o)
	}
	t := rdf.NewTriple(s, p, o)
	sk, pk, objKey := rdf.KeyOf(s), rdf.KeyOf(p), rdf.KeyOf(o)
	if !m.spo.put(sk, pk, objKey, t) {
		return nil
	}
	m.pos.put(pk, objKey, sk, t)
	m.osp.put(objKey, sk, pk, t)
	m.size++
	return nil
}

// Remove deletes a triple from all three indexes.
func (m *Memory) Remove(s, p, o rdf.Term) error {
	sk, pk, objKey := rdf.KeyOf(s), rdf.KeyOf(p), rdf.KeyOf(o)
	if !m.spo.drop(sk, pk, objKey) {
		return nil
	}
	m.pos.drop(pk, objKey, sk)
	m.osp.drop(objKey, sk, pk)
	m.size--
	return nil
}

// Contains reports whether any triple matches the pattern.
func (m *Memory) Contains(s, p, o rdf.Term) bool {
	for range m.Find(s, p, o) {
		return true
	}
	return false
}

// Find selects the index with the longest bound prefix, the same way the
// persistent store picks among its permutations.
func (m *Memory) Find(s, p, o rdf.Term) iter.Seq[rdf.Triple] {
	sBound, pBound, oBound := s != nil, p != nil, o != nil
	switch {
	case sBound && pBound:
		return scan(m.spo, []rdf.Term{s, p, o})
	case pBound && oBound:
		return scan(m.pos, []rdf.Term{p, o, nil})
	case oBound && sBound:
		return scan(m.osp, []rdf.Term{o, s, nil})
	case sBound:
		return scan(m.spo, []rdf.Term{s, nil, nil})
	case pBound:
		return scan(m.pos, []rdf.Term{p, nil, nil})
	case oBound:
		return scan(m.osp, []rdf.Term{o, nil, nil})
	default:
		return scan(m.spo, []rdf.Term{nil, nil, nil})
	}
}

// scan walks an index, narrowing each level by the bound term in key order.
func scan(ix index, key []rdf.Term) iter.Seq[rdf.Triple] {
	return func(yield func(rdf.Triple) bool) {
		for _, l1 := range level(ix, key[0]) {
			for _, l2 := range level(l1, key[1]) {
				for _, t := range level(l2, key[2]) {
					if !yield(t) {
						return
					}
				}
			}
		}
	}
}

// level yields either the single entry for a bound term or every entry of m.
func level[V any](m map[rdf.Key]V, bound rdf.Term) iter.Seq2[rdf.Key, V] {
	return func(yield func(rdf.Key, V) bool) {
		if bound != nil {
			k := rdf.KeyOf(bound)
			if v, ok := m[k]; ok {
				yield(k, v)
			}
			return
		}
		for k, v := range m {
			if !yield(k, v) {
				return
			}
		}
	}
}
