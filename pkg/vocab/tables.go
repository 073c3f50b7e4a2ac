// Package vocab holds the vocabulary tables consulted by view predicates:
// builtin members, reserved identifiers and forbidden punnings per view type.
package vocab

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/aleksaelezovic/ontoview/pkg/rdf"
	"github.com/aleksaelezovic/ontoview/pkg/view"
)

// table is the immutable type -> node set mapping shared by all three tables.
type table struct {
	sets map[*view.Type]*rdf.TermSet
}

func newTable(kind string, sets map[*view.Type][]rdf.Term) (table, error) {
	t := table{sets: make(map[*view.Type]*rdf.TermSet, len(sets))}
	for typ, nodes := range sets {
		if typ == nil {
			return table{}, errors.Wrapf(view.ErrIllegalArgument, "%s: nil type", kind)
		}
		set := rdf.NewTermSet()
		for _, n := range nodes {
			if !rdf.IsURI(n) {
				return table{}, errors.WithHint(
					errors.Wrapf(view.ErrIllegalArgument, "%s[%s]: %v is not a URI", kind, typ, n),
					"vocabulary tables may only hold named nodes")
			}
			set.Add(n)
		}
		t.sets[typ] = set
	}
	return t, nil
}

// Get returns the node set of typ. The result must not be modified.
func (t table) Get(typ *view.Type) *rdf.TermSet {
	if s, ok := t.sets[typ]; ok {
		return s
	}
	return rdf.NewTermSet()
}

func (t table) Covers(typ *view.Type) bool {
	_, ok := t.sets[typ]
	return ok
}

// memo caches sets derived from the table it is embedded in.
type memo struct {
	mu      sync.Mutex
	entries map[string]*memoEntry
}

type memoEntry struct {
	once  sync.Once
	value *rdf.TermSet
}

// Memo returns the set cached under key, calling compute at most once per key
// for the lifetime of the table. It is safe for concurrent use.
func (m *memo) Memo(key string, compute func() *rdf.TermSet) *rdf.TermSet {
	m.mu.Lock()
	if m.entries == nil {
		m.entries = make(map[string]*memoEntry)
	}
	e, ok := m.entries[key]
	if !ok {
		e = &memoEntry{}
		m.entries[key] = e
	}
	m.mu.Unlock()

	e.once.Do(func() {
		e.value = compute()
		if e.value == nil {
			e.value = rdf.NewTermSet()
		}
	})
	return e.value
}

// Builtins lists, per view type, the nodes that qualify without any declaring edge.
// It memoizes sets derived from those nodes.
type Builtins struct {
	table
	memo
}

var (
	_ view.Table    = (*Builtins)(nil)
	_ view.Memoizer = (*Builtins)(nil)
)

// NewBuiltins creates a builtins table. Every node must be a URI.
func NewBuiltins(sets map[*view.Type][]rdf.Term) (*Builtins, error) {
	t, err := newTable("builtins", sets)
	if err != nil {
		return nil, err
	}
	return &Builtins{table: t}, nil
}

// Union returns a fresh set holding the builtins of every given type.
func (b *Builtins) Union(types ...*view.Type) *rdf.TermSet {
	res := rdf.NewTermSet()
	for _, typ := range types {
		for n := range b.Get(typ).All() {
			res.Add(n)
		}
	}
	return res
}

// Reserved lists, per view type, identifiers that never denote user constructs.
// It also memoizes sets derived from the reserved identifiers.
type Reserved struct {
	table
	memo
}

var _ view.ReservedTable = (*Reserved)(nil)

// NewReserved creates a reserved table. Every node must be a URI.
func NewReserved(sets map[*view.Type][]rdf.Term) (*Reserved, error) {
	t, err := newTable("reserved", sets)
	if err != nil {
		return nil, err
	}
	return &Reserved{table: t}, nil
}

// Punnings lists, per entity type, the declaring types that disqualify a node
// from being resolved as that entity.
type Punnings struct {
	table
}

var _ view.Table = (*Punnings)(nil)

// NewPunnings creates a punnings table from explicit sets.
func NewPunnings(sets map[*view.Type][]rdf.Term) (*Punnings, error) {
	t, err := newTable("punnings", sets)
	if err != nil {
		return nil, err
	}
	return &Punnings{table: t}, nil
}
