package view

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/aleksaelezovic/ontoview/pkg/rdf"
)

// Table maps view types to node sets. Implementations must be immutable.
type Table interface {
	// Get returns the node set for t; an uncovered type yields an empty set.
	Get(t *Type) *rdf.TermSet
	// Covers reports whether the table declares an entry for t.
	Covers(t *Type) bool
}

// Memoizer caches node sets derived from an immutable table.
type Memoizer interface {
	// Memo returns the set cached under key, computing it once with compute.
	// compute must be a pure function of the table contents.
	Memo(key string, compute func() *rdf.TermSet) *rdf.TermSet
}

// ReservedTable is a Table with a memo of derived node sets.
type ReservedTable interface {
	Table
	Memoizer
}

// Registry is an immutable mapping from view types to factories, plus the
// vocabulary tables their predicates consult. It is safe for concurrent readers.
type Registry struct {
	parent   *Registry
	entries  map[*Type]Factory
	removed  map[*Type]bool
	order    []*Type
	builtins Table
	reserved ReservedTable
	punnings Table
	entities []*Type
	logger   *zap.Logger
}

// Lookup returns the factory registered for t, or an error matching
// ErrUnsupportedType.
func (r *Registry) Lookup(t *Type) (Factory, error) {
	for reg := r; reg != nil; reg = reg.parent {
		if reg.removed[t] {
			break
		}
		if f, ok := reg.entries[t]; ok {
			return f, nil
		}
	}
	return nil, errors.Wrapf(ErrUnsupportedType, "%s", t)
}

// Supports reports whether a factory is registered for t.
func (r *Registry) Supports(t *Type) bool {
	_, err := r.Lookup(t)
	return err == nil
}

// Types returns every registered type in registration order; types inherited
// from a parent registry come first.
func (r *Registry) Types() []*Type {
	var res []*Type
	if r.parent != nil {
		for _, t := range r.parent.Types() {
			if !r.removed[t] {
				if _, overridden := r.entries[t]; !overridden {
					res = append(res, t)
				}
			}
		}
	}
	return append(res, r.order...)
}

// TypesOf returns the registered types whose capability set includes super.
func (r *Registry) TypesOf(super *Type) []*Type {
	var res []*Type
	for _, t := range r.Types() {
		if t.Is(super) {
			res = append(res, t)
		}
	}
	return res
}

// Builtins returns the table of nodes that qualify without a declaring edge.
func (r *Registry) Builtins() Table { return r.builtins }

// Reserved returns the table of identifiers that never denote user constructs.
func (r *Registry) Reserved() ReservedTable { return r.reserved }

// Punnings returns the table of declaring types that disqualify an entity.
func (r *Registry) Punnings() Table { return r.punnings }

// Logger returns the logger the registry was built with.
func (r *Registry) Logger() *zap.Logger { return r.logger }

// Entities returns the types every vocabulary table is required to cover.
func (r *Registry) Entities() []*Type {
	return append([]*Type(nil), r.entities...)
}

// Derive starts a builder for a registry that shares every entry of r it does
// not override. Changes to the builder never affect r.
func (r *Registry) Derive() *Builder {
	b := NewBuilder()
	b.parent = r
	b.builtins, b.reserved, b.punnings = r.builtins, r.reserved, r.punnings
	b.entities = r.entities
	b.logger = r.logger
	return b
}

// Builder assembles a Registry. It is not safe for concurrent use.
type Builder struct {
	parent   *Registry
	entries  map[*Type]Factory
	removed  map[*Type]bool
	order    []*Type
	builtins Table
	reserved ReservedTable
	punnings Table
	entities []*Type
	logger   *zap.Logger
	err      error
}

// NewBuilder creates an empty registry builder.
func NewBuilder() *Builder {
	return &Builder{
		entries: make(map[*Type]Factory),
		removed: make(map[*Type]bool),
		logger:  zap.NewNop(),
	}
}

// Register binds t to f, replacing any earlier binding.
func (b *Builder) Register(t *Type, f Factory) *Builder {
	if t == nil || f == nil {
		b.fail(illegalArgument("register: nil type or factory (%s)", t))
		return b
	}
	if _, ok := b.entries[t]; !ok {
		b.order = append(b.order, t)
	}
	b.entries[t] = f
	delete(b.removed, t)
	return b
}

// Unregister removes t, including a binding inherited from the parent registry.
func (b *Builder) Unregister(t *Type) *Builder {
	if _, ok := b.entries[t]; ok {
		delete(b.entries, t)
		for i, o := range b.order {
			if o == t {
				b.order = append(b.order[:i:i], b.order[i+1:]...)
				break
			}
		}
	}
	if b.parent != nil {
		b.removed[t] = true
	}
	return b
}

// Builtins sets the builtins table.
func (b *Builder) Builtins(t Table) *Builder {
	b.builtins = t
	return b
}

// Reserved sets the reserved table. Its memo is shared by every registry
// built with it.
func (b *Builder) Reserved(t ReservedTable) *Builder {
	b.reserved = t
	return b
}

// Punnings sets the punnings table.
func (b *Builder) Punnings(t Table) *Builder {
	b.punnings = t
	return b
}

// Entities declares the types every vocabulary table must cover.
func (b *Builder) Entities(types ...*Type) *Builder {
	b.entities = append([]*Type(nil), types...)
	return b
}

// Logger sets the registry logger. A nil logger is ignored.
func (b *Builder) Logger(l *zap.Logger) *Builder {
	if l != nil {
		b.logger = l
	}
	return b
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build validates the configuration and freezes it into a Registry.
// Missing or incomplete vocabulary tables are reported here, never at query time.
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}
	tables := []struct {
		name  string
		table Table
	}{
		{"builtins", b.builtins},
		{"punnings", b.punnings},
		{"reserved", b.reserved},
	}
	for _, tt := range tables {
		if tt.table == nil {
			return nil, errors.WithHint(illegalArgument("registry: no %s table", tt.name),
				"set all three vocabulary tables before Build")
		}
		for _, e := range b.entities {
			if !tt.table.Covers(e) {
				return nil, illegalArgument("registry: %s table does not cover %s", tt.name, e)
			}
		}
	}

	r := &Registry{
		parent:   b.parent,
		entries:  make(map[*Type]Factory, len(b.entries)),
		removed:  make(map[*Type]bool, len(b.removed)),
		order:    append([]*Type(nil), b.order...),
		builtins: b.builtins,
		reserved: b.reserved,
		punnings: b.punnings,
		entities: append([]*Type(nil), b.entities...),
		logger:   b.logger,
	}
	for t, f := range b.entries {
		r.entries[t] = f
	}
	for t := range b.removed {
		r.removed[t] = true
	}
	r.logger.Debug("registry built",
		zap.Int("types", len(r.Types())),
		zap.Int("own", len(r.order)),
		zap.Bool("derived", r.parent != nil))
	return r, nil
}

