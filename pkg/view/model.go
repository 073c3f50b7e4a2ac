package view

import (
	"github.com/aleksaelezovic/ontoview/pkg/graph"
	"github.com/aleksaelezovic/ontoview/pkg/rdf"
)

// Type is a view-type tag. Its super types form its capability set: a registry
// filtered by a super type returns every tag that declares it, directly or not.
type Type struct {
	name   string
	supers []*Type
}

// NewType declares a tag with the given super types.
func NewType(name string, supers ...*Type) *Type {
	return &Type{name: name, supers: supers}
}

func (t *Type) String() string {
	if t == nil {
		return "<nil type>"
	}
	return t.name
}

// Supers returns the declared direct super types.
func (t *Type) Supers() []*Type {
	return append([]*Type(nil), t.supers...)
}

// Is reports whether t is other or declares it among its (transitive) super types.
func (t *Type) Is(other *Type) bool {
	if t == nil || other == nil {
		return false
	}
	seen := map[*Type]bool{t: true}
	queue := []*Type{t}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == other {
			return true
		}
		for _, s := range next.supers {
			if !seen[s] {
				seen[s] = true
				queue = append(queue, s)
			}
		}
	}
	return false
}

// Model is a graph paired with the registry used to interpret its nodes.
type Model interface {
	graph.Graph
	Registry() *Registry
}

type boundModel struct {
	graph.Graph
	registry *Registry
}

func (m *boundModel) Registry() *Registry {
	return m.registry
}

// Bind pairs a graph with a registry.
func Bind(g graph.Graph, r *Registry) Model {
	return &boundModel{Graph: g, registry: r}
}

// Object is a facade over one node. It holds nothing beyond the node,
// the model it was resolved in and the type it was resolved as.
type Object interface {
	Node() rdf.Term
	Model() Model
	Type() *Type
}

// Base implements Object; facades embed it.
type Base struct {
	node  rdf.Term
	model Model
	typ   *Type
}

// NewBase creates the embedded part of a facade.
func NewBase(node rdf.Term, m Model, t *Type) Base {
	return Base{node: node, model: m, typ: t}
}

// Node returns the wrapped graph node.
func (b Base) Node() rdf.Term { return b.node }

// Model returns the model the facade was resolved in.
func (b Base) Model() Model { return b.model }

// Type returns the view type the facade was resolved as.
func (b Base) Type() *Type { return b.typ }

func (b Base) String() string {
	return b.node.String() + " as " + b.typ.String()
}
