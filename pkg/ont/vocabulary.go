package ont

import (
	"bytes"
	_ "embed"

	"github.com/cockroachdb/errors"

	"github.com/aleksaelezovic/ontoview/pkg/rdf"
	"github.com/aleksaelezovic/ontoview/pkg/view"
	"github.com/aleksaelezovic/ontoview/pkg/vocab"
)

//go:embed owl2.yaml
var owl2YAML []byte

// DefaultSource returns a fresh copy of the standard OWL2 vocabulary.
func DefaultSource() *vocab.Source {
	src, err := vocab.ParseSource(bytes.NewReader(owl2YAML))
	if err != nil {
		panic(errors.Wrap(err, "embedded owl2 vocabulary"))
	}
	return src
}

// Tables holds the three vocabulary tables a registry is built with.
type Tables struct {
	Builtins *vocab.Builtins
	Reserved *vocab.Reserved
	Punnings *vocab.Punnings
}

// NewTables builds the tables of src for the given profile.
func NewTables(src *vocab.Source, p vocab.Profile) (Tables, error) {
	b, r, pn, err := src.Tables(p, EntityTypes)
	if err != nil {
		return Tables{}, errors.Wrapf(err, "vocabulary tables for profile %s", p)
	}
	return Tables{Builtins: b, Reserved: r, Punnings: pn}, nil
}

// BuiltinProperties is the union of the builtin object, data and annotation
// properties of a registry. It is memoized on the builtins table when that
// table supports it.
func BuiltinProperties(r *view.Registry) *rdf.TermSet {
	builtins := r.Builtins()
	union := func() *rdf.TermSet {
		res := rdf.NewTermSet()
		for _, t := range []*view.Type{TypeObjectProperty, TypeDataProperty, TypeAnnotationProperty} {
			for n := range builtins.Get(t).All() {
				res.Add(n)
			}
		}
		return res
	}
	if m, ok := builtins.(view.Memoizer); ok {
		return m.Memo("properties", union)
	}
	return union()
}
