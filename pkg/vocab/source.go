package vocab

import (
	"bytes"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/aleksaelezovic/ontoview/pkg/rdf"
	"github.com/aleksaelezovic/ontoview/pkg/view"
)

// Source is the content of a vocabulary: which nodes are builtin, reserved or
// declaring per entity. Nodes are written as prefixed names (owl:Thing) or as
// absolute IRIs, optionally in angle brackets.
type Source struct {
	Prefixes map[string]string       `yaml:"prefixes"`
	Reserved []string                `yaml:"reserved"`
	Entities map[string]EntitySource `yaml:"entities"`
	Profiles map[string][]Pair       `yaml:"profiles,omitempty"`
}

// EntitySource describes one entity kind.
type EntitySource struct {
	DeclaredBy string   `yaml:"declared_by"`
	Builtins   []string `yaml:"builtins,omitempty"`
	Reserved   []string `yaml:"reserved,omitempty"`
}

// LoadSource reads a YAML vocabulary file.
func LoadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read vocabulary file")
	}
	return ParseSource(bytes.NewReader(data))
}

// ParseSource decodes a YAML vocabulary. Unknown fields are rejected.
func ParseSource(r io.Reader) (*Source, error) {
	var src Source
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&src); err != nil {
		return nil, errors.Wrap(err, "failed to parse vocabulary YAML")
	}
	if err := src.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid vocabulary")
	}
	return &src, nil
}

func (s *Source) validate() error {
	if len(s.Entities) == 0 {
		return errors.Wrap(view.ErrIllegalArgument, "no entities")
	}
	for name, e := range s.Entities {
		if e.DeclaredBy == "" {
			return errors.Wrapf(view.ErrIllegalArgument, "entity %q: missing declared_by", name)
		}
	}
	for name, pairs := range s.Profiles {
		for _, p := range pairs {
			for _, side := range p {
				if _, ok := s.Entities[side]; !ok {
					return errors.Wrapf(view.ErrIllegalArgument, "profile %q: unknown entity %q", name, side)
				}
			}
		}
	}
	return nil
}

// Resolve expands a prefixed name or IRI into a named node.
func (s *Source) Resolve(name string) (*rdf.NamedNode, error) {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "<") && strings.HasSuffix(name, ">") {
		return rdf.NewNamedNode(name[1 : len(name)-1]), nil
	}
	if strings.Contains(name, "://") || strings.HasPrefix(name, "urn:") {
		return rdf.NewNamedNode(name), nil
	}
	prefix, local, ok := strings.Cut(name, ":")
	if !ok {
		return nil, errors.Wrapf(view.ErrIllegalArgument, "%q is neither a prefixed name nor an IRI", name)
	}
	base, ok := s.Prefixes[prefix]
	if !ok {
		return nil, errors.Wrapf(view.ErrIllegalArgument, "undefined prefix %q in %q", prefix, name)
	}
	return rdf.NewNamedNode(base + local), nil
}

func (s *Source) resolveAll(names []string) ([]rdf.Term, error) {
	res := make([]rdf.Term, 0, len(names))
	for _, n := range names {
		node, err := s.Resolve(n)
		if err != nil {
			return nil, err
		}
		res = append(res, node)
	}
	return res, nil
}

// Profile returns the named profile, preferring one defined by the source
// over the standard profiles.
func (s *Source) Profile(name string) (Profile, error) {
	if pairs, ok := s.Profiles[name]; ok {
		return Profile{Name: name, Pairs: pairs}, nil
	}
	return ParseProfile(name)
}

// Declaring returns the declaring type node of every entity.
func (s *Source) Declaring() (map[string]rdf.Term, error) {
	res := make(map[string]rdf.Term, len(s.Entities))
	for name, e := range s.Entities {
		node, err := s.Resolve(e.DeclaredBy)
		if err != nil {
			return nil, errors.Wrapf(err, "entity %q", name)
		}
		res[name] = node
	}
	return res, nil
}

// Tables builds the three vocabulary tables for profile p. types maps every
// entity name of the source to its view type; extra view types are an error.
// Reserved identifiers of an entity never include its own builtins.
func (s *Source) Tables(p Profile, types map[string]*view.Type) (*Builtins, *Reserved, *Punnings, error) {
	for name := range types {
		if _, ok := s.Entities[name]; !ok {
			return nil, nil, nil, errors.Wrapf(view.ErrIllegalArgument, "vocabulary has no entity %q", name)
		}
	}
	common, err := s.resolveAll(s.Reserved)
	if err != nil {
		return nil, nil, nil, err
	}

	builtins := make(map[*view.Type][]rdf.Term, len(types))
	reserved := make(map[*view.Type][]rdf.Term, len(types))
	for _, name := range sortedKeys(types) {
		t, e := types[name], s.Entities[name]
		b, err := s.resolveAll(e.Builtins)
		if err != nil {
			return nil, nil, nil, errors.Wrapf(err, "entity %q builtins", name)
		}
		own, err := s.resolveAll(e.Reserved)
		if err != nil {
			return nil, nil, nil, errors.Wrapf(err, "entity %q reserved", name)
		}
		builtinSet := rdf.NewTermSet(b...)
		var res []rdf.Term
		for _, n := range slices.Concat(common, own) {
			if !builtinSet.Contains(n) {
				res = append(res, n)
			}
		}
		builtins[t] = b
		reserved[t] = res
	}

	declaring, err := s.Declaring()
	if err != nil {
		return nil, nil, nil, err
	}
	bt, err := NewBuiltins(builtins)
	if err != nil {
		return nil, nil, nil, err
	}
	rt, err := NewReserved(reserved)
	if err != nil {
		return nil, nil, nil, err
	}
	pt, err := p.Punnings(types, declaring)
	if err != nil {
		return nil, nil, nil, err
	}
	return bt, rt, pt, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
