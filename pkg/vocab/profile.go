package vocab

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/aleksaelezovic/ontoview/pkg/rdf"
	"github.com/aleksaelezovic/ontoview/pkg/view"
)

// Entity names used by profiles and vocabulary sources.
const (
	Class              = "class"
	Datatype           = "datatype"
	ObjectProperty     = "object_property"
	DataProperty       = "data_property"
	AnnotationProperty = "annotation_property"
	NamedIndividual    = "named_individual"
)

// Pair is an unordered pair of entity names that must not be punned.
type Pair [2]string

// Profile is a punning strictness level.
type Profile struct {
	Name  string
	Pairs []Pair
}

// Standard profiles.
var (
	Strict = Profile{Name: "strict", Pairs: []Pair{
		{Class, Datatype},
		{ObjectProperty, DataProperty},
		{ObjectProperty, AnnotationProperty},
		{DataProperty, AnnotationProperty},
	}}
	Weak = Profile{Name: "weak", Pairs: []Pair{
		{Class, Datatype},
		{ObjectProperty, DataProperty},
	}}
	Lax = Profile{Name: "lax"}
)

func (p Profile) String() string { return p.Name }

// ParseProfile returns the standard profile with the given name.
func ParseProfile(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "strict", "":
		return Strict, nil
	case "weak":
		return Weak, nil
	case "lax":
		return Lax, nil
	}
	return Profile{}, errors.WithHint(
		errors.Wrapf(view.ErrIllegalArgument, "unknown punning profile %q", name),
		"use one of strict, weak, lax")
}

// Punnings builds the punnings table of p. types maps entity names to view
// types and declaring maps entity names to their declaring type nodes.
// Each pair applies both ways: the declaring type of one side is forbidden on
// the other. Every type in types gets an entry, possibly empty.
func (p Profile) Punnings(types map[string]*view.Type, declaring map[string]rdf.Term) (*Punnings, error) {
	sets := make(map[*view.Type][]rdf.Term, len(types))
	for _, t := range types {
		sets[t] = nil
	}
	for _, pair := range p.Pairs {
		for i := range 2 {
			self, other := pair[i], pair[1-i]
			t, ok := types[self]
			if !ok {
				return nil, errors.Wrapf(view.ErrIllegalArgument, "profile %s: unknown entity %q", p.Name, self)
			}
			decl, ok := declaring[other]
			if !ok {
				return nil, errors.Wrapf(view.ErrIllegalArgument, "profile %s: no declaring type for %q", p.Name, other)
			}
			sets[t] = append(sets[t], decl)
		}
	}
	return NewPunnings(sets)
}
