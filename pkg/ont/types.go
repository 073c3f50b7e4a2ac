// Package ont views the nodes of an RDF graph as OWL2 constructs.
//
// A node is resolved by shape alone: the same IRI may be a class and an
// individual at once, builtins such as owl:Thing need no declaration, and
// reserved vocabulary never denotes a user construct.
package ont

import (
	"github.com/aleksaelezovic/ontoview/pkg/view"
	"github.com/aleksaelezovic/ontoview/pkg/vocab"
)

// Abstract construct kinds. Each is registered as a composite over the
// concrete kinds that declare it.
var (
	TypeObject                   = view.NewType("Object")
	TypeEntity                   = view.NewType("Entity", TypeObject)
	TypeClassExpression          = view.NewType("ClassExpression", TypeObject)
	TypeDataRange                = view.NewType("DataRange", TypeObject)
	TypeProperty                 = view.NewType("Property", TypeObject)
	TypeObjectPropertyExpression = view.NewType("ObjectPropertyExpression", TypeProperty)
	TypeIndividual               = view.NewType("Individual", TypeObject)
	TypeRestriction              = view.NewType("Restriction", TypeClassExpression)
	TypeDisjoint                 = view.NewType("Disjoint", TypeObject)
)

// Entities
var (
	TypeClass              = view.NewType("Class", TypeEntity, TypeClassExpression)
	TypeDatatype           = view.NewType("Datatype", TypeEntity, TypeDataRange)
	TypeObjectProperty     = view.NewType("ObjectProperty", TypeEntity, TypeObjectPropertyExpression)
	TypeDataProperty       = view.NewType("DataProperty", TypeEntity, TypeProperty)
	TypeAnnotationProperty = view.NewType("AnnotationProperty", TypeEntity, TypeProperty)
	TypeNamedIndividual    = view.NewType("NamedIndividual", TypeEntity, TypeIndividual)
)

var (
	TypeInverseObjectProperty = view.NewType("InverseObjectProperty", TypeObjectPropertyExpression)
	TypeAnonymousIndividual   = view.NewType("AnonymousIndividual", TypeIndividual)
	TypeList                  = view.NewType("List", TypeObject)
)

// Restrictions
var (
	TypeObjectSomeValuesFrom = view.NewType("ObjectSomeValuesFrom", TypeRestriction)
	TypeObjectAllValuesFrom  = view.NewType("ObjectAllValuesFrom", TypeRestriction)
	TypeObjectHasValue       = view.NewType("ObjectHasValue", TypeRestriction)
	TypeObjectHasSelf        = view.NewType("ObjectHasSelf", TypeRestriction)
	TypeObjectMinCardinality = view.NewType("ObjectMinCardinality", TypeRestriction)
	TypeObjectMaxCardinality = view.NewType("ObjectMaxCardinality", TypeRestriction)
	TypeObjectCardinality    = view.NewType("ObjectCardinality", TypeRestriction)
	TypeDataSomeValuesFrom   = view.NewType("DataSomeValuesFrom", TypeRestriction)
	TypeDataAllValuesFrom    = view.NewType("DataAllValuesFrom", TypeRestriction)
	TypeDataHasValue         = view.NewType("DataHasValue", TypeRestriction)
	TypeDataMinCardinality   = view.NewType("DataMinCardinality", TypeRestriction)
	TypeDataMaxCardinality   = view.NewType("DataMaxCardinality", TypeRestriction)
	TypeDataCardinality      = view.NewType("DataCardinality", TypeRestriction)
)

// Boolean connectives and enumerations
var (
	TypeUnionOf        = view.NewType("UnionOf", TypeClassExpression)
	TypeIntersectionOf = view.NewType("IntersectionOf", TypeClassExpression)
	TypeComplementOf   = view.NewType("ComplementOf", TypeClassExpression)
	TypeOneOf          = view.NewType("OneOf", TypeClassExpression)
)

// Disjointness groups
var (
	TypeDisjointClasses          = view.NewType("DisjointClasses", TypeDisjoint)
	TypeDisjointObjectProperties = view.NewType("DisjointObjectProperties", TypeDisjoint)
	TypeDisjointDataProperties   = view.NewType("DisjointDataProperties", TypeDisjoint)
	TypeDifferentIndividuals     = view.NewType("DifferentIndividuals", TypeDisjoint)
)

// EntityTypes are the kinds every vocabulary table must cover, keyed by
// their vocabulary names.
var EntityTypes = map[string]*view.Type{
	vocab.Class:              TypeClass,
	vocab.Datatype:           TypeDatatype,
	vocab.ObjectProperty:     TypeObjectProperty,
	vocab.DataProperty:       TypeDataProperty,
	vocab.AnnotationProperty: TypeAnnotationProperty,
	vocab.NamedIndividual:    TypeNamedIndividual,
}

// TypeByName returns the registered kind with the given name, case-sensitively.
func TypeByName(r *view.Registry, name string) (*view.Type, bool) {
	for _, t := range r.Types() {
		if t.String() == name {
			return t, true
		}
	}
	return nil, false
}
