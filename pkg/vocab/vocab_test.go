package vocab

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleksaelezovic/ontoview/pkg/rdf"
	"github.com/aleksaelezovic/ontoview/pkg/view"
)

var (
	tClass    = view.NewType("Class")
	tDatatype = view.NewType("Datatype")
	tObject   = view.NewType("ObjectProperty")
	tData     = view.NewType("DataProperty")
	tAnnot    = view.NewType("AnnotationProperty")
	tIndiv    = view.NewType("NamedIndividual")

	types = map[string]*view.Type{
		Class:              tClass,
		Datatype:           tDatatype,
		ObjectProperty:     tObject,
		DataProperty:       tData,
		AnnotationProperty: tAnnot,
		NamedIndividual:    tIndiv,
	}
)

const testVocabulary = `
prefixes:
  owl: http://www.w3.org/2002/07/owl#
  rdfs: http://www.w3.org/2000/01/rdf-schema#
  ex: http://example.org/
entities:
  class:
    declared_by: owl:Class
    builtins: [owl:Thing]
  datatype:
    declared_by: rdfs:Datatype
    builtins: [rdfs:Literal]
  object_property:
    declared_by: owl:ObjectProperty
  data_property:
    declared_by: owl:DatatypeProperty
  annotation_property:
    declared_by: owl:AnnotationProperty
    builtins: [rdfs:label]
  named_individual:
    declared_by: owl:NamedIndividual
    reserved: [ex:nobody]
reserved: [owl:Thing, rdfs:Literal, rdfs:label, owl:Class, <http://example.org/special>]
profiles:
  classes-only:
    - [class, datatype]
`

func loadTest(t *testing.T) *Source {
	t.Helper()
	src, err := ParseSource(strings.NewReader(testVocabulary))
	require.NoError(t, err)
	return src
}

func iri(s string) *rdf.NamedNode { return rdf.NewNamedNode(s) }

func TestTablesRejectNonURIs(t *testing.T) {
	for _, n := range []rdf.Term{rdf.NewBlankNode("b"), rdf.NewLiteral("x")} {
		_, err := NewBuiltins(map[*view.Type][]rdf.Term{tClass: {n}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, view.ErrIllegalArgument))

		_, err = NewReserved(map[*view.Type][]rdf.Term{tClass: {n}})
		assert.True(t, errors.Is(err, view.ErrIllegalArgument))

		_, err = NewPunnings(map[*view.Type][]rdf.Term{tClass: {n}})
		assert.True(t, errors.Is(err, view.ErrIllegalArgument))
	}
}

func TestBuiltinsGetAndUnion(t *testing.T) {
	a, b := iri("http://example.org/a"), iri("http://example.org/b")
	bt, err := NewBuiltins(map[*view.Type][]rdf.Term{tObject: {a}, tData: {b}, tAnnot: nil})
	require.NoError(t, err)

	assert.True(t, bt.Get(tObject).Contains(a))
	assert.Zero(t, bt.Get(tClass).Len())
	assert.True(t, bt.Covers(tAnnot))
	assert.False(t, bt.Covers(tClass))

	u := bt.Union(tObject, tData, tAnnot)
	assert.Equal(t, 2, u.Len())
	assert.True(t, u.Contains(a))
	assert.True(t, u.Contains(b))
}

func TestReservedMemoComputesOnce(t *testing.T) {
	rt, err := NewReserved(map[*view.Type][]rdf.Term{tClass: nil})
	require.NoError(t, err)

	var calls atomic.Int32
	compute := func() *rdf.TermSet {
		calls.Add(1)
		return rdf.NewTermSet(iri("http://example.org/x"))
	}

	var wg sync.WaitGroup
	results := make([]*rdf.TermSet, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = rt.Memo("k", compute)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Same(t, results[0], r)
	}

	other := rt.Memo("other", func() *rdf.TermSet { return nil })
	assert.NotNil(t, other)
	assert.Zero(t, other.Len())
}

func TestBuiltinsMemoIsPerTable(t *testing.T) {
	a := iri("http://example.org/a")
	first, err := NewBuiltins(map[*view.Type][]rdf.Term{tObject: {a}})
	require.NoError(t, err)
	second, err := NewBuiltins(map[*view.Type][]rdf.Term{tObject: nil})
	require.NoError(t, err)

	union := func(b *Builtins) func() *rdf.TermSet {
		return func() *rdf.TermSet { return b.Union(tObject) }
	}
	got := first.Memo("objects", union(first))
	assert.True(t, got.Contains(a))
	assert.Same(t, got, first.Memo("objects", union(second)))
	assert.Zero(t, second.Memo("objects", union(second)).Len())
}

func TestProfiles(t *testing.T) {
	declaring := map[string]rdf.Term{
		Class:              iri("http://www.w3.org/2002/07/owl#Class"),
		Datatype:           iri("http://www.w3.org/2000/01/rdf-schema#Datatype"),
		ObjectProperty:     iri("http://www.w3.org/2002/07/owl#ObjectProperty"),
		DataProperty:       iri("http://www.w3.org/2002/07/owl#DatatypeProperty"),
		AnnotationProperty: iri("http://www.w3.org/2002/07/owl#AnnotationProperty"),
		NamedIndividual:    iri("http://www.w3.org/2002/07/owl#NamedIndividual"),
	}

	tests := []struct {
		profile Profile
		typ     *view.Type
		want    []rdf.Term
	}{
		{Strict, tClass, []rdf.Term{declaring[Datatype]}},
		{Strict, tDatatype, []rdf.Term{declaring[Class]}},
		{Strict, tObject, []rdf.Term{declaring[DataProperty], declaring[AnnotationProperty]}},
		{Strict, tAnnot, []rdf.Term{declaring[ObjectProperty], declaring[DataProperty]}},
		{Strict, tIndiv, nil},
		{Weak, tObject, []rdf.Term{declaring[DataProperty]}},
		{Weak, tAnnot, nil},
		{Lax, tClass, nil},
	}
	for _, tt := range tests {
		t.Run(tt.profile.Name+"/"+tt.typ.String(), func(t *testing.T) {
			pt, err := tt.profile.Punnings(types, declaring)
			require.NoError(t, err)
			for _, typ := range types {
				assert.True(t, pt.Covers(typ), "profile %s must cover %s", tt.profile, typ)
			}
			assert.ElementsMatch(t, tt.want, pt.Get(tt.typ).Slice())
		})
	}
}

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile("WEAK")
	require.NoError(t, err)
	assert.Equal(t, "weak", p.Name)

	_, err = ParseProfile("loose")
	require.Error(t, err)
	assert.True(t, errors.Is(err, view.ErrIllegalArgument))
}

func TestSourceTables(t *testing.T) {
	src := loadTest(t)
	p, err := src.Profile("classes-only")
	require.NoError(t, err)

	bt, rt, pt, err := src.Tables(p, types)
	require.NoError(t, err)

	thing := iri("http://www.w3.org/2002/07/owl#Thing")
	assert.True(t, bt.Get(tClass).Contains(thing))
	assert.False(t, rt.Get(tClass).Contains(thing), "own builtins are never reserved")
	assert.True(t, rt.Get(tDatatype).Contains(thing))
	assert.True(t, rt.Get(tIndiv).Contains(iri("http://example.org/nobody")))
	assert.False(t, rt.Get(tClass).Contains(iri("http://example.org/nobody")))
	assert.True(t, rt.Get(tClass).Contains(iri("http://example.org/special")))

	assert.Equal(t, 1, pt.Get(tClass).Len())
	assert.Zero(t, pt.Get(tObject).Len())
	for _, typ := range types {
		assert.True(t, bt.Covers(typ))
		assert.True(t, rt.Covers(typ))
		assert.True(t, pt.Covers(typ))
	}
}

func TestSourceErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "entities:\n  class:\n    declared_by: owl:Class\n    typo: 1\n"},
		{"no entities", "prefixes: {}\n"},
		{"missing declared_by", "entities:\n  class: {}\n"},
		{"unknown profile entity", "entities:\n  class:\n    declared_by: x:C\nprofiles:\n  p: [[class, nope]]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSource(strings.NewReader(tt.yaml))
			require.Error(t, err)
		})
	}

	src := loadTest(t)
	_, err := src.Resolve("nope:x")
	assert.True(t, errors.Is(err, view.ErrIllegalArgument))
	_, err = src.Resolve("plain")
	assert.True(t, errors.Is(err, view.ErrIllegalArgument))

	n, err := src.Resolve("ex:a")
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/a", n.IRI)

	extra := map[string]*view.Type{"unknown": view.NewType("X")}
	_, _, _, err = src.Tables(Lax, extra)
	assert.True(t, errors.Is(err, view.ErrIllegalArgument))
}
