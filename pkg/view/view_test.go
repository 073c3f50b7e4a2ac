package view_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleksaelezovic/ontoview/pkg/graph"
	"github.com/aleksaelezovic/ontoview/pkg/ns"
	"github.com/aleksaelezovic/ontoview/pkg/rdf"
	"github.com/aleksaelezovic/ontoview/pkg/view"
	"github.com/aleksaelezovic/ontoview/pkg/vocab"
)

const ex = "http://example.org/"

var (
	kind   = rdf.NewNamedNode(ex + "kind")
	circle = rdf.NewLiteral("circle")
	square = rdf.NewLiteral("square")

	TypeShape  = view.NewType("Shape")
	TypeCircle = view.NewType("Circle", TypeShape)
	TypeSquare = view.NewType("Square", TypeShape)
)

type shape struct {
	view.Base
}

func hasKind(value rdf.Term) view.Predicate {
	return view.Func(func(n rdf.Term, m view.Model) bool {
		return m.Contains(n, kind, value)
	})
}

func shapeFactory(t *view.Type, value rdf.Term) *view.SimpleFactory {
	f, err := view.NewFactory(t, view.SubjectsOf(kind, true), hasKind(value),
		view.NewInstantiator(func(n rdf.Term, m view.Model) view.Object {
			return &shape{view.NewBase(n, m, t)}
		}))
	if err != nil {
		panic(err)
	}
	return f
}

type tables struct {
	builtins *vocab.Builtins
	reserved *vocab.Reserved
	punnings *vocab.Punnings
}

func emptyTables(t *testing.T, types ...*view.Type) tables {
	t.Helper()
	sets := make(map[*view.Type][]rdf.Term)
	for _, typ := range types {
		sets[typ] = nil
	}
	b, err := vocab.NewBuiltins(sets)
	require.NoError(t, err)
	r, err := vocab.NewReserved(sets)
	require.NoError(t, err)
	p, err := vocab.NewPunnings(sets)
	require.NoError(t, err)
	return tables{b, r, p}
}

func shapeRegistry(t *testing.T) *view.Registry {
	t.Helper()
	circles := shapeFactory(TypeCircle, circle)
	squares := shapeFactory(TypeSquare, square)
	shapes, err := view.NewComposite(TypeShape, nil, nil, circles, squares)
	require.NoError(t, err)

	tb := emptyTables(t)
	r, err := view.NewBuilder().
		Register(TypeCircle, circles).
		Register(TypeSquare, squares).
		Register(TypeShape, shapes).
		Builtins(tb.builtins).Reserved(tb.reserved).Punnings(tb.punnings).
		Build()
	require.NoError(t, err)
	return r
}

func shapeModel(t *testing.T) (view.Model, rdf.Term, rdf.Term, rdf.Term) {
	t.Helper()
	g := graph.NewMemory()
	c := rdf.NewNamedNode(ex + "c")
	s := rdf.NewNamedNode(ex + "s")
	other := rdf.NewNamedNode(ex + "other")
	require.NoError(t, g.Add(c, kind, circle))
	require.NoError(t, g.Add(s, kind, square))
	require.NoError(t, g.Add(other, rdf.NewNamedNode(ex+"color"), rdf.NewLiteral("red")))
	return view.Bind(g, shapeRegistry(t)), c, s, other
}

func TestCompositeResolvesFirstMatch(t *testing.T) {
	m, c, s, other := shapeModel(t)

	obj, err := view.As(c, m, TypeShape)
	require.NoError(t, err)
	assert.Equal(t, TypeCircle, obj.Type())
	assert.True(t, obj.Node().Equals(c))

	obj, err = view.As(s, m, TypeShape)
	require.NoError(t, err)
	assert.Equal(t, TypeSquare, obj.Type())

	assert.False(t, view.Can(other, m, TypeShape))
	_, err = view.As(other, m, TypeShape)
	require.Error(t, err)
	assert.True(t, errors.Is(err, view.ErrConversion))

	var convErr *view.ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Len(t, convErr.Suppressed, 2)
	assert.Equal(t, TypeShape, convErr.Type)
}

func TestWrapConsistentWithCanWrap(t *testing.T) {
	m, c, s, other := shapeModel(t)
	f, err := m.Registry().Lookup(TypeShape)
	require.NoError(t, err)

	nodes := []rdf.Term{c, s, other, circle, kind, rdf.NewBlankNode("b0")}
	for _, factory := range []view.Factory{f, shapeFactory(TypeCircle, circle), shapeFactory(TypeSquare, square)} {
		for _, n := range nodes {
			obj, err := factory.Wrap(n, m)
			if factory.CanWrap(n, m) {
				require.NoError(t, err, "%s on %s", factory.Type(), n)
				assert.NotNil(t, obj)
			} else {
				require.Error(t, err, "%s on %s", factory.Type(), n)
				assert.True(t, errors.Is(err, view.ErrConversion))
			}
		}
	}
}

func TestCompositeFlattening(t *testing.T) {
	a := shapeFactory(TypeCircle, circle)
	b := shapeFactory(TypeSquare, square)
	c := shapeFactory(TypeShape, rdf.NewLiteral("triangle"))

	inner, err := view.NewComposite(TypeShape, nil, nil, b, c)
	require.NoError(t, err)
	nested, err := view.NewComposite(TypeShape, nil, nil, a, inner)
	require.NoError(t, err)
	flat, err := view.NewComposite(TypeShape, nil, nil, a, b, c)
	require.NoError(t, err)

	assert.Equal(t, flat.Factories(), nested.Factories())

	m, cn, sn, other := shapeModel(t)
	for _, n := range []rdf.Term{cn, sn, other} {
		assert.Equal(t, flat.CanWrap(n, m), nested.CanWrap(n, m))
		fo, fok := flat.CreateInstance(n, m)
		no, nok := nested.CreateInstance(n, m)
		assert.Equal(t, fok, nok)
		if fok {
			assert.Equal(t, fo.Type(), no.Type())
		}
	}
}

func TestCompositeRejectsEmpty(t *testing.T) {
	_, err := view.NewComposite(TypeShape, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, view.ErrIllegalArgument))
}

func TestCompositeFittingAndLocator(t *testing.T) {
	m, c, s, _ := shapeModel(t)
	onlyC := view.InSet(rdf.NewTermSet(c))
	comp, err := view.NewComposite(TypeShape, view.SubjectsOf(kind, true), onlyC,
		shapeFactory(TypeCircle, circle), shapeFactory(TypeSquare, square))
	require.NoError(t, err)

	assert.True(t, comp.CanWrap(c, m))
	assert.False(t, comp.CanWrap(s, m))
	_, ok := comp.CreateInstance(s, m)
	assert.False(t, ok)

	var found []rdf.Term
	for obj := range comp.Iterator(m) {
		found = append(found, obj.Node())
	}
	require.Len(t, found, 1)
	assert.True(t, found[0].Equals(c))
}

func TestIteratorUnionIsDistinct(t *testing.T) {
	m, _, _, _ := shapeModel(t)
	circles := shapeFactory(TypeCircle, circle)
	comp, err := view.NewComposite(TypeShape, nil, nil, circles, circles, shapeFactory(TypeSquare, square))
	require.NoError(t, err)

	n := 0
	for range comp.Iterator(m) {
		n++
	}
	assert.Equal(t, 2, n)
}

func TestPredicateAbsorption(t *testing.T) {
	x := view.HasPredicate(kind)

	assert.Same(t, x, view.And(view.True, x))
	assert.Same(t, x, view.And(x, view.True))
	assert.Same(t, view.False, view.And(view.False, x))
	assert.Same(t, view.False, view.And(x, view.False))
	assert.Same(t, view.True, view.Or(view.True, x))
	assert.Same(t, view.True, view.Or(x, view.True))
	assert.Same(t, x, view.Or(view.False, x))
	assert.Same(t, x, view.Or(x, view.False))

	assert.Same(t, view.False, view.Not(view.True))
	assert.Same(t, view.True, view.Not(view.False))
	assert.Same(t, x, view.Not(view.Not(x)))

	assert.Same(t, view.True, view.AllOf())
	assert.Same(t, view.False, view.AnyOf())
	assert.Same(t, view.False, view.InSet(rdf.NewTermSet()))
}

func TestPredicateShortCircuit(t *testing.T) {
	calls := 0
	counting := view.Func(func(rdf.Term, view.Model) bool {
		calls++
		return true
	})
	reject := view.Func(func(rdf.Term, view.Model) bool { return false })
	accept := view.Func(func(rdf.Term, view.Model) bool { return true })

	m, c, _, _ := shapeModel(t)
	assert.False(t, view.And(reject, counting).Test(c, m))
	assert.True(t, view.Or(accept, counting).Test(c, m))
	assert.Zero(t, calls)
}

func TestAtoms(t *testing.T) {
	m, c, _, _ := shapeModel(t)
	b := rdf.NewBlankNode("x")

	assert.True(t, view.IsURI.Test(c, m))
	assert.False(t, view.IsURI.Test(b, m))
	assert.True(t, view.IsBlank.Test(b, m))
	assert.True(t, view.IsLiteral.Test(circle, m))
	assert.True(t, view.HasPredicate(kind).Test(c, m))
	assert.False(t, view.HasPredicate(kind).Test(circle, m))
	assert.False(t, view.HasType(ns.OWLClass).Test(c, m))
	assert.True(t, view.CanAs(TypeCircle).Test(c, m))
	assert.False(t, view.CanAs(view.NewType("Unregistered")).Test(c, m))
}

func TestRestrictLocator(t *testing.T) {
	l := view.SubjectsOf(kind, true)
	assert.Same(t, l, view.Restrict(l, view.True))
	assert.Equal(t, view.Empty, view.Restrict(l, view.False))

	m, c, _, _ := shapeModel(t)
	var got []rdf.Term
	for n := range view.Restrict(l, hasKind(circle)).Iterate(m) {
		got = append(got, n)
	}
	require.Len(t, got, 1)
	assert.True(t, got[0].Equals(c))
}

func TestLocators(t *testing.T) {
	m, _, _, _ := shapeModel(t)
	count := func(l view.Locator) int {
		n := 0
		for range l.Iterate(m) {
			n++
		}
		return n
	}
	assert.Equal(t, 3, count(view.AllSubjects))
	assert.Equal(t, 0, count(view.AllBlankSubjects))
	assert.Equal(t, 6, count(view.AllSubjectsAndObjects))
	assert.Equal(t, 8, count(view.AllNodes))
	assert.Equal(t, 0, count(view.Empty))
	assert.Equal(t, 3, count(view.Concat(view.SubjectsOf(kind, true), view.AllSubjects)))
}

func TestInstantiators(t *testing.T) {
	g := graph.NewMemory()
	m := view.Bind(g, shapeRegistry(t))
	n := rdf.NewNamedNode(ex + "new")
	construct := func(n rdf.Term, m view.Model) view.Object { return &shape{view.NewBase(n, m, TypeCircle)} }

	ro := view.NewInstantiator(construct)
	assert.False(t, ro.CanInsert(n, m))
	err := ro.Insert(n, m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, view.ErrUnsupported))

	typed := view.WithType(ns.OWLClass, construct)
	assert.True(t, typed.CanInsert(n, m))
	require.NoError(t, typed.Insert(n, m))
	assert.True(t, g.Contains(n, ns.RDFType, ns.OWLClass))
	assert.Equal(t, 1, g.Len())

	restricted := view.RestrictInsert(typed, view.IsBlank)
	assert.False(t, restricted.CanInsert(n, m))
	assert.True(t, restricted.CanInsert(rdf.NewBlankNode("b"), m))
}

func TestCreateInGraph(t *testing.T) {
	g := graph.NewMemory()
	m := view.Bind(g, shapeRegistry(t))
	n := rdf.NewNamedNode(ex + "new")

	f, err := view.NewFactory(TypeCircle, view.AllSubjects, view.HasType(ns.OWLClass),
		view.RestrictInsert(view.WithType(ns.OWLClass, func(n rdf.Term, m view.Model) view.Object {
			return &shape{view.NewBase(n, m, TypeCircle)}
		}), view.IsURI))
	require.NoError(t, err)

	_, err = f.CreateInGraph(rdf.NewBlankNode("b"), m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, view.ErrCreation))
	assert.Zero(t, g.Len())

	obj, err := f.CreateInGraph(n, m)
	require.NoError(t, err)
	assert.True(t, obj.Node().Equals(n))
	assert.True(t, f.CanWrap(n, m))

	_, err = view.Create(n, m, TypeShape)
	require.Error(t, err)
	assert.True(t, errors.Is(err, view.ErrCreation))
}

func TestNewFactoryRejectsNilComponents(t *testing.T) {
	_, err := view.NewFactory(TypeCircle, nil, view.True, view.NewInstantiator(nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, view.ErrIllegalArgument))
}

func TestBuildRequiresReservedTable(t *testing.T) {
	tb := emptyTables(t)
	_, err := view.NewBuilder().
		Register(TypeCircle, shapeFactory(TypeCircle, circle)).
		Builtins(tb.builtins).
		Punnings(tb.punnings).
		Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, view.ErrIllegalArgument))
}

func TestBuildRequiresCoverage(t *testing.T) {
	full := emptyTables(t, TypeCircle, TypeSquare)
	partial := emptyTables(t, TypeCircle)

	_, err := view.NewBuilder().
		Entities(TypeCircle, TypeSquare).
		Builtins(full.builtins).Reserved(partial.reserved).Punnings(full.punnings).
		Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, view.ErrIllegalArgument))

	_, err = view.NewBuilder().
		Entities(TypeCircle, TypeSquare).
		Builtins(full.builtins).Reserved(full.reserved).Punnings(full.punnings).
		Build()
	require.NoError(t, err)
}

func TestRegistryLookup(t *testing.T) {
	r := shapeRegistry(t)
	assert.True(t, r.Supports(TypeCircle))
	assert.Equal(t, []*view.Type{TypeCircle, TypeSquare, TypeShape}, r.Types())
	assert.Equal(t, []*view.Type{TypeCircle, TypeSquare, TypeShape}, r.TypesOf(TypeShape))
	assert.Equal(t, []*view.Type{TypeSquare}, r.TypesOf(TypeSquare))

	_, err := r.Lookup(view.NewType("Triangle"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, view.ErrUnsupportedType))
}

func TestDeriveOverlay(t *testing.T) {
	parent := shapeRegistry(t)
	parentCircles, err := parent.Lookup(TypeCircle)
	require.NoError(t, err)

	TypeTriangle := view.NewType("Triangle", TypeShape)
	child, err := parent.Derive().
		Unregister(TypeSquare).
		Register(TypeTriangle, shapeFactory(TypeTriangle, rdf.NewLiteral("triangle"))).
		Build()
	require.NoError(t, err)

	childCircles, err := child.Lookup(TypeCircle)
	require.NoError(t, err)
	assert.Same(t, parentCircles, childCircles)

	assert.False(t, child.Supports(TypeSquare))
	assert.True(t, child.Supports(TypeTriangle))
	assert.Equal(t, []*view.Type{TypeCircle, TypeShape, TypeTriangle}, child.Types())

	assert.True(t, parent.Supports(TypeSquare))
	assert.False(t, parent.Supports(TypeTriangle))
}

func TestAsType(t *testing.T) {
	m, c, _, _ := shapeModel(t)
	s, err := view.AsType[*shape](c, m, TypeCircle)
	require.NoError(t, err)
	assert.Equal(t, "<http://example.org/c> as Circle", s.String())

	_, err = view.AsType[*shape](c, m, view.NewType("Unknown"))
	assert.True(t, errors.Is(err, view.ErrUnsupportedType))

	n := 0
	for range view.ObjectsAs[*shape](m, TypeShape) {
		n++
	}
	assert.Equal(t, 2, n)
}

func TestTypeIs(t *testing.T) {
	assert.True(t, TypeCircle.Is(TypeCircle))
	assert.True(t, TypeCircle.Is(TypeShape))
	assert.False(t, TypeShape.Is(TypeCircle))
	deep := view.NewType("Deep", TypeCircle)
	assert.True(t, deep.Is(TypeShape))
}
