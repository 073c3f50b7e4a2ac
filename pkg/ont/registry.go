package ont

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/aleksaelezovic/ontoview/pkg/ns"
	"github.com/aleksaelezovic/ontoview/pkg/view"
)

// factories accumulates factories and the first construction error.
type factories struct {
	list []view.Factory
	err  error
}

func (f *factories) add(sf *view.SimpleFactory, err error) {
	if f.err != nil {
		return
	}
	if err != nil {
		f.err = err
		return
	}
	f.list = append(f.list, sf)
}

// of returns the collected factories whose type declares super.
func (f *factories) of(super *view.Type) []view.Factory {
	var res []view.Factory
	for _, sf := range f.list {
		if sf.Type().Is(super) {
			res = append(res, sf)
		}
	}
	return res
}

// DefaultBuilder returns a registry builder holding every OWL2 construct kind
// over the given tables. Callers may derive or adjust it before Build.
func DefaultBuilder(t Tables, logger *zap.Logger) (*view.Builder, error) {
	if t.Builtins == nil || t.Reserved == nil || t.Punnings == nil {
		return nil, errors.WithHint(errors.Wrap(view.ErrIllegalArgument, "incomplete vocabulary tables"),
			"build tables with NewTables")
	}
	var fs factories
	for _, k := range entityKinds {
		fs.add(entityFactory(k))
	}
	fs.add(inverseObjectPropertyFactory())
	fs.add(anonymousIndividualFactory())
	for _, k := range restrictionKinds {
		fs.add(k.factory())
	}
	exprs, err := expressionFactories()
	if err != nil {
		return nil, err
	}
	for _, e := range exprs {
		fs.add(e, nil)
	}
	for _, k := range disjointKinds {
		fs.add(k.factory())
	}
	fs.add(listFactory())
	if fs.err != nil {
		return nil, errors.Wrap(fs.err, "default factories")
	}

	b := view.NewBuilder().
		Builtins(t.Builtins).
		Reserved(t.Reserved).
		Punnings(t.Punnings).
		Entities(TypeClass, TypeDatatype, TypeObjectProperty, TypeDataProperty, TypeAnnotationProperty, TypeNamedIndividual).
		Logger(logger)
	for _, f := range fs.list {
		b.Register(f.Type(), f)
	}

	abstract := []struct {
		typ     *view.Type
		locator view.Locator
		fitting view.Predicate
	}{
		{TypeEntity, nil, view.IsURI},
		{TypeClassExpression, nil, view.Not(view.IsLiteral)},
		{TypeDataRange, nil, nil},
		{TypeProperty, nil, view.Not(view.IsLiteral)},
		{TypeObjectPropertyExpression, nil, view.Not(view.IsLiteral)},
		{TypeIndividual, nil, view.Not(view.IsLiteral)},
		{TypeRestriction, restrictionNodes, view.HasType(ns.OWLRestriction)},
		{TypeDisjoint, nil, nil},
		{TypeObject, nil, nil},
	}
	for _, a := range abstract {
		c, err := view.NewComposite(a.typ, a.locator, a.fitting, fs.of(a.typ)...)
		if err != nil {
			return nil, errors.Wrapf(err, "composite %s", a.typ)
		}
		b.Register(a.typ, c)
	}
	return b, nil
}

// DefaultRegistry builds the default registry over t.
func DefaultRegistry(t Tables, logger *zap.Logger) (*view.Registry, error) {
	b, err := DefaultBuilder(t, logger)
	if err != nil {
		return nil, err
	}
	return b.Build()
}
