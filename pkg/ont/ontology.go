package ont

import (
	"iter"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aleksaelezovic/ontoview/pkg/graph"
	"github.com/aleksaelezovic/ontoview/pkg/ns"
	"github.com/aleksaelezovic/ontoview/pkg/rdf"
	"github.com/aleksaelezovic/ontoview/pkg/view"
	"github.com/aleksaelezovic/ontoview/pkg/vocab"
)

// Ontology is a graph viewed through an OWL2 registry. It implements view.Model.
type Ontology struct {
	graph.Graph
	registry *view.Registry
	collapse bool
	logger   *zap.Logger
}

var _ view.Model = (*Ontology)(nil)

type options struct {
	profile  vocab.Profile
	source   *vocab.Source
	registry *view.Registry
	collapse bool
	logger   *zap.Logger
}

// Option configures an Ontology.
type Option func(*options)

// WithProfile selects the punning profile of the default registry. Default: strict.
func WithProfile(p vocab.Profile) Option {
	return func(o *options) { o.profile = p }
}

// WithVocabulary replaces the standard OWL2 vocabulary of the default registry.
func WithVocabulary(src *vocab.Source) Option {
	return func(o *options) { o.source = src }
}

// WithRegistry uses r instead of building the default registry.
// Profile and vocabulary options are then ignored.
func WithRegistry(r *view.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithEquivalenceCollapsing controls whether direct hierarchy queries treat
// mutually sub-of nodes as one group. Default: true.
func WithEquivalenceCollapsing(enabled bool) Option {
	return func(o *options) { o.collapse = enabled }
}

// WithLogger sets the logger used for graph mutations and registry builds.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New views g as an ontology.
func New(g graph.Graph, opts ...Option) (*Ontology, error) {
	if g == nil {
		return nil, errors.Wrap(view.ErrIllegalArgument, "nil graph")
	}
	o := options{profile: vocab.Strict, collapse: true, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	r := o.registry
	if r == nil {
		src := o.source
		if src == nil {
			src = DefaultSource()
		}
		tables, err := NewTables(src, o.profile)
		if err != nil {
			return nil, err
		}
		if r, err = DefaultRegistry(tables, o.logger); err != nil {
			return nil, err
		}
	}
	o.logger.Debug("ontology opened",
		zap.String("profile", o.profile.Name),
		zap.Bool("collapse_equivalents", o.collapse))
	return &Ontology{Graph: g, registry: r, collapse: o.collapse, logger: o.logger}, nil
}

func (o *Ontology) Registry() *view.Registry { return o.registry }

func (o *Ontology) collapseEquivalents() bool { return o.collapse }

// Objects lists every node resolvable as t.
func (o *Ontology) Objects(t *view.Type) iter.Seq[view.Object] {
	return view.Objects(o, t)
}

func (o *Ontology) Classes() iter.Seq[*Class] {
	return view.ObjectsAs[*Class](o, TypeClass)
}

func (o *Ontology) Datatypes() iter.Seq[*Datatype] {
	return view.ObjectsAs[*Datatype](o, TypeDatatype)
}

func (o *Ontology) ObjectProperties() iter.Seq[*ObjectProperty] {
	return view.ObjectsAs[*ObjectProperty](o, TypeObjectProperty)
}

func (o *Ontology) DataProperties() iter.Seq[*DataProperty] {
	return view.ObjectsAs[*DataProperty](o, TypeDataProperty)
}

func (o *Ontology) AnnotationProperties() iter.Seq[*AnnotationProperty] {
	return view.ObjectsAs[*AnnotationProperty](o, TypeAnnotationProperty)
}

func (o *Ontology) NamedIndividuals() iter.Seq[*NamedIndividual] {
	return view.ObjectsAs[*NamedIndividual](o, TypeNamedIndividual)
}

func (o *Ontology) Restrictions() iter.Seq[*Restriction] {
	return view.ObjectsAs[*Restriction](o, TypeRestriction)
}

// As resolves node as t.
func (o *Ontology) As(node rdf.Term, t *view.Type) (view.Object, error) {
	return view.As(node, o, t)
}

// ClassExpression resolves node as any class expression.
func (o *Ontology) ClassExpression(node rdf.Term) (ClassExpression, error) {
	return view.AsType[ClassExpression](node, o, TypeClassExpression)
}

func createEntity[T view.Object](o *Ontology, iri string, t *view.Type) (T, error) {
	var zero T
	node := rdf.NewNamedNode(iri)
	obj, err := view.Create(node, o, t)
	if err != nil {
		return zero, err
	}
	o.logger.Debug("entity created", zap.String("iri", iri), zap.Stringer("type", t))
	res, ok := obj.(T)
	if !ok {
		return zero, view.IllegalState("factory for %s produced %T", t, obj)
	}
	return res, nil
}

// CreateClass declares iri as a class.
func (o *Ontology) CreateClass(iri string) (*Class, error) {
	return createEntity[*Class](o, iri, TypeClass)
}

func (o *Ontology) CreateDatatype(iri string) (*Datatype, error) {
	return createEntity[*Datatype](o, iri, TypeDatatype)
}

func (o *Ontology) CreateObjectProperty(iri string) (*ObjectProperty, error) {
	return createEntity[*ObjectProperty](o, iri, TypeObjectProperty)
}

func (o *Ontology) CreateDataProperty(iri string) (*DataProperty, error) {
	return createEntity[*DataProperty](o, iri, TypeDataProperty)
}

func (o *Ontology) CreateAnnotationProperty(iri string) (*AnnotationProperty, error) {
	return createEntity[*AnnotationProperty](o, iri, TypeAnnotationProperty)
}

func (o *Ontology) CreateNamedIndividual(iri string) (*NamedIndividual, error) {
	return createEntity[*NamedIndividual](o, iri, TypeNamedIndividual)
}

// blank mints a fresh blank node.
func (o *Ontology) blank() rdf.Term {
	return rdf.NewBlankNode(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// insert adds the triples in order, stopping at the first failure.
func (o *Ontology) insert(triples ...rdf.Triple) error {
	for _, t := range triples {
		if err := o.Add(t.Subject, t.Predicate, t.Object); err != nil {
			return errors.Wrapf(err, "insert %s", t)
		}
	}
	return nil
}

func nodesOf[T view.Object](objs []T) []rdf.Term {
	res := make([]rdf.Term, len(objs))
	for i, obj := range objs {
		res[i] = obj.Node()
	}
	return res
}

// CreateList writes members as a new rdf:List.
func (o *Ontology) CreateList(members ...rdf.Term) (*List, error) {
	head, err := insertList(o, o.blank, members)
	if err != nil {
		return nil, err
	}
	return view.AsType[*List](head, o, TypeList)
}

func (o *Ontology) createNary(p rdf.Term, t *view.Type, classes []ClassExpression) (rdf.Term, error) {
	head, err := insertList(o, o.blank, nodesOf(classes))
	if err != nil {
		return nil, err
	}
	b := o.blank()
	if err := o.insert(
		rdf.NewTriple(b, ns.RDFType, ns.OWLClass),
		rdf.NewTriple(b, p, head),
	); err != nil {
		return nil, err
	}
	o.logger.Debug("class expression created", zap.Stringer("type", t), zap.Int("operands", len(classes)))
	return b, nil
}

// CreateUnionOf writes an anonymous union of the given classes.
func (o *Ontology) CreateUnionOf(classes ...ClassExpression) (*UnionOf, error) {
	b, err := o.createNary(ns.OWLUnionOf, TypeUnionOf, classes)
	if err != nil {
		return nil, err
	}
	return view.AsType[*UnionOf](b, o, TypeUnionOf)
}

// CreateIntersectionOf writes an anonymous intersection of the given classes.
func (o *Ontology) CreateIntersectionOf(classes ...ClassExpression) (*IntersectionOf, error) {
	b, err := o.createNary(ns.OWLIntersectionOf, TypeIntersectionOf, classes)
	if err != nil {
		return nil, err
	}
	return view.AsType[*IntersectionOf](b, o, TypeIntersectionOf)
}

func (o *Ontology) createValuesFrom(p Property, filler view.Object, edge rdf.Term, objType, dataType *view.Type) (*Restriction, error) {
	t := dataType
	if p.Type().Is(TypeObjectPropertyExpression) {
		t = objType
	}
	b := o.blank()
	if err := o.insert(
		rdf.NewTriple(b, ns.RDFType, ns.OWLRestriction),
		rdf.NewTriple(b, ns.OWLOnProperty, p.Node()),
		rdf.NewTriple(b, edge, filler.Node()),
	); err != nil {
		return nil, err
	}
	o.logger.Debug("restriction created", zap.Stringer("type", t), zap.Stringer("property", p.Node()))
	return view.AsType[*Restriction](b, o, t)
}

// CreateSomeValuesFrom writes an existential restriction. The restriction is
// an object or data restriction according to p.
func (o *Ontology) CreateSomeValuesFrom(p Property, filler view.Object) (*Restriction, error) {
	return o.createValuesFrom(p, filler, ns.OWLSomeValuesFrom, TypeObjectSomeValuesFrom, TypeDataSomeValuesFrom)
}

// CreateAllValuesFrom writes a universal restriction.
func (o *Ontology) CreateAllValuesFrom(p Property, filler view.Object) (*Restriction, error) {
	return o.createValuesFrom(p, filler, ns.OWLAllValuesFrom, TypeObjectAllValuesFrom, TypeDataAllValuesFrom)
}

// CreateDisjointClasses writes an owl:AllDisjointClasses group.
func (o *Ontology) CreateDisjointClasses(classes ...ClassExpression) (*Disjoint, error) {
	if len(classes) < 2 {
		return nil, errors.Wrapf(view.ErrIllegalArgument, "disjoint classes need at least two members, got %d", len(classes))
	}
	head, err := insertList(o, o.blank, nodesOf(classes))
	if err != nil {
		return nil, err
	}
	b := o.blank()
	if err := o.insert(
		rdf.NewTriple(b, ns.RDFType, ns.OWLAllDisjointClasses),
		rdf.NewTriple(b, ns.OWLMembers, head),
	); err != nil {
		return nil, err
	}
	return view.AsType[*Disjoint](b, o, TypeDisjointClasses)
}
