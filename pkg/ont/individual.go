package ont

import (
	"github.com/aleksaelezovic/ontoview/pkg/ns"
	"github.com/aleksaelezovic/ontoview/pkg/view"
)

func anonymousIndividualFactory() (*view.SimpleFactory, error) {
	return view.NewFactory(TypeAnonymousIndividual, view.AllBlankSubjects,
		view.And(view.IsBlank, anyObject(ns.RDFType, classExpressionHead)),
		view.NewInstantiator(newAnonymousIndividual))
}

func inverseObjectPropertyFactory() (*view.SimpleFactory, error) {
	return view.NewFactory(TypeInverseObjectProperty, view.SubjectsOf(ns.OWLInverseOf, true),
		view.And(view.IsBlank, anyObject(ns.OWLInverseOf, view.CanAs(TypeObjectProperty))),
		view.NewInstantiator(newInverseObjectProperty))
}

func listFactory() (*view.SimpleFactory, error) {
	return view.NewFactory(TypeList, view.SubjectsOf(ns.RDFFirst, true), listShape,
		view.NewInstantiator(newList))
}

