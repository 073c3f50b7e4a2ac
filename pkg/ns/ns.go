// Package ns holds the well-known RDF, RDFS, OWL and XSD vocabulary nodes.
//
// References:
//   - RDF 1.1 Concepts: https://www.w3.org/TR/rdf11-concepts/
//   - RDF Schema: https://www.w3.org/TR/rdf-schema/
//   - OWL 2 Mapping to RDF Graphs: https://www.w3.org/TR/owl2-mapping-to-rdf/
package ns

import "github.com/aleksaelezovic/ontoview/pkg/rdf"

// Namespace IRIs
const (
	RDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS = "http://www.w3.org/2000/01/rdf-schema#"
	OWL  = "http://www.w3.org/2002/07/owl#"
	XSD  = "http://www.w3.org/2001/XMLSchema#"
)

func rdfNode(local string) *rdf.NamedNode  { return rdf.NewNamedNode(RDF + local) }
func rdfsNode(local string) *rdf.NamedNode { return rdf.NewNamedNode(RDFS + local) }
func owlNode(local string) *rdf.NamedNode  { return rdf.NewNamedNode(OWL + local) }

// RDF vocabulary
var (
	RDFType       = rdfNode("type")
	RDFFirst      = rdfNode("first")
	RDFRest       = rdfNode("rest")
	RDFNil        = rdfNode("nil")
	RDFList       = rdfNode("List")
	RDFProperty   = rdfNode("Property")
	RDFPlainLit   = rdfNode("PlainLiteral")
	RDFXMLLiteral = rdfNode("XMLLiteral")
	RDFLangString = rdfNode("langString")
)

// RDFS vocabulary
var (
	RDFSResource       = rdfsNode("Resource")
	RDFSClass          = rdfsNode("Class")
	RDFSDatatype       = rdfsNode("Datatype")
	RDFSLiteral        = rdfsNode("Literal")
	RDFSSubClassOf     = rdfsNode("subClassOf")
	RDFSSubPropertyOf  = rdfsNode("subPropertyOf")
	RDFSDomain         = rdfsNode("domain")
	RDFSRange          = rdfsNode("range")
	RDFSLabel          = rdfsNode("label")
	RDFSComment        = rdfsNode("comment")
	RDFSSeeAlso        = rdfsNode("seeAlso")
	RDFSIsDefinedBy    = rdfsNode("isDefinedBy")
	RDFSMember         = rdfsNode("member")
	RDFSContainer      = rdfsNode("Container")
	RDFSContainerMembP = rdfsNode("ContainerMembershipProperty")
)

// OWL declarations
var (
	OWLClass              = owlNode("Class")
	OWLObjectProperty     = owlNode("ObjectProperty")
	OWLDatatypeProperty   = owlNode("DatatypeProperty")
	OWLAnnotationProperty = owlNode("AnnotationProperty")
	OWLNamedIndividual    = owlNode("NamedIndividual")
	OWLOntology           = owlNode("Ontology")
	OWLRestriction        = owlNode("Restriction")
	OWLAllDisjointClasses = owlNode("AllDisjointClasses")
	OWLAllDisjointProps   = owlNode("AllDisjointProperties")
	OWLAllDifferent       = owlNode("AllDifferent")
	OWLAxiom              = owlNode("Axiom")
	OWLAnnotation         = owlNode("Annotation")
	OWLDeprecatedClass    = owlNode("DeprecatedClass")
	OWLDeprecatedProperty = owlNode("DeprecatedProperty")
	OWLOntologyProperty   = owlNode("OntologyProperty")
	OWLFunctionalProperty = owlNode("FunctionalProperty")
	OWLTransitiveProperty = owlNode("TransitiveProperty")
	OWLSymmetricProperty  = owlNode("SymmetricProperty")
	OWLNegativeAssertion  = owlNode("NegativePropertyAssertion")
)

// OWL builtin entities
var (
	OWLThing                  = owlNode("Thing")
	OWLNothing                = owlNode("Nothing")
	OWLTopObjectProperty      = owlNode("topObjectProperty")
	OWLBottomObjectProperty   = owlNode("bottomObjectProperty")
	OWLTopDataProperty        = owlNode("topDataProperty")
	OWLBottomDataProperty     = owlNode("bottomDataProperty")
	OWLVersionInfo            = owlNode("versionInfo")
	OWLDeprecated             = owlNode("deprecated")
	OWLPriorVersion           = owlNode("priorVersion")
	OWLBackwardCompatibleWith = owlNode("backwardCompatibleWith")
	OWLIncompatibleWith       = owlNode("incompatibleWith")
	OWLReal                   = owlNode("real")
	OWLRational               = owlNode("rational")
)

// OWL structural predicates
var (
	OWLEquivalentClass      = owlNode("equivalentClass")
	OWLEquivalentProperty   = owlNode("equivalentProperty")
	OWLDisjointWith         = owlNode("disjointWith")
	OWLInverseOf            = owlNode("inverseOf")
	OWLOnProperty           = owlNode("onProperty")
	OWLOnClass              = owlNode("onClass")
	OWLOnDataRange          = owlNode("onDataRange")
	OWLSomeValuesFrom       = owlNode("someValuesFrom")
	OWLAllValuesFrom        = owlNode("allValuesFrom")
	OWLHasValue             = owlNode("hasValue")
	OWLHasSelf              = owlNode("hasSelf")
	OWLMinCardinality       = owlNode("minCardinality")
	OWLMaxCardinality       = owlNode("maxCardinality")
	OWLCardinality          = owlNode("cardinality")
	OWLMinQualifiedCard     = owlNode("minQualifiedCardinality")
	OWLMaxQualifiedCard     = owlNode("maxQualifiedCardinality")
	OWLQualifiedCardinality = owlNode("qualifiedCardinality")
	OWLUnionOf              = owlNode("unionOf")
	OWLIntersectionOf       = owlNode("intersectionOf")
	OWLComplementOf         = owlNode("complementOf")
	OWLOneOf                = owlNode("oneOf")
	OWLMembers              = owlNode("members")
	OWLDistinctMembers      = owlNode("distinctMembers")
	OWLSameAs               = owlNode("sameAs")
	OWLDifferentFrom        = owlNode("differentFrom")
	OWLImports              = owlNode("imports")
)
