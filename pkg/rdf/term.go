package rdf

import (
	"fmt"
	"strconv"
	"strings"
)

// TermType represents the kind of an RDF term
type TermType byte

const (
	TermTypeNamedNode TermType = iota + 1
	TermTypeBlankNode
	TermTypeLiteral
)

func (t TermType) String() string {
	switch t {
	case TermTypeNamedNode:
		return "uri"
	case TermTypeBlankNode:
		return "blank"
	case TermTypeLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Term represents a graph node: an IRI, a blank node, or a literal
type Term interface {
	Type() TermType
	String() string
	Equals(other Term) bool
}

// NamedNode represents an IRI
type NamedNode struct {
	IRI string
}

func NewNamedNode(iri string) *NamedNode {
	return &NamedNode{IRI: iri}
}

func (n *NamedNode) Type() TermType {
	return TermTypeNamedNode
}

func (n *NamedNode) String() string {
	return fmt.Sprintf("<%s>", n.IRI)
}

func (n *NamedNode) Equals(other Term) bool {
	if on, ok := other.(*NamedNode); ok {
		return n.IRI == on.IRI
	}
	return false
}

// BlankNode represents a blank node
type BlankNode struct {
	ID string
}

func NewBlankNode(id string) *BlankNode {
	return &BlankNode{ID: id}
}

func (b *BlankNode) Type() TermType {
	return TermTypeBlankNode
}

func (b *BlankNode) String() string {
	return fmt.Sprintf("_:%s", b.ID)
}

func (b *BlankNode) Equals(other Term) bool {
	if ob, ok := other.(*BlankNode); ok {
		return b.ID == ob.ID
	}
	return false
}

// Literal represents an RDF literal
type Literal struct {
	Value    string
	Language string     // for language-tagged strings
	Datatype *NamedNode // for typed literals
}

func NewLiteral(value string) *Literal {
	return &Literal{Value: value}
}

func NewLiteralWithLanguage(value, language string) *Literal {
	return &Literal{Value: value, Language: language}
}

func NewLiteralWithDatatype(value string, datatype *NamedNode) *Literal {
	return &Literal{Value: value, Datatype: datatype}
}

func (l *Literal) Type() TermType {
	return TermTypeLiteral
}

func (l *Literal) String() string {
	result := strconv.Quote(l.Value)
	if l.Language != "" {
		result += "@" + l.Language
	} else if l.Datatype != nil {
		result += "^^" + l.Datatype.String()
	}
	return result
}

func (l *Literal) Equals(other Term) bool {
	ol, ok := other.(*Literal)
	if !ok {
		return false
	}
	if l.Value != ol.Value || !strings.EqualFold(l.Language, ol.Language) {
		return false
	}
	if l.Datatype == nil || ol.Datatype == nil {
		return l.Datatype == nil && ol.Datatype == nil
	}
	return l.Datatype.Equals(ol.Datatype)
}

// Triple represents an RDF triple (subject, predicate, object)
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

func NewTriple(subject, predicate, object Term) Triple {
	return Triple{
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
	}
}

func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.Subject, t.Predicate, t.Object)
}

// IsURI reports whether the term is a named node.
func IsURI(t Term) bool {
	return t != nil && t.Type() == TermTypeNamedNode
}

// IsBlank reports whether the term is a blank node.
func IsBlank(t Term) bool {
	return t != nil && t.Type() == TermTypeBlankNode
}

// IsLiteral reports whether the term is a literal.
func IsLiteral(t Term) bool {
	return t != nil && t.Type() == TermTypeLiteral
}

// IRIOf returns the IRI of a named node, or "" for any other term.
func IRIOf(t Term) string {
	if n, ok := t.(*NamedNode); ok {
		return n.IRI
	}
	return ""
}

// Helper functions for common XSD datatypes
var (
	XSDString             = NewNamedNode("http://www.w3.org/2001/XMLSchema#string")
	XSDInteger            = NewNamedNode("http://www.w3.org/2001/XMLSchema#integer")
	XSDNonNegativeInteger = NewNamedNode("http://www.w3.org/2001/XMLSchema#nonNegativeInteger")
	XSDDouble             = NewNamedNode("http://www.w3.org/2001/XMLSchema#double")
	XSDBoolean            = NewNamedNode("http://www.w3.org/2001/XMLSchema#boolean")
)

func NewIntegerLiteral(value int64) *Literal {
	return NewLiteralWithDatatype(strconv.FormatInt(value, 10), XSDInteger)
}

// NewNonNegativeIntegerLiteral builds the literal form used by OWL cardinalities.
func NewNonNegativeIntegerLiteral(value uint64) *Literal {
	return NewLiteralWithDatatype(strconv.FormatUint(value, 10), XSDNonNegativeInteger)
}

func NewBooleanLiteral(value bool) *Literal {
	return NewLiteralWithDatatype(strconv.FormatBool(value), XSDBoolean)
}

// Int parses the lexical form of an integer-valued literal.
func (l *Literal) Int() (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(l.Value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer literal %s: %w", l, err)
	}
	return v, nil
}
