package rdf

import (
	"testing"
)

// ===== NamedNode Tests =====

func TestNamedNode_Type(t *testing.T) {
	node := NewNamedNode("http://example.org/resource")
	if node.Type() != TermTypeNamedNode {
		t.Errorf("Expected TermTypeNamedNode, got %v", node.Type())
	}
}

func TestNamedNode_String(t *testing.T) {
	node := NewNamedNode("http://example.org/resource")
	expected := "<http://example.org/resource>"
	if node.String() != expected {
		t.Errorf("Expected %s, got %s", expected, node.String())
	}
}

func TestNamedNode_Equals(t *testing.T) {
	node1 := NewNamedNode("http://example.org/resource")
	node2 := NewNamedNode("http://example.org/resource")
	node3 := NewNamedNode("http://example.org/different")

	if !node1.Equals(node2) {
		t.Error("Expected equal NamedNodes to be equal")
	}

	if node1.Equals(node3) {
		t.Error("Expected different NamedNodes to not be equal")
	}

	// Test with different term type
	literal := NewLiteral("test")
	if node1.Equals(literal) {
		t.Error("NamedNode should not equal Literal")
	}
}

// ===== BlankNode Tests =====

func TestBlankNode_Type(t *testing.T) {
	node := NewBlankNode("b1")
	if node.Type() != TermTypeBlankNode {
		t.Errorf("Expected TermTypeBlankNode, got %v", node.Type())
	}
}

func TestBlankNode_String(t *testing.T) {
	node := NewBlankNode("b1")
	expected := "_:b1"
	if node.String() != expected {
		t.Errorf("Expected %s, got %s", expected, node.String())
	}
}

func TestBlankNode_Equals(t *testing.T) {
	node1 := NewBlankNode("b1")
	node2 := NewBlankNode("b1")
	node3 := NewBlankNode("b2")

	if !node1.Equals(node2) {
		t.Error("Expected equal BlankNodes to be equal")
	}

	if node1.Equals(node3) {
		t.Error("Expected different BlankNodes to not be equal")
	}

	// Test with different term type
	namedNode := NewNamedNode("http://example.org/resource")
	if node1.Equals(namedNode) {
		t.Error("BlankNode should not equal NamedNode")
	}
}

// ===== Literal Tests =====

func TestLiteral_Type(t *testing.T) {
	literal := NewLiteral("test")
	if literal.Type() != TermTypeLiteral {
		t.Errorf("Expected TermTypeLiteral, got %v", literal.Type())
	}
}

func TestLiteral_String(t *testing.T) {
	tests := []struct {
		name     string
		literal  *Literal
		expected string
	}{
		{
			name:     "plain literal",
			literal:  NewLiteral("hello"),
			expected: "\"hello\"",
		},
		{
			name:     "literal with language",
			literal:  NewLiteralWithLanguage("hello", "en"),
			expected: "\"hello\"@en",
		},
		{
			name:     "literal with datatype",
			literal:  NewLiteralWithDatatype("42", NewNamedNode("http://www.w3.org/2001/XMLSchema#integer")),
			expected: "\"42\"^^<http://www.w3.org/2001/XMLSchema#integer>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.literal.String()
			if result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestLiteral_Equals(t *testing.T) {
	lit1 := NewLiteral("hello")
	lit2 := NewLiteral("hello")
	lit3 := NewLiteral("world")

	if !lit1.Equals(lit2) {
		t.Error("Expected equal plain literals to be equal")
	}

	if lit1.Equals(lit3) {
		t.Error("Expected different plain literals to not be equal")
	}

	// Language-tagged literals
	litLang1 := NewLiteralWithLanguage("hello", "en")
	litLang2 := NewLiteralWithLanguage("hello", "en")
	litLang3 := NewLiteralWithLanguage("hello", "fr")

	if !litLang1.Equals(litLang2) {
		t.Error("Expected equal language-tagged literals to be equal")
	}

	if litLang1.Equals(litLang3) {
		t.Error("Expected literals with different languages to not be equal")
	}

	if litLang1.Equals(lit1) {
		t.Error("Language-tagged literal should not equal plain literal")
	}

	// Typed literals
	litType1 := NewLiteralWithDatatype("42", XSDInteger)
	litType2 := NewLiteralWithDatatype("42", XSDInteger)
	litType3 := NewLiteralWithDatatype("42", XSDString)

	if !litType1.Equals(litType2) {
		t.Error("Expected equal typed literals to be equal")
	}

	if litType1.Equals(litType3) {
		t.Error("Expected literals with different datatypes to not be equal")
	}

	// Test with different term type
	namedNode := NewNamedNode("http://example.org/resource")
	if lit1.Equals(namedNode) {
		t.Error("Literal should not equal NamedNode")
	}
}

// ===== Triple Tests =====

func TestTriple_String(t *testing.T) {
	subject := NewNamedNode("http://example.org/subject")
	predicate := NewNamedNode("http://example.org/predicate")
	object := NewLiteral("value")

	triple := NewTriple(subject, predicate, object)
	expected := "<http://example.org/subject> <http://example.org/predicate> \"value\" ."

	if triple.String() != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, triple.String())
	}
}

// ===== Typed Literal Constructor Tests =====

func TestNewIntegerLiteral(t *testing.T) {
	lit := NewIntegerLiteral(-42)

	if lit.Value != "-42" {
		t.Errorf("Expected value '-42', got '%s'", lit.Value)
	}

	if lit.Datatype == nil || lit.Datatype.IRI != XSDInteger.IRI {
		t.Errorf("Expected datatype %s", XSDInteger.IRI)
	}
}

func TestNewNonNegativeIntegerLiteral(t *testing.T) {
	lit := NewNonNegativeIntegerLiteral(3)

	if lit.Value != "3" {
		t.Errorf("Expected value '3', got '%s'", lit.Value)
	}
	if !lit.Datatype.Equals(XSDNonNegativeInteger) {
		t.Errorf("Expected datatype %s, got %s", XSDNonNegativeInteger, lit.Datatype)
	}
}

func TestNewBooleanLiteral(t *testing.T) {
	litTrue := NewBooleanLiteral(true)
	litFalse := NewBooleanLiteral(false)

	if litTrue.Value != "true" {
		t.Errorf("Expected value 'true', got '%s'", litTrue.Value)
	}

	if litFalse.Value != "false" {
		t.Errorf("Expected value 'false', got '%s'", litFalse.Value)
	}

	if litTrue.Datatype == nil || litTrue.Datatype.IRI != XSDBoolean.IRI {
		t.Errorf("Expected datatype %s", XSDBoolean.IRI)
	}
}

func TestLiteral_Int(t *testing.T) {
	tests := []struct {
		value   string
		want    int64
		wantErr bool
	}{
		{"0", 0, false},
		{" 12 ", 12, false},
		{"-7", -7, false},
		{"1.5", 0, true},
		{"many", 0, true},
	}
	for _, tt := range tests {
		got, err := NewLiteral(tt.value).Int()
		if (err != nil) != tt.wantErr {
			t.Errorf("Int(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Int(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

// ===== Predicates on terms =====

func TestTermKinds(t *testing.T) {
	iri := NewNamedNode("http://example.org/a")
	blank := NewBlankNode("b")
	lit := NewLiteral("x")

	if !IsURI(iri) || IsURI(blank) || IsURI(lit) || IsURI(nil) {
		t.Error("IsURI must accept named nodes only")
	}
	if !IsBlank(blank) || IsBlank(iri) || IsBlank(nil) {
		t.Error("IsBlank must accept blank nodes only")
	}
	if !IsLiteral(lit) || IsLiteral(iri) || IsLiteral(nil) {
		t.Error("IsLiteral must accept literals only")
	}
	if IRIOf(iri) != "http://example.org/a" || IRIOf(blank) != "" {
		t.Errorf("unexpected IRIOf results: %q, %q", IRIOf(iri), IRIOf(blank))
	}
}

// ===== Key and TermSet Tests =====

func TestKeyOf(t *testing.T) {
	a1 := NewNamedNode("http://example.org/a")
	a2 := NewNamedNode("http://example.org/a")
	if KeyOf(a1) != KeyOf(a2) {
		t.Error("equal named nodes must share a key")
	}

	// same lexical content, different kinds
	if KeyOf(NewNamedNode("x")) == KeyOf(NewBlankNode("x")) {
		t.Error("a named node and a blank node must not share a key")
	}
	if KeyOf(NewLiteral("x")) == KeyOf(NewLiteralWithDatatype("x", XSDString)) {
		t.Error("plain and typed literals must not share a key")
	}
	if KeyOf(NewLiteralWithLanguage("x", "EN")) != KeyOf(NewLiteralWithLanguage("x", "en")) {
		t.Error("language tags are case-insensitive")
	}
}

func TestTermSet(t *testing.T) {
	a := NewNamedNode("http://example.org/a")
	b := NewBlankNode("b")
	c := NewLiteral("c")

	s := NewTermSet(a, b, a)
	if s.Len() != 2 {
		t.Fatalf("expected 2 members, got %d", s.Len())
	}
	if s.Add(NewNamedNode("http://example.org/a")) {
		t.Error("Add must report an existing member")
	}
	if !s.Add(c) {
		t.Error("Add must report a new member")
	}

	got := s.Slice()
	if !got[0].Equals(a) || !got[1].Equals(b) || !got[2].Equals(c) {
		t.Errorf("members out of insertion order: %v", got)
	}

	if !s.Remove(b) || s.Remove(b) {
		t.Error("Remove must report presence exactly once")
	}
	if s.Contains(b) || !s.Contains(c) {
		t.Error("Contains disagrees with Remove")
	}
	if got := s.Slice(); len(got) != 2 || !got[1].Equals(c) {
		t.Errorf("unexpected members after Remove: %v", got)
	}

	u := s.Union(NewTermSet(b, a))
	if u.Len() != 3 || s.Len() != 2 {
		t.Errorf("Union must not modify its receiver: union %d, receiver %d", u.Len(), s.Len())
	}

	var empty *TermSet
	if empty.Len() != 0 || empty.Contains(a) || empty.Slice() != nil {
		t.Error("a nil set behaves as empty")
	}
	for range empty.All() {
		t.Error("a nil set yields nothing")
	}
}
