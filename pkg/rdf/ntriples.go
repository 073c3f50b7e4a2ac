package rdf

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// NTriplesReader reads an N-Triples document one statement per line.
// Comments and blank lines are skipped.
type NTriplesReader struct {
	scanner *bufio.Scanner
	line    int
}

// NewNTriplesReader creates a reader over r.
func NewNTriplesReader(r io.Reader) *NTriplesReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &NTriplesReader{scanner: sc}
}

// Next returns the next triple, or io.EOF at the end of input.
func (r *NTriplesReader) Next() (Triple, error) {
	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSpace(r.scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		p := &lineParser{input: text}
		t, err := p.parseTriple()
		if err != nil {
			return Triple{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return t, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Triple{}, err
	}
	return Triple{}, io.EOF
}

// All iterates the remaining triples; the first error ends the sequence.
func (r *NTriplesReader) All() iter.Seq2[Triple, error] {
	return func(yield func(Triple, error) bool) {
		for {
			t, err := r.Next()
			if err == io.EOF {
				return
			}
			if !yield(t, err) || err != nil {
				return
			}
		}
	}
}

// ParseTerm parses a single term in N-Triples syntax, e.g. "<http://a>", "_:b1" or "\"x\"@en".
func ParseTerm(s string) (Term, error) {
	p := &lineParser{input: strings.TrimSpace(s)}
	if p.input == "" {
		return nil, fmt.Errorf("empty term")
	}
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.skipWhitespace(); p.pos != len(p.input) {
		return nil, fmt.Errorf("unexpected trailing input at position %d", p.pos)
	}
	return t, nil
}

type lineParser struct {
	input string
	pos   int
}

func (p *lineParser) skipWhitespace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

// parseTriple parses: subject predicate object .
func (p *lineParser) parseTriple() (Triple, error) {
	subject, err := p.parseTerm()
	if err != nil {
		return Triple{}, fmt.Errorf("error parsing subject: %w", err)
	}
	if subject.Type() == TermTypeLiteral {
		return Triple{}, fmt.Errorf("literal in subject position")
	}
	p.skipWhitespace()

	predicate, err := p.parseTerm()
	if err != nil {
		return Triple{}, fmt.Errorf("error parsing predicate: %w", err)
	}
	if predicate.Type() != TermTypeNamedNode {
		return Triple{}, fmt.Errorf("predicate must be an IRI")
	}
	p.skipWhitespace()

	object, err := p.parseTerm()
	if err != nil {
		return Triple{}, fmt.Errorf("error parsing object: %w", err)
	}
	p.skipWhitespace()

	if p.pos >= len(p.input) || p.input[p.pos] != '.' {
		return Triple{}, fmt.Errorf("expected '.' at end of triple")
	}
	p.pos++
	p.skipWhitespace()
	if p.pos < len(p.input) && p.input[p.pos] != '#' {
		return Triple{}, fmt.Errorf("unexpected input after '.'")
	}
	return NewTriple(subject, predicate, object), nil
}

// parseTerm parses an RDF term (IRI, blank node, or literal)
func (p *lineParser) parseTerm() (Term, error) {
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("unexpected end of line")
	}
	switch p.input[p.pos] {
	case '<':
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return NewNamedNode(iri), nil
	case '_':
		return p.parseBlankNode()
	case '"':
		return p.parseLiteral()
	default:
		return nil, fmt.Errorf("unexpected character at position %d: %c", p.pos, p.input[p.pos])
	}
}

// parseIRI parses an IRI enclosed in < >
func (p *lineParser) parseIRI() (string, error) {
	if p.pos >= len(p.input) || p.input[p.pos] != '<' {
		return "", fmt.Errorf("expected '<' at start of IRI")
	}
	p.pos++
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] != '>' {
		p.pos++
	}
	if p.pos >= len(p.input) {
		return "", fmt.Errorf("unclosed IRI")
	}
	iri := p.input[start:p.pos]
	p.pos++
	return iri, nil
}

func (p *lineParser) parseBlankNode() (Term, error) {
	if !strings.HasPrefix(p.input[p.pos:], "_:") {
		return nil, fmt.Errorf("expected '_:' at start of blank node")
	}
	p.pos += 2
	start := p.pos
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch == ' ' || ch == '\t' || ch == '<' || ch == '"' {
			break
		}
		if ch == '.' && (p.pos+1 == len(p.input) || p.input[p.pos+1] == ' ' || p.input[p.pos+1] == '\t') {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return nil, fmt.Errorf("empty blank node label")
	}
	return NewBlankNode(p.input[start:p.pos]), nil
}

func (p *lineParser) parseLiteral() (Term, error) {
	p.pos++ // opening '"'

	var value strings.Builder
	for p.pos < len(p.input) && p.input[p.pos] != '"' {
		ch := p.input[p.pos]
		if ch != '\\' {
			value.WriteByte(ch)
			p.pos++
			continue
		}
		p.pos++
		if p.pos >= len(p.input) {
			return nil, fmt.Errorf("unexpected end of input in escape sequence")
		}
		switch esc := p.input[p.pos]; esc {
		case 'n':
			value.WriteByte('\n')
		case 't':
			value.WriteByte('\t')
		case 'r':
			value.WriteByte('\r')
		case 'b':
			value.WriteByte('\b')
		case 'f':
			value.WriteByte('\f')
		case '"', '\\', '\'':
			value.WriteByte(esc)
		case 'u', 'U':
			size := 4
			if esc == 'U' {
				size = 8
			}
			if p.pos+size >= len(p.input) {
				return nil, fmt.Errorf("truncated unicode escape")
			}
			code, err := strconv.ParseUint(p.input[p.pos+1:p.pos+1+size], 16, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid unicode escape: %w", err)
			}
			value.WriteRune(rune(code))
			p.pos += size
		default:
			return nil, fmt.Errorf("invalid escape sequence \\%c", esc)
		}
		p.pos++
	}
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("unclosed string literal")
	}
	p.pos++ // closing '"'

	if p.pos < len(p.input) && p.input[p.pos] == '@' {
		p.pos++
		start := p.pos
		for p.pos < len(p.input) {
			ch := p.input[p.pos]
			if !(ch == '-' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')) {
				break
			}
			p.pos++
		}
		if p.pos == start {
			return nil, fmt.Errorf("empty language tag")
		}
		return NewLiteralWithLanguage(value.String(), p.input[start:p.pos]), nil
	}
	if strings.HasPrefix(p.input[p.pos:], "^^") {
		p.pos += 2
		datatypeIRI, err := p.parseIRI()
		if err != nil {
			return nil, fmt.Errorf("error parsing datatype: %w", err)
		}
		return NewLiteralWithDatatype(value.String(), NewNamedNode(datatypeIRI)), nil
	}
	return NewLiteral(value.String()), nil
}
