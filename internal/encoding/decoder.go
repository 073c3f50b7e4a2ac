package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/aleksaelezovic/ontoview/pkg/rdf"
)

// TermDecoder restores terms from their id2str payload
type TermDecoder struct{}

// NewTermDecoder creates a new term decoder
func NewTermDecoder() *TermDecoder {
	return &TermDecoder{}
}

// DecodeTerm decodes the serialized form written by TermEncoder.EncodeTerm
func (d *TermDecoder) DecodeTerm(payload []byte) (rdf.Term, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("empty term payload")
	}
	termType := rdf.TermType(payload[0])

	switch termType {
	case rdf.TermTypeNamedNode:
		fields, err := readFields(payload[1:], 1)
		if err != nil {
			return nil, fmt.Errorf("failed to decode named node: %w", err)
		}
		return rdf.NewNamedNode(fields[0]), nil

	case rdf.TermTypeBlankNode:
		fields, err := readFields(payload[1:], 1)
		if err != nil {
			return nil, fmt.Errorf("failed to decode blank node: %w", err)
		}
		return rdf.NewBlankNode(fields[0]), nil

	case rdf.TermTypeLiteral:
		fields, err := readFields(payload[1:], 3)
		if err != nil {
			return nil, fmt.Errorf("failed to decode literal: %w", err)
		}
		lit := &rdf.Literal{Value: fields[0], Language: fields[1]}
		if fields[2] != "" {
			lit.Datatype = rdf.NewNamedNode(fields[2])
		}
		return lit, nil

	default:
		return nil, fmt.Errorf("unknown term type: %d", termType)
	}
}

func readFields(buf []byte, n int) ([]string, error) {
	fields := make([]string, 0, n)
	for range n {
		size, read := binary.Uvarint(buf)
		if read <= 0 || uint64(len(buf)-read) < size {
			return nil, fmt.Errorf("truncated field")
		}
		buf = buf[read:]
		fields = append(fields, string(buf[:size]))
		buf = buf[size:]
	}
	if len(buf) != 0 {
		return nil, fmt.Errorf("%d trailing bytes", len(buf))
	}
	return fields, nil
}
