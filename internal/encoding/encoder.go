package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/aleksaelezovic/ontoview/pkg/rdf"
)

const (
	// Encoded term size (type byte + 16 bytes for the 128-bit xxh3 hash)
	EncodedTermSize = 17

	// Encoded triple key size (three encoded terms)
	EncodedTripleSize = 3 * EncodedTermSize
)

// EncodedTerm represents a term encoded as a type byte followed by a 128-bit hash
type EncodedTerm [EncodedTermSize]byte

// TermEncoder turns terms into fixed-size index keys plus the id2str payload
// needed to restore them.
type TermEncoder struct{}

func NewTermEncoder() *TermEncoder {
	return &TermEncoder{}
}

// EncodeTerm encodes an RDF term into a fixed-size byte array.
// Returns the encoded term and the serialized form to store in the id2str table.
func (e *TermEncoder) EncodeTerm(term rdf.Term) (EncodedTerm, []byte, error) {
	var encoded EncodedTerm

	switch t := term.(type) {
	case *rdf.NamedNode:
		return EncodedTerm(rdf.KeyOf(t)), appendFields([]byte{byte(rdf.TermTypeNamedNode)}, t.IRI), nil
	case *rdf.BlankNode:
		return EncodedTerm(rdf.KeyOf(t)), appendFields([]byte{byte(rdf.TermTypeBlankNode)}, t.ID), nil
	case *rdf.Literal:
		dt := ""
		if t.Datatype != nil {
			dt = t.Datatype.IRI
		}
		return EncodedTerm(rdf.KeyOf(t)), appendFields([]byte{byte(rdf.TermTypeLiteral)}, t.Value, t.Language, dt), nil
	default:
		return encoded, nil, fmt.Errorf("unknown term type: %T", term)
	}
}

// EncodeKey concatenates encoded terms into an index key.
// Keys are compared lexicographically, so a shorter key is a scan prefix.
func (e *TermEncoder) EncodeKey(terms ...EncodedTerm) []byte {
	result := make([]byte, 0, len(terms)*EncodedTermSize)
	for _, term := range terms {
		result = append(result, term[:]...)
	}
	return result
}

// SplitKey splits an index key back into its encoded terms.
func SplitKey(key []byte) ([]EncodedTerm, error) {
	if len(key)%EncodedTermSize != 0 {
		return nil, fmt.Errorf("invalid key length: %d", len(key))
	}
	terms := make([]EncodedTerm, len(key)/EncodedTermSize)
	for i := range terms {
		offset := i * EncodedTermSize
		copy(terms[i][:], key[offset:offset+EncodedTermSize])
	}
	return terms, nil
}

// appendFields writes each string as a uvarint length followed by its bytes
func appendFields(buf []byte, fields ...string) []byte {
	for _, f := range fields {
		buf = binary.AppendUvarint(buf, uint64(len(f)))
		buf = append(buf, f...)
	}
	return buf
}
