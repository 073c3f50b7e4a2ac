package store

import (
	"bytes"
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/aleksaelezovic/ontoview/internal/encoding"
	"github.com/aleksaelezovic/ontoview/pkg/graph"
	"github.com/aleksaelezovic/ontoview/pkg/rdf"
)

// TripleStore is a persistent graph.Graph with SPO, POS and OSP indexes
type TripleStore struct {
	storage Storage
	encoder *encoding.TermEncoder
	decoder *encoding.TermDecoder
	logger  *zap.Logger
}

var _ graph.Graph = (*TripleStore)(nil)

// Option configures a TripleStore
type Option func(*TripleStore)

// WithLogger sets the logger used to report read failures
func WithLogger(logger *zap.Logger) Option {
	return func(s *TripleStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewTripleStore creates a new triplestore
func NewTripleStore(storage Storage, opts ...Option) *TripleStore {
	s := &TripleStore{
		storage: storage,
		encoder: encoding.NewTermEncoder(),
		decoder: encoding.NewTermDecoder(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close closes the triplestore
func (s *TripleStore) Close() error {
	return s.storage.Close()
}

// Add inserts a triple in its own write transaction
func (s *TripleStore) Add(subj, pred, obj rdf.Term) error {
	txn, err := s.storage.Begin(true)
	if err != nil {
		return err
	}
	defer txn.Rollback()

	if err := s.insertInTxn(txn, rdf.NewTriple(subj, pred, obj)); err != nil {
		return err
	}
	return txn.Commit()
}

// AddAll inserts triples in a single write transaction
func (s *TripleStore) AddAll(triples []rdf.Triple) error {
	txn, err := s.storage.Begin(true)
	if err != nil {
		return err
	}
	defer txn.Rollback()

	for _, t := range triples {
		if err := s.insertInTxn(txn, t); err != nil {
			return err
		}
	}
	return txn.Commit()
}

func (s *TripleStore) encodeTriple(t rdf.Triple) ([3]encoding.EncodedTerm, [3][]byte, error) {
	var encoded [3]encoding.EncodedTerm
	var payloads [3][]byte
	for i, term := range []rdf.Term{t.Subject, t.Predicate, t.Object} {
		if term == nil {
			return encoded, payloads, fmt.Errorf("cannot store a triple with an unbound position: %s", t)
		}
		enc, payload, err := s.encoder.EncodeTerm(term)
		if err != nil {
			return encoded, payloads, fmt.Errorf("failed to encode %s: %w", term, err)
		}
		encoded[i], payloads[i] = enc, payload
	}
	return encoded, payloads, nil
}

// insertInTxn writes the id2str entries and all three index permutations
func (s *TripleStore) insertInTxn(txn Transaction, t rdf.Triple) error {
	enc, payloads, err := s.encodeTriple(t)
	if err != nil {
		return err
	}
	for i := range enc {
		if err := s.storeString(txn, enc[i], payloads[i]); err != nil {
			return err
		}
	}

	subj, pred, obj := enc[0], enc[1], enc[2]
	emptyValue := []byte{}
	if err := txn.Set(TableSPO, s.encoder.EncodeKey(subj, pred, obj), emptyValue); err != nil {
		return err
	}
	if err := txn.Set(TablePOS, s.encoder.EncodeKey(pred, obj, subj), emptyValue); err != nil {
		return err
	}
	return txn.Set(TableOSP, s.encoder.EncodeKey(obj, subj, pred), emptyValue)
}

// storeString stores a term payload in the id2str table if not already present
func (s *TripleStore) storeString(txn Transaction, encoded encoding.EncodedTerm, payload []byte) error {
	existing, err := txn.Get(TableID2Str, encoded[:])
	if err == nil && bytes.Equal(existing, payload) {
		return nil
	}
	if err != nil && err != ErrNotFound {
		return err
	}
	return txn.Set(TableID2Str, encoded[:], payload)
}

// Remove deletes a triple from all indexes
func (s *TripleStore) Remove(subj, pred, obj rdf.Term) error {
	enc, _, err := s.encodeTriple(rdf.NewTriple(subj, pred, obj))
	if err != nil {
		return err
	}

	txn, err := s.storage.Begin(true)
	if err != nil {
		return err
	}
	defer txn.Rollback()

	if err := txn.Delete(TableSPO, s.encoder.EncodeKey(enc[0], enc[1], enc[2])); err != nil {
		return err
	}
	if err := txn.Delete(TablePOS, s.encoder.EncodeKey(enc[1], enc[2], enc[0])); err != nil {
		return err
	}
	if err := txn.Delete(TableOSP, s.encoder.EncodeKey(enc[2], enc[0], enc[1])); err != nil {
		return err
	}

	// Note: id2str entries are kept, they may be referenced by other triples
	// (no garbage collection)
	return txn.Commit()
}

// Contains reports whether any triple matches the pattern
func (s *TripleStore) Contains(subj, pred, obj rdf.Term) bool {
	if subj == nil || pred == nil || obj == nil {
		for range s.Find(subj, pred, obj) {
			return true
		}
		return false
	}

	enc, _, err := s.encodeTriple(rdf.NewTriple(subj, pred, obj))
	if err != nil {
		s.logger.Warn("contains: encode failed", zap.Error(err))
		return false
	}
	txn, err := s.storage.Begin(false)
	if err != nil {
		s.logger.Warn("contains: begin failed", zap.Error(err))
		return false
	}
	defer txn.Rollback()

	_, err = txn.Get(TableSPO, s.encoder.EncodeKey(enc[0], enc[1], enc[2]))
	if err != nil && err != ErrNotFound {
		s.logger.Warn("contains: lookup failed", zap.Error(err))
	}
	return err == nil
}

// Count returns the number of triples in the store
func (s *TripleStore) Count() (int64, error) {
	txn, err := s.storage.Begin(false)
	if err != nil {
		return 0, err
	}
	defer txn.Rollback()

	it, err := txn.Scan(TableSPO, nil)
	if err != nil {
		return 0, err
	}
	defer it.Close()

	count := int64(0)
	for it.Next() {
		count++
	}
	return count, nil
}

// Find scans the index whose key order puts the bound positions first.
// The read transaction stays open until the sequence stops.
func (s *TripleStore) Find(subj, pred, obj rdf.Term) iter.Seq[rdf.Triple] {
	return func(yield func(rdf.Triple) bool) {
		table, order := selectIndex(subj != nil, pred != nil, obj != nil)
		prefix, err := s.buildScanPrefix([3]rdf.Term{subj, pred, obj}, order)
		if err != nil {
			s.logger.Warn("find: encode failed", zap.Error(err))
			return
		}

		txn, err := s.storage.Begin(false)
		if err != nil {
			s.logger.Warn("find: begin failed", zap.Error(err))
			return
		}
		defer txn.Rollback()

		it, err := txn.Scan(table, prefix)
		if err != nil {
			s.logger.Warn("find: scan failed", zap.Stringer("table", table), zap.Error(err))
			return
		}
		defer it.Close()

		cache := make(map[encoding.EncodedTerm]rdf.Term)
		for it.Next() {
			t, err := s.decodeKey(txn, it.Key(), order, cache)
			if err != nil {
				s.logger.Warn("find: decode failed", zap.Stringer("table", table), zap.Error(err))
				return
			}
			if !yield(t) {
				return
			}
		}
	}
}

// selectIndex chooses the index based on which positions are bound.
// order maps key slots to triple positions: 0=S, 1=P, 2=O.
func selectIndex(sBound, pBound, oBound bool) (Table, [3]int) {
	switch {
	case sBound && pBound:
		return TableSPO, [3]int{0, 1, 2}
	case pBound && oBound:
		return TablePOS, [3]int{1, 2, 0}
	case oBound && sBound:
		return TableOSP, [3]int{2, 0, 1}
	case sBound:
		return TableSPO, [3]int{0, 1, 2}
	case pBound:
		return TablePOS, [3]int{1, 2, 0}
	case oBound:
		return TableOSP, [3]int{2, 0, 1}
	default:
		return TableSPO, [3]int{0, 1, 2}
	}
}

// buildScanPrefix encodes bound terms in key order, stopping at the first unbound slot
func (s *TripleStore) buildScanPrefix(pattern [3]rdf.Term, order [3]int) ([]byte, error) {
	var prefix []byte
	for _, idx := range order {
		term := pattern[idx]
		if term == nil {
			break
		}
		encoded, _, err := s.encoder.EncodeTerm(term)
		if err != nil {
			return nil, err
		}
		prefix = append(prefix, encoded[:]...)
	}
	return prefix, nil
}

func (s *TripleStore) decodeKey(txn Transaction, key []byte, order [3]int, cache map[encoding.EncodedTerm]rdf.Term) (rdf.Triple, error) {
	if len(key) != encoding.EncodedTripleSize {
		return rdf.Triple{}, fmt.Errorf("invalid key length: %d", len(key))
	}
	parts, err := encoding.SplitKey(key)
	if err != nil {
		return rdf.Triple{}, err
	}

	var positions [3]rdf.Term
	for slot, idx := range order {
		term, err := s.decodeTerm(txn, parts[slot], cache)
		if err != nil {
			return rdf.Triple{}, err
		}
		positions[idx] = term
	}
	return rdf.NewTriple(positions[0], positions[1], positions[2]), nil
}

// decodeTerm resolves an encoded term through the id2str table
func (s *TripleStore) decodeTerm(txn Transaction, encoded encoding.EncodedTerm, cache map[encoding.EncodedTerm]rdf.Term) (rdf.Term, error) {
	if term, ok := cache[encoded]; ok {
		return term, nil
	}
	payload, err := txn.Get(TableID2Str, encoded[:])
	if err != nil {
		return nil, fmt.Errorf("failed to load %s entry: %w", TableID2Str, err)
	}
	term, err := s.decoder.DecodeTerm(payload)
	if err != nil {
		return nil, err
	}
	cache[encoded] = term
	return term, nil
}
