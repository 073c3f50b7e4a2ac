package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/aleksaelezovic/ontoview/internal/storage"
	"github.com/aleksaelezovic/ontoview/pkg/graph"
	"github.com/aleksaelezovic/ontoview/pkg/ont"
	"github.com/aleksaelezovic/ontoview/pkg/rdf"
	"github.com/aleksaelezovic/ontoview/pkg/store"
)

// session is an opened graph viewed as an ontology.
type session struct {
	graph  graph.Graph
	ont    *ont.Ontology
	logger *zap.Logger
	close  func() error
}

// openSession opens the badger store at cfg.DB, or an in-memory graph when no
// database is configured, and loads cfg.Input into it.
func openSession(cfg *Config, logger *zap.Logger) (*session, error) {
	s := &session{logger: logger, close: func() error { return nil }}
	if cfg.DB != "" {
		st, err := storage.NewBadgerStorage(cfg.DB)
		if err != nil {
			return nil, errors.Wrapf(err, "open database %s", cfg.DB)
		}
		ts := store.NewTripleStore(st, store.WithLogger(logger.Named("store")))
		s.graph, s.close = ts, ts.Close
		logger.Info("database opened", zap.String("path", cfg.DB))
	} else {
		s.graph = graph.NewMemory()
	}

	if cfg.Input != "" {
		if _, err := s.load(cfg.Input); err != nil {
			_ = s.close()
			return nil, err
		}
	}

	opts, err := cfg.ontologyOptions(logger.Named("ont"))
	if err != nil {
		_ = s.close()
		return nil, err
	}
	if s.ont, err = ont.New(s.graph, opts...); err != nil {
		_ = s.close()
		return nil, err
	}
	return s, nil
}

// load adds every triple of an N-Triples file to the session graph.
func (s *session) load(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var batch []rdf.Triple
	for t, err := range rdf.NewNTriplesReader(f).All() {
		if err != nil {
			return 0, errors.Wrapf(err, "parse %s", path)
		}
		batch = append(batch, t)
	}

	if ts, ok := s.graph.(*store.TripleStore); ok {
		if err := ts.AddAll(batch); err != nil {
			return 0, errors.Wrapf(err, "store %s", path)
		}
	} else {
		for _, t := range batch {
			if err := s.graph.Add(t.Subject, t.Predicate, t.Object); err != nil {
				return 0, errors.Wrapf(err, "add %s", t)
			}
		}
	}
	s.logger.Info("triples loaded", zap.String("file", path), zap.Int("count", len(batch)))
	return len(batch), nil
}

func (s *session) Close() error {
	return s.close()
}
