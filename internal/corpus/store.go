// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus loads and caches the trial dataset in memory. The dataset
// is a single JSON array of trial records, read once per process; the
// cached slice is immutable after load and safe for concurrent readers.
package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/pdiddy/trials-engine/pkg/types"
)

// ErrDataLoad indicates the backing dataset is missing or unparsable. The
// store degrades to an empty corpus; queries return zero results instead of
// failing.
var ErrDataLoad = errors.New("trial dataset unavailable")

// Store owns the in-memory trial corpus. The first Load call reads and
// parses the dataset; later calls return the cached slice. A Store must be
// created with NewStore and must not be copied.
type Store struct {
	path   string
	logger *slog.Logger

	once   sync.Once
	trials []types.Trial
	err    error
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates a store for the dataset at path. The file is not touched
// until the first Load.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the full corpus, reading the dataset on first call.
// Concurrent first callers share a single parse. On failure it returns an
// empty slice and an error wrapping ErrDataLoad; the failure is logged and
// cached, so every later call observes the same degraded state.
func (s *Store) Load() ([]types.Trial, error) {
	s.once.Do(func() {
		data, err := os.ReadFile(s.path)
		if err != nil {
			s.err = fmt.Errorf("%w: reading %s: %w", ErrDataLoad, s.path, err)
			s.logger.Error("failed to read trial dataset", "path", s.path, "err", err)
			return
		}

		var trials []types.Trial
		if err := json.Unmarshal(data, &trials); err != nil {
			s.err = fmt.Errorf("%w: parsing %s: %w", ErrDataLoad, s.path, err)
			s.logger.Error("failed to parse trial dataset", "path", s.path, "err", err)
			return
		}

		s.trials = trials
		s.logger.Info("trial dataset loaded", "path", s.path, "trials", len(trials))
	})
	return s.trials, s.err
}

// Len returns the corpus size, loading it if needed.
func (s *Store) Len() int {
	trials, _ := s.Load()
	return len(trials)
}
