// Package memstore provides the in-memory record store: a mutex-guarded
// map with a monotonic id counter. Analyses live for the lifetime of the
// process; durability is explicitly out of scope for this store.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/zombar/seoanalyzer/internal/models"
	"github.com/zombar/seoanalyzer/internal/seo"
)

// Store implements seo.Store. The mutex is the single-writer discipline for
// the id counter: ids are unique, monotonically increasing, and never
// reused, and a read following a create of the same id observes the record.
type Store struct {
	mu       sync.Mutex
	analyses map[int64]models.Analysis
	nextID   int64
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		analyses: make(map[int64]models.Analysis),
		nextID:   1,
	}
}

// Create assigns the next id and stores a copy of the analysis.
func (s *Store) Create(_ context.Context, analysis *models.Analysis) (*models.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	stored := *analysis
	stored.ID = s.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.nextID++

	s.analyses[stored.ID] = stored
	return &stored, nil
}

// Get returns a copy of the analysis, or seo.ErrNotFound.
func (s *Store) Get(_ context.Context, id int64) (*models.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	analysis, ok := s.analyses[id]
	if !ok {
		return nil, seo.ErrNotFound
	}
	return &analysis, nil
}

// UpdateOptimizedText replaces the analysis's optimizedText wholesale and
// returns the updated record, or seo.ErrNotFound.
func (s *Store) UpdateOptimizedText(_ context.Context, id int64, optimizedText string) (*models.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	analysis, ok := s.analyses[id]
	if !ok {
		return nil, seo.ErrNotFound
	}

	analysis.OptimizedText = optimizedText
	analysis.UpdatedAt = time.Now().UTC()
	s.analyses[id] = analysis
	return &analysis, nil
}
