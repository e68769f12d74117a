package cache

import (
	"context"
	"sync"

	"github.com/franq/backend/internal/application/pipeline"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InMemoryAnalysisStore keeps the latest analysis result per lead in
// process memory. Suitable for single-instance deployments; results do
// not survive a restart and are not shared across instances.
type InMemoryAnalysisStore struct {
	mu      sync.RWMutex
	results map[uuid.UUID]pipeline.AnalysisResult
}

// NewInMemoryAnalysisStore creates an empty in-memory store
func NewInMemoryAnalysisStore() *InMemoryAnalysisStore {
	return &InMemoryAnalysisStore{
		results: make(map[uuid.UUID]pipeline.AnalysisResult),
	}
}

// Put stores the result unless one with an equal or newer Sequence is
// already present for the same lead
func (s *InMemoryAnalysisStore) Put(_ context.Context, result *pipeline.AnalysisResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.results[result.LeadID]; ok && current.Sequence >= result.Sequence {
		return nil
	}
	s.results[result.LeadID] = *result
	return nil
}

// Get returns the latest result for the lead, or shared.ErrNotFound
func (s *InMemoryAnalysisStore) Get(_ context.Context, leadID uuid.UUID) (*pipeline.AnalysisResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[leadID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := result
	return &copied, nil
}

var _ pipeline.AnalysisStore = (*InMemoryAnalysisStore)(nil)
