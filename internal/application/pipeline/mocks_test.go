package pipeline

import (
	"context"
	"sync"

	franchisedomain "github.com/franq/backend/internal/domain/franchise"
	domain "github.com/franq/backend/internal/domain/pipeline"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockLeadRepository is a testify mock of domain.LeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*domain.Lead, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByStage(ctx context.Context, stage domain.Stage) ([]*domain.Lead, error) {
	args := m.Called(ctx, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) Save(ctx context.Context, lead *domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeadRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockFranchiseRepository is a testify mock of franchise.FranchiseRepository
type MockFranchiseRepository struct {
	mock.Mock
}

func (m *MockFranchiseRepository) FindByID(ctx context.Context, id uuid.UUID) (*franchisedomain.Franchise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*franchisedomain.Franchise), args.Error(1)
}

func (m *MockFranchiseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*franchisedomain.Franchise, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*franchisedomain.Franchise), args.Error(1)
}

func (m *MockFranchiseRepository) Save(ctx context.Context, f *franchisedomain.Franchise) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFranchiseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockAnalyzer is a testify mock of domain.CandidateAnalyzer
type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, lead *domain.Lead) (string, error) {
	args := m.Called(ctx, lead)
	return args.String(0), args.Error(1)
}

// memoryAnalysisStore is a thread-safe in-memory AnalysisStore for tests
type memoryAnalysisStore struct {
	mu      sync.Mutex
	results map[uuid.UUID]*AnalysisResult
	puts    int
}

func newMemoryAnalysisStore() *memoryAnalysisStore {
	return &memoryAnalysisStore{results: make(map[uuid.UUID]*AnalysisResult)}
}

func (s *memoryAnalysisStore) Put(_ context.Context, result *AnalysisResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	if current, ok := s.results[result.LeadID]; ok && current.Sequence >= result.Sequence {
		return nil
	}
	s.results[result.LeadID] = result
	return nil
}

func (s *memoryAnalysisStore) Get(_ context.Context, leadID uuid.UUID) (*AnalysisResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, ok := s.results[leadID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return result, nil
}

// gatedAnalysisStore blocks its first Put on a gate channel so a test
// can hold a completed write in flight while a newer one lands
type gatedAnalysisStore struct {
	*memoryAnalysisStore
	callMu  sync.Mutex
	calls   int
	entered chan struct{}
	gate    chan struct{}
}

func newGatedAnalysisStore() *gatedAnalysisStore {
	return &gatedAnalysisStore{
		memoryAnalysisStore: newMemoryAnalysisStore(),
		entered:             make(chan struct{}),
		gate:                make(chan struct{}),
	}
}

func (s *gatedAnalysisStore) Put(ctx context.Context, result *AnalysisResult) error {
	s.callMu.Lock()
	s.calls++
	first := s.calls == 1
	s.callMu.Unlock()

	if first {
		close(s.entered)
		<-s.gate
	}
	return s.memoryAnalysisStore.Put(ctx, result)
}

// gateAnalyzer blocks its first call on a gate channel so a test can
// hold an analysis in flight while a second one lands
type gateAnalyzer struct {
	mu      sync.Mutex
	calls   int
	entered chan struct{}
	gate    chan struct{}
}

func newGateAnalyzer() *gateAnalyzer {
	return &gateAnalyzer{
		entered: make(chan struct{}),
		gate:    make(chan struct{}),
	}
}

func (a *gateAnalyzer) Analyze(ctx context.Context, _ *domain.Lead) (string, error) {
	a.mu.Lock()
	a.calls++
	n := a.calls
	a.mu.Unlock()

	if n == 1 {
		close(a.entered)
		select {
		case <-a.gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
		return "slow answer", nil
	}
	return "latest answer", nil
}
