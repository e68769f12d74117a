package pipeline

import (
	"context"
	"sync"
	"time"

	domain "github.com/franq/backend/internal/domain/pipeline"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FailureNotice is the inline text stored when the text-generation
// collaborator fails. Analyzer failures never surface as core errors.
const FailureNotice = "Candidate analysis is temporarily unavailable. Try again later."

// AnalysisResult is the latest completed analysis for a lead
type AnalysisResult struct {
	LeadID      uuid.UUID `json:"lead_id"`
	Sequence    uint64    `json:"sequence"`
	Text        string    `json:"text"`
	Failed      bool      `json:"failed"`
	GeneratedAt time.Time `json:"generated_at"`
}

// AnalysisStore keeps the latest analysis result per lead. Put must
// discard a result whose Sequence is not newer than the stored one, so
// a stale completion can never overwrite a newer response no matter
// how the writes interleave.
type AnalysisStore interface {
	Put(ctx context.Context, result *AnalysisResult) error
	Get(ctx context.Context, leadID uuid.UUID) (*AnalysisResult, error)
}

// AnalysisService runs candidate analyses fire-and-forget. A new
// request for the same lead supersedes any in-flight one: only the
// latest completed response is ever stored or shown.
type AnalysisService struct {
	leads    domain.LeadRepository
	analyzer domain.CandidateAnalyzer
	store    AnalysisStore
	logger   *zap.Logger
	timeout  time.Duration

	mu     sync.Mutex
	latest map[uuid.UUID]uint64
	wg     sync.WaitGroup
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(leads domain.LeadRepository, analyzer domain.CandidateAnalyzer, store AnalysisStore, logger *zap.Logger) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{
		leads:    leads,
		analyzer: analyzer,
		store:    store,
		logger:   logger,
		timeout:  30 * time.Second,
		latest:   make(map[uuid.UUID]uint64),
	}
}

// Request starts an analysis for the lead and returns immediately. The
// generation runs detached from the caller's request context.
func (s *AnalysisService) Request(ctx context.Context, leadID uuid.UUID) error {
	lead, err := s.leads.FindByID(ctx, leadID)
	if err != nil {
		return err
	}

	seq := s.nextSequence(leadID)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(lead, seq)
	}()
	return nil
}

// Latest returns the most recent completed analysis for the lead
func (s *AnalysisService) Latest(ctx context.Context, leadID uuid.UUID) (*AnalysisResult, error) {
	return s.store.Get(ctx, leadID)
}

// Flush waits for all in-flight analyses, used on graceful shutdown
func (s *AnalysisService) Flush() {
	s.wg.Wait()
}

// run executes one analysis attempt. Stale attempts (superseded by a
// newer request for the same lead) are discarded without a store
// write. The check here is only an early out: an attempt can still be
// superseded between it and the write, so the store's own sequence
// comparison is what keeps a stale result from landing.
func (s *AnalysisService) run(lead *domain.Lead, seq uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	text, err := s.analyzer.Analyze(ctx, lead)

	if !s.isLatest(lead.ID, seq) {
		s.logger.Debug("discarding superseded analysis",
			zap.String("lead_id", lead.ID.String()),
			zap.Uint64("sequence", seq),
		)
		return
	}

	result := &AnalysisResult{
		LeadID:      lead.ID,
		Sequence:    seq,
		Text:        text,
		GeneratedAt: time.Now(),
	}
	if err != nil {
		// Downgraded to an inline notice: the analyzer never affects
		// lead, document, or note state.
		s.logger.Warn("candidate analysis failed",
			zap.String("lead_id", lead.ID.String()),
			zap.Error(err),
		)
		result.Text = FailureNotice
		result.Failed = true
	}

	if err := s.store.Put(ctx, result); err != nil {
		s.logger.Warn("failed to store analysis result",
			zap.String("lead_id", lead.ID.String()),
			zap.Error(err),
		)
	}
}

func (s *AnalysisService) nextSequence(leadID uuid.UUID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[leadID]++
	return s.latest[leadID]
}

func (s *AnalysisService) isLatest(leadID uuid.UUID, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[leadID] == seq
}
