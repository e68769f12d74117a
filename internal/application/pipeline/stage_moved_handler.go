package pipeline

import (
	"context"

	domain "github.com/franq/backend/internal/domain/pipeline"
	"github.com/franq/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// StageMovedAnalysisHandler requests a fresh candidate analysis whenever a
// lead enters the in_analysis stage. Failures are logged and swallowed so a
// missing analysis never blocks the stage move itself.
type StageMovedAnalysisHandler struct {
	analysis *AnalysisService
	logger   *zap.Logger
}

// NewStageMovedAnalysisHandler creates a new StageMovedAnalysisHandler
func NewStageMovedAnalysisHandler(analysis *AnalysisService, logger *zap.Logger) *StageMovedAnalysisHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StageMovedAnalysisHandler{analysis: analysis, logger: logger}
}

// EventTypes returns the event types this handler subscribes to
func (h *StageMovedAnalysisHandler) EventTypes() []string {
	return []string{domain.EventTypeLeadStageMoved}
}

// Handle triggers an analysis when the target stage is in_analysis
func (h *StageMovedAnalysisHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	moved, ok := event.(*domain.LeadStageMovedEvent)
	if !ok {
		return nil
	}
	if moved.To != domain.StageInAnalysis {
		return nil
	}

	if err := h.analysis.Request(ctx, moved.AggregateID()); err != nil {
		h.logger.Warn("automatic candidate analysis request failed",
			zap.String("lead_id", moved.AggregateID().String()),
			zap.Error(err),
		)
	}
	return nil
}
