package pipeline

import (
	"context"
	"time"

	franchisedomain "github.com/franq/backend/internal/domain/franchise"
	domain "github.com/franq/backend/internal/domain/pipeline"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FranchiseResponse is the conversion result returned to callers
type FranchiseResponse struct {
	ID           uuid.UUID               `json:"id"`
	Name         string                  `json:"name"`
	OwnerName    string                  `json:"owner_name"`
	OwnerEmail   string                  `json:"owner_email"`
	OwnerPhone   string                  `json:"owner_phone,omitempty"`
	City         string                  `json:"city"`
	Status       franchisedomain.Status  `json:"status"`
	SourceLeadID uuid.UUID               `json:"source_lead_id"`
	CreatedAt    time.Time               `json:"created_at"`
}

// ConversionService performs the one-way transformation of a
// closed-deal lead into a live franchise entity
type ConversionService struct {
	leads      domain.LeadRepository
	franchises franchisedomain.FranchiseRepository
	events     shared.EventPublisher
	logger     *zap.Logger
}

// NewConversionService creates a new conversion service
func NewConversionService(leads domain.LeadRepository, franchises franchisedomain.FranchiseRepository, events shared.EventPublisher, logger *zap.Logger) *ConversionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConversionService{
		leads:      leads,
		franchises: franchises,
		events:     events,
		logger:     logger,
	}
}

// Convert creates exactly one franchise from a closed-deal lead. The
// lead is kept as historical record with its stage untouched; only the
// franchise backlink is written. Repeat conversion is not rejected:
// each call creates another franchise and the backlink points at the
// latest one.
func (s *ConversionService) Convert(ctx context.Context, leadID uuid.UUID) (*FranchiseResponse, error) {
	lead, err := s.leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	// Re-validated here regardless of what the UI offered: defense
	// against stale board state.
	if !lead.CanConvert() {
		return nil, shared.NewDomainError("INVALID_STATE",
			"lead must be in deal_closed stage to be converted, current stage is "+string(lead.Status))
	}

	franchise := franchisedomain.NewFranchiseFromLead(lead)
	if err := s.franchises.Save(ctx, franchise); err != nil {
		return nil, err
	}

	lead.RecordConversion(franchise.ID)
	if err := s.leads.Save(ctx, lead); err != nil {
		return nil, err
	}

	if s.events != nil {
		pending := append(franchise.GetDomainEvents(), lead.GetDomainEvents()...)
		if err := s.events.Publish(ctx, pending...); err != nil {
			s.logger.Warn("failed to publish conversion events", zap.Error(err))
		}
		franchise.ClearDomainEvents()
		lead.ClearDomainEvents()
	}

	s.logger.Info("lead converted to franchise",
		zap.String("lead_id", lead.ID.String()),
		zap.String("franchise_id", franchise.ID.String()),
	)

	return &FranchiseResponse{
		ID:           franchise.ID,
		Name:         franchise.Name,
		OwnerName:    franchise.OwnerName,
		OwnerEmail:   franchise.OwnerEmail,
		OwnerPhone:   franchise.OwnerPhone,
		City:         franchise.City,
		Status:       franchise.Status,
		SourceLeadID: franchise.SourceLeadID,
		CreatedAt:    franchise.CreatedAt,
	}, nil
}
