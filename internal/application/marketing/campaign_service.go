package marketing

import (
	"context"
	"time"

	domain "github.com/franq/backend/internal/domain/marketing"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateCampaignInput carries the fields for a new campaign
type CreateCampaignInput struct {
	Name     string
	Channel  string
	Budget   decimal.Decimal
	StartsAt time.Time
	EndsAt   time.Time
}

// CampaignService manages network-wide marketing campaigns
type CampaignService struct {
	campaigns domain.CampaignRepository
	logger    *zap.Logger
}

// NewCampaignService creates a new campaign service
func NewCampaignService(campaigns domain.CampaignRepository, logger *zap.Logger) *CampaignService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CampaignService{
		campaigns: campaigns,
		logger:    logger,
	}
}

// CreateCampaign registers a draft campaign
func (s *CampaignService) CreateCampaign(ctx context.Context, input CreateCampaignInput) (*CampaignResponse, error) {
	c, err := domain.NewCampaign(input.Name, input.Channel, input.Budget, input.StartsAt, input.EndsAt)
	if err != nil {
		return nil, err
	}

	if err := s.campaigns.Save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("campaign created",
		zap.String("campaign_id", c.ID.String()),
		zap.String("name", c.Name),
	)
	return ToCampaignResponse(c), nil
}

// GetCampaign returns a single campaign
func (s *CampaignService) GetCampaign(ctx context.Context, id uuid.UUID) (*CampaignResponse, error) {
	c, err := s.campaigns.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCampaignResponse(c), nil
}

// ListCampaigns returns campaigns matching the filter plus the total count
func (s *CampaignService) ListCampaigns(ctx context.Context, filter shared.Filter) ([]CampaignResponse, int64, error) {
	campaigns, err := s.campaigns.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.campaigns.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		responses = append(responses, *ToCampaignResponse(c))
	}
	return responses, total, nil
}

// Activate launches a draft campaign
func (s *CampaignService) Activate(ctx context.Context, id uuid.UUID) (*CampaignResponse, error) {
	return s.mutate(ctx, id, (*domain.Campaign).Activate)
}

// Finish concludes an active campaign
func (s *CampaignService) Finish(ctx context.Context, id uuid.UUID) (*CampaignResponse, error) {
	return s.mutate(ctx, id, (*domain.Campaign).Finish)
}

// Cancel aborts a campaign that has not finished
func (s *CampaignService) Cancel(ctx context.Context, id uuid.UUID) (*CampaignResponse, error) {
	return s.mutate(ctx, id, (*domain.Campaign).Cancel)
}

func (s *CampaignService) mutate(ctx context.Context, id uuid.UUID, fn func(*domain.Campaign) error) (*CampaignResponse, error) {
	c, err := s.campaigns.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(c); err != nil {
		return nil, err
	}
	if err := s.campaigns.Save(ctx, c); err != nil {
		return nil, err
	}
	return ToCampaignResponse(c), nil
}
