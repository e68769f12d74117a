package marketing

import (
	"context"

	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CampaignRepository defines the persistence interface for campaigns
type CampaignRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Campaign, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Campaign, error)
	Save(ctx context.Context, c *Campaign) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
