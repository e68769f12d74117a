package pipeline

import (
	"context"

	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// LeadRepository defines the persistence interface for leads. The lead
// is the aggregate root: documents and notes are loaded and saved with
// it as owned child collections.
type LeadRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Lead, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Lead, error)
	FindByStage(ctx context.Context, stage Stage) ([]*Lead, error)
	Save(ctx context.Context, lead *Lead) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
