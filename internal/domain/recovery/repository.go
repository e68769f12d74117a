package recovery

import (
	"context"

	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CaseRepository defines the persistence interface for recovery cases.
// Case notes are owned children loaded and saved with the case.
type CaseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Case, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Case, error)
	Save(ctx context.Context, c *Case) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
