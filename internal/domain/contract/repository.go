package contract

import (
	"context"

	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TemplateRepository defines the persistence interface for contract templates
type TemplateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Template, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Template, error)
	Save(ctx context.Context, t *Template) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
