package franchise

import (
	"context"
	"time"

	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FranchiseRepository defines the persistence interface for franchises.
// Team members are owned children loaded and saved with the unit.
type FranchiseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Franchise, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Franchise, error)
	Save(ctx context.Context, f *Franchise) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// TransactionRepository defines the persistence interface for
// franchise financial transactions
type TransactionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindByFranchise(ctx context.Context, franchiseID uuid.UUID, from, to time.Time) ([]*Transaction, error)
	Save(ctx context.Context, tx *Transaction) error
}

// RoyaltyInvoiceRepository defines the persistence interface for
// royalty invoices
type RoyaltyInvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoyaltyInvoice, error)
	FindByFranchise(ctx context.Context, franchiseID uuid.UUID) ([]*RoyaltyInvoice, error)
	ExistsForMonth(ctx context.Context, franchiseID uuid.UUID, month time.Time) (bool, error)
	Save(ctx context.Context, invoice *RoyaltyInvoice) error
}
