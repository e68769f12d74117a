package franchise

import (
	"context"
	"time"

	domain "github.com/franq/backend/internal/domain/franchise"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GenerateRoyaltyInput carries the fields for a monthly royalty invoice
type GenerateRoyaltyInput struct {
	FranchiseID    uuid.UUID
	ReferenceMonth time.Time
	BaseRevenue    decimal.Decimal
	RoyaltyRate    decimal.Decimal
	DueDate        time.Time
}

// RoyaltyService generates and settles monthly royalty invoices
type RoyaltyService struct {
	franchises domain.FranchiseRepository
	invoices   domain.RoyaltyInvoiceRepository
	logger     *zap.Logger
}

// NewRoyaltyService creates a new royalty service
func NewRoyaltyService(franchises domain.FranchiseRepository, invoices domain.RoyaltyInvoiceRepository, logger *zap.Logger) *RoyaltyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoyaltyService{
		franchises: franchises,
		invoices:   invoices,
		logger:     logger,
	}
}

// Generate creates an open invoice for a reference month. A franchise
// gets at most one invoice per month.
func (s *RoyaltyService) Generate(ctx context.Context, input GenerateRoyaltyInput) (*RoyaltyInvoiceResponse, error) {
	if _, err := s.franchises.FindByID(ctx, input.FranchiseID); err != nil {
		return nil, err
	}

	exists, err := s.invoices.ExistsForMonth(ctx, input.FranchiseID, input.ReferenceMonth)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "an invoice for this month already exists")
	}

	invoice, err := domain.NewRoyaltyInvoice(input.FranchiseID, input.ReferenceMonth, input.BaseRevenue, input.RoyaltyRate, input.DueDate)
	if err != nil {
		return nil, err
	}

	if err := s.invoices.Save(ctx, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("royalty invoice generated",
		zap.String("franchise_id", input.FranchiseID.String()),
		zap.String("reference_month", invoice.ReferenceMonth.Format("2006-01")),
		zap.String("amount", invoice.Amount.StringFixed(2)),
	)
	return ToRoyaltyInvoiceResponse(invoice), nil
}

// ListByFranchise returns a unit's invoices
func (s *RoyaltyService) ListByFranchise(ctx context.Context, franchiseID uuid.UUID) ([]RoyaltyInvoiceResponse, error) {
	if _, err := s.franchises.FindByID(ctx, franchiseID); err != nil {
		return nil, err
	}

	invoices, err := s.invoices.FindByFranchise(ctx, franchiseID)
	if err != nil {
		return nil, err
	}

	responses := make([]RoyaltyInvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		responses = append(responses, *ToRoyaltyInvoiceResponse(invoice))
	}
	return responses, nil
}

// Pay settles an invoice
func (s *RoyaltyService) Pay(ctx context.Context, invoiceID uuid.UUID) (*RoyaltyInvoiceResponse, error) {
	return s.mutate(ctx, invoiceID, func(invoice *domain.RoyaltyInvoice) error {
		return invoice.MarkPaid(time.Now())
	})
}

// Cancel voids an invoice
func (s *RoyaltyService) Cancel(ctx context.Context, invoiceID uuid.UUID) (*RoyaltyInvoiceResponse, error) {
	return s.mutate(ctx, invoiceID, func(invoice *domain.RoyaltyInvoice) error {
		return invoice.Cancel()
	})
}

// MarkOverdue flags an open invoice past its due date
func (s *RoyaltyService) MarkOverdue(ctx context.Context, invoiceID uuid.UUID) (*RoyaltyInvoiceResponse, error) {
	return s.mutate(ctx, invoiceID, func(invoice *domain.RoyaltyInvoice) error {
		return invoice.MarkOverdue(time.Now())
	})
}

func (s *RoyaltyService) mutate(ctx context.Context, invoiceID uuid.UUID, fn func(*domain.RoyaltyInvoice) error) (*RoyaltyInvoiceResponse, error) {
	invoice, err := s.invoices.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := fn(invoice); err != nil {
		return nil, err
	}
	if err := s.invoices.Save(ctx, invoice); err != nil {
		return nil, err
	}
	return ToRoyaltyInvoiceResponse(invoice), nil
}
