package franchise

import (
	"context"
	"testing"
	"time"

	domain "github.com/franq/backend/internal/domain/franchise"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func royaltyInput(franchiseID uuid.UUID) GenerateRoyaltyInput {
	month := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	return GenerateRoyaltyInput{
		FranchiseID:    franchiseID,
		ReferenceMonth: month,
		BaseRevenue:    decimal.NewFromInt(20000),
		RoyaltyRate:    decimal.NewFromInt(5),
		DueDate:        time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestRoyaltyServiceGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("generates an open invoice with the computed amount", func(t *testing.T) {
		f := storedFranchise(t)
		franchises := new(MockFranchiseRepository)
		invoices := new(MockRoyaltyInvoiceRepository)
		franchises.On("FindByID", ctx, f.ID).Return(f, nil)
		invoices.On("ExistsForMonth", ctx, f.ID, mock.AnythingOfType("time.Time")).Return(false, nil)
		invoices.On("Save", ctx, mock.AnythingOfType("*franchise.RoyaltyInvoice")).Return(nil)

		svc := NewRoyaltyService(franchises, invoices, nil)
		resp, err := svc.Generate(ctx, royaltyInput(f.ID))

		require.NoError(t, err)
		assert.Equal(t, "1000.00", resp.Amount)
		assert.Equal(t, "2026-03", resp.ReferenceMonth)
		assert.Equal(t, domain.RoyaltyStatusOpen, resp.Status)
	})

	t.Run("rejects a duplicate month", func(t *testing.T) {
		f := storedFranchise(t)
		franchises := new(MockFranchiseRepository)
		invoices := new(MockRoyaltyInvoiceRepository)
		franchises.On("FindByID", ctx, f.ID).Return(f, nil)
		invoices.On("ExistsForMonth", ctx, f.ID, mock.AnythingOfType("time.Time")).Return(true, nil)

		svc := NewRoyaltyService(franchises, invoices, nil)
		_, err := svc.Generate(ctx, royaltyInput(f.ID))

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		invoices.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestRoyaltyServiceSettlement(t *testing.T) {
	ctx := context.Background()

	openInvoice := func(t *testing.T) *domain.RoyaltyInvoice {
		t.Helper()
		f := storedFranchise(t)
		in := royaltyInput(f.ID)
		invoice, err := domain.NewRoyaltyInvoice(in.FranchiseID, in.ReferenceMonth, in.BaseRevenue, in.RoyaltyRate, in.DueDate)
		require.NoError(t, err)
		return invoice
	}

	t.Run("pays an open invoice", func(t *testing.T) {
		invoice := openInvoice(t)
		invoices := new(MockRoyaltyInvoiceRepository)
		invoices.On("FindByID", ctx, invoice.ID).Return(invoice, nil)
		invoices.On("Save", ctx, invoice).Return(nil)

		svc := NewRoyaltyService(new(MockFranchiseRepository), invoices, nil)
		resp, err := svc.Pay(ctx, invoice.ID)

		require.NoError(t, err)
		assert.Equal(t, domain.RoyaltyStatusPaid, resp.Status)
		require.NotNil(t, resp.PaidAt)
	})

	t.Run("refuses to cancel a paid invoice", func(t *testing.T) {
		invoice := openInvoice(t)
		require.NoError(t, invoice.MarkPaid(time.Now()))

		invoices := new(MockRoyaltyInvoiceRepository)
		invoices.On("FindByID", ctx, invoice.ID).Return(invoice, nil)

		svc := NewRoyaltyService(new(MockFranchiseRepository), invoices, nil)
		_, err := svc.Cancel(ctx, invoice.ID)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		invoices.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("marks an open invoice overdue after its due date", func(t *testing.T) {
		f := storedFranchise(t)
		in := royaltyInput(f.ID)
		in.DueDate = time.Now().Add(-24 * time.Hour)
		invoice, err := domain.NewRoyaltyInvoice(in.FranchiseID, in.ReferenceMonth, in.BaseRevenue, in.RoyaltyRate, in.DueDate)
		require.NoError(t, err)

		invoices := new(MockRoyaltyInvoiceRepository)
		invoices.On("FindByID", ctx, invoice.ID).Return(invoice, nil)
		invoices.On("Save", ctx, invoice).Return(nil)

		svc := NewRoyaltyService(new(MockFranchiseRepository), invoices, nil)
		resp, err := svc.MarkOverdue(ctx, invoice.ID)

		require.NoError(t, err)
		assert.Equal(t, domain.RoyaltyStatusOverdue, resp.Status)
	})
}
