package franchise

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInvoice(t *testing.T) *RoyaltyInvoice {
	t.Helper()
	invoice, err := NewRoyaltyInvoice(
		uuid.New(),
		time.Date(2026, time.July, 15, 10, 0, 0, 0, time.UTC),
		decimal.NewFromInt(20000),
		decimal.NewFromInt(5),
		time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return invoice
}

func TestNewRoyaltyInvoice(t *testing.T) {
	t.Run("computes amount as revenue times rate", func(t *testing.T) {
		invoice := newTestInvoice(t)
		assert.True(t, invoice.Amount.Equal(decimal.NewFromInt(1000)), "amount: %s", invoice.Amount)
		assert.Equal(t, RoyaltyStatusOpen, invoice.Status)
	})

	t.Run("normalizes the reference month", func(t *testing.T) {
		invoice := newTestInvoice(t)
		assert.Equal(t, time.July, invoice.ReferenceMonth.Month())
		assert.Equal(t, 1, invoice.ReferenceMonth.Day())
	})

	t.Run("rejects invalid rate", func(t *testing.T) {
		_, err := NewRoyaltyInvoice(uuid.New(), time.Now(), decimal.NewFromInt(1000), decimal.Zero, time.Now())
		require.Error(t, err)
		_, err = NewRoyaltyInvoice(uuid.New(), time.Now(), decimal.NewFromInt(1000), decimal.NewFromInt(150), time.Now())
		require.Error(t, err)
	})
}

func TestRoyaltyInvoiceLifecycle(t *testing.T) {
	t.Run("pay then refuse further changes", func(t *testing.T) {
		invoice := newTestInvoice(t)
		require.NoError(t, invoice.MarkPaid(time.Now()))
		require.NotNil(t, invoice.PaidAt)

		assert.Error(t, invoice.MarkPaid(time.Now()))
		assert.Error(t, invoice.Cancel())
		assert.Error(t, invoice.MarkOverdue(time.Now().AddDate(1, 0, 0)))
		assert.Equal(t, RoyaltyStatusPaid, invoice.Status)
	})

	t.Run("cancel is final", func(t *testing.T) {
		invoice := newTestInvoice(t)
		require.NoError(t, invoice.Cancel())
		assert.Error(t, invoice.MarkPaid(time.Now()))
	})

	t.Run("overdue only after due date", func(t *testing.T) {
		invoice := newTestInvoice(t)

		err := invoice.MarkOverdue(invoice.DueDate.AddDate(0, 0, -1))
		require.Error(t, err)
		assert.Equal(t, RoyaltyStatusOpen, invoice.Status)

		require.NoError(t, invoice.MarkOverdue(invoice.DueDate.AddDate(0, 0, 1)))
		assert.Equal(t, RoyaltyStatusOverdue, invoice.Status)

		// overdue invoices can still be paid
		require.NoError(t, invoice.MarkPaid(time.Now()))
	})
}
