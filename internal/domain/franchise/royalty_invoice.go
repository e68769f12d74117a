package franchise

import (
	"time"

	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoyaltyStatus represents the lifecycle state of a royalty invoice
type RoyaltyStatus string

// Royalty invoice statuses
const (
	RoyaltyStatusOpen     RoyaltyStatus = "open"
	RoyaltyStatusPaid     RoyaltyStatus = "paid"
	RoyaltyStatusOverdue  RoyaltyStatus = "overdue"
	RoyaltyStatusCanceled RoyaltyStatus = "canceled"
)

// RoyaltyInvoice charges a franchise unit a percentage of its revenue
// for a reference month.
type RoyaltyInvoice struct {
	shared.BaseAggregateRoot
	FranchiseID    uuid.UUID
	ReferenceMonth time.Time // normalized to the first day of the month
	BaseRevenue    decimal.Decimal
	RoyaltyRate    decimal.Decimal // percent, e.g. 5 means 5%
	Amount         decimal.Decimal
	DueDate        time.Time
	Status         RoyaltyStatus
	PaidAt         *time.Time
}

// NewRoyaltyInvoice generates an open invoice. Amount is the base
// revenue times the rate percentage.
func NewRoyaltyInvoice(franchiseID uuid.UUID, referenceMonth time.Time, baseRevenue, rate decimal.Decimal, dueDate time.Time) (*RoyaltyInvoice, error) {
	if baseRevenue.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "base revenue cannot be negative")
	}
	if rate.LessThanOrEqual(decimal.Zero) || rate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_INPUT", "royalty rate must be between 0 and 100 percent")
	}

	month := time.Date(referenceMonth.Year(), referenceMonth.Month(), 1, 0, 0, 0, 0, referenceMonth.Location())
	amount := baseRevenue.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)

	return &RoyaltyInvoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FranchiseID:       franchiseID,
		ReferenceMonth:    month,
		BaseRevenue:       baseRevenue,
		RoyaltyRate:       rate,
		Amount:            amount,
		DueDate:           dueDate,
		Status:            RoyaltyStatusOpen,
	}, nil
}

// MarkPaid settles the invoice. Paid and canceled invoices are final.
func (i *RoyaltyInvoice) MarkPaid(paidAt time.Time) error {
	if i.Status == RoyaltyStatusPaid || i.Status == RoyaltyStatusCanceled {
		return shared.NewDomainError("INVALID_STATE", "invoice is already "+string(i.Status))
	}
	i.Status = RoyaltyStatusPaid
	i.PaidAt = &paidAt
	i.IncrementVersion()
	return nil
}

// Cancel voids the invoice. Paid and canceled invoices are final.
func (i *RoyaltyInvoice) Cancel() error {
	if i.Status == RoyaltyStatusPaid || i.Status == RoyaltyStatusCanceled {
		return shared.NewDomainError("INVALID_STATE", "invoice is already "+string(i.Status))
	}
	i.Status = RoyaltyStatusCanceled
	i.IncrementVersion()
	return nil
}

// MarkOverdue flags an open invoice whose due date has passed
func (i *RoyaltyInvoice) MarkOverdue(now time.Time) error {
	if i.Status != RoyaltyStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "only open invoices can become overdue")
	}
	if !now.After(i.DueDate) {
		return shared.NewDomainError("INVALID_STATE", "invoice is not past its due date")
	}
	i.Status = RoyaltyStatusOverdue
	i.IncrementVersion()
	return nil
}
