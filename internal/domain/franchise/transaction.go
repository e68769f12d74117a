package franchise

import (
	"strings"
	"time"

	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out
type TransactionType string

// Transaction types
const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid checks if the transaction type is valid
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single financial movement of a franchise unit
type Transaction struct {
	shared.BaseAggregateRoot
	FranchiseID uuid.UUID
	Type        TransactionType
	Category    string
	Description string
	Amount      decimal.Decimal
	OccurredAt  time.Time
}

// NewTransaction records a financial movement. Amount must be positive;
// the direction comes from the type.
func NewTransaction(franchiseID uuid.UUID, txType TransactionType, category, description string, amount decimal.Decimal, occurredAt time.Time) (*Transaction, error) {
	if !txType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "unknown transaction type: "+string(txType))
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_INPUT", "transaction amount must be positive")
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "transaction category is required")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	return &Transaction{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FranchiseID:       franchiseID,
		Type:              txType,
		Category:          category,
		Description:       strings.TrimSpace(description),
		Amount:            amount,
		OccurredAt:        occurredAt,
	}, nil
}

// Signed returns the amount with the sign implied by the type
func (t *Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
