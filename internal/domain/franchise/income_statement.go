package franchise

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeStatement is a per-franchise, per-period financial summary.
// It is a stateless projection over the transaction list, recomputed
// on every query.
type IncomeStatement struct {
	FranchiseID  uuid.UUID
	PeriodStart  time.Time
	PeriodEnd    time.Time
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetResult    decimal.Decimal
	ByCategory   map[string]decimal.Decimal
}

// BuildIncomeStatement aggregates transactions into a statement.
// Transactions outside [start, end) are ignored.
func BuildIncomeStatement(franchiseID uuid.UUID, transactions []*Transaction, start, end time.Time) *IncomeStatement {
	stmt := &IncomeStatement{
		FranchiseID:  franchiseID,
		PeriodStart:  start,
		PeriodEnd:    end,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		NetResult:    decimal.Zero,
		ByCategory:   make(map[string]decimal.Decimal),
	}

	for _, tx := range transactions {
		if tx.FranchiseID != franchiseID {
			continue
		}
		if tx.OccurredAt.Before(start) || !tx.OccurredAt.Before(end) {
			continue
		}

		switch tx.Type {
		case TransactionTypeIncome:
			stmt.TotalIncome = stmt.TotalIncome.Add(tx.Amount)
		case TransactionTypeExpense:
			stmt.TotalExpense = stmt.TotalExpense.Add(tx.Amount)
		}

		current, ok := stmt.ByCategory[tx.Category]
		if !ok {
			current = decimal.Zero
		}
		stmt.ByCategory[tx.Category] = current.Add(tx.Signed())
	}

	stmt.NetResult = stmt.TotalIncome.Sub(stmt.TotalExpense)
	return stmt
}
