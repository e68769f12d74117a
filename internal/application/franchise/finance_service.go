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

// RecordTransactionInput carries the fields of a financial movement
type RecordTransactionInput struct {
	FranchiseID uuid.UUID
	Type        domain.TransactionType
	Category    string
	Description string
	Amount      decimal.Decimal
	OccurredAt  time.Time
}

// FinanceService records franchise transactions and builds income
// statements over them
type FinanceService struct {
	franchises   domain.FranchiseRepository
	transactions domain.TransactionRepository
	logger       *zap.Logger
}

// NewFinanceService creates a new finance service
func NewFinanceService(franchises domain.FranchiseRepository, transactions domain.TransactionRepository, logger *zap.Logger) *FinanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinanceService{
		franchises:   franchises,
		transactions: transactions,
		logger:       logger,
	}
}

// RecordTransaction registers a financial movement for a unit
func (s *FinanceService) RecordTransaction(ctx context.Context, input RecordTransactionInput) (*TransactionResponse, error) {
	if _, err := s.franchises.FindByID(ctx, input.FranchiseID); err != nil {
		return nil, err
	}

	tx, err := domain.NewTransaction(input.FranchiseID, input.Type, input.Category, input.Description, input.Amount, input.OccurredAt)
	if err != nil {
		return nil, err
	}

	if err := s.transactions.Save(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.Info("transaction recorded",
		zap.String("franchise_id", input.FranchiseID.String()),
		zap.String("type", string(input.Type)),
		zap.String("amount", input.Amount.StringFixed(2)),
	)
	return ToTransactionResponse(tx), nil
}

// ListTransactions returns a unit's transactions within [from, to)
func (s *FinanceService) ListTransactions(ctx context.Context, franchiseID uuid.UUID, from, to time.Time) ([]TransactionResponse, error) {
	if _, err := s.franchises.FindByID(ctx, franchiseID); err != nil {
		return nil, err
	}

	transactions, err := s.transactions.FindByFranchise(ctx, franchiseID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, *ToTransactionResponse(tx))
	}
	return responses, nil
}

// IncomeStatement recomputes the per-period summary from the stored
// transactions. Nothing is cached; the transaction list is the source
// of truth.
func (s *FinanceService) IncomeStatement(ctx context.Context, franchiseID uuid.UUID, start, end time.Time) (*IncomeStatementResponse, error) {
	if _, err := s.franchises.FindByID(ctx, franchiseID); err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, shared.NewDomainError("INVALID_INPUT", "period end must be after period start")
	}

	transactions, err := s.transactions.FindByFranchise(ctx, franchiseID, start, end)
	if err != nil {
		return nil, err
	}

	stmt := domain.BuildIncomeStatement(franchiseID, transactions, start, end)
	return ToIncomeStatementResponse(stmt), nil
}
