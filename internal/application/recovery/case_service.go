package recovery

import (
	"context"
	"time"

	franchisedomain "github.com/franq/backend/internal/domain/franchise"
	domain "github.com/franq/backend/internal/domain/recovery"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OpenCaseInput carries the fields for opening a recovery case
type OpenCaseInput struct {
	FranchiseID       uuid.UUID
	DebtorName        string
	OutstandingAmount decimal.Decimal
}

// CaseService manages credit recovery cases
type CaseService struct {
	cases      domain.CaseRepository
	franchises franchisedomain.FranchiseRepository
	logger     *zap.Logger
}

// NewCaseService creates a new recovery case service
func NewCaseService(cases domain.CaseRepository, franchises franchisedomain.FranchiseRepository, logger *zap.Logger) *CaseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CaseService{
		cases:      cases,
		franchises: franchises,
		logger:     logger,
	}
}

// OpenCase opens a case against an existing franchise debtor
func (s *CaseService) OpenCase(ctx context.Context, input OpenCaseInput) (*CaseResponse, error) {
	if _, err := s.franchises.FindByID(ctx, input.FranchiseID); err != nil {
		return nil, err
	}

	c, err := domain.NewCase(input.FranchiseID, input.DebtorName, input.OutstandingAmount)
	if err != nil {
		return nil, err
	}

	if err := s.cases.Save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("recovery case opened",
		zap.String("case_id", c.ID.String()),
		zap.String("franchise_id", input.FranchiseID.String()),
		zap.String("outstanding", input.OutstandingAmount.StringFixed(2)),
	)
	return ToCaseResponse(c), nil
}

// GetCase returns a single case
func (s *CaseService) GetCase(ctx context.Context, id uuid.UUID) (*CaseResponse, error) {
	c, err := s.cases.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCaseResponse(c), nil
}

// ListCases returns cases matching the filter plus the total count
func (s *CaseService) ListCases(ctx context.Context, filter shared.Filter) ([]CaseResponse, int64, error) {
	cases, err := s.cases.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.cases.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CaseResponse, 0, len(cases))
	for _, c := range cases {
		responses = append(responses, *ToCaseResponse(c))
	}
	return responses, total, nil
}

// MoveCase changes the case status
func (s *CaseService) MoveCase(ctx context.Context, id uuid.UUID, status domain.CaseStatus) (*CaseResponse, error) {
	c, err := s.cases.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.MoveTo(status); err != nil {
		return nil, err
	}
	if err := s.cases.Save(ctx, c); err != nil {
		return nil, err
	}
	return ToCaseResponse(c), nil
}

// SettleCase closes the case recording the recovered amount
func (s *CaseService) SettleCase(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*CaseResponse, error) {
	c, err := s.cases.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.Settle(amount, time.Now()); err != nil {
		return nil, err
	}
	if err := s.cases.Save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("recovery case settled",
		zap.String("case_id", c.ID.String()),
		zap.String("settled_amount", amount.StringFixed(2)),
	)
	return ToCaseResponse(c), nil
}

// AddNote appends an internal note to a case
func (s *CaseService) AddNote(ctx context.Context, id uuid.UUID, author, text string) (*CaseNoteResponse, error) {
	c, err := s.cases.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	note, err := c.AddNote(author, text)
	if err != nil {
		return nil, err
	}
	if err := s.cases.Save(ctx, c); err != nil {
		return nil, err
	}
	return ToCaseNoteResponse(note), nil
}

// ListNotes returns a case's notes in insertion order, oldest first
func (s *CaseService) ListNotes(ctx context.Context, id uuid.UUID) ([]CaseNoteResponse, error) {
	c, err := s.cases.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	notes := make([]CaseNoteResponse, 0, len(c.Notes))
	for i := range c.Notes {
		notes = append(notes, *ToCaseNoteResponse(&c.Notes[i]))
	}
	return notes, nil
}
