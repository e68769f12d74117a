package recovery

import (
	"strings"
	"time"

	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CaseStatus represents the state of a credit recovery case
type CaseStatus string

// Case statuses
const (
	CaseStatusOpen        CaseStatus = "open"
	CaseStatusNegotiating CaseStatus = "negotiating"
	CaseStatusSettled     CaseStatus = "settled"
	CaseStatusWrittenOff  CaseStatus = "written_off"
)

// IsValid checks if the case status is valid
func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusOpen, CaseStatusNegotiating, CaseStatusSettled, CaseStatusWrittenOff:
		return true
	}
	return false
}

// IsFinal reports whether the case is closed for further movement
func (s CaseStatus) IsFinal() bool {
	return s == CaseStatusSettled || s == CaseStatusWrittenOff
}

// CaseNote is an immutable annotation on a recovery case
type CaseNote struct {
	shared.BaseEntity
	Author string
	Body   string
}

// Case tracks an outstanding debt owed to the network by a franchise
// debtor. It carries its own append-only notes log.
type Case struct {
	shared.BaseAggregateRoot
	FranchiseID       uuid.UUID
	DebtorName        string
	OutstandingAmount decimal.Decimal
	Status            CaseStatus
	SettledAmount     *decimal.Decimal
	SettledAt         *time.Time
	Notes             []CaseNote
}

// NewCase opens a recovery case for an outstanding debt
func NewCase(franchiseID uuid.UUID, debtorName string, outstanding decimal.Decimal) (*Case, error) {
	debtorName = strings.TrimSpace(debtorName)
	if debtorName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "debtor name is required")
	}
	if outstanding.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_INPUT", "outstanding amount must be positive")
	}

	return &Case{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FranchiseID:       franchiseID,
		DebtorName:        debtorName,
		OutstandingAmount: outstanding,
		Status:            CaseStatusOpen,
		Notes:             make([]CaseNote, 0),
	}, nil
}

// MoveTo changes the case status. Settlement and write-off go through
// their dedicated operations; final cases refuse further movement.
func (c *Case) MoveTo(status CaseStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "unknown case status: "+string(status))
	}
	if c.Status.IsFinal() {
		return shared.NewDomainError("INVALID_STATE", "case is already "+string(c.Status))
	}
	if status == CaseStatusSettled {
		return shared.NewDomainError("INVALID_STATE", "use Settle to close a case with a settled amount")
	}
	c.Status = status
	c.IncrementVersion()
	return nil
}

// Settle closes the case recording the recovered amount
func (c *Case) Settle(amount decimal.Decimal, settledAt time.Time) error {
	if c.Status.IsFinal() {
		return shared.NewDomainError("INVALID_STATE", "case is already "+string(c.Status))
	}
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "settled amount cannot be negative")
	}

	c.Status = CaseStatusSettled
	c.SettledAmount = &amount
	c.SettledAt = &settledAt
	c.IncrementVersion()
	return nil
}

// AddNote appends an immutable note to the case log. Blank text is
// rejected after trimming, same rule as lead notes.
func (c *Case) AddNote(author, text string) (*CaseNote, error) {
	body := strings.TrimSpace(text)
	if body == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "note text cannot be empty")
	}

	note := CaseNote{
		BaseEntity: shared.NewBaseEntity(),
		Author:     strings.TrimSpace(author),
		Body:       body,
	}
	c.Notes = append(c.Notes, note)
	return &c.Notes[len(c.Notes)-1], nil
}
