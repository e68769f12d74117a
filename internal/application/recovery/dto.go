package recovery

import (
	"time"

	domain "github.com/franq/backend/internal/domain/recovery"
	"github.com/google/uuid"
)

// CaseResponse is the application-level representation of a recovery case
type CaseResponse struct {
	ID                uuid.UUID         `json:"id"`
	FranchiseID       uuid.UUID         `json:"franchise_id"`
	DebtorName        string            `json:"debtor_name"`
	OutstandingAmount string            `json:"outstanding_amount"`
	Status            domain.CaseStatus `json:"status"`
	SettledAmount     *string           `json:"settled_amount,omitempty"`
	SettledAt         *time.Time        `json:"settled_at,omitempty"`
	NoteCount         int               `json:"note_count"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// CaseNoteResponse is the application-level representation of a case note
type CaseNoteResponse struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCaseResponse maps a case aggregate to its response DTO
func ToCaseResponse(c *domain.Case) *CaseResponse {
	resp := &CaseResponse{
		ID:                c.ID,
		FranchiseID:       c.FranchiseID,
		DebtorName:        c.DebtorName,
		OutstandingAmount: c.OutstandingAmount.StringFixed(2),
		Status:            c.Status,
		SettledAt:         c.SettledAt,
		NoteCount:         len(c.Notes),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
	if c.SettledAmount != nil {
		settled := c.SettledAmount.StringFixed(2)
		resp.SettledAmount = &settled
	}
	return resp
}

// ToCaseNoteResponse maps a case note to its response DTO
func ToCaseNoteResponse(note *domain.CaseNote) *CaseNoteResponse {
	return &CaseNoteResponse{
		ID:        note.ID,
		Author:    note.Author,
		Body:      note.Body,
		CreatedAt: note.CreatedAt,
	}
}
