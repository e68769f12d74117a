package pipeline

import (
	"time"

	domain "github.com/franq/backend/internal/domain/pipeline"
	"github.com/google/uuid"
)

// LeadResponse is the application-level representation of a lead
type LeadResponse struct {
	ID                   uuid.UUID          `json:"id"`
	Name                 string             `json:"name"`
	Email                string             `json:"email"`
	Phone                string             `json:"phone,omitempty"`
	City                 string             `json:"city"`
	InvestmentCapital    string             `json:"investment_capital"`
	Status               domain.Stage       `json:"status"`
	ChecklistCompletion  float64            `json:"checklist_completion"`
	Documents            []DocumentResponse `json:"documents"`
	NoteCount            int                `json:"note_count"`
	ConvertedFranchiseID *uuid.UUID         `json:"converted_franchise_id,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

// DocumentResponse is the application-level representation of a
// checklist document
type DocumentResponse struct {
	ID     uuid.UUID             `json:"id"`
	Name   string                `json:"name"`
	Status domain.DocumentStatus `json:"status"`
}

// NoteResponse is the application-level representation of a note
type NoteResponse struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// BoardColumnResponse is one stage bucket of the pipeline board
type BoardColumnResponse struct {
	Stage domain.Stage   `json:"stage"`
	Leads []LeadResponse `json:"leads"`
}

// BoardResponse is the stage-partitioned pipeline view
type BoardResponse struct {
	Columns []BoardColumnResponse `json:"columns"`
}

// ToLeadResponse maps a lead aggregate to its response DTO
func ToLeadResponse(lead *domain.Lead) *LeadResponse {
	docs := make([]DocumentResponse, 0, len(lead.Documents))
	for _, doc := range lead.Documents {
		docs = append(docs, DocumentResponse{
			ID:     doc.ID,
			Name:   doc.Name,
			Status: doc.Status,
		})
	}

	return &LeadResponse{
		ID:                   lead.ID,
		Name:                 lead.Name,
		Email:                lead.Email,
		Phone:                lead.Phone,
		City:                 lead.City,
		InvestmentCapital:    lead.InvestmentCapital.StringFixed(2),
		Status:               lead.Status,
		ChecklistCompletion:  lead.ChecklistCompletion(),
		Documents:            docs,
		NoteCount:            len(lead.Notes),
		ConvertedFranchiseID: lead.ConvertedFranchiseID,
		CreatedAt:            lead.CreatedAt,
		UpdatedAt:            lead.UpdatedAt,
	}
}

// ToNoteResponse maps a note to its response DTO
func ToNoteResponse(note *domain.Note) *NoteResponse {
	return &NoteResponse{
		ID:        note.ID,
		Author:    note.Author,
		Body:      note.Body,
		CreatedAt: note.CreatedAt,
	}
}

// ToBoardResponse maps a board projection to its response DTO,
// columns in funnel order
func ToBoardResponse(board domain.Board) *BoardResponse {
	columns := make([]BoardColumnResponse, 0, len(domain.AllStages()))
	for _, stage := range domain.AllStages() {
		leads := make([]LeadResponse, 0, len(board[stage]))
		for _, lead := range board[stage] {
			leads = append(leads, *ToLeadResponse(lead))
		}
		columns = append(columns, BoardColumnResponse{Stage: stage, Leads: leads})
	}
	return &BoardResponse{Columns: columns}
}
