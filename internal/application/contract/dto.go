package contract

import (
	"time"

	domain "github.com/franq/backend/internal/domain/contract"
	"github.com/google/uuid"
)

// TemplateResponse is the application-level representation of a template
type TemplateResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Active    bool      `json:"active"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RenderedContractResponse is a contract text rendered for a candidate
type RenderedContractResponse struct {
	TemplateID uuid.UUID `json:"template_id"`
	LeadID     uuid.UUID `json:"lead_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	RenderedAt time.Time `json:"rendered_at"`
}

// ToTemplateResponse maps a template aggregate to its response DTO
func ToTemplateResponse(t *domain.Template) *TemplateResponse {
	return &TemplateResponse{
		ID:        t.ID,
		Title:     t.Title,
		Body:      t.Body,
		Active:    t.Active,
		Version:   t.Version,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
