package marketing

import (
	"time"

	domain "github.com/franq/backend/internal/domain/marketing"
	"github.com/google/uuid"
)

// CampaignResponse is the application-level representation of a campaign
type CampaignResponse struct {
	ID        uuid.UUID             `json:"id"`
	Name      string                `json:"name"`
	Channel   string                `json:"channel,omitempty"`
	Budget    string                `json:"budget"`
	StartsAt  time.Time             `json:"starts_at"`
	EndsAt    time.Time             `json:"ends_at"`
	Status    domain.CampaignStatus `json:"status"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// ToCampaignResponse maps a campaign aggregate to its response DTO
func ToCampaignResponse(c *domain.Campaign) *CampaignResponse {
	return &CampaignResponse{
		ID:        c.ID,
		Name:      c.Name,
		Channel:   c.Channel,
		Budget:    c.Budget.StringFixed(2),
		StartsAt:  c.StartsAt,
		EndsAt:    c.EndsAt,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
