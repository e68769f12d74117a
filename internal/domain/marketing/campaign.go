package marketing

import (
	"strings"
	"time"

	"github.com/franq/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CampaignStatus represents the lifecycle state of a marketing campaign
type CampaignStatus string

// Campaign statuses
const (
	CampaignStatusDraft    CampaignStatus = "draft"
	CampaignStatusActive   CampaignStatus = "active"
	CampaignStatusFinished CampaignStatus = "finished"
	CampaignStatusCanceled CampaignStatus = "canceled"
)

// Campaign is a network-wide marketing initiative
type Campaign struct {
	shared.BaseAggregateRoot
	Name     string
	Channel  string
	Budget   decimal.Decimal
	StartsAt time.Time
	EndsAt   time.Time
	Status   CampaignStatus
}

// NewCampaign creates a draft campaign
func NewCampaign(name, channel string, budget decimal.Decimal, startsAt, endsAt time.Time) (*Campaign, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "campaign name is required")
	}
	if budget.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "campaign budget cannot be negative")
	}
	if !endsAt.IsZero() && !startsAt.IsZero() && endsAt.Before(startsAt) {
		return nil, shared.NewDomainError("INVALID_INPUT", "campaign cannot end before it starts")
	}

	return &Campaign{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Channel:           strings.TrimSpace(channel),
		Budget:            budget,
		StartsAt:          startsAt,
		EndsAt:            endsAt,
		Status:            CampaignStatusDraft,
	}, nil
}

// Activate launches a draft campaign
func (c *Campaign) Activate() error {
	if c.Status != CampaignStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "only draft campaigns can be activated")
	}
	c.Status = CampaignStatusActive
	c.IncrementVersion()
	return nil
}

// Finish concludes an active campaign
func (c *Campaign) Finish() error {
	if c.Status != CampaignStatusActive {
		return shared.NewDomainError("INVALID_STATE", "only active campaigns can be finished")
	}
	c.Status = CampaignStatusFinished
	c.IncrementVersion()
	return nil
}

// Cancel aborts a campaign that has not finished
func (c *Campaign) Cancel() error {
	if c.Status == CampaignStatusFinished || c.Status == CampaignStatusCanceled {
		return shared.NewDomainError("INVALID_STATE", "campaign is already "+string(c.Status))
	}
	c.Status = CampaignStatusCanceled
	c.IncrementVersion()
	return nil
}
