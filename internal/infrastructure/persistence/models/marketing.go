package models

import (
	"time"

	"github.com/franq/backend/internal/domain/marketing"
	"github.com/shopspring/decimal"
)

// CampaignModel is the persistence model for the Campaign aggregate.
type CampaignModel struct {
	AggregateModel
	Name     string                   `gorm:"type:varchar(200);not null"`
	Channel  string                   `gorm:"type:varchar(100)"`
	Budget   decimal.Decimal          `gorm:"type:decimal(18,2);not null;default:0"`
	StartsAt time.Time                `gorm:"type:timestamptz"`
	EndsAt   time.Time                `gorm:"type:timestamptz"`
	Status   marketing.CampaignStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
}

// TableName returns the table name for GORM
func (CampaignModel) TableName() string {
	return "campaigns"
}

// ToDomain converts the persistence model to a domain Campaign aggregate.
func (m *CampaignModel) ToDomain() *marketing.Campaign {
	c := &marketing.Campaign{
		Name:     m.Name,
		Channel:  m.Channel,
		Budget:   m.Budget,
		StartsAt: m.StartsAt,
		EndsAt:   m.EndsAt,
		Status:   m.Status,
	}
	m.PopulateAggregateRoot(&c.BaseAggregateRoot)
	return c
}

// FromDomain populates the persistence model from a domain Campaign aggregate.
func (m *CampaignModel) FromDomain(c *marketing.Campaign) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Channel = c.Channel
	m.Budget = c.Budget
	m.StartsAt = c.StartsAt
	m.EndsAt = c.EndsAt
	m.Status = c.Status
}

// CampaignModelFromDomain creates a new persistence model from a domain Campaign aggregate.
func CampaignModelFromDomain(c *marketing.Campaign) *CampaignModel {
	m := &CampaignModel{}
	m.FromDomain(c)
	return m
}
