package models

import (
	"time"

	"github.com/franq/backend/internal/domain/recovery"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecoveryCaseModel is the persistence model for the recovery Case aggregate.
type RecoveryCaseModel struct {
	AggregateModel
	FranchiseID       uuid.UUID           `gorm:"type:uuid;not null;index"`
	DebtorName        string              `gorm:"type:varchar(200);not null"`
	OutstandingAmount decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	Status            recovery.CaseStatus `gorm:"type:varchar(20);not null;default:'open';index"`
	SettledAmount     *decimal.Decimal    `gorm:"type:decimal(18,2)"`
	SettledAt         *time.Time          `gorm:"type:timestamptz"`
	Notes             []CaseNoteModel     `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (RecoveryCaseModel) TableName() string {
	return "recovery_cases"
}

// CaseNoteModel is the persistence model for a recovery case note.
type CaseNoteModel struct {
	BaseModel
	CaseID uuid.UUID `gorm:"type:uuid;not null;index"`
	Author string    `gorm:"type:varchar(100)"`
	Body   string    `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (CaseNoteModel) TableName() string {
	return "recovery_case_notes"
}

// ToDomain converts the persistence model to a domain Case aggregate.
func (m *RecoveryCaseModel) ToDomain() *recovery.Case {
	c := &recovery.Case{
		FranchiseID:       m.FranchiseID,
		DebtorName:        m.DebtorName,
		OutstandingAmount: m.OutstandingAmount,
		Status:            m.Status,
		SettledAmount:     m.SettledAmount,
		SettledAt:         m.SettledAt,
		Notes:             make([]recovery.CaseNote, 0, len(m.Notes)),
	}
	m.PopulateAggregateRoot(&c.BaseAggregateRoot)

	for i := range m.Notes {
		c.Notes = append(c.Notes, recovery.CaseNote{
			BaseEntity: m.Notes[i].ToDomain(),
			Author:     m.Notes[i].Author,
			Body:       m.Notes[i].Body,
		})
	}
	return c
}

// FromDomain populates the persistence model from a domain Case aggregate.
func (m *RecoveryCaseModel) FromDomain(c *recovery.Case) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.FranchiseID = c.FranchiseID
	m.DebtorName = c.DebtorName
	m.OutstandingAmount = c.OutstandingAmount
	m.Status = c.Status
	m.SettledAmount = c.SettledAmount
	m.SettledAt = c.SettledAt

	m.Notes = make([]CaseNoteModel, 0, len(c.Notes))
	for i := range c.Notes {
		note := CaseNoteModel{
			CaseID: c.ID,
			Author: c.Notes[i].Author,
			Body:   c.Notes[i].Body,
		}
		note.FromDomainBaseEntity(c.Notes[i].BaseEntity)
		m.Notes = append(m.Notes, note)
	}
}

// RecoveryCaseModelFromDomain creates a new persistence model from a domain Case aggregate.
func RecoveryCaseModelFromDomain(c *recovery.Case) *RecoveryCaseModel {
	m := &RecoveryCaseModel{}
	m.FromDomain(c)
	return m
}
