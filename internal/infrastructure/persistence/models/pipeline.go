package models

import (
	"github.com/franq/backend/internal/domain/pipeline"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeadModel is the persistence model for the Lead aggregate.
type LeadModel struct {
	AggregateModel
	Name                 string              `gorm:"type:varchar(200);not null"`
	Email                string              `gorm:"type:varchar(200);not null;uniqueIndex:idx_leads_email"`
	Phone                string              `gorm:"type:varchar(50)"`
	City                 string              `gorm:"type:varchar(100);index"`
	InvestmentCapital    decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	Status               pipeline.Stage      `gorm:"type:varchar(30);not null;default:'initial_interest';index"`
	ConvertedFranchiseID *uuid.UUID          `gorm:"type:uuid"`
	Documents            []LeadDocumentModel `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	Notes                []LeadNoteModel     `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (LeadModel) TableName() string {
	return "leads"
}

// LeadDocumentModel is the persistence model for a checklist document.
type LeadDocumentModel struct {
	BaseModel
	LeadID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Name   string                  `gorm:"type:varchar(200);not null"`
	Status pipeline.DocumentStatus `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (LeadDocumentModel) TableName() string {
	return "lead_documents"
}

// LeadNoteModel is the persistence model for a lead note.
type LeadNoteModel struct {
	BaseModel
	LeadID uuid.UUID `gorm:"type:uuid;not null;index"`
	Author string    `gorm:"type:varchar(100)"`
	Body   string    `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (LeadNoteModel) TableName() string {
	return "lead_notes"
}

// ToDomain converts the persistence model to a domain Lead aggregate.
func (m *LeadModel) ToDomain() *pipeline.Lead {
	lead := &pipeline.Lead{
		Name:                 m.Name,
		Email:                m.Email,
		Phone:                m.Phone,
		City:                 m.City,
		InvestmentCapital:    m.InvestmentCapital,
		Status:               m.Status,
		ConvertedFranchiseID: m.ConvertedFranchiseID,
		Documents:            make([]pipeline.Document, 0, len(m.Documents)),
		Notes:                make([]pipeline.Note, 0, len(m.Notes)),
	}
	m.PopulateAggregateRoot(&lead.BaseAggregateRoot)

	for i := range m.Documents {
		lead.Documents = append(lead.Documents, pipeline.Document{
			BaseEntity: m.Documents[i].ToDomain(),
			Name:       m.Documents[i].Name,
			Status:     m.Documents[i].Status,
		})
	}
	for i := range m.Notes {
		lead.Notes = append(lead.Notes, pipeline.Note{
			BaseEntity: m.Notes[i].ToDomain(),
			Author:     m.Notes[i].Author,
			Body:       m.Notes[i].Body,
		})
	}
	return lead
}

// FromDomain populates the persistence model from a domain Lead aggregate.
func (m *LeadModel) FromDomain(lead *pipeline.Lead) {
	m.FromDomainAggregateRoot(lead.BaseAggregateRoot)
	m.Name = lead.Name
	m.Email = lead.Email
	m.Phone = lead.Phone
	m.City = lead.City
	m.InvestmentCapital = lead.InvestmentCapital
	m.Status = lead.Status
	m.ConvertedFranchiseID = lead.ConvertedFranchiseID

	m.Documents = make([]LeadDocumentModel, 0, len(lead.Documents))
	for i := range lead.Documents {
		doc := LeadDocumentModel{
			LeadID: lead.ID,
			Name:   lead.Documents[i].Name,
			Status: lead.Documents[i].Status,
		}
		doc.FromDomainBaseEntity(lead.Documents[i].BaseEntity)
		m.Documents = append(m.Documents, doc)
	}

	m.Notes = make([]LeadNoteModel, 0, len(lead.Notes))
	for i := range lead.Notes {
		note := LeadNoteModel{
			LeadID: lead.ID,
			Author: lead.Notes[i].Author,
			Body:   lead.Notes[i].Body,
		}
		note.FromDomainBaseEntity(lead.Notes[i].BaseEntity)
		m.Notes = append(m.Notes, note)
	}
}

// LeadModelFromDomain creates a new persistence model from a domain Lead aggregate.
func LeadModelFromDomain(lead *pipeline.Lead) *LeadModel {
	m := &LeadModel{}
	m.FromDomain(lead)
	return m
}
