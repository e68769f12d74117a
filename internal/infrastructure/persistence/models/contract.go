package models

import (
	"github.com/franq/backend/internal/domain/contract"
)

// ContractTemplateModel is the persistence model for the contract Template aggregate.
type ContractTemplateModel struct {
	AggregateModel
	Title  string `gorm:"type:varchar(200);not null"`
	Body   string `gorm:"type:text;not null"`
	Active bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (ContractTemplateModel) TableName() string {
	return "contract_templates"
}

// ToDomain converts the persistence model to a domain Template aggregate.
func (m *ContractTemplateModel) ToDomain() *contract.Template {
	t := &contract.Template{
		Title:  m.Title,
		Body:   m.Body,
		Active: m.Active,
	}
	m.PopulateAggregateRoot(&t.BaseAggregateRoot)
	return t
}

// FromDomain populates the persistence model from a domain Template aggregate.
func (m *ContractTemplateModel) FromDomain(t *contract.Template) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.Title = t.Title
	m.Body = t.Body
	m.Active = t.Active
}

// ContractTemplateModelFromDomain creates a new persistence model from a domain Template aggregate.
func ContractTemplateModelFromDomain(t *contract.Template) *ContractTemplateModel {
	m := &ContractTemplateModel{}
	m.FromDomain(t)
	return m
}
