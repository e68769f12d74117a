package models

import (
	"time"

	"github.com/franq/backend/internal/domain/franchise"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FranchiseModel is the persistence model for the Franchise aggregate.
type FranchiseModel struct {
	AggregateModel
	Name         string            `gorm:"type:varchar(200);not null"`
	OwnerName    string            `gorm:"type:varchar(200);not null"`
	OwnerEmail   string            `gorm:"type:varchar(200);not null;index"`
	OwnerPhone   string            `gorm:"type:varchar(50)"`
	City         string            `gorm:"type:varchar(100);index"`
	Status       franchise.Status  `gorm:"type:varchar(20);not null;default:'active';index"`
	SourceLeadID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Team         []TeamMemberModel `gorm:"foreignKey:FranchiseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (FranchiseModel) TableName() string {
	return "franchises"
}

// TeamMemberModel is the persistence model for a franchise team member.
type TeamMemberModel struct {
	BaseModel
	FranchiseID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Role        string    `gorm:"type:varchar(100)"`
	Email       string    `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (TeamMemberModel) TableName() string {
	return "franchise_team_members"
}

// TransactionModel is the persistence model for a franchise transaction.
type TransactionModel struct {
	AggregateModel
	FranchiseID uuid.UUID                 `gorm:"type:uuid;not null;index:idx_transactions_franchise_time,priority:1"`
	Type        franchise.TransactionType `gorm:"type:varchar(10);not null"`
	Category    string                    `gorm:"type:varchar(100);not null;index"`
	Description string                    `gorm:"type:text"`
	Amount      decimal.Decimal           `gorm:"type:decimal(18,2);not null"`
	OccurredAt  time.Time                 `gorm:"type:timestamptz;not null;index:idx_transactions_franchise_time,priority:2"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "franchise_transactions"
}

// RoyaltyInvoiceModel is the persistence model for a royalty invoice.
type RoyaltyInvoiceModel struct {
	AggregateModel
	FranchiseID    uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_royalty_franchise_month,priority:1"`
	ReferenceMonth time.Time               `gorm:"type:date;not null;uniqueIndex:idx_royalty_franchise_month,priority:2"`
	BaseRevenue    decimal.Decimal         `gorm:"type:decimal(18,2);not null"`
	RoyaltyRate    decimal.Decimal         `gorm:"type:decimal(5,2);not null"`
	Amount         decimal.Decimal         `gorm:"type:decimal(18,2);not null"`
	DueDate        time.Time               `gorm:"type:date;not null"`
	Status         franchise.RoyaltyStatus `gorm:"type:varchar(20);not null;default:'open';index"`
	PaidAt         *time.Time              `gorm:"type:timestamptz"`
}

// TableName returns the table name for GORM
func (RoyaltyInvoiceModel) TableName() string {
	return "royalty_invoices"
}

// ToDomain converts the persistence model to a domain Franchise aggregate.
func (m *FranchiseModel) ToDomain() *franchise.Franchise {
	f := &franchise.Franchise{
		Name:         m.Name,
		OwnerName:    m.OwnerName,
		OwnerEmail:   m.OwnerEmail,
		OwnerPhone:   m.OwnerPhone,
		City:         m.City,
		Status:       m.Status,
		SourceLeadID: m.SourceLeadID,
		Team:         make([]franchise.TeamMember, 0, len(m.Team)),
	}
	m.PopulateAggregateRoot(&f.BaseAggregateRoot)

	for i := range m.Team {
		f.Team = append(f.Team, franchise.TeamMember{
			BaseEntity: m.Team[i].ToDomain(),
			Name:       m.Team[i].Name,
			Role:       m.Team[i].Role,
			Email:      m.Team[i].Email,
		})
	}
	return f
}

// FromDomain populates the persistence model from a domain Franchise aggregate.
func (m *FranchiseModel) FromDomain(f *franchise.Franchise) {
	m.FromDomainAggregateRoot(f.BaseAggregateRoot)
	m.Name = f.Name
	m.OwnerName = f.OwnerName
	m.OwnerEmail = f.OwnerEmail
	m.OwnerPhone = f.OwnerPhone
	m.City = f.City
	m.Status = f.Status
	m.SourceLeadID = f.SourceLeadID

	m.Team = make([]TeamMemberModel, 0, len(f.Team))
	for i := range f.Team {
		member := TeamMemberModel{
			FranchiseID: f.ID,
			Name:        f.Team[i].Name,
			Role:        f.Team[i].Role,
			Email:       f.Team[i].Email,
		}
		member.FromDomainBaseEntity(f.Team[i].BaseEntity)
		m.Team = append(m.Team, member)
	}
}

// FranchiseModelFromDomain creates a new persistence model from a domain Franchise aggregate.
func FranchiseModelFromDomain(f *franchise.Franchise) *FranchiseModel {
	m := &FranchiseModel{}
	m.FromDomain(f)
	return m
}

// ToDomain converts the persistence model to a domain Transaction.
func (m *TransactionModel) ToDomain() *franchise.Transaction {
	tx := &franchise.Transaction{
		FranchiseID: m.FranchiseID,
		Type:        m.Type,
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		OccurredAt:  m.OccurredAt,
	}
	m.PopulateAggregateRoot(&tx.BaseAggregateRoot)
	return tx
}

// FromDomain populates the persistence model from a domain Transaction.
func (m *TransactionModel) FromDomain(tx *franchise.Transaction) {
	m.FromDomainAggregateRoot(tx.BaseAggregateRoot)
	m.FranchiseID = tx.FranchiseID
	m.Type = tx.Type
	m.Category = tx.Category
	m.Description = tx.Description
	m.Amount = tx.Amount
	m.OccurredAt = tx.OccurredAt
}

// TransactionModelFromDomain creates a new persistence model from a domain Transaction.
func TransactionModelFromDomain(tx *franchise.Transaction) *TransactionModel {
	m := &TransactionModel{}
	m.FromDomain(tx)
	return m
}

// ToDomain converts the persistence model to a domain RoyaltyInvoice.
func (m *RoyaltyInvoiceModel) ToDomain() *franchise.RoyaltyInvoice {
	invoice := &franchise.RoyaltyInvoice{
		FranchiseID:    m.FranchiseID,
		ReferenceMonth: m.ReferenceMonth,
		BaseRevenue:    m.BaseRevenue,
		RoyaltyRate:    m.RoyaltyRate,
		Amount:         m.Amount,
		DueDate:        m.DueDate,
		Status:         m.Status,
		PaidAt:         m.PaidAt,
	}
	m.PopulateAggregateRoot(&invoice.BaseAggregateRoot)
	return invoice
}

// FromDomain populates the persistence model from a domain RoyaltyInvoice.
func (m *RoyaltyInvoiceModel) FromDomain(invoice *franchise.RoyaltyInvoice) {
	m.FromDomainAggregateRoot(invoice.BaseAggregateRoot)
	m.FranchiseID = invoice.FranchiseID
	m.ReferenceMonth = invoice.ReferenceMonth
	m.BaseRevenue = invoice.BaseRevenue
	m.RoyaltyRate = invoice.RoyaltyRate
	m.Amount = invoice.Amount
	m.DueDate = invoice.DueDate
	m.Status = invoice.Status
	m.PaidAt = invoice.PaidAt
}

// RoyaltyInvoiceModelFromDomain creates a new persistence model from a domain RoyaltyInvoice.
func RoyaltyInvoiceModelFromDomain(invoice *franchise.RoyaltyInvoice) *RoyaltyInvoiceModel {
	m := &RoyaltyInvoiceModel{}
	m.FromDomain(invoice)
	return m
}
