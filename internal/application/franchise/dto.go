package franchise

import (
	"time"

	domain "github.com/franq/backend/internal/domain/franchise"
	"github.com/google/uuid"
)

// FranchiseResponse is the application-level representation of a franchise
type FranchiseResponse struct {
	ID           uuid.UUID            `json:"id"`
	Name         string               `json:"name"`
	OwnerName    string               `json:"owner_name"`
	OwnerEmail   string               `json:"owner_email"`
	OwnerPhone   string               `json:"owner_phone,omitempty"`
	City         string               `json:"city"`
	Status       domain.Status        `json:"status"`
	SourceLeadID uuid.UUID            `json:"source_lead_id"`
	Team         []TeamMemberResponse `json:"team"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// TeamMemberResponse is the application-level representation of a team member
type TeamMemberResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Role  string    `json:"role,omitempty"`
	Email string    `json:"email,omitempty"`
}

// TransactionResponse is the application-level representation of a
// financial transaction
type TransactionResponse struct {
	ID          uuid.UUID              `json:"id"`
	FranchiseID uuid.UUID              `json:"franchise_id"`
	Type        domain.TransactionType `json:"type"`
	Category    string                 `json:"category"`
	Description string                 `json:"description,omitempty"`
	Amount      string                 `json:"amount"`
	OccurredAt  time.Time              `json:"occurred_at"`
}

// RoyaltyInvoiceResponse is the application-level representation of a
// royalty invoice
type RoyaltyInvoiceResponse struct {
	ID             uuid.UUID            `json:"id"`
	FranchiseID    uuid.UUID            `json:"franchise_id"`
	ReferenceMonth string               `json:"reference_month"`
	BaseRevenue    string               `json:"base_revenue"`
	RoyaltyRate    string               `json:"royalty_rate"`
	Amount         string               `json:"amount"`
	DueDate        time.Time            `json:"due_date"`
	Status         domain.RoyaltyStatus `json:"status"`
	PaidAt         *time.Time           `json:"paid_at,omitempty"`
}

// IncomeStatementResponse is the per-period financial summary
type IncomeStatementResponse struct {
	FranchiseID  uuid.UUID         `json:"franchise_id"`
	PeriodStart  time.Time         `json:"period_start"`
	PeriodEnd    time.Time         `json:"period_end"`
	TotalIncome  string            `json:"total_income"`
	TotalExpense string            `json:"total_expense"`
	NetResult    string            `json:"net_result"`
	ByCategory   map[string]string `json:"by_category"`
}

// ToFranchiseResponse maps a franchise aggregate to its response DTO
func ToFranchiseResponse(f *domain.Franchise) *FranchiseResponse {
	team := make([]TeamMemberResponse, 0, len(f.Team))
	for _, member := range f.Team {
		team = append(team, TeamMemberResponse{
			ID:    member.ID,
			Name:  member.Name,
			Role:  member.Role,
			Email: member.Email,
		})
	}

	return &FranchiseResponse{
		ID:           f.ID,
		Name:         f.Name,
		OwnerName:    f.OwnerName,
		OwnerEmail:   f.OwnerEmail,
		OwnerPhone:   f.OwnerPhone,
		City:         f.City,
		Status:       f.Status,
		SourceLeadID: f.SourceLeadID,
		Team:         team,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// ToTransactionResponse maps a transaction to its response DTO
func ToTransactionResponse(tx *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          tx.ID,
		FranchiseID: tx.FranchiseID,
		Type:        tx.Type,
		Category:    tx.Category,
		Description: tx.Description,
		Amount:      tx.Amount.StringFixed(2),
		OccurredAt:  tx.OccurredAt,
	}
}

// ToRoyaltyInvoiceResponse maps an invoice to its response DTO
func ToRoyaltyInvoiceResponse(invoice *domain.RoyaltyInvoice) *RoyaltyInvoiceResponse {
	return &RoyaltyInvoiceResponse{
		ID:             invoice.ID,
		FranchiseID:    invoice.FranchiseID,
		ReferenceMonth: invoice.ReferenceMonth.Format("2006-01"),
		BaseRevenue:    invoice.BaseRevenue.StringFixed(2),
		RoyaltyRate:    invoice.RoyaltyRate.StringFixed(2),
		Amount:         invoice.Amount.StringFixed(2),
		DueDate:        invoice.DueDate,
		Status:         invoice.Status,
		PaidAt:         invoice.PaidAt,
	}
}

// ToIncomeStatementResponse maps a statement projection to its response DTO
func ToIncomeStatementResponse(stmt *domain.IncomeStatement) *IncomeStatementResponse {
	byCategory := make(map[string]string, len(stmt.ByCategory))
	for category, amount := range stmt.ByCategory {
		byCategory[category] = amount.StringFixed(2)
	}

	return &IncomeStatementResponse{
		FranchiseID:  stmt.FranchiseID,
		PeriodStart:  stmt.PeriodStart,
		PeriodEnd:    stmt.PeriodEnd,
		TotalIncome:  stmt.TotalIncome.StringFixed(2),
		TotalExpense: stmt.TotalExpense.StringFixed(2),
		NetResult:    stmt.NetResult.StringFixed(2),
		ByCategory:   byCategory,
	}
}
