package handler

import (
	"time"

	franchiseapp "github.com/franq/backend/internal/application/franchise"
	franchisedomain "github.com/franq/backend/internal/domain/franchise"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FinanceHandler handles franchise transaction and income statement endpoints
type FinanceHandler struct {
	BaseHandler
	financeService *franchiseapp.FinanceService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(financeService *franchiseapp.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// RecordTransactionRequest is the request body for a ledger entry
type RecordTransactionRequest struct {
	Type        string    `json:"type" binding:"required,oneof=income expense"`
	Category    string    `json:"category" binding:"required,min=1,max=100"`
	Description string    `json:"description" binding:"max=500"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	OccurredAt  time.Time `json:"occurred_at" binding:"required"`
}

// RecordTransaction appends a transaction to a franchise ledger
func (h *FinanceHandler) RecordTransaction(c *gin.Context) {
	franchiseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid franchise ID format")
		return
	}

	var req RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	tx, err := h.financeService.RecordTransaction(c.Request.Context(), franchiseapp.RecordTransactionInput{
		FranchiseID: franchiseID,
		Type:        franchisedomain.TransactionType(req.Type),
		Category:    req.Category,
		Description: req.Description,
		Amount:      toDecimal(req.Amount),
		OccurredAt:  req.OccurredAt,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, tx)
}

// ListTransactions returns a franchise's transactions inside a period
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	franchiseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid franchise ID format")
		return
	}

	from, to, err := parsePeriod(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	transactions, err := h.financeService.ListTransactions(c.Request.Context(), franchiseID, from, to)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transactions)
}

// IncomeStatement returns the income statement for a franchise over a period
func (h *FinanceHandler) IncomeStatement(c *gin.Context) {
	franchiseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid franchise ID format")
		return
	}

	from, to, err := parsePeriod(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	statement, err := h.financeService.IncomeStatement(c.Request.Context(), franchiseID, from, to)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, statement)
}
