package handler

import (
	"context"
	"time"

	franchiseapp "github.com/franq/backend/internal/application/franchise"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoyaltyHandler handles royalty invoice endpoints
type RoyaltyHandler struct {
	BaseHandler
	royaltyService *franchiseapp.RoyaltyService
}

// NewRoyaltyHandler creates a new RoyaltyHandler
func NewRoyaltyHandler(royaltyService *franchiseapp.RoyaltyService) *RoyaltyHandler {
	return &RoyaltyHandler{royaltyService: royaltyService}
}

// GenerateRoyaltyRequest is the request body for invoice generation.
// ReferenceMonth accepts YYYY-MM and DueDate accepts YYYY-MM-DD.
type GenerateRoyaltyRequest struct {
	ReferenceMonth string  `json:"reference_month" binding:"required"`
	BaseRevenue    float64 `json:"base_revenue" binding:"required,gt=0"`
	RoyaltyRate    float64 `json:"royalty_rate" binding:"required,gt=0,lte=1"`
	DueDate        string  `json:"due_date" binding:"required"`
}

// Generate creates the royalty invoice for a franchise and month
func (h *RoyaltyHandler) Generate(c *gin.Context) {
	franchiseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid franchise ID format")
		return
	}

	var req GenerateRoyaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	referenceMonth, err := time.Parse("2006-01", req.ReferenceMonth)
	if err != nil {
		h.BadRequest(c, "Invalid reference_month, expected YYYY-MM")
		return
	}
	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		h.BadRequest(c, "Invalid due_date, expected YYYY-MM-DD")
		return
	}

	invoice, err := h.royaltyService.Generate(c.Request.Context(), franchiseapp.GenerateRoyaltyInput{
		FranchiseID:    franchiseID,
		ReferenceMonth: referenceMonth,
		BaseRevenue:    toDecimal(req.BaseRevenue),
		RoyaltyRate:    toDecimal(req.RoyaltyRate),
		DueDate:        dueDate,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, invoice)
}

// ListByFranchise returns all royalty invoices of a franchise
func (h *RoyaltyHandler) ListByFranchise(c *gin.Context) {
	franchiseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid franchise ID format")
		return
	}

	invoices, err := h.royaltyService.ListByFranchise(c.Request.Context(), franchiseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, invoices)
}

// Pay settles an open or overdue invoice
func (h *RoyaltyHandler) Pay(c *gin.Context) {
	h.transition(c, h.royaltyService.Pay)
}

// Cancel voids an unpaid invoice
func (h *RoyaltyHandler) Cancel(c *gin.Context) {
	h.transition(c, h.royaltyService.Cancel)
}

// MarkOverdue flags an open invoice past its due date
func (h *RoyaltyHandler) MarkOverdue(c *gin.Context) {
	h.transition(c, h.royaltyService.MarkOverdue)
}

func (h *RoyaltyHandler) transition(c *gin.Context, fn func(ctx context.Context, invoiceID uuid.UUID) (*franchiseapp.RoyaltyInvoiceResponse, error)) {
	invoiceID, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	invoice, err := fn(c.Request.Context(), invoiceID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, invoice)
}
