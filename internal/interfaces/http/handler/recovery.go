package handler

import (
	recoveryapp "github.com/franq/backend/internal/application/recovery"
	recoverydomain "github.com/franq/backend/internal/domain/recovery"
	"github.com/franq/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RecoveryHandler handles credit recovery case endpoints
type RecoveryHandler struct {
	BaseHandler
	caseService *recoveryapp.CaseService
}

// NewRecoveryHandler creates a new RecoveryHandler
func NewRecoveryHandler(caseService *recoveryapp.CaseService) *RecoveryHandler {
	return &RecoveryHandler{caseService: caseService}
}

// OpenCaseRequest is the request body for opening a recovery case
type OpenCaseRequest struct {
	FranchiseID       string  `json:"franchise_id" binding:"required,uuid"`
	DebtorName        string  `json:"debtor_name" binding:"required,min=1,max=200"`
	OutstandingAmount float64 `json:"outstanding_amount" binding:"required,gt=0"`
}

// MoveCaseRequest is the request body for a case status change
type MoveCaseRequest struct {
	Status string `json:"status" binding:"required,oneof=open negotiating settled written_off"`
}

// SettleCaseRequest is the request body for settling a case
type SettleCaseRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// OpenCase opens a recovery case against a franchise debtor
func (h *RecoveryHandler) OpenCase(c *gin.Context) {
	var req OpenCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	franchiseID, err := uuid.Parse(req.FranchiseID)
	if err != nil {
		h.BadRequest(c, "Invalid franchise ID format")
		return
	}

	recoveryCase, err := h.caseService.OpenCase(c.Request.Context(), recoveryapp.OpenCaseInput{
		FranchiseID:       franchiseID,
		DebtorName:        req.DebtorName,
		OutstandingAmount: toDecimal(req.OutstandingAmount),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, recoveryCase)
}

// GetCase returns a single recovery case
func (h *RecoveryHandler) GetCase(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid case ID format")
		return
	}

	recoveryCase, err := h.caseService.GetCase(c.Request.Context(), caseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, recoveryCase)
}

// ListCases returns recovery cases matching the filter
func (h *RecoveryHandler) ListCases(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	filter := toSharedFilter(req)
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if franchiseID := c.Query("franchise_id"); franchiseID != "" {
		filter.Filters["franchise_id"] = franchiseID
	}

	cases, total, err := h.caseService.ListCases(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, cases, total, filter.Page, filter.PageSize)
}

// MoveCase moves a case to another collection status
func (h *RecoveryHandler) MoveCase(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid case ID format")
		return
	}

	var req MoveCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	recoveryCase, err := h.caseService.MoveCase(c.Request.Context(), caseID, recoverydomain.CaseStatus(req.Status))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, recoveryCase)
}

// SettleCase settles a case recording the recovered amount
func (h *RecoveryHandler) SettleCase(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid case ID format")
		return
	}

	var req SettleCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	recoveryCase, err := h.caseService.SettleCase(c.Request.Context(), caseID, toDecimal(req.Amount))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, recoveryCase)
}

// AddNote appends a collection note to a case
func (h *RecoveryHandler) AddNote(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid case ID format")
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	note, err := h.caseService.AddNote(c.Request.Context(), caseID, req.Author, req.Body)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, note)
}

// ListNotes returns a case's notes, oldest first
func (h *RecoveryHandler) ListNotes(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid case ID format")
		return
	}

	notes, err := h.caseService.ListNotes(c.Request.Context(), caseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, notes)
}
