package handler

import (
	pipelineapp "github.com/franq/backend/internal/application/pipeline"
	pipelinedomain "github.com/franq/backend/internal/domain/pipeline"
	"github.com/franq/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeadHandler handles franchisee lead pipeline endpoints
type LeadHandler struct {
	BaseHandler
	leadService       *pipelineapp.LeadService
	conversionService *pipelineapp.ConversionService
	analysisService   *pipelineapp.AnalysisService
}

// NewLeadHandler creates a new LeadHandler
func NewLeadHandler(leadService *pipelineapp.LeadService, conversionService *pipelineapp.ConversionService, analysisService *pipelineapp.AnalysisService) *LeadHandler {
	return &LeadHandler{
		leadService:       leadService,
		conversionService: conversionService,
		analysisService:   analysisService,
	}
}

// CreateLeadRequest is the request body for lead intake
type CreateLeadRequest struct {
	Name              string  `json:"name" binding:"required,min=1,max=200"`
	Email             string  `json:"email" binding:"required,email,max=200"`
	Phone             string  `json:"phone" binding:"max=50"`
	City              string  `json:"city" binding:"max=100"`
	InvestmentCapital float64 `json:"investment_capital" binding:"required,gt=0"`
}

// MoveStageRequest is the request body for a stage move
type MoveStageRequest struct {
	Target string `json:"target" binding:"required"`
}

// SetDocumentStatusRequest is the request body for a checklist update
type SetDocumentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending received verified invalid"`
}

// AddNoteRequest is the request body for appending a note
type AddNoteRequest struct {
	Author string `json:"author" binding:"max=100"`
	Body   string `json:"body" binding:"required"`
}

// Create registers a new candidate at the first funnel stage
func (h *LeadHandler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), pipelineapp.CreateLeadInput{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		City:              req.City,
		InvestmentCapital: toDecimal(req.InvestmentCapital),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, lead)
}

// List returns leads matching the filter
func (h *LeadHandler) List(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	filter := toSharedFilter(req)
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if city := c.Query("city"); city != "" {
		filter.Filters["city"] = city
	}

	leads, total, err := h.leadService.ListLeads(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, leads, total, filter.Page, filter.PageSize)
}

// GetByID returns a single lead with its checklist
func (h *LeadHandler) GetByID(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lead ID format")
		return
	}

	lead, err := h.leadService.GetLead(c.Request.Context(), leadID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, lead)
}

// Board returns the stage-partitioned pipeline view
func (h *LeadHandler) Board(c *gin.Context) {
	board, err := h.leadService.Board(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, board)
}

// MoveStage moves a lead to the target funnel stage
func (h *LeadHandler) MoveStage(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lead ID format")
		return
	}

	var req MoveStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	lead, err := h.leadService.MoveStage(c.Request.Context(), leadID, pipelinedomain.Stage(req.Target))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, lead)
}

// SetDocumentStatus overwrites a checklist document status
func (h *LeadHandler) SetDocumentStatus(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lead ID format")
		return
	}
	documentID, err := uuid.Parse(c.Param("document_id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	var req SetDocumentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	lead, err := h.leadService.SetDocumentStatus(c.Request.Context(), leadID, documentID, pipelinedomain.DocumentStatus(req.Status))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, lead)
}

// AddNote appends an internal note to a lead
func (h *LeadHandler) AddNote(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lead ID format")
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	note, err := h.leadService.AddNote(c.Request.Context(), leadID, req.Author, req.Body)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, note)
}

// ListNotes returns a lead's notes, oldest first
func (h *LeadHandler) ListNotes(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lead ID format")
		return
	}

	notes, err := h.leadService.ListNotes(c.Request.Context(), leadID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, notes)
}

// Convert creates a franchise from a closed-deal lead
func (h *LeadHandler) Convert(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lead ID format")
		return
	}

	franchise, err := h.conversionService.Convert(c.Request.Context(), leadID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, franchise)
}

// RequestAnalysis starts a candidate analysis and returns immediately
func (h *LeadHandler) RequestAnalysis(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lead ID format")
		return
	}

	if err := h.analysisService.Request(c.Request.Context(), leadID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Accepted(c, gin.H{"lead_id": leadID, "status": "requested"})
}

// LatestAnalysis returns the most recent completed analysis for a lead
func (h *LeadHandler) LatestAnalysis(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lead ID format")
		return
	}

	result, err := h.analysisService.Latest(c.Request.Context(), leadID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
