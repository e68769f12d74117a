package handler

import (
	contractapp "github.com/franq/backend/internal/application/contract"
	"github.com/franq/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContractHandler handles contract template endpoints
type ContractHandler struct {
	BaseHandler
	templateService *contractapp.TemplateService
}

// NewContractHandler creates a new ContractHandler
func NewContractHandler(templateService *contractapp.TemplateService) *ContractHandler {
	return &ContractHandler{templateService: templateService}
}

// CreateTemplateRequest is the request body for template creation
type CreateTemplateRequest struct {
	Title string `json:"title" binding:"required,min=1,max=200"`
	Body  string `json:"body" binding:"required"`
}

// UpdateTemplateBodyRequest is the request body for a body revision
type UpdateTemplateBodyRequest struct {
	Body string `json:"body" binding:"required"`
}

// RenderContractRequest is the request body for rendering a template
// against a lead's data
type RenderContractRequest struct {
	LeadID string `json:"lead_id" binding:"required,uuid"`
}

// Create registers a new contract template
func (h *ContractHandler) Create(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), req.Title, req.Body)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, template)
}

// GetByID returns a single template
func (h *ContractHandler) GetByID(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid template ID format")
		return
	}

	template, err := h.templateService.GetTemplate(c.Request.Context(), templateID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, template)
}

// List returns templates matching the filter
func (h *ContractHandler) List(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	filter := toSharedFilter(req)
	if active := c.Query("active"); active != "" {
		filter.Filters["active"] = active
	}

	templates, total, err := h.templateService.ListTemplates(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, templates, total, filter.Page, filter.PageSize)
}

// UpdateBody revises the body of a template
func (h *ContractHandler) UpdateBody(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid template ID format")
		return
	}

	var req UpdateTemplateBodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	template, err := h.templateService.UpdateBody(c.Request.Context(), templateID, req.Body)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, template)
}

// Deactivate retires a template from use
func (h *ContractHandler) Deactivate(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid template ID format")
		return
	}

	template, err := h.templateService.Deactivate(c.Request.Context(), templateID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, template)
}

// RenderForLead fills a template's placeholders with a lead's data
func (h *ContractHandler) RenderForLead(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid template ID format")
		return
	}

	var req RenderContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	leadID, err := uuid.Parse(req.LeadID)
	if err != nil {
		h.BadRequest(c, "Invalid lead ID format")
		return
	}

	rendered, err := h.templateService.RenderForLead(c.Request.Context(), templateID, leadID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rendered)
}
