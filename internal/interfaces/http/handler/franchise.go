package handler

import (
	franchiseapp "github.com/franq/backend/internal/application/franchise"
	franchisedomain "github.com/franq/backend/internal/domain/franchise"
	"github.com/franq/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FranchiseHandler handles franchise unit endpoints
type FranchiseHandler struct {
	BaseHandler
	franchiseService *franchiseapp.FranchiseService
}

// NewFranchiseHandler creates a new FranchiseHandler
func NewFranchiseHandler(franchiseService *franchiseapp.FranchiseService) *FranchiseHandler {
	return &FranchiseHandler{franchiseService: franchiseService}
}

// UpdateStatusRequest is the request body for a status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended closed"`
}

// AddTeamMemberRequest is the request body for registering a team member
type AddTeamMemberRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Role  string `json:"role" binding:"max=100"`
	Email string `json:"email" binding:"omitempty,email,max=200"`
}

// GetByID returns a single franchise unit
func (h *FranchiseHandler) GetByID(c *gin.Context) {
	franchiseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid franchise ID format")
		return
	}

	franchise, err := h.franchiseService.GetFranchise(c.Request.Context(), franchiseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, franchise)
}

// List returns franchises matching the filter
func (h *FranchiseHandler) List(c *gin.Context) {
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

	franchises, total, err := h.franchiseService.ListFranchises(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, franchises, total, filter.Page, filter.PageSize)
}

// UpdateStatus changes the operational status of a unit
func (h *FranchiseHandler) UpdateStatus(c *gin.Context) {
	franchiseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid franchise ID format")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	franchise, err := h.franchiseService.UpdateStatus(c.Request.Context(), franchiseID, franchisedomain.Status(req.Status))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, franchise)
}

// AddTeamMember registers a new member of the unit's team
func (h *FranchiseHandler) AddTeamMember(c *gin.Context) {
	franchiseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid franchise ID format")
		return
	}

	var req AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	member, err := h.franchiseService.AddTeamMember(c.Request.Context(), franchiseID, req.Name, req.Role, req.Email)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, member)
}
