package handler

import (
	"context"
	"time"

	marketingapp "github.com/franq/backend/internal/application/marketing"
	"github.com/franq/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CampaignHandler handles marketing campaign endpoints
type CampaignHandler struct {
	BaseHandler
	campaignService *marketingapp.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaignService *marketingapp.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

// CreateCampaignRequest is the request body for campaign creation
type CreateCampaignRequest struct {
	Name     string    `json:"name" binding:"required,min=1,max=200"`
	Channel  string    `json:"channel" binding:"required,min=1,max=100"`
	Budget   float64   `json:"budget" binding:"required,gt=0"`
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at" binding:"required"`
}

// Create registers a new network-wide campaign
func (h *CampaignHandler) Create(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	campaign, err := h.campaignService.CreateCampaign(c.Request.Context(), marketingapp.CreateCampaignInput{
		Name:     req.Name,
		Channel:  req.Channel,
		Budget:   toDecimal(req.Budget),
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, campaign)
}

// GetByID returns a single campaign
func (h *CampaignHandler) GetByID(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid campaign ID format")
		return
	}

	campaign, err := h.campaignService.GetCampaign(c.Request.Context(), campaignID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, campaign)
}

// List returns campaigns matching the filter
func (h *CampaignHandler) List(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	filter := toSharedFilter(req)
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if channel := c.Query("channel"); channel != "" {
		filter.Filters["channel"] = channel
	}

	campaigns, total, err := h.campaignService.ListCampaigns(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, campaigns, total, filter.Page, filter.PageSize)
}

// Activate starts a draft campaign
func (h *CampaignHandler) Activate(c *gin.Context) {
	h.transition(c, h.campaignService.Activate)
}

// Finish completes an active campaign
func (h *CampaignHandler) Finish(c *gin.Context) {
	h.transition(c, h.campaignService.Finish)
}

// Cancel cancels a campaign that has not finished
func (h *CampaignHandler) Cancel(c *gin.Context) {
	h.transition(c, h.campaignService.Cancel)
}

func (h *CampaignHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*marketingapp.CampaignResponse, error)) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid campaign ID format")
		return
	}

	campaign, err := fn(c.Request.Context(), campaignID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, campaign)
}
