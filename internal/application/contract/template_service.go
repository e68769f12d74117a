package contract

import (
	"context"
	"time"

	domain "github.com/franq/backend/internal/domain/contract"
	"github.com/franq/backend/internal/domain/pipeline"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TemplateService manages contract templates and renders them for
// pipeline candidates
type TemplateService struct {
	templates domain.TemplateRepository
	leads     pipeline.LeadRepository
	logger    *zap.Logger
}

// NewTemplateService creates a new template service
func NewTemplateService(templates domain.TemplateRepository, leads pipeline.LeadRepository, logger *zap.Logger) *TemplateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TemplateService{
		templates: templates,
		leads:     leads,
		logger:    logger,
	}
}

// CreateTemplate registers an active template at version 1
func (s *TemplateService) CreateTemplate(ctx context.Context, title, body string) (*TemplateResponse, error) {
	tmpl, err := domain.NewTemplate(title, body)
	if err != nil {
		return nil, err
	}

	if err := s.templates.Save(ctx, tmpl); err != nil {
		return nil, err
	}

	s.logger.Info("contract template created",
		zap.String("template_id", tmpl.ID.String()),
		zap.String("title", tmpl.Title),
	)
	return ToTemplateResponse(tmpl), nil
}

// GetTemplate returns a single template
func (s *TemplateService) GetTemplate(ctx context.Context, id uuid.UUID) (*TemplateResponse, error) {
	tmpl, err := s.templates.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToTemplateResponse(tmpl), nil
}

// ListTemplates returns templates matching the filter plus the total count
func (s *TemplateService) ListTemplates(ctx context.Context, filter shared.Filter) ([]TemplateResponse, int64, error) {
	templates, err := s.templates.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.templates.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TemplateResponse, 0, len(templates))
	for _, tmpl := range templates {
		responses = append(responses, *ToTemplateResponse(tmpl))
	}
	return responses, total, nil
}

// UpdateBody replaces the template text and bumps the version
func (s *TemplateService) UpdateBody(ctx context.Context, id uuid.UUID, body string) (*TemplateResponse, error) {
	tmpl, err := s.templates.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tmpl.UpdateBody(body); err != nil {
		return nil, err
	}
	if err := s.templates.Save(ctx, tmpl); err != nil {
		return nil, err
	}
	return ToTemplateResponse(tmpl), nil
}

// Deactivate retires a template from selection
func (s *TemplateService) Deactivate(ctx context.Context, id uuid.UUID) (*TemplateResponse, error) {
	tmpl, err := s.templates.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tmpl.Deactivate()
	if err := s.templates.Save(ctx, tmpl); err != nil {
		return nil, err
	}
	return ToTemplateResponse(tmpl), nil
}

// RenderForLead fills a template's placeholders with a candidate's
// fields. Inactive templates refuse to render.
func (s *TemplateService) RenderForLead(ctx context.Context, templateID, leadID uuid.UUID) (*RenderedContractResponse, error) {
	tmpl, err := s.templates.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if !tmpl.Active {
		return nil, shared.NewDomainError("INVALID_STATE", "template is inactive")
	}

	lead, err := s.leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	return &RenderedContractResponse{
		TemplateID: tmpl.ID,
		LeadID:     lead.ID,
		Title:      tmpl.Title,
		Content:    tmpl.Render(lead),
		RenderedAt: time.Now(),
	}, nil
}
