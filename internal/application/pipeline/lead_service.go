package pipeline

import (
	"context"

	domain "github.com/franq/backend/internal/domain/pipeline"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateLeadInput carries the candidate fields for lead intake
type CreateLeadInput struct {
	Name              string
	Email             string
	Phone             string
	City              string
	InvestmentCapital decimal.Decimal
}

// LeadService orchestrates lead pipeline commands and queries
type LeadService struct {
	leads  domain.LeadRepository
	policy *domain.TransitionPolicy
	events shared.EventPublisher
	logger *zap.Logger
}

// NewLeadService creates a new lead service
func NewLeadService(leads domain.LeadRepository, policy *domain.TransitionPolicy, events shared.EventPublisher, logger *zap.Logger) *LeadService {
	if policy == nil {
		policy = domain.DefaultTransitionPolicy()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadService{
		leads:  leads,
		policy: policy,
		events: events,
		logger: logger,
	}
}

// CreateLead registers a new candidate at the first funnel stage
func (s *LeadService) CreateLead(ctx context.Context, input CreateLeadInput) (*LeadResponse, error) {
	exists, err := s.leads.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "a lead with this email already exists")
	}

	lead, err := domain.NewLead(input.Name, input.Email, input.Phone, input.City, input.InvestmentCapital)
	if err != nil {
		return nil, err
	}

	if err := s.leads.Save(ctx, lead); err != nil {
		return nil, err
	}
	s.publish(ctx, lead)

	s.logger.Info("lead created",
		zap.String("lead_id", lead.ID.String()),
		zap.String("city", lead.City),
	)
	return ToLeadResponse(lead), nil
}

// GetLead returns a single lead with its checklist
func (s *LeadService) GetLead(ctx context.Context, id uuid.UUID) (*LeadResponse, error) {
	lead, err := s.leads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToLeadResponse(lead), nil
}

// ListLeads returns leads matching the filter plus the total count
func (s *LeadService) ListLeads(ctx context.Context, filter shared.Filter) ([]LeadResponse, int64, error) {
	leads, err := s.leads.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.leads.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]LeadResponse, 0, len(leads))
	for _, lead := range leads {
		responses = append(responses, *ToLeadResponse(lead))
	}
	return responses, total, nil
}

// MoveStage moves a lead to the target funnel stage. Any input surface
// that issues a move command ends up here; the board's drag-and-drop is
// just one of them.
func (s *LeadService) MoveStage(ctx context.Context, leadID uuid.UUID, target domain.Stage) (*LeadResponse, error) {
	lead, err := s.leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if err := lead.MoveTo(target, s.policy); err != nil {
		return nil, err
	}
	if err := s.leads.Save(ctx, lead); err != nil {
		return nil, err
	}
	s.publish(ctx, lead)

	return ToLeadResponse(lead), nil
}

// SetDocumentStatus overwrites a checklist document status
func (s *LeadService) SetDocumentStatus(ctx context.Context, leadID, documentID uuid.UUID, status domain.DocumentStatus) (*LeadResponse, error) {
	lead, err := s.leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if err := lead.SetDocumentStatus(documentID, status); err != nil {
		return nil, err
	}
	if err := s.leads.Save(ctx, lead); err != nil {
		return nil, err
	}
	s.publish(ctx, lead)

	return ToLeadResponse(lead), nil
}

// AddNote appends an internal note to a lead
func (s *LeadService) AddNote(ctx context.Context, leadID uuid.UUID, author, text string) (*NoteResponse, error) {
	lead, err := s.leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	note, err := lead.AddNote(author, text)
	if err != nil {
		return nil, err
	}
	if err := s.leads.Save(ctx, lead); err != nil {
		return nil, err
	}
	s.publish(ctx, lead)

	return ToNoteResponse(note), nil
}

// ListNotes returns a lead's notes in insertion order, oldest first.
// Newest-first rendering is a view concern.
func (s *LeadService) ListNotes(ctx context.Context, leadID uuid.UUID) ([]NoteResponse, error) {
	lead, err := s.leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	notes := make([]NoteResponse, 0, len(lead.Notes))
	for i := range lead.Notes {
		notes = append(notes, *ToNoteResponse(&lead.Notes[i]))
	}
	return notes, nil
}

// Board recomputes the stage-partitioned pipeline view from the
// authoritative lead collection
func (s *LeadService) Board(ctx context.Context) (*BoardResponse, error) {
	filter := shared.DefaultFilter()
	filter.Page = 1
	filter.PageSize = 0 // no pagination for the board projection
	filter.OrderBy = "created_at"
	filter.OrderDir = "asc"

	leads, err := s.leads.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToBoardResponse(domain.GroupByStage(leads)), nil
}

func (s *LeadService) publish(ctx context.Context, lead *domain.Lead) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, lead.GetDomainEvents()...); err != nil {
		s.logger.Warn("failed to publish lead events", zap.Error(err))
	}
	lead.ClearDomainEvents()
}
