package franchise

import (
	"context"

	domain "github.com/franq/backend/internal/domain/franchise"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FranchiseService manages live franchise units after conversion
type FranchiseService struct {
	franchises domain.FranchiseRepository
	events     shared.EventPublisher
	logger     *zap.Logger
}

// NewFranchiseService creates a new franchise service
func NewFranchiseService(franchises domain.FranchiseRepository, events shared.EventPublisher, logger *zap.Logger) *FranchiseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FranchiseService{
		franchises: franchises,
		events:     events,
		logger:     logger,
	}
}

// GetFranchise returns a single franchise unit with its team
func (s *FranchiseService) GetFranchise(ctx context.Context, id uuid.UUID) (*FranchiseResponse, error) {
	f, err := s.franchises.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToFranchiseResponse(f), nil
}

// ListFranchises returns franchises matching the filter plus the total count
func (s *FranchiseService) ListFranchises(ctx context.Context, filter shared.Filter) ([]FranchiseResponse, int64, error) {
	franchises, err := s.franchises.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.franchises.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]FranchiseResponse, 0, len(franchises))
	for _, f := range franchises {
		responses = append(responses, *ToFranchiseResponse(f))
	}
	return responses, total, nil
}

// UpdateStatus changes the operational status of a unit
func (s *FranchiseService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (*FranchiseResponse, error) {
	f, err := s.franchises.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := f.SetStatus(status); err != nil {
		return nil, err
	}
	if err := s.franchises.Save(ctx, f); err != nil {
		return nil, err
	}
	s.publish(ctx, f)

	s.logger.Info("franchise status updated",
		zap.String("franchise_id", f.ID.String()),
		zap.String("status", string(status)),
	)
	return ToFranchiseResponse(f), nil
}

// AddTeamMember registers a new member of the unit's team
func (s *FranchiseService) AddTeamMember(ctx context.Context, franchiseID uuid.UUID, name, role, email string) (*TeamMemberResponse, error) {
	f, err := s.franchises.FindByID(ctx, franchiseID)
	if err != nil {
		return nil, err
	}

	member, err := f.AddTeamMember(name, role, email)
	if err != nil {
		return nil, err
	}
	if err := s.franchises.Save(ctx, f); err != nil {
		return nil, err
	}
	s.publish(ctx, f)

	return &TeamMemberResponse{
		ID:    member.ID,
		Name:  member.Name,
		Role:  member.Role,
		Email: member.Email,
	}, nil
}

func (s *FranchiseService) publish(ctx context.Context, f *domain.Franchise) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, f.GetDomainEvents()...); err != nil {
		s.logger.Warn("failed to publish franchise events", zap.Error(err))
	}
	f.ClearDomainEvents()
}
