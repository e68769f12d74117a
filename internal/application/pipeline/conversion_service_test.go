package pipeline

import (
	"context"
	"testing"

	franchisedomain "github.com/franq/backend/internal/domain/franchise"
	domain "github.com/franq/backend/internal/domain/pipeline"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConversionServiceConvert(t *testing.T) {
	ctx := context.Background()

	t.Run("converts a closed-deal lead into exactly one franchise", func(t *testing.T) {
		lead := storedLead(t)
		require.NoError(t, lead.MoveTo(domain.StageDealClosed, domain.DefaultTransitionPolicy()))
		lead.ClearDomainEvents()

		leads := new(MockLeadRepository)
		franchises := new(MockFranchiseRepository)
		leads.On("FindByID", ctx, lead.ID).Return(lead, nil)
		leads.On("Save", ctx, lead).Return(nil)

		var created *franchisedomain.Franchise
		franchises.On("Save", ctx, mock.AnythingOfType("*franchise.Franchise")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*franchisedomain.Franchise)
			}).Return(nil)

		svc := NewConversionService(leads, franchises, nil, nil)
		resp, err := svc.Convert(ctx, lead.ID)

		require.NoError(t, err)
		assert.Equal(t, "Maria Silva", resp.OwnerName)
		assert.Equal(t, lead.ID, resp.SourceLeadID)
		assert.Equal(t, franchisedomain.StatusActive, resp.Status)

		require.NotNil(t, created)
		assert.Empty(t, created.Team)
		require.NotNil(t, lead.ConvertedFranchiseID)
		assert.Equal(t, created.ID, *lead.ConvertedFranchiseID)
		// conversion is additive: the lead keeps its stage
		assert.Equal(t, domain.StageDealClosed, lead.Status)
		franchises.AssertNumberOfCalls(t, "Save", 1)
	})

	t.Run("fails with invalid state outside deal closed", func(t *testing.T) {
		lead := storedLead(t)

		leads := new(MockLeadRepository)
		franchises := new(MockFranchiseRepository)
		leads.On("FindByID", ctx, lead.ID).Return(lead, nil)

		svc := NewConversionService(leads, franchises, nil, nil)
		_, err := svc.Convert(ctx, lead.ID)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		franchises.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		assert.Nil(t, lead.ConvertedFranchiseID)
	})

	t.Run("fails with not found for unknown lead", func(t *testing.T) {
		leads := new(MockLeadRepository)
		franchises := new(MockFranchiseRepository)
		missing := uuid.New()
		leads.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)

		svc := NewConversionService(leads, franchises, nil, nil)
		_, err := svc.Convert(ctx, missing)

		require.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("repeat conversion creates a second distinct franchise", func(t *testing.T) {
		lead := storedLead(t)
		require.NoError(t, lead.MoveTo(domain.StageDealClosed, domain.DefaultTransitionPolicy()))
		lead.ClearDomainEvents()

		leads := new(MockLeadRepository)
		franchises := new(MockFranchiseRepository)
		leads.On("FindByID", ctx, lead.ID).Return(lead, nil)
		leads.On("Save", ctx, lead).Return(nil)
		franchises.On("Save", ctx, mock.AnythingOfType("*franchise.Franchise")).Return(nil)

		svc := NewConversionService(leads, franchises, nil, nil)
		first, err := svc.Convert(ctx, lead.ID)
		require.NoError(t, err)
		second, err := svc.Convert(ctx, lead.ID)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		// backlink points at the latest franchise
		require.NotNil(t, lead.ConvertedFranchiseID)
		assert.Equal(t, second.ID, *lead.ConvertedFranchiseID)
		franchises.AssertNumberOfCalls(t, "Save", 2)
	})
}

// Full funnel walk: intake to conversion.
func TestLeadPipelineEndToEnd(t *testing.T) {
	ctx := context.Background()

	lead := storedLead(t)
	leads := new(MockLeadRepository)
	franchises := new(MockFranchiseRepository)
	leads.On("ExistsByEmail", ctx, mock.Anything).Return(false, nil)
	leads.On("FindByID", ctx, mock.AnythingOfType("uuid.UUID")).Return(lead, nil)
	leads.On("Save", ctx, mock.AnythingOfType("*pipeline.Lead")).Return(nil)
	franchises.On("Save", ctx, mock.AnythingOfType("*franchise.Franchise")).Return(nil)

	leadSvc := NewLeadService(leads, nil, nil, nil)
	convSvc := NewConversionService(leads, franchises, nil, nil)

	// conversion before deal closed is rejected
	_, err := convSvc.Convert(ctx, lead.ID)
	require.Error(t, err)

	_, err = leadSvc.MoveStage(ctx, lead.ID, domain.StageDealClosed)
	require.NoError(t, err)

	var resp *LeadResponse
	for _, doc := range lead.Documents {
		resp, err = leadSvc.SetDocumentStatus(ctx, lead.ID, doc.ID, domain.DocumentStatusVerified)
		require.NoError(t, err)
	}
	assert.InDelta(t, 100.0, resp.ChecklistCompletion, 0.001)

	converted, err := convSvc.Convert(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", converted.OwnerName)
	assert.Equal(t, "Recife", converted.City)
}
