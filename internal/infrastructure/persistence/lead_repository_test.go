package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/franq/backend/internal/domain/pipeline"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/franq/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupLeadTestDB creates an in-memory SQLite database for testing
func setupLeadTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.LeadModel{}, &models.LeadDocumentModel{}, &models.LeadNoteModel{})
	require.NoError(t, err)

	return db
}

func newTestLead(t *testing.T, email string) *pipeline.Lead {
	t.Helper()

	lead, err := pipeline.NewLead("Ana Souza", email, "+55 41 99999-0000", "Curitiba", decimal.NewFromInt(250000))
	require.NoError(t, err)
	return lead
}

func TestGormLeadRepository_SaveAndFindByID(t *testing.T) {
	db := setupLeadTestDB(t)
	repo := NewGormLeadRepository(db)
	ctx := context.Background()

	lead := newTestLead(t, "ana@example.com")
	require.NoError(t, repo.Save(ctx, lead))

	found, err := repo.FindByID(ctx, lead.ID)
	require.NoError(t, err)

	assert.Equal(t, lead.ID, found.ID)
	assert.Equal(t, "ana@example.com", found.Email)
	assert.Equal(t, pipeline.StageInitialInterest, found.Status)
	assert.Len(t, found.Documents, len(pipeline.RequiredDocuments()))
	assert.True(t, lead.InvestmentCapital.Equal(found.InvestmentCapital))
}

func TestGormLeadRepository_FindByID_NotFound(t *testing.T) {
	db := setupLeadTestDB(t)
	repo := NewGormLeadRepository(db)

	found, err := repo.FindByID(context.Background(), uuid.New())

	assert.Nil(t, found)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormLeadRepository_SaveIsUpsert(t *testing.T) {
	db := setupLeadTestDB(t)
	repo := NewGormLeadRepository(db)
	ctx := context.Background()

	lead := newTestLead(t, "upsert@example.com")
	require.NoError(t, repo.Save(ctx, lead))

	// Mutate the aggregate and save again
	_, err := lead.AddNote("carlos", "strong candidate")
	require.NoError(t, err)
	require.NoError(t, lead.SetDocumentStatus(lead.Documents[0].ID, pipeline.DocumentStatusVerified))
	require.NoError(t, repo.Save(ctx, lead))

	count, err := repo.Count(ctx, shared.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	found, err := repo.FindByID(ctx, lead.ID)
	require.NoError(t, err)
	require.Len(t, found.Notes, 1)
	assert.Equal(t, "strong candidate", found.Notes[0].Body)
	assert.Equal(t, pipeline.DocumentStatusVerified, found.Documents[0].Status)
}

func TestGormLeadRepository_FindByStage(t *testing.T) {
	db := setupLeadTestDB(t)
	repo := NewGormLeadRepository(db)
	ctx := context.Background()

	first := newTestLead(t, "first@example.com")
	second := newTestLead(t, "second@example.com")
	require.NoError(t, second.MoveTo(pipeline.StageInAnalysis, pipeline.DefaultTransitionPolicy()))

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	inAnalysis, err := repo.FindByStage(ctx, pipeline.StageInAnalysis)
	require.NoError(t, err)
	require.Len(t, inAnalysis, 1)
	assert.Equal(t, second.ID, inAnalysis[0].ID)

	closed, err := repo.FindByStage(ctx, pipeline.StageDealClosed)
	require.NoError(t, err)
	assert.Empty(t, closed)
}

func TestGormLeadRepository_FindAll_StatusFilter(t *testing.T) {
	db := setupLeadTestDB(t)
	repo := NewGormLeadRepository(db)
	ctx := context.Background()

	first := newTestLead(t, "a@example.com")
	second := newTestLead(t, "b@example.com")
	require.NoError(t, second.MoveTo(pipeline.StageDealClosed, pipeline.DefaultTransitionPolicy()))
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	filter := shared.DefaultFilter()
	filter.Filters["status"] = string(pipeline.StageDealClosed)

	leads, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, second.ID, leads[0].ID)

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormLeadRepository_ListReadsKeepNotesOldestFirst(t *testing.T) {
	db := setupLeadTestDB(t)
	repo := NewGormLeadRepository(db)
	ctx := context.Background()

	lead := newTestLead(t, "ordered@example.com")
	_, err := lead.AddNote("carlos", "newest note")
	require.NoError(t, err)
	_, err = lead.AddNote("maria", "oldest note")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, lead))

	// Stamp the rows so the later-inserted note is the older one:
	// physical row order alone must not decide the result.
	base := time.Now().Add(-time.Hour)
	require.NoError(t, db.Model(&models.LeadNoteModel{}).
		Where("lead_id = ? AND body = ?", lead.ID, "oldest note").
		Update("created_at", base).Error)
	require.NoError(t, db.Model(&models.LeadNoteModel{}).
		Where("lead_id = ? AND body = ?", lead.ID, "newest note").
		Update("created_at", base.Add(30*time.Minute)).Error)

	all, err := repo.FindAll(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Len(t, all[0].Notes, 2)
	assert.Equal(t, "oldest note", all[0].Notes[0].Body)
	assert.Equal(t, "newest note", all[0].Notes[1].Body)

	staged, err := repo.FindByStage(ctx, pipeline.StageInitialInterest)
	require.NoError(t, err)
	require.Len(t, staged, 1)
	require.Len(t, staged[0].Notes, 2)
	assert.Equal(t, "oldest note", staged[0].Notes[0].Body)
	assert.Equal(t, "newest note", staged[0].Notes[1].Body)
}

func TestGormLeadRepository_ExistsByEmail(t *testing.T) {
	db := setupLeadTestDB(t)
	repo := NewGormLeadRepository(db)
	ctx := context.Background()

	lead := newTestLead(t, "Exists@Example.com")
	require.NoError(t, repo.Save(ctx, lead))

	exists, err := repo.ExistsByEmail(ctx, "exists@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "missing@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
