package pipeline

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLead(t *testing.T) *Lead {
	t.Helper()
	lead, err := NewLead("Maria Silva", "maria.silva@example.com", "+55 81 99999-0001", "Recife", decimal.NewFromInt(50000))
	require.NoError(t, err)
	return lead
}

func TestNewLead(t *testing.T) {
	t.Run("creates lead at first stage with seeded checklist", func(t *testing.T) {
		lead := newTestLead(t)

		assert.Equal(t, "Maria Silva", lead.Name)
		assert.Equal(t, StageInitialInterest, lead.Status)
		assert.Len(t, lead.Documents, len(RequiredDocuments()))
		for i, doc := range lead.Documents {
			assert.Equal(t, RequiredDocuments()[i], doc.Name)
			assert.Equal(t, DocumentStatusPending, doc.Status)
		}
		assert.Empty(t, lead.Notes)
		assert.Nil(t, lead.ConvertedFranchiseID)

		events := lead.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeLeadCreated, events[0].EventType())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewLead("  ", "maria@example.com", "", "Recife", decimal.NewFromInt(50000))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		_, err := NewLead("Maria Silva", "not-an-email", "", "Recife", decimal.NewFromInt(50000))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("fails with non-positive capital", func(t *testing.T) {
		_, err := NewLead("Maria Silva", "maria@example.com", "", "Recife", decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "capital")

		_, err = NewLead("Maria Silva", "maria@example.com", "", "Recife", decimal.NewFromInt(-1))
		require.Error(t, err)
	})
}

func TestLeadMoveTo(t *testing.T) {
	policy := DefaultTransitionPolicy()

	t.Run("accepts every stage pair under the default policy", func(t *testing.T) {
		for _, from := range AllStages() {
			for _, to := range AllStages() {
				lead := newTestLead(t)
				lead.Status = from

				err := lead.MoveTo(to, policy)
				require.NoError(t, err, "move %s -> %s", from, to)
				assert.Equal(t, to, lead.Status)
			}
		}
	})

	t.Run("rejects unknown stage", func(t *testing.T) {
		lead := newTestLead(t)
		err := lead.MoveTo(Stage("archived"), policy)
		require.Error(t, err)
		assert.Equal(t, StageInitialInterest, lead.Status)
	})

	t.Run("respects a restricted policy", func(t *testing.T) {
		restricted := DefaultTransitionPolicy()
		restricted.Forbid(StageDealClosed, StageOpportunityLost)

		lead := newTestLead(t)
		lead.Status = StageDealClosed

		err := lead.MoveTo(StageOpportunityLost, restricted)
		require.Error(t, err)
		assert.Equal(t, StageDealClosed, lead.Status)
	})

	t.Run("does not cascade to documents or notes", func(t *testing.T) {
		lead := newTestLead(t)
		_, err := lead.AddNote("ana", "first contact done")
		require.NoError(t, err)

		require.NoError(t, lead.MoveTo(StageInAnalysis, policy))

		assert.Len(t, lead.Notes, 1)
		for _, doc := range lead.Documents {
			assert.Equal(t, DocumentStatusPending, doc.Status)
		}
	})
}

func TestLeadChecklist(t *testing.T) {
	t.Run("completion is zero for empty checklist", func(t *testing.T) {
		lead := &Lead{}
		assert.Zero(t, lead.ChecklistCompletion())
	})

	t.Run("completion counts only verified documents", func(t *testing.T) {
		lead := newTestLead(t)
		total := len(lead.Documents)

		assert.Zero(t, lead.ChecklistCompletion())

		require.NoError(t, lead.SetDocumentStatus(lead.Documents[0].ID, DocumentStatusVerified))
		assert.InDelta(t, 100.0/float64(total), lead.ChecklistCompletion(), 0.001)

		// Received and invalid do not count toward completion
		require.NoError(t, lead.SetDocumentStatus(lead.Documents[1].ID, DocumentStatusReceived))
		require.NoError(t, lead.SetDocumentStatus(lead.Documents[2].ID, DocumentStatusInvalid))
		assert.InDelta(t, 100.0/float64(total), lead.ChecklistCompletion(), 0.001)

		for _, doc := range lead.Documents {
			require.NoError(t, lead.SetDocumentStatus(doc.ID, DocumentStatusVerified))
		}
		assert.InDelta(t, 100.0, lead.ChecklistCompletion(), 0.001)
	})

	t.Run("any status is settable from any other", func(t *testing.T) {
		lead := newTestLead(t)
		docID := lead.Documents[0].ID

		statuses := []DocumentStatus{
			DocumentStatusVerified,
			DocumentStatusPending,
			DocumentStatusInvalid,
			DocumentStatusReceived,
		}
		for _, status := range statuses {
			require.NoError(t, lead.SetDocumentStatus(docID, status))
			doc, err := lead.FindDocument(docID)
			require.NoError(t, err)
			assert.Equal(t, status, doc.Status)
		}
	})

	t.Run("fails with unknown document id", func(t *testing.T) {
		lead := newTestLead(t)
		err := lead.SetDocumentStatus(uuid.New(), DocumentStatusVerified)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("fails with unknown status", func(t *testing.T) {
		lead := newTestLead(t)
		err := lead.SetDocumentStatus(lead.Documents[0].ID, DocumentStatus("lost"))
		require.Error(t, err)
	})
}

func TestLeadAddNote(t *testing.T) {
	t.Run("appends note with author and timestamp", func(t *testing.T) {
		lead := newTestLead(t)
		before := time.Now()

		note, err := lead.AddNote("carlos", "  candidate asked about fees  ")
		require.NoError(t, err)

		assert.Equal(t, "carlos", note.Author)
		assert.Equal(t, "candidate asked about fees", note.Body)
		assert.False(t, note.CreatedAt.Before(before))
		require.Len(t, lead.Notes, 1)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		lead := newTestLead(t)
		_, err := lead.AddNote("ana", "first")
		require.NoError(t, err)
		_, err = lead.AddNote("ana", "second")
		require.NoError(t, err)

		require.Len(t, lead.Notes, 2)
		assert.Equal(t, "first", lead.Notes[0].Body)
		assert.Equal(t, "second", lead.Notes[1].Body)
	})

	t.Run("rejects blank text", func(t *testing.T) {
		lead := newTestLead(t)

		_, err := lead.AddNote("ana", "")
		require.Error(t, err)
		_, err = lead.AddNote("ana", "   \t\n ")
		require.Error(t, err)

		assert.Empty(t, lead.Notes)
	})
}

func TestLeadConversionMarkers(t *testing.T) {
	t.Run("only deal closed leads are convertible", func(t *testing.T) {
		policy := DefaultTransitionPolicy()
		lead := newTestLead(t)
		assert.False(t, lead.CanConvert())

		require.NoError(t, lead.MoveTo(StageDealClosed, policy))
		assert.True(t, lead.CanConvert())
	})

	t.Run("records the latest franchise backlink", func(t *testing.T) {
		lead := newTestLead(t)
		first := uuid.New()
		second := uuid.New()

		lead.RecordConversion(first)
		require.NotNil(t, lead.ConvertedFranchiseID)
		assert.Equal(t, first, *lead.ConvertedFranchiseID)

		lead.RecordConversion(second)
		assert.Equal(t, second, *lead.ConvertedFranchiseID)
	})
}
