package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByStage(t *testing.T) {
	t.Run("every stage bucket is present even when empty", func(t *testing.T) {
		board := GroupByStage(nil)
		require.Len(t, board, len(AllStages()))
		for _, stage := range AllStages() {
			bucket, ok := board[stage]
			require.True(t, ok, "missing bucket for %s", stage)
			assert.Empty(t, bucket)
		}
	})

	t.Run("partitions leads by stage preserving input order", func(t *testing.T) {
		first, err := NewLead("Ana", "ana@example.com", "", "Olinda", decimal.NewFromInt(30000))
		require.NoError(t, err)
		second, err := NewLead("Bruno", "bruno@example.com", "", "Recife", decimal.NewFromInt(40000))
		require.NoError(t, err)
		third, err := NewLead("Clara", "clara@example.com", "", "Natal", decimal.NewFromInt(80000))
		require.NoError(t, err)

		policy := DefaultTransitionPolicy()
		require.NoError(t, second.MoveTo(StageDealClosed, policy))

		board := GroupByStage([]*Lead{first, second, third})

		require.Len(t, board[StageInitialInterest], 2)
		assert.Equal(t, "Ana", board[StageInitialInterest][0].Name)
		assert.Equal(t, "Clara", board[StageInitialInterest][1].Name)
		require.Len(t, board[StageDealClosed], 1)
		assert.Equal(t, "Bruno", board[StageDealClosed][0].Name)
		assert.Empty(t, board[StageOpportunityLost])
	})
}
