package recovery

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCase(t *testing.T) *Case {
	t.Helper()
	c, err := NewCase(uuid.New(), "Franquia Recife LTDA", decimal.NewFromInt(12000))
	require.NoError(t, err)
	return c
}

func TestNewCase(t *testing.T) {
	t.Run("opens at the open status", func(t *testing.T) {
		c := newTestCase(t)
		assert.Equal(t, CaseStatusOpen, c.Status)
		assert.Empty(t, c.Notes)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := NewCase(uuid.New(), "  ", decimal.NewFromInt(100))
		require.Error(t, err)
		_, err = NewCase(uuid.New(), "Debtor", decimal.Zero)
		require.Error(t, err)
	})
}

func TestCaseLifecycle(t *testing.T) {
	t.Run("moves to negotiating and settles", func(t *testing.T) {
		c := newTestCase(t)
		require.NoError(t, c.MoveTo(CaseStatusNegotiating))

		require.NoError(t, c.Settle(decimal.NewFromInt(9000), time.Now()))
		assert.Equal(t, CaseStatusSettled, c.Status)
		require.NotNil(t, c.SettledAmount)
		assert.True(t, c.SettledAmount.Equal(decimal.NewFromInt(9000)))
	})

	t.Run("final cases refuse movement", func(t *testing.T) {
		c := newTestCase(t)
		require.NoError(t, c.MoveTo(CaseStatusWrittenOff))

		assert.Error(t, c.MoveTo(CaseStatusOpen))
		assert.Error(t, c.Settle(decimal.NewFromInt(1), time.Now()))
	})

	t.Run("settled status requires the settle operation", func(t *testing.T) {
		c := newTestCase(t)
		err := c.MoveTo(CaseStatusSettled)
		require.Error(t, err)
		assert.Equal(t, CaseStatusOpen, c.Status)
	})
}

func TestCaseNotes(t *testing.T) {
	t.Run("appends notes in order", func(t *testing.T) {
		c := newTestCase(t)
		_, err := c.AddNote("cobranca", "first call made")
		require.NoError(t, err)
		_, err = c.AddNote("cobranca", "debtor proposed installments")
		require.NoError(t, err)

		require.Len(t, c.Notes, 2)
		assert.Equal(t, "first call made", c.Notes[0].Body)
	})

	t.Run("rejects blank text", func(t *testing.T) {
		c := newTestCase(t)
		_, err := c.AddNote("cobranca", "   ")
		require.Error(t, err)
		assert.Empty(t, c.Notes)
	})
}
