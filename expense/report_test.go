package expense_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controlstage/crew-engine/expense"
)

func validReport(t *testing.T) *expense.Report {
	t.Helper()
	ref := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	r, err := expense.NewReport("crew-1", "item-1", ref, ref.Add(2*time.Hour),
		decimal.NewFromFloat(42.50), "taxi from venue", "receipts/crew-1/item-1.jpg")
	require.NoError(t, err)
	return r
}

func TestNewReport(t *testing.T) {
	r := validReport(t)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, expense.StatusPending, r.Status)
	assert.Equal(t, "42.5", r.Amount.String())
	assert.Equal(t, "receipts/crew-1/item-1.jpg", r.ReceiptKey)
}

func TestNewReport_Validation(t *testing.T) {
	ref := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	amount := decimal.NewFromInt(10)

	t.Run("window closed", func(t *testing.T) {
		_, err := expense.NewReport("crew-1", "item-1", ref, ref.Add(49*time.Hour), amount, "taxi", "k")
		assert.ErrorIs(t, err, expense.ErrOutsideWindow)
	})

	t.Run("zero amount", func(t *testing.T) {
		_, err := expense.NewReport("crew-1", "item-1", ref, ref, decimal.Zero, "taxi", "k")
		assert.ErrorIs(t, err, expense.ErrInvalidAmount)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := expense.NewReport("crew-1", "item-1", ref, ref, decimal.NewFromInt(-5), "taxi", "k")
		assert.ErrorIs(t, err, expense.ErrInvalidAmount)
	})

	t.Run("blank description", func(t *testing.T) {
		_, err := expense.NewReport("crew-1", "item-1", ref, ref, amount, "  ", "k")
		assert.ErrorIs(t, err, expense.ErrMissingDescription)
	})
}

func TestReportTransitions(t *testing.T) {
	now := time.Now()

	t.Run("approve", func(t *testing.T) {
		r := validReport(t)
		require.NoError(t, r.Approve("mgr-1", now))

		assert.Equal(t, expense.StatusApproved, r.Status)
		require.NotNil(t, r.ReviewedBy)
		assert.Equal(t, "mgr-1", *r.ReviewedBy)
	})

	t.Run("reject", func(t *testing.T) {
		r := validReport(t)
		require.NoError(t, r.Reject("mgr-1", now))
		assert.Equal(t, expense.StatusRejected, r.Status)
	})

	t.Run("terminal reports are immutable", func(t *testing.T) {
		r := validReport(t)
		require.NoError(t, r.Reject("mgr-1", now))
		assert.ErrorIs(t, r.Approve("mgr-2", now), expense.ErrReportImmutable)
	})
}
