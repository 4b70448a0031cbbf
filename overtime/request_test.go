package overtime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controlstage/crew-engine/overtime"
)

func newPendingRequest(t *testing.T) *overtime.Request {
	t.Helper()
	shiftID := "item-1"
	req, err := overtime.NewRequest("crew-1", &shiftID, nil, 30, "load-out ran long",
		overtime.Pricing{HourlyRate: dec("20"), TotalAmount: dec("10.00")}, time.Now())
	require.NoError(t, err)
	return req
}

func TestNewRequest(t *testing.T) {
	req := newPendingRequest(t)

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, overtime.StatusPending, req.Status)
	assert.Equal(t, 30, req.Minutes)
	assert.Equal(t, "0.5", req.Hours().String())
	assert.Nil(t, req.ReviewedBy)
}

func TestNewRequest_RejectsInvalidDurations(t *testing.T) {
	pricing := overtime.Pricing{HourlyRate: dec("20"), TotalAmount: dec("0")}

	for _, minutes := range []int{0, 15, 29, 45, -30} {
		_, err := overtime.NewRequest("crew-1", nil, nil, minutes, "note", pricing, time.Now())
		assert.ErrorIs(t, err, overtime.ErrInsufficientDuration, "minutes=%d", minutes)
	}
}

func TestEditByOwner_WhilePending(t *testing.T) {
	req := newPendingRequest(t)

	err := req.EditByOwner("crew-1", 1, 0, "updated note", time.Now())
	require.NoError(t, err)

	assert.Equal(t, 60, req.Minutes)
	assert.Equal(t, "updated note", req.Note)
	// recomputed from the snapshotted rate: 1h * 20
	assert.Equal(t, "20.00", req.TotalAmount.StringFixed(2))
}

func TestEditByOwner_OnlyOwner(t *testing.T) {
	req := newPendingRequest(t)

	err := req.EditByOwner("crew-2", 1, 0, "not mine", time.Now())
	assert.ErrorIs(t, err, overtime.ErrNotRequestOwner)
	assert.Equal(t, 30, req.Minutes)
}

func TestEditByOwner_AfterReviewRejected(t *testing.T) {
	req := newPendingRequest(t)
	require.NoError(t, req.Approve("mgr-1", time.Now()))

	err := req.EditByOwner("crew-1", 1, 0, "too late", time.Now())
	assert.ErrorIs(t, err, overtime.ErrRequestImmutable)
	assert.Equal(t, 30, req.Minutes)
}

func TestEditByOwner_RevalidatesClaim(t *testing.T) {
	req := newPendingRequest(t)

	assert.ErrorIs(t, req.EditByOwner("crew-1", 0, 15, "note", time.Now()), overtime.ErrInvalidIncrement)
	assert.ErrorIs(t, req.EditByOwner("crew-1", 0, 0, "note", time.Now()), overtime.ErrInsufficientDuration)
	assert.ErrorIs(t, req.EditByOwner("crew-1", 1, 0, "  ", time.Now()), overtime.ErrMissingJustification)
}

func TestTransitions(t *testing.T) {
	now := time.Now()

	t.Run("pending to approved", func(t *testing.T) {
		req := newPendingRequest(t)
		require.NoError(t, req.Approve("mgr-1", now))

		assert.Equal(t, overtime.StatusApproved, req.Status)
		require.NotNil(t, req.ReviewedBy)
		assert.Equal(t, "mgr-1", *req.ReviewedBy)
		require.NotNil(t, req.ReviewedAt)
	})

	t.Run("pending to rejected", func(t *testing.T) {
		req := newPendingRequest(t)
		require.NoError(t, req.Reject("mgr-1", now))
		assert.Equal(t, overtime.StatusRejected, req.Status)
	})

	t.Run("terminal states are immutable", func(t *testing.T) {
		req := newPendingRequest(t)
		require.NoError(t, req.Approve("mgr-1", now))

		err := req.Reject("mgr-2", now)
		assert.ErrorIs(t, err, overtime.ErrRequestImmutable)

		var trErr *overtime.TransitionError
		require.ErrorAs(t, err, &trErr)
		assert.Equal(t, overtime.StatusApproved, trErr.From)
		assert.Equal(t, overtime.StatusRejected, trErr.To)
	})
}
