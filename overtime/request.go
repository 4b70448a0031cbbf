/*
request.go - Overtime request lifecycle

PURPOSE:
  Constructs claims and enforces the request state machine:

      submit ──▶ pending ──▶ approved
                    │
                    └──────▶ rejected

  The owning user may edit duration and note only while pending; reviewer
  transitions move the request into a terminal state that is immutable to
  everyone. Last-write-wins between concurrent owner edits is delegated to
  the storage layer.
*/
package overtime

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// NewRequest builds a pending request from an already-validated claim. The
// rate and total amount come from AuthorizeAndPriceClaim and are stored as
// immutable snapshots. Minutes must be a positive multiple of 30; a
// 0-duration claim is never persisted.
func NewRequest(ownerID string, shiftID, eventID *string, minutes int, note string, pricing Pricing, now time.Time) (*Request, error) {
	if minutes < MinClaimMinutes || minutes%RoundingStepMinutes != 0 {
		return nil, ErrInsufficientDuration
	}

	return &Request{
		ID:          newRequestID(),
		OwnerID:     ownerID,
		ShiftID:     shiftID,
		EventID:     eventID,
		Minutes:     minutes,
		HourlyRate:  pricing.HourlyRate,
		TotalAmount: pricing.TotalAmount,
		Note:        note,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// EditByOwner mutates duration and note. Only the owner may edit, and only
// while the request is pending. The total amount is recomputed from the
// snapshotted rate, not from the current authorization record.
func (r *Request) EditByOwner(editorID string, hours, minutes int, note string, now time.Time) error {
	if editorID != r.OwnerID {
		return ErrNotRequestOwner
	}
	if r.Status != StatusPending {
		return ErrRequestImmutable
	}

	totalHours, err := ValidateClaim(hours, minutes, note)
	if err != nil {
		return err
	}

	r.Minutes = hours*60 + minutes
	r.Note = note
	r.TotalAmount = totalHours.Mul(r.HourlyRate).Round(2)
	r.UpdatedAt = now
	return nil
}

// Approve moves a pending request to approved. Reviewer action.
func (r *Request) Approve(reviewerID string, now time.Time) error {
	return r.transition(StatusApproved, reviewerID, now)
}

// Reject moves a pending request to rejected. Reviewer action.
func (r *Request) Reject(reviewerID string, now time.Time) error {
	return r.transition(StatusRejected, reviewerID, now)
}

func (r *Request) transition(next Status, reviewerID string, now time.Time) error {
	if !r.Status.CanTransitionTo(next) {
		return &TransitionError{RequestID: r.ID, From: r.Status, To: next}
	}
	r.Status = next
	r.ReviewedBy = &reviewerID
	r.ReviewedAt = &now
	r.UpdatedAt = now
	return nil
}

func newRequestID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return "ot-" + hex.EncodeToString(b)
}
