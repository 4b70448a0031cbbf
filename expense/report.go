/*
report.go - Expense report entity and lifecycle

PURPOSE:
  A report is filed against a checked-in shift or an event occurrence while
  the submission window is open. It carries the reimbursement amount, a
  description and the object key of the compressed receipt image, and moves
  through the same one-directional lifecycle as overtime requests:
  pending -> approved | rejected.
*/
package expense

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

var (
	// ErrOutsideWindow is returned when the submission window has closed
	// (or not yet opened) for the candidate.
	ErrOutsideWindow = errors.New("outside expense submission window")

	// ErrInvalidAmount is returned for zero or negative amounts.
	ErrInvalidAmount = errors.New("expense amount must be positive")

	// ErrMissingDescription is returned when the description is blank.
	ErrMissingDescription = errors.New("expense description is required")

	// ErrReportImmutable is returned on any mutation of a non-pending report.
	ErrReportImmutable = errors.New("report is no longer pending")
)

// =============================================================================
// REPORT
// =============================================================================

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

// Report is a reimbursement claim against a shift or event.
type Report struct {
	ID          string
	OwnerID     string
	ItemID      string    // the shift/event this expense belongs to
	ReferenceAt time.Time // check-in time or event date used for the window
	Amount      decimal.Decimal
	Description string
	ReceiptKey  string // object key of the compressed receipt image
	Status      Status
	ReviewedBy  *string
	ReviewedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewReport validates and builds a pending report. The submission window is
// checked against ref, which the caller supplies from the candidate's
// check-in time (warehouse) or event date (event).
func NewReport(ownerID, itemID string, ref, now time.Time, amount decimal.Decimal, description, receiptKey string) (*Report, error) {
	if !WithinSubmissionWindow(ref, now) {
		return nil, ErrOutsideWindow
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrMissingDescription
	}

	return &Report{
		ID:          newReportID(),
		OwnerID:     ownerID,
		ItemID:      itemID,
		ReferenceAt: ref,
		Amount:      amount,
		Description: description,
		ReceiptKey:  receiptKey,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Approve moves a pending report to approved. Reviewer action.
func (r *Report) Approve(reviewerID string, now time.Time) error {
	return r.transition(StatusApproved, reviewerID, now)
}

// Reject moves a pending report to rejected. Reviewer action.
func (r *Report) Reject(reviewerID string, now time.Time) error {
	return r.transition(StatusRejected, reviewerID, now)
}

func (r *Report) transition(next Status, reviewerID string, now time.Time) error {
	if r.Status != StatusPending {
		return fmt.Errorf("report %s is %s: %w", r.ID, r.Status, ErrReportImmutable)
	}
	r.Status = next
	r.ReviewedBy = &reviewerID
	r.ReviewedAt = &now
	r.UpdatedAt = now
	return nil
}

func newReportID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return "exp-" + hex.EncodeToString(b)
}
