/*
Package overtime implements the overtime claim engine for the crew app.

PURPOSE:
  Converts raw scheduled/worked durations into a policy-compliant claimable
  overtime quantity, prices it against a per-crew-member authorization
  record, and tracks the lifecycle of submitted claims.

KEY CONCEPTS IN THIS FILE (types.go):
  - Candidate: A completed work interval eligible for an overtime claim
  - Request: A submitted claim with a rate snapshot and review status
  - Authorization: The per-user benefit record gating claims

DESIGN PRINCIPLES:
  1. Precision: Money uses decimal.Decimal, never float64
  2. Snapshots: The hourly rate is frozen into the request at submission;
     later authorization changes never alter an existing request
  3. One-directional lifecycle: pending -> approved | rejected, terminal
     states are immutable

SEE ALSO:
  - calculator.go: Excess/requestable math and claim validation
  - request.go: Request lifecycle and edit permissions
  - errors.go: Error taxonomy
*/
package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SOURCE KINDS
// =============================================================================

// SourceKind identifies where the overtime was worked.
type SourceKind string

const (
	SourceWarehouse SourceKind = "warehouse"
	SourceEvent     SourceKind = "event"
)

// =============================================================================
// CANDIDATE - Computed on demand, never persisted
// =============================================================================

// Candidate is a completed work interval that may carry claimable overtime.
// It is derived from two upstream facts (scheduled minutes, worked minutes);
// only the resulting Request is persisted.
type Candidate struct {
	ID                 string
	Kind               SourceKind
	Date               time.Time
	ScheduledMinutes   int
	WorkedMinutes      int
	ExcessMinutes      int
	RequestableMinutes int
}

// Eligible reports whether the candidate carries enough excess time for a
// claim. Candidates below the 30-minute floor must be filtered out by the
// caller; a 0-duration claim is never persisted.
func (c Candidate) Eligible() bool {
	return c.RequestableMinutes >= RoundingStepMinutes
}

// NewCandidate derives a candidate from upstream durations. Negative or
// missing durations are normalized to zero.
func NewCandidate(id string, kind SourceKind, date time.Time, scheduledMinutes, workedMinutes int) Candidate {
	excess, requestable := ComputeExcessAndRequestable(scheduledMinutes, workedMinutes)
	return Candidate{
		ID:                 id,
		Kind:               kind,
		Date:               date,
		ScheduledMinutes:   max(scheduledMinutes, 0),
		WorkedMinutes:      max(workedMinutes, 0),
		ExcessMinutes:      excess,
		RequestableMinutes: requestable,
	}
}

// =============================================================================
// REQUEST - A persisted overtime claim
// =============================================================================

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Terminal reports whether the status admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo reports whether the one-directional lifecycle allows
// moving from s to next. No transition skips pending and none leaves a
// terminal state.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && next.Terminal()
}

// Request is a user-submitted claim for a quantity of overtime against a
// specific shift or event. HourlyRate and TotalAmount are snapshots taken
// at submission time.
type Request struct {
	ID          string
	OwnerID     string
	ShiftID     *string // set when claimed against a warehouse shift
	EventID     *string // set when claimed against an event
	Minutes     int     // positive multiple of 30
	HourlyRate  decimal.Decimal
	TotalAmount decimal.Decimal
	Note        string
	Status      Status
	ReviewedBy  *string
	ReviewedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Hours returns the claimed duration as a decimal hour quantity.
func (r *Request) Hours() decimal.Decimal {
	return decimal.NewFromInt(int64(r.Minutes)).Div(decimal.NewFromInt(60))
}

// =============================================================================
// AUTHORIZATION - Per-user benefit record
// =============================================================================

// Authorization gates whether a crew member can claim overtime at all, and
// at what rate. The rate is never user-entered.
type Authorization struct {
	OwnerID    string
	Enabled    bool
	HourlyRate decimal.Decimal
	UpdatedAt  time.Time
}
