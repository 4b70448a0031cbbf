/*
Package schedule models shifts, events and check-ins.

PURPOSE:
  Schedule items are the upstream facts everything else derives from:
  completed check-ins supply the scheduled/worked durations the overtime
  calculator consumes, and their timestamps anchor the expense submission
  window. Items also feed the month-grid calendar.
*/
package schedule

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/controlstage/crew-engine/overtime"
)

// =============================================================================
// SCHEDULE ITEMS
// =============================================================================

// Kind distinguishes a warehouse shift from an event assignment.
type Kind string

const (
	KindWarehouse Kind = "warehouse"
	KindEvent     Kind = "event"
)

type ItemStatus string

const (
	StatusPlanned   ItemStatus = "planned"
	StatusConfirmed ItemStatus = "confirmed"
	StatusCancelled ItemStatus = "cancelled"
)

// Item is a single scheduled shift or event occurrence for one crew member.
type Item struct {
	ID               string
	OwnerID          string
	Kind             Kind
	Status           ItemStatus
	StartsAt         time.Time
	ScheduledMinutes int
	Venue            string
	CreatedAt        time.Time
}

// NewItem builds a planned schedule item.
func NewItem(ownerID string, kind Kind, startsAt time.Time, scheduledMinutes int, venue string, now time.Time) *Item {
	return &Item{
		ID:               newItemID(),
		OwnerID:          ownerID,
		Kind:             kind,
		Status:           StatusPlanned,
		StartsAt:         startsAt,
		ScheduledMinutes: scheduledMinutes,
		Venue:            venue,
		CreatedAt:        now,
	}
}

// =============================================================================
// CHECK-INS
// =============================================================================

var (
	// ErrAlreadyCheckedOut is returned on a second check-out attempt.
	ErrAlreadyCheckedOut = errors.New("check-in already closed")

	// ErrCheckOutBeforeIn is returned when the check-out timestamp
	// precedes the check-in.
	ErrCheckOutBeforeIn = errors.New("check-out before check-in")
)

// CheckIn records actual presence at a schedule item. WorkedMinutes is
// derived at check-out.
type CheckIn struct {
	ID            string
	OwnerID       string
	ItemID        string
	CheckedInAt   time.Time
	CheckedOutAt  *time.Time
	WorkedMinutes int
}

// NewCheckIn opens a check-in against an item.
func NewCheckIn(ownerID, itemID string, at time.Time) *CheckIn {
	return &CheckIn{
		ID:          newCheckInID(),
		OwnerID:     ownerID,
		ItemID:      itemID,
		CheckedInAt: at,
	}
}

// Closed reports whether the check-in has been checked out.
func (c *CheckIn) Closed() bool { return c.CheckedOutAt != nil }

// CheckOut closes the check-in and derives the worked duration.
func (c *CheckIn) CheckOut(at time.Time) error {
	if c.Closed() {
		return ErrAlreadyCheckedOut
	}
	if at.Before(c.CheckedInAt) {
		return ErrCheckOutBeforeIn
	}
	c.CheckedOutAt = &at
	c.WorkedMinutes = int(at.Sub(c.CheckedInAt).Minutes())
	return nil
}

// =============================================================================
// DERIVATIONS
// =============================================================================

// OvertimeCandidates joins completed check-ins against their schedule items
// and keeps the ones carrying at least one claimable half-hour of excess.
func OvertimeCandidates(items []Item, checkIns []CheckIn) []overtime.Candidate {
	byID := make(map[string]Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	var out []overtime.Candidate
	for _, ci := range checkIns {
		if !ci.Closed() {
			continue
		}
		item, ok := byID[ci.ItemID]
		if !ok || item.Status == StatusCancelled {
			continue
		}

		cand := overtime.NewCandidate(item.ID, sourceKind(item.Kind), item.StartsAt, item.ScheduledMinutes, ci.WorkedMinutes)
		if cand.Eligible() {
			out = append(out, cand)
		}
	}
	return out
}

// ExpenseReference returns the timestamp the submission window is measured
// from: the check-in time for warehouse shifts, the event start otherwise.
func ExpenseReference(item Item, checkIn *CheckIn) time.Time {
	if item.Kind == KindWarehouse && checkIn != nil {
		return checkIn.CheckedInAt
	}
	return item.StartsAt
}

func sourceKind(k Kind) overtime.SourceKind {
	if k == KindEvent {
		return overtime.SourceEvent
	}
	return overtime.SourceWarehouse
}

func newItemID() string    { return "item-" + randomHex() }
func newCheckInID() string { return "ci-" + randomHex() }

func randomHex() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
