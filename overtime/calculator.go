/*
calculator.go - Excess/requestable math, claim validation and pricing

PURPOSE:
  The three pure-ish operations behind an overtime claim:

  1. ComputeExcessAndRequestable: worked-over-scheduled time, quantized
     down to 30-minute steps. Rounding down protects the employer and
     yields a policy crew members can predict.
  2. ValidateClaim: enforces the half-hour increment, the 30-minute
     minimum-claim floor and the mandatory justification note.
  3. AuthorizeAndPriceClaim: the only operation that crosses a process
     boundary. Looks up the user's authorization and prices the claim.

ROUNDING:
  Currency amounts round half-up to 2 decimal places (decimal.Round
  rounds half away from zero, which is half-up for positive amounts).
*/
package overtime

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// RoundingStepMinutes is the payroll rounding granularity. Excess time
	// is quantized down to this step before it can be claimed.
	RoundingStepMinutes = 30

	// MinClaimMinutes is the minimum-claim floor. Anything shorter is
	// treated as noise and rejected.
	MinClaimMinutes = 30
)

var minutesPerHour = decimal.NewFromInt(60)

// ComputeExcessAndRequestable converts scheduled/worked durations into the
// excess over schedule and the claimable portion of that excess. Negative
// inputs are normalized to zero.
//
// Guarantees: requestable is a non-negative multiple of RoundingStepMinutes
// and requestable <= excess < requestable + RoundingStepMinutes.
func ComputeExcessAndRequestable(scheduledMinutes, workedMinutes int) (excessMinutes, requestableMinutes int) {
	if scheduledMinutes < 0 {
		scheduledMinutes = 0
	}
	if workedMinutes < 0 {
		workedMinutes = 0
	}

	excessMinutes = workedMinutes - scheduledMinutes
	if excessMinutes < 0 {
		excessMinutes = 0
	}

	requestableMinutes = (excessMinutes / RoundingStepMinutes) * RoundingStepMinutes
	return excessMinutes, requestableMinutes
}

// ValidateClaim checks a user-entered claim duration and justification.
// Minutes must be 0 or 30. On success it returns the validated duration as
// a decimal hour quantity (e.g. 90 minutes -> 1.5).
func ValidateClaim(hours, minutes int, note string) (decimal.Decimal, error) {
	if hours < 0 || (minutes != 0 && minutes != RoundingStepMinutes) {
		return decimal.Zero, ErrInvalidIncrement
	}

	totalMinutes := hours*60 + minutes
	if totalMinutes < MinClaimMinutes {
		return decimal.Zero, ErrInsufficientDuration
	}

	if strings.TrimSpace(note) == "" {
		return decimal.Zero, ErrMissingJustification
	}

	return decimal.NewFromInt(int64(totalMinutes)).Div(minutesPerHour), nil
}

// =============================================================================
// AUTHORIZATION & PRICING
// =============================================================================

// AuthorizationStore is the read side the calculator needs from persistence.
// Implementations return (nil, nil) when no record exists for the user.
type AuthorizationStore interface {
	GetAuthorization(ctx context.Context, ownerID string) (*Authorization, error)
}

// Pricing is the result of authorizing and pricing a claim. HourlyRate is
// snapshotted into the persisted request; later changes to the
// authorization record never retroactively alter a submitted request.
type Pricing struct {
	HourlyRate  decimal.Decimal
	TotalAmount decimal.Decimal
}

// AuthorizeAndPriceClaim looks up the user's authorization and computes the
// claim's monetary value. A store failure surfaces as ErrLookupFailed, never
// as ErrNotAuthorized, so the caller can retry instead of telling the user
// they lack permission.
func AuthorizeAndPriceClaim(ctx context.Context, auths AuthorizationStore, ownerID string, totalHours decimal.Decimal) (*Pricing, error) {
	auth, err := auths.GetAuthorization(ctx, ownerID)
	if err != nil {
		return nil, &LookupError{OwnerID: ownerID, Err: err}
	}
	if auth == nil || !auth.Enabled {
		return nil, ErrNotAuthorized
	}
	if !auth.HourlyRate.IsPositive() {
		return nil, ErrInvalidRate
	}

	return &Pricing{
		HourlyRate:  auth.HourlyRate,
		TotalAmount: totalHours.Mul(auth.HourlyRate).Round(2),
	}, nil
}
