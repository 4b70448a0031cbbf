// Package expense implements expense reimbursement: the 48-hour submission
// window and the report lifecycle.
package expense

import "time"

// SubmissionWindow is how long after a shift check-in or event date an
// expense may still be filed. Bounding the window prevents stale,
// hard-to-audit claims while giving crew two full days of slack.
const SubmissionWindow = 48 * time.Hour

// WithinSubmissionWindow reports whether a candidate is still eligible for
// expense submission: 0 <= now - ref <= 48h. A reference timestamp in the
// future is not-yet-eligible, not an error. The same check applies to both
// event-based candidates (event start date) and warehouse candidates
// (check-in time).
func WithinSubmissionWindow(ref, now time.Time) bool {
	elapsed := now.Sub(ref)
	return elapsed >= 0 && elapsed <= SubmissionWindow
}
