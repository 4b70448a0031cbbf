// Package notify holds the pull-based notification records written when a
// reviewer resolves an overtime request or expense report. There is no push
// channel; clients poll the listing endpoint.
package notify

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

type Kind string

const (
	KindOvertimeReviewed Kind = "overtime_reviewed"
	KindExpenseReviewed  Kind = "expense_reviewed"
)

// Notification is a single inbox entry for a crew member.
type Notification struct {
	ID        string
	OwnerID   string
	Kind      Kind
	Message   string
	Read      bool
	CreatedAt time.Time
}

// New builds an unread notification.
func New(ownerID string, kind Kind, message string, now time.Time) *Notification {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return &Notification{
		ID:        "ntf-" + hex.EncodeToString(b),
		OwnerID:   ownerID,
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
	}
}
