/*
Package store defines the persistence interfaces for the crew engine.

PURPOSE:
  One interface per domain concern, composed into Store. Get operations
  return (nil, nil) when no row exists; mutating operations on missing rows
  return ErrNotFound. Two concurrent edits of the same pending row resolve
  last-write-wins; there is no optimistic locking. Updates only apply while
  the stored row is still pending — a writer holding a stale read of a row
  that has since been reviewed gets ErrConflict, so terminal rows are never
  overwritten.

IMPLEMENTATIONS:
  store/memory: mutex-guarded maps, for tests and dev
  store/sqlite: mattn/go-sqlite3 with WAL, auto-migrated schema
*/
package store

import (
	"context"
	"errors"

	"github.com/controlstage/crew-engine/expense"
	"github.com/controlstage/crew-engine/notify"
	"github.com/controlstage/crew-engine/overtime"
	"github.com/controlstage/crew-engine/schedule"
)

var (
	// ErrNotFound is returned by mutating operations targeting a missing row.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when an update loses to a concurrent review:
	// the caller's read was pending but the stored row has since left that
	// state. Terminal rows are never overwritten.
	ErrConflict = errors.New("record is no longer pending")
)

// OvertimeStore persists authorizations and overtime requests.
// GetAuthorization satisfies overtime.AuthorizationStore.
type OvertimeStore interface {
	GetAuthorization(ctx context.Context, ownerID string) (*overtime.Authorization, error)
	SaveAuthorization(ctx context.Context, auth *overtime.Authorization) error

	SaveOvertimeRequest(ctx context.Context, req *overtime.Request) error
	GetOvertimeRequest(ctx context.Context, id string) (*overtime.Request, error)
	ListOvertimeRequests(ctx context.Context, ownerID string) ([]overtime.Request, error)
	UpdateOvertimeRequest(ctx context.Context, req *overtime.Request) error
}

// ExpenseStore persists expense reports and their receipt images.
type ExpenseStore interface {
	SaveReport(ctx context.Context, report *expense.Report) error
	GetReport(ctx context.Context, id string) (*expense.Report, error)
	ListReports(ctx context.Context, ownerID string) ([]expense.Report, error)
	UpdateReport(ctx context.Context, report *expense.Report) error

	PutReceipt(ctx context.Context, key string, data []byte) error
	GetReceipt(ctx context.Context, key string) ([]byte, error)
}

// ScheduleStore persists shifts, events and check-ins.
type ScheduleStore interface {
	SaveItem(ctx context.Context, item *schedule.Item) error
	GetItem(ctx context.Context, id string) (*schedule.Item, error)
	ListItems(ctx context.Context, ownerID string) ([]schedule.Item, error)

	SaveCheckIn(ctx context.Context, checkIn *schedule.CheckIn) error
	GetCheckInByItem(ctx context.Context, itemID, ownerID string) (*schedule.CheckIn, error)
	ListCheckIns(ctx context.Context, ownerID string) ([]schedule.CheckIn, error)
}

// NotificationStore persists the pull-based notification inbox.
type NotificationStore interface {
	SaveNotification(ctx context.Context, n *notify.Notification) error
	ListNotifications(ctx context.Context, ownerID string) ([]notify.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

// Store is the full persistence surface of the engine.
type Store interface {
	OvertimeStore
	ExpenseStore
	ScheduleStore
	NotificationStore

	Close() error
}
