/*
Package sqlite provides a SQLite-backed implementation of the store interfaces.

PURPOSE:
  Implements store.Store using mattn/go-sqlite3. In production the same
  patterns apply to PostgreSQL - only minor SQL dialect differences.

KEY TABLES:
  authorizations:    Per-user overtime benefit records
  overtime_requests: Submitted claims with rate/amount snapshots
  expense_reports:   Reimbursement claims
  receipts:          Compressed receipt images (BLOB)
  schedule_items:    Shifts and events
  check_ins:         Presence records with derived worked minutes
  notifications:     Pull-based inbox

WAL MODE:
  Opened with WAL (Write-Ahead Logging) and foreign keys on: multiple
  readers don't block, single writer at a time, better crash recovery.

CONCURRENCY:
  Two concurrent edits of the same pending row resolve last-write-wins;
  the row is replaced wholesale by id. Updates carry a status = 'pending'
  guard so a writer holding a stale read never overwrites a row another
  reviewer has already moved to a terminal state. No optimistic locking
  beyond that guard.

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper migration
  tool (golang-migrate, goose) with versioned migrations.

MONEY:
  Decimal amounts are stored as TEXT via decimal.Decimal.String() to avoid
  float drift; REAL columns are never used for money.

SEE ALSO:
  - store/store.go: Interface definitions
  - store/memory: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/controlstage/crew-engine/expense"
	"github.com/controlstage/crew-engine/notify"
	"github.com/controlstage/crew-engine/overtime"
	"github.com/controlstage/crew-engine/schedule"
	"github.com/controlstage/crew-engine/store"
)

// Store implements store.Store using SQLite.
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS authorizations (
		owner_id TEXT PRIMARY KEY,
		enabled INTEGER NOT NULL DEFAULT 0,
		hourly_rate TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS overtime_requests (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		shift_id TEXT,
		event_id TEXT,
		minutes INTEGER NOT NULL,
		hourly_rate TEXT NOT NULL,
		total_amount TEXT NOT NULL,
		note TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		reviewed_by TEXT,
		reviewed_at TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_overtime_requests_owner
		ON overtime_requests(owner_id, created_at);
	CREATE INDEX IF NOT EXISTS idx_overtime_requests_status
		ON overtime_requests(status);

	CREATE TABLE IF NOT EXISTS expense_reports (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		item_id TEXT NOT NULL,
		reference_at TEXT NOT NULL,
		amount TEXT NOT NULL,
		description TEXT NOT NULL,
		receipt_key TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		reviewed_by TEXT,
		reviewed_at TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_expense_reports_owner
		ON expense_reports(owner_id, created_at);
	CREATE INDEX IF NOT EXISTS idx_expense_reports_status
		ON expense_reports(status);

	CREATE TABLE IF NOT EXISTS receipts (
		key TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS schedule_items (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		status TEXT NOT NULL,
		starts_at TEXT NOT NULL,
		scheduled_minutes INTEGER NOT NULL,
		venue TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_schedule_items_owner
		ON schedule_items(owner_id, starts_at);

	CREATE TABLE IF NOT EXISTS check_ins (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		item_id TEXT NOT NULL,
		checked_in_at TEXT NOT NULL,
		checked_out_at TEXT,
		worked_minutes INTEGER NOT NULL DEFAULT 0
	);

	-- One check-in per crew member per schedule item
	CREATE UNIQUE INDEX IF NOT EXISTS idx_check_ins_item_owner
		ON check_ins(item_id, owner_id);

	CREATE TABLE IF NOT EXISTS notifications (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		message TEXT NOT NULL,
		read INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_notifications_owner
		ON notifications(owner_id, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// OVERTIME (store.OvertimeStore)
// =============================================================================

func (s *Store) GetAuthorization(ctx context.Context, ownerID string) (*overtime.Authorization, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT owner_id, enabled, hourly_rate, updated_at
		FROM authorizations WHERE owner_id = ?`, ownerID)

	var auth overtime.Authorization
	var enabled int
	var rate, updatedAt string
	if err := row.Scan(&auth.OwnerID, &enabled, &rate, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get authorization: %w", err)
	}

	auth.Enabled = enabled != 0
	var err error
	if auth.HourlyRate, err = decimal.NewFromString(rate); err != nil {
		return nil, fmt.Errorf("malformed hourly rate for %s: %w", ownerID, err)
	}
	if auth.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &auth, nil
}

func (s *Store) SaveAuthorization(ctx context.Context, auth *overtime.Authorization) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO authorizations (owner_id, enabled, hourly_rate, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(owner_id) DO UPDATE SET
			enabled = excluded.enabled,
			hourly_rate = excluded.hourly_rate,
			updated_at = excluded.updated_at`,
		auth.OwnerID, boolToInt(auth.Enabled), auth.HourlyRate.String(), formatTime(auth.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to save authorization: %w", err)
	}
	return nil
}

func (s *Store) SaveOvertimeRequest(ctx context.Context, req *overtime.Request) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO overtime_requests
		(id, owner_id, shift_id, event_id, minutes, hourly_rate, total_amount,
		 note, status, reviewed_by, reviewed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.OwnerID, nullStr(req.ShiftID), nullStr(req.EventID),
		req.Minutes, req.HourlyRate.String(), req.TotalAmount.String(),
		req.Note, req.Status, nullStr(req.ReviewedBy), nullTime(req.ReviewedAt),
		formatTime(req.CreatedAt), formatTime(req.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to save overtime request: %w", err)
	}
	return nil
}

func (s *Store) GetOvertimeRequest(ctx context.Context, id string) (*overtime.Request, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, owner_id, shift_id, event_id, minutes, hourly_rate, total_amount,
		       note, status, reviewed_by, reviewed_at, created_at, updated_at
		FROM overtime_requests WHERE id = ?`, id)

	req, err := scanOvertimeRequest(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return req, err
}

func (s *Store) ListOvertimeRequests(ctx context.Context, ownerID string) ([]overtime.Request, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, shift_id, event_id, minutes, hourly_rate, total_amount,
		       note, status, reviewed_by, reviewed_at, created_at, updated_at
		FROM overtime_requests WHERE owner_id = ? ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var out []overtime.Request
	for rows.Next() {
		req, err := scanOvertimeRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *req)
	}
	return out, rows.Err()
}

func (s *Store) UpdateOvertimeRequest(ctx context.Context, req *overtime.Request) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE overtime_requests SET
			minutes = ?, total_amount = ?, note = ?, status = ?,
			reviewed_by = ?, reviewed_at = ?, updated_at = ?
		WHERE id = ? AND status = 'pending'`,
		req.Minutes, req.TotalAmount.String(), req.Note, req.Status,
		nullStr(req.ReviewedBy), nullTime(req.ReviewedAt), formatTime(req.UpdatedAt),
		req.ID)
	if err != nil {
		return fmt.Errorf("failed to update overtime request: %w", err)
	}
	return s.requirePendingRow(ctx, res, "overtime_requests", req.ID)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOvertimeRequest(row scanner) (*overtime.Request, error) {
	var req overtime.Request
	var shiftID, eventID, reviewedBy, reviewedAt sql.NullString
	var rate, amount, createdAt, updatedAt string

	err := row.Scan(&req.ID, &req.OwnerID, &shiftID, &eventID, &req.Minutes,
		&rate, &amount, &req.Note, &req.Status, &reviewedBy, &reviewedAt,
		&createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan overtime request: %w", err)
	}

	req.ShiftID = strPtr(shiftID)
	req.EventID = strPtr(eventID)
	req.ReviewedBy = strPtr(reviewedBy)
	if req.ReviewedAt, err = timePtr(reviewedAt); err != nil {
		return nil, err
	}
	if req.HourlyRate, err = decimal.NewFromString(rate); err != nil {
		return nil, fmt.Errorf("malformed hourly rate on %s: %w", req.ID, err)
	}
	if req.TotalAmount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("malformed total amount on %s: %w", req.ID, err)
	}
	if req.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if req.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &req, nil
}

// =============================================================================
// EXPENSES (store.ExpenseStore)
// =============================================================================

func (s *Store) SaveReport(ctx context.Context, report *expense.Report) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expense_reports
		(id, owner_id, item_id, reference_at, amount, description, receipt_key,
		 status, reviewed_by, reviewed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.ID, report.OwnerID, report.ItemID, formatTime(report.ReferenceAt),
		report.Amount.String(), report.Description, report.ReceiptKey,
		report.Status, nullStr(report.ReviewedBy), nullTime(report.ReviewedAt),
		formatTime(report.CreatedAt), formatTime(report.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to save expense report: %w", err)
	}
	return nil
}

func (s *Store) GetReport(ctx context.Context, id string) (*expense.Report, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, owner_id, item_id, reference_at, amount, description, receipt_key,
		       status, reviewed_by, reviewed_at, created_at, updated_at
		FROM expense_reports WHERE id = ?`, id)

	report, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return report, err
}

func (s *Store) ListReports(ctx context.Context, ownerID string) ([]expense.Report, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, item_id, reference_at, amount, description, receipt_key,
		       status, reviewed_by, reviewed_at, created_at, updated_at
		FROM expense_reports WHERE owner_id = ? ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense reports: %w", err)
	}
	defer rows.Close()

	var out []expense.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *report)
	}
	return out, rows.Err()
}

func (s *Store) UpdateReport(ctx context.Context, report *expense.Report) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE expense_reports SET
			amount = ?, description = ?, receipt_key = ?, status = ?,
			reviewed_by = ?, reviewed_at = ?, updated_at = ?
		WHERE id = ? AND status = 'pending'`,
		report.Amount.String(), report.Description, report.ReceiptKey, report.Status,
		nullStr(report.ReviewedBy), nullTime(report.ReviewedAt), formatTime(report.UpdatedAt),
		report.ID)
	if err != nil {
		return fmt.Errorf("failed to update expense report: %w", err)
	}
	return s.requirePendingRow(ctx, res, "expense_reports", report.ID)
}

func scanReport(row scanner) (*expense.Report, error) {
	var report expense.Report
	var reviewedBy, reviewedAt sql.NullString
	var amount, referenceAt, createdAt, updatedAt string

	err := row.Scan(&report.ID, &report.OwnerID, &report.ItemID, &referenceAt,
		&amount, &report.Description, &report.ReceiptKey, &report.Status,
		&reviewedBy, &reviewedAt, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan expense report: %w", err)
	}

	report.ReviewedBy = strPtr(reviewedBy)
	if report.ReviewedAt, err = timePtr(reviewedAt); err != nil {
		return nil, err
	}
	if report.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("malformed amount on %s: %w", report.ID, err)
	}
	if report.ReferenceAt, err = parseTime(referenceAt); err != nil {
		return nil, err
	}
	if report.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if report.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *Store) PutReceipt(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO receipts (key, data, created_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data`,
		key, data, formatTime(time.Now().UTC()))
	if err != nil {
		return fmt.Errorf("failed to put receipt: %w", err)
	}
	return nil
}

func (s *Store) GetReceipt(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM receipts WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}
	return data, nil
}

// =============================================================================
// SCHEDULE (store.ScheduleStore)
// =============================================================================

func (s *Store) SaveItem(ctx context.Context, item *schedule.Item) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO schedule_items
		(id, owner_id, kind, status, starts_at, scheduled_minutes, venue, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			starts_at = excluded.starts_at,
			scheduled_minutes = excluded.scheduled_minutes,
			venue = excluded.venue`,
		item.ID, item.OwnerID, item.Kind, item.Status, formatTime(item.StartsAt),
		item.ScheduledMinutes, item.Venue, formatTime(item.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to save schedule item: %w", err)
	}
	return nil
}

func (s *Store) GetItem(ctx context.Context, id string) (*schedule.Item, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, owner_id, kind, status, starts_at, scheduled_minutes, venue, created_at
		FROM schedule_items WHERE id = ?`, id)

	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return item, err
}

func (s *Store) ListItems(ctx context.Context, ownerID string) ([]schedule.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, kind, status, starts_at, scheduled_minutes, venue, created_at
		FROM schedule_items WHERE owner_id = ? ORDER BY starts_at`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule items: %w", err)
	}
	defer rows.Close()

	var out []schedule.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, rows.Err()
}

func scanItem(row scanner) (*schedule.Item, error) {
	var item schedule.Item
	var startsAt, createdAt string

	err := row.Scan(&item.ID, &item.OwnerID, &item.Kind, &item.Status,
		&startsAt, &item.ScheduledMinutes, &item.Venue, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan schedule item: %w", err)
	}

	if item.StartsAt, err = parseTime(startsAt); err != nil {
		return nil, err
	}
	if item.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) SaveCheckIn(ctx context.Context, checkIn *schedule.CheckIn) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO check_ins
		(id, owner_id, item_id, checked_in_at, checked_out_at, worked_minutes)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			checked_out_at = excluded.checked_out_at,
			worked_minutes = excluded.worked_minutes`,
		checkIn.ID, checkIn.OwnerID, checkIn.ItemID, formatTime(checkIn.CheckedInAt),
		nullTime(checkIn.CheckedOutAt), checkIn.WorkedMinutes)
	if err != nil {
		return fmt.Errorf("failed to save check-in: %w", err)
	}
	return nil
}

func (s *Store) GetCheckInByItem(ctx context.Context, itemID, ownerID string) (*schedule.CheckIn, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, owner_id, item_id, checked_in_at, checked_out_at, worked_minutes
		FROM check_ins WHERE item_id = ? AND owner_id = ?`, itemID, ownerID)

	ci, err := scanCheckIn(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return ci, err
}

func (s *Store) ListCheckIns(ctx context.Context, ownerID string) ([]schedule.CheckIn, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, item_id, checked_in_at, checked_out_at, worked_minutes
		FROM check_ins WHERE owner_id = ? ORDER BY checked_in_at`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	var out []schedule.CheckIn
	for rows.Next() {
		ci, err := scanCheckIn(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ci)
	}
	return out, rows.Err()
}

func scanCheckIn(row scanner) (*schedule.CheckIn, error) {
	var ci schedule.CheckIn
	var checkedInAt string
	var checkedOutAt sql.NullString

	err := row.Scan(&ci.ID, &ci.OwnerID, &ci.ItemID, &checkedInAt, &checkedOutAt, &ci.WorkedMinutes)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan check-in: %w", err)
	}

	if ci.CheckedInAt, err = parseTime(checkedInAt); err != nil {
		return nil, err
	}
	if ci.CheckedOutAt, err = timePtr(checkedOutAt); err != nil {
		return nil, err
	}
	return &ci, nil
}

// =============================================================================
// NOTIFICATIONS (store.NotificationStore)
// =============================================================================

func (s *Store) SaveNotification(ctx context.Context, n *notify.Notification) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notifications (id, owner_id, kind, message, read, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		n.ID, n.OwnerID, n.Kind, n.Message, boolToInt(n.Read), formatTime(n.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (s *Store) ListNotifications(ctx context.Context, ownerID string) ([]notify.Notification, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, kind, message, read, created_at
		FROM notifications WHERE owner_id = ? ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var out []notify.Notification
	for rows.Next() {
		var n notify.Notification
		var read int
		var createdAt string
		if err := rows.Scan(&n.ID, &n.OwnerID, &n.Kind, &n.Message, &read, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.Read = read != 0
		if n.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *Store) MarkNotificationRead(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE notifications SET read = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return requireRow(res)
}

// =============================================================================
// HELPERS
// =============================================================================

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// requirePendingRow resolves a zero-row status-guarded update: the row is
// either missing (ErrNotFound) or has already left the pending state
// (ErrConflict).
func (s *Store) requirePendingRow(ctx context.Context, res sql.Result, table, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var status string
	err = s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT status FROM %s WHERE id = ?`, table), id).Scan(&status)
	if err == sql.ErrNoRows {
		return store.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check row status: %w", err)
	}
	return store.ErrConflict
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed timestamp %q: %w", s, err)
	}
	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullStr(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func timePtr(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := parseTime(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
