// Package memory provides an in-memory Store implementation (for testing/dev).
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/controlstage/crew-engine/expense"
	"github.com/controlstage/crew-engine/notify"
	"github.com/controlstage/crew-engine/overtime"
	"github.com/controlstage/crew-engine/schedule"
	"github.com/controlstage/crew-engine/store"
)

// Store keeps everything in mutex-guarded maps. Values are copied on the
// way in and out so callers never share memory with the store.
type Store struct {
	mu sync.RWMutex

	authorizations map[string]overtime.Authorization // keyed by owner id
	requests       map[string]overtime.Request
	reports        map[string]expense.Report
	receipts       map[string][]byte
	items          map[string]schedule.Item
	checkIns       map[string]schedule.CheckIn
	notifications  map[string]notify.Notification
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		authorizations: make(map[string]overtime.Authorization),
		requests:       make(map[string]overtime.Request),
		reports:        make(map[string]expense.Report),
		receipts:       make(map[string][]byte),
		items:          make(map[string]schedule.Item),
		checkIns:       make(map[string]schedule.CheckIn),
		notifications:  make(map[string]notify.Notification),
	}
}

func (s *Store) Close() error { return nil }

// =============================================================================
// OVERTIME
// =============================================================================

func (s *Store) GetAuthorization(_ context.Context, ownerID string) (*overtime.Authorization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	auth, ok := s.authorizations[ownerID]
	if !ok {
		return nil, nil
	}
	return &auth, nil
}

func (s *Store) SaveAuthorization(_ context.Context, auth *overtime.Authorization) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authorizations[auth.OwnerID] = *auth
	return nil
}

func (s *Store) SaveOvertimeRequest(_ context.Context, req *overtime.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[req.ID] = *req
	return nil
}

func (s *Store) GetOvertimeRequest(_ context.Context, id string) (*overtime.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.requests[id]
	if !ok {
		return nil, nil
	}
	return &req, nil
}

func (s *Store) ListOvertimeRequests(_ context.Context, ownerID string) ([]overtime.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []overtime.Request
	for _, req := range s.requests {
		if req.OwnerID == ownerID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) UpdateOvertimeRequest(_ context.Context, req *overtime.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.requests[req.ID]
	if !ok {
		return store.ErrNotFound
	}
	if existing.Status != overtime.StatusPending {
		return store.ErrConflict
	}
	// Last-write-wins on concurrent pending edits.
	s.requests[req.ID] = *req
	return nil
}

// =============================================================================
// EXPENSES
// =============================================================================

func (s *Store) SaveReport(_ context.Context, report *expense.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.ID] = *report
	return nil
}

func (s *Store) GetReport(_ context.Context, id string) (*expense.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[id]
	if !ok {
		return nil, nil
	}
	return &report, nil
}

func (s *Store) ListReports(_ context.Context, ownerID string) ([]expense.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []expense.Report
	for _, r := range s.reports {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) UpdateReport(_ context.Context, report *expense.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.reports[report.ID]
	if !ok {
		return store.ErrNotFound
	}
	if existing.Status != expense.StatusPending {
		return store.ErrConflict
	}
	s.reports[report.ID] = *report
	return nil
}

func (s *Store) PutReceipt(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.receipts[key] = cp
	return nil
}

func (s *Store) GetReceipt(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.receipts[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

// =============================================================================
// SCHEDULE
// =============================================================================

func (s *Store) SaveItem(_ context.Context, item *schedule.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = *item
	return nil
}

func (s *Store) GetItem(_ context.Context, id string) (*schedule.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (s *Store) ListItems(_ context.Context, ownerID string) ([]schedule.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []schedule.Item
	for _, it := range s.items {
		if it.OwnerID == ownerID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}

func (s *Store) SaveCheckIn(_ context.Context, checkIn *schedule.CheckIn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *checkIn
	if checkIn.CheckedOutAt != nil {
		t := *checkIn.CheckedOutAt
		cp.CheckedOutAt = &t
	}
	s.checkIns[checkIn.ID] = cp
	return nil
}

func (s *Store) GetCheckInByItem(_ context.Context, itemID, ownerID string) (*schedule.CheckIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ci := range s.checkIns {
		if ci.ItemID == itemID && ci.OwnerID == ownerID {
			out := ci
			return &out, nil
		}
	}
	return nil, nil
}

func (s *Store) ListCheckIns(_ context.Context, ownerID string) ([]schedule.CheckIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []schedule.CheckIn
	for _, ci := range s.checkIns {
		if ci.OwnerID == ownerID {
			out = append(out, ci)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckedInAt.Before(out[j].CheckedInAt) })
	return out, nil
}

// =============================================================================
// NOTIFICATIONS
// =============================================================================

func (s *Store) SaveNotification(_ context.Context, n *notify.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications[n.ID] = *n
	return nil
}

func (s *Store) ListNotifications(_ context.Context, ownerID string) ([]notify.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []notify.Notification
	for _, n := range s.notifications {
		if n.OwnerID == ownerID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) MarkNotificationRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[id]
	if !ok {
		return store.ErrNotFound
	}
	n.Read = true
	s.notifications[id] = n
	return nil
}
