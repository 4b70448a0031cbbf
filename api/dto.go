/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers and the domain packages, not in DTOs.
  DTOs are pure data carriers.
*/
package api

import (
	"time"

	"github.com/controlstage/crew-engine/calendar"
	"github.com/controlstage/crew-engine/expense"
	"github.com/controlstage/crew-engine/notify"
	"github.com/controlstage/crew-engine/overtime"
	"github.com/controlstage/crew-engine/schedule"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// OVERTIME
// =============================================================================

// CandidateDTO is an overtime candidate derived from a completed check-in.
type CandidateDTO struct {
	ID                 string `json:"id"`
	Kind               string `json:"kind"`
	Date               string `json:"date"`
	ScheduledMinutes   int    `json:"scheduled_minutes"`
	WorkedMinutes      int    `json:"worked_minutes"`
	ExcessMinutes      int    `json:"excess_minutes"`
	RequestableMinutes int    `json:"requestable_minutes"`
}

// SubmitOvertimeRequest is the body for submitting an overtime claim.
type SubmitOvertimeRequest struct {
	ShiftID *string `json:"shift_id,omitempty"`
	EventID *string `json:"event_id,omitempty"`
	Hours   int     `json:"hours"`
	Minutes int     `json:"minutes"`
	Note    string  `json:"note"`
}

// EditOvertimeRequest is the body for an owner edit of a pending claim.
type EditOvertimeRequest struct {
	EditorID string `json:"editor_id"`
	Hours    int    `json:"hours"`
	Minutes  int    `json:"minutes"`
	Note     string `json:"note"`
}

// ReviewRequest is the body for reviewer approve/reject actions.
type ReviewRequest struct {
	ReviewerID string `json:"reviewer_id"`
}

// OvertimeRequestDTO represents a claim in API responses.
type OvertimeRequestDTO struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"owner_id"`
	ShiftID     *string `json:"shift_id,omitempty"`
	EventID     *string `json:"event_id,omitempty"`
	Minutes     int     `json:"minutes"`
	HourlyRate  string  `json:"hourly_rate"`
	TotalAmount string  `json:"total_amount"`
	Note        string  `json:"note"`
	Status      string  `json:"status"`
	ReviewedBy  *string `json:"reviewed_by,omitempty"`
	ReviewedAt  *string `json:"reviewed_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func toOvertimeRequestDTO(r *overtime.Request) OvertimeRequestDTO {
	return OvertimeRequestDTO{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		ShiftID:     r.ShiftID,
		EventID:     r.EventID,
		Minutes:     r.Minutes,
		HourlyRate:  r.HourlyRate.StringFixed(2),
		TotalAmount: r.TotalAmount.StringFixed(2),
		Note:        r.Note,
		Status:      string(r.Status),
		ReviewedBy:  r.ReviewedBy,
		ReviewedAt:  rfc3339Ptr(r.ReviewedAt),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}

func toCandidateDTO(c overtime.Candidate) CandidateDTO {
	return CandidateDTO{
		ID:                 c.ID,
		Kind:               string(c.Kind),
		Date:               c.Date.Format("2006-01-02"),
		ScheduledMinutes:   c.ScheduledMinutes,
		WorkedMinutes:      c.WorkedMinutes,
		ExcessMinutes:      c.ExcessMinutes,
		RequestableMinutes: c.RequestableMinutes,
	}
}

// =============================================================================
// EXPENSES
// =============================================================================

// ExpenseReportDTO represents a reimbursement claim in API responses.
type ExpenseReportDTO struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"owner_id"`
	ItemID      string  `json:"item_id"`
	ReferenceAt string  `json:"reference_at"`
	Amount      string  `json:"amount"`
	Description string  `json:"description"`
	ReceiptKey  string  `json:"receipt_key,omitempty"`
	Status      string  `json:"status"`
	ReviewedBy  *string `json:"reviewed_by,omitempty"`
	ReviewedAt  *string `json:"reviewed_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func toExpenseReportDTO(r *expense.Report) ExpenseReportDTO {
	return ExpenseReportDTO{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		ItemID:      r.ItemID,
		ReferenceAt: r.ReferenceAt.Format(time.RFC3339),
		Amount:      r.Amount.StringFixed(2),
		Description: r.Description,
		ReceiptKey:  r.ReceiptKey,
		Status:      string(r.Status),
		ReviewedBy:  r.ReviewedBy,
		ReviewedAt:  rfc3339Ptr(r.ReviewedAt),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

// =============================================================================
// CALENDAR
// =============================================================================

// CalendarItemDTO is a schedule item inside a day cell.
type CalendarItemDTO struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
	Label  string `json:"label,omitempty"`
}

// CalendarDayDTO is a single cell of the 42-cell month grid.
type CalendarDayDTO struct {
	Date       string            `json:"date"`
	Membership string            `json:"membership"`
	IsToday    bool              `json:"is_today"`
	Items      []CalendarItemDTO `json:"items"`
}

func toCalendarDayDTO(d calendar.Day) CalendarDayDTO {
	items := make([]CalendarItemDTO, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, CalendarItemDTO{ID: it.ID, Kind: it.Kind, Status: it.Status, Label: it.Label})
	}
	return CalendarDayDTO{
		Date:       string(d.Key),
		Membership: string(d.Membership),
		IsToday:    d.IsToday,
		Items:      items,
	}
}

// =============================================================================
// SCHEDULE
// =============================================================================

// CreateItemRequest is the body for creating a shift or event.
type CreateItemRequest struct {
	OwnerID          string `json:"owner_id"`
	Kind             string `json:"kind"`
	StartsAt         string `json:"starts_at"` // RFC 3339
	ScheduledMinutes int    `json:"scheduled_minutes"`
	Venue            string `json:"venue,omitempty"`
}

// CheckInRequest identifies the crew member checking in or out.
type CheckInRequest struct {
	OwnerID string `json:"owner_id"`
}

// ScheduleItemDTO represents a shift or event in API responses.
type ScheduleItemDTO struct {
	ID               string `json:"id"`
	OwnerID          string `json:"owner_id"`
	Kind             string `json:"kind"`
	Status           string `json:"status"`
	StartsAt         string `json:"starts_at"`
	ScheduledMinutes int    `json:"scheduled_minutes"`
	Venue            string `json:"venue,omitempty"`
}

func toScheduleItemDTO(it *schedule.Item) ScheduleItemDTO {
	return ScheduleItemDTO{
		ID:               it.ID,
		OwnerID:          it.OwnerID,
		Kind:             string(it.Kind),
		Status:           string(it.Status),
		StartsAt:         it.StartsAt.Format(time.RFC3339),
		ScheduledMinutes: it.ScheduledMinutes,
		Venue:            it.Venue,
	}
}

// CheckInDTO represents a check-in in API responses.
type CheckInDTO struct {
	ID            string  `json:"id"`
	ItemID        string  `json:"item_id"`
	CheckedInAt   string  `json:"checked_in_at"`
	CheckedOutAt  *string `json:"checked_out_at,omitempty"`
	WorkedMinutes int     `json:"worked_minutes"`
}

func toCheckInDTO(ci *schedule.CheckIn) CheckInDTO {
	return CheckInDTO{
		ID:            ci.ID,
		ItemID:        ci.ItemID,
		CheckedInAt:   ci.CheckedInAt.Format(time.RFC3339),
		CheckedOutAt:  rfc3339Ptr(ci.CheckedOutAt),
		WorkedMinutes: ci.WorkedMinutes,
	}
}

// =============================================================================
// NOTIFICATIONS
// =============================================================================

// NotificationDTO is a single inbox entry.
type NotificationDTO struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

func toNotificationDTO(n notify.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID,
		Kind:      string(n.Kind),
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

func rfc3339Ptr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
