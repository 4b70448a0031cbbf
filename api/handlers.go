/*
handlers.go - HTTP API handlers for the crew engine

PURPOSE:
  Exposes the crew engine via REST API. Handles HTTP request/response,
  JSON and multipart parsing, and delegates to domain logic.

ENDPOINTS:
  Overtime:
    GET  /api/crew/{id}/candidates       Claimable overtime candidates
    POST /api/crew/{id}/overtime         Submit a claim
    GET  /api/crew/{id}/overtime         List own claims
    PUT  /api/overtime/{id}              Owner edit (pending only)
    POST /api/overtime/{id}/approve      Reviewer approval
    POST /api/overtime/{id}/reject       Reviewer rejection

  Expenses:
    POST /api/crew/{id}/expenses         Submit report + receipt (multipart)
    GET  /api/crew/{id}/expenses         List own reports
    POST /api/expenses/{id}/approve      Reviewer approval
    POST /api/expenses/{id}/reject       Reviewer rejection
    GET  /api/receipts/{key}             Serve compressed receipt

  Schedule & calendar:
    POST /api/schedule                   Create shift/event
    GET  /api/crew/{id}/schedule         List items
    POST /api/schedule/{id}/checkin      Open a check-in
    POST /api/schedule/{id}/checkout     Close it, derive worked minutes
    GET  /api/crew/{id}/calendar         42-cell month grid

  Notifications:
    GET  /api/crew/{id}/notifications    Inbox
    POST /api/notifications/{id}/read    Mark read

ERROR HANDLING:
  Domain sentinels map to HTTP status via statusForError:
  - 400/422: Validation errors, invalid input
  - 403: Not authorized / not the owner
  - 404: Missing records
  - 409: Mutation of a non-pending request
  - 503: Transient authorization-lookup failures (retry)
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/controlstage/crew-engine/calendar"
	"github.com/controlstage/crew-engine/config"
	"github.com/controlstage/crew-engine/expense"
	"github.com/controlstage/crew-engine/imaging"
	"github.com/controlstage/crew-engine/notify"
	"github.com/controlstage/crew-engine/overtime"
	"github.com/controlstage/crew-engine/schedule"
	"github.com/controlstage/crew-engine/store"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store  store.Store
	Logger *zap.Logger
	Upload config.UploadConfig

	// Clock is overridable in tests.
	Clock func() time.Time
}

// NewHandler creates a new handler with the given store.
func NewHandler(st store.Store, logger *zap.Logger, upload config.UploadConfig) *Handler {
	return &Handler{
		Store:  st,
		Logger: logger,
		Upload: upload,
		Clock:  func() time.Time { return time.Now().UTC() },
	}
}

// =============================================================================
// OVERTIME HANDLERS
// =============================================================================

// ListCandidates derives claimable overtime candidates from completed
// check-ins. Candidates below the 30-minute floor are filtered out here so
// the client never offers an unclaimable row.
func (h *Handler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	crewID := chi.URLParam(r, "id")

	items, err := h.Store.ListItems(ctx, crewID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to list schedule items", err)
		return
	}
	checkIns, err := h.Store.ListCheckIns(ctx, crewID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to list check-ins", err)
		return
	}

	candidates := schedule.OvertimeCandidates(items, checkIns)
	dtos := make([]CandidateDTO, 0, len(candidates))
	for _, c := range candidates {
		dtos = append(dtos, toCandidateDTO(c))
	}
	h.writeJSON(w, http.StatusOK, dtos)
}

// SubmitOvertime validates, authorizes, prices and persists a claim.
func (h *Handler) SubmitOvertime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	crewID := chi.URLParam(r, "id")

	var req SubmitOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	totalHours, err := overtime.ValidateClaim(req.Hours, req.Minutes, req.Note)
	if err != nil {
		h.writeDomainError(w, "Invalid claim", err)
		return
	}

	pricing, err := overtime.AuthorizeAndPriceClaim(ctx, h.Store, crewID, totalHours)
	if err != nil {
		h.writeDomainError(w, "Claim not authorized", err)
		return
	}

	now := h.Clock()
	claim, err := overtime.NewRequest(crewID, req.ShiftID, req.EventID, req.Hours*60+req.Minutes, req.Note, *pricing, now)
	if err != nil {
		h.writeDomainError(w, "Invalid claim", err)
		return
	}

	if err := h.Store.SaveOvertimeRequest(ctx, claim); err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to save claim", err)
		return
	}

	h.Logger.Info("overtime claim submitted",
		zap.String("request_id", claim.ID),
		zap.String("owner_id", crewID),
		zap.Int("minutes", claim.Minutes),
		zap.String("amount", claim.TotalAmount.StringFixed(2)))

	h.writeJSON(w, http.StatusCreated, toOvertimeRequestDTO(claim))
}

// ListOvertime lists the crew member's own claims.
func (h *Handler) ListOvertime(w http.ResponseWriter, r *http.Request) {
	crewID := chi.URLParam(r, "id")

	reqs, err := h.Store.ListOvertimeRequests(r.Context(), crewID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to list claims", err)
		return
	}

	dtos := make([]OvertimeRequestDTO, 0, len(reqs))
	for i := range reqs {
		dtos = append(dtos, toOvertimeRequestDTO(&reqs[i]))
	}
	h.writeJSON(w, http.StatusOK, dtos)
}

// EditOvertime applies an owner edit to a pending claim.
func (h *Handler) EditOvertime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var body EditOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	claim, err := h.Store.GetOvertimeRequest(ctx, id)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to load claim", err)
		return
	}
	if claim == nil {
		h.writeError(w, http.StatusNotFound, "Claim not found", nil)
		return
	}

	if err := claim.EditByOwner(body.EditorID, body.Hours, body.Minutes, body.Note, h.Clock()); err != nil {
		h.writeDomainError(w, "Cannot edit claim", err)
		return
	}

	if err := h.Store.UpdateOvertimeRequest(ctx, claim); err != nil {
		h.writeUpdateError(w, "Failed to update claim", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toOvertimeRequestDTO(claim))
}

// ApproveOvertime moves a pending claim to approved.
func (h *Handler) ApproveOvertime(w http.ResponseWriter, r *http.Request) {
	h.reviewOvertime(w, r, overtime.StatusApproved)
}

// RejectOvertime moves a pending claim to rejected.
func (h *Handler) RejectOvertime(w http.ResponseWriter, r *http.Request) {
	h.reviewOvertime(w, r, overtime.StatusRejected)
}

func (h *Handler) reviewOvertime(w http.ResponseWriter, r *http.Request, next overtime.Status) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var body ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	claim, err := h.Store.GetOvertimeRequest(ctx, id)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to load claim", err)
		return
	}
	if claim == nil {
		h.writeError(w, http.StatusNotFound, "Claim not found", nil)
		return
	}

	now := h.Clock()
	if next == overtime.StatusApproved {
		err = claim.Approve(body.ReviewerID, now)
	} else {
		err = claim.Reject(body.ReviewerID, now)
	}
	if err != nil {
		h.writeDomainError(w, "Cannot review claim", err)
		return
	}

	if err := h.Store.UpdateOvertimeRequest(ctx, claim); err != nil {
		h.writeUpdateError(w, "Failed to update claim", err)
		return
	}

	h.notifyReviewed(ctx, claim.OwnerID, notify.KindOvertimeReviewed,
		fmt.Sprintf("Your overtime claim for %s was %s", formatMinutes(claim.Minutes), claim.Status), now)

	h.writeJSON(w, http.StatusOK, toOvertimeRequestDTO(claim))
}

// =============================================================================
// EXPENSE HANDLERS
// =============================================================================

// SubmitExpense accepts a multipart form with fields item_id, amount and
// description plus a "receipt" image file. The receipt is compressed before
// persistence; the submission window is measured from the item's check-in
// time (warehouse) or its start date (event).
func (h *Handler) SubmitExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	crewID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(h.Upload.MaxBytes); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid multipart form", err)
		return
	}

	itemID := r.FormValue("item_id")
	item, err := h.Store.GetItem(ctx, itemID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to load schedule item", err)
		return
	}
	if item == nil {
		h.writeError(w, http.StatusNotFound, "Schedule item not found", nil)
		return
	}

	amount, err := decimal.NewFromString(r.FormValue("amount"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid amount", err)
		return
	}

	checkIn, err := h.Store.GetCheckInByItem(ctx, itemID, crewID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to load check-in", err)
		return
	}

	file, _, err := r.FormFile("receipt")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Receipt image is required", err)
		return
	}
	defer file.Close()

	compressed, err := imaging.CompressReceipt(file, imaging.Options{
		MaxDimension: h.Upload.MaxDimension,
		Quality:      h.Upload.Quality,
	})
	if err != nil {
		h.writeDomainError(w, "Cannot process receipt image", err)
		return
	}

	now := h.Clock()
	ref := schedule.ExpenseReference(*item, checkIn)
	receiptKey := fmt.Sprintf("receipts/%s/%s-%d.jpg", crewID, itemID, now.UnixNano())

	report, err := expense.NewReport(crewID, itemID, ref, now, amount, r.FormValue("description"), receiptKey)
	if err != nil {
		h.writeDomainError(w, "Cannot submit expense", err)
		return
	}

	if err := h.Store.PutReceipt(ctx, receiptKey, compressed); err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to store receipt", err)
		return
	}
	if err := h.Store.SaveReport(ctx, report); err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to save expense report", err)
		return
	}

	h.Logger.Info("expense report submitted",
		zap.String("report_id", report.ID),
		zap.String("owner_id", crewID),
		zap.String("amount", report.Amount.StringFixed(2)),
		zap.Int("receipt_bytes", len(compressed)))

	h.writeJSON(w, http.StatusCreated, toExpenseReportDTO(report))
}

// ListExpenses lists the crew member's own reports.
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	crewID := chi.URLParam(r, "id")

	reports, err := h.Store.ListReports(r.Context(), crewID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to list expense reports", err)
		return
	}

	dtos := make([]ExpenseReportDTO, 0, len(reports))
	for i := range reports {
		dtos = append(dtos, toExpenseReportDTO(&reports[i]))
	}
	h.writeJSON(w, http.StatusOK, dtos)
}

// ApproveExpense moves a pending report to approved.
func (h *Handler) ApproveExpense(w http.ResponseWriter, r *http.Request) {
	h.reviewExpense(w, r, expense.StatusApproved)
}

// RejectExpense moves a pending report to rejected.
func (h *Handler) RejectExpense(w http.ResponseWriter, r *http.Request) {
	h.reviewExpense(w, r, expense.StatusRejected)
}

func (h *Handler) reviewExpense(w http.ResponseWriter, r *http.Request, next expense.Status) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var body ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	report, err := h.Store.GetReport(ctx, id)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to load expense report", err)
		return
	}
	if report == nil {
		h.writeError(w, http.StatusNotFound, "Expense report not found", nil)
		return
	}

	now := h.Clock()
	if next == expense.StatusApproved {
		err = report.Approve(body.ReviewerID, now)
	} else {
		err = report.Reject(body.ReviewerID, now)
	}
	if err != nil {
		h.writeDomainError(w, "Cannot review expense report", err)
		return
	}

	if err := h.Store.UpdateReport(ctx, report); err != nil {
		h.writeUpdateError(w, "Failed to update expense report", err)
		return
	}

	h.notifyReviewed(ctx, report.OwnerID, notify.KindExpenseReviewed,
		fmt.Sprintf("Your expense report over %s was %s", report.Amount.StringFixed(2), report.Status), now)

	h.writeJSON(w, http.StatusOK, toExpenseReportDTO(report))
}

// GetReceipt serves a stored compressed receipt.
func (h *Handler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	// receipt keys are stored with the "receipts/" prefix the route strips
	key := "receipts/" + chi.URLParam(r, "*")
	data, err := h.Store.GetReceipt(r.Context(), key)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to load receipt", err)
		return
	}
	if data == nil {
		h.writeError(w, http.StatusNotFound, "Receipt not found", nil)
		return
	}
	w.Header().Set("Content-Type", "image/jpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// =============================================================================
// SCHEDULE & CALENDAR HANDLERS
// =============================================================================

// CreateItem creates a shift or event.
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	kind := schedule.Kind(body.Kind)
	if kind != schedule.KindWarehouse && kind != schedule.KindEvent {
		h.writeError(w, http.StatusBadRequest, "Kind must be warehouse or event", nil)
		return
	}
	startsAt, err := time.Parse(time.RFC3339, body.StartsAt)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid starts_at (use RFC 3339)", err)
		return
	}

	item := schedule.NewItem(body.OwnerID, kind, startsAt, body.ScheduledMinutes, body.Venue, h.Clock())
	if err := h.Store.SaveItem(ctx, item); err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to save schedule item", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toScheduleItemDTO(item))
}

// ListSchedule lists the crew member's items.
func (h *Handler) ListSchedule(w http.ResponseWriter, r *http.Request) {
	crewID := chi.URLParam(r, "id")

	items, err := h.Store.ListItems(r.Context(), crewID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to list schedule items", err)
		return
	}

	dtos := make([]ScheduleItemDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, toScheduleItemDTO(&items[i]))
	}
	h.writeJSON(w, http.StatusOK, dtos)
}

// CheckIn opens a check-in against a schedule item.
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID := chi.URLParam(r, "id")

	var body CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	item, err := h.Store.GetItem(ctx, itemID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to load schedule item", err)
		return
	}
	if item == nil {
		h.writeError(w, http.StatusNotFound, "Schedule item not found", nil)
		return
	}

	existing, err := h.Store.GetCheckInByItem(ctx, itemID, body.OwnerID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to load check-in", err)
		return
	}
	if existing != nil {
		h.writeError(w, http.StatusConflict, "Already checked in", nil)
		return
	}

	ci := schedule.NewCheckIn(body.OwnerID, itemID, h.Clock())
	if err := h.Store.SaveCheckIn(ctx, ci); err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to save check-in", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCheckInDTO(ci))
}

// CheckOut closes a check-in and derives worked minutes.
func (h *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID := chi.URLParam(r, "id")

	var body CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ci, err := h.Store.GetCheckInByItem(ctx, itemID, body.OwnerID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to load check-in", err)
		return
	}
	if ci == nil {
		h.writeError(w, http.StatusNotFound, "Check-in not found", nil)
		return
	}

	if err := ci.CheckOut(h.Clock()); err != nil {
		h.writeError(w, http.StatusConflict, "Cannot check out", err)
		return
	}
	if err := h.Store.SaveCheckIn(ctx, ci); err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to save check-in", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCheckInDTO(ci))
}

// Calendar returns the 42-cell month grid for the crew member's schedule.
// Query params: year, month (required), kind, status (optional filters).
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	crewID := chi.URLParam(r, "id")

	var year int
	var month int
	if _, err := fmt.Sscanf(r.URL.Query().Get("year"), "%d", &year); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	if _, err := fmt.Sscanf(r.URL.Query().Get("month"), "%d", &month); err != nil || month < 1 || month > 12 {
		h.writeError(w, http.StatusBadRequest, "Invalid month", err)
		return
	}

	items, err := h.Store.ListItems(r.Context(), crewID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to list schedule items", err)
		return
	}

	byDate := make(map[calendar.DateKey][]calendar.Item)
	for _, it := range items {
		key := calendar.Key(it.StartsAt)
		byDate[key] = append(byDate[key], calendar.Item{
			ID:     it.ID,
			Kind:   string(it.Kind),
			Status: string(it.Status),
			Label:  it.Venue,
		})
	}

	var filters []calendar.FilterFunc
	if kind := r.URL.Query().Get("kind"); kind != "" {
		filters = append(filters, calendar.KindIs(kind))
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filters = append(filters, calendar.StatusIs(status))
	}

	grid := calendar.BuildMonthGrid(year, time.Month(month), byDate, h.Clock(), filters...)
	dtos := make([]CalendarDayDTO, 0, len(grid))
	for _, d := range grid {
		dtos = append(dtos, toCalendarDayDTO(d))
	}
	h.writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// NOTIFICATION HANDLERS
// =============================================================================

// ListNotifications returns the crew member's inbox, newest first.
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	crewID := chi.URLParam(r, "id")

	ns, err := h.Store.ListNotifications(r.Context(), crewID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to list notifications", err)
		return
	}

	dtos := make([]NotificationDTO, 0, len(ns))
	for _, n := range ns {
		dtos = append(dtos, toNotificationDTO(n))
	}
	h.writeJSON(w, http.StatusOK, dtos)
}

// MarkNotificationRead marks a single inbox entry read.
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Store.MarkNotificationRead(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Notification not found", nil)
			return
		}
		h.writeError(w, http.StatusInternalServerError, "Failed to mark notification read", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) notifyReviewed(ctx context.Context, ownerID string, kind notify.Kind, message string, now time.Time) {
	n := notify.New(ownerID, kind, message, now)
	if err := h.Store.SaveNotification(ctx, n); err != nil {
		// Review already succeeded; losing the inbox entry is not fatal.
		h.Logger.Warn("failed to save notification", zap.String("owner_id", ownerID), zap.Error(err))
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	h.writeJSON(w, status, resp)
}

// writeDomainError maps domain sentinels to HTTP status codes.
func (h *Handler) writeDomainError(w http.ResponseWriter, message string, err error) {
	h.writeError(w, statusForError(err), message, err)
}

// writeUpdateError handles a failed store update. A conflict means the row
// was reviewed between this caller's read and write.
func (h *Handler) writeUpdateError(w http.ResponseWriter, message string, err error) {
	if errors.Is(err, store.ErrConflict) {
		h.writeError(w, http.StatusConflict, message+": already reviewed", err)
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, message+": not found", err)
		return
	}
	h.writeError(w, http.StatusInternalServerError, message, err)
}

func statusForError(err error) int {
	switch {
	case overtime.IsRetryable(err):
		return http.StatusServiceUnavailable
	case errors.Is(err, overtime.ErrNotAuthorized),
		errors.Is(err, overtime.ErrNotRequestOwner):
		return http.StatusForbidden
	case errors.Is(err, overtime.ErrRequestImmutable),
		errors.Is(err, expense.ErrReportImmutable):
		return http.StatusConflict
	case errors.Is(err, imaging.ErrDecode):
		return http.StatusBadRequest
	case errors.Is(err, overtime.ErrInsufficientDuration),
		errors.Is(err, overtime.ErrInvalidIncrement),
		errors.Is(err, overtime.ErrMissingJustification),
		errors.Is(err, overtime.ErrInvalidRate),
		errors.Is(err, expense.ErrOutsideWindow),
		errors.Is(err, expense.ErrInvalidAmount),
		errors.Is(err, expense.ErrMissingDescription):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func formatMinutes(minutes int) string {
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}
