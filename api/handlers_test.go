package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/controlstage/crew-engine/api"
	"github.com/controlstage/crew-engine/config"
	"github.com/controlstage/crew-engine/overtime"
	"github.com/controlstage/crew-engine/schedule"
	"github.com/controlstage/crew-engine/store/memory"
)

var testNow = time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	store   *memory.Store
	handler *api.Handler
	router  http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st := memory.New()
	h := api.NewHandler(st, zap.NewNop(), config.UploadConfig{
		MaxBytes:     10 << 20,
		MaxDimension: 1920,
		Quality:      85,
	})
	h.Clock = func() time.Time { return testNow }
	return &testEnv{store: st, handler: h, router: api.NewRouter(h, []string{"*"})}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func (e *testEnv) authorize(t *testing.T, crewID, rate string) {
	t.Helper()
	require.NoError(t, e.store.SaveAuthorization(context.Background(), &overtime.Authorization{
		OwnerID:    crewID,
		Enabled:    true,
		HourlyRate: decimal.RequireFromString(rate),
		UpdatedAt:  testNow,
	}))
}

func (e *testEnv) seedItem(t *testing.T, crewID string, kind schedule.Kind, startsAt time.Time, scheduledMinutes int) *schedule.Item {
	t.Helper()
	item := schedule.NewItem(crewID, kind, startsAt, scheduledMinutes, "North depot", testNow)
	item.Status = schedule.StatusConfirmed
	require.NoError(t, e.store.SaveItem(context.Background(), item))
	return item
}

// =============================================================================
// OVERTIME
// =============================================================================

func TestSubmitOvertime(t *testing.T) {
	env := newTestEnv(t)
	env.authorize(t, "crew-1", "20")

	rec := env.do(t, http.MethodPost, "/api/crew/crew-1/overtime", api.SubmitOvertimeRequest{
		Hours: 1, Minutes: 30, Note: "load-out ran long",
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	dto := decodeBody[api.OvertimeRequestDTO](t, rec)
	assert.Equal(t, "crew-1", dto.OwnerID)
	assert.Equal(t, 90, dto.Minutes)
	assert.Equal(t, "20.00", dto.HourlyRate)
	assert.Equal(t, "30.00", dto.TotalAmount)
	assert.Equal(t, "pending", dto.Status)
}

func TestSubmitOvertime_NotAuthorized(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/crew/crew-1/overtime", api.SubmitOvertimeRequest{
		Hours: 1, Minutes: 0, Note: "n",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())
}

func TestSubmitOvertime_Validation(t *testing.T) {
	env := newTestEnv(t)
	env.authorize(t, "crew-1", "20")

	cases := []struct {
		name string
		body api.SubmitOvertimeRequest
	}{
		{"below half-hour floor", api.SubmitOvertimeRequest{Hours: 0, Minutes: 0, Note: "n"}},
		{"off the half-hour step", api.SubmitOvertimeRequest{Hours: 1, Minutes: 20, Note: "n"}},
		{"missing note", api.SubmitOvertimeRequest{Hours: 1, Minutes: 0, Note: "  "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/crew/crew-1/overtime", tc.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
		})
	}
}

func TestOvertimeReviewFlow(t *testing.T) {
	env := newTestEnv(t)
	env.authorize(t, "crew-1", "20")

	rec := env.do(t, http.MethodPost, "/api/crew/crew-1/overtime", api.SubmitOvertimeRequest{
		Hours: 1, Minutes: 0, Note: "n",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	claim := decodeBody[api.OvertimeRequestDTO](t, rec)

	rec = env.do(t, http.MethodPost, "/api/overtime/"+claim.ID+"/approve", api.ReviewRequest{ReviewerID: "mgr-1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	approved := decodeBody[api.OvertimeRequestDTO](t, rec)
	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, "mgr-1", *approved.ReviewedBy)

	// a second review hits the terminal state
	rec = env.do(t, http.MethodPost, "/api/overtime/"+claim.ID+"/reject", api.ReviewRequest{ReviewerID: "mgr-2"})
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	// the owner got an inbox entry
	rec = env.do(t, http.MethodGet, "/api/crew/crew-1/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	inbox := decodeBody[[]api.NotificationDTO](t, rec)
	require.Len(t, inbox, 1)
	assert.Equal(t, "overtime_reviewed", inbox[0].Kind)
	assert.False(t, inbox[0].Read)

	rec = env.do(t, http.MethodPost, "/api/notifications/"+inbox[0].ID+"/read", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestEditOvertime(t *testing.T) {
	env := newTestEnv(t)
	env.authorize(t, "crew-1", "20")

	rec := env.do(t, http.MethodPost, "/api/crew/crew-1/overtime", api.SubmitOvertimeRequest{
		Hours: 0, Minutes: 30, Note: "n",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	claim := decodeBody[api.OvertimeRequestDTO](t, rec)

	t.Run("owner edit while pending", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/overtime/"+claim.ID, api.EditOvertimeRequest{
			EditorID: "crew-1", Hours: 1, Minutes: 0, Note: "updated",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		edited := decodeBody[api.OvertimeRequestDTO](t, rec)
		assert.Equal(t, 60, edited.Minutes)
		assert.Equal(t, "20.00", edited.TotalAmount)
	})

	t.Run("non-owner edit forbidden", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/overtime/"+claim.ID, api.EditOvertimeRequest{
			EditorID: "crew-2", Hours: 1, Minutes: 0, Note: "mine now",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())
	})

	t.Run("edit after approval conflicts", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/overtime/"+claim.ID+"/approve", api.ReviewRequest{ReviewerID: "mgr-1"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, http.MethodPut, "/api/overtime/"+claim.ID, api.EditOvertimeRequest{
			EditorID: "crew-1", Hours: 2, Minutes: 0, Note: "too late",
		})
		assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	})

	t.Run("unknown claim is 404", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/overtime/ot-missing", api.EditOvertimeRequest{
			EditorID: "crew-1", Hours: 1, Minutes: 0, Note: "n",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListCandidates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item := env.seedItem(t, "crew-1", schedule.KindWarehouse, testNow.Add(-10*time.Hour), 480)
	ci := schedule.NewCheckIn("crew-1", item.ID, testNow.Add(-10*time.Hour))
	require.NoError(t, ci.CheckOut(testNow.Add(-65*time.Minute))) // 535 worked, 55 excess
	require.NoError(t, env.store.SaveCheckIn(ctx, ci))

	rec := env.do(t, http.MethodGet, "/api/crew/crew-1/candidates", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cands := decodeBody[[]api.CandidateDTO](t, rec)
	require.Len(t, cands, 1)
	assert.Equal(t, item.ID, cands[0].ID)
	assert.Equal(t, 55, cands[0].ExcessMinutes)
	assert.Equal(t, 30, cands[0].RequestableMinutes)
}

// =============================================================================
// EXPENSES
// =============================================================================

func receiptPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 60, 80))
	for y := 0; y < 80; y++ {
		for x := 0; x < 60; x++ {
			img.Set(x, y, color.RGBA{R: uint8(3 * x), G: uint8(3 * y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartExpense(t *testing.T, itemID, amount, description string, receipt []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("item_id", itemID))
	require.NoError(t, mw.WriteField("amount", amount))
	require.NoError(t, mw.WriteField("description", description))
	fw, err := mw.CreateFormFile("receipt", "receipt.png")
	require.NoError(t, err)
	_, err = fw.Write(receipt)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func (e *testEnv) submitExpense(t *testing.T, crewID string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/crew/%s/expenses", crewID), body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitExpense(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item := env.seedItem(t, "crew-1", schedule.KindWarehouse, testNow.Add(-26*time.Hour), 480)
	ci := schedule.NewCheckIn("crew-1", item.ID, testNow.Add(-26*time.Hour))
	require.NoError(t, env.store.SaveCheckIn(ctx, ci))

	body, contentType := multipartExpense(t, item.ID, "18.40", "parking at venue", receiptPNG(t))
	rec := env.submitExpense(t, "crew-1", body, contentType)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	dto := decodeBody[api.ExpenseReportDTO](t, rec)
	assert.Equal(t, "18.40", dto.Amount)
	assert.Equal(t, "pending", dto.Status)
	assert.NotEmpty(t, dto.ReceiptKey)

	// the compressed receipt is served back as JPEG
	fetch := env.do(t, http.MethodGet, "/api/"+dto.ReceiptKey, nil)
	require.Equal(t, http.StatusOK, fetch.Code)
	assert.Equal(t, "image/jpeg", fetch.Header().Get("Content-Type"))
	_, err := jpeg.Decode(bytes.NewReader(fetch.Body.Bytes()))
	assert.NoError(t, err)
}

func TestSubmitExpense_WindowClosed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// checked in 49 hours ago, past the 48-hour window
	item := env.seedItem(t, "crew-1", schedule.KindWarehouse, testNow.Add(-49*time.Hour), 480)
	ci := schedule.NewCheckIn("crew-1", item.ID, testNow.Add(-49*time.Hour))
	require.NoError(t, env.store.SaveCheckIn(ctx, ci))

	body, contentType := multipartExpense(t, item.ID, "18.40", "parking", receiptPNG(t))
	rec := env.submitExpense(t, "crew-1", body, contentType)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
}

func TestSubmitExpense_EventUsesStartDate(t *testing.T) {
	env := newTestEnv(t)

	// the event started 47 hours ago and has no check-in; still inside
	item := env.seedItem(t, "crew-1", schedule.KindEvent, testNow.Add(-47*time.Hour), 480)

	body, contentType := multipartExpense(t, item.ID, "12.00", "crew meal", receiptPNG(t))
	rec := env.submitExpense(t, "crew-1", body, contentType)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestSubmitExpense_BadReceipt(t *testing.T) {
	env := newTestEnv(t)
	item := env.seedItem(t, "crew-1", schedule.KindEvent, testNow, 480)

	body, contentType := multipartExpense(t, item.ID, "12.00", "crew meal", []byte("not an image"))
	rec := env.submitExpense(t, "crew-1", body, contentType)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestExpenseReviewFlow(t *testing.T) {
	env := newTestEnv(t)
	item := env.seedItem(t, "crew-1", schedule.KindEvent, testNow.Add(-time.Hour), 480)

	body, contentType := multipartExpense(t, item.ID, "18.40", "parking", receiptPNG(t))
	rec := env.submitExpense(t, "crew-1", body, contentType)
	require.Equal(t, http.StatusCreated, rec.Code)
	report := decodeBody[api.ExpenseReportDTO](t, rec)

	rec = env.do(t, http.MethodPost, "/api/expenses/"+report.ID+"/reject", api.ReviewRequest{ReviewerID: "mgr-1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rejected := decodeBody[api.ExpenseReportDTO](t, rec)
	assert.Equal(t, "rejected", rejected.Status)

	rec = env.do(t, http.MethodPost, "/api/expenses/"+report.ID+"/approve", api.ReviewRequest{ReviewerID: "mgr-2"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/crew/crew-1/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	inbox := decodeBody[[]api.NotificationDTO](t, rec)
	require.Len(t, inbox, 1)
	assert.Equal(t, "expense_reviewed", inbox[0].Kind)
}

// =============================================================================
// SCHEDULE & CALENDAR
// =============================================================================

func TestCheckInCheckOutFlow(t *testing.T) {
	env := newTestEnv(t)
	item := env.seedItem(t, "crew-1", schedule.KindWarehouse, testNow, 480)

	rec := env.do(t, http.MethodPost, "/api/schedule/"+item.ID+"/checkin", api.CheckInRequest{OwnerID: "crew-1"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	ci := decodeBody[api.CheckInDTO](t, rec)
	assert.Nil(t, ci.CheckedOutAt)

	// double check-in conflicts
	rec = env.do(t, http.MethodPost, "/api/schedule/"+item.ID+"/checkin", api.CheckInRequest{OwnerID: "crew-1"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	env.handler.Clock = func() time.Time { return testNow.Add(9 * time.Hour) }
	rec = env.do(t, http.MethodPost, "/api/schedule/"+item.ID+"/checkout", api.CheckInRequest{OwnerID: "crew-1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	closed := decodeBody[api.CheckInDTO](t, rec)
	require.NotNil(t, closed.CheckedOutAt)
	assert.Equal(t, 540, closed.WorkedMinutes)
}

func TestCalendar(t *testing.T) {
	env := newTestEnv(t)

	env.seedItem(t, "crew-1", schedule.KindWarehouse,
		time.Date(2024, time.February, 14, 8, 0, 0, 0, time.UTC), 480)
	env.seedItem(t, "crew-1", schedule.KindEvent,
		time.Date(2024, time.February, 14, 18, 0, 0, 0, time.UTC), 240)

	rec := env.do(t, http.MethodGet, "/api/crew/crew-1/calendar?year=2024&month=2", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	grid := decodeBody[[]api.CalendarDayDTO](t, rec)
	require.Len(t, grid, 42)
	assert.Equal(t, "2024-01-29", grid[0].Date)
	assert.Equal(t, "2024-03-10", grid[41].Date)

	var valentines api.CalendarDayDTO
	for _, d := range grid {
		if d.Date == "2024-02-14" {
			valentines = d
		}
	}
	assert.Len(t, valentines.Items, 2)

	t.Run("kind filter", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/crew/crew-1/calendar?year=2024&month=2&kind=event", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		grid := decodeBody[[]api.CalendarDayDTO](t, rec)
		for _, d := range grid {
			if d.Date == "2024-02-14" {
				require.Len(t, d.Items, 1)
				assert.Equal(t, "event", d.Items[0].Kind)
			}
		}
	})

	t.Run("missing month is 400", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/crew/crew-1/calendar?year=2024", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
