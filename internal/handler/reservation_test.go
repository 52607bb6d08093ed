package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisonlila/restaurant-booking/internal/booking"
	"github.com/maisonlila/restaurant-booking/internal/model"
)

// stubStore backs the workflow with an in-memory covers tally keyed by
// (date, slot).
type stubStore struct {
	covers  map[string]int
	created []*model.Reservation
}

func newStubStore() *stubStore { return &stubStore{covers: map[string]int{}} }

func coversKey(date time.Time, slot string) string {
	return date.Format("2006-01-02") + "|" + slot
}

func (s *stubStore) CreateIfAvailable(_ context.Context, res *model.Reservation, limit int) error {
	key := coversKey(res.Date, res.TimeSlot)
	if s.covers[key]+res.PartySize > limit {
		return booking.ErrSlotUnavailable
	}
	s.covers[key] += res.PartySize
	s.created = append(s.created, res)
	return nil
}

func (s *stubStore) SumActiveCovers(_ context.Context, date time.Time, slot string) (int, error) {
	return s.covers[coversKey(date, slot)], nil
}

func postReservation(t *testing.T, h *ReservationHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Create(e.NewContext(req, rec)))
	return rec
}

// nearDate returns a bookable date a week out, as sent on the wire.
func nearDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func reservationBody(date string) string {
	b, _ := json.Marshal(map[string]any{
		"date":      date,
		"time":      "19:30",
		"guests":    4,
		"firstName": "Marie",
		"lastName":  "Dupont",
		"email":     "marie.dupont@example.com",
		"phone":     "0612345678",
	})
	return string(b)
}

func TestReservationCreateSuccess(t *testing.T) {
	store := newStubStore()
	h := NewReservationHandler(booking.NewWorkflow(store, nil))

	rec := postReservation(t, h, reservationBody(nearDate()))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success     bool `json:"success"`
		Reservation struct {
			ID        string `json:"id"`
			Date      string `json:"date"`
			Time      string `json:"time"`
			Guests    int    `json:"guests"`
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Status    string `json:"status"`
		} `json:"reservation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Regexp(t, `^ML\d{9}$`, resp.Reservation.ID)
	assert.Equal(t, nearDate(), resp.Reservation.Date)
	assert.Equal(t, "19:30", resp.Reservation.Time)
	assert.Equal(t, 4, resp.Reservation.Guests)
	assert.Equal(t, "Marie", resp.Reservation.FirstName)
	assert.Equal(t, "Dupont", resp.Reservation.LastName)
	assert.Equal(t, model.StatusPending, resp.Reservation.Status)
	require.Len(t, store.created, 1)
}

func TestReservationCreateValidationErrors(t *testing.T) {
	store := newStubStore()
	h := NewReservationHandler(booking.NewWorkflow(store, nil))

	body := `{"date":"` + nearDate() + `","time":"19:30","guests":12,"firstName":"M","lastName":"Dupont","email":"bad","phone":"06"}`
	rec := postReservation(t, h, body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string               `json:"message"`
		Errors  []booking.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid reservation request", resp.Message)
	assert.NotEmpty(t, resp.Errors)
	assert.Empty(t, store.created)
}

func TestReservationCreatePastDate(t *testing.T) {
	h := NewReservationHandler(booking.NewWorkflow(newStubStore(), nil))

	rec := postReservation(t, h, reservationBody("2020-01-01"))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cannot book a date in the past", resp["message"])
	assert.NotContains(t, resp, "errors")
}

func TestReservationCreateFullSlot(t *testing.T) {
	store := newStubStore()
	date, err := time.ParseInLocation("2006-01-02", nearDate(), time.Local)
	require.NoError(t, err)
	store.covers[coversKey(date, "19:30")] = model.SlotCapacity

	h := NewReservationHandler(booking.NewWorkflow(store, nil))
	rec := postReservation(t, h, reservationBody(nearDate()))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReservationCreateMalformedBody(t *testing.T) {
	h := NewReservationHandler(booking.NewWorkflow(newStubStore(), nil))
	rec := postReservation(t, h, `{"guests":"four"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAvailabilityRequiresDate(t *testing.T) {
	h := NewReservationHandler(booking.NewWorkflow(newStubStore(), nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/reservations", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Availability(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAvailabilityRejectsBadDate(t *testing.T) {
	h := NewReservationHandler(booking.NewWorkflow(newStubStore(), nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/reservations?date=01-07-2024", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Availability(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAvailabilityReportsEverySlot(t *testing.T) {
	store := newStubStore()
	date, err := time.ParseInLocation("2006-01-02", nearDate(), time.Local)
	require.NoError(t, err)
	store.covers[coversKey(date, "12:00")] = model.SlotCapacity

	h := NewReservationHandler(booking.NewWorkflow(store, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/reservations?date="+nearDate(), nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Availability(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Date  string                     `json:"date"`
		Slots []booking.SlotAvailability `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, nearDate(), resp.Date)
	require.Len(t, resp.Slots, 11)

	byTime := make(map[string]bool, len(resp.Slots))
	for _, s := range resp.Slots {
		byTime[s.Time] = s.Available
	}
	assert.False(t, byTime["12:00"])
	assert.True(t, byTime["19:30"])
}
