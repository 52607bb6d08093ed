package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/maisonlila/restaurant-booking/internal/booking"
)

// ReservationHandler exposes the public reservation endpoints: intake and
// the per-date availability probe.
type ReservationHandler struct {
	workflow *booking.Workflow
}

// NewReservationHandler constructs a ReservationHandler.  The workflow must
// be non-nil.
func NewReservationHandler(wf *booking.Workflow) *ReservationHandler {
	if wf == nil {
		panic("nil workflow passed to NewReservationHandler")
	}
	return &ReservationHandler{workflow: wf}
}

// reservationView is the public shape of a created reservation.  First and
// last name echo the request; the stored record only keeps the composed
// guest name.
type reservationView struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Guests    int    `json:"guests"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Status    string `json:"status"`
}

// Create handles POST /v1/reservations.  Responses:
//
//	200 {success:true, reservation:{...}} on success
//	400 {message, errors?} for validation failures
//	409 {message} when the slot cannot seat the party
//	500 {message} for storage failures
func (h *ReservationHandler) Create(c echo.Context) error {
	var req booking.Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	res, err := h.workflow.Create(c.Request().Context(), req)
	if err != nil {
		var ve *booking.ValidationError
		switch {
		case errors.As(err, &ve):
			body := echo.Map{"message": ve.Message}
			if len(ve.Fields) > 0 {
				body["errors"] = ve.Fields
			}
			return c.JSON(http.StatusBadRequest, body)
		case errors.Is(err, booking.ErrSlotUnavailable):
			return c.JSON(http.StatusConflict, echo.Map{"message": booking.ErrSlotUnavailable.Error()})
		default:
			c.Logger().Errorf("create reservation: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"reservation": reservationView{
			ID:        res.ID,
			Date:      res.Date.Format("2006-01-02"),
			Time:      res.TimeSlot,
			Guests:    res.PartySize,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Status:    res.Status,
		},
	})
}

// Availability handles GET /v1/reservations?date=YYYY-MM-DD.  It returns
// every catalog slot with an availability flag, each probed with a nominal
// party of one.
func (h *ReservationHandler) Availability(c echo.Context) error {
	raw := c.QueryParam("date")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "date is required"})
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "date must be formatted YYYY-MM-DD"})
	}

	slots, err := h.workflow.Availability(c.Request().Context(), date)
	if err != nil {
		c.Logger().Errorf("availability for %s: %v", raw, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"date":  raw,
		"slots": slots,
	})
}
