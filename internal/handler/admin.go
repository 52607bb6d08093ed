package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/maisonlila/restaurant-booking/internal/model"
	"github.com/maisonlila/restaurant-booking/internal/repository"
	queue_publisher "github.com/maisonlila/restaurant-booking/internal/service"
)

// AdminHandler groups the staff-only operations: the reservation book and
// review moderation.  JWT and role checks are applied by middleware before
// any of these run.
type AdminHandler struct {
	Reservations *repository.ReservationRepo
	Reviews      *repository.ReviewRepo
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(reservations *repository.ReservationRepo, reviews *repository.ReviewRepo) *AdminHandler {
	return &AdminHandler{Reservations: reservations, Reviews: reviews}
}

// ListReservations handles GET /v1/admin/reservations?date=YYYY-MM-DD: the
// full book for one service day, all statuses included.
func (h *AdminHandler) ListReservations(c echo.Context) error {
	raw := c.QueryParam("date")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "date is required"})
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "date must be formatted YYYY-MM-DD"})
	}

	items, err := h.Reservations.ListByDate(c.Request().Context(), date)
	if err != nil {
		c.Logger().Errorf("list reservations: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	covers := 0
	for i := range items {
		if items[i].Active() {
			covers += items[i].PartySize
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"date":          raw,
		"items":         items,
		"active_covers": covers,
	})
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateReservationStatus handles PATCH /v1/admin/reservations/:id/status.
// Allowed transitions: PENDING→CONFIRMED, PENDING|CONFIRMED→CANCELLED.  A
// cancellation also notifies the guest, best-effort.
func (h *AdminHandler) UpdateReservationStatus(c echo.Context) error {
	id := c.Param("id")
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if req.Status != model.StatusConfirmed && req.Status != model.StatusCancelled {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "status must be CONFIRMED or CANCELLED"})
	}

	ctx := c.Request().Context()
	res, err := h.Reservations.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrReservationNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "reservation not found"})
		case errors.Is(err, repository.ErrInvalidTransition):
			return c.JSON(http.StatusConflict, echo.Map{"message": "transition not allowed from current status"})
		default:
			c.Logger().Errorf("update reservation status: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
		}
	}

	if req.Status == model.StatusCancelled {
		// Guest notification is best-effort, same as the confirmation path.
		_ = queue_publisher.PublishReservationCancelled(ctx, res)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":     res.ID,
		"status": res.Status,
	})
}

// PublishReview handles PATCH /v1/admin/reviews/:id/publish.
func (h *AdminHandler) PublishReview(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid review id"})
	}
	if err := h.Reviews.Publish(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "review not found"})
		}
		c.Logger().Errorf("publish review: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "published": true})
}
