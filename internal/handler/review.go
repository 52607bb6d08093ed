package handler

import (
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/maisonlila/restaurant-booking/internal/booking"
	"github.com/maisonlila/restaurant-booking/internal/model"
	"github.com/maisonlila/restaurant-booking/internal/repository"
)

// ReviewHandler serves guest reviews: the published list and the public
// submission form.
type ReviewHandler struct {
	Repo *repository.ReviewRepo
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(repo *repository.ReviewRepo) *ReviewHandler {
	return &ReviewHandler{Repo: repo}
}

// List handles GET /v1/reviews: published reviews, newest first.
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.Repo.ListPublished(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list reviews: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	items := make([]echo.Map, 0, len(reviews))
	for _, rv := range reviews {
		items = append(items, echo.Map{
			"author":     rv.Author,
			"rating":     rv.Rating,
			"comment":    rv.Comment,
			"created_at": rv.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

type reviewRequest struct {
	Author  string `json:"author"`
	Email   string `json:"email"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Create handles POST /v1/reviews.  Submissions start unpublished and wait
// for moderation, so the response is 202 rather than 200.
func (h *ReviewHandler) Create(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	var fields []booking.FieldError
	if utf8.RuneCountInString(req.Author) < 2 {
		fields = append(fields, booking.FieldError{Field: "author", Message: "name must be at least 2 characters"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		fields = append(fields, booking.FieldError{Field: "rating", Message: "rating must be between 1 and 5"})
	}
	if utf8.RuneCountInString(req.Comment) < 10 {
		fields = append(fields, booking.FieldError{Field: "comment", Message: "comment must be at least 10 characters"})
	}
	if len(fields) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid review", "errors": fields})
	}

	rv := &model.Review{
		Author:  req.Author,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if req.Email != "" {
		email := req.Email
		rv.Email = &email
	}
	if err := h.Repo.Create(c.Request().Context(), rv); err != nil {
		c.Logger().Errorf("create review: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusAccepted, echo.Map{
		"message": "review submitted for moderation",
	})
}
