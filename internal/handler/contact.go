package handler

import (
	"net/http"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/maisonlila/restaurant-booking/internal/booking"
	"github.com/maisonlila/restaurant-booking/internal/model"
	"github.com/maisonlila/restaurant-booking/internal/queue"
	"github.com/maisonlila/restaurant-booking/internal/repository"
	queue_publisher "github.com/maisonlila/restaurant-booking/internal/service"
)

var contactEmailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ContactHandler handles the contact form and newsletter subscriptions.
type ContactHandler struct {
	ContactRepo    *repository.ContactRepo
	SubscriberRepo *repository.SubscriberRepo
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(contact *repository.ContactRepo, subs *repository.SubscriberRepo) *ContactHandler {
	return &ContactHandler{ContactRepo: contact, SubscriberRepo: subs}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /v1/contact.  The message is stored first; the staff
// notification is published best-effort afterwards, so a broker outage
// never loses a message.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	var fields []booking.FieldError
	if utf8.RuneCountInString(req.Name) < 2 {
		fields = append(fields, booking.FieldError{Field: "name", Message: "name must be at least 2 characters"})
	}
	if !contactEmailRe.MatchString(req.Email) {
		fields = append(fields, booking.FieldError{Field: "email", Message: "invalid email address"})
	}
	if utf8.RuneCountInString(req.Subject) < 5 {
		fields = append(fields, booking.FieldError{Field: "subject", Message: "subject must be at least 5 characters"})
	}
	if utf8.RuneCountInString(req.Message) < 20 {
		fields = append(fields, booking.FieldError{Field: "message", Message: "message must be at least 20 characters"})
	}
	if len(fields) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid contact message", "errors": fields})
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	}
	ctx := c.Request().Context()
	if err := h.ContactRepo.Create(ctx, msg); err != nil {
		c.Logger().Errorf("store contact message: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	// Best-effort staff notification; the stored message is authoritative.
	_ = queue_publisher.PublishContactReceived(ctx, queue.ContactReceivedEvent{
		Name:       msg.Name,
		Email:      msg.Email,
		Subject:    msg.Subject,
		Body:       msg.Body,
		ReceivedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

type newsletterRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /v1/newsletter.  Subscribing an address twice is a
// success, not an error.
func (h *ContactHandler) Subscribe(c echo.Context) error {
	var req newsletterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if !contactEmailRe.MatchString(req.Email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid email address"})
	}
	if err := h.SubscriberRepo.Subscribe(c.Request().Context(), req.Email); err != nil {
		c.Logger().Errorf("subscribe %s: %v", req.Email, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
