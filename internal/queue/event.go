// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into email.
package queue

import (
	"time"

	"github.com/maisonlila/restaurant-booking/internal/model"
)

// Queue names.  Each event type has its own durable queue.
const (
	ReservationCreatedQueue   = "reservation.created"
	ReservationCancelledQueue = "reservation.cancelled"
	ContactReceivedQueue      = "contact.received"
)

// ReservationCreatedEvent is published when the intake workflow persists a
// new reservation.  It carries everything the notification consumer needs
// to build the confirmation email without querying the database.
type ReservationCreatedEvent struct {
	ReservationID   string  `json:"reservation_id"`
	GuestName       string  `json:"guest_name"`
	Email           string  `json:"email"`
	Date            string  `json:"date"` // YYYY-MM-DD
	TimeSlot        string  `json:"time_slot"`
	PartySize       int     `json:"party_size"`
	SpecialRequests *string `json:"special_requests,omitempty"`
	CreatedAt       string  `json:"created_at"` // RFC3339
}

// NewReservationCreatedEvent builds the event from a persisted reservation.
func NewReservationCreatedEvent(res *model.Reservation) ReservationCreatedEvent {
	return ReservationCreatedEvent{
		ReservationID:   res.ID,
		GuestName:       res.GuestName,
		Email:           res.Email,
		Date:            res.Date.Format("2006-01-02"),
		TimeSlot:        res.TimeSlot,
		PartySize:       res.PartySize,
		SpecialRequests: res.SpecialRequests,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
}

// ReservationCancelledEvent is published when staff cancel a reservation.
type ReservationCancelledEvent struct {
	ReservationID string `json:"reservation_id"`
	GuestName     string `json:"guest_name"`
	Email         string `json:"email"`
	Date          string `json:"date"`
	TimeSlot      string `json:"time_slot"`
	CancelledAt   string `json:"cancelled_at"`
}

// NewReservationCancelledEvent builds the event from the cancelled row.
func NewReservationCancelledEvent(res *model.Reservation) ReservationCancelledEvent {
	return ReservationCancelledEvent{
		ReservationID: res.ID,
		GuestName:     res.GuestName,
		Email:         res.Email,
		Date:          res.Date.Format("2006-01-02"),
		TimeSlot:      res.TimeSlot,
		CancelledAt:   time.Now().UTC().Format(time.RFC3339),
	}
}

// ContactReceivedEvent is published when a contact-form message is stored.
type ContactReceivedEvent struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	ReceivedAt string `json:"received_at"`
}
