// Package repository contains the hand-written SQL data access layer.  This
// file defines sentinel errors shared across repositories so handlers can
// map failure scenarios onto HTTP statuses without inspecting SQL errors.
package repository

import "errors"

// ErrReservationNotFound is returned when a reservation id does not exist.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrReviewNotFound is returned when a review id does not exist.
var ErrReviewNotFound = errors.New("review not found")

// ErrArticleNotFound is returned when an article slug does not exist or the
// article is not published.
var ErrArticleNotFound = errors.New("article not found")

// ErrRestaurantNotFound is returned when the restaurant profile has not been
// seeded yet.
var ErrRestaurantNotFound = errors.New("restaurant profile not found")

// ErrUserNotFound is returned when no active account matches the given
// email.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidTransition is returned when a status change is not allowed from
// the reservation's current status.
var ErrInvalidTransition = errors.New("invalid status transition")
