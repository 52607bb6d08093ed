package model

import "time"

// Reservation statuses.  The public intake only ever creates PENDING
// reservations; CONFIRMED and CANCELLED are administrative transitions
// performed through the admin endpoints.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
)

// Party-size bounds.  The public booking form caps a party at
// MaxPartySizePublic guests while the admin surface accepts up to
// MaxPartySizeInternal (larger parties are taken over the phone and entered
// by staff).  The two bounds intentionally disagree; see DESIGN.md before
// "fixing" either one.
const (
	MinPartySize         = 1
	MaxPartySizePublic   = 8
	MaxPartySizeInternal = 12
)

// SlotCapacity is the total number of covers allowed across all active
// reservations sharing one exact (date, time) pair.  It is a fixed
// system-wide ceiling and is not derived from the restaurant profile's
// stated capacity.
const SlotCapacity = 50

// Reservation represents a row in the `reservations` table.  The Date field
// carries only the calendar date (midnight-anchored); the time of day lives
// separately in TimeSlot as an "HH:MM" string so that capacity aggregation
// can match slots by exact string equality.
type Reservation struct {
	ID              string     // reservations.id, public reference ("ML" + digits)
	GuestName       string     // reservations.guest_name (first + last, space-joined)
	Email           string     // reservations.email
	Phone           string     // reservations.phone
	Date            time.Time  // reservations.date (DATE column)
	TimeSlot        string     // reservations.time_slot ("HH:MM")
	PartySize       int        // reservations.party_size (covers)
	SpecialRequests *string    // reservations.special_requests (nullable)
	Status          string     // reservations.status
	CreatedAt       time.Time  // reservations.created_at
	UpdatedAt       time.Time  // reservations.updated_at
}

// Active reports whether the reservation counts toward slot capacity.
// Cancelled reservations release their covers.
func (r *Reservation) Active() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}
