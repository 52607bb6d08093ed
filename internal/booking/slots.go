// Package booking implements the reservation intake workflow: request
// validation, slot capacity checking, public identifier generation and the
// orchestration of persistence and notification.
package booking

// catalog is the fixed list of bookable time-of-day strings covering the
// lunch and dinner service windows.  The list is the same for every date; it
// does not follow the per-day opening hours stored on the restaurant
// profile.
var catalog = []string{
	"12:00", "12:30", "13:00", "13:30", "14:00",
	"19:00", "19:30", "20:00", "20:30", "21:00", "21:30",
}

// Slots returns the ordered list of bookable time slots.  The returned
// slice is a copy; callers may modify it freely.
func Slots() []string {
	out := make([]string, len(catalog))
	copy(out, catalog)
	return out
}
