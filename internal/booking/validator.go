package booking

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/maisonlila/restaurant-booking/internal/model"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// horizonMonths bounds how far ahead a table can be booked.
const horizonMonths = 3

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Request is the raw intake payload as received from the booking form.
type Request struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"specialRequests"`
}

// FieldError describes a single invalid form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a request is malformed or out of policy.
// Fields carries the full list of field-shape violations so the caller can
// render every form error at once; it is nil for date-range failures, which
// are reported alone through Message.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string { return e.Message }

// Date-range failures.  These short-circuit: a past date is reported before
// the horizon is even evaluated.
var (
	ErrDateInPast = &ValidationError{Message: "cannot book a date in the past"}
	ErrDateTooFar = &ValidationError{Message: fmt.Sprintf("reservations open up to %d months in advance", horizonMonths)}
)

// Normalized is a validated, typed booking request.  Date is anchored to
// midnight in now's location so that equality against stored dates is exact.
type Normalized struct {
	Date            time.Time
	TimeSlot        string
	PartySize       int
	FirstName       string
	LastName        string
	GuestName       string
	Email           string
	Phone           string
	SpecialRequests *string
}

// Validate checks a raw request against the field-shape rules and the
// date-range policy.  Shape violations are collected and returned together;
// date-range checks only run once the shape is valid and fail one at a time.
// Validate is pure: calling it twice with the same inputs yields the same
// outcome and the same error list.
func Validate(req Request, now time.Time) (*Normalized, error) {
	var fields []FieldError
	var date time.Time

	if req.Date == "" {
		fields = append(fields, FieldError{Field: "date", Message: "date is required"})
	} else {
		d, err := time.ParseInLocation(dateLayout, req.Date, now.Location())
		if err != nil {
			fields = append(fields, FieldError{Field: "date", Message: "date must be formatted YYYY-MM-DD"})
		} else {
			date = d
		}
	}
	if req.Time == "" {
		fields = append(fields, FieldError{Field: "time", Message: "time is required"})
	}
	if req.Guests < model.MinPartySize {
		fields = append(fields, FieldError{Field: "guests", Message: "at least 1 guest"})
	} else if req.Guests > model.MaxPartySizePublic {
		fields = append(fields, FieldError{Field: "guests", Message: fmt.Sprintf("at most %d guests", model.MaxPartySizePublic)})
	}
	if utf8.RuneCountInString(req.FirstName) < 2 {
		fields = append(fields, FieldError{Field: "firstName", Message: "first name must be at least 2 characters"})
	}
	if utf8.RuneCountInString(req.LastName) < 2 {
		fields = append(fields, FieldError{Field: "lastName", Message: "last name must be at least 2 characters"})
	}
	if !emailRe.MatchString(req.Email) {
		fields = append(fields, FieldError{Field: "email", Message: "invalid email address"})
	}
	if len(req.Phone) < 10 {
		fields = append(fields, FieldError{Field: "phone", Message: "phone number must be at least 10 characters"})
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Message: "invalid reservation request", Fields: fields}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return nil, ErrDateInPast
	}
	if date.After(today.AddDate(0, horizonMonths, 0)) {
		return nil, ErrDateTooFar
	}

	n := &Normalized{
		Date:      date,
		TimeSlot:  req.Time,
		PartySize: req.Guests,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		GuestName: req.FirstName + " " + req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if req.SpecialRequests != "" {
		sr := req.SpecialRequests
		n.SpecialRequests = &sr
	}
	return n, nil
}
