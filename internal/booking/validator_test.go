package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow anchors every test to the same clock.
var fixedNow = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

func validRequest() Request {
	return Request{
		Date:      "2024-07-01",
		Time:      "19:30",
		Guests:    4,
		FirstName: "Marie",
		LastName:  "Dupont",
		Email:     "marie.dupont@example.com",
		Phone:     "0612345678",
	}
}

func TestValidateAcceptsWellFormedRequest(t *testing.T) {
	n, err := Validate(validRequest(), fixedNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), n.Date)
	assert.Equal(t, "19:30", n.TimeSlot)
	assert.Equal(t, 4, n.PartySize)
	assert.Equal(t, "Marie Dupont", n.GuestName)
	assert.Equal(t, "marie.dupont@example.com", n.Email)
	assert.Nil(t, n.SpecialRequests, "empty special requests must normalize to nil")
}

func TestValidateKeepsSpecialRequests(t *testing.T) {
	req := validRequest()
	req.SpecialRequests = "table près de la fenêtre"

	n, err := Validate(req, fixedNow)
	require.NoError(t, err)
	require.NotNil(t, n.SpecialRequests)
	assert.Equal(t, "table près de la fenêtre", *n.SpecialRequests)
}

func TestValidateCollectsEveryFieldError(t *testing.T) {
	req := Request{
		Date:      "01/07/2024",
		Time:      "",
		Guests:    0,
		FirstName: "M",
		LastName:  "",
		Email:     "not-an-email",
		Phone:     "06",
	}

	_, err := Validate(req, fixedNow)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "invalid reservation request", verr.Message)

	got := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		got[f.Field] = f.Message
	}
	for _, field := range []string{"date", "time", "guests", "firstName", "lastName", "email", "phone"} {
		assert.Contains(t, got, field)
	}
}

func TestValidatePartySizeBounds(t *testing.T) {
	cases := []struct {
		name   string
		guests int
		ok     bool
	}{
		{"below minimum", 0, false},
		{"minimum", 1, true},
		{"maximum", 8, true},
		{"above maximum", 9, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			req.Guests = tc.guests
			_, err := Validate(req, fixedNow)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				require.Len(t, verr.Fields, 1)
				assert.Equal(t, "guests", verr.Fields[0].Field)
			}
		})
	}
}

func TestValidateMultibyteNamesCountRunes(t *testing.T) {
	req := validRequest()
	req.FirstName = "Éé" // two runes, four bytes
	req.LastName = "Ün"

	_, err := Validate(req, fixedNow)
	assert.NoError(t, err)
}

func TestValidateDateRange(t *testing.T) {
	cases := []struct {
		name string
		date string
		want error
	}{
		{"yesterday", "2024-06-14", ErrDateInPast},
		{"today", "2024-06-15", nil},
		{"horizon boundary", "2024-09-15", nil},
		{"past horizon", "2024-09-16", ErrDateTooFar},
		{"far future", "2099-01-01", ErrDateTooFar},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			req.Date = tc.date
			_, err := Validate(req, fixedNow)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestValidatePastDateReportedBeforeHorizon(t *testing.T) {
	// A date that is both in the past and outside any future horizon must
	// surface the past-date failure.
	req := validRequest()
	req.Date = "2020-01-01"

	_, err := Validate(req, fixedNow)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestValidateRangeErrorsCarryNoFieldList(t *testing.T) {
	req := validRequest()
	req.Date = "2024-01-01"

	_, err := Validate(req, fixedNow)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Nil(t, verr.Fields)
}

func TestValidateIsDeterministic(t *testing.T) {
	req := validRequest()
	req.Email = "broken"

	_, err1 := Validate(req, fixedNow)
	_, err2 := Validate(req, fixedNow)
	require.Error(t, err1)
	assert.Equal(t, err1, err2)
}
