package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisonlila/restaurant-booking/internal/booking"
)

func postJSON(t *testing.T, fn echo.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, fn(e.NewContext(req, rec)))
	return rec
}

func TestContactSubmitCollectsFieldErrors(t *testing.T) {
	h := NewContactHandler(nil, nil)

	rec := postJSON(t, h.Submit, "/v1/contact", `{"name":"A","email":"bad","subject":"hey","message":"too short"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string               `json:"message"`
		Errors  []booking.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid contact message", resp.Message)

	got := make(map[string]bool, len(resp.Errors))
	for _, f := range resp.Errors {
		got[f.Field] = true
	}
	for _, field := range []string{"name", "email", "subject", "message"} {
		assert.True(t, got[field], "missing field error for %s", field)
	}
}

func TestNewsletterSubscribeRejectsBadEmail(t *testing.T) {
	h := NewContactHandler(nil, nil)

	rec := postJSON(t, h.Subscribe, "/v1/newsletter", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewCreateValidates(t *testing.T) {
	h := NewReviewHandler(nil)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"short author", `{"author":"A","rating":5,"comment":"absolument délicieux"}`, "author"},
		{"rating too low", `{"author":"Marie","rating":0,"comment":"absolument délicieux"}`, "rating"},
		{"rating too high", `{"author":"Marie","rating":6,"comment":"absolument délicieux"}`, "rating"},
		{"short comment", `{"author":"Marie","rating":5,"comment":"bof"}`, "comment"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, h.Create, "/v1/reviews", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp struct {
				Errors []booking.FieldError `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, tc.want, resp.Errors[0].Field)
		})
	}
}
