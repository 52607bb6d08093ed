package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateFR(t *testing.T) {
	// 2024-07-01 is a Monday.
	got := formatDateFR(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "lundi 1 juillet 2024", got)

	got = formatDateFR(time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "mercredi 25 décembre 2024", got)
}

func TestReservationConfirmation(t *testing.T) {
	date := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	msg := ReservationConfirmation("marie@example.com", "Marie Dupont", "ML123456789", date, "19:30", 4)

	assert.Equal(t, "marie@example.com", msg.To)
	assert.Equal(t, "Confirmation de réservation - Maison Lila", msg.Subject)
	for _, want := range []string{"Marie Dupont", "ML123456789", "lundi 1 juillet 2024", "19:30", "4"} {
		assert.Contains(t, msg.Text, want)
		assert.Contains(t, msg.HTML, want)
	}
}

func TestContactNotification(t *testing.T) {
	msg := ContactNotification("contact@maison-lila.fr", "Jean Martin", "jean@example.com", "Privatisation", "Bonjour, je souhaite privatiser la salle.")

	assert.Equal(t, "contact@maison-lila.fr", msg.To)
	assert.Equal(t, "[Contact] Privatisation", msg.Subject)
	assert.Contains(t, msg.Text, "Jean Martin <jean@example.com>")
	assert.Contains(t, msg.Text, "privatiser la salle")
}
