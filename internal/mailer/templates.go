package mailer

import (
	"fmt"
	"strings"
	"time"
)

// Guest-facing copy is French, like the rest of the site.

var frMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var frDays = [...]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

// formatDateFR renders a date as "jeudi 12 juin 2025".
func formatDateFR(t time.Time) string {
	return fmt.Sprintf("%s %d %s %d", frDays[t.Weekday()], t.Day(), frMonths[t.Month()-1], t.Year())
}

// ReservationConfirmation builds the confirmation email sent to the guest
// right after a reservation is taken.
func ReservationConfirmation(to, guestName, id string, date time.Time, timeSlot string, partySize int) Message {
	dateFR := formatDateFR(date)
	text := fmt.Sprintf(`Bonjour %s,

Votre réservation chez Maison Lila est bien enregistrée :

Numéro de réservation : %s
Date : %s
Heure : %s
Nombre de couverts : %d

Informations importantes :
- Merci d'arriver 5 minutes avant l'heure de réservation
- Votre table sera maintenue 15 minutes après l'heure prévue
- Pour toute modification ou annulation, contactez-nous au 01 42 34 56 78

Nous nous réjouissons de vous accueillir !

Maison Lila
123 Rue de la Paix, 75001 Paris
`, guestName, id, dateFR, timeSlot, partySize)

	html := fmt.Sprintf(`<html><body style="font-family:Arial,sans-serif;color:#2B2B2B">
<div style="max-width:600px;margin:0 auto">
<div style="background:#8AA6A3;color:#fff;text-align:center;padding:30px">
<h1>Maison Lila</h1><p>Votre réservation est enregistrée !</p></div>
<div style="padding:30px;background:#FAF8F6">
<p>Bonjour %s,</p>
<p>Nous avons le plaisir de confirmer votre réservation :</p>
<ul>
<li><strong>Numéro de réservation :</strong> %s</li>
<li><strong>Date :</strong> %s</li>
<li><strong>Heure :</strong> %s</li>
<li><strong>Nombre de couverts :</strong> %d</li>
</ul>
<p>Nous nous réjouissons de vous accueillir dans notre établissement.</p>
</div>
<div style="text-align:center;color:#666;font-size:12px;padding:20px">
Maison Lila — 123 Rue de la Paix, 75001 Paris — 01 42 34 56 78</div>
</div></body></html>`, guestName, id, dateFR, timeSlot, partySize)

	return Message{
		To:      to,
		Subject: "Confirmation de réservation - Maison Lila",
		Text:    text,
		HTML:    html,
	}
}

// ReservationCancellation builds the email sent when staff cancel a
// reservation.
func ReservationCancellation(to, guestName, id string, date time.Time, timeSlot string) Message {
	text := fmt.Sprintf(`Bonjour %s,

Votre réservation %s du %s à %s a été annulée.

Pour toute question, contactez-nous au 01 42 34 56 78.

Maison Lila
`, guestName, id, formatDateFR(date), timeSlot)

	return Message{
		To:      to,
		Subject: "Annulation de réservation - Maison Lila",
		Text:    text,
	}
}

// ContactNotification builds the internal copy of a contact-form message,
// sent to the restaurant's own address.
func ContactNotification(staffEmail, name, email, subject, body string) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Nouveau message via le formulaire de contact\n\n")
	fmt.Fprintf(&b, "De : %s <%s>\n", name, email)
	fmt.Fprintf(&b, "Sujet : %s\n\n", subject)
	b.WriteString(body)
	b.WriteString("\n")
	return Message{
		To:      staffEmail,
		Subject: fmt.Sprintf("[Contact] %s", subject),
		Text:    b.String(),
	}
}
