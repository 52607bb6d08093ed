// Package mailer delivers transactional email for the site: reservation
// confirmations and cancellations to guests, contact-form copies to staff.
package mailer

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/maisonlila/restaurant-booking/internal/config"
)

// Message is one outgoing email.  Text is the plain-text body; HTML is
// optional and, when present, is sent as a multipart/alternative part.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers a single message.  Implementations report failure as an
// error value so callers can treat delivery as best-effort.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender delivers messages through a plain SMTP relay with optional
// AUTH, matching the MAIL_* environment the site has always used.
type SMTPSender struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPSender builds an SMTPSender from the mail configuration.  The
// caller is expected to check cfg.Host beforehand and fall back to a
// LogSender when no relay is configured.
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPSender{
		addr: cfg.Host + ":" + cfg.Port,
		auth: auth,
		from: cfg.From,
	}
}

// Send delivers the message.  The context is honored only between messages;
// net/smtp has no per-dial context support, so a hung relay is bounded by
// the OS socket timeout.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return smtp.SendMail(s.addr, s.auth, s.from, []string{msg.To}, buildMIME(s.from, msg))
}

// buildMIME assembles the raw RFC 5322 message, multipart when an HTML body
// is present.
func buildMIME(from string, msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")

	if msg.HTML == "" {
		b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		b.WriteString(msg.Text)
		return []byte(b.String())
	}

	const boundary = "=_maison-lila-alt"
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)
	fmt.Fprintf(&b, "--%s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n", boundary, msg.Text)
	fmt.Fprintf(&b, "--%s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n", boundary, msg.HTML)
	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}

// LogSender writes outgoing messages to the process log instead of
// delivering them.  Used in development and whenever MAIL_HOST is unset.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	log.Printf("mailer: (dry run) to=%s subject=%q", msg.To, msg.Subject)
	return nil
}
