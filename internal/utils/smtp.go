package utils

import (
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"

	"roam/internal/config"
)

// EmailSender delivers a single message. Satisfied by EmailHandler and by
// test fakes.
type EmailSender interface {
	Send(to, subject, body string) error
}

// EmailHandler sends mail through the configured SMTP server.
type EmailHandler struct {
	config config.SMTPConfig
}

func NewEmailHandler(cfg config.SMTPConfig) *EmailHandler {
	return &EmailHandler{config: cfg}
}

// Send composes and delivers one message. The body is sent as HTML.
func (h *EmailHandler) Send(to, subject, body string) error {
	auth := sasl.NewPlainClient("", h.config.Username, h.config.Password)

	headers := fmt.Sprintf("To: %s\nSubject: %s\nContent-Type: text/html; charset=UTF-8\n", to, subject)
	msg := strings.NewReader(headers + "\n" + body)

	addr := fmt.Sprintf("%s:%d", h.config.Host, h.config.Port)
	if err := smtp.SendMail(addr, auth, h.config.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
