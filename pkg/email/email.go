package email

import (
	"context"
	"errors"
	"fmt"

	"go-form-relay/config"
	"go-form-relay/internal/domain"
	"go-form-relay/pkg/metrics"

	"gopkg.in/gomail.v2"
)

// Ensure EmailService implements domain.Notifier
var _ domain.Notifier = (*EmailService)(nil)

// dialer is the part of gomail.Dialer used to send mail
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailService handles sending emails via SMTP
type EmailService struct {
	dialer    dialer
	host      string
	username  string
	password  string
	fromEmail string
	fromName  string
}

// NewEmailService creates a new email service with the SMTP relay configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		dialer:    gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		host:      cfg.SMTPHost,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		fromName:  cfg.SMTPFromName,
	}
}

// Send delivers one message. It never retries; the caller decides what a failure means.
func (s *EmailService) Send(ctx context.Context, msg *domain.EmailMessage) error {
	if msg == nil || msg.To == "" {
		metrics.ObserveDelivery(string(domain.NoRecipient))
		return &domain.DeliveryError{Kind: domain.NoRecipient}
	}

	m := s.buildMessage(msg)

	// gomail has no context support, so the send runs aside and the deadline is enforced here.
	// An abandoned send finishes or fails on its own; the buffered channel lets it exit.
	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			metrics.ObserveDelivery(string(domain.TransportFailure))
			return &domain.DeliveryError{
				Kind:      domain.TransportFailure,
				Recipient: msg.To,
				Err:       fmt.Errorf("failed to send email: %w", err),
			}
		}
		metrics.ObserveDelivery("ok")
		return nil
	case <-ctx.Done():
		kind := domain.TransportFailure
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			kind = domain.DeliveryTimeout
		}
		metrics.ObserveDelivery(string(kind))
		return &domain.DeliveryError{Kind: kind, Recipient: msg.To, Err: ctx.Err()}
	}
}

// buildMessage constructs the MIME message. With both bodies set the result is
// multipart/alternative with the plain text part first.
func (s *EmailService) buildMessage(msg *domain.EmailMessage) *gomail.Message {
	m := gomail.NewMessage()
	if s.fromName != "" {
		m.SetAddressHeader("From", s.fromEmail, s.fromName)
	} else {
		m.SetHeader("From", s.fromEmail)
	}
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)

	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBody("text/html", msg.HTMLBody)
	default:
		m.SetBody("text/plain", msg.TextBody)
	}
	return m
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.fromEmail != ""
}
