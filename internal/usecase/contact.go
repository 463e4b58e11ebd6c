package usecase

import (
	"context"
	"strings"

	"go-form-relay/config"
	"go-form-relay/internal/domain"
	"go-form-relay/pkg/email"
	"go-form-relay/pkg/logger"
	"go-form-relay/pkg/metrics"
	"go-form-relay/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const contactSubject = "New Contact Form Submission"

type contactUsecase struct {
	notifier domain.Notifier
	validate *validator.Validate
	cfg      *config.Config
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(notifier domain.Notifier, validate *validator.Validate, cfg *config.Config) domain.ContactUsecase {
	return &contactUsecase{
		notifier: notifier,
		validate: validate,
		cfg:      cfg,
	}
}

// SendContactMessage validates the contact request and sends the email
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	clean := domain.ContactRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}
	if err := uc.validate.Struct(&clean); err != nil {
		field := "request"
		if fields := validation.FieldErrors(err); len(fields) > 0 {
			field = fields[0].Field
		}
		logger.FromContext(ctx).Warn("Rejected contact message", "errors", validation.FormatValidationErrors(err))
		metrics.ObserveFlow("contact", string(domain.MissingField))
		return &domain.ValidationError{Kind: domain.MissingField, Field: field}
	}

	fields := []email.Field{
		{Label: "Name", Value: clean.Name},
		{Label: "Email", Value: clean.Email},
		{Label: "Message", Value: clean.Message},
	}
	msg := &domain.EmailMessage{
		To:       uc.cfg.ContactEmailTo,
		Subject:  contactSubject,
		TextBody: email.FormatFields(fields),
	}
	// Only offer a reply path when it is a usable address
	if validation.IsValidEmail(clean.Email) {
		msg.ReplyTo = clean.Email
	}
	if html, err := email.RenderFieldsHTML(contactSubject, fields); err == nil {
		msg.HTMLBody = html
	}

	callCtx, cancel := withCallTimeout(ctx, uc.cfg.ExternalCallTimeout)
	defer cancel()

	if err := uc.notifier.Send(callCtx, msg); err != nil {
		logger.FromContext(ctx).Error("Error sending contact email", "error", err)
		metrics.ObserveFlow("contact", string(domain.DeliveryFailed))
		return &domain.FlowError{Reason: domain.DeliveryFailed, Err: err}
	}

	metrics.ObserveFlow("contact", "ok")
	return nil
}
