package usecase

import (
	"context"
	"fmt"

	"go-form-relay/config"
	"go-form-relay/internal/domain"
	"go-form-relay/pkg/email"
	"go-form-relay/pkg/logger"
	"go-form-relay/pkg/metrics"
	"go-form-relay/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const welcomeSubject = "Thank You for Subscribing!"

type subscriptionUsecase struct {
	store    domain.SheetStore
	notifier domain.Notifier
	validate *validator.Validate
	cfg      *config.Config
}

func NewSubscriptionUsecase(store domain.SheetStore, notifier domain.Notifier, validate *validator.Validate, cfg *config.Config) domain.SubscriptionUsecase {
	return &subscriptionUsecase{
		store:    store,
		notifier: notifier,
		validate: validate,
		cfg:      cfg,
	}
}

// Subscribe appends the address to the subscriber sheet, then sends the welcome email.
// A failed welcome email does not undo the append.
func (uc *subscriptionUsecase) Subscribe(ctx context.Context, req *domain.SubscriptionRequest) error {
	log := logger.FromContext(ctx)

	if err := uc.validate.Struct(req); err != nil {
		log.Warn("Rejected subscription", "errors", validation.FormatValidationErrors(err))
		metrics.ObserveFlow("subscription", string(domain.InvalidEmail))
		return &domain.ValidationError{Kind: domain.InvalidEmail, Field: "email"}
	}

	if err := uc.appendSubscriber(ctx, req.Email); err != nil {
		log.Error("Error storing subscriber", "error", err)
		metrics.ObserveFlow("subscription", string(domain.StoreWriteFailed))
		return &domain.FlowError{Reason: domain.StoreWriteFailed, Err: err}
	}

	if err := uc.sendWelcome(ctx, req.Email); err != nil {
		log.Error("Subscriber stored but welcome email failed", "error", err)
		metrics.ObserveFlow("subscription", string(domain.DeliveryFailed))
		return &domain.FlowError{Reason: domain.DeliveryFailed, Err: err}
	}

	metrics.ObserveFlow("subscription", "ok")
	return nil
}

func (uc *subscriptionUsecase) appendSubscriber(ctx context.Context, address string) error {
	callCtx, cancel := withCallTimeout(ctx, uc.cfg.ExternalCallTimeout)
	defer cancel()
	return uc.store.Append(callCtx, uc.cfg.EmailSheetID, uc.cfg.SubscriberAppendRange, []string{address})
}

func (uc *subscriptionUsecase) sendWelcome(ctx context.Context, address string) error {
	text := fmt.Sprintf("You have successfully subscribed to %s updates. "+
		"We will notify you about upcoming products and new updates.", uc.cfg.BrandName)
	msg := &domain.EmailMessage{
		To:       address,
		Subject:  welcomeSubject,
		TextBody: text,
	}
	if html, err := email.RenderWelcomeHTML(text); err == nil {
		msg.HTMLBody = html
	}

	callCtx, cancel := withCallTimeout(ctx, uc.cfg.ExternalCallTimeout)
	defer cancel()
	return uc.notifier.Send(callCtx, msg)
}
