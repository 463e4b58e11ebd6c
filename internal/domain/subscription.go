package domain

import "context"

type SubscriptionRequest struct {
	Email string `json:"email" validate:"required,relay_email"`
}

type SubscriptionUsecase interface {
	// Subscribe stores the address in the subscriber sheet and sends a welcome email
	Subscribe(ctx context.Context, req *SubscriptionRequest) error
}
