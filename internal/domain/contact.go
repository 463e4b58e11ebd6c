package domain

import "context"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the request and forwards it to the operator address
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
