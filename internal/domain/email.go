package domain

import "context"

// EmailMessage is a single outbound email. HTMLBody and ReplyTo are optional.
type EmailMessage struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
	ReplyTo  string
}

// Notifier delivers one email per call. Implementations never retry.
type Notifier interface {
	Send(ctx context.Context, msg *EmailMessage) error
}
