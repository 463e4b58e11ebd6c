package domain

import (
	"context"
	"errors"
	"fmt"
)

// ValidationKind classifies client-side input problems
type ValidationKind string

const (
	MissingField  ValidationKind = "missing_field"
	InvalidEmail  ValidationKind = "invalid_email"
	MalformedBody ValidationKind = "malformed_body"
)

// ValidationError is always caused by the caller (HTTP 400)
type ValidationError struct {
	Kind  ValidationKind
	Field string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingField:
		return fmt.Sprintf("%s is required", e.Field)
	case InvalidEmail:
		return fmt.Sprintf("%s is not a valid email address", e.Field)
	default:
		return fmt.Sprintf("invalid request: %s", e.Field)
	}
}

type StoreErrorKind string

const (
	StoreUnreachable  StoreErrorKind = "unreachable"
	StoreInvalidRange StoreErrorKind = "invalid_range"
	StoreTimeout      StoreErrorKind = "timeout"
)

// StoreError reports a failed append or read against the sheet store
type StoreError struct {
	Kind StoreErrorKind
	Op   string // "append" or "batch_read"
	Err  error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("sheet store %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("sheet store %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

type DeliveryErrorKind string

const (
	NoRecipient      DeliveryErrorKind = "no_recipient"
	TransportFailure DeliveryErrorKind = "transport_failure"
	DeliveryTimeout  DeliveryErrorKind = "timeout"
)

// DeliveryError reports a failed email send
type DeliveryError struct {
	Kind      DeliveryErrorKind
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	if e.Kind == NoRecipient {
		return "email delivery: no recipient defined"
	}
	if e.Err == nil {
		return fmt.Sprintf("email delivery to %s: %s", e.Recipient, e.Kind)
	}
	return fmt.Sprintf("email delivery to %s: %s: %v", e.Recipient, e.Kind, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// FailureReason is the terminal reason a request flow stopped
type FailureReason string

const (
	StoreWriteFailed  FailureReason = "store_write_failed"
	StoreReadFailed   FailureReason = "store_read_failed"
	NoValidRecipients FailureReason = "no_valid_recipients"
	DeliveryFailed    FailureReason = "delivery_failed"
)

// FlowError wraps the cause of a failed submission, contact or subscription flow
type FlowError struct {
	Reason FailureReason
	Err    error
}

func (e *FlowError) Error() string {
	if e.Err == nil {
		return string(e.Reason)
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *FlowError) Unwrap() error { return e.Err }

// ErrNoValidRecipients is the cause recorded when the recipient cells hold no usable address
var ErrNoValidRecipients = errors.New("no valid email addresses found in specified cells")

// ReasonOf returns the failure reason carried by err, or "" when there is none.
func ReasonOf(err error) FailureReason {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe.Reason
	}
	return ""
}

// NewStoreError classifies err, turning an expired context into a timeout.
func NewStoreError(op string, kind StoreErrorKind, err error) *StoreError {
	if errors.Is(err, context.DeadlineExceeded) {
		kind = StoreTimeout
	}
	return &StoreError{Kind: kind, Op: op, Err: err}
}
