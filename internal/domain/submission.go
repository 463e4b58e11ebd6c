package domain

import (
	"bytes"
	"context"
	"encoding/json"
)

// FormValue is a form field bound from any JSON scalar. Strings are kept as is,
// numbers and booleans keep their literal text, null is empty.
type FormValue string

func (v *FormValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = FormValue(s)
		return nil
	}
	var raw json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*v = FormValue(bytes.TrimSpace(raw))
	return nil
}

// FormSubmission is the payload posted by the main web form. Fields are opaque.
type FormSubmission struct {
	FirstName   FormValue `json:"first_name"`
	MiddleName  FormValue `json:"middle_name"`
	LastName    FormValue `json:"last_name"`
	Email       FormValue `json:"email"`
	Department  FormValue `json:"department"`
	InputRadio  FormValue `json:"input_radio"`
	InputRadio1 FormValue `json:"input_radio_1"`
	InputRadio2 FormValue `json:"input_radio_2"`
	InputText   FormValue `json:"input_text"`
	Description FormValue `json:"description"`
}

// Row returns the submission in sheet column order.
func (f *FormSubmission) Row() []string {
	return []string{
		string(f.FirstName),
		string(f.MiddleName),
		string(f.LastName),
		string(f.Email),
		string(f.Department),
		string(f.InputRadio),
		string(f.InputRadio1),
		string(f.InputRadio2),
		string(f.InputText),
		string(f.Description),
	}
}

// SubmissionState tracks how far a submission got through the pipeline
type SubmissionState int

const (
	StateReceived SubmissionState = iota
	StateAppended
	StateRecipientsFetched
	StateFiltered
	StateDelivering
	StateCompleted
	StateFailed
)

func (s SubmissionState) String() string {
	switch s {
	case StateReceived:
		return "received"
	case StateAppended:
		return "appended"
	case StateRecipientsFetched:
		return "recipients_fetched"
	case StateFiltered:
		return "filtered"
	case StateDelivering:
		return "delivering"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SubmissionReceipt describes a completed submission
type SubmissionReceipt struct {
	State      SubmissionState
	Recipients []string // Addresses that were notified, in send order
}

type SubmissionUsecase interface {
	// Submit appends the form to the sheet and notifies every recipient configured in the sheet.
	Submit(ctx context.Context, form *FormSubmission) (*SubmissionReceipt, error)
}
