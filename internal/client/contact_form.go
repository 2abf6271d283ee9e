package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrSubmitInProgress is returned by Submit while an earlier submit is pending.
var ErrSubmitInProgress = errors.New("client: contact submit already in progress")

const (
	defaultSuccessMessage = "Message sent successfully!"
	defaultErrorMessage   = "Failed to send message. Please try again."
)

// FormStatus is the contact form lifecycle state.
type FormStatus int

const (
	StatusIdle FormStatus = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s FormStatus) String() string {
	switch s {
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Field names a contact form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// ContactFields is the form payload.
type ContactFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactSender delivers a submission and returns the confirmation text.
// *APIClient implements it.
type ContactSender interface {
	SubmitContact(ctx context.Context, fields ContactFields) (string, error)
}

// ContactForm drives idle → submitting → success|error.
//
// After success or error, the next edit moves the status back to idle but the
// status message stays visible until the next submit clears it.
type ContactForm struct {
	sender ContactSender

	mu      sync.Mutex
	fields  ContactFields
	status  FormStatus
	message string
}

func NewContactForm(sender ContactSender) *ContactForm {
	return &ContactForm{sender: sender}
}

// Set updates one field.
func (f *ContactForm) Set(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldName:
		f.fields.Name = value
	case FieldEmail:
		f.fields.Email = value
	case FieldSubject:
		f.fields.Subject = value
	case FieldMessage:
		f.fields.Message = value
	default:
		return fmt.Errorf("client: unknown contact field %q", field)
	}

	if f.status == StatusSuccess || f.status == StatusError {
		f.status = StatusIdle
	}
	return nil
}

func (f *ContactForm) Fields() ContactFields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *ContactForm) Status() FormStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// StatusMessage is the text shown under the form, "" when nothing is shown.
func (f *ContactForm) StatusMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// CanSubmit reports whether the submit control is enabled.
func (f *ContactForm) CanSubmit() bool {
	return f.Status() != StatusSubmitting
}

// Submit sends the current fields and blocks until the sender answers.
// The sender's error is returned after the form has moved to StatusError.
func (f *ContactForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	f.status = StatusSubmitting
	f.message = ""
	snapshot := f.fields
	f.mu.Unlock()

	confirmation, err := f.sender.SubmitContact(ctx, snapshot)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.status = StatusError
		f.message = defaultErrorMessage
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			f.message = apiErr.Message
		}
		return err
	}

	f.status = StatusSuccess
	f.fields = ContactFields{}
	f.message = confirmation
	if f.message == "" {
		f.message = defaultSuccessMessage
	}
	return nil
}
