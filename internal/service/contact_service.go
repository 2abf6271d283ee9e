package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates and stores a new contact message. Validation failures
	// are returned as *ValidationError and nothing is stored.
	Submit(ctx context.Context, sub ContactSubmission) (*model.ContactMessage, error)

	// List returns every stored message, newest first.
	List(ctx context.Context) ([]*model.ContactMessage, error)
}

// ContactSubmission carries the raw form fields.
type ContactSubmission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ValidationError reports a submission that was rejected before storage.
// Message is safe to show to the submitter.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

const (
	msgFieldsRequired = "All fields are required"
	msgInvalidEmail   = "Please enter a valid email"
)
