package service

import (
	"context"
	"regexp"
	"time"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// emailPattern accepts dot/hyphen separated word runs on both sides of the @
// and a final 2-3 character label.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
	now  func() time.Time
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo, now: time.Now}
}

// Submit validates sub, marks the message unread, stamps CreatedAt and
// hands it to the repository, which assigns the id.
func (s *contactServiceImpl) Submit(ctx context.Context, sub ContactSubmission) (*model.ContactMessage, error) {
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}

	msg := &model.ContactMessage{
		Name:      sub.Name,
		Email:     sub.Email,
		Subject:   sub.Subject,
		Message:   sub.Message,
		Read:      false,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// List returns all contact messages, newest first.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx)
}

func validateSubmission(sub ContactSubmission) error {
	if sub.Name == "" || sub.Email == "" || sub.Subject == "" || sub.Message == "" {
		return &ValidationError{Message: msgFieldsRequired}
	}
	if !emailPattern.MatchString(sub.Email) {
		return &ValidationError{Message: msgInvalidEmail}
	}
	return nil
}
