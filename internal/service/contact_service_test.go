package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockContactRepository is an in-memory stub for testing
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	saveFunc func(ctx context.Context, msg *model.ContactMessage) error
	listFunc func(ctx context.Context) ([]*model.ContactMessage, error)
	saved    int
}

func (m *mockContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	m.saved++
	if m.saveFunc != nil {
		return m.saveFunc(ctx, msg)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func validSubmission() ContactSubmission {
	return ContactSubmission{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Hello",
		Message: "Nice portfolio",
	}
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestContactService_Submit_SetsUnreadAndTimestamp(t *testing.T) {
	before := time.Now().UTC()
	var saved *model.ContactMessage
	mock := &mockContactRepository{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			msg.ID = "1"
			saved = msg
			return nil
		},
	}
	svc := NewContactService(mock)

	msg, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil {
		t.Fatal("expected Save to be called")
	}
	if saved.Read {
		t.Error("expected read=false")
	}
	if saved.CreatedAt.Before(before) {
		t.Errorf("CreatedAt %v is before %v", saved.CreatedAt, before)
	}
	if msg.ID != "1" {
		t.Errorf("expected id assigned by repository, got %q", msg.ID)
	}
	if msg.Subject != "Hello" || msg.Message != "Nice portfolio" {
		t.Errorf("fields not copied: %+v", msg)
	}
}

func TestContactService_Submit_MissingField(t *testing.T) {
	cases := map[string]func(*ContactSubmission){
		"name":    func(s *ContactSubmission) { s.Name = "" },
		"email":   func(s *ContactSubmission) { s.Email = "" },
		"subject": func(s *ContactSubmission) { s.Subject = "" },
		"message": func(s *ContactSubmission) { s.Message = "" },
	}
	for field, clear := range cases {
		t.Run(field, func(t *testing.T) {
			mock := &mockContactRepository{}
			svc := NewContactService(mock)

			sub := validSubmission()
			clear(&sub)
			_, err := svc.Submit(context.Background(), sub)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Message != "All fields are required" {
				t.Errorf("unexpected message %q", verr.Message)
			}
			if mock.saved != 0 {
				t.Error("nothing should be stored on validation failure")
			}
		})
	}
}

func TestContactService_Submit_EmailValidation(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"a.b@c.org", true},
		{"first-last@sub.example.com", true},
		{"user_1@domain.io", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@example.com", false},
		{"user@example.comm", false},
		{"user@example.co.uk", true},
		{"user@example.c", false},
		{"user@@example.com", false},
	}
	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			svc := NewContactService(&mockContactRepository{})
			sub := validSubmission()
			sub.Email = tc.email
			_, err := svc.Submit(context.Background(), sub)

			if tc.ok && err != nil {
				t.Errorf("expected %q to be accepted, got %v", tc.email, err)
			}
			if !tc.ok {
				var verr *ValidationError
				if !errors.As(err, &verr) || verr.Message != "Please enter a valid email" {
					t.Errorf("expected invalid email error for %q, got %v", tc.email, err)
				}
			}
		})
	}
}

func TestContactService_Submit_RepositoryError(t *testing.T) {
	mock := &mockContactRepository{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return errors.New("db connection lost")
		},
	}
	svc := NewContactService(mock)

	_, err := svc.Submit(context.Background(), validSubmission())
	if err == nil {
		t.Fatal("expected error")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Error("storage errors must not be reported as validation errors")
	}
}

// TestContactService_SequentialSubmissions runs against the in-memory repository.
func TestContactService_SequentialSubmissions(t *testing.T) {
	svc := NewContactService(repository.NewMemContactRepository())
	ctx := context.Background()

	first, err := svc.Submit(ctx, validSubmission())
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := svc.Submit(ctx, validSubmission())
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}

	a, _ := strconv.Atoi(first.ID)
	b, _ := strconv.Atoi(second.ID)
	if b <= a {
		t.Errorf("expected strictly increasing ids, got %s then %s", first.ID, second.ID)
	}

	msgs, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].ID != second.ID {
		t.Errorf("expected most recent first, got id %s", msgs[0].ID)
	}
}

func TestContactService_Submit_Duplicates(t *testing.T) {
	svc := NewContactService(repository.NewMemContactRepository())
	ctx := context.Background()

	_, _ = svc.Submit(ctx, validSubmission())
	_, _ = svc.Submit(ctx, validSubmission())

	msgs, _ := svc.List(ctx)
	if len(msgs) != 2 {
		t.Errorf("duplicate submissions should create two records, got %d", len(msgs))
	}
}
