package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

const (
	maxContactBodyBytes = 100 << 10

	msgContactSent    = "Message sent successfully! I will get back to you soon."
	msgInvalidRequest = "Invalid request body"
)

// ContactHandler handles contact form submission and listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
// Accepts JSON or application/x-www-form-urlencoded; all four fields are required.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodyBytes)

	req, err := decodeSubmitRequest(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	msg, err := h.contactService.Submit(r.Context(), service.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		writeMessage(w, http.StatusBadRequest, verr.Message)
		return
	}
	if err != nil {
		writeInternalError(w, r, "submit contact failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, dataResponse{
		Success: true,
		Message: msgContactSent,
		Data:    msg.Receipt(),
	})
}

// List handles GET /api/contact. Messages are returned newest first.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		writeInternalError(w, r, "list contacts failed", err)
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}

	writeJSON(w, http.StatusOK, listResponse{Success: true, Count: len(messages), Data: messages})
}

// decodeSubmitRequest reads a form or JSON body. An empty JSON body decodes
// to an empty request so it fails field validation rather than parsing.
func decodeSubmitRequest(r *http.Request) (submitRequest, error) {
	var req submitRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Name = r.PostForm.Get("name")
		req.Email = r.PostForm.Get("email")
		req.Subject = r.PostForm.Get("subject")
		req.Message = r.PostForm.Get("message")
		return req, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}
