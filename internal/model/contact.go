package model

import "time"

// ContactMessage represents a message submitted via the contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactReceipt is the acknowledgement returned for an accepted submission.
// Subject and body are not echoed back.
type ContactReceipt struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Receipt returns the acknowledgement view of m.
func (m *ContactMessage) Receipt() ContactReceipt {
	return ContactReceipt{ID: m.ID, Name: m.Name, Email: m.Email}
}
