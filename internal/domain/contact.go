package domain

import "time"

// ContactMessage is a persisted contact-form submission. ID and CreatedAt are
// assigned by the store.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactRequest is the inbound body of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email,email_tld"`
	Message string `json:"message" validate:"required"`
}
