package model

import "time"

// ContactSubmission represents a message submitted via the contact form.
type ContactSubmission struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
	Status      string    `json:"status"`
}
