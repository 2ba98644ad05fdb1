package model

import "time"

// JobApplication represents a candidate's application for an open role.
type JobApplication struct {
	ID             int64     `json:"id"`
	Role           string    `json:"role"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Experience     string    `json:"experience"`
	Message        string    `json:"message"`
	ResumeFilename *string   `json:"resume_filename"` // nil when no resume was uploaded
	AppliedAt      time.Time `json:"applied_at"`
	Status         string    `json:"status"`
}
