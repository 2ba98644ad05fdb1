package service

import (
	"context"

	"github.com/gurusoftware/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates and stores a new submission with status "new".
	// s.ID and s.SubmittedAt are populated on success.
	Submit(ctx context.Context, s *model.ContactSubmission) error

	// List returns one page of submissions, newest first, and the total count.
	List(ctx context.Context, page model.Page) ([]*model.ContactSubmission, int, error)

	Get(ctx context.Context, id int64) (*model.ContactSubmission, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}
