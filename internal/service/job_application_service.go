package service

import (
	"context"
	"io"

	"github.com/gurusoftware/backend/internal/model"
)

// ResumeUpload is an optional file attached to a job application.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// JobApplicationService defines the business logic for job applications.
type JobApplicationService interface {
	// Submit validates the application, stores the resume (when given) and
	// inserts the row with status "new". If the insert fails the stored
	// resume is removed again.
	Submit(ctx context.Context, a *model.JobApplication, resume *ResumeUpload) error

	List(ctx context.Context, page model.Page) ([]*model.JobApplication, int, error)
	Get(ctx context.Context, id int64) (*model.JobApplication, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}
