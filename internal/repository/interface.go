package repository

import (
	"context"

	"github.com/gurusoftware/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository defines the persistence interface for contact submissions.
type ContactRepository interface {
	Create(ctx context.Context, s *model.ContactSubmission) error
	FindByID(ctx context.Context, id int64) (*model.ContactSubmission, error)
	List(ctx context.Context, limit, offset int) ([]*model.ContactSubmission, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

// JobApplicationRepository defines the persistence interface for job applications.
type JobApplicationRepository interface {
	Create(ctx context.Context, a *model.JobApplication) error
	FindByID(ctx context.Context, id int64) (*model.JobApplication, error)
	List(ctx context.Context, limit, offset int) ([]*model.JobApplication, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}
