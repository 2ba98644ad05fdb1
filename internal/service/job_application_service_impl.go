package service

import (
	"context"
	"errors"

	"github.com/gurusoftware/backend/internal/logging"
	"github.com/gurusoftware/backend/internal/model"
	"github.com/gurusoftware/backend/internal/repository"
	"github.com/gurusoftware/backend/internal/validator"
)

type jobApplicationServiceImpl struct {
	repo    repository.JobApplicationRepository
	resumes *ResumeStore
}

// NewJobApplicationService creates a JobApplicationService backed by the
// given repository and resume store.
func NewJobApplicationService(repo repository.JobApplicationRepository, resumes *ResumeStore) JobApplicationService {
	return &jobApplicationServiceImpl{repo: repo, resumes: resumes}
}

func (s *jobApplicationServiceImpl) Submit(ctx context.Context, a *model.JobApplication, resume *ResumeUpload) error {
	if blank(a.Role, a.Name, a.Email, a.Phone, a.Experience) {
		return validationError(MsgMissingFields)
	}
	if !validator.IsValidEmail(a.Email) {
		return validationError(MsgInvalidEmail)
	}
	if !validator.IsValidPhone(a.Phone) {
		return validationError(MsgInvalidPhone)
	}

	saved, err := s.resumes.Save(ctx, resume)
	if err != nil {
		return err
	}
	if saved != "" {
		a.ResumeFilename = &saved
	}

	a.Status = model.StatusNew
	if err := s.repo.Create(ctx, a); err != nil {
		if saved != "" {
			if rmErr := s.resumes.Remove(ctx, saved); rmErr != nil {
				logging.FromContext(ctx).Error("orphaned resume cleanup failed", "resume_filename", saved, "error", rmErr)
			}
			a.ResumeFilename = nil
		}
		return storageError("create job application", err)
	}
	return nil
}

func (s *jobApplicationServiceImpl) List(ctx context.Context, page model.Page) ([]*model.JobApplication, int, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, storageError("count job applications", err)
	}
	items, err := s.repo.List(ctx, page.PerPage, page.Offset())
	if err != nil {
		return nil, 0, storageError("list job applications", err)
	}
	return items, total, nil
}

func (s *jobApplicationServiceImpl) Get(ctx context.Context, id int64) (*model.JobApplication, error) {
	a, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundError(MsgApplicationNotFound, err)
	}
	if err != nil {
		return nil, storageError("find job application", err)
	}
	return a, nil
}

func (s *jobApplicationServiceImpl) UpdateStatus(ctx context.Context, id int64, status string) error {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return storageError("update job application", err)
	}
	return nil
}

// Delete is idempotent. The stored resume file is left in place.
func (s *jobApplicationServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storageError("delete job application", err)
	}
	return nil
}
