package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gurusoftware/backend/internal/model"
	"github.com/gurusoftware/backend/internal/repository"
	"github.com/gurusoftware/backend/internal/validator"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

func (s *contactServiceImpl) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	if blank(sub.Name, sub.Email, sub.Subject, sub.Message) {
		return validationError(MsgMissingFields)
	}
	if !validator.IsValidEmail(sub.Email) {
		return validationError(MsgInvalidEmail)
	}
	sub.Status = model.StatusNew
	if err := s.repo.Create(ctx, sub); err != nil {
		return storageError("create contact submission", err)
	}
	return nil
}

func (s *contactServiceImpl) List(ctx context.Context, page model.Page) ([]*model.ContactSubmission, int, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, storageError("count contact submissions", err)
	}
	items, err := s.repo.List(ctx, page.PerPage, page.Offset())
	if err != nil {
		return nil, 0, storageError("list contact submissions", err)
	}
	return items, total, nil
}

func (s *contactServiceImpl) Get(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundError(MsgSubmissionNotFound, err)
	}
	if err != nil {
		return nil, storageError("find contact submission", err)
	}
	return sub, nil
}

// UpdateStatus changes the status of a submission. Status is free text.
func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id int64, status string) error {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return storageError("update contact submission", err)
	}
	return nil
}

// Delete is idempotent: a missing id is not an error.
func (s *contactServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storageError("delete contact submission", err)
	}
	return nil
}

// blank reports whether any of the values is empty after trimming whitespace.
func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
