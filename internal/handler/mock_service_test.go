package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gurusoftware/backend/internal/model"
	"github.com/gurusoftware/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc       func(ctx context.Context, sub *model.ContactSubmission) error
	listFunc         func(ctx context.Context, page model.Page) ([]*model.ContactSubmission, int, error)
	getFunc          func(ctx context.Context, id int64) (*model.ContactSubmission, error)
	updateStatusFunc func(ctx context.Context, id int64, status string) error
	deleteFunc       func(ctx context.Context, id int64) error
}

func (m *mockContactService) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, sub)
	}
	return nil
}

func (m *mockContactService) List(ctx context.Context, page model.Page) ([]*model.ContactSubmission, int, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, page)
	}
	return nil, 0, nil
}

func (m *mockContactService) Get(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, &service.Error{Kind: service.KindNotFound, Message: service.MsgSubmissionNotFound}
}

func (m *mockContactService) UpdateStatus(ctx context.Context, id int64, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockContactService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mock JobApplicationService
// ---------------------------------------------------------------------------

type mockJobApplicationService struct {
	submitFunc       func(ctx context.Context, a *model.JobApplication, resume *service.ResumeUpload) error
	listFunc         func(ctx context.Context, page model.Page) ([]*model.JobApplication, int, error)
	getFunc          func(ctx context.Context, id int64) (*model.JobApplication, error)
	updateStatusFunc func(ctx context.Context, id int64, status string) error
	deleteFunc       func(ctx context.Context, id int64) error
}

func (m *mockJobApplicationService) Submit(ctx context.Context, a *model.JobApplication, resume *service.ResumeUpload) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, a, resume)
	}
	return nil
}

func (m *mockJobApplicationService) List(ctx context.Context, page model.Page) ([]*model.JobApplication, int, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, page)
	}
	return nil, 0, nil
}

func (m *mockJobApplicationService) Get(ctx context.Context, id int64) (*model.JobApplication, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, &service.Error{Kind: service.KindNotFound, Message: service.MsgApplicationNotFound}
}

func (m *mockJobApplicationService) UpdateStatus(ctx context.Context, id int64, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockJobApplicationService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mock StatisticsService
// ---------------------------------------------------------------------------

type mockStatisticsService struct {
	getFunc func(ctx context.Context) (*model.Statistics, error)
}

func (m *mockStatisticsService) Get(ctx context.Context) (*model.Statistics, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx)
	}
	return &model.Statistics{}, nil
}

// ---------------------------------------------------------------------------
// Mock Limiter
// ---------------------------------------------------------------------------

type mockLimiter struct {
	allowFunc func(key string) (bool, time.Duration)
	keys      []string
}

func (m *mockLimiter) Allow(key string) (bool, time.Duration) {
	m.keys = append(m.keys, key)
	if m.allowFunc != nil {
		return m.allowFunc(key)
	}
	return true, 0
}

var testPages = PageConfig{DefaultPerPage: 10, MaxPerPage: 100}

func validationErr(msg string) error {
	return &service.Error{Kind: service.KindValidation, Message: msg}
}

func decodeFailure(t testing.TB, body *bytes.Buffer) errorResponse {
	t.Helper()
	var resp errorResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v (body=%s)", err, body.String())
	}
	return resp
}
