package handler

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gurusoftware/backend/internal/model"
	"github.com/gurusoftware/backend/internal/repository"
)

// In-memory repositories so router tests can run the real services.

type memContactRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*model.ContactSubmission
}

func newMemContactRepo() *memContactRepo {
	return &memContactRepo{rows: make(map[int64]*model.ContactSubmission)}
}

func (r *memContactRepo) Create(ctx context.Context, s *model.ContactSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	s.ID = r.nextID
	s.SubmittedAt = time.Now()
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}

func (r *memContactRepo) FindByID(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memContactRepo) List(ctx context.Context, limit, offset int) ([]*model.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*model.ContactSubmission, 0, len(r.rows))
	for _, s := range r.rows {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return pageOf(all, limit, offset), nil
}

func (r *memContactRepo) Count(ctx context.Context) (int, error) {
	return r.CountByStatus(ctx, "")
}

func (r *memContactRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.rows {
		if status == "" || s.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *memContactRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.rows[id]; ok {
		s.Status = status
	}
	return nil
}

func (r *memContactRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

type memJobApplicationRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*model.JobApplication
}

func newMemJobApplicationRepo() *memJobApplicationRepo {
	return &memJobApplicationRepo{rows: make(map[int64]*model.JobApplication)}
}

func (r *memJobApplicationRepo) Create(ctx context.Context, a *model.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	a.ID = r.nextID
	a.AppliedAt = time.Now()
	cp := *a
	r.rows[a.ID] = &cp
	return nil
}

func (r *memJobApplicationRepo) FindByID(ctx context.Context, id int64) (*model.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memJobApplicationRepo) List(ctx context.Context, limit, offset int) ([]*model.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*model.JobApplication, 0, len(r.rows))
	for _, a := range r.rows {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return pageOf(all, limit, offset), nil
}

func (r *memJobApplicationRepo) Count(ctx context.Context) (int, error) {
	return r.CountByStatus(ctx, "")
}

func (r *memJobApplicationRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, a := range r.rows {
		if status == "" || a.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *memJobApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.rows[id]; ok {
		a.Status = status
	}
	return nil
}

func (r *memJobApplicationRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func pageOf[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}
