package service

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/gurusoftware/backend/internal/model"
	"github.com/gurusoftware/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// memContactRepo: in-memory ContactRepository for unit tests
// ---------------------------------------------------------------------------

type memContactRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*model.ContactSubmission
	err    error

	lastLimit, lastOffset int
}

func newMemContactRepo() *memContactRepo {
	return &memContactRepo{rows: make(map[int64]*model.ContactSubmission)}
}

func (r *memContactRepo) Create(ctx context.Context, s *model.ContactSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	s.ID = r.nextID
	s.SubmittedAt = time.Now().Add(time.Duration(r.nextID) * time.Millisecond)
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}

func (r *memContactRepo) FindByID(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
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
	r.lastLimit, r.lastOffset = limit, offset
	if r.err != nil {
		return nil, r.err
	}
	var all []*model.ContactSubmission
	for _, s := range r.rows {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *memContactRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	return len(r.rows), nil
}

func (r *memContactRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	n := 0
	for _, s := range r.rows {
		if s.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *memContactRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if s, ok := r.rows[id]; ok {
		s.Status = status
	}
	return nil
}

func (r *memContactRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	delete(r.rows, id)
	return nil
}

// ---------------------------------------------------------------------------
// memJobApplicationRepo: in-memory JobApplicationRepository for unit tests
// ---------------------------------------------------------------------------

type memJobApplicationRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*model.JobApplication
	err    error
}

func newMemJobApplicationRepo() *memJobApplicationRepo {
	return &memJobApplicationRepo{rows: make(map[int64]*model.JobApplication)}
}

func (r *memJobApplicationRepo) Create(ctx context.Context, a *model.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
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
	if r.err != nil {
		return nil, r.err
	}
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
	if r.err != nil {
		return nil, r.err
	}
	var all []*model.JobApplication
	for _, a := range r.rows {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *memJobApplicationRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	return len(r.rows), nil
}

func (r *memJobApplicationRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	n := 0
	for _, a := range r.rows {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *memJobApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if a, ok := r.rows[id]; ok {
		a.Status = status
	}
	return nil
}

func (r *memJobApplicationRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	delete(r.rows, id)
	return nil
}

// ---------------------------------------------------------------------------
// memStorage: in-memory storage.Storage
// ---------------------------------------------------------------------------

type memStorage struct {
	files   map[string][]byte
	saveErr error
	deleted []string
}

func newMemStorage() *memStorage {
	return &memStorage{files: make(map[string][]byte)}
}

func (s *memStorage) Save(ctx context.Context, key string, data io.Reader, size int64, contentType string) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	b, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	s.files[key] = b
	return "mem://" + key, nil
}

func (s *memStorage) Delete(ctx context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	delete(s.files, key)
	return nil
}
