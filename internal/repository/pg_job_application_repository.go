package repository

import (
	"context"
	"errors"

	"github.com/gurusoftware/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgJobApplicationRepository is the PostgreSQL implementation of JobApplicationRepository.
type PgJobApplicationRepository struct {
	pool *pgxpool.Pool
}

// NewPgJobApplicationRepository creates a PgJobApplicationRepository backed by the given pool.
func NewPgJobApplicationRepository(pool *pgxpool.Pool) *PgJobApplicationRepository {
	return &PgJobApplicationRepository{pool: pool}
}

var _ JobApplicationRepository = (*PgJobApplicationRepository)(nil)

const jobApplicationColumns = `id, role, name, email, phone, experience, COALESCE(message, ''),
	resume_filename, applied_at, status`

// Create inserts a new job_applications row and populates a.ID and
// a.AppliedAt from the RETURNING clause.
func (r *PgJobApplicationRepository) Create(ctx context.Context, a *model.JobApplication) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO job_applications (role, name, email, phone, experience, message, resume_filename, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, applied_at`,
		a.Role, a.Name, a.Email, a.Phone, a.Experience, a.Message, a.ResumeFilename, a.Status,
	).Scan(&a.ID, &a.AppliedAt)
}

// FindByID returns ErrNotFound when no row has the given id.
func (r *PgJobApplicationRepository) FindByID(ctx context.Context, id int64) (*model.JobApplication, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+jobApplicationColumns+` FROM job_applications WHERE id = $1`, id)
	a, err := scanJobApplication(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List returns applications newest first.
func (r *PgJobApplicationRepository) List(ctx context.Context, limit, offset int) ([]*model.JobApplication, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+jobApplicationColumns+`
		 FROM job_applications
		 ORDER BY applied_at DESC, id DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.JobApplication
	for rows.Next() {
		a, err := scanJobApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PgJobApplicationRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM job_applications`).Scan(&n)
	return n, err
}

func (r *PgJobApplicationRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM job_applications WHERE status = $1`, status).Scan(&n)
	return n, err
}

// UpdateStatus sets the status of an application. Updating a missing id is not an error.
func (r *PgJobApplicationRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.pool.Exec(ctx, `UPDATE job_applications SET status = $1 WHERE id = $2`, status, id)
	return err
}

// Delete removes an application. Deleting a missing id is not an error.
func (r *PgJobApplicationRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM job_applications WHERE id = $1`, id)
	return err
}

func scanJobApplication(row pgx.Row) (*model.JobApplication, error) {
	var a model.JobApplication
	err := row.Scan(&a.ID, &a.Role, &a.Name, &a.Email, &a.Phone, &a.Experience, &a.Message,
		&a.ResumeFilename, &a.AppliedAt, &a.Status)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
