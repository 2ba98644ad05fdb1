package repository

import (
	"context"
	"errors"

	"github.com/gurusoftware/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

const contactColumns = `id, name, email, COALESCE(phone, ''), subject, message, submitted_at, status`

// Create inserts a new contact_submissions row and populates s.ID and
// s.SubmittedAt from the RETURNING clause.
func (r *PgContactRepository) Create(ctx context.Context, s *model.ContactSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, phone, subject, message, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, submitted_at`,
		s.Name, s.Email, s.Phone, s.Subject, s.Message, s.Status,
	).Scan(&s.ID, &s.SubmittedAt)
}

// FindByID returns ErrNotFound when no row has the given id.
func (r *PgContactRepository) FindByID(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+contactColumns+` FROM contact_submissions WHERE id = $1`, id)
	s, err := scanContact(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List returns submissions newest first.
func (r *PgContactRepository) List(ctx context.Context, limit, offset int) ([]*model.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactColumns+`
		 FROM contact_submissions
		 ORDER BY submitted_at DESC, id DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.ContactSubmission
	for rows.Next() {
		s, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PgContactRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&n)
	return n, err
}

func (r *PgContactRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_submissions WHERE status = $1`, status).Scan(&n)
	return n, err
}

// UpdateStatus sets the status of a submission. Updating a missing id is not an error.
func (r *PgContactRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.pool.Exec(ctx, `UPDATE contact_submissions SET status = $1 WHERE id = $2`, status, id)
	return err
}

// Delete removes a submission. Deleting a missing id is not an error.
func (r *PgContactRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM contact_submissions WHERE id = $1`, id)
	return err
}

func scanContact(row pgx.Row) (*model.ContactSubmission, error) {
	var s model.ContactSubmission
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Subject, &s.Message, &s.SubmittedAt, &s.Status); err != nil {
		return nil, err
	}
	return &s, nil
}
