package repository

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	dropAllFile      = "000_drop_all.sql"
	consolidatedFile = "000_consolidated.sql"
	upSuffix         = ".up.sql"
)

// MigrationDB is the subset of *pgxpool.Pool used to apply schema migrations.
type MigrationDB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UpFiles returns the *.up.sql file names in fsys, sorted.
func UpFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), upSuffix) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func ensureSchemaMigrations(ctx context.Context, db MigrationDB) error {
	_, err := db.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	return err
}

// Migrate applies every *.up.sql file in fsys that is not yet recorded in
// schema_migrations and returns the names it applied. Running it against an
// up-to-date schema is a no-op.
func Migrate(ctx context.Context, db MigrationDB, fsys fs.FS) ([]string, error) {
	if err := ensureSchemaMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("ensure schema_migrations: %w", err)
	}
	files, err := UpFiles(fsys)
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, filename := range files {
		name := strings.TrimSuffix(filename, upSuffix)

		var exists bool
		if err := db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE name=$1)", name).Scan(&exists); err != nil {
			return applied, fmt.Errorf("check migration %s: %w", name, err)
		}
		if exists {
			continue
		}

		sql, err := fs.ReadFile(fsys, filename)
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.Exec(ctx, string(sql)); err != nil {
			return applied, fmt.Errorf("apply migration %s: %w", name, err)
		}
		if _, err := db.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name); err != nil {
			return applied, fmt.Errorf("record migration %s: %w", name, err)
		}
		applied = append(applied, name)
		slog.Info("migration applied", "migration", name)
	}
	return applied, nil
}

// DropAll drops every table owned by the service.
func DropAll(ctx context.Context, db MigrationDB, fsys fs.FS) error {
	return execFile(ctx, db, fsys, dropAllFile)
}

// ApplyConsolidated creates the full schema in one step and marks every
// *.up.sql migration as applied.
func ApplyConsolidated(ctx context.Context, db MigrationDB, fsys fs.FS) error {
	if err := execFile(ctx, db, fsys, consolidatedFile); err != nil {
		return err
	}
	if err := ensureSchemaMigrations(ctx, db); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}
	files, err := UpFiles(fsys)
	if err != nil {
		return err
	}
	for _, filename := range files {
		name := strings.TrimSuffix(filename, upSuffix)
		if _, err := db.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1) ON CONFLICT DO NOTHING", name); err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}
	}
	return nil
}

func execFile(ctx context.Context, db MigrationDB, fsys fs.FS, name string) error {
	sql, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if _, err := db.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("exec %s: %w", name, err)
	}
	return nil
}
