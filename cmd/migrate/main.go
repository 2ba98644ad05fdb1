package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gurusoftware/backend/internal/config"
	"github.com/gurusoftware/backend/internal/logging"
	"github.com/gurusoftware/backend/internal/repository"
	"github.com/gurusoftware/backend/migrations"
	"github.com/joho/godotenv"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)   差分マイグレーションを適用
  reset       全テーブルを DROP し、集約スキーマで再作成
  fresh       全テーブルを DROP し、全マイグレーションを順番に適用`)
	os.Exit(1)
}

func main() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "":
		runIncremental(ctx, pool)
	case "reset":
		runDropAll(ctx, pool)
		runConsolidated(ctx, pool)
	case "fresh":
		runDropAll(ctx, pool)
		runIncremental(ctx, pool)
	default:
		usage()
	}
}

// ---------------------------------------------------------------------------
// (default) 差分マイグレーション
// ---------------------------------------------------------------------------
func runIncremental(ctx context.Context, db repository.MigrationDB) {
	applied, err := repository.Migrate(ctx, db, migrations.FS)
	if err != nil {
		logging.Fatal("migration failed", "error", err)
	}
	if len(applied) == 0 {
		slog.Info("all migrations already applied")
	} else {
		slog.Info("migrations completed", "count", len(applied))
	}
}

// ---------------------------------------------------------------------------
// 全テーブル DROP
// ---------------------------------------------------------------------------
func runDropAll(ctx context.Context, db repository.MigrationDB) {
	slog.Info("dropping all tables")
	if err := repository.DropAll(ctx, db, migrations.FS); err != nil {
		logging.Fatal("drop all failed", "error", err)
	}
	slog.Info("all tables dropped")
}

// ---------------------------------------------------------------------------
// 集約スキーマで再作成
// ---------------------------------------------------------------------------
func runConsolidated(ctx context.Context, db repository.MigrationDB) {
	slog.Info("applying consolidated schema")
	if err := repository.ApplyConsolidated(ctx, db, migrations.FS); err != nil {
		logging.Fatal("consolidated apply failed", "error", err)
	}
	slog.Info("consolidated schema applied")
}
