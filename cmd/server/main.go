package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gurusoftware/backend/internal/config"
	"github.com/gurusoftware/backend/internal/handler"
	"github.com/gurusoftware/backend/internal/logging"
	"github.com/gurusoftware/backend/internal/ratelimit"
	"github.com/gurusoftware/backend/internal/repository"
	"github.com/gurusoftware/backend/internal/service"
	"github.com/gurusoftware/backend/internal/storage"
	"github.com/gurusoftware/backend/migrations"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	// スキーマは起動時に冪等に適用する
	applied, err := repository.Migrate(ctx, pool, migrations.FS)
	if err != nil {
		logging.Fatal("failed to apply migrations", "error", err)
	}
	slog.Info("schema ready", "applied", len(applied))

	resumeStorage, err := newStorage(cfg)
	if err != nil {
		logging.Fatal("failed to initialise resume storage", "error", err)
	}

	limiter, closeLimiter, err := newLimiter(ctx, cfg)
	if err != nil {
		logging.Fatal("failed to initialise rate limiter", "error", err)
	}
	defer closeLimiter()

	contactRepo := repository.NewPgContactRepository(pool)
	applicationRepo := repository.NewPgJobApplicationRepository(pool)
	resumes := service.NewResumeStore(resumeStorage, cfg.AllowedExtensions)

	router := handler.NewRouter(handler.RouterConfig{
		CORSOrigin:        cfg.CORSOrigin,
		MaxContentLength:  cfg.MaxContentLength,
		FrontendDir:       cfg.FrontendDir,
		AdminDir:          cfg.AdminDir,
		TrustedProxyCount: cfg.TrustedProxyCount,
		Pages: handler.PageConfig{
			DefaultPerPage: cfg.DefaultPerPage,
			MaxPerPage:     cfg.MaxPerPage,
		},
	}, handler.Services{
		DB:           pool,
		Contacts:     service.NewContactService(contactRepo),
		Applications: service.NewJobApplicationService(applicationRepo, resumes),
		Statistics:   service.NewStatisticsService(contactRepo, applicationRepo),
		Limiter:      limiter,
	})

	if !cfg.Production() {
		// 開発モード: タイムアウトなし、グレースフルシャットダウンなし
		slog.Info("server listening", "addr", cfg.Addr(), "mode", cfg.Mode)
		if err := http.ListenAndServe(cfg.Addr(), router); err != nil {
			logging.Fatal("server error", "error", err)
		}
		return
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", server.Addr, "mode", cfg.Mode)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	<-sigCtx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// newStorage は MINIO_ENDPOINT が設定されていれば MinIO、なければローカルディスクを返す
func newStorage(cfg config.Config) (storage.Storage, error) {
	if cfg.MinioEndpoint != "" {
		slog.Info("resume storage: minio", "endpoint", cfg.MinioEndpoint, "bucket", cfg.MinioBucket)
		return storage.NewMinioStorage(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	}
	slog.Info("resume storage: local", "dir", cfg.UploadDir)
	return storage.NewLocalStorage(cfg.UploadDir)
}

// newLimiter returns nil when rate limiting is disabled, a Redis limiter when
// REDIS_ADDR is set, and an in-process sliding window otherwise.
func newLimiter(ctx context.Context, cfg config.Config) (ratelimit.Limiter, func(), error) {
	noop := func() {}
	if cfg.RateLimitPerMinute == 0 {
		slog.Info("rate limiting disabled")
		return nil, noop, nil
	}
	if cfg.RedisAddr != "" {
		l, err := ratelimit.NewRedisFixedWindowLimiter(cfg.RedisAddr, cfg.RedisPassword, "", cfg.RateLimitPerMinute, time.Minute)
		if err != nil {
			return nil, noop, err
		}
		slog.Info("rate limiter: redis", "addr", cfg.RedisAddr, "per_minute", cfg.RateLimitPerMinute)
		return l, func() { _ = l.Close() }, nil
	}
	slog.Info("rate limiter: in-memory", "per_minute", cfg.RateLimitPerMinute)
	return ratelimit.NewSlidingWindowLimiter(ctx, cfg.RateLimitPerMinute, time.Minute), noop, nil
}
