package handler

import (
	"net/http"

	"github.com/gurusoftware/backend/internal/ratelimit"
	"github.com/gurusoftware/backend/internal/repository"
	"github.com/gurusoftware/backend/internal/service"
)

// RouterConfig holds the settings the HTTP layer needs.
type RouterConfig struct {
	CORSOrigin        string
	MaxContentLength  int64
	FrontendDir       string
	AdminDir          string
	Pages             PageConfig
	TrustedProxyCount int
}

// Services groups the dependencies behind the API routes.
// Limiter may be nil, which disables rate limiting on submissions.
type Services struct {
	DB           repository.DB
	Contacts     service.ContactService
	Applications service.JobApplicationService
	Statistics   service.StatisticsService
	Limiter      ratelimit.Limiter
}

// NewRouter registers every route and wraps the mux in the middleware chain:
// request id → request log → recover → security headers → CORS → body cap.
func NewRouter(cfg RouterConfig, svc Services) http.Handler {
	h := New(svc.DB, cfg.CORSOrigin)
	contactHandler := NewContactHandler(svc.Contacts, cfg.Pages)
	applicationHandler := NewJobApplicationHandler(svc.Applications, cfg.Pages)
	statisticsHandler := NewStatisticsHandler(svc.Statistics)
	staticHandler := NewStaticHandler(cfg.FrontendDir, cfg.AdminDir)

	limit := func(next http.HandlerFunc) http.Handler {
		if svc.Limiter == nil {
			return next
		}
		return RateLimit(svc.Limiter, cfg.TrustedProxyCount)(next)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	// 公開フォーム（レート制限あり）
	mux.Handle("POST /api/contact", limit(contactHandler.Submit))
	mux.Handle("POST /api/apply-job", limit(applicationHandler.Submit))

	// Admin: contact submissions
	mux.HandleFunc("GET /api/contact-submissions", contactHandler.List)
	mux.HandleFunc("GET /api/contact-submission/{id}", contactHandler.Get)
	mux.HandleFunc("PUT /api/contact-submission/{id}", contactHandler.Update)
	mux.HandleFunc("DELETE /api/contact-submission/{id}", contactHandler.Delete)

	// Admin: job applications
	mux.HandleFunc("GET /api/job-applications", applicationHandler.List)
	mux.HandleFunc("GET /api/job-application/{id}", applicationHandler.Get)
	mux.HandleFunc("PUT /api/job-application/{id}", applicationHandler.Update)
	mux.HandleFunc("DELETE /api/job-application/{id}", applicationHandler.Delete)

	mux.HandleFunc("GET /api/statistics", statisticsHandler.Get)

	// /api/ 配下の未定義ルートは JSON 404
	mux.HandleFunc("/api/", APINotFound)

	// 静的ファイル（メソッド判定は StaticHandler 側）
	mux.Handle("/", staticHandler)

	var root http.Handler = mux
	root = MaxBodySize(cfg.MaxContentLength)(root)
	root = h.CORS(root)
	root = SecurityHeaders(root)
	root = Recoverer(root)
	root = RequestLogger(root)
	root = RequestID(root)
	return root
}
