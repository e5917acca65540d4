package rest

import (
	"log/slog"
	"net/http"

	"github.com/xploar/xploar-backend/internal/config"
	"github.com/xploar/xploar-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth           *AuthHandler
	Plan           *PlanHandler
	Performance    *PerformanceHandler
	Essay          *EssayHandler
	Recommendation *RecommendationHandler
	Health         *HealthHandler
}

// NewRouter assembles the API routes with the shared middleware chain.
// authMW resolves bearer tokens to context user ids; requests without
// a token pass through anonymously and fail per-handler.
func NewRouter(
	h Handlers,
	authMW middleware.Middleware,
	limiter *middleware.RateLimiter,
	cfg config.Config,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/signup", h.Auth.Signup)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/reset", h.Auth.Reset)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /api/plan", h.Plan.Get)
	mux.HandleFunc("POST /api/plan/generate", h.Plan.Generate)
	mux.HandleFunc("POST /api/plan/tasks/{id}/toggle", h.Plan.ToggleTask)
	mux.HandleFunc("DELETE /api/plan", h.Plan.Delete)

	mux.HandleFunc("POST /api/mocks", h.Performance.SaveMockRun)
	mux.HandleFunc("GET /api/mocks", h.Performance.ListMockRuns)
	mux.HandleFunc("POST /api/performance/mcq", h.Performance.RecordMcq)
	mux.HandleFunc("GET /api/performance", h.Performance.Stats)
	mux.HandleFunc("GET /api/performance/weakest", h.Performance.WeakestTopics)

	mux.HandleFunc("POST /api/essays/evaluate", h.Essay.Evaluate)

	mux.HandleFunc("POST /api/recommendations/generate", h.Recommendation.Generate)
	mux.HandleFunc("GET /api/recommendations", h.Recommendation.List)
	mux.HandleFunc("POST /api/recommendations/{id}/complete", h.Recommendation.Complete)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RatePerMinute),
		authMW,
	)
	return chain(mux)
}
