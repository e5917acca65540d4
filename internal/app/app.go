package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/xploar/xploar-backend/internal/adapter/postgres"
	authmethodrepo "github.com/xploar/xploar-backend/internal/adapter/postgres/authmethod"
	mockrunrepo "github.com/xploar/xploar-backend/internal/adapter/postgres/mockrun"
	performancerepo "github.com/xploar/xploar-backend/internal/adapter/postgres/performance"
	recommendationrepo "github.com/xploar/xploar-backend/internal/adapter/postgres/recommendation"
	studyplanrepo "github.com/xploar/xploar-backend/internal/adapter/postgres/studyplan"
	tokenrepo "github.com/xploar/xploar-backend/internal/adapter/postgres/token"
	userrepo "github.com/xploar/xploar-backend/internal/adapter/postgres/user"
	"github.com/xploar/xploar-backend/internal/adapter/provider/gemini"
	"github.com/xploar/xploar-backend/internal/auth"
	"github.com/xploar/xploar-backend/internal/config"
	authservice "github.com/xploar/xploar-backend/internal/service/auth"
	performanceservice "github.com/xploar/xploar-backend/internal/service/performance"
	"github.com/xploar/xploar-backend/internal/service/planner"
	recommendationservice "github.com/xploar/xploar-backend/internal/service/recommendation"
	"github.com/xploar/xploar-backend/internal/transport/middleware"
	"github.com/xploar/xploar-backend/internal/transport/rest"
)

// tokenCleanupInterval controls how often expired refresh tokens are
// purged from the database.
const tokenCleanupInterval = 12 * time.Hour

// Run is the application entry point. It loads configuration, wires
// repositories and services, and serves the REST API until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := runMigrations(ctx, logger, cfg.Database); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	tx := postgres.NewTxManager(pool)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	authMethods := authmethodrepo.New(pool)
	plans := studyplanrepo.New(pool)
	mockRuns := mockrunrepo.New(pool)
	stats := performancerepo.New(pool)
	recommendations := recommendationrepo.New(pool)

	aiClient := gemini.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout, cfg.AI.RetryAttempts)

	authSvc := authservice.NewService(logger, users, tokens, authMethods, tx, jwtManager, cfg.Auth)
	planSvc := planner.NewService(logger, plans, tx, cfg.Plan)
	perfSvc := performanceservice.NewService(logger, mockRuns, stats)
	recSvc := recommendationservice.NewService(logger, recommendations, stats, aiClient)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(
		rest.Handlers{
			Auth:           rest.NewAuthHandler(authSvc, logger),
			Plan:           rest.NewPlanHandler(planSvc, logger),
			Performance:    rest.NewPerformanceHandler(perfSvc, logger),
			Essay:          rest.NewEssayHandler(cfg.Evaluation, logger),
			Recommendation: rest.NewRecommendationHandler(recSvc, logger),
			Health:         rest.NewHealthHandler(pool, BuildVersion()),
		},
		middleware.Auth(authSvc),
		limiter,
		*cfg,
		logger,
	)

	go cleanupTokens(ctx, logger, authSvc)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// runMigrations applies pending goose migrations before the pool is
// opened. goose needs database/sql, so it gets its own short-lived
// connection through the pgx stdlib driver.
func runMigrations(ctx context.Context, logger *slog.Logger, cfg config.DatabaseConfig) error {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(cfg.MigrationsDir))
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	if len(results) > 0 {
		logger.Info("migrations applied", slog.Int("count", len(results)))
	}
	return nil
}

func cleanupTokens(ctx context.Context, logger *slog.Logger, svc *authservice.Service) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := svc.CleanupExpiredTokens(ctx)
			if err != nil {
				logger.Warn("token cleanup failed", "error", err)
				continue
			}
			if n > 0 {
				logger.Info("expired tokens removed", slog.Int("count", n))
			}
		}
	}
}
