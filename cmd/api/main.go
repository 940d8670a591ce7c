package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/vaultpass/passmeter/internal/config"
	"github.com/vaultpass/passmeter/internal/crypto"
	"github.com/vaultpass/passmeter/internal/handler"
	"github.com/vaultpass/passmeter/internal/middleware"
	"github.com/vaultpass/passmeter/internal/repository"
	"github.com/vaultpass/passmeter/internal/service"
	"github.com/vaultpass/passmeter/internal/strength"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var estimator strength.Estimator = strength.NewZxcvbnEstimator()
	if cfg.Estimator == config.EstimatorHeuristic {
		estimator = strength.NewHeuristicEstimator()
	}

	composerCfg := strength.DefaultComposerConfig()
	composerCfg.IncludeEntropy = cfg.SuggestEntropy

	// Statistics are optional; without a database the API still serves every
	// strength endpoint.
	var recorder service.StatsRecorder
	var statsHandler *handler.StatsHandler
	if cfg.StatsEnabled() {
		db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
		if err != nil {
			slog.Warn("database connection failed, stats disabled", "error", err)
		} else if err := repository.Migrate(ctx, db); err != nil {
			slog.Warn("database migration failed, stats disabled", "error", err)
			db.Close()
		} else {
			defer db.Close()
			statsRepo := repository.NewStatsRepository(db)
			recorder = statsRepo
			statsHandler = handler.NewStatsHandler(service.NewStatsService(statsRepo))
		}
	}

	strengthService := service.NewStrengthService(
		strength.NewScorer(estimator),
		strength.NewComposer(composerCfg),
		cfg.MaxPasswordLength,
		recorder,
	)
	strengthHandler := handler.NewStrengthHandler(strengthService)
	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(strengthService))
	enhanceHandler := handler.NewEnhanceHandler(service.NewEnhancerService(strengthService))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.SecurityHeaders)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/evaluate", strengthHandler.HandleEvaluate)
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/enhance", enhanceHandler.HandleEnhance)
	})

	if statsHandler != nil {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireScope(cfg.JWTSecret, crypto.ScopeStats))
			r.Get("/api/v1/stats", statsHandler.HandleStats)
		})
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "estimator", cfg.Estimator, "stats", statsHandler != nil)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func setupLogger(env string) {
	var h slog.Handler
	if env == "production" {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(h))
}
