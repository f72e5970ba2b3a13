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

	"github.com/SscSPs/expense_tracker/internal/adapters/rateprovider/exchangerateapi"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/SscSPs/expense_tracker/internal/handlers"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/SscSPs/expense_tracker/internal/platform/metrics"
	"github.com/SscSPs/expense_tracker/internal/repositories/database/migrations"
	"github.com/SscSPs/expense_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/expense_tracker/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 30 * time.Second

// @title Expense Tracker API
// @version 1.0
// @description Multi-tenant expense tracking with USD/ARS normalization.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity provider JWT.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Running database migrations...")
	if err := migrations.Run(cfg.DatabaseURL, logger); err != nil {
		return err
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return err
		}
		redisClient = redis.NewClient(opts)
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.Error("Error closing redis client", slog.String("error", cerr.Error()))
			}
		}()
		logger.Info("Rate limiter uses redis store")
	}
	rateLimiter, err := middleware.NewLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rateMetrics := metrics.NewRateMetrics(registry)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	provider, err := exchangerateapi.NewClient(cfg.FxAPIKey,
		exchangerateapi.WithBaseURL(cfg.FxAPIBaseURL),
		exchangerateapi.WithMode(cfg.FxProviderMode),
		exchangerateapi.WithDirection(cfg.FxProviderDirection),
	)
	if err != nil {
		return err
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	container := services.NewServiceContainer(cfg, repos, provider, rateMetrics)

	if err := handlers.RegisterValidators(); err != nil {
		return err
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	corsCfg.ExposeHeaders = []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"}

	// Global middleware (cors, logging, recovery, metrics, rate limit)
	r.Use(
		cors.New(corsCfg),
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.Metrics(httpMetrics),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	handlers.RegisterRoutes(r, cfg, container)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server exited")
	return nil
}
