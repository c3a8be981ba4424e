package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"techflow-web-backend/config"
	_ "techflow-web-backend/docs" // Important for Swagger
	v1 "techflow-web-backend/internal/delivery/http/v1"
	"techflow-web-backend/internal/dispatcher"
	"techflow-web-backend/internal/domain"
	"techflow-web-backend/internal/metrics"
	"techflow-web-backend/internal/pricing"
	"techflow-web-backend/internal/repository/postgres"
	"techflow-web-backend/internal/usecase"
	"techflow-web-backend/pkg/database"
	"techflow-web-backend/pkg/email"
	"techflow-web-backend/pkg/logger"
	"techflow-web-backend/pkg/redis"
	"techflow-web-backend/pkg/security"
	"techflow-web-backend/pkg/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title           TechFlow Web Backend API
// @version         1.0
// @description     Lead capture and web cost calculator for the TechFlow AI site.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting techflow web backend", "port", cfg.Port, "env", cfg.Env)

	secLog := security.InitSecurityLogger("techflow-web-backend", cfg.Env)
	defer func() { _ = secLog.Sync() }()

	rootCtx := context.Background()

	// 3. Setup Redis (optional, rate limiter falls back to memory)
	var redisPing usecase.PingFunc
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		} else {
			redisPing = redis.HealthCheck
			defer redis.Close()
		}
	}

	// 4. Setup Database (optional lead archive)
	var leadRepo domain.LeadRepository
	if cfg.DatabaseEnabled() {
		dbPool, err := database.NewPostgresConnection(rootCtx, cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database, database sink disabled", "error", err)
		} else {
			defer dbPool.Close()
			leadRepo = postgres.NewLeadRepository(dbPool)
		}
	}

	// 5. Setup Email
	renderer, err := email.NewRenderer()
	if err != nil {
		logger.Log.Error("Failed to parse email templates", "error", err)
		os.Exit(1)
	}
	sender, err := email.NewSender(rootCtx, cfg)
	if err != nil {
		logger.Log.Error("Failed to build email sender, email sink disabled", "error", err)
	}

	// 6. Setup Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	leadMetrics := metrics.NewLeadMetrics(registry)

	// 7. Setup Dispatcher
	sinks := dispatcher.BuildSinks(cfg, dispatcher.SinkDeps{
		EmailSender: sender,
		Renderer:    renderer,
		LeadRepo:    leadRepo,
		HTTPClient:  &http.Client{Timeout: cfg.SinkTimeout + 5*time.Second},
	})
	leadDispatcher := dispatcher.New(sinks,
		dispatcher.WithTimeout(cfg.SinkTimeout),
		dispatcher.WithMetrics(leadMetrics),
	)
	logger.Log.Info("Lead sinks enabled", "sinks", leadDispatcher.SinkNames())

	// 8. Setup UseCases
	validate := validation.New()
	leadUC := usecase.NewLeadUsecase(leadDispatcher, validate, leadMetrics)
	estimateUC := usecase.NewEstimateUsecase(pricing.DefaultTable(), validate)
	siteUC := usecase.NewSiteUsecase(cfg, leadDispatcher.SinkNames(), redisPing)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		LeadUC:     leadUC,
		EstimateUC: estimateUC,
		SiteUC:     siteUC,
		Config:     cfg,
		Gatherer:   registry,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	// in-flight fan-outs can take up to one sink timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.SinkTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
