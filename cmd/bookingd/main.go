package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Supremetechy/go-ham/internal/alerts"
	"github.com/Supremetechy/go-ham/internal/api/router"
	"github.com/Supremetechy/go-ham/internal/app/bootstrap"
	"github.com/Supremetechy/go-ham/internal/booking"
	"github.com/Supremetechy/go-ham/internal/clock"
	appconfig "github.com/Supremetechy/go-ham/internal/config"
	"github.com/Supremetechy/go-ham/internal/followup"
	"github.com/Supremetechy/go-ham/internal/observability/metrics"
	"github.com/Supremetechy/go-ham/internal/schedule"
	"github.com/Supremetechy/go-ham/internal/scheduling"
	"github.com/Supremetechy/go-ham/internal/workers"
	"github.com/Supremetechy/go-ham/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting booking engine",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()
	m := metrics.NewSchedulingMetrics(prometheus.DefaultRegisterer)

	// Notification channels
	emailSender := bootstrap.BuildEmailSender(ctx, cfg, logger)
	smsSender := bootstrap.BuildSMSSender(cfg, logger)

	// Alert audit trail: Redis when configured, otherwise discarded.
	var alertLog alerts.Log = alerts.NopLog{}
	if redisClient := bootstrap.BuildRedisClient(ctx, cfg, logger, true); redisClient != nil {
		alertLog = alerts.NewRedisLog(redisClient)
		logger.Info("alert log enabled", "redis_addr", cfg.RedisAddr)
	}

	// Stores: Postgres when configured, in-memory otherwise.
	var repo schedule.Repository
	var dir workers.Directory
	if pool := bootstrap.BuildPgxPool(ctx, cfg, logger); pool != nil {
		defer pool.Close()
		repo = schedule.NewStore(pool, cfg.BufferMinutes, cfg.MaxDailyBookings)
		dir = workers.NewStore(pool)
		logger.Info("using postgres stores")
	} else {
		repo = schedule.NewMemoryStore(cfg.BufferMinutes, cfg.MaxDailyBookings)
		dir = workers.NewMemoryDirectory(workers.DefaultRoster())
		logger.Info("using in-memory stores")
	}

	rules := scheduling.DefaultRules(cfg)
	catalog := booking.DefaultCatalog()
	admin := alerts.Admin{Email: cfg.AdminEmail, Phone: cfg.AdminPhone}
	brand := alerts.Branding{CompanyName: cfg.CompanyName, CompanyPhone: cfg.CompanyPhone}

	dispatcher := alerts.NewDispatcher(emailSender, smsSender, dir, admin, brand, alertLog, m, logger)
	followups := followup.NewScheduler(emailSender, smsSender, clock.System{}, followup.Branding{
		CompanyName:   cfg.CompanyName,
		CompanyPhone:  cfg.CompanyPhone,
		FeedbackEmail: cfg.AdminEmail,
		ReviewURL:     "https://google.com/business/reviews",
	}, m, logger)
	finder := scheduling.NewFinder(dir, repo, catalog, scheduling.ZoneDistanceProvider{}, rules, logger)
	orch := scheduling.NewOrchestrator(
		scheduling.NewValidator(rules), finder, repo, catalog,
		dispatcher, followups, rules, m, logger, nil,
	)

	r := router.New(&router.Config{
		Logger:             logger,
		BookingHandler:     scheduling.NewHandler(orch, logger),
		AlertLog:           alerts.NewHandler(alertLog, logger),
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerSecond: cfg.RateLimitPerSecond,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
