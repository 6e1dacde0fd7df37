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

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sangkips/salon-billing-api/internal/application/service"
	"github.com/sangkips/salon-billing-api/internal/config"
	"github.com/sangkips/salon-billing-api/internal/infrastructure/database"
	"github.com/sangkips/salon-billing-api/internal/infrastructure/repository"
	"github.com/sangkips/salon-billing-api/internal/logger"
	"github.com/sangkips/salon-billing-api/internal/presentation/http/handler"
	"github.com/sangkips/salon-billing-api/internal/presentation/http/middleware"
	"github.com/sangkips/salon-billing-api/internal/presentation/http/routes"
	"github.com/sangkips/salon-billing-api/internal/telemetry"
	"github.com/sangkips/salon-billing-api/pkg/utils"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	log := logger.New(os.Stdout, cfg.App.Env, cfg.Log.Level)
	slog.SetDefault(log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(&cfg.Database, log, cfg.App.Debug)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db, log); err != nil {
		return err
	}
	if cfg.Database.Seed {
		if err := database.SeedDemoSalon(db, cfg.Billing.DefaultTax, log); err != nil {
			log.Warn("Failed to seed demo salon", "error", err)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := telemetry.NewBillingMetrics(registry, "salon")

	// Repositories
	tenantRepo := repository.NewTenantRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	profileRepo := repository.NewCommissionProfileRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Services
	settingsService := service.NewSettingsService(settingsRepo, cfg.Billing, metrics)
	billingService := service.NewBillingService(settingsService, metrics)
	profileService := service.NewCommissionProfileService(profileRepo, metrics)
	staffService := service.NewStaffService(staffRepo, profileRepo)
	commissionService := service.NewCommissionService(service.CommissionServiceDeps{
		StaffRepo:   staffRepo,
		ProfileRepo: profileRepo,
		SaleRepo:    saleRepo,
		TenantRepo:  tenantRepo,
		Settings:    settingsService,
		Location:    cfg.Billing.Location,
		Metrics:     metrics,
		Logger:      log,
	})

	handlers := &routes.Handlers{
		Settings: handler.NewSettingsHandler(settingsService),
		Billing:  handler.NewBillingHandler(billingService),
		Profile:  handler.NewCommissionProfileHandler(profileService),
		Staff:    handler.NewStaffHandler(staffService),
		Report:   handler.NewReportHandler(commissionService, cfg.Billing.Location),
	}

	router := routes.Setup(ctx, handlers, &routes.Deps{
		Verifier:        utils.NewTokenVerifier(cfg.JWT.Secret),
		Cfg:             cfg,
		TenantRepo:      tenantRepo,
		IdempotencyRepo: idempotencyRepo,
		Metrics:         metrics,
		Gatherer:        registry,
		Logger:          log,
	})

	go middleware.PurgeExpiredKeys(ctx, idempotencyRepo, time.Hour, log)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", "name", cfg.App.Name, "port", port, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}
