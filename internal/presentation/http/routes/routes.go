package routes

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sangkips/salon-billing-api/internal/config"
	domainRepo "github.com/sangkips/salon-billing-api/internal/domain/repository"
	"github.com/sangkips/salon-billing-api/internal/presentation/http/handler"
	"github.com/sangkips/salon-billing-api/internal/presentation/http/middleware"
	"github.com/sangkips/salon-billing-api/internal/telemetry"
	"github.com/sangkips/salon-billing-api/pkg/utils"
)

// Roles allowed to change salon configuration
var managerRoles = []string{"owner", "manager", "admin"}

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Settings *handler.SettingsHandler
	Billing  *handler.BillingHandler
	Profile  *handler.CommissionProfileHandler
	Staff    *handler.StaffHandler
	Report   *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Verifier        *utils.TokenVerifier
	Cfg             *config.Config
	TenantRepo      domainRepo.TenantRepository
	IdempotencyRepo domainRepo.IdempotencyRepository
	Metrics         *telemetry.BillingMetrics
	// Gatherer serves /metrics; nil skips the endpoint
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// Setup creates the Gin router and registers all routes. Background work
// started for the router stops when ctx is done.
func Setup(ctx context.Context, h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.MetricsMiddleware(deps.Metrics))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.Verifier))

		requests, window := deps.Cfg.RateLimit.Requests, deps.Cfg.RateLimit.Duration
		if window <= 0 {
			window = 60
		}
		rateLimiter := middleware.NewTenantRateLimiter(ctx, middleware.RateLimiterConfig{
			RequestsPerSecond: float64(requests) / float64(window),
			BurstSize:         requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())
		protected.Use(middleware.TenantMiddleware(deps.TenantRepo))

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotent := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
		TTL:  deps.Cfg.Billing.IdempotencyTTL,
		Log:  deps.Logger,
	})
	manager := middleware.RequireRole(managerRoles...)

	// Settings
	settings := protected.Group("/settings")
	{
		settings.GET("/tax", h.Settings.GetTaxSettings)
		settings.PUT("/tax", manager, h.Settings.UpdateTaxSettings)
		settings.GET("/commission", h.Settings.GetCommissionSettings)
		settings.PUT("/commission", manager, h.Settings.UpdateCommissionSettings)
		settings.POST("/commission/validate", h.Settings.ValidateCommissionConfig)
	}

	// Billing
	protected.POST("/billing/calculate", h.Billing.CalculateBill)

	// Commission profiles
	profiles := protected.Group("/commission-profiles")
	{
		profiles.GET("", h.Profile.List)
		profiles.POST("", manager, idempotent, h.Profile.Create)
		profiles.GET("/:id", h.Profile.Get)
		profiles.PUT("/:id", manager, h.Profile.Update)
	}

	// Staff
	staff := protected.Group("/staff")
	{
		staff.GET("", h.Staff.List)
		staff.PUT("/:id/profiles", manager, idempotent, h.Staff.AssignProfiles)
	}

	// Reports
	reports := protected.Group("/reports")
	{
		reports.GET("/commissions", h.Report.Commissions)
		reports.GET("/commissions/:staff_id/periods", h.Report.StaffPeriods)
	}
}
