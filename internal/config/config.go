package config

import (
	"log/slog"
	"time"
	_ "time/tzdata"

	"github.com/sangkips/salon-billing-api/internal/billing"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Log       LogConfig
	Billing   BillingConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
	Seed     bool
}

// JWTConfig holds the shared secret used to verify tokens issued by the
// identity service.
type JWTConfig struct {
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type LogConfig struct {
	Level string
}

// BillingConfig carries the defaults used when a salon has not saved its own settings.
type BillingConfig struct {
	DefaultTax billing.TaxSettings
	// FallbackCommission is nil unless COMMISSION_FALLBACK_ENABLED is set.
	FallbackCommission *billing.CommissionConfig
	Location           *time.Location
	IdempotencyTTL     time.Duration
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		slog.Warn(".env file not found, using environment variables", "error", err)
	}

	setDefaults()

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
			Seed:     viper.GetBool("DB_SEED"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Billing: loadBilling(),
	}
}

func setDefaults() {
	viper.SetDefault("APP_NAME", "salon-billing-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "salon_billing")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("DB_SEED", false)
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "OPTIONS"})
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("TAX_ENABLED", true)
	viper.SetDefault("TAX_SERVICE_RATE", 5)
	viper.SetDefault("TAX_ESSENTIAL_RATE", 5)
	viper.SetDefault("TAX_INTERMEDIATE_RATE", 12)
	viper.SetDefault("TAX_STANDARD_RATE", 18)
	viper.SetDefault("TAX_LUXURY_RATE", 28)
	viper.SetDefault("TAX_EXEMPT_RATE", 0)
	viper.SetDefault("TAX_CGST_RATE", 9)
	viper.SetDefault("TAX_SGST_RATE", 9)

	viper.SetDefault("COMMISSION_FALLBACK_ENABLED", false)
	viper.SetDefault("COMMISSION_SERVICE_RATE", 10)
	viper.SetDefault("COMMISSION_PRODUCT_RATE", 5)

	viper.SetDefault("BILLING_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("IDEMPOTENCY_TTL_HOURS", 24)
}

func loadBilling() BillingConfig {
	cfg := BillingConfig{
		DefaultTax: billing.TaxSettings{
			Enabled:          viper.GetBool("TAX_ENABLED"),
			ServiceRate:      viper.GetFloat64("TAX_SERVICE_RATE"),
			EssentialRate:    viper.GetFloat64("TAX_ESSENTIAL_RATE"),
			IntermediateRate: viper.GetFloat64("TAX_INTERMEDIATE_RATE"),
			StandardRate:     viper.GetFloat64("TAX_STANDARD_RATE"),
			LuxuryRate:       viper.GetFloat64("TAX_LUXURY_RATE"),
			ExemptRate:       viper.GetFloat64("TAX_EXEMPT_RATE"),
			CGSTRate:         viper.GetFloat64("TAX_CGST_RATE"),
			SGSTRate:         viper.GetFloat64("TAX_SGST_RATE"),
		},
		Location:       time.UTC,
		IdempotencyTTL: time.Duration(viper.GetInt("IDEMPOTENCY_TTL_HOURS")) * time.Hour,
	}

	if viper.GetBool("COMMISSION_FALLBACK_ENABLED") {
		fallback := &billing.CommissionConfig{
			ServiceCommissionRate: viper.GetFloat64("COMMISSION_SERVICE_RATE"),
			ProductCommissionRate: viper.GetFloat64("COMMISSION_PRODUCT_RATE"),
		}
		if viper.IsSet("COMMISSION_MINIMUM") {
			v := viper.GetFloat64("COMMISSION_MINIMUM")
			fallback.MinimumCommission = &v
		}
		if viper.IsSet("COMMISSION_MAXIMUM") {
			v := viper.GetFloat64("COMMISSION_MAXIMUM")
			fallback.MaximumCommission = &v
		}
		cfg.FallbackCommission = fallback
	}

	cfg = cfg.Sanitize()

	tz := viper.GetString("BILLING_TIMEZONE")
	if loc, err := time.LoadLocation(tz); err != nil {
		slog.Warn("Unknown billing timezone, using UTC", "timezone", tz, "error", err)
	} else {
		cfg.Location = loc
	}

	return cfg
}

// Sanitize replaces settings that would be rejected if a salon saved them.
// Invalid default tax settings fall back to the built-in slabs and an
// invalid fallback commission is dropped.
func (c BillingConfig) Sanitize() BillingConfig {
	if res := billing.ValidateTaxSettings(c.DefaultTax); !res.IsValid {
		slog.Warn("Invalid default tax settings, using built-in rates", "errors", res.Errors)
		c.DefaultTax = billing.DefaultTaxSettings()
	}
	if c.FallbackCommission != nil {
		if res := billing.ValidateCommissionConfig(*c.FallbackCommission); !res.IsValid {
			slog.Warn("Invalid fallback commission, disabling it", "errors", res.Errors)
			c.FallbackCommission = nil
		}
	}
	return c
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
