package database

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sangkips/salon-billing-api/internal/billing"
	"github.com/sangkips/salon-billing-api/internal/config"
	"github.com/sangkips/salon-billing-api/internal/domain/entity"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection. SQL is logged
// through log; debug turns on statement logging.
func NewPostgresDB(cfg *config.DatabaseConfig, log *slog.Logger, debug bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: NewGormLogger(log, debug),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info("Connected to PostgreSQL", "host", cfg.Host, "database", cfg.Name)
	return db, nil
}

// NewGormLogger adapts a slog logger to gorm's logger interface.
func NewGormLogger(log *slog.Logger, debug bool) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return logger.New(
		slog.NewLogLogger(log.Handler(), slog.LevelDebug),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB, log *slog.Logger) error {
	log.Info("Running database migrations")

	err := db.AutoMigrate(
		&entity.Tenant{},

		// Settings
		&entity.TaxSettings{},
		&entity.CommissionSettings{},

		// Commission
		&entity.StaffMember{},
		&entity.CommissionProfile{},
		&entity.StaffProfileAssignment{},

		// Sales
		&entity.Sale{},
		&entity.SaleItem{},

		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations completed")
	return nil
}

const demoSlug = "demo-salon"

// SeedDemoSalon creates a demo salon with default tax settings, two commission
// profiles and two stylists. It does nothing when the salon already exists.
func SeedDemoSalon(db *gorm.DB, defaults billing.TaxSettings, log *slog.Logger) error {
	var existing entity.Tenant
	err := db.Where("slug = ?", demoSlug).First(&existing).Error
	if err == nil {
		log.Info("Demo salon already seeded", "tenant_id", existing.ID)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up demo salon: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		tenant := entity.Tenant{Name: "Demo Salon", Slug: demoSlug, Settings: entity.DefaultTenantSettings()}
		if err := tx.Create(&tenant).Error; err != nil {
			return fmt.Errorf("failed to create demo salon: %w", err)
		}

		tax := entity.TaxSettings{TenantID: tenant.ID}
		tax.Apply(defaults)
		if err := tx.Create(&tax).Error; err != nil {
			return fmt.Errorf("failed to create tax settings: %w", err)
		}

		profiles := []entity.CommissionProfile{
			{
				TenantID:            tenant.ID,
				Name:                "Stylist target",
				Type:                enum.ProfileTypeTargetBased,
				CalculationInterval: enum.CalculationIntervalMonthly,
				QualifyingItems:     []enum.ItemKind{enum.ItemKindService, enum.ItemKindPackage},
				IsActive:            true,
				CascadingCommission: true,
				TargetTiers: []billing.TargetTier{
					{From: 0, To: 50000, CalculateBy: enum.CalculateByPercent, Value: 5},
					{From: 50000, To: 100000, CalculateBy: enum.CalculateByPercent, Value: 8},
					{From: 100000, To: 10000000, CalculateBy: enum.CalculateByPercent, Value: 10},
				},
			},
			{
				TenantID:            tenant.ID,
				Name:                "Retail sales",
				Type:                enum.ProfileTypeItemBased,
				CalculationInterval: enum.CalculationIntervalMonthly,
				QualifyingItems:     []enum.ItemKind{enum.ItemKindProduct},
				IsActive:            true,
				ItemRates: []billing.ItemRate{
					{ItemType: enum.ItemKindProduct, Rate: 5, CalculateBy: enum.CalculateByPercent},
				},
			},
		}
		if err := tx.Create(&profiles).Error; err != nil {
			return fmt.Errorf("failed to create commission profiles: %w", err)
		}

		staff := []entity.StaffMember{
			{TenantID: tenant.ID, FirstName: "Asha", LastName: "Rao", Role: "stylist", IsActive: true},
			{TenantID: tenant.ID, FirstName: "Vikram", LastName: "Shah", Role: "stylist", IsActive: true},
		}
		if err := tx.Create(&staff).Error; err != nil {
			return fmt.Errorf("failed to create staff: %w", err)
		}

		var assignments []entity.StaffProfileAssignment
		for _, s := range staff {
			for _, p := range profiles {
				assignments = append(assignments, entity.StaffProfileAssignment{TenantID: tenant.ID, StaffID: s.ID, ProfileID: p.ID})
			}
		}
		if err := tx.Create(&assignments).Error; err != nil {
			return fmt.Errorf("failed to assign profiles: %w", err)
		}

		log.Info("Seeded demo salon", "tenant_id", tenant.ID)
		return nil
	})
}
