package repository

import (
	"context"
	"errors"

	"github.com/sangkips/salon-billing-api/internal/domain/entity"
	domainRepo "github.com/sangkips/salon-billing-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

// GetTaxSettings retrieves the tenant's tax settings
func (r *settingsRepository) GetTaxSettings(ctx context.Context) (*entity.TaxSettings, error) {
	var settings entity.TaxSettings
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveTaxSettings inserts or replaces the tenant's tax settings
func (r *settingsRepository) SaveTaxSettings(ctx context.Context, settings *entity.TaxSettings) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}},
		UpdateAll: true,
	}).Create(settings).Error
}

// GetCommissionSettings retrieves the tenant's flat-rate commission settings
func (r *settingsRepository) GetCommissionSettings(ctx context.Context) (*entity.CommissionSettings, error) {
	var settings entity.CommissionSettings
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveCommissionSettings inserts or replaces the tenant's flat-rate commission settings
func (r *settingsRepository) SaveCommissionSettings(ctx context.Context, settings *entity.CommissionSettings) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}},
		UpdateAll: true,
	}).Create(settings).Error
}
