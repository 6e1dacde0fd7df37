package repository

import (
	"context"

	"github.com/sangkips/salon-billing-api/internal/domain/entity"
)

// SettingsRepository provides the tax and flat-rate commission settings of
// the tenant in ctx. Missing rows are returned as nil with no error.
type SettingsRepository interface {
	GetTaxSettings(ctx context.Context) (*entity.TaxSettings, error)
	SaveTaxSettings(ctx context.Context, settings *entity.TaxSettings) error
	GetCommissionSettings(ctx context.Context) (*entity.CommissionSettings, error)
	SaveCommissionSettings(ctx context.Context, settings *entity.CommissionSettings) error
}
