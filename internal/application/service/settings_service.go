package service

import (
	"context"

	"github.com/sangkips/salon-billing-api/internal/billing"
	"github.com/sangkips/salon-billing-api/internal/config"
	"github.com/sangkips/salon-billing-api/internal/domain/entity"
	"github.com/sangkips/salon-billing-api/internal/domain/repository"
	infraRepo "github.com/sangkips/salon-billing-api/internal/infrastructure/repository"
	"github.com/sangkips/salon-billing-api/internal/telemetry"
	"github.com/sangkips/salon-billing-api/pkg/apperror"
)

// SettingsService handles the tax and flat-rate commission settings of a salon
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	defaultTax   billing.TaxSettings
	fallback     *billing.CommissionConfig
	metrics      *telemetry.BillingMetrics
}

// NewSettingsService creates a new settings service. Salons that never saved
// settings get the configured defaults, once invalid ones have been replaced.
func NewSettingsService(settingsRepo repository.SettingsRepository, cfg config.BillingConfig, metrics *telemetry.BillingMetrics) *SettingsService {
	cfg = cfg.Sanitize()
	return &SettingsService{
		settingsRepo: settingsRepo,
		defaultTax:   cfg.DefaultTax,
		fallback:     cfg.FallbackCommission,
		metrics:      metrics,
	}
}

// GetTaxSettings retrieves the salon's tax settings, or unsaved defaults if it has none
func (s *SettingsService) GetTaxSettings(ctx context.Context) (*entity.TaxSettings, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.ErrTenantRequired
	}

	settings, err := s.settingsRepo.GetTaxSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.TaxSettings{TenantID: tenantID}
		settings.Apply(s.defaultTax)
	}
	return settings, nil
}

// UpdateTaxSettings validates and stores the salon's tax settings
func (s *SettingsService) UpdateTaxSettings(ctx context.Context, input billing.TaxSettings) (*entity.TaxSettings, error) {
	if result := billing.ValidateTaxSettings(input); !result.IsValid {
		s.metrics.ValidationFailed(tenantLabel(ctx), "tax_settings")
		return nil, apperror.NewValidationMessages("tax_settings", result.Errors)
	}

	settings, err := s.GetTaxSettings(ctx)
	if err != nil {
		return nil, err
	}
	settings.Apply(input)

	if err := s.settingsRepo.SaveTaxSettings(ctx, settings); err != nil {
		return nil, err
	}
	s.metrics.SettingsUpdated(tenantLabel(ctx), "tax")
	return settings, nil
}

// GetCommissionSettings retrieves the salon's flat-rate commission settings.
// Without a saved row the configured fallback is returned, enabled only if one is configured.
func (s *SettingsService) GetCommissionSettings(ctx context.Context) (*entity.CommissionSettings, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.ErrTenantRequired
	}

	settings, err := s.settingsRepo.GetCommissionSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.CommissionSettings{TenantID: tenantID}
		if s.fallback != nil {
			settings.FallbackEnabled = true
			settings.Apply(*s.fallback)
		}
	}
	return settings, nil
}

// UpdateCommissionSettingsInput represents the input for updating commission settings
type UpdateCommissionSettingsInput struct {
	FallbackEnabled bool
	Config          billing.CommissionConfig
}

// UpdateCommissionSettings validates and stores the salon's flat-rate commission settings
func (s *SettingsService) UpdateCommissionSettings(ctx context.Context, input *UpdateCommissionSettingsInput) (*entity.CommissionSettings, error) {
	if result := s.ValidateCommissionConfig(ctx, input.Config); !result.IsValid {
		return nil, apperror.NewValidationMessages("commission", result.Errors)
	}

	settings, err := s.GetCommissionSettings(ctx)
	if err != nil {
		return nil, err
	}
	settings.FallbackEnabled = input.FallbackEnabled
	settings.Apply(input.Config)

	if err := s.settingsRepo.SaveCommissionSettings(ctx, settings); err != nil {
		return nil, err
	}
	s.metrics.SettingsUpdated(tenantLabel(ctx), "commission")
	return settings, nil
}

// ValidateCommissionConfig checks cfg without storing it
func (s *SettingsService) ValidateCommissionConfig(ctx context.Context, cfg billing.CommissionConfig) billing.ValidationResult {
	result := billing.ValidateCommissionConfig(cfg)
	if !result.IsValid {
		s.metrics.ValidationFailed(tenantLabel(ctx), "commission")
	}
	return result
}

// TaxSettingsFor returns the settings the tax calculator should use for the salon in ctx
func (s *SettingsService) TaxSettingsFor(ctx context.Context) (billing.TaxSettings, error) {
	settings, err := s.GetTaxSettings(ctx)
	if err != nil {
		return billing.TaxSettings{}, err
	}
	return settings.ToBilling(), nil
}

// FallbackFor returns the flat-rate config for staff without profiles, or nil when disabled
func (s *SettingsService) FallbackFor(ctx context.Context) (*billing.CommissionConfig, error) {
	settings, err := s.GetCommissionSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.FallbackEnabled {
		return nil, nil
	}
	cfg := settings.ToBilling()
	return &cfg, nil
}

func tenantLabel(ctx context.Context) string {
	if id, ok := infraRepo.GetTenantID(ctx); ok {
		return id.String()
	}
	return "unknown"
}
