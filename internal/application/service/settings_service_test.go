package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sangkips/salon-billing-api/internal/billing"
	"github.com/sangkips/salon-billing-api/internal/config"
	"github.com/sangkips/salon-billing-api/internal/domain/entity"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
	"github.com/sangkips/salon-billing-api/internal/telemetry"
	"github.com/sangkips/salon-billing-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func defaultTax() billing.TaxSettings {
	return billing.TaxSettings{
		Enabled: true, ServiceRate: 5, EssentialRate: 5, IntermediateRate: 12,
		StandardRate: 18, LuxuryRate: 28, ExemptRate: 0, CGSTRate: 9, SGSTRate: 9,
	}
}

func newSettingsService(repo *mockSettingsRepo, fallback *billing.CommissionConfig, metrics *telemetry.BillingMetrics) *SettingsService {
	return NewSettingsService(repo, config.BillingConfig{DefaultTax: defaultTax(), FallbackCommission: fallback}, metrics)
}

func TestSettingsService_GetTaxSettings_DefaultsWhenMissing(t *testing.T) {
	repo := new(mockSettingsRepo)
	repo.On("GetTaxSettings", mock.Anything).Return(nil, nil)
	svc := newSettingsService(repo, nil, nil)

	got, err := svc.GetTaxSettings(tenantCtx())

	require.NoError(t, err)
	assert.Equal(t, testTenantID, got.TenantID)
	assert.Equal(t, defaultTax(), got.ToBilling())
	repo.AssertNotCalled(t, "SaveTaxSettings", mock.Anything, mock.Anything)
}

func TestSettingsService_GetTaxSettings_RequiresTenant(t *testing.T) {
	svc := newSettingsService(new(mockSettingsRepo), nil, nil)

	_, err := svc.GetTaxSettings(context.Background())

	assert.ErrorIs(t, err, apperror.ErrTenantRequired)
}

func TestSettingsService_UpdateTaxSettings_RejectsInvalid(t *testing.T) {
	repo := new(mockSettingsRepo)
	metrics := telemetry.NewBillingMetrics(prometheus.NewRegistry(), "test")
	svc := newSettingsService(repo, nil, metrics)
	input := defaultTax()
	input.LuxuryRate = 128

	_, err := svc.UpdateTaxSettings(tenantCtx(), input)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "tax_settings", appErr.Errors[0].Field)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ValidationFailures.WithLabelValues(testTenantID.String(), "tax_settings")))
	repo.AssertNotCalled(t, "SaveTaxSettings", mock.Anything, mock.Anything)
}

func TestSettingsService_UpdateTaxSettings_SavesExistingRow(t *testing.T) {
	repo := new(mockSettingsRepo)
	existing := &entity.TaxSettings{TenantID: testTenantID}
	existing.Apply(defaultTax())
	repo.On("GetTaxSettings", mock.Anything).Return(existing, nil)
	repo.On("SaveTaxSettings", mock.Anything, existing).Return(nil)
	svc := newSettingsService(repo, nil, nil)

	input := defaultTax()
	input.Enabled = false
	got, err := svc.UpdateTaxSettings(tenantCtx(), input)

	require.NoError(t, err)
	assert.False(t, got.EnableTax)
	repo.AssertExpectations(t)
}

func TestSettingsService_GetCommissionSettings_UsesConfiguredFallback(t *testing.T) {
	repo := new(mockSettingsRepo)
	repo.On("GetCommissionSettings", mock.Anything).Return(nil, nil)
	svc := newSettingsService(repo, &billing.CommissionConfig{ServiceCommissionRate: 10, ProductCommissionRate: 5}, nil)

	got, err := svc.GetCommissionSettings(tenantCtx())

	require.NoError(t, err)
	assert.True(t, got.FallbackEnabled)
	assert.Equal(t, 10.0, got.ServiceCommissionRate)

	fallback, err := svc.FallbackFor(tenantCtx())
	require.NoError(t, err)
	require.NotNil(t, fallback)
	assert.Equal(t, 5.0, fallback.ProductCommissionRate)
}

func TestSettingsService_FallbackFor_Disabled(t *testing.T) {
	repo := new(mockSettingsRepo)
	repo.On("GetCommissionSettings", mock.Anything).Return(&entity.CommissionSettings{ServiceCommissionRate: 10}, nil)
	svc := newSettingsService(repo, nil, nil)

	fallback, err := svc.FallbackFor(tenantCtx())

	require.NoError(t, err)
	assert.Nil(t, fallback)
}

func TestSettingsService_FallbackFor_InvalidConfiguredFallback(t *testing.T) {
	lo, hi := 500.0, 100.0
	repo := new(mockSettingsRepo)
	repo.On("GetCommissionSettings", mock.Anything).Return(nil, nil)
	svc := newSettingsService(repo, &billing.CommissionConfig{ServiceCommissionRate: 10, MinimumCommission: &lo, MaximumCommission: &hi}, nil)

	fallback, err := svc.FallbackFor(tenantCtx())

	require.NoError(t, err)
	assert.Nil(t, fallback)
}

func TestSettingsService_GetTaxSettings_InvalidConfiguredDefault(t *testing.T) {
	repo := new(mockSettingsRepo)
	repo.On("GetTaxSettings", mock.Anything).Return(nil, nil)
	bad := defaultTax()
	bad.ServiceRate = 250
	svc := NewSettingsService(repo, config.BillingConfig{DefaultTax: bad}, nil)

	got, err := svc.GetTaxSettings(tenantCtx())

	require.NoError(t, err)
	assert.Equal(t, billing.DefaultTaxSettings(), got.ToBilling())
}

func TestSettingsService_UpdateCommissionSettings(t *testing.T) {
	lo, hi := 500.0, 100.0

	t.Run("min above max is rejected", func(t *testing.T) {
		repo := new(mockSettingsRepo)
		svc := newSettingsService(repo, nil, nil)

		_, err := svc.UpdateCommissionSettings(tenantCtx(), &UpdateCommissionSettingsInput{
			FallbackEnabled: true,
			Config:          billing.CommissionConfig{ServiceCommissionRate: 10, MinimumCommission: &lo, MaximumCommission: &hi},
		})

		appErr := apperror.GetAppError(err)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
		assert.Equal(t, "Minimum commission (500.00) cannot be greater than maximum commission (100.00)", appErr.Errors[0].Message)
	})

	t.Run("valid config is stored", func(t *testing.T) {
		repo := new(mockSettingsRepo)
		repo.On("GetCommissionSettings", mock.Anything).Return(nil, nil)
		repo.On("SaveCommissionSettings", mock.Anything, mock.MatchedBy(func(s *entity.CommissionSettings) bool {
			return s.FallbackEnabled && s.ServiceCommissionRate == 12 && s.TenantID == testTenantID
		})).Return(nil)
		svc := newSettingsService(repo, nil, nil)

		got, err := svc.UpdateCommissionSettings(tenantCtx(), &UpdateCommissionSettingsInput{
			FallbackEnabled: true,
			Config:          billing.CommissionConfig{ServiceCommissionRate: 12, ProductCommissionRate: 4},
		})

		require.NoError(t, err)
		assert.Equal(t, 4.0, got.ProductCommissionRate)
		repo.AssertExpectations(t)
	})
}

func TestBillingService_CalculateBill(t *testing.T) {
	repo := new(mockSettingsRepo)
	repo.On("GetTaxSettings", mock.Anything).Return(nil, nil)
	metrics := telemetry.NewBillingMetrics(prometheus.NewRegistry(), "test")
	svc := NewBillingService(newSettingsService(repo, nil, nil), metrics)

	summary, err := svc.CalculateBill(tenantCtx(), []billing.BillItem{
		{ID: "1", Name: "Haircut", Kind: enum.ItemKindService, UnitPrice: 1000, Quantity: 1},
		{ID: "2", Name: "Shampoo", Kind: enum.ItemKindProduct, UnitPrice: 500, Quantity: 2, TaxCategory: enum.TaxCategoryStandard},
	})

	require.NoError(t, err)
	assert.Equal(t, 230.0, summary.TotalTaxAmount)
	assert.Equal(t, 115.0, summary.TotalCGST)
	assert.Equal(t, 2230.0, summary.TotalAmount)
	assert.Equal(t, "2", summary.Items[1].ItemID)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.BillsCalculated.WithLabelValues(testTenantID.String())))
}

func TestBillingService_CalculateBill_SettingsError(t *testing.T) {
	repo := new(mockSettingsRepo)
	repo.On("GetTaxSettings", mock.Anything).Return(nil, errors.New("connection reset"))
	svc := NewBillingService(newSettingsService(repo, nil, nil), nil)

	_, err := svc.CalculateBill(tenantCtx(), nil)

	assert.EqualError(t, err, "connection reset")
}
