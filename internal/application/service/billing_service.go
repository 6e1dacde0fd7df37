package service

import (
	"context"

	"github.com/sangkips/salon-billing-api/internal/billing"
	"github.com/sangkips/salon-billing-api/internal/telemetry"
)

// BillingService calculates GST on bills using the salon's tax settings
type BillingService struct {
	settings *SettingsService
	metrics  *telemetry.BillingMetrics
}

// NewBillingService creates a new billing service
func NewBillingService(settings *SettingsService, metrics *telemetry.BillingMetrics) *BillingService {
	return &BillingService{settings: settings, metrics: metrics}
}

// CalculateBill returns the tax breakdown of items, in input order
func (s *BillingService) CalculateBill(ctx context.Context, items []billing.BillItem) (*billing.BillTaxSummary, error) {
	settings, err := s.settings.TaxSettingsFor(ctx)
	if err != nil {
		return nil, err
	}

	summary := billing.CalculateBillTax(items, settings)
	s.metrics.ObserveBill(tenantLabel(ctx), summary.TotalTaxAmount, summary.TotalCGST, summary.TotalSGST, summary.TotalAmount)
	return &summary, nil
}
