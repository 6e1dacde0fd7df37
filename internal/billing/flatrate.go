package billing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
)

// CommissionConfig is the legacy single-tier commission setup: a flat
// percentage on service and product revenue with optional bounds.
type CommissionConfig struct {
	ServiceCommissionRate float64  `json:"service_commission_rate"`
	ProductCommissionRate float64  `json:"product_commission_rate"`
	MinimumCommission     *float64 `json:"minimum_commission,omitempty"`
	MaximumCommission     *float64 `json:"maximum_commission,omitempty"`
}

// ValidationResult lists every problem found in a configuration
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// FlatRateResult is the flat-rate commission for one sale
type FlatRateResult struct {
	Commission     float64 `json:"commission"`
	ServiceRevenue float64 `json:"service_revenue"`
	ProductRevenue float64 `json:"product_revenue"`
}

// ValidateCommissionConfig checks cfg without calculating anything. Every
// problem is reported, not just the first.
func ValidateCommissionConfig(cfg CommissionConfig) ValidationResult {
	errs := []string{}

	if !inPercentRange(cfg.ServiceCommissionRate) {
		errs = append(errs, "Service commission rate must be between 0 and 100")
	} else if !twoPlaces(cfg.ServiceCommissionRate) {
		errs = append(errs, "Service commission rate must have at most 2 decimal places")
	}
	if !inPercentRange(cfg.ProductCommissionRate) {
		errs = append(errs, "Product commission rate must be between 0 and 100")
	} else if !twoPlaces(cfg.ProductCommissionRate) {
		errs = append(errs, "Product commission rate must have at most 2 decimal places")
	}
	errs = append(errs, boundErrors("Minimum", cfg.MinimumCommission)...)
	errs = append(errs, boundErrors("Maximum", cfg.MaximumCommission)...)
	if cfg.MinimumCommission != nil && cfg.MaximumCommission != nil &&
		*cfg.MinimumCommission > *cfg.MaximumCommission {
		errs = append(errs, fmt.Sprintf("Minimum commission (%.2f) cannot be greater than maximum commission (%.2f)",
			*cfg.MinimumCommission, *cfg.MaximumCommission))
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// maxBound is the largest amount a numeric(12,2) column holds
const maxBound = 9999999999.99

func boundErrors(name string, v *float64) []string {
	switch {
	case v == nil:
		return nil
	case !(*v >= 0):
		return []string{name + " commission cannot be negative"}
	case *v > maxBound:
		return []string{fmt.Sprintf("%s commission cannot exceed %.2f", name, maxBound)}
	case !twoPlaces(*v):
		return []string{name + " commission must have at most 2 decimal places"}
	}
	return nil
}

func inPercentRange(v float64) bool {
	return v >= 0 && v <= 100
}

// FlatRate applies cfg to already-split revenue. The minimum bound is applied
// before the maximum, so a maximum below the minimum wins.
func FlatRate(serviceRevenue, productRevenue float64, cfg CommissionConfig) float64 {
	var c amount
	c.add(serviceRevenue * cfg.ServiceCommissionRate / 100)
	c.add(productRevenue * cfg.ProductCommissionRate / 100)
	commission := c.value()

	if cfg.MinimumCommission != nil && commission < *cfg.MinimumCommission {
		commission = *cfg.MinimumCommission
	}
	if cfg.MaximumCommission != nil && commission > *cfg.MaximumCommission {
		commission = *cfg.MaximumCommission
	}
	return commission
}

// CalculateFlatRateCommission computes the flat-rate commission staffID earns
// on a single sale. Only service and product lines count; tax is excluded.
func CalculateFlatRateCommission(staffID uuid.UUID, sale Sale, cfg CommissionConfig) FlatRateResult {
	var service, product amount
	for _, item := range sale.Items {
		if item.StaffID != staffID {
			continue
		}
		switch item.Kind {
		case enum.ItemKindService:
			service.add(item.Total)
		case enum.ItemKindProduct:
			product.add(item.Total)
		}
	}

	res := FlatRateResult{
		ServiceRevenue: service.value(),
		ProductRevenue: product.value(),
	}
	res.Commission = FlatRate(res.ServiceRevenue, res.ProductRevenue, cfg)
	return res
}
