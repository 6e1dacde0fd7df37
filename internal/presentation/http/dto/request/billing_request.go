package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/billing"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
)

// TaxSettingsRequest represents a tax settings update
type TaxSettingsRequest struct {
	EnableTax        *bool   `json:"enable_tax" binding:"required"`
	ServiceRate      float64 `json:"service_rate"`
	EssentialRate    float64 `json:"essential_rate"`
	IntermediateRate float64 `json:"intermediate_rate"`
	StandardRate     float64 `json:"standard_rate"`
	LuxuryRate       float64 `json:"luxury_rate"`
	ExemptRate       float64 `json:"exempt_rate"`
	CGSTRate         float64 `json:"cgst_rate"`
	SGSTRate         float64 `json:"sgst_rate"`
}

// ToBilling converts the request into tax settings
func (r *TaxSettingsRequest) ToBilling() billing.TaxSettings {
	return billing.TaxSettings{
		Enabled:          *r.EnableTax,
		ServiceRate:      r.ServiceRate,
		EssentialRate:    r.EssentialRate,
		IntermediateRate: r.IntermediateRate,
		StandardRate:     r.StandardRate,
		LuxuryRate:       r.LuxuryRate,
		ExemptRate:       r.ExemptRate,
		CGSTRate:         r.CGSTRate,
		SGSTRate:         r.SGSTRate,
	}
}

// CommissionConfigRequest represents a flat-rate commission config
type CommissionConfigRequest struct {
	FallbackEnabled       bool     `json:"fallback_enabled"`
	ServiceCommissionRate float64  `json:"service_commission_rate"`
	ProductCommissionRate float64  `json:"product_commission_rate"`
	MinimumCommission     *float64 `json:"minimum_commission"`
	MaximumCommission     *float64 `json:"maximum_commission"`
}

// ToBilling converts the request into a flat-rate commission config
func (r *CommissionConfigRequest) ToBilling() billing.CommissionConfig {
	return billing.CommissionConfig{
		ServiceCommissionRate: r.ServiceCommissionRate,
		ProductCommissionRate: r.ProductCommissionRate,
		MinimumCommission:     r.MinimumCommission,
		MaximumCommission:     r.MaximumCommission,
	}
}

// BillItemRequest is one line of a bill to be taxed
type BillItemRequest struct {
	ID          string           `json:"id"`
	Name        string           `json:"name" binding:"required,max=255"`
	Kind        enum.ItemKind    `json:"kind"`
	UnitPrice   float64          `json:"unit_price" binding:"gte=0,lte=10000000"`
	Quantity    int              `json:"quantity" binding:"gte=1,lte=10000"`
	TaxCategory enum.TaxCategory `json:"tax_category"`
}

// CalculateBillRequest represents a bill to be taxed
type CalculateBillRequest struct {
	Items []BillItemRequest `json:"items" binding:"required,dive"`
}

// ToBilling converts the request items, in order
func (r *CalculateBillRequest) ToBilling() []billing.BillItem {
	items := make([]billing.BillItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = billing.BillItem{
			ID:          it.ID,
			Name:        it.Name,
			Kind:        it.Kind,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			TaxCategory: it.TaxCategory,
		}
	}
	return items
}

// CommissionProfileRequest represents a profile create or update
type CommissionProfileRequest struct {
	Name                string                   `json:"name" binding:"required,max=255"`
	Type                enum.ProfileType         `json:"type"`
	CalculationInterval enum.CalculationInterval `json:"calculation_interval"`
	QualifyingItems     []enum.ItemKind          `json:"qualifying_items"`
	IncludeTax          bool                     `json:"include_tax"`
	IsActive            *bool                    `json:"is_active"`
	CascadingCommission bool                     `json:"cascading_commission"`
	TargetTiers         []billing.TargetTier     `json:"target_tiers"`
	ItemRates           []billing.ItemRate       `json:"item_rates"`
}

// AssignProfilesRequest replaces the profiles of a staff member
type AssignProfilesRequest struct {
	ProfileIDs []uuid.UUID `json:"profile_ids"`
}
