package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/billing"
	"gorm.io/gorm"
)

// TaxSettings holds a salon's GST configuration. There is at most one row per tenant.
type TaxSettings struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"tenant_id"`
	EnableTax        bool      `json:"enable_tax"`
	ServiceRate      float64   `gorm:"type:numeric(5,2)" json:"service_rate"`
	EssentialRate    float64   `gorm:"type:numeric(5,2)" json:"essential_rate"`
	IntermediateRate float64   `gorm:"type:numeric(5,2)" json:"intermediate_rate"`
	StandardRate     float64   `gorm:"type:numeric(5,2)" json:"standard_rate"`
	LuxuryRate       float64   `gorm:"type:numeric(5,2)" json:"luxury_rate"`
	ExemptRate       float64   `gorm:"type:numeric(5,2)" json:"exempt_rate"`
	CGSTRate         float64   `gorm:"column:cgst_rate;type:numeric(5,2)" json:"cgst_rate"`
	SGSTRate         float64   `gorm:"column:sgst_rate;type:numeric(5,2)" json:"sgst_rate"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating tax settings
func (s *TaxSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TaxSettings model
func (TaxSettings) TableName() string {
	return "tax_settings"
}

// ToBilling converts the row into the value the tax calculator takes
func (s *TaxSettings) ToBilling() billing.TaxSettings {
	return billing.TaxSettings{
		Enabled:          s.EnableTax,
		ServiceRate:      s.ServiceRate,
		EssentialRate:    s.EssentialRate,
		IntermediateRate: s.IntermediateRate,
		StandardRate:     s.StandardRate,
		LuxuryRate:       s.LuxuryRate,
		ExemptRate:       s.ExemptRate,
		CGSTRate:         s.CGSTRate,
		SGSTRate:         s.SGSTRate,
	}
}

// Apply copies the rates of b onto the row
func (s *TaxSettings) Apply(b billing.TaxSettings) {
	s.EnableTax = b.Enabled
	s.ServiceRate = b.ServiceRate
	s.EssentialRate = b.EssentialRate
	s.IntermediateRate = b.IntermediateRate
	s.StandardRate = b.StandardRate
	s.LuxuryRate = b.LuxuryRate
	s.ExemptRate = b.ExemptRate
	s.CGSTRate = b.CGSTRate
	s.SGSTRate = b.SGSTRate
}

// CommissionSettings holds the legacy flat-rate commission setup of a salon.
// When FallbackEnabled is set, staff without an active profile are paid under it.
type CommissionSettings struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"tenant_id"`
	FallbackEnabled       bool      `json:"fallback_enabled"`
	ServiceCommissionRate float64   `gorm:"type:numeric(5,2)" json:"service_commission_rate"`
	ProductCommissionRate float64   `gorm:"type:numeric(5,2)" json:"product_commission_rate"`
	MinimumCommission     *float64  `gorm:"type:numeric(12,2)" json:"minimum_commission,omitempty"`
	MaximumCommission     *float64  `gorm:"type:numeric(12,2)" json:"maximum_commission,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating commission settings
func (c *CommissionSettings) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CommissionSettings model
func (CommissionSettings) TableName() string {
	return "commission_settings"
}

// ToBilling converts the row into a flat-rate commission config
func (c *CommissionSettings) ToBilling() billing.CommissionConfig {
	return billing.CommissionConfig{
		ServiceCommissionRate: c.ServiceCommissionRate,
		ProductCommissionRate: c.ProductCommissionRate,
		MinimumCommission:     c.MinimumCommission,
		MaximumCommission:     c.MaximumCommission,
	}
}

// Apply copies cfg onto the row
func (c *CommissionSettings) Apply(cfg billing.CommissionConfig) {
	c.ServiceCommissionRate = cfg.ServiceCommissionRate
	c.ProductCommissionRate = cfg.ProductCommissionRate
	c.MinimumCommission = cfg.MinimumCommission
	c.MaximumCommission = cfg.MaximumCommission
}
