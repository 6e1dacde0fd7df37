// Package billing holds the salon billing calculations: GST tax slabs,
// profile-driven staff commission, and the legacy flat-rate commission mode.
//
// Every function in this package is a pure function of its arguments. Settings
// and profiles are passed in explicitly; nothing is read from globals.
package billing

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
)

// TaxSettings holds the GST rates, in percent, applied when billing.
// CGSTRate and SGSTRate are informational only; the computed tax is always
// split half and half.
type TaxSettings struct {
	Enabled          bool    `json:"enable_tax"`
	ServiceRate      float64 `json:"service_rate" validate:"gte=0,lte=100,dp2"`
	EssentialRate    float64 `json:"essential_rate" validate:"gte=0,lte=100,dp2"`
	IntermediateRate float64 `json:"intermediate_rate" validate:"gte=0,lte=100,dp2"`
	StandardRate     float64 `json:"standard_rate" validate:"gte=0,lte=100,dp2"`
	LuxuryRate       float64 `json:"luxury_rate" validate:"gte=0,lte=100,dp2"`
	ExemptRate       float64 `json:"exempt_rate" validate:"gte=0,lte=100,dp2"`
	CGSTRate         float64 `json:"cgst_rate" validate:"gte=0,lte=100,dp2"`
	SGSTRate         float64 `json:"sgst_rate" validate:"gte=0,lte=100,dp2"`
}

// BillItem is a line on a bill being priced
type BillItem struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Kind        enum.ItemKind    `json:"kind"`
	UnitPrice   float64          `json:"unit_price"`
	Quantity    int              `json:"quantity"`
	TaxCategory enum.TaxCategory `json:"tax_category,omitempty"`
}

// ItemTaxResult is the tax breakdown of a single bill item
type ItemTaxResult struct {
	ItemID      string        `json:"item_id"`
	Name        string        `json:"name"`
	Kind        enum.ItemKind `json:"kind"`
	TaxRate     float64       `json:"tax_rate"`
	BaseAmount  float64       `json:"base_amount"`
	TaxAmount   float64       `json:"tax_amount"`
	CGST        float64       `json:"cgst"`
	SGST        float64       `json:"sgst"`
	TotalAmount float64       `json:"total_amount"`
}

// BillTaxSummary is the per-item breakdown of a bill, in billed order, and its totals
type BillTaxSummary struct {
	Items          []ItemTaxResult `json:"items"`
	TotalBase      float64         `json:"total_base"`
	TotalTaxAmount float64         `json:"total_tax_amount"`
	TotalCGST      float64         `json:"total_cgst"`
	TotalSGST      float64         `json:"total_sgst"`
	TotalAmount    float64         `json:"total_amount"`
}

// TargetTier is one revenue bracket of a target-based profile
type TargetTier struct {
	From        float64          `json:"from" validate:"gte=0"`
	To          float64          `json:"to" validate:"gtfield=From"`
	CalculateBy enum.CalculateBy `json:"calculate_by"`
	Value       float64          `json:"value" validate:"gte=0"`
}

// ItemRate is one entry of an item-based profile
type ItemRate struct {
	ItemType    enum.ItemKind    `json:"item_type"`
	Rate        float64          `json:"rate" validate:"gte=0"`
	CalculateBy enum.CalculateBy `json:"calculate_by"`
}

// CommissionRule is the variant-specific part of a commission profile.
// It is implemented by TargetRule and ItemRule only.
type CommissionRule interface {
	ProfileType() enum.ProfileType
	commission(revenue float64, p *CommissionProfile) float64
}

// TargetRule computes commission from revenue brackets. Tiers must be
// ordered by From ascending; they are never re-sorted.
type TargetRule struct {
	Cascading bool
	Tiers     []TargetTier
}

// ItemRule computes commission from a rate per qualifying item type
type ItemRule struct {
	Rates []ItemRate
}

func (TargetRule) ProfileType() enum.ProfileType { return enum.ProfileTypeTargetBased }

func (ItemRule) ProfileType() enum.ProfileType { return enum.ProfileTypeItemBased }

// CommissionProfile is a read-only commission configuration assigned to staff
type CommissionProfile struct {
	ID                  uuid.UUID
	Name                string
	CalculationInterval enum.CalculationInterval
	QualifyingItems     []enum.ItemKind
	IncludeTax          bool
	IsActive            bool
	Rule                CommissionRule
}

// Type reports the profile type implied by its rule
func (p *CommissionProfile) Type() enum.ProfileType {
	if p.Rule == nil {
		return enum.ProfileTypeUnknown
	}
	return p.Rule.ProfileType()
}

// Qualifies reports whether items of kind k count towards the profile's revenue
func (p *CommissionProfile) Qualifies(k enum.ItemKind) bool {
	return k.Valid() && slices.Contains(p.QualifyingItems, k)
}

// Sale is a completed transaction
type Sale struct {
	ID    uuid.UUID
	Date  time.Time
	Items []SaleItem
}

// SaleItem is a sold line attributed to a single staff member.
// Total is the line total before tax; TaxAmount is the tax charged on it.
type SaleItem struct {
	ID        uuid.UUID
	StaffID   uuid.UUID
	Kind      enum.ItemKind
	Name      string
	Quantity  int
	Price     float64
	Total     float64
	TaxAmount float64
}

// StaffMember identifies someone who can earn commission
type StaffMember struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
