package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/billing"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ErrInconsistentProfile is returned when a stored profile's type does not
// match the rules populated on it.
var ErrInconsistentProfile = errors.New("commission profile type does not match its rules")

// CommissionProfile is a stored commission configuration. Exactly one of
// TargetTiers and ItemRates is populated, matching Type.
type CommissionProfile struct {
	ID                  uuid.UUID                `gorm:"type:uuid;primary_key" json:"id"`
	TenantID            uuid.UUID                `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name                string                   `gorm:"size:255;not null" json:"name"`
	Type                enum.ProfileType         `gorm:"not null" json:"type"`
	CalculationInterval enum.CalculationInterval `gorm:"not null" json:"calculation_interval"`
	QualifyingItems     []enum.ItemKind          `gorm:"type:jsonb;serializer:json" json:"qualifying_items"`
	IncludeTax          bool                     `json:"include_tax"`
	IsActive            bool                     `gorm:"index" json:"is_active"`
	CascadingCommission bool                     `json:"cascading_commission"`
	TargetTiers         []billing.TargetTier     `gorm:"type:jsonb;serializer:json" json:"target_tiers,omitempty"`
	ItemRates           []billing.ItemRate       `gorm:"type:jsonb;serializer:json" json:"item_rates,omitempty"`
	CreatedAt           time.Time                `json:"created_at"`
	UpdatedAt           time.Time                `json:"updated_at"`
	DeletedAt           gorm.DeletedAt           `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new profile
func (p *CommissionProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CommissionProfile model
func (CommissionProfile) TableName() string {
	return "commission_profiles"
}

// ToBilling converts the row into the profile the evaluator takes
func (p *CommissionProfile) ToBilling() (billing.CommissionProfile, error) {
	out := billing.CommissionProfile{
		ID:                  p.ID,
		Name:                p.Name,
		CalculationInterval: p.CalculationInterval,
		QualifyingItems:     p.QualifyingItems,
		IncludeTax:          p.IncludeTax,
		IsActive:            p.IsActive,
	}

	switch p.Type {
	case enum.ProfileTypeTargetBased:
		if len(p.ItemRates) > 0 {
			return out, fmt.Errorf("profile %s: %w", p.ID, ErrInconsistentProfile)
		}
		out.Rule = billing.TargetRule{Cascading: p.CascadingCommission, Tiers: p.TargetTiers}
	case enum.ProfileTypeItemBased:
		if len(p.TargetTiers) > 0 {
			return out, fmt.Errorf("profile %s: %w", p.ID, ErrInconsistentProfile)
		}
		out.Rule = billing.ItemRule{Rates: p.ItemRates}
	default:
		return out, fmt.Errorf("profile %s has unknown type %q: %w", p.ID, p.Type, ErrInconsistentProfile)
	}
	return out, nil
}

// StaffProfileAssignment links a staff member to one of the profiles they earn under
type StaffProfileAssignment struct {
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	StaffID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"staff_id"`
	ProfileID uuid.UUID `gorm:"type:uuid;primaryKey" json:"profile_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Staff   StaffMember       `gorm:"foreignKey:StaffID" json:"-"`
	Profile CommissionProfile `gorm:"foreignKey:ProfileID" json:"-"`
}

// TableName returns the table name for the StaffProfileAssignment model
func (StaffProfileAssignment) TableName() string {
	return "staff_profile_assignments"
}
