package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/billing"
	"gorm.io/gorm"
)

// StaffMember is someone in a salon who can be attributed sale items
type StaffMember struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	FirstName string         `gorm:"size:100;not null" json:"first_name"`
	LastName  string         `gorm:"size:100" json:"last_name"`
	Email     string         `gorm:"size:255" json:"email,omitempty"`
	Role      string         `gorm:"size:50" json:"role,omitempty"` // stylist, therapist, receptionist
	IsActive  bool           `gorm:"index" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Computed field for JSON response
	ProfileIDs []uuid.UUID `gorm:"-" json:"profile_ids,omitempty"`
}

// BeforeCreate generates a UUID before creating a new staff member
func (s *StaffMember) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StaffMember model
func (StaffMember) TableName() string {
	return "staff_members"
}

// FullName returns the staff member's display name
func (s *StaffMember) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// ToBilling converts the row into the value the aggregator takes
func (s *StaffMember) ToBilling() billing.StaffMember {
	return billing.StaffMember{ID: s.ID, Name: s.FullName()}
}
