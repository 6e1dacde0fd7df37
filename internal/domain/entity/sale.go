package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/billing"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale is a completed transaction recorded by the point of sale
type Sale struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	InvoiceNo string         `gorm:"size:100;not null" json:"invoice_no"`
	SaleDate  time.Time      `gorm:"not null;index" json:"sale_date"`
	SubTotal  int64          `json:"-"` // Stored in cents, excluded from JSON
	TaxTotal  int64          `json:"-"` // Stored in cents, excluded from JSON
	Total     int64          `json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// MarshalJSON converts cents to currency units for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		SubTotal float64 `json:"sub_total"`
		TaxTotal float64 `json:"tax_total"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(s),
		SubTotal: fromCents(s.SubTotal),
		TaxTotal: fromCents(s.TaxTotal),
		Total:    fromCents(s.Total),
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// ToBilling converts the sale and its items into the value the commission engine takes
func (s *Sale) ToBilling() billing.Sale {
	items := make([]billing.SaleItem, len(s.Items))
	for i := range s.Items {
		items[i] = s.Items[i].ToBilling()
	}
	return billing.Sale{ID: s.ID, Date: s.SaleDate, Items: items}
}

// SaleItem is a line of a sale, attributed to the staff member who performed or sold it
type SaleItem struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"sale_id"`
	StaffID   uuid.UUID     `gorm:"type:uuid;not null;index" json:"staff_id"`
	Kind      enum.ItemKind `gorm:"not null" json:"kind"`
	Name      string        `gorm:"size:255" json:"name"`
	Quantity  int           `json:"quantity"`
	Price     int64         `json:"-"` // Stored in cents, excluded from JSON
	Total     int64         `json:"-"` // Stored in cents, excluded from JSON
	TaxAmount int64         `json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time     `json:"created_at"`
}

// MarshalJSON converts cents to currency units for API responses
func (i SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		Price     float64 `json:"price"`
		Total     float64 `json:"total"`
		TaxAmount float64 `json:"tax_amount"`
	}{
		Alias:     Alias(i),
		Price:     fromCents(i.Price),
		Total:     fromCents(i.Total),
		TaxAmount: fromCents(i.TaxAmount),
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}

// ToBilling converts the item into currency units
func (i *SaleItem) ToBilling() billing.SaleItem {
	return billing.SaleItem{
		ID:        i.ID,
		StaffID:   i.StaffID,
		Kind:      i.Kind,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Price:     fromCents(i.Price),
		Total:     fromCents(i.Total),
		TaxAmount: fromCents(i.TaxAmount),
	}
}

func fromCents(c int64) float64 {
	return decimal.New(c, -2).InexactFloat64()
}
