package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TaxCategory is the GST slab a product is billed under
type TaxCategory int

const (
	TaxCategoryNone         TaxCategory = 0
	TaxCategoryEssential    TaxCategory = 1
	TaxCategoryIntermediate TaxCategory = 2
	TaxCategoryStandard     TaxCategory = 3
	TaxCategoryLuxury       TaxCategory = 4
	TaxCategoryExempt       TaxCategory = 5
)

var taxCategoryNames = []string{"none", "essential", "intermediate", "standard", "luxury", "exempt"}

// ParseTaxCategory maps a category name to a TaxCategory, returning
// TaxCategoryNone when the name is not recognised.
func ParseTaxCategory(s string) TaxCategory {
	i, ok := indexOf(taxCategoryNames, s)
	if !ok {
		return TaxCategoryNone
	}
	return TaxCategory(i)
}

func (t TaxCategory) String() string {
	return nameOf(taxCategoryNames, int(t), "none")
}

// Valid reports whether t names a configured slab
func (t TaxCategory) Valid() bool {
	return t >= TaxCategoryEssential && t <= TaxCategoryExempt
}

func (t TaxCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TaxCategory) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = TaxCategoryNone
		return nil
	}
	i, ok, err := unmarshalName(data, taxCategoryNames)
	if err != nil {
		return err
	}
	if !ok {
		*t = TaxCategoryNone
		return nil
	}
	*t = TaxCategory(i)
	return nil
}

func (t TaxCategory) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TaxCategory) Scan(value interface{}) error {
	if value == nil {
		*t = TaxCategoryNone
		return nil
	}
	if i, ok := scanInt(value); ok {
		*t = TaxCategory(i)
	}
	return nil
}
