package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ProfileType selects how a commission profile computes commission
type ProfileType int

const (
	ProfileTypeUnknown     ProfileType = 0
	ProfileTypeTargetBased ProfileType = 1
	ProfileTypeItemBased   ProfileType = 2
)

var profileTypeNames = []string{"unknown", "target_based", "item_based"}

func (p ProfileType) String() string {
	return nameOf(profileTypeNames, int(p), "unknown")
}

// Valid reports whether p is one of the profile types the evaluator knows
func (p ProfileType) Valid() bool {
	return p == ProfileTypeTargetBased || p == ProfileTypeItemBased
}

func (p ProfileType) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *ProfileType) UnmarshalJSON(data []byte) error {
	i, ok, err := unmarshalName(data, profileTypeNames)
	if err != nil {
		return err
	}
	if !ok {
		*p = ProfileTypeUnknown
		return nil
	}
	*p = ProfileType(i)
	return nil
}

func (p ProfileType) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *ProfileType) Scan(value interface{}) error {
	if value == nil {
		*p = ProfileTypeUnknown
		return nil
	}
	if i, ok := scanInt(value); ok {
		*p = ProfileType(i)
	}
	return nil
}

// CalculationInterval is how often a profile is settled. Monthly is the default.
type CalculationInterval int

const (
	CalculationIntervalMonthly CalculationInterval = 0
	CalculationIntervalDaily   CalculationInterval = 1
)

var calculationIntervalNames = []string{"monthly", "daily"}

func (c CalculationInterval) String() string {
	return nameOf(calculationIntervalNames, int(c), "monthly")
}

func (c CalculationInterval) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *CalculationInterval) UnmarshalJSON(data []byte) error {
	i, ok, err := unmarshalName(data, calculationIntervalNames)
	if err != nil {
		return err
	}
	if !ok {
		*c = CalculationIntervalMonthly
		return nil
	}
	*c = CalculationInterval(i)
	return nil
}

func (c CalculationInterval) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *CalculationInterval) Scan(value interface{}) error {
	if value == nil {
		*c = CalculationIntervalMonthly
		return nil
	}
	if i, ok := scanInt(value); ok {
		*c = CalculationInterval(i)
	}
	return nil
}

// CalculateBy says whether a tier or item rate is a percentage or a flat amount
type CalculateBy int

const (
	CalculateByPercent CalculateBy = 0
	CalculateByFixed   CalculateBy = 1
)

var calculateByNames = []string{"percent", "fixed"}

func (c CalculateBy) String() string {
	return nameOf(calculateByNames, int(c), "percent")
}

func (c CalculateBy) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *CalculateBy) UnmarshalJSON(data []byte) error {
	i, ok, err := unmarshalName(data, calculateByNames)
	if err != nil {
		return err
	}
	if !ok {
		*c = CalculateByPercent
		return nil
	}
	*c = CalculateBy(i)
	return nil
}

func (c CalculateBy) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *CalculateBy) Scan(value interface{}) error {
	if value == nil {
		*c = CalculateByPercent
		return nil
	}
	if i, ok := scanInt(value); ok {
		*c = CalculateBy(i)
	}
	return nil
}
