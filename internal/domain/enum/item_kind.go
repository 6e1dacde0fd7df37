package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ItemKind classifies a billed line item. The capitalised names double as the
// qualifying-item vocabulary of commission profiles.
type ItemKind int

const (
	ItemKindUnknown    ItemKind = 0
	ItemKindService    ItemKind = 1
	ItemKindProduct    ItemKind = 2
	ItemKindPackage    ItemKind = 3
	ItemKindMembership ItemKind = 4
	ItemKindPrepaid    ItemKind = 5
)

var itemKindNames = []string{"Unknown", "Service", "Product", "Package", "Membership", "Prepaid"}

// AllItemKinds lists every known item kind in declaration order
func AllItemKinds() []ItemKind {
	return []ItemKind{ItemKindService, ItemKindProduct, ItemKindPackage, ItemKindMembership, ItemKindPrepaid}
}

// ParseItemKind maps a name such as "service" or "Service" to an ItemKind.
// Unrecognised names yield ItemKindUnknown.
func ParseItemKind(s string) ItemKind {
	i, ok := indexOf(itemKindNames, s)
	if !ok {
		return ItemKindUnknown
	}
	return ItemKind(i)
}

func (k ItemKind) String() string {
	return nameOf(itemKindNames, int(k), "Unknown")
}

// Valid reports whether k is one of the known kinds
func (k ItemKind) Valid() bool {
	return k >= ItemKindService && k <= ItemKindPrepaid
}

func (k ItemKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *ItemKind) UnmarshalJSON(data []byte) error {
	i, ok, err := unmarshalName(data, itemKindNames)
	if err != nil {
		return err
	}
	if !ok {
		*k = ItemKindUnknown
		return nil
	}
	*k = ItemKind(i)
	return nil
}

// MarshalText lets ItemKind be used as a JSON map key
func (k ItemKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ItemKind) UnmarshalText(text []byte) error {
	*k = ParseItemKind(string(text))
	return nil
}

func (k ItemKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *ItemKind) Scan(value interface{}) error {
	if value == nil {
		*k = ItemKindUnknown
		return nil
	}
	if i, ok := scanInt(value); ok {
		*k = ItemKind(i)
	}
	return nil
}
