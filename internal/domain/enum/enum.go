package enum

import (
	"encoding/json"
	"strings"
)

// nameOf returns names[i] or fallback when i is out of range
func nameOf(names []string, i int, fallback string) string {
	if i < 0 || i >= len(names) {
		return fallback
	}
	return names[i]
}

// indexOf matches s against names case-insensitively, ignoring surrounding space
func indexOf(names []string, s string) (int, bool) {
	s = strings.TrimSpace(s)
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return i, true
		}
	}
	return 0, false
}

// unmarshalName decodes either a string name or a raw integer
func unmarshalName(data []byte, names []string) (int, bool, error) {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return 0, false, err
		}
		return i, true, nil
	}
	i, ok := indexOf(names, str)
	return i, ok, nil
}

// scanInt converts a database value into an int
func scanInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}
