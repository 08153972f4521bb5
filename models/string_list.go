package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings stored in a single text column
// as a JSON array.
//
// Round-trip rules:
//   - Value always writes a JSON array; a nil or empty list is written as "[]".
//   - Scan reads NULL, an empty string or malformed JSON as an empty list.
//   - MarshalJSON never produces "null".
type StringList []string

// Value implements [driver.Valuer].
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}

	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("error encoding string list: %w", err)
	}

	return string(b), nil
}

// Scan implements [sql.Scanner].
func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for string list", src)
	}

	var list []string
	if len(raw) == 0 || json.Unmarshal(raw, &list) != nil || list == nil {
		*l = StringList{}
		return nil
	}

	*l = list
	return nil
}

// MarshalJSON encodes a nil list as an empty JSON array.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]string(l))
}
