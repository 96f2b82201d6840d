package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Value implements [driver.Valuer] so a DocumentList is stored as a JSONB
// array. A nil list serialises as the empty array, never SQL NULL.
func (l DocumentList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal document list: %w", err)
	}
	return b, nil
}

// Scan implements [sql.Scanner] for reading a DocumentList out of a JSONB
// column.
func (l *DocumentList) Scan(src any) error {
	if src == nil {
		*l = DocumentList{}
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into DocumentList", src)
	}
}
