package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// EncryptedField is the wire and storage representation of a single
// AES-256-GCM encrypted value. Nonce and Ciphertext are base64-encoded
// (standard encoding); the ciphertext carries the 128-bit GCM tag appended
// per convention. The two halves are always produced and consumed together.
//
// An empty plaintext is represented by the empty sentinel (both fields
// empty) and never passes through the cipher.
type EncryptedField struct {
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

// IsEmpty reports whether the field is the empty-plaintext sentinel.
func (f EncryptedField) IsEmpty() bool {
	return f.Nonce == "" && f.Ciphertext == ""
}

// Value implements [driver.Valuer] so an EncryptedField can be stored in a
// JSONB column directly.
func (f EncryptedField) Value() (driver.Value, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("marshal encrypted field: %w", err)
	}
	return b, nil
}

// Scan implements [sql.Scanner] for reading an EncryptedField back out of a
// JSONB column. A SQL NULL scans to the empty sentinel.
func (f *EncryptedField) Scan(src any) error {
	if src == nil {
		*f = EncryptedField{}
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("cannot scan %T into EncryptedField", src)
	}
}
