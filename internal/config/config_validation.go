package config

import (
	"encoding/hex"
	"fmt"
)

const encryptionKeyBytes = 32

func (c *StructuredConfig) validate() error {
	if c.App.EncryptionKey == "" {
		return ErrMissingEncryptionKey
	}

	key, err := hex.DecodeString(c.App.EncryptionKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncryptionKey, err)
	}
	if len(key) != encryptionKeyBytes {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidEncryptionKey, len(key))
	}

	if c.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if c.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	return nil
}
