package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/heartchain/heartchain/models"
)

// nonceSize is the AES-GCM nonce length in bytes (96 bits, the recommended
// size for GCM). A fresh random nonce is drawn from the OS CSPRNG for every
// encryption; under one 256-bit key the birthday bound stays negligible for
// well under 2^32 encryptions, which is this system's safety budget.
const nonceSize = 12

// fieldCipher is the private implementation of [FieldCodec] and
// [EnvelopeSealer]. It wraps a single AES-256-GCM AEAD built once at
// construction; the AEAD is stateless, so the struct is safe to share
// across concurrent callers without locking.
type fieldCipher struct {
	aead cipher.AEAD
}

// NewFieldCipher builds a [Codec] from a hex-encoded 256-bit key.
// A key that is not valid hex or does not decode to exactly 32 bytes fails
// with [ErrConfiguration]; this is a fatal startup condition, callers must
// not continue without a working codec.
func NewFieldCipher(hexKey string) (Codec, error) {
	if hexKey == "" {
		return nil, fmt.Errorf("%w: encryption key is not set", ErrConfiguration)
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: key is not valid hex: %w", ErrConfiguration, err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: key must be 32 bytes (64 hex characters), got %d bytes", ErrConfiguration, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return &fieldCipher{aead: aead}, nil
}

// EncryptString implements [FieldCodec].
func (c *fieldCipher) EncryptString(plaintext string) (models.EncryptedField, error) {
	return c.Encrypt([]byte(plaintext))
}

// Encrypt implements [FieldCodec]. It generates a fresh 12-byte random
// nonce, seals the plaintext with AES-256-GCM (no associated data) and
// returns both halves base64-encoded. Empty input maps to the empty
// sentinel without invoking the cipher.
func (c *fieldCipher) Encrypt(plaintext []byte) (models.EncryptedField, error) {
	if len(plaintext) == 0 {
		return models.EncryptedField{}, nil
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.EncryptedField{}, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := c.aead.Seal(nil, nonce, plaintext, nil)

	return models.EncryptedField{
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// DecryptString implements [FieldCodec].
func (c *fieldCipher) DecryptString(field models.EncryptedField) (string, error) {
	plaintext, err := c.Decrypt(field)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// Decrypt implements [FieldCodec]. The empty sentinel yields an empty
// payload without touching the cipher. Malformed base64 or a nonce of the
// wrong length fails with [ErrDecoding]; a GCM tag mismatch with
// [ErrAuthentication].
func (c *fieldCipher) Decrypt(field models.EncryptedField) ([]byte, error) {
	if field.IsEmpty() {
		return nil, nil
	}

	nonce, err := base64.StdEncoding.DecodeString(field.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: decode nonce: %w", ErrDecoding, err)
	}
	if len(nonce) != nonceSize {
		return nil, fmt.Errorf("%w: nonce is %d bytes, want %d", ErrDecoding, len(nonce), nonceSize)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(field.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: decode ciphertext: %w", ErrDecoding, err)
	}

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return plaintext, nil
}
