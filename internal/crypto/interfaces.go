package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/field_codec_mock.go -package=mock

import "github.com/heartchain/heartchain/models"

// FieldCodec encrypts and decrypts individual sensitive values with the
// process-wide symmetric key. Implementations hold no mutable state beyond
// the key and are safe for concurrent use.
type FieldCodec interface {
	// EncryptString encrypts a UTF-8 string. An empty input yields the empty
	// sentinel without invoking the cipher.
	EncryptString(plaintext string) (models.EncryptedField, error)

	// Encrypt encrypts an arbitrary byte payload with a fresh random nonce.
	Encrypt(plaintext []byte) (models.EncryptedField, error)

	// DecryptString reverses EncryptString. Returns ErrAuthentication on a
	// GCM tag mismatch and ErrDecoding on malformed base64.
	DecryptString(field models.EncryptedField) (string, error)

	// Decrypt reverses Encrypt with the same error contract as DecryptString.
	Decrypt(field models.EncryptedField) ([]byte, error)
}

// Codec is the full encryption surface of the core: field-level AEAD plus
// whole-document envelopes, both under the one process-wide key.
type Codec interface {
	FieldCodec
	EnvelopeSealer
}

// EnvelopeSealer seals and opens whole documents for the external blob
// store using the blob wire format: base64(nonce) ||| base64(ciphertext).
type EnvelopeSealer interface {
	// SealDocument encrypts content and encodes it into the blob wire format.
	SealDocument(content []byte) ([]byte, error)

	// OpenDocument reverses SealDocument. A blob without exactly one
	// delimiter occurrence fails with ErrDecoding; a tag mismatch with
	// ErrAuthentication.
	OpenDocument(blob []byte) ([]byte, error)
}
