package crypto

import "errors"

// Error taxonomy of the encryption core. The three categories are kept
// distinct end to end: a tag mismatch signals tampering or a wrong key and
// must never be presented as a not-found or generic decoding failure.
var (
	// ErrConfiguration is returned when the encryption key is missing, not
	// valid hex, or does not decode to exactly 32 bytes. Fatal at startup,
	// never a per-request condition.
	ErrConfiguration = errors.New("invalid encryption key configuration")

	// ErrAuthentication is returned when AES-GCM tag verification fails,
	// meaning the ciphertext or nonce was tampered with or encrypted under a
	// different key. Never auto-retried.
	ErrAuthentication = errors.New("authentication failed: data corrupted or tampered")

	// ErrDecoding is returned on malformed wire input: invalid base64 or a
	// structurally broken document envelope. Distinct from ErrAuthentication
	// so corruption of the format is distinguishable from tampering of the
	// payload.
	ErrDecoding = errors.New("malformed encrypted payload")
)
