package crypto

import (
	"bytes"
	"fmt"

	"github.com/heartchain/heartchain/models"
)

// envelopeDelimiter joins the base64 halves of a sealed document blob.
// It is part of the blob-store wire format:
//
//	<base64 nonce> ||| <base64 ciphertext>
//
// "|" never appears in standard base64 output, so the delimiter cannot
// collide with either half.
const envelopeDelimiter = "|||"

// SealDocument implements [EnvelopeSealer]. The whole payload is encrypted
// as one unit with the same AEAD used for field encryption (independent
// nonce per call) and encoded into the blob wire format ready to hand to
// the content-addressed store.
func (c *fieldCipher) SealDocument(content []byte) ([]byte, error) {
	field, err := c.Encrypt(content)
	if err != nil {
		return nil, fmt.Errorf("seal document: %w", err)
	}

	blob := make([]byte, 0, len(field.Nonce)+len(envelopeDelimiter)+len(field.Ciphertext))
	blob = append(blob, field.Nonce...)
	blob = append(blob, envelopeDelimiter...)
	blob = append(blob, field.Ciphertext...)
	return blob, nil
}

// OpenDocument implements [EnvelopeSealer]. The blob must contain exactly
// one delimiter occurrence; anything else is a structural [ErrDecoding],
// kept distinct from the [ErrAuthentication] raised by a tampered
// ciphertext after the split.
func (c *fieldCipher) OpenDocument(blob []byte) ([]byte, error) {
	if bytes.Count(blob, []byte(envelopeDelimiter)) != 1 {
		return nil, fmt.Errorf("%w: document blob must contain exactly one %q delimiter", ErrDecoding, envelopeDelimiter)
	}

	nonce, ciphertext, _ := bytes.Cut(blob, []byte(envelopeDelimiter))

	return c.Decrypt(models.EncryptedField{
		Nonce:      string(nonce),
		Ciphertext: string(ciphertext),
	})
}
