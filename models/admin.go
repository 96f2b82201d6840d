package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Admin is a reviewer account permitted to use the disclosure endpoints.
// PasswordHash is an argon2id encoded hash; the plaintext password never
// leaves the login handler.
type Admin struct {
	ID           string    `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Token wraps a JWT with convenience accessors for the admin auth flow.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for standard claim access, so the type itself can
// be used as the claims destination when parsing.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard JWT claim set (RFC 7519).
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// AdminID is the reviewer identifier extracted from the "sub" claim.
	AdminID string `json:"-"`
}

// AdminLoginRequest is the credentials payload of the admin login endpoint.
type AdminLoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
