package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for campaigns, donations and audit
// entries. Version 7 UUIDs keep insertion order roughly monotonic, which
// suits created_at-ordered listings.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a v7 UUID string, falling back to v4 when the clock
// source is unavailable.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
