package utils

import "github.com/google/uuid"

// TokenGenerator produces opaque session tokens. Tokens carry no structure
// and are matched by plain equality; uniqueness is all that matters.
type TokenGenerator struct {
}

func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{}
}

// Generate returns a fresh token. UUIDv7 is preferred for its monotonic
// layout; on the rare entropy failure it falls back to UUIDv4.
func (g *TokenGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
