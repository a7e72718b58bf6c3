package file

import (
	"math/rand"

	"github.com/oklog/ulid/v2"

	"github.com/iho/gobank/internal/domain"
)

// ULIDGenerator generates ULID-based transaction record IDs.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}

// NumberGenerator produces random 8-digit account number candidates.
type NumberGenerator struct{}

// NewNumberGenerator creates a new NumberGenerator.
func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{}
}

// Generate returns a random fixed-length numeric string. Leading zeros
// are allowed; the number is an identifier, not an integer.
func (g *NumberGenerator) Generate() string {
	digits := make([]byte, domain.AccountNumberLength)
	for i := range digits {
		digits[i] = '0' + byte(rand.Intn(10))
	}
	return string(digits)
}
