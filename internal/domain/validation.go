package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	AccountNumberLength = 8
	PINLength           = 4
	MaxHolderNameLength = 255
)

var (
	pinPattern    = regexp.MustCompile(`^[0-9]{4}$`)
	numberPattern = regexp.MustCompile(`^[0-9]{8}$`)
)

// ValidPIN reports whether pin is exactly four digits.
func ValidPIN(pin string) bool {
	return pinPattern.MatchString(pin)
}

// ValidAccountNumber reports whether number is a well-formed eight-digit
// account number.
func ValidAccountNumber(number string) bool {
	return numberPattern.MatchString(number)
}

// ValidateHolderName validates the display name given when opening an
// account.
func ValidateHolderName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("holder name cannot be empty")
	}
	if len(name) > MaxHolderNameLength {
		return fmt.Errorf("holder name exceeds %d characters", MaxHolderNameLength)
	}

	return nil
}

// ValidateInitialDeposit validates the optional opening deposit. Zero is
// allowed; the account simply starts empty.
func ValidateInitialDeposit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrDepositRejected
	}
	return nil
}
