package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidPIN(t *testing.T) {
	tests := []struct {
		pin  string
		want bool
	}{
		{"1234", true},
		{"0000", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"", false},
		{" 1234", false},
	}

	for _, tt := range tests {
		if got := ValidPIN(tt.pin); got != tt.want {
			t.Errorf("ValidPIN(%q) = %v, want %v", tt.pin, got, tt.want)
		}
	}
}

func TestValidAccountNumber(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"12345678", true},
		{"00000001", true},
		{"1234567", false},
		{"123456789", false},
		{"1234567a", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidAccountNumber(tt.number); got != tt.want {
			t.Errorf("ValidAccountNumber(%q) = %v, want %v", tt.number, got, tt.want)
		}
	}
}

func TestValidateInitialDeposit(t *testing.T) {
	if err := ValidateInitialDeposit(decimal.Zero); err != nil {
		t.Errorf("zero opening deposit must be allowed: %v", err)
	}
	if err := ValidateInitialDeposit(decimal.NewFromInt(100)); err != nil {
		t.Errorf("positive opening deposit must be allowed: %v", err)
	}
	if err := ValidateInitialDeposit(decimal.NewFromInt(-1)); err == nil {
		t.Error("negative opening deposit must be rejected")
	}
}

func TestValidateHolderName(t *testing.T) {
	if err := ValidateHolderName("Ada Lovelace"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateHolderName("   "); err == nil {
		t.Error("blank name must be rejected")
	}
}
