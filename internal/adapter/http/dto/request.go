package dto

import (
	"github.com/shopspring/decimal"
)

// LoginRequest represents a customer login.
type LoginRequest struct {
	AccountNumber string `json:"account_number"`
	PIN           string `json:"pin"`
}

// AdminLoginRequest represents an admin login.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// OpenAccountRequest represents a request to open an account.
type OpenAccountRequest struct {
	Name           string          `json:"name"`
	PIN            string          `json:"pin"`
	ConfirmPIN     string          `json:"confirm_pin"`
	InitialDeposit decimal.Decimal `json:"initial_deposit"`
}

// AmountRequest carries the amount for a deposit or withdrawal.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TransferRequest represents a transfer to another account.
type TransferRequest struct {
	ToAccount string          `json:"to_account"`
	Amount    decimal.Decimal `json:"amount"`
}

// ChangePINRequest represents a PIN change.
type ChangePINRequest struct {
	CurrentPIN string `json:"current_pin"`
	NewPIN     string `json:"new_pin"`
	ConfirmPIN string `json:"confirm_pin"`
}
