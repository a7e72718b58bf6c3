package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountLocked      = errors.New("account is locked, contact an administrator")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrDepositRejected    = errors.New("invalid deposit amount or account locked/inactive")
	ErrWithdrawalRejected = errors.New("invalid withdrawal amount or insufficient funds")
	ErrTransferRejected   = errors.New("invalid transfer amount or insufficient funds")
	ErrSameAccount        = errors.New("cannot transfer to same account")
	ErrNoTransactions     = errors.New("no transactions to print")

	// Credential errors
	ErrIncorrectPIN     = errors.New("incorrect PIN")
	ErrPINFormat        = errors.New("PIN must be exactly 4 digits")
	ErrTooManyAttempts  = errors.New("too many incorrect attempts, account locked")
	ErrLoginRejected    = errors.New("invalid account number or account is locked")
	ErrAdminCredentials = errors.New("invalid admin credentials")

	// Admin operation errors
	ErrAdminActionRejected = errors.New("invalid account number or admin credentials")
	ErrNonZeroBalance      = errors.New("cannot close account with non-zero balance")

	// Session errors
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)
