package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// OutcomeResponse is the uniform success/message shape the shell
// renders. Expected business failures use it with success=false.
type OutcomeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LoginResponse carries a session token.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// AccountOpenedResponse reports the freshly allocated account number.
type AccountOpenedResponse struct {
	Success       bool   `json:"success"`
	AccountNumber string `json:"account_number"`
	Message       string `json:"message,omitempty"`
}

// BalanceResponse reports the available balance.
type BalanceResponse struct {
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
}

// TransactionResponse represents one log entry.
type TransactionResponse struct {
	ID           string          `json:"id,omitempty"`
	Kind         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	FromAccount  string          `json:"from_account,omitempty"`
	ToAccount    string          `json:"to_account,omitempty"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:           t.ID,
		Kind:         string(t.Kind),
		Amount:       t.Amount,
		Date:         t.CreatedAt,
		BalanceAfter: t.BalanceAfter,
		FromAccount:  t.FromAccount,
		ToAccount:    t.ToAccount,
	}
}

// TransactionsFromDomain converts a transaction log to responses.
func TransactionsFromDomain(txs []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txs))
	for i, t := range txs {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// TransactionResult reports a successful mutation together with the
// record it appended.
type TransactionResult struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message"`
	Transaction *TransactionResponse `json:"transaction"`
}

// ReceiptResponse carries rendered receipt text.
type ReceiptResponse struct {
	Receipt string `json:"receipt"`
}

// AccountResponse is the administrative view of one account.
type AccountResponse struct {
	AccountNumber string          `json:"account_number"`
	Name          string          `json:"name,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	Active        bool            `json:"active"`
	Locked        bool            `json:"locked"`
	PINAttempts   int             `json:"pin_attempts"`
	Transactions  int             `json:"transactions"`
}

// AccountFromDomain converts a domain account to the admin view. The
// stored balance is reported here, not the lock-masked one: admins
// inspect real state.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		AccountNumber: a.Number,
		Name:          a.Name,
		Balance:       a.Balance,
		Active:        a.Active,
		Locked:        a.Locked,
		PINAttempts:   a.PINAttempts,
		Transactions:  len(a.Log),
	}
}

// AccountsFromDomain converts domain accounts to admin views.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps the admin account listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int                `json:"total"`
}

// AccountDetailResponse is the admin view with the full log attached.
type AccountDetailResponse struct {
	Account      *AccountResponse       `json:"account"`
	Transactions []*TransactionResponse `json:"transactions"`
}
