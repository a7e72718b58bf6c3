package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind tags a transaction record with the event that produced it.
type TransactionKind string

const (
	KindDeposit     TransactionKind = "deposit"
	KindWithdrawal  TransactionKind = "withdrawal"
	KindTransferOut TransactionKind = "transfer_out"
	KindTransferIn  TransactionKind = "transfer_in"
)

// Transaction is one immutable entry in an account's log. The two records
// written for a transfer share amount and timestamp but each carries the
// owning account's balance after the event.
type Transaction struct {
	CreatedAt    time.Time
	ID           string
	Kind         TransactionKind
	FromAccount  string
	ToAccount    string
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
}

// Counterparty returns the other side of a transfer record, or "" for
// deposits and withdrawals.
func (t *Transaction) Counterparty() string {
	switch t.Kind {
	case KindTransferOut:
		return t.ToAccount
	case KindTransferIn:
		return t.FromAccount
	}
	return ""
}
