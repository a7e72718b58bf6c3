package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const receiptTimeFormat = "2006-01-02 15:04:05"

// Receipt renders a printable slip for a transaction against this
// account. Pure formatting: it does not consult the log and never
// fails, even for a transaction that was never recorded.
func (a *Account) Receipt(kind TransactionKind, amount decimal.Decimal, counterparty string, now time.Time) string {
	rule := strings.Repeat("=", 40)

	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "ATM TRANSACTION RECEIPT")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Date: %s\n", now.Format(receiptTimeFormat))
	fmt.Fprintf(&b, "Account: %s\n", a.Number)
	fmt.Fprintf(&b, "Transaction Type: %s\n", strings.ToUpper(string(kind)))
	fmt.Fprintf(&b, "Amount: $%s\n", amount.StringFixed(2))

	if counterparty != "" {
		switch kind {
		case KindTransferOut:
			fmt.Fprintf(&b, "Recipient Account: %s\n", counterparty)
		case KindTransferIn:
			fmt.Fprintf(&b, "Sender Account: %s\n", counterparty)
		}
	}

	fmt.Fprintf(&b, "Available Balance: $%s\n", a.Balance.StringFixed(2))
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "Thank you for banking with us!")

	return b.String()
}
