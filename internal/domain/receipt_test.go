package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestAccount_Receipt(t *testing.T) {
	acc := testAccount(120)
	now := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	t.Run("transfer out names the recipient", func(t *testing.T) {
		receipt := acc.Receipt(KindTransferOut, decimal.NewFromInt(20), "87654321", now)

		for _, want := range []string{
			"ATM TRANSACTION RECEIPT",
			"Account: 12345678",
			"Transaction Type: TRANSFER_OUT",
			"Amount: $20.00",
			"Recipient Account: 87654321",
			"Available Balance: $120.00",
			"2024-03-01 12:30:00",
		} {
			if !strings.Contains(receipt, want) {
				t.Errorf("receipt missing %q:\n%s", want, receipt)
			}
		}
	})

	t.Run("transfer in names the sender", func(t *testing.T) {
		receipt := acc.Receipt(KindTransferIn, decimal.NewFromInt(20), "87654321", now)
		if !strings.Contains(receipt, "Sender Account: 87654321") {
			t.Errorf("receipt missing sender line:\n%s", receipt)
		}
	})

	t.Run("deposit has no counterparty line", func(t *testing.T) {
		receipt := acc.Receipt(KindDeposit, decimal.NewFromInt(50), "", now)
		if strings.Contains(receipt, "Recipient") || strings.Contains(receipt, "Sender") {
			t.Errorf("unexpected counterparty line:\n%s", receipt)
		}
	})

	// Never fails, even for a transaction that was never recorded.
	t.Run("fabricated transaction still renders", func(t *testing.T) {
		receipt := acc.Receipt(KindWithdrawal, decimal.NewFromInt(9999), "", now)
		if !strings.Contains(receipt, "Amount: $9999.00") {
			t.Errorf("receipt did not render:\n%s", receipt)
		}
	})
}
