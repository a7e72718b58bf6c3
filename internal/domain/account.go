package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MaxPINAttempts is the number of consecutive failed PIN checks that
// locks an account.
const MaxPINAttempts = 3

// Account is one customer's balance, credentials, lock state and
// append-only transaction log.
type Account struct {
	CreatedAt   time.Time
	Number      string
	Name        string
	PIN         string
	Balance     decimal.Decimal
	Log         []*Transaction
	Active      bool
	Locked      bool
	PINAttempts int
}

// NewAccount creates an active account with a zero balance.
func NewAccount(number, name, pin string, now time.Time) *Account {
	return &Account{
		CreatedAt: now,
		Number:    number,
		Name:      name,
		PIN:       pin,
		Balance:   decimal.Zero,
		Active:    true,
	}
}

// Clone returns a copy of the account with its own log slice. Mutating
// the clone leaves the receiver untouched, so holders of the previous
// value never observe a partial update.
func (a *Account) Clone() *Account {
	c := *a
	c.Log = make([]*Transaction, len(a.Log))
	copy(c.Log, a.Log)
	return &c
}

// Deposit increases the balance and appends a deposit record. All
// failure causes collapse into a single rejection.
func (a *Account) Deposit(recordID string, amount decimal.Decimal, now time.Time) (*Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) || !a.Active || a.Locked {
		return nil, ErrDepositRejected
	}

	a.Balance = a.Balance.Add(amount)
	tx := &Transaction{
		CreatedAt:    now,
		ID:           recordID,
		Kind:         KindDeposit,
		ToAccount:    a.Number,
		Amount:       amount,
		BalanceAfter: a.Balance,
	}
	a.Log = append(a.Log, tx)

	return tx, nil
}

// Withdraw decreases the balance and appends a withdrawal record.
// Locked and inactive states are reported distinctly; a bad amount and
// insufficient funds share one rejection.
func (a *Account) Withdraw(recordID string, amount decimal.Decimal, now time.Time) (*Transaction, error) {
	if a.Locked {
		return nil, ErrAccountLocked
	}
	if !a.Active {
		return nil, ErrAccountInactive
	}
	if amount.LessThanOrEqual(decimal.Zero) || a.Balance.LessThan(amount) {
		return nil, ErrWithdrawalRejected
	}

	a.Balance = a.Balance.Sub(amount)
	tx := &Transaction{
		CreatedAt:    now,
		ID:           recordID,
		Kind:         KindWithdrawal,
		FromAccount:  a.Number,
		Amount:       amount,
		BalanceAfter: a.Balance,
	}
	a.Log = append(a.Log, tx)

	return tx, nil
}

// Transfer moves amount from src to dst as a single unit: debit, credit
// and both log records are applied together or not at all. Only the
// source account's lock and active state gate the operation; the
// destination is credited regardless of its own state.
func Transfer(src, dst *Account, outID, inID string, amount decimal.Decimal, now time.Time) (*Transaction, *Transaction, error) {
	if src.Number == dst.Number {
		return nil, nil, ErrSameAccount
	}
	if src.Locked {
		return nil, nil, ErrAccountLocked
	}
	if !src.Active {
		return nil, nil, ErrAccountInactive
	}
	if amount.LessThanOrEqual(decimal.Zero) || src.Balance.LessThan(amount) {
		return nil, nil, ErrTransferRejected
	}

	src.Balance = src.Balance.Sub(amount)
	dst.Balance = dst.Balance.Add(amount)

	out := &Transaction{
		CreatedAt:    now,
		ID:           outID,
		Kind:         KindTransferOut,
		FromAccount:  src.Number,
		ToAccount:    dst.Number,
		Amount:       amount,
		BalanceAfter: src.Balance,
	}
	in := &Transaction{
		CreatedAt:    now,
		ID:           inID,
		Kind:         KindTransferIn,
		FromAccount:  src.Number,
		ToAccount:    dst.Number,
		Amount:       amount,
		BalanceAfter: dst.Balance,
	}
	src.Log = append(src.Log, out)
	dst.Log = append(dst.Log, in)

	return out, in, nil
}

// AvailableBalance reports the balance, or zero when the account is
// locked or inactive. The stored balance is unaffected.
func (a *Account) AvailableBalance() decimal.Decimal {
	if a.Locked || !a.Active {
		return decimal.Zero
	}
	return a.Balance
}

// History returns the transaction log, or nothing when the account is
// locked. An inactive account can still read its history.
func (a *Account) History() []*Transaction {
	if a.Locked {
		return nil
	}
	return a.Log
}

// VerifyPIN checks a PIN against the stored credential. A match resets
// the failed-attempt counter; a mismatch increments it and locks the
// account at the threshold.
func (a *Account) VerifyPIN(pin string) error {
	if pin == a.PIN {
		a.PINAttempts = 0
		return nil
	}

	a.PINAttempts++
	if a.PINAttempts >= MaxPINAttempts {
		a.Locked = true
		return ErrTooManyAttempts
	}

	return fmt.Errorf("%w, %d attempts remaining", ErrIncorrectPIN, MaxPINAttempts-a.PINAttempts)
}

// ChangePIN replaces the credential after verifying the current one.
// A format rejection of the new PIN does not count as a failed attempt.
func (a *Account) ChangePIN(oldPIN, newPIN string) error {
	if a.Locked {
		return ErrAccountLocked
	}

	if oldPIN == a.PIN {
		if !ValidPIN(newPIN) {
			return ErrPINFormat
		}
		a.PIN = newPIN
		a.PINAttempts = 0
		return nil
	}

	a.PINAttempts++
	if a.PINAttempts >= MaxPINAttempts {
		a.Locked = true
		return ErrTooManyAttempts
	}

	return ErrIncorrectPIN
}
