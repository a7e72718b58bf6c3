package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// ATMUseCase handles the customer-facing money operations against an
// authenticated account. Mutations follow the store's clone-and-install
// contract: the stored account is never written in place, so readers
// and the persistence snapshot cannot observe a half-applied change.
// Every mutation is followed by a full-ledger persist; a failed persist
// is surfaced, never swallowed.
type ATMUseCase struct {
	store LedgerStore
	idGen IDGenerator
	locks *AccountLocks
}

// NewATMUseCase creates a new ATMUseCase.
func NewATMUseCase(store LedgerStore, idGen IDGenerator, locks *AccountLocks) *ATMUseCase {
	return &ATMUseCase{
		store: store,
		idGen: idGen,
		locks: locks,
	}
}

// Deposit adds amount to the account.
func (uc *ATMUseCase) Deposit(ctx context.Context, number string, amount decimal.Decimal) (*domain.Transaction, error) {
	unlock := uc.locks.Lock(number)
	defer unlock()

	account, err := uc.store.Get(number)
	if err != nil {
		return nil, err
	}

	account = account.Clone()
	tx, err := account.Deposit(uc.idGen.Generate(), amount, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uc.store.Put(account)
	if err := uc.store.Save(ctx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Withdraw removes amount from the account.
func (uc *ATMUseCase) Withdraw(ctx context.Context, number string, amount decimal.Decimal) (*domain.Transaction, error) {
	unlock := uc.locks.Lock(number)
	defer unlock()

	account, err := uc.store.Get(number)
	if err != nil {
		return nil, err
	}

	account = account.Clone()
	tx, err := account.Withdraw(uc.idGen.Generate(), amount, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uc.store.Put(account)
	if err := uc.store.Save(ctx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Transfer moves amount between two accounts. Both are resolved through
// the ledger and locked together so no reader can observe a debited but
// not yet credited state.
func (uc *ATMUseCase) Transfer(ctx context.Context, from, to string, amount decimal.Decimal) (*domain.Transaction, error) {
	if from == to {
		return nil, domain.ErrSameAccount
	}

	unlock := uc.locks.Lock(from, to)
	defer unlock()

	src, err := uc.store.Get(from)
	if err != nil {
		return nil, err
	}
	dst, err := uc.store.Get(to)
	if err != nil {
		return nil, err
	}

	src, dst = src.Clone(), dst.Clone()
	out, _, err := domain.Transfer(src, dst, uc.idGen.Generate(), uc.idGen.Generate(), amount, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	// Both sides land in one Put so no snapshot can persist the debit
	// without the credit.
	uc.store.Put(src, dst)
	if err := uc.store.Save(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// Balance reports the available balance: zero for a locked or inactive
// account, without error.
func (uc *ATMUseCase) Balance(number string) (decimal.Decimal, error) {
	account, err := uc.store.Get(number)
	if err != nil {
		return decimal.Zero, err
	}
	return account.AvailableBalance(), nil
}

// History returns the account's transaction log, empty when locked.
func (uc *ATMUseCase) History(number string) ([]*domain.Transaction, error) {
	account, err := uc.store.Get(number)
	if err != nil {
		return nil, err
	}
	return account.History(), nil
}

// ChangePIN replaces the account's PIN. A lockout triggered here is
// persisted like one triggered at login.
func (uc *ATMUseCase) ChangePIN(ctx context.Context, number, oldPIN, newPIN string) error {
	unlock := uc.locks.Lock(number)
	defer unlock()

	account, err := uc.store.Get(number)
	if err != nil {
		return err
	}

	account = account.Clone()
	if err := account.ChangePIN(oldPIN, newPIN); err != nil {
		// Install the clone regardless: a wrong current PIN advances
		// the attempt counter even when nothing is persisted.
		uc.store.Put(account)
		if errors.Is(err, domain.ErrTooManyAttempts) {
			if saveErr := uc.store.Save(ctx); saveErr != nil {
				return saveErr
			}
		}
		return err
	}

	uc.store.Put(account)
	return uc.store.Save(ctx)
}

// LastReceipt renders a receipt for the most recent transaction.
func (uc *ATMUseCase) LastReceipt(number string) (string, error) {
	account, err := uc.store.Get(number)
	if err != nil {
		return "", err
	}

	history := account.History()
	if len(history) == 0 {
		return "", domain.ErrNoTransactions
	}

	last := history[len(history)-1]
	return account.Receipt(last.Kind, last.Amount, last.Counterparty(), time.Now().UTC()), nil
}
