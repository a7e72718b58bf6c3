package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// AccountUseCase handles account lifecycle: opening, closing,
// unlocking and administrative inspection.
type AccountUseCase struct {
	store  LedgerStore
	admins domain.AdminDirectory
	numGen NumberGenerator
	idGen  IDGenerator
	locks  *AccountLocks
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(store LedgerStore, admins domain.AdminDirectory, numGen NumberGenerator, idGen IDGenerator, locks *AccountLocks) *AccountUseCase {
	return &AccountUseCase{
		store:  store,
		admins: admins,
		numGen: numGen,
		idGen:  idGen,
		locks:  locks,
	}
}

// OpenAccountInput represents input for opening an account.
type OpenAccountInput struct {
	Name           string
	PIN            string
	InitialDeposit decimal.Decimal
}

// OpenAccount allocates a fresh account number, creates the account and
// applies the optional initial deposit as an ordinary deposit record.
func (uc *AccountUseCase) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	if err := domain.ValidateHolderName(input.Name); err != nil {
		return nil, err
	}
	if !domain.ValidPIN(input.PIN) {
		return nil, domain.ErrPINFormat
	}
	if err := domain.ValidateInitialDeposit(input.InitialDeposit); err != nil {
		return nil, err
	}

	number, err := uc.allocateNumber()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := domain.NewAccount(number, input.Name, input.PIN, now)

	if input.InitialDeposit.IsPositive() {
		if _, err := account.Deposit(uc.idGen.Generate(), input.InitialDeposit, now); err != nil {
			return nil, err
		}
	}

	uc.store.Put(account)
	if err := uc.store.Save(ctx); err != nil {
		return nil, err
	}

	return account, nil
}

func (uc *AccountUseCase) allocateNumber() (string, error) {
	for i := 0; i < MaxNumberAttempts; i++ {
		number := uc.numGen.Generate()
		if !uc.store.Exists(number) {
			return number, nil
		}
	}
	return "", fmt.Errorf("could not allocate a free account number after %d attempts", MaxNumberAttempts)
}

// CloseAccount removes an account from the ledger. The caller's admin
// identity is trusted from the session; only the username is checked.
func (uc *AccountUseCase) CloseAccount(ctx context.Context, number, adminUser string) error {
	if !uc.admins.Recognized(adminUser) || !uc.store.Exists(number) {
		return domain.ErrAdminActionRejected
	}

	unlock := uc.locks.Lock(number)
	defer unlock()

	account, err := uc.store.Get(number)
	if err != nil {
		return domain.ErrAdminActionRejected
	}
	if !account.Balance.IsZero() {
		return domain.ErrNonZeroBalance
	}

	uc.store.Delete(number)
	if err := uc.store.Save(ctx); err != nil {
		return err
	}

	uc.locks.Forget(number)
	return nil
}

// UnlockAccount clears the lock and resets the failed-attempt counter.
func (uc *AccountUseCase) UnlockAccount(ctx context.Context, number, adminUser string) error {
	if !uc.admins.Recognized(adminUser) || !uc.store.Exists(number) {
		return domain.ErrAdminActionRejected
	}

	unlock := uc.locks.Lock(number)
	defer unlock()

	account, err := uc.store.Get(number)
	if err != nil {
		return domain.ErrAdminActionRejected
	}

	account = account.Clone()
	account.Locked = false
	account.PINAttempts = 0
	uc.store.Put(account)

	return uc.store.Save(ctx)
}

// GetAccount retrieves one account for administrative inspection.
func (uc *AccountUseCase) GetAccount(number string) (*domain.Account, error) {
	return uc.store.Get(number)
}

// ListAccounts returns every account in the ledger.
func (uc *AccountUseCase) ListAccounts() []*domain.Account {
	return uc.store.List()
}
