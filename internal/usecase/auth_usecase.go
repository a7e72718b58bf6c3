package usecase

import (
	"context"
	"errors"

	"github.com/iho/gobank/internal/domain"
)

// AuthUseCase handles customer and admin authentication.
type AuthUseCase struct {
	store  LedgerStore
	admins domain.AdminDirectory
	locks  *AccountLocks
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(store LedgerStore, admins domain.AdminDirectory, locks *AccountLocks) *AuthUseCase {
	return &AuthUseCase{
		store:  store,
		admins: admins,
		locks:  locks,
	}
}

// Authenticate checks an account number and PIN. An unknown number and
// an already-locked account are reported with the same message. The
// third consecutive failure locks the account and persists the ledger;
// failures below the threshold and successful logins do not persist, so
// a sub-threshold counter is lost on restart.
func (uc *AuthUseCase) Authenticate(ctx context.Context, number, pin string) (*domain.Account, error) {
	unlock := uc.locks.Lock(number)
	defer unlock()

	account, err := uc.store.Get(number)
	if err != nil || account.Locked {
		return nil, domain.ErrLoginRejected
	}

	account = account.Clone()
	if err := account.VerifyPIN(pin); err != nil {
		// The advanced counter (and a tripped lock) must be visible to
		// the next attempt even when nothing is persisted.
		uc.store.Put(account)
		if errors.Is(err, domain.ErrTooManyAttempts) {
			if saveErr := uc.store.Save(ctx); saveErr != nil {
				return nil, saveErr
			}
		}
		return nil, err
	}

	uc.store.Put(account)
	return account, nil
}

// AuthenticateAdmin checks a username/password pair against the
// injected admin directory.
func (uc *AuthUseCase) AuthenticateAdmin(username, password string) error {
	if !uc.admins.Authenticate(username, password) {
		return domain.ErrAdminCredentials
	}
	return nil
}
