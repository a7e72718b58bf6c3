package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
	"github.com/iho/gobank/internal/usecase/mocks"
)

func newAccountFixture(t *testing.T) (*usecase.AccountUseCase, *mocks.MockLedgerStore, *mocks.MockNumberGenerator) {
	t.Helper()

	store := mocks.NewMockLedgerStore()
	numGen := mocks.NewMockNumberGenerator()
	admins := domain.AdminDirectory{"admin": "admin123"}
	uc := usecase.NewAccountUseCase(store, admins, numGen, mocks.NewMockIDGenerator(), usecase.NewAccountLocks())
	return uc, store, numGen
}

func TestAccountUseCase_OpenAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("with initial deposit", func(t *testing.T) {
		uc, store, _ := newAccountFixture(t)

		account, err := uc.OpenAccount(ctx, usecase.OpenAccountInput{
			Name:           "Ada",
			PIN:            "1234",
			InitialDeposit: decimal.NewFromInt(100),
		})
		require.NoError(t, err)

		assert.Len(t, account.Number, domain.AccountNumberLength)
		assert.True(t, account.Balance.Equal(decimal.NewFromInt(100)))
		require.Len(t, account.Log, 1)
		// The opening balance is an ordinary deposit record, not a
		// special kind.
		assert.Equal(t, domain.KindDeposit, account.Log[0].Kind)
		assert.Equal(t, 1, store.SaveCalls)
		assert.True(t, store.Exists(account.Number))
	})

	t.Run("zero deposit leaves an empty log", func(t *testing.T) {
		uc, _, _ := newAccountFixture(t)

		account, err := uc.OpenAccount(ctx, usecase.OpenAccountInput{Name: "Ada", PIN: "1234"})
		require.NoError(t, err)
		assert.True(t, account.Balance.IsZero())
		assert.Empty(t, account.Log)
	})

	t.Run("bad PIN format", func(t *testing.T) {
		uc, store, _ := newAccountFixture(t)

		_, err := uc.OpenAccount(ctx, usecase.OpenAccountInput{Name: "Ada", PIN: "12"})
		assert.ErrorIs(t, err, domain.ErrPINFormat)
		assert.Zero(t, store.SaveCalls)
	})

	t.Run("negative initial deposit", func(t *testing.T) {
		uc, _, _ := newAccountFixture(t)

		_, err := uc.OpenAccount(ctx, usecase.OpenAccountInput{
			Name:           "Ada",
			PIN:            "1234",
			InitialDeposit: decimal.NewFromInt(-5),
		})
		assert.Error(t, err)
	})

	t.Run("number collision retries", func(t *testing.T) {
		uc, store, numGen := newAccountFixture(t)

		store.Put(domain.NewAccount("00000001", "Taken", "9999", time.Now().UTC()))
		// Generator yields the taken number first, then a free one.
		sequence := []string{"00000001", "00000002"}
		numGen.GenerateFunc = func() string {
			next := sequence[0]
			if len(sequence) > 1 {
				sequence = sequence[1:]
			}
			return next
		}

		account, err := uc.OpenAccount(ctx, usecase.OpenAccountInput{Name: "Ada", PIN: "1234"})
		require.NoError(t, err)
		assert.Equal(t, "00000002", account.Number)
	})
}

func TestAccountUseCase_CloseAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("zero balance closes", func(t *testing.T) {
		uc, store, _ := newAccountFixture(t)
		store.Put(domain.NewAccount("12345678", "Ada", "1234", time.Now().UTC()))

		require.NoError(t, uc.CloseAccount(ctx, "12345678", "admin"))
		assert.False(t, store.Exists("12345678"))
		assert.Equal(t, 1, store.SaveCalls)
	})

	t.Run("non-zero balance is refused", func(t *testing.T) {
		uc, store, _ := newAccountFixture(t)
		acc := domain.NewAccount("12345678", "Ada", "1234", time.Now().UTC())
		acc.Balance = decimal.NewFromInt(10)
		store.Put(acc)

		err := uc.CloseAccount(ctx, "12345678", "admin")
		assert.ErrorIs(t, err, domain.ErrNonZeroBalance)
		assert.True(t, store.Exists("12345678"))
	})

	t.Run("unknown admin collapses with unknown account", func(t *testing.T) {
		uc, store, _ := newAccountFixture(t)
		store.Put(domain.NewAccount("12345678", "Ada", "1234", time.Now().UTC()))

		assert.ErrorIs(t, uc.CloseAccount(ctx, "12345678", "intruder"), domain.ErrAdminActionRejected)
		assert.ErrorIs(t, uc.CloseAccount(ctx, "00000000", "admin"), domain.ErrAdminActionRejected)
	})
}

func TestAccountUseCase_UnlockAccount(t *testing.T) {
	ctx := context.Background()

	uc, store, _ := newAccountFixture(t)
	acc := domain.NewAccount("12345678", "Ada", "1234", time.Now().UTC())
	acc.Locked = true
	acc.PINAttempts = 3
	store.Put(acc)

	require.NoError(t, uc.UnlockAccount(ctx, "12345678", "admin"))
	unlocked, err := store.Get("12345678")
	require.NoError(t, err)
	assert.False(t, unlocked.Locked)
	assert.Zero(t, unlocked.PINAttempts)
	assert.Equal(t, 1, store.SaveCalls)

	assert.ErrorIs(t, uc.UnlockAccount(ctx, "12345678", "intruder"), domain.ErrAdminActionRejected)
}
