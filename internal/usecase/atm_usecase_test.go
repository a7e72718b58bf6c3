package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
	"github.com/iho/gobank/internal/usecase/mocks"
)

func newATMFixture(t *testing.T) (*usecase.ATMUseCase, *mocks.MockLedgerStore) {
	t.Helper()

	store := mocks.NewMockLedgerStore()
	acc := domain.NewAccount("12345678", "Ada", "1234", time.Now().UTC())
	acc.Balance = decimal.NewFromInt(100)
	store.Put(acc)
	store.Put(domain.NewAccount("87654321", "Grace", "4321", time.Now().UTC()))

	uc := usecase.NewATMUseCase(store, mocks.NewMockIDGenerator(), usecase.NewAccountLocks())
	return uc, store
}

func TestATMUseCase_Deposit(t *testing.T) {
	ctx := context.Background()

	t.Run("success persists", func(t *testing.T) {
		uc, store := newATMFixture(t)

		tx, err := uc.Deposit(ctx, "12345678", decimal.NewFromInt(50))
		require.NoError(t, err)
		assert.Equal(t, domain.KindDeposit, tx.Kind)
		assert.Equal(t, 1, store.SaveCalls)
	})

	t.Run("rejection does not persist", func(t *testing.T) {
		uc, store := newATMFixture(t)

		_, err := uc.Deposit(ctx, "12345678", decimal.Zero)
		assert.ErrorIs(t, err, domain.ErrDepositRejected)
		assert.Zero(t, store.SaveCalls)
	})

	t.Run("unknown account", func(t *testing.T) {
		uc, _ := newATMFixture(t)

		_, err := uc.Deposit(ctx, "00000000", decimal.NewFromInt(10))
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("failed persist is surfaced", func(t *testing.T) {
		uc, store := newATMFixture(t)
		saveErr := errors.New("disk full")
		store.SaveFunc = func(context.Context) error { return saveErr }

		_, err := uc.Deposit(ctx, "12345678", decimal.NewFromInt(10))
		assert.ErrorIs(t, err, saveErr)
	})
}

func TestATMUseCase_Withdraw(t *testing.T) {
	ctx := context.Background()
	uc, store := newATMFixture(t)

	tx, err := uc.Withdraw(ctx, "12345678", decimal.NewFromInt(30))
	require.NoError(t, err)
	assert.Equal(t, domain.KindWithdrawal, tx.Kind)
	assert.True(t, tx.BalanceAfter.Equal(decimal.NewFromInt(70)))

	_, err = uc.Withdraw(ctx, "12345678", decimal.NewFromInt(1000))
	assert.ErrorIs(t, err, domain.ErrWithdrawalRejected)
	assert.Equal(t, 1, store.SaveCalls)
}

func TestATMUseCase_Transfer(t *testing.T) {
	ctx := context.Background()

	t.Run("moves money between both accounts", func(t *testing.T) {
		uc, store := newATMFixture(t)

		tx, err := uc.Transfer(ctx, "12345678", "87654321", decimal.NewFromInt(20))
		require.NoError(t, err)
		assert.Equal(t, domain.KindTransferOut, tx.Kind)

		src, _ := store.Get("12345678")
		dst, _ := store.Get("87654321")
		assert.True(t, src.Balance.Equal(decimal.NewFromInt(80)))
		assert.True(t, dst.Balance.Equal(decimal.NewFromInt(20)))
		assert.Len(t, src.Log, 1)
		assert.Len(t, dst.Log, 1)
		assert.Equal(t, 1, store.SaveCalls)
	})

	t.Run("to self", func(t *testing.T) {
		uc, _ := newATMFixture(t)
		_, err := uc.Transfer(ctx, "12345678", "12345678", decimal.NewFromInt(10))
		assert.ErrorIs(t, err, domain.ErrSameAccount)
	})

	t.Run("unknown destination", func(t *testing.T) {
		uc, store := newATMFixture(t)
		_, err := uc.Transfer(ctx, "12345678", "00000000", decimal.NewFromInt(10))
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)

		src, _ := store.Get("12345678")
		assert.True(t, src.Balance.Equal(decimal.NewFromInt(100)), "failed transfer must not debit")
	})
}

func TestATMUseCase_ChangePIN(t *testing.T) {
	ctx := context.Background()

	t.Run("success persists", func(t *testing.T) {
		uc, store := newATMFixture(t)

		require.NoError(t, uc.ChangePIN(ctx, "12345678", "1234", "5678"))
		assert.Equal(t, 1, store.SaveCalls)

		acc, _ := store.Get("12345678")
		assert.Equal(t, "5678", acc.PIN)
	})

	t.Run("format rejection does not persist", func(t *testing.T) {
		uc, store := newATMFixture(t)

		err := uc.ChangePIN(ctx, "12345678", "1234", "567")
		assert.ErrorIs(t, err, domain.ErrPINFormat)
		assert.Zero(t, store.SaveCalls)
	})

	t.Run("lockout triggered here is persisted", func(t *testing.T) {
		uc, store := newATMFixture(t)

		_ = uc.ChangePIN(ctx, "12345678", "0000", "5678")
		_ = uc.ChangePIN(ctx, "12345678", "0000", "5678")
		err := uc.ChangePIN(ctx, "12345678", "0000", "5678")
		assert.ErrorIs(t, err, domain.ErrTooManyAttempts)
		assert.Equal(t, 1, store.SaveCalls)
	})
}

func TestATMUseCase_LastReceipt(t *testing.T) {
	ctx := context.Background()
	uc, _ := newATMFixture(t)

	_, err := uc.LastReceipt("12345678")
	assert.ErrorIs(t, err, domain.ErrNoTransactions)

	_, err = uc.Deposit(ctx, "12345678", decimal.NewFromInt(50))
	require.NoError(t, err)

	receipt, err := uc.LastReceipt("12345678")
	require.NoError(t, err)
	assert.Contains(t, receipt, "DEPOSIT")
	assert.Contains(t, receipt, "$50.00")
}
