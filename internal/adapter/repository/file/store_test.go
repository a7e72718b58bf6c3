package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobank/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "accounts.json"), zerolog.Nop())
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Load(context.Background()))
	assert.Empty(t, store.List())
}

func TestStoreLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewStore(path, zerolog.Nop())
	assert.Error(t, store.Load(context.Background()))
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	account := domain.NewAccount("12345678", "Ada", "1234", now)
	_, err := account.Deposit("tx-0001", decimal.NewFromInt(100), now)
	require.NoError(t, err)
	_, err = account.Withdraw("tx-0002", decimal.NewFromInt(25), now.Add(time.Minute))
	require.NoError(t, err)
	account.PINAttempts = 2

	locked := domain.NewAccount("87654321", "Grace", "4321", now)
	locked.Locked = true
	locked.Active = false

	store := newTestStore(t)
	require.NoError(t, store.Load(ctx))
	store.Put(account)
	store.Put(locked)
	require.NoError(t, store.Save(ctx))

	reloaded := NewStore(store.Path(), zerolog.Nop())
	require.NoError(t, reloaded.Load(ctx))

	got, err := reloaded.Get("12345678")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "1234", got.PIN)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, 2, got.PINAttempts)
	assert.False(t, got.Locked)
	assert.True(t, got.Active)

	require.Len(t, got.Log, 2)
	assert.Equal(t, "tx-0001", got.Log[0].ID)
	assert.Equal(t, domain.KindDeposit, got.Log[0].Kind)
	assert.True(t, got.Log[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, got.Log[0].CreatedAt.Equal(now))
	assert.Equal(t, domain.KindWithdrawal, got.Log[1].Kind)
	assert.True(t, got.Log[1].BalanceAfter.Equal(decimal.NewFromInt(75)))

	frozen, err := reloaded.Get("87654321")
	require.NoError(t, err)
	assert.True(t, frozen.Locked)
	assert.False(t, frozen.Active)
}

// Files written before the lockout and soft-delete fields existed carry
// only pin, balance and transaction_history. They must load as active,
// unlocked accounts with a clean attempt counter.
func TestStoreLoadLegacyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	legacy := `{
  "11112222": {
    "pin": "1234",
    "balance": "50",
    "transaction_history": [
      {"type": "deposit", "amount": "50", "date": "2024-03-01T09:00:00Z", "balance_after": "50"}
    ]
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	store := NewStore(path, zerolog.Nop())
	require.NoError(t, store.Load(context.Background()))

	account, err := store.Get("11112222")
	require.NoError(t, err)
	assert.True(t, account.Active)
	assert.False(t, account.Locked)
	assert.Zero(t, account.PINAttempts)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(50)))
	require.Len(t, account.Log, 1)
	assert.Equal(t, domain.KindDeposit, account.Log[0].Kind)
}

func TestStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	store := newTestStore(t)
	require.NoError(t, store.Load(ctx))

	store.Put(domain.NewAccount("12345678", "Ada", "1234", now))
	require.NoError(t, store.Save(ctx))

	store.Delete("12345678")
	store.Put(domain.NewAccount("87654321", "Grace", "4321", now))
	require.NoError(t, store.Save(ctx))

	reloaded := NewStore(store.Path(), zerolog.Nop())
	require.NoError(t, reloaded.Load(ctx))
	assert.False(t, reloaded.Exists("12345678"))
	assert.True(t, reloaded.Exists("87654321"))

	// No temporary file may survive a successful save.
	_, err := os.Stat(store.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestStoreSaveErrorSurfaces(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore(filepath.Join(t.TempDir(), "missing", "accounts.json"), zerolog.Nop())
	store.Put(domain.NewAccount("12345678", "Ada", "1234", time.Now()))

	err := store.Save(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist ledger")
}

func TestStorePutSeveral(t *testing.T) {
	now := time.Now()
	store := newTestStore(t)

	store.Put(
		domain.NewAccount("11111111", "Ada", "1234", now),
		domain.NewAccount("22222222", "Grace", "4321", now),
	)

	assert.True(t, store.Exists("11111111"))
	assert.True(t, store.Exists("22222222"))
}

func TestStoreGetUnknown(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Get("00000000")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestStoreListSorted(t *testing.T) {
	now := time.Now()
	store := newTestStore(t)
	store.Put(domain.NewAccount("30000000", "c", "1234", now))
	store.Put(domain.NewAccount("10000000", "a", "1234", now))
	store.Put(domain.NewAccount("20000000", "b", "1234", now))

	accounts := store.List()
	require.Len(t, accounts, 3)
	assert.Equal(t, "10000000", accounts[0].Number)
	assert.Equal(t, "20000000", accounts[1].Number)
	assert.Equal(t, "30000000", accounts[2].Number)
}
