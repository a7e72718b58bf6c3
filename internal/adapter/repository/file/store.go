package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/domain"
)

// Save retry tuning.
const (
	saveInitialInterval = 50 * time.Millisecond
	saveMaxInterval     = 1 * time.Second
	saveMaxElapsedTime  = 5 * time.Second
)

// Store keeps the whole ledger in memory and mirrors it to a single
// JSON file. Every Save rewrites the complete file: the snapshot is
// written to a temporary file first and renamed over the old one, so a
// crash mid-write leaves the previous ledger intact.
//
// Stored accounts are treated as immutable. Writers clone an account,
// mutate the clone and install it with Put; a transfer installs both
// sides in one Put. Save and concurrent readers therefore only ever see
// complete states under the map lock.
type Store struct {
	mu       sync.RWMutex
	saveMu   sync.Mutex
	path     string
	logger   zerolog.Logger
	accounts map[string]*domain.Account
}

// NewStore creates a store backed by the JSON file at path. Call Load
// before use.
func NewStore(path string, logger zerolog.Logger) *Store {
	return &Store{
		path:     path,
		logger:   logger,
		accounts: make(map[string]*domain.Account),
	}
}

// Load reads the durable representation. A missing file is not an
// error: the ledger starts empty. A malformed file is.
func (s *Store) Load(_ context.Context) error {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info().Str("path", s.path).Msg("no ledger file, starting empty")
		return nil
	}
	if err != nil {
		return fmt.Errorf("open ledger file: %w", err)
	}
	defer f.Close()

	var persisted map[string]persistedAccount
	if err := json.NewDecoder(f).Decode(&persisted); err != nil {
		return fmt.Errorf("decode ledger file %s: %w", s.path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = make(map[string]*domain.Account, len(persisted))
	for number, p := range persisted {
		s.accounts[number] = toDomain(number, p)
	}

	s.logger.Info().Int("accounts", len(s.accounts)).Str("path", s.path).Msg("ledger loaded")
	return nil
}

// Save serializes every account and atomically replaces the file.
// Transient write failures are retried with exponential backoff;
// exhausted retries surface as an error so callers never continue with
// an inconsistent in-memory-vs-disk state silently.
func (s *Store) Save(ctx context.Context) error {
	// One save at a time: concurrent savers must not share the temp
	// file, and an older snapshot must not be renamed over a newer one.
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	data, err := s.snapshot()
	if err != nil {
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = saveInitialInterval
	b.MaxInterval = saveMaxInterval
	b.MaxElapsedTime = saveMaxElapsedTime

	attempt := 0
	err = backoff.Retry(func() error {
		if writeErr := s.writeAtomic(data); writeErr != nil {
			attempt++
			s.logger.Warn().Err(writeErr).Int("attempt", attempt).Msg("ledger write failed, retrying")
			return writeErr
		}
		return nil
	}, backoff.WithContext(b, ctx))
	if err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}

	return nil
}

func (s *Store) snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	persisted := make(map[string]persistedAccount, len(s.accounts))
	for number, account := range s.accounts {
		persisted[number] = toPersisted(account)
	}

	data, err := json.MarshalIndent(persisted, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode ledger: %w", err)
	}
	return data, nil
}

func (s *Store) writeAtomic(data []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Get returns the account with the given number.
func (s *Store) Get(number string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// Put adds or replaces accounts. All entries are installed under one
// lock acquisition, so a snapshot sees either none or all of them.
func (s *Store) Put(accounts ...*domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, account := range accounts {
		s.accounts[account.Number] = account
	}
}

// Delete removes an account from the ledger.
func (s *Store) Delete(number string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.accounts, number)
}

// Exists reports whether an account number is taken.
func (s *Store) Exists(number string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.accounts[number]
	return ok
}

// List returns every account, ordered by number for stable output.
func (s *Store) List() []*domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Number < accounts[j].Number
	})
	return accounts
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return filepath.Clean(s.path)
}
