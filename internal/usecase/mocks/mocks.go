// Package mocks provides hand-rolled test doubles for the usecase
// ports. The default behavior is a working in-memory ledger; individual
// calls can be overridden through the *Func fields.
package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/iho/gobank/internal/domain"
)

// MockLedgerStore is a mock implementation of usecase.LedgerStore.
type MockLedgerStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	SaveCalls int

	GetFunc    func(number string) (*domain.Account, error)
	SaveFunc   func(ctx context.Context) error
	ExistsFunc func(number string) bool
}

func NewMockLedgerStore() *MockLedgerStore {
	return &MockLedgerStore{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *MockLedgerStore) Get(number string) (*domain.Account, error) {
	if m.GetFunc != nil {
		return m.GetFunc(number)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[number]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockLedgerStore) Put(accounts ...*domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, account := range accounts {
		m.accounts[account.Number] = account
	}
}

func (m *MockLedgerStore) Delete(number string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.accounts, number)
}

func (m *MockLedgerStore) Exists(number string) bool {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(number)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.accounts[number]
	return ok
}

func (m *MockLedgerStore) List() []*domain.Account {
	m.mu.RLock()
	defer m.mu.RUnlock()
	accounts := make([]*domain.Account, 0, len(m.accounts))
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Number < accounts[j].Number
	})
	return accounts
}

func (m *MockLedgerStore) Save(ctx context.Context) error {
	m.mu.Lock()
	m.SaveCalls++
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx)
	}
	return nil
}

// MockIDGenerator is a mock implementation of usecase.IDGenerator
// producing a deterministic sequence.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("tx-%04d", m.next)
}

// MockNumberGenerator is a mock implementation of
// usecase.NumberGenerator producing a deterministic sequence.
type MockNumberGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockNumberGenerator() *MockNumberGenerator {
	return &MockNumberGenerator{}
}

func (m *MockNumberGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("%08d", m.next)
}
