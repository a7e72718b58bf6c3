package usecase

import (
	"sort"
	"sync"
)

// AccountLocks serializes mutating operations per account number.
// Locks are acquired in sorted number order so that two transfers
// crossing each other cannot deadlock.
type AccountLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewAccountLocks creates an empty lock table.
func NewAccountLocks() *AccountLocks {
	return &AccountLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *AccountLocks) get(number string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[number]
	if !ok {
		m = &sync.Mutex{}
		l.locks[number] = m
	}
	return m
}

// Lock acquires the mutex for every given account number and returns a
// release function. Duplicate numbers are collapsed.
func (l *AccountLocks) Lock(numbers ...string) func() {
	unique := make([]string, 0, len(numbers))
	seen := make(map[string]bool, len(numbers))
	for _, n := range numbers {
		if !seen[n] {
			seen[n] = true
			unique = append(unique, n)
		}
	}
	sort.Strings(unique)

	held := make([]*sync.Mutex, 0, len(unique))
	for _, n := range unique {
		m := l.get(n)
		m.Lock()
		held = append(held, m)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

// Forget drops the entry for an account that no longer exists, keeping
// the table bounded by the set of live accounts. A goroutine already
// waiting on the old mutex still proceeds; it will find the account
// gone.
func (l *AccountLocks) Forget(number string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.locks, number)
}
