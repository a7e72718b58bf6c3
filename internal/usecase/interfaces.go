package usecase

import (
	"context"

	"github.com/iho/gobank/internal/domain"
)

// LedgerStore is the sole owner of all accounts, addressed by account
// number. Accounts returned by Get and List are immutable: a writer
// clones the account, applies the change to the clone and installs it
// with Put. Put is atomic with respect to Save's snapshot, a multi-
// account Put (transfer) lands as a unit. Save writes the entire ledger
// to the durable representation.
type LedgerStore interface {
	Get(number string) (*domain.Account, error)
	Put(accounts ...*domain.Account)
	Delete(number string)
	Exists(number string) bool
	List() []*domain.Account
	Save(ctx context.Context) error
}

// IDGenerator generates unique transaction record IDs.
type IDGenerator interface {
	Generate() string
}

// NumberGenerator produces candidate account numbers. Uniqueness is the
// caller's problem: candidates are checked against the ledger and
// regenerated on collision.
type NumberGenerator interface {
	Generate() string
}
