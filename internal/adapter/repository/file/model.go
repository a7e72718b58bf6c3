package file

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// persistedTransaction is the durable shape of one log entry.
type persistedTransaction struct {
	ID           string          `json:"id,omitempty"`
	Kind         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	FromAccount  string          `json:"from_account,omitempty"`
	ToAccount    string          `json:"to_account,omitempty"`
}

// persistedAccount is the durable shape of one account. Active is a
// pointer so that older files without the key load as active, while
// missing pin_attempts/locked keys default to zero/false.
type persistedAccount struct {
	Name        string                 `json:"name,omitempty"`
	PIN         string                 `json:"pin"`
	Balance     decimal.Decimal        `json:"balance"`
	History     []persistedTransaction `json:"transaction_history"`
	Active      *bool                  `json:"is_active,omitempty"`
	PINAttempts int                    `json:"pin_attempts"`
	Locked      bool                   `json:"locked"`
}

func toPersisted(a *domain.Account) persistedAccount {
	history := make([]persistedTransaction, len(a.Log))
	for i, tx := range a.Log {
		history[i] = persistedTransaction{
			ID:           tx.ID,
			Kind:         string(tx.Kind),
			Amount:       tx.Amount,
			Date:         tx.CreatedAt,
			BalanceAfter: tx.BalanceAfter,
			FromAccount:  tx.FromAccount,
			ToAccount:    tx.ToAccount,
		}
	}

	active := a.Active
	return persistedAccount{
		Name:        a.Name,
		PIN:         a.PIN,
		Balance:     a.Balance,
		History:     history,
		Active:      &active,
		PINAttempts: a.PINAttempts,
		Locked:      a.Locked,
	}
}

func toDomain(number string, p persistedAccount) *domain.Account {
	log := make([]*domain.Transaction, len(p.History))
	for i, tx := range p.History {
		log[i] = &domain.Transaction{
			CreatedAt:    tx.Date,
			ID:           tx.ID,
			Kind:         domain.TransactionKind(tx.Kind),
			FromAccount:  tx.FromAccount,
			ToAccount:    tx.ToAccount,
			Amount:       tx.Amount,
			BalanceAfter: tx.BalanceAfter,
		}
	}

	active := true
	if p.Active != nil {
		active = *p.Active
	}

	return &domain.Account{
		Number:      number,
		Name:        p.Name,
		PIN:         p.PIN,
		Balance:     p.Balance,
		Log:         log,
		Active:      active,
		Locked:      p.Locked,
		PINAttempts: p.PINAttempts,
	}
}
