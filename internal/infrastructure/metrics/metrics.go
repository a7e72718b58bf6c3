package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the business-level Prometheus metrics. HTTP-level
// metrics live in the adapter middleware.
type Metrics struct {
	AccountsOpened   prometheus.Counter
	AccountsClosed   prometheus.Counter
	AccountsUnlocked prometheus.Counter

	Deposits    prometheus.Counter
	Withdrawals prometheus.Counter
	Transfers   prometheus.Counter

	AuthAttempts *prometheus.CounterVec
	AuthFailures *prometheus.CounterVec
	Lockouts     prometheus.Counter
}

// New creates all business metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AccountsOpened: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_accounts_opened_total",
			Help: "Total number of accounts opened",
		}),
		AccountsClosed: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_accounts_closed_total",
			Help: "Total number of accounts closed",
		}),
		AccountsUnlocked: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_accounts_unlocked_total",
			Help: "Total number of administrative unlocks",
		}),
		Deposits: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_deposits_total",
			Help: "Total number of successful deposits",
		}),
		Withdrawals: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_withdrawals_total",
			Help: "Total number of successful withdrawals",
		}),
		Transfers: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_transfers_total",
			Help: "Total number of successful transfers",
		}),
		AuthAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_auth_attempts_total",
				Help: "Total authentication attempts by principal kind",
			},
			[]string{"kind"},
		),
		AuthFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_auth_failures_total",
				Help: "Total authentication failures by principal kind",
			},
			[]string{"kind"},
		),
		Lockouts: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_lockouts_total",
			Help: "Total number of accounts locked by failed credential checks",
		}),
	}
}
