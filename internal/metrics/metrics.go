package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/GlebRadaev/ledger/internal/domain"
)

// Metrics keeps ledger counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	records        *prometheus.CounterVec
	accounts       prometheus.Gauge
	lockedAccounts prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		records: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_records_total",
				Help: "Total number of input records by transaction type and outcome",
			},
			[]string{"type", "outcome"},
		),
		accounts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_accounts",
			Help: "Number of client accounts in the final ledger",
		}),
		lockedAccounts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_locked_accounts",
			Help: "Number of client accounts locked by a chargeback",
		}),
	}
	m.registry.MustRegister(m.records, m.accounts, m.lockedAccounts)
	return m
}

// ObserveRecord is safe for concurrent use by partition workers.
func (m *Metrics) ObserveRecord(kind domain.TransactionType, outcome domain.Outcome) {
	m.records.WithLabelValues(kind.String(), outcome.String()).Inc()
}

func (m *Metrics) ObserveBalances(balances []domain.Balance) {
	var locked int
	for _, b := range balances {
		if b.Locked {
			locked++
		}
	}
	m.accounts.Set(float64(len(balances)))
	m.lockedAccounts.Set(float64(locked))
}

// WriteToFile dumps the registry in the text exposition format, for node_exporter's textfile collector.
func (m *Metrics) WriteToFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
