package engine

import (
	"context"

	"github.com/GlebRadaev/ledger/internal/domain"
	"github.com/GlebRadaev/ledger/internal/service/ledgerservice"
)

type Ledger interface {
	Apply(record domain.Record) error
	Balances() []domain.Balance
}

// partition owns one ledger and applies the records routed to it in arrival order.
type partition struct {
	records chan domain.Record
	ledger  Ledger
}

func newPartition(size int, ledger Ledger) *partition {
	return &partition{
		records: make(chan domain.Record, size),
		ledger:  ledger,
	}
}

func (p *partition) run(ctx context.Context) error {
	for record := range p.records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.ledger.Apply(record); err != nil {
			return err
		}
	}
	return nil
}

func (p *partition) Add(ctx context.Context, record domain.Record) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.records <- record:
		return nil
	}
}

func (p *partition) Close() {
	close(p.records)
}

func newLedger(metrics ledgerservice.Metrics) Ledger {
	return ledgerservice.New(metrics)
}
