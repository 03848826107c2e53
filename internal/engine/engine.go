package engine

import (
	"context"
	"errors"
	"io"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/ledger/internal/domain"
	"github.com/GlebRadaev/ledger/internal/service/ledgerservice"
)

const partitionBuffer = 256

// Source yields decoded records in input order and io.EOF at the end.
type Source interface {
	Next() (domain.Record, error)
}

// Engine feeds every record of a source into the ledger and returns the final balances.
// With more than one worker, records are partitioned by client id; each client's records stay
// on one partition in arrival order.
type Engine struct {
	workers int
	metrics ledgerservice.Metrics
}

func New(workers int, metrics ledgerservice.Metrics) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{
		workers: workers,
		metrics: metrics,
	}
}

// Run stops at the first decode error or rejected record and returns it.
func (e *Engine) Run(ctx context.Context, src Source) ([]domain.Balance, error) {
	if e.workers == 1 {
		return e.runSequential(ctx, src)
	}
	return e.runPartitioned(ctx, src)
}

func (e *Engine) runSequential(ctx context.Context, src Source) ([]domain.Balance, error) {
	ledger := newLedger(e.metrics)

	var processed int
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := ledger.Apply(record); err != nil {
			return nil, err
		}
		processed++
	}

	balances := ledger.Balances()
	zap.L().Info("ledger processed", zap.Int("records", processed), zap.Int("accounts", len(balances)))
	return balances, nil
}

func (e *Engine) runPartitioned(ctx context.Context, src Source) ([]domain.Balance, error) {
	g, gctx := errgroup.WithContext(ctx)

	partitions := make([]*partition, e.workers)
	for i := range partitions {
		p := newPartition(partitionBuffer, newLedger(e.metrics))
		partitions[i] = p
		g.Go(func() error {
			return p.run(gctx)
		})
	}

	var processed int
	g.Go(func() error {
		defer func() {
			for _, p := range partitions {
				p.Close()
			}
		}()
		for {
			record, err := src.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			p := partitions[int(record.Client)%len(partitions)]
			if err := p.Add(gctx, record); err != nil {
				return err
			}
			processed++
		}
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var balances []domain.Balance
	for _, p := range partitions {
		balances = append(balances, p.ledger.Balances()...)
	}
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].Client < balances[j].Client
	})

	zap.L().Info("ledger processed",
		zap.Int("records", processed),
		zap.Int("accounts", len(balances)),
		zap.Int("partitions", len(partitions)),
	)
	return balances, nil
}
