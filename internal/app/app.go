package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ledger/internal/config"
	"github.com/GlebRadaev/ledger/internal/csvio"
	"github.com/GlebRadaev/ledger/internal/engine"
	"github.com/GlebRadaev/ledger/internal/metrics"
	"github.com/GlebRadaev/ledger/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	out     io.Writer
	engine  *engine.Engine
	metrics *metrics.Metrics

	errCh chan error
	done  chan struct{}
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		out:   os.Stdout,
		errCh: make(chan error),
		done:  make(chan struct{}),
	}
}

// Start validates the input file and begins processing it in the background.
func (a *Application) Start(ctx context.Context) error {
	if a.cfg == nil {
		a.cfg = config.New()
	}

	err := logger.InitLogger(a.cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	if err := a.cfg.ValidateInput(); err != nil {
		return err
	}
	file, err := os.Open(a.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("can't open input file: %w", err)
	}

	a.metrics = metrics.New()
	a.engine = engine.New(a.cfg.Workers, a.metrics)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		defer close(a.done)
		if err := a.process(ctx, file); err != nil {
			a.errCh <- err
		}
	}()

	a.ready = true
	zap.L().Info("processing started",
		zap.String("input", a.cfg.InputPath),
		zap.Int("workers", a.cfg.Workers),
	)
	return nil
}

func (a *Application) process(ctx context.Context, file *os.File) error {
	defer file.Close()

	balances, err := a.engine.Run(ctx, csvio.NewReader(bufio.NewReader(file)))
	if err != nil {
		return fmt.Errorf("can't process %s: %w", a.cfg.InputPath, err)
	}

	a.metrics.ObserveBalances(balances)
	if err := csvio.WriteBalances(a.out, balances); err != nil {
		return fmt.Errorf("can't write accounts: %w", err)
	}

	if a.cfg.MetricsFile != "" {
		if err := a.metrics.WriteToFile(a.cfg.MetricsFile); err != nil {
			return err
		}
	}
	return nil
}

// Wait blocks until processing finishes or ctx is cancelled and returns the last error reported.
func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	select {
	case <-ctx.Done():
	case <-a.done:
	}
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
