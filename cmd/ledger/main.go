package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ledger/internal/app"
	"github.com/GlebRadaev/ledger/pkg/logger"
)

// Usage: ledger [-l level] [-w workers] [-m metrics.prom] transactions.csv > accounts.csv
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	defer logger.Sync()

	app := app.New()
	err := app.Start(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Can't start application")
		zap.L().Fatal("Can't start application: ", zap.Error(err))
	}

	err = app.Wait(ctx, cancel)
	if err != nil {
		zap.L().Fatal("Processing finished with errors. LastError:", zap.Error(err))
	}

	zap.L().Debug("Processing finished without errors")
}
