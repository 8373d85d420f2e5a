package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"moneytracker/internal/amqp"
	"moneytracker/internal/cli"
	applog "moneytracker/internal/log"
	"moneytracker/internal/worker"
)

const summaryInterval = 1 * time.Minute

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(applog.ComponentWorker)
	cfg := cli.LoadAndValidateConfig(logger)

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", applog.FieldError, err)
		os.Exit(1)
	}
	defer client.Close()

	tally := worker.NewTallyWorker(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return client.ConsumeLedgerEvents(ctx, tally.HandleEvent)
	})

	g.Go(func() error {
		ticker := time.NewTicker(summaryInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				tally.LogSummary()
			}
		}
	})

	logger.Info("Starting ledger-worker", "queue", cfg.AMQPQueue)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", applog.FieldError, err)
		os.Exit(1)
	}

	tally.LogSummary()
	logger.Info("Worker stopped gracefully")
}
