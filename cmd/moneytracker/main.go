package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moneytracker/internal/amqp"
	"moneytracker/internal/backend"
	"moneytracker/internal/categories"
	"moneytracker/internal/cli"
	"moneytracker/internal/core"
	apphttp "moneytracker/internal/http"
	applog "moneytracker/internal/log"
	"moneytracker/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(applog.ComponentApp)
	cfg := cli.LoadAndValidateConfig(logger)

	factory := backend.NewFactory(logger.Logger)
	result, err := factory.CreateStore(backend.Config{
		Type:         backend.Type(cfg.DataBackend),
		LedgerPath:   cfg.LedgerPath,
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		logger.Error("Failed to initialize ledger store",
			applog.FieldError, err, applog.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer result.Cleanup()
	}

	// Event publishing is optional: without an AMQP URL the service runs
	// standalone.
	var publisher services.EventPublisher
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", applog.FieldError, err)
			os.Exit(1)
		}
		defer client.Close()
		publisher = client
		logger.Info("AMQP publisher initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		logger.Info("AMQP disabled - no AMQP_URL provided")
	}

	ledger, err := services.NewLedgerService(context.Background(), result.Store, publisher)
	if err != nil {
		logger.Error("Failed to load ledger", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Ledger loaded", applog.FieldCount, ledger.Len(), applog.FieldBackend, cfg.DataBackend)

	suggestions := categories.NewFromFiles(cfg.DataDir)

	srv := apphttp.NewServer(":"+cfg.Port, ledger, suggestions, apphttp.Options{
		BudgetLimit: core.Money{Cents: cfg.BudgetLimitCents},
		TaxRate:     cfg.TaxRate,
		Logger:      logger.WithComponent(applog.ComponentHTTP),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting moneytracker server", "port", cfg.Port, applog.FieldBackend, cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
