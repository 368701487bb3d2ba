package main

import (
	"context"
	"errors"
	"os"

	"golang.org/x/sync/errgroup"

	"finai/internal/amqp"
	"finai/internal/backend"
	"finai/internal/cache"
	"finai/internal/cli"
	"finai/internal/config"
	flog "finai/internal/log"
	"finai/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(flog.ComponentWorker)
	logger.Info("Starting finai-worker")

	cfg := cli.LoadAndValidateConfig(logger, (*config.Config).ValidateWorker)

	ctx, cancel := cli.SignalContext(logger)
	defer cancel()

	bcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", "error", err)
		os.Exit(1)
	}
	exp, err := backend.NewFactory(logger.Logger).CreateExporter(ctx, bcfg)
	if err != nil {
		logger.Error("Failed to initialize exporter", "error", err)
		os.Exit(1)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	w := worker.NewExportWorker(exp.Exporter)
	caches := cache.NewManager(w.Seen())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Consuming ledger events", "queue", cfg.AMQPQueue, "remote_export", exp.Remote)
		err := amqpClient.ConsumeLedgerEvents(gctx, w.HandleLedgerEvent)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		return caches.Run(gctx, cfg.CacheCleanupInterval)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
