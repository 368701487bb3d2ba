package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"golang.org/x/sync/errgroup"

	"finai/internal/backend"
	"finai/internal/cache"
	"finai/internal/catalog"
	"finai/internal/cli"
	apphttp "finai/internal/http"
	"finai/internal/ledger"
	flog "finai/internal/log"
	"finai/internal/services"
	"finai/internal/session"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(flog.ComponentApp)
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, cancel := cli.SignalContext(logger)
	defer cancel()

	bcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", "error", err)
		os.Exit(1)
	}
	be, err := backend.NewFactory(logger.Logger).CreateBackend(ctx, bcfg)
	if err != nil {
		logger.Error("Failed to initialize backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	defer func() {
		if err := be.Cleanup(); err != nil {
			logger.Error("Backend cleanup failed", "error", err)
		}
	}()

	sessions, err := session.Open(ctx, be.Store)
	if err != nil {
		logger.Error("Failed to open session store", "error", err)
		os.Exit(1)
	}

	cat := catalog.Default()
	l := ledger.New(
		ledger.WithStore(be.Store),
		ledger.WithAuth(sessions),
		ledger.WithCatalog(cat),
	)
	if err := l.Load(ctx); err != nil {
		logger.Warn("Failed to load persisted ledger, starting from defaults", "error", err)
	}

	events := flog.NewStructuredLogger(logger)
	unsubscribe := l.Subscribe(func(ev ledger.Event) {
		id := ""
		switch {
		case ev.Expense != nil:
			id = ev.Expense.ID
		case ev.Investment != nil:
			id = ev.Investment.ID
		}
		events.LogLedgerEvent(context.Background(), string(ev.Kind), ev.Category, id, ev.Amount, ev.Savings)
	})
	defer unsubscribe()

	var forwarder *services.EventForwarder
	if be.Publisher != nil {
		forwarder = services.NewEventForwarder(be.Publisher, services.DefaultForwarderConfig())
		if err := forwarder.Start(ctx, l); err != nil {
			logger.Error("Failed to start event forwarder", "error", err)
			os.Exit(1)
		}
	}

	srv := apphttp.NewServer(":"+cfg.Port, apphttp.Options{
		Ledger:                  l,
		Sessions:                sessions,
		Catalog:                 cat,
		Logger:                  logger,
		RecommendationCacheSize: cfg.RecommendationCacheSize,
		RecommendationCacheTTL:  cfg.RecommendationCacheTTL,
	})
	caches := cache.NewManager(srv.RecommendationCache())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting finai server", "port", cfg.Port, "backend", cfg.DataBackend, "amqp_enabled", be.Publisher != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return caches.Run(gctx, cfg.CacheCleanupInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		if forwarder != nil {
			if err := forwarder.Stop(shutdownCtx); err != nil {
				logger.Warn("Event forwarder did not drain", "error", err)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
