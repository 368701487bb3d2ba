package backend

import (
	"context"
	"fmt"
	"log/slog"

	"finai/internal/amqp"
	"finai/internal/sheets"
	gsheet "finai/internal/sheets/google"
	"finai/internal/sheets/memory"
	"finai/internal/storage"
)

type DefaultFactory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateBackend opens the key-value store and, when configured, the AMQP
// publisher. A broker that cannot be reached is logged and skipped.
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var (
		store storage.Store
		err   error
	)
	switch config.Type {
	case SQLiteBackend:
		store, err = storage.NewSQLiteStore(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
		}
		f.logger.InfoContext(ctx, "Initialized SQLite backend", "db_path", config.SQLiteDBPath)
	case MemoryBackend:
		store = storage.NewMemoryStore()
		f.logger.InfoContext(ctx, "Initialized memory backend")
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}

	res := &Result{Store: store, Cleanup: store.Close}

	if config.AMQPURL == "" {
		return res, nil
	}
	client, err := amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
	if err != nil {
		f.logger.WarnContext(ctx, "Failed to initialize AMQP client, continuing without event publishing", "error", err)
		return res, nil
	}
	f.logger.InfoContext(ctx, "Initialized AMQP client", "exchange", config.AMQPExchange, "queue", config.AMQPQueue)

	res.Publisher = client
	res.Cleanup = func() error {
		cerr := client.Close()
		if err := store.Close(); err != nil {
			return err
		}
		return cerr
	}
	return res, nil
}

// CreateExporter returns the Google Sheets report mirror when a spreadsheet
// is configured, otherwise an in-memory one.
func (f *DefaultFactory) CreateExporter(ctx context.Context, config Config) (*ExporterResult, error) {
	if config.GoogleSpreadsheetID == "" {
		f.logger.WarnContext(ctx, "No spreadsheet configured, exporting to memory")
		return &ExporterResult{Exporter: memory.New()}, nil
	}

	cli, err := gsheet.New(ctx, gsheet.Options{
		SpreadsheetID:    config.GoogleSpreadsheetID,
		ExpensesSheet:    config.GoogleExpensesSheet,
		InvestmentsSheet: config.GoogleInvestmentsSheet,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google Sheets client: %w", err)
	}
	f.logger.InfoContext(ctx, "Initialized Google Sheets exporter", "spreadsheet_id", config.GoogleSpreadsheetID)

	var exp sheets.Exporter = cli
	return &ExporterResult{Exporter: exp, Remote: true}, nil
}
