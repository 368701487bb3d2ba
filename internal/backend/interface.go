package backend

import (
	"context"

	"finai/internal/services"
	"finai/internal/sheets"
	"finai/internal/storage"
)

type CleanupFunc func() error

// Result bundles what the API process needs to run the ledger.
// Publisher is nil when no AMQP URL is configured.
type Result struct {
	Store     storage.Store
	Publisher services.Publisher
	Cleanup   CleanupFunc
}

// ExporterResult bundles the report mirror used by the export worker.
type ExporterResult struct {
	Exporter sheets.Exporter
	Remote   bool
}

type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*Result, error)
	CreateExporter(ctx context.Context, config Config) (*ExporterResult, error)
}

type Config struct {
	Type BackendType

	SQLiteDBPath string

	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	GoogleSpreadsheetID    string
	GoogleExpensesSheet    string
	GoogleInvestmentsSheet string
}

type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

func (bt BackendType) String() string {
	return string(bt)
}

func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
