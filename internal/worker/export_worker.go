// Package worker mirrors ledger events from the broker into the spreadsheet
// report.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finai/internal/amqp"
	"finai/internal/cache"
	"finai/internal/sheets"
)

const (
	seenCacheSize = 4096
	seenCacheTTL  = 24 * time.Hour
)

// ExportWorker appends one report row per recorded expense or investment.
// Redelivered messages whose id was already exported are acknowledged
// without writing a second row.
type ExportWorker struct {
	expenses    sheets.ExpenseRowWriter
	investments sheets.InvestmentRowWriter
	seen        *cache.LRUCache[string]
}

func NewExportWorker(exporter sheets.Exporter) *ExportWorker {
	return &ExportWorker{
		expenses:    exporter,
		investments: exporter,
		seen:        cache.NewLRUCache[string](seenCacheSize, seenCacheTTL),
	}
}

// Seen exposes the dedupe cache so the caller can register it for sweeping.
func (w *ExportWorker) Seen() *cache.LRUCache[string] {
	return w.seen
}

// HandleLedgerEvent processes a single ledger event from AMQP.
func (w *ExportWorker) HandleLedgerEvent(ctx context.Context, msg *amqp.LedgerEventMessage) error {
	switch msg.Kind {
	case amqp.KindExpenseRecorded:
		return w.export(ctx, msg, func() (string, error) {
			return w.expenses.AppendExpense(ctx, sheets.ExpenseRow{
				ID:          msg.ID,
				Date:        msg.Date,
				Category:    msg.Category,
				Description: msg.Description,
				Amount:      msg.Amount,
			})
		})
	case amqp.KindInvestmentRecorded:
		return w.export(ctx, msg, func() (string, error) {
			return w.investments.AppendInvestment(ctx, sheets.InvestmentRow{
				ID:         msg.ID,
				Date:       msg.Date,
				Name:       msg.Name,
				Tier:       msg.Tier,
				Amount:     msg.Amount,
				ReturnRate: msg.ReturnRate,
			})
		})
	default:
		slog.DebugContext(ctx, "Ledger event not exported", "kind", msg.Kind)
		return nil
	}
}

func (w *ExportWorker) export(ctx context.Context, msg *amqp.LedgerEventMessage, write func() (string, error)) error {
	if ref, ok := w.seen.Get(msg.ID); ok {
		slog.InfoContext(ctx, "Skipping already exported event", "kind", msg.Kind, "id", msg.ID, "sheets_ref", ref)
		return nil
	}

	ref, err := write()
	if err != nil {
		return fmt.Errorf("export %s %s: %w", msg.Kind, msg.ID, err)
	}
	w.seen.Set(msg.ID, ref)

	slog.InfoContext(ctx, "Exported ledger event",
		"kind", msg.Kind,
		"id", msg.ID,
		"sheets_ref", ref,
		"amount", msg.Amount)
	return nil
}
