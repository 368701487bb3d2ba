package memory

import (
	"context"
	"fmt"
	"sync"

	"finai/internal/sheets"
)

// Store keeps exported rows in memory. It backs the worker when no
// spreadsheet is configured and doubles as a test double.
type Store struct {
	mu          sync.Mutex
	expenses    []sheets.ExpenseRow
	investments []sheets.InvestmentRow
}

var _ sheets.Exporter = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (s *Store) AppendExpense(_ context.Context, r sheets.ExpenseRow) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, r)
	return fmt.Sprintf("mem:expenses:%d", len(s.expenses)), nil
}

func (s *Store) AppendInvestment(_ context.Context, r sheets.InvestmentRow) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.investments = append(s.investments, r)
	return fmt.Sprintf("mem:investments:%d", len(s.investments)), nil
}

func (s *Store) Expenses() []sheets.ExpenseRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sheets.ExpenseRow(nil), s.expenses...)
}

func (s *Store) Investments() []sheets.InvestmentRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sheets.InvestmentRow(nil), s.investments...)
}
