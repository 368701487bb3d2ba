package ledger

import (
	"sort"
	"time"

	"finai/internal/core"
)

type EventKind string

const (
	EventIncomeSet          EventKind = "income_set"
	EventExpenseRecorded    EventKind = "expense_recorded"
	EventLimitAdjusted      EventKind = "limit_adjusted"
	EventCategoryQuickAdd   EventKind = "category_quick_add"
	EventInvestmentRecorded EventKind = "investment_recorded"
)

// Event describes one successful mutation. It is delivered after all derived
// fields have been updated and the ledger lock released.
type Event struct {
	Kind       EventKind
	At         time.Time
	Category   string
	Amount     float64
	Expense    *core.Expense
	Investment *core.Investment
	Savings    float64
}

type subscribers struct {
	next int
	fns  map[int]func(Event)
}

func (s *subscribers) add(fn func(Event)) int {
	if s.fns == nil {
		s.fns = make(map[int]func(Event))
	}
	s.next++
	s.fns[s.next] = fn
	return s.next
}

func (s *subscribers) snapshot() []func(Event) {
	ids := make([]int, 0, len(s.fns))
	for id := range s.fns {
		ids = append(ids, id)
	}
	// Deliver in subscription order.
	sort.Ints(ids)
	out := make([]func(Event), len(ids))
	for i, id := range ids {
		out[i] = s.fns[id]
	}
	return out
}
