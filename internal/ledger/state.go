package ledger

import (
	"slices"

	"finai/internal/core"
)

// State is the full finance record. Savings is derived and kept only as a
// denormalized copy for readers of the persisted form.
type State struct {
	Income      float64           `json:"income"`
	Expenses    []core.Expense    `json:"expenses"`
	Categories  []core.Category   `json:"categories"`
	Investments []core.Investment `json:"investments"`
	Savings     float64           `json:"savings"`
}

type Totals struct {
	Budget        float64 `json:"totalBudget"`
	Spent         float64 `json:"totalSpent"`
	Remaining     float64 `json:"remaining"`
	BudgetUsedPct float64 `json:"budgetUsedPercentage"`
}

func (s *State) recompute() {
	for i := range s.Categories {
		s.Categories[i].Recompute()
	}
	s.Savings = s.derivedSavings()
}

func (s *State) derivedSavings() float64 {
	savings := s.Income
	for _, c := range s.Categories {
		savings -= c.Amount
	}
	for _, inv := range s.Investments {
		if inv.FundedFromSavings {
			savings -= inv.Amount
		}
	}
	return savings
}

func (s *State) categoryIndex(name string) int {
	for i, c := range s.Categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func (s State) clone() State {
	return State{
		Income:      s.Income,
		Expenses:    slices.Clone(s.Expenses),
		Categories:  slices.Clone(s.Categories),
		Investments: slices.Clone(s.Investments),
		Savings:     s.Savings,
	}
}

// Category returns the named category.
func (s State) Category(name string) (core.Category, bool) {
	if i := s.categoryIndex(name); i >= 0 {
		return s.Categories[i], true
	}
	return core.Category{}, false
}

func (s State) Totals() Totals {
	var t Totals
	for _, c := range s.Categories {
		t.Budget += c.Limit
		t.Spent += c.Amount
	}
	t.Remaining = t.Budget - t.Spent
	if t.Budget > 0 {
		t.BudgetUsedPct = t.Spent / t.Budget * 100
	}
	return t
}

// ExpensesFor returns the logged expenses of one category in log order.
func (s State) ExpensesFor(category string) []core.Expense {
	var out []core.Expense
	for _, e := range s.Expenses {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}
