package ledger

import (
	"encoding/json"

	"finai/internal/core"
)

// record is the persisted form. Absent fields fall back to the defaults;
// the stored savings value is ignored and recomputed.
type record struct {
	Income      *float64          `json:"income"`
	Expenses    []core.Expense    `json:"expenses"`
	Categories  []core.Category   `json:"categories"`
	Investments []core.Investment `json:"investments"`
	Savings     *float64          `json:"savings"`
}

func decodeRecord(raw []byte) (State, error) {
	var r record
	if err := json.Unmarshal(raw, &r); err != nil {
		return State{}, err
	}

	st := DefaultState()
	if r.Income != nil && core.ValidateNonNegative(*r.Income) == nil {
		st.Income = *r.Income
	}
	if r.Expenses != nil {
		st.Expenses = r.Expenses
	}
	if len(r.Categories) > 0 {
		st.Categories = r.Categories
	}
	if r.Investments != nil {
		st.Investments = r.Investments
	}
	st.recompute()
	return st, nil
}
