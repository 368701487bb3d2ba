package amqp

import (
	"encoding/json"
	"time"
)

// Event kinds carried on the ledger_events queue. They mirror the ledger's
// mutation kinds.
const (
	KindIncomeSet          = "income_set"
	KindExpenseRecorded    = "expense_recorded"
	KindLimitAdjusted      = "limit_adjusted"
	KindCategoryQuickAdd   = "category_quick_add"
	KindInvestmentRecorded = "investment_recorded"
)

// LedgerEventMessage is a self-contained description of one ledger change.
// Consumers never read the ledger back, so rows are built from this alone.
type LedgerEventMessage struct {
	Kind        string    `json:"kind"`
	ID          string    `json:"id,omitempty"`
	Category    string    `json:"category,omitempty"`
	Amount      float64   `json:"amount"`
	Tier        string    `json:"tier,omitempty"`
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date,omitempty"`
	ReturnRate  float64   `json:"returnRate,omitempty"`
	Savings     float64   `json:"savings"`
	Timestamp   time.Time `json:"timestamp"`
}

func (m *LedgerEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func LedgerEventMessageFromJSON(data []byte) (*LedgerEventMessage, error) {
	var msg LedgerEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
