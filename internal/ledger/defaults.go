package ledger

import "finai/internal/core"

// StorageKey is the namespace key of the persisted finance record.
const StorageKey = "finai-finance"

const defaultIncome = 80000

func defaultCategories() []core.Category {
	cs := []core.Category{
		{Name: "Housing", Icon: "Home", Color: "bg-finance-400", Amount: 18000, Limit: 25000},
		{Name: "Food", Icon: "Utensils", Color: "bg-finance-500", Amount: 8000, Limit: 10000},
		{Name: "Transport", Icon: "Car", Color: "bg-finance-600", Amount: 5000, Limit: 6000},
		{Name: "Entertainment", Icon: "Film", Color: "bg-finance-300", Amount: 3000, Limit: 4000},
		{Name: "Shopping", Icon: "ShoppingCart", Color: "bg-finance-200", Amount: 4000, Limit: 5000},
		{Name: "Utilities", Icon: "Wifi", Color: "bg-finance-600", Amount: 2500, Limit: 3000},
	}
	for i := range cs {
		cs[i].Recompute()
	}
	return cs
}

// Seed investments predate the ledger and were not paid out of savings.
func defaultInvestments() []core.Investment {
	return []core.Investment{
		{
			ID: "inv-1", Name: "Nifty 50 Index Fund", Type: "stock", Amount: 50000, ReturnRate: 12.0, Risk: core.RiskMedium,
			Description: "Tracks the performance of the Nifty 50 index, representing India's top 50 companies.",
		},
		{
			ID: "inv-2", Name: "Fixed Deposit (SBI)", Type: "savings", Amount: 25000, ReturnRate: 6.5, Risk: core.RiskLow,
			Description: "Safe investment with guaranteed returns from State Bank of India, ideal for emergency funds.",
		},
	}
}

// DefaultState is the seed ledger used when nothing has been persisted.
func DefaultState() State {
	s := State{
		Income:      defaultIncome,
		Expenses:    []core.Expense{},
		Categories:  defaultCategories(),
		Investments: defaultInvestments(),
	}
	s.recompute()
	return s
}
