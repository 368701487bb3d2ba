// Package sheets defines the report rows mirrored into a spreadsheet and the
// ports the export worker writes them through. The spreadsheet is a one-way
// report: nothing is ever read back into the ledger.
package sheets

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrInvalidRow = errors.New("invalid report row")

type (
	ExpenseRow struct {
		ID          string
		Date        string // YYYY-MM-DD
		Category    string
		Description string
		Amount      float64
	}

	InvestmentRow struct {
		ID         string
		Date       string // YYYY-MM-DD
		Name       string
		Tier       string
		Amount     float64
		ReturnRate float64
	}
)

// Ports for outbound adapters.
type (
	ExpenseRowWriter interface {
		AppendExpense(ctx context.Context, row ExpenseRow) (rowRef string, err error)
	}

	InvestmentRowWriter interface {
		AppendInvestment(ctx context.Context, row InvestmentRow) (rowRef string, err error)
	}

	Exporter interface {
		ExpenseRowWriter
		InvestmentRowWriter
	}
)

func (r ExpenseRow) Validate() error {
	if strings.TrimSpace(r.ID) == "" || strings.TrimSpace(r.Category) == "" || r.Amount <= 0 {
		return ErrInvalidRow
	}
	return validateDate(r.Date)
}

// Values is the row as written to the sheet, in column order.
func (r ExpenseRow) Values() []any {
	return []any{r.Date, r.Category, r.Description, r.Amount, r.ID}
}

func (r InvestmentRow) Validate() error {
	if strings.TrimSpace(r.ID) == "" || strings.TrimSpace(r.Name) == "" || r.Amount <= 0 {
		return ErrInvalidRow
	}
	return validateDate(r.Date)
}

func (r InvestmentRow) Values() []any {
	return []any{r.Date, r.Name, r.Tier, r.Amount, r.ReturnRate, r.ID}
}

// RowYear is the year of a row date, used to pick the yearly sheet.
func RowYear(date string) int {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return time.Now().Year()
	}
	return t.Year()
}

func validateDate(date string) error {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return ErrInvalidRow
	}
	return nil
}
