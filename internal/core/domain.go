package core

import (
	"errors"
	"math"
	"strings"
	"time"
)

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

type (
	// RiskTier is the coarse classification driving fund selection and allocation.
	RiskTier string

	Date struct {
		time.Time
	}

	Category struct {
		Name       string  `json:"name"`
		Icon       string  `json:"icon,omitempty"`
		Color      string  `json:"color,omitempty"`
		Amount     float64 `json:"amount"`
		Limit      float64 `json:"limit"`
		Percentage float64 `json:"percentage"`
	}

	Expense struct {
		ID          string  `json:"id"`
		Category    string  `json:"category"`
		Amount      float64 `json:"amount"`
		Date        string  `json:"date"`
		Description string  `json:"description"`
	}

	Investment struct {
		ID                string   `json:"id"`
		Name              string   `json:"name"`
		Type              string   `json:"type"`
		Amount            float64  `json:"amount"`
		ReturnRate        float64  `json:"returnRate"`
		Risk              RiskTier `json:"risk"`
		Description       string   `json:"description"`
		FundedFromSavings bool     `json:"fundedFromSavings,omitempty"`
	}
)

var (
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrUnknownCategory        = errors.New("unknown category")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrInvalidRiskTier        = errors.New("invalid risk tier")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrDivisionUndefined      = errors.New("division undefined: income is zero")
	ErrDescriptionTooLong     = errors.New("description too long (max 200 characters)")
)

// RiskTiers lists the tiers in canonical order.
func RiskTiers() []RiskTier {
	return []RiskTier{RiskLow, RiskMedium, RiskHigh}
}

// ParseRiskTier accepts a tier name case-insensitively.
func ParseRiskTier(s string) (RiskTier, error) {
	t := RiskTier(strings.ToLower(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t RiskTier) Validate() error {
	switch t {
	case RiskLow, RiskMedium, RiskHigh:
		return nil
	default:
		return ErrInvalidRiskTier
	}
}

func (t RiskTier) String() string {
	return string(t)
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// String formats the date as YYYY-MM-DD, the form stored on expenses.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(time.DateOnly)
}

// ValidateAmount rejects non-finite and non-positive values.
func ValidateAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateNonNegative rejects non-finite and negative values.
func ValidateNonNegative(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Recompute refreshes the derived percentage from amount and limit.
func (c *Category) Recompute() {
	if c.Limit <= 0 {
		c.Percentage = 0
		return
	}
	c.Percentage = c.Amount / c.Limit * 100
}

// Remaining is the unspent part of the limit; negative when over budget.
func (c Category) Remaining() float64 {
	return c.Limit - c.Amount
}

func (c Category) OverBudget() bool {
	return c.Amount > c.Limit
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Category) == "" {
		return ErrUnknownCategory
	}
	if len(e.Description) > 200 {
		return ErrDescriptionTooLong
	}
	return ValidateAmount(e.Amount)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return Date{}, errors.New("invalid date: " + s)
	}
	return Date{Time: t}, nil
}
