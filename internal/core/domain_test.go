package core

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2025, 1, 1), true},
		{NewDate(2025, 12, 31), true},
		{Date{Time: time.Time{}}, false}, // zero time
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-09")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.String() != "2025-03-09" {
		t.Fatalf("unexpected date %s", d)
	}
	if _, err := ParseDate("09/03/2025"); err == nil {
		t.Fatalf("expected error for non ISO date")
	}
}

func TestParseRiskTier(t *testing.T) {
	for _, in := range []string{"low", "Medium", " HIGH "} {
		if _, err := ParseRiskTier(in); err != nil {
			t.Fatalf("%q expected ok, got %v", in, err)
		}
	}
	if _, err := ParseRiskTier("balanced"); !errors.Is(err, ErrInvalidRiskTier) {
		t.Fatalf("expected ErrInvalidRiskTier, got %v", err)
	}
}

func TestValidateAmount(t *testing.T) {
	bad := []float64{0, -1, math.NaN(), math.Inf(1)}
	for _, v := range bad {
		if err := ValidateAmount(v); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("%v expected ErrInvalidAmount, got %v", v, err)
		}
	}
	if err := ValidateAmount(0.01); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := ValidateNonNegative(0); err != nil {
		t.Fatalf("zero must be a valid non-negative amount, got %v", err)
	}
}

func TestCategoryRecompute(t *testing.T) {
	c := Category{Name: "Food", Amount: 8000, Limit: 10000}
	c.Recompute()
	if c.Percentage != 80 {
		t.Fatalf("expected 80, got %v", c.Percentage)
	}
	if c.Remaining() != 2000 || c.OverBudget() {
		t.Fatalf("unexpected remaining/over budget: %v %v", c.Remaining(), c.OverBudget())
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{Category: "Food", Amount: 100, Description: "ok"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	bads := []Expense{
		{Category: "", Amount: 1},
		{Category: "Food", Amount: 0},
		{Category: "Food", Amount: -5},
	}
	for i, e := range bads {
		if err := e.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
