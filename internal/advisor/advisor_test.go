package advisor

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"finai/internal/catalog"
	"finai/internal/core"
)

func fundIDs(fs []catalog.Fund) []string {
	ids := make([]string, len(fs))
	for i, f := range fs {
		ids[i] = f.ID
	}
	return ids
}

func TestRecommendHighRiskYoungSaver(t *testing.T) {
	rec, err := Recommend(catalog.Default(), Input{
		MonthlySavings: 10000,
		Age:            25,
		RiskTolerance:  core.RiskHigh,
		Goals:          []string{GoalWealthCreation},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if rec.SuggestedMonthlyInvestment != 7000 {
		t.Fatalf("expected 7000 suggested, got %v", rec.SuggestedMonthlyInvestment)
	}
	if rec.RecommendedStrategy.Name != "Aggressive Growth" {
		t.Fatalf("expected Aggressive Growth, got %q", rec.RecommendedStrategy.Name)
	}
	first := rec.SpecificAllocation[0]
	if first.Type != "Mid Cap Equity" || first.MonthlyAmount != 2100 || first.AnnualAmount != 25200 {
		t.Fatalf("unexpected first allocation: %+v", first)
	}
	if rec.TaxSaving != nil {
		t.Fatalf("tax saving must be absent without the goal")
	}
	if rec.AgeBasedAdvice.Equity != 85 || rec.AgeBasedAdvice.Debt != 10 || rec.AgeBasedAdvice.Other != 5 {
		t.Fatalf("unexpected age advice: %+v", rec.AgeBasedAdvice)
	}
	if rec.TotalContribution != 7000*120 {
		t.Fatalf("unexpected total contribution %v", rec.TotalContribution)
	}
}

func TestRecommendIsDeterministic(t *testing.T) {
	in := Input{MonthlySavings: 23456.78, Age: 41, RiskTolerance: core.RiskMedium, Goals: []string{GoalTaxSaving}}
	a, err := Recommend(catalog.Default(), in)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	b, _ := Recommend(catalog.Default(), in)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("recommendations differ:\n%+v\n%+v", a, b)
	}
}

func TestAllocationSumsToSuggested(t *testing.T) {
	for _, tier := range core.RiskTiers() {
		for _, savings := range []float64{0, 1, 999, 10000, 12345.67, 250000} {
			rec, err := Recommend(catalog.Default(), Input{MonthlySavings: savings, Age: 35, RiskTolerance: tier})
			if err != nil {
				t.Fatalf("Recommend(%v, %s): %v", savings, tier, err)
			}
			var sum float64
			for _, a := range rec.SpecificAllocation {
				sum += a.MonthlyAmount
				if a.AnnualAmount != a.MonthlyAmount*12 {
					t.Fatalf("annual amount mismatch: %+v", a)
				}
			}
			tolerance := float64(len(rec.SpecificAllocation)) * 0.5
			if math.Abs(sum-rec.SuggestedMonthlyInvestment) > tolerance {
				t.Fatalf("tier %s savings %v: allocations sum %v, suggested %v", tier, savings, sum, rec.SuggestedMonthlyInvestment)
			}
		}
	}
}

func TestProjectionMatchesIterativeReference(t *testing.T) {
	for _, tier := range core.RiskTiers() {
		rec, err := Recommend(catalog.Default(), Input{MonthlySavings: 15000, Age: 50, RiskTolerance: tier})
		if err != nil {
			t.Fatalf("Recommend: %v", err)
		}
		r := AnnualReturnRate(tier) / 12
		var want float64
		for i := 0; i < 120; i++ {
			want = want*(1+r) + rec.SuggestedMonthlyInvestment
		}
		if math.Abs(rec.ProjectedValue-want)/want > 1e-9 {
			t.Fatalf("tier %s: projected %v, iterative %v", tier, rec.ProjectedValue, want)
		}
	}
}

func TestFutureValueZeroRate(t *testing.T) {
	if got := FutureValue(100, 0, 12); got != 1200 {
		t.Fatalf("expected 1200, got %v", got)
	}
}

func TestTaxSavingGoal(t *testing.T) {
	tests := []struct {
		name        string
		savings     float64
		wantMonthly float64
	}{
		{"quarter of suggested", 10000, 1750},
		{"capped", 100000, 12500},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := Recommend(catalog.Default(), Input{
				MonthlySavings: tc.savings,
				Age:            30,
				RiskTolerance:  core.RiskHigh,
				Goals:          []string{GoalWealthCreation, GoalTaxSaving},
			})
			if err != nil {
				t.Fatalf("Recommend: %v", err)
			}
			if rec.TaxSaving == nil {
				t.Fatalf("expected tax saving recommendation")
			}
			if rec.TaxSaving.Fund.ID != "nippon-1" {
				t.Fatalf("expected nippon-1, got %s", rec.TaxSaving.Fund.ID)
			}
			if rec.TaxSaving.SuggestedMonthlyInvestment != tc.wantMonthly {
				t.Fatalf("expected %v, got %v", tc.wantMonthly, rec.TaxSaving.SuggestedMonthlyInvestment)
			}
			if math.Abs(rec.TaxSaving.AnnualTaxSaving-46800) > 1e-6 {
				t.Fatalf("expected 46800, got %v", rec.TaxSaving.AnnualTaxSaving)
			}
		})
	}
}

func TestTaxSavingGoalWithoutEligibleFund(t *testing.T) {
	c := catalog.Default()
	var funds []catalog.Fund
	for _, f := range c.Funds() {
		if f.Type != catalog.FundTypeTaxSaving {
			funds = append(funds, f)
		}
	}
	noELSS := catalog.New(c.Companies(), funds, c.Strategies(), nil)
	rec, err := Recommend(noELSS, Input{MonthlySavings: 5000, Age: 30, RiskTolerance: core.RiskLow, Goals: []string{GoalTaxSaving}})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if rec.TaxSaving != nil {
		t.Fatalf("expected no tax saving recommendation, got %+v", rec.TaxSaving)
	}
}

func TestSelectFundsBroadensAndRanks(t *testing.T) {
	tests := []struct {
		tier core.RiskTier
		want []string
	}{
		{core.RiskLow, []string{"parag-1", "sbi-1", "icici-1", "kotak-1", "aditya-1"}},
		{core.RiskMedium, []string{"parag-1", "mirae-1", "sbi-1", "dsp-1", "icici-1"}},
		{core.RiskHigh, []string{"sbi-2", "axis-1", "parag-1", "hdfc-1", "nippon-1"}},
	}
	for _, tc := range tests {
		got := fundIDs(SelectFunds(catalog.Default(), tc.tier))
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("tier %s: expected %v, got %v", tc.tier, tc.want, got)
		}
	}
}

func TestSelectFundsUnreportedReturnsRankLast(t *testing.T) {
	one := 9.0
	funds := []catalog.Fund{
		{ID: "a", Risk: core.RiskLow},
		{ID: "b", Risk: core.RiskLow, Returns: catalog.Returns{OneYear: &one}},
		{ID: "c", Risk: core.RiskLow},
	}
	c := catalog.New(nil, funds, nil, nil)
	got := fundIDs(SelectFunds(c, core.RiskLow))
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRecommendFallsBackToDefaultStrategy(t *testing.T) {
	c := catalog.Default()
	var ss []catalog.Strategy
	for _, s := range c.Strategies() {
		if s.Risk != core.RiskLow {
			ss = append(ss, s)
		}
	}
	rec, err := Recommend(catalog.New(c.Companies(), c.Funds(), ss, nil), Input{MonthlySavings: 1000, Age: 30, RiskTolerance: core.RiskLow})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if rec.RecommendedStrategy.Name != catalog.DefaultStrategyName {
		t.Fatalf("expected default strategy, got %q", rec.RecommendedStrategy.Name)
	}
}

func TestRecommendRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want error
	}{
		{"unknown tier", Input{MonthlySavings: 100, RiskTolerance: "extreme"}, core.ErrInvalidRiskTier},
		{"empty tier", Input{MonthlySavings: 100}, core.ErrInvalidRiskTier},
		{"negative savings", Input{MonthlySavings: -1, RiskTolerance: core.RiskLow}, core.ErrInvalidAmount},
		{"nan savings", Input{MonthlySavings: math.NaN(), RiskTolerance: core.RiskLow}, core.ErrInvalidAmount},
		{"inf savings", Input{MonthlySavings: math.Inf(1), RiskTolerance: core.RiskLow}, core.ErrInvalidAmount},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Recommend(catalog.Default(), tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestRecommendAcceptsAnyAge(t *testing.T) {
	for _, age := range []int{-1, 0, 17, 91, 131, 150} {
		in := Input{MonthlySavings: 5000, Age: age, RiskTolerance: core.RiskHigh}
		rec, err := Recommend(catalog.Default(), in)
		if err != nil {
			t.Fatalf("age %d: %v", age, err)
		}
		if want := AdviceForAge(age, core.RiskHigh); rec.AgeBasedAdvice != want {
			t.Errorf("age %d: advice = %+v, want %+v", age, rec.AgeBasedAdvice, want)
		}
	}
}
