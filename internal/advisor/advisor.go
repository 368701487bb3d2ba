// Package advisor turns a savings/age/risk/goal profile into an investment
// recommendation using the static catalog.
//
// Recommend is pure: it reads only its arguments and the immutable catalog,
// so identical inputs always yield identical output.
package advisor

import (
	"fmt"
	"math"
	"sort"

	"finai/internal/catalog"
	"finai/internal/core"
)

const (
	// GoalTaxSaving enables the tax-advantaged fund recommendation.
	GoalTaxSaving = "tax-saving"
	// GoalWealthCreation is the goal assumed when none is given.
	GoalWealthCreation = "wealth-creation"
	GoalRetirement     = "retirement"
	GoalShortTerm      = "short-term"

	// InvestableShare of monthly savings suggested for investment.
	InvestableShare = 0.70

	// Section 80C: deduction ceiling of 1.5L per year at the 31.2% top
	// marginal rate (30% + 4% cess).
	Section80CAnnualLimit     = 150000.0
	TopMarginalTaxRate        = 0.312
	MaxAnnualTaxSaving        = 46800.0
	MaxMonthlyTaxSaverSIP     = 12500.0
	TaxSaverShareOfInvestment = 0.25

	ProjectionYears = 10

	maxRecommendedFunds = 5
	projectionMonths    = ProjectionYears * 12

	// DefaultAge is assumed when a caller does not give one.
	DefaultAge = 30
)

type (
	// Input is a saver's profile. Any age is accepted; 18 to 90 is the
	// expected range and ages outside it fall into the nearest bracket.
	Input struct {
		MonthlySavings float64       `json:"monthlySavings"`
		Age            int           `json:"age"`
		RiskTolerance  core.RiskTier `json:"riskTolerance"`
		Goals          []string      `json:"goals"`
	}

	Allocation struct {
		catalog.AllocationLine
		MonthlyAmount float64 `json:"monthlyAmount"`
		AnnualAmount  float64 `json:"annualAmount"`
	}

	TaxSaving struct {
		Fund                       catalog.Fund `json:"fund"`
		SuggestedMonthlyInvestment float64      `json:"suggestedMonthlyInvestment"`
		AnnualTaxSaving            float64      `json:"annualTaxSaving"`
	}

	Recommendation struct {
		RecommendedFunds           []catalog.Fund   `json:"recommendedFunds"`
		RecommendedStrategy        catalog.Strategy `json:"recommendedStrategy"`
		SuggestedMonthlyInvestment float64          `json:"suggestedMonthlyInvestment"`
		SpecificAllocation         []Allocation     `json:"specificAllocation"`
		TaxSaving                  *TaxSaving       `json:"taxSavingRecommendation,omitempty"`
		AgeBasedAdvice             AgeAdvice        `json:"ageBasedAdvice"`
		AnnualReturnRate           float64          `json:"annualReturnRate"`
		ProjectionYears            int              `json:"projectionYears"`
		ProjectedValue             float64          `json:"projectedValue"`
		TotalContribution          float64          `json:"totalContribution"`
	}
)

// HasGoal reports whether the input lists the goal tag.
func (in Input) HasGoal(goal string) bool {
	for _, g := range in.Goals {
		if g == goal {
			return true
		}
	}
	return false
}

func (in Input) Validate() error {
	if err := in.RiskTolerance.Validate(); err != nil {
		return err
	}
	if err := core.ValidateNonNegative(in.MonthlySavings); err != nil {
		return fmt.Errorf("monthly savings %v: %w", in.MonthlySavings, err)
	}
	return nil
}

// Recommend builds a recommendation for the profile.
func Recommend(cat *catalog.Catalog, in Input) (Recommendation, error) {
	if err := in.Validate(); err != nil {
		return Recommendation{}, err
	}
	tier := in.RiskTolerance

	strategy, ok := cat.StrategyFor(tier)
	if !ok {
		return Recommendation{}, fmt.Errorf("no strategy for tier %s and no %q default", tier, catalog.DefaultStrategyName)
	}

	suggested := InvestableShare * in.MonthlySavings
	rate := AnnualReturnRate(tier)

	rec := Recommendation{
		RecommendedFunds:           SelectFunds(cat, tier),
		RecommendedStrategy:        strategy,
		SuggestedMonthlyInvestment: suggested,
		SpecificAllocation:         Allocate(strategy, suggested),
		AgeBasedAdvice:             AdviceForAge(in.Age, tier),
		AnnualReturnRate:           rate,
		ProjectionYears:            ProjectionYears,
		ProjectedValue:             FutureValue(suggested, rate/12, projectionMonths),
		TotalContribution:          suggested * projectionMonths,
	}

	if in.HasGoal(GoalTaxSaving) {
		if elss := cat.FundsByType(catalog.FundTypeTaxSaving); len(elss) > 0 {
			rec.TaxSaving = &TaxSaving{
				Fund:                       elss[0],
				SuggestedMonthlyInvestment: math.Min(MaxMonthlyTaxSaverSIP, TaxSaverShareOfInvestment*suggested),
				AnnualTaxSaving:            math.Min(MaxAnnualTaxSaving, TopMarginalTaxRate*Section80CAnnualLimit),
			}
		}
	}

	return rec, nil
}

// SelectFunds returns up to five funds for the tier, broadened with
// neighbouring tiers when the tier alone has fewer than five, ranked by
// trailing return.
func SelectFunds(cat *catalog.Catalog, tier core.RiskTier) []catalog.Fund {
	candidates := cat.FundsByTier(tier)
	if len(candidates) < maxRecommendedFunds {
		switch tier {
		case core.RiskLow, core.RiskHigh:
			candidates = append(candidates, head(cat.FundsByTier(core.RiskMedium), 3)...)
		case core.RiskMedium:
			candidates = append(candidates, head(cat.FundsByTier(core.RiskLow), 2)...)
			candidates = append(candidates, head(cat.FundsByTier(core.RiskHigh), 2)...)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ri, okI := candidates[i].RankingReturn()
		rj, okJ := candidates[j].RankingReturn()
		switch {
		case okI && okJ:
			return ri > rj
		default:
			// Funds without returns go last.
			return okI && !okJ
		}
	})

	return head(candidates, maxRecommendedFunds)
}

// Allocate splits the monthly investment across the strategy's lines.
func Allocate(strategy catalog.Strategy, monthly float64) []Allocation {
	out := make([]Allocation, 0, len(strategy.Allocation))
	for _, line := range strategy.Allocation {
		m := core.RoundRupees(line.Percentage / 100 * monthly)
		out = append(out, Allocation{
			AllocationLine: line,
			MonthlyAmount:  m,
			AnnualAmount:   m * 12,
		})
	}
	return out
}

// AnnualReturnRate is the assumed yearly return used for projections.
func AnnualReturnRate(tier core.RiskTier) float64 {
	switch tier {
	case core.RiskLow:
		return 0.07
	case core.RiskHigh:
		return 0.15
	default:
		return 0.11
	}
}

// FutureValue of an ordinary annuity paying p at the end of each of n
// periods at periodic rate r.
func FutureValue(p, r float64, n int) float64 {
	if r == 0 {
		return p * float64(n)
	}
	return p * (math.Pow(1+r, float64(n)) - 1) / r
}

func head(fs []catalog.Fund, n int) []catalog.Fund {
	if len(fs) > n {
		fs = fs[:n]
	}
	return append([]catalog.Fund(nil), fs...)
}
