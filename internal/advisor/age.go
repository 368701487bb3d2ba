package advisor

import "finai/internal/core"

type (
	AgeAdvice struct {
		Message string  `json:"message"`
		Equity  float64 `json:"equitySuggestion"`
		Debt    float64 `json:"debtSuggestion"`
		Other   float64 `json:"otherSuggestion"`
	}

	mix struct{ equity, debt, other float64 }

	ageBracket struct {
		below   int // exclusive upper bound; 0 means unbounded
		message string
		mixes   map[core.RiskTier]mix
	}
)

var ageBrackets = []ageBracket{
	{
		below:   30,
		message: "You have a long investment horizon. Focus on building wealth through equity investments.",
		mixes: map[core.RiskTier]mix{
			core.RiskLow:    {60, 30, 10},
			core.RiskMedium: {75, 20, 5},
			core.RiskHigh:   {85, 10, 5},
		},
	},
	{
		below:   45,
		message: "Balance growth with some stability as you approach your peak earning years.",
		mixes: map[core.RiskTier]mix{
			core.RiskLow:    {50, 40, 10},
			core.RiskMedium: {65, 25, 10},
			core.RiskHigh:   {75, 15, 10},
		},
	},
	{
		below:   60,
		message: "Begin transitioning to more conservative investments as retirement approaches.",
		mixes: map[core.RiskTier]mix{
			core.RiskLow:    {30, 60, 10},
			core.RiskMedium: {45, 45, 10},
			core.RiskHigh:   {60, 30, 10},
		},
	},
	{
		message: "Focus on income generation and capital preservation in retirement.",
		mixes: map[core.RiskTier]mix{
			core.RiskLow:    {20, 70, 10},
			core.RiskMedium: {30, 60, 10},
			core.RiskHigh:   {40, 50, 10},
		},
	},
}

// AdviceForAge maps an age and tier to a suggested equity/debt/other split.
func AdviceForAge(age int, tier core.RiskTier) AgeAdvice {
	for _, b := range ageBrackets {
		if b.below != 0 && age >= b.below {
			continue
		}
		m := b.mixes[tier]
		return AgeAdvice{Message: b.message, Equity: m.equity, Debt: m.debt, Other: m.other}
	}
	return AgeAdvice{}
}
