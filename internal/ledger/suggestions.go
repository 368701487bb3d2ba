package ledger

import (
	"finai/internal/catalog"
	"finai/internal/core"
)

// RiskProfile infers a tier from how much is being saved: thin savings or
// a low savings rate keep the profile conservative.
func RiskProfile(savings, rate float64) core.RiskTier {
	switch {
	case rate < 10 || savings < 10000:
		return core.RiskLow
	case rate < 20 || savings < 25000:
		return core.RiskMedium
	default:
		return core.RiskHigh
	}
}

// SuggestedInvestments returns the inferred tier and its suggestions. With
// no income the savings rate is treated as zero.
func (l *Ledger) SuggestedInvestments() (core.RiskTier, []catalog.Suggestion) {
	l.mu.Lock()
	savings := l.state.Savings
	rate, err := savingsRate(l.state)
	l.mu.Unlock()
	if err != nil {
		rate = 0
	}

	tier := RiskProfile(savings, rate)
	return tier, l.catalog.SuggestionsFor(tier)
}
