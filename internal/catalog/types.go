package catalog

import (
	"strconv"
	"strings"

	"finai/internal/core"
)

type (
	Company struct {
		ID            string   `json:"id"`
		Name          string   `json:"name"`
		Description   string   `json:"description"`
		Website       string   `json:"website"`
		FundTypes     []string `json:"fundTypes"`
		MinInvestment float64  `json:"minInvestment"`
		AUM           float64  `json:"aum,omitempty"` // crores
		Established   int      `json:"established,omitempty"`
		Rating        float64  `json:"rating,omitempty"`
	}

	// Returns holds trailing annual returns in percent; nil means not reported.
	Returns struct {
		OneYear   *float64 `json:"oneYear,omitempty"`
		ThreeYear *float64 `json:"threeYear,omitempty"`
		FiveYear  *float64 `json:"fiveYear,omitempty"`
	}

	Fund struct {
		ID            string        `json:"id"`
		CompanyID     string        `json:"companyId"`
		Name          string        `json:"name"`
		Type          string        `json:"type"`
		Category      string        `json:"category"`
		Risk          core.RiskTier `json:"risk"`
		Returns       Returns       `json:"returns"`
		MinInvestment float64       `json:"minInvestment"`
		ExpenseRatio  float64       `json:"expenseRatio"`
		Description   string        `json:"description"`
		Tags          []string      `json:"tags,omitempty"`
	}

	AllocationLine struct {
		Type        string  `json:"type"`
		Percentage  float64 `json:"percentage"`
		Description string  `json:"description"`
	}

	Strategy struct {
		Name            string           `json:"name"`
		Description     string           `json:"description"`
		Risk            core.RiskTier    `json:"riskLevel"`
		SuitableFor     []string         `json:"suitableFor"`
		TimeHorizon     string           `json:"timeHorizon"`
		ExpectedReturns string           `json:"expectedReturns"`
		Allocation      []AllocationLine `json:"allocation"`
		// Icon is a presentation handle name, resolved by consumers.
		Icon string `json:"icon,omitempty"`
	}

	// Suggestion is a representative instrument for a risk tier.
	Suggestion struct {
		Name        string        `json:"name"`
		ReturnRange string        `json:"returnRange"`
		Risk        core.RiskTier `json:"risk"`
		Description string        `json:"description"`
		MinAmount   float64       `json:"minAmount"`
	}
)

const (
	FundTypeTaxSaving = "tax-saving"

	// DefaultStrategyName is used when no strategy matches a tier.
	DefaultStrategyName = "Moderate Balanced"
)

// RankingReturn is the return used to rank a fund: three-year, else
// one-year. ok is false when neither is reported.
func (f Fund) RankingReturn() (float64, bool) {
	if f.Returns.ThreeYear != nil {
		return *f.Returns.ThreeYear, true
	}
	if f.Returns.OneYear != nil {
		return *f.Returns.OneYear, true
	}
	return 0, false
}

func (f Fund) HasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// TotalPercentage sums the allocation percentages of the strategy.
func (s Strategy) TotalPercentage() float64 {
	var total float64
	for _, a := range s.Allocation {
		total += a.Percentage
	}
	return total
}

func pct(v float64) *float64 {
	return &v
}

// MinReturn parses the lower bound of the return range ("7-8%" -> 7).
func (s Suggestion) MinReturn() float64 {
	lo, _, _ := strings.Cut(strings.TrimSuffix(strings.TrimSpace(s.ReturnRange), "%"), "-")
	v, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return 0
	}
	return v
}
