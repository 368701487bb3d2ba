// Package catalog holds the read-only reference data: investment companies,
// funds, allocation strategies and per-tier suggestions.
//
// Tables keep their declaration order. Lookups by id go through indexes
// built once at load time.
package catalog

import (
	"sync"

	"finai/internal/core"
)

type Catalog struct {
	companies   []Company
	funds       []Fund
	strategies  []Strategy
	suggestions map[core.RiskTier][]Suggestion

	fundIndex    map[string]int
	companyIndex map[string]int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog, built on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(companies, funds, strategies, suggestions)
	})
	return defaultCatalog
}

// New builds a catalog from the given tables. Duplicate ids keep the first
// declaration.
func New(cs []Company, fs []Fund, ss []Strategy, sg map[core.RiskTier][]Suggestion) *Catalog {
	c := &Catalog{
		companies:    append([]Company(nil), cs...),
		funds:        append([]Fund(nil), fs...),
		strategies:   append([]Strategy(nil), ss...),
		suggestions:  make(map[core.RiskTier][]Suggestion, len(sg)),
		fundIndex:    make(map[string]int, len(fs)),
		companyIndex: make(map[string]int, len(cs)),
	}
	for tier, list := range sg {
		c.suggestions[tier] = append([]Suggestion(nil), list...)
	}
	for i, f := range c.funds {
		if _, ok := c.fundIndex[f.ID]; !ok {
			c.fundIndex[f.ID] = i
		}
	}
	for i, co := range c.companies {
		if _, ok := c.companyIndex[co.ID]; !ok {
			c.companyIndex[co.ID] = i
		}
	}
	return c
}

func (c *Catalog) Companies() []Company {
	return append([]Company(nil), c.companies...)
}

func (c *Catalog) Funds() []Fund {
	return append([]Fund(nil), c.funds...)
}

func (c *Catalog) Strategies() []Strategy {
	return append([]Strategy(nil), c.strategies...)
}

func (c *Catalog) Fund(id string) (Fund, bool) {
	i, ok := c.fundIndex[id]
	if !ok {
		return Fund{}, false
	}
	return c.funds[i], true
}

func (c *Catalog) Company(id string) (Company, bool) {
	i, ok := c.companyIndex[id]
	if !ok {
		return Company{}, false
	}
	return c.companies[i], true
}

// FundsByTier returns funds of the given tier in catalog order.
func (c *Catalog) FundsByTier(tier core.RiskTier) []Fund {
	var out []Fund
	for _, f := range c.funds {
		if f.Risk == tier {
			out = append(out, f)
		}
	}
	return out
}

// FundsByType returns funds of the given type in catalog order.
func (c *Catalog) FundsByType(fundType string) []Fund {
	var out []Fund
	for _, f := range c.funds {
		if f.Type == fundType {
			out = append(out, f)
		}
	}
	return out
}

func (c *Catalog) FundsByCompany(companyID string) []Fund {
	var out []Fund
	for _, f := range c.funds {
		if f.CompanyID == companyID {
			out = append(out, f)
		}
	}
	return out
}

func (c *Catalog) StrategyByName(name string) (Strategy, bool) {
	for _, s := range c.strategies {
		if s.Name == name {
			return s, true
		}
	}
	return Strategy{}, false
}

// StrategyFor returns the first strategy of the tier, falling back to the
// default strategy. ok is false only if neither exists.
func (c *Catalog) StrategyFor(tier core.RiskTier) (Strategy, bool) {
	for _, s := range c.strategies {
		if s.Risk == tier {
			return s, true
		}
	}
	return c.StrategyByName(DefaultStrategyName)
}

// SuggestionsFor returns the representative instruments for a tier.
func (c *Catalog) SuggestionsFor(tier core.RiskTier) []Suggestion {
	return append([]Suggestion(nil), c.suggestions[tier]...)
}

// RepresentativeSuggestion picks the first suggestion for the tier, falling
// back to the first medium ("balanced") one.
func (c *Catalog) RepresentativeSuggestion(tier core.RiskTier) (Suggestion, bool) {
	if list := c.suggestions[tier]; len(list) > 0 {
		return list[0], true
	}
	if list := c.suggestions[core.RiskMedium]; len(list) > 0 {
		return list[0], true
	}
	return Suggestion{}, false
}
