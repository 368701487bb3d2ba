package http

import (
	"net/http"
	"strings"

	"finai/internal/advisor"
	"finai/internal/catalog"
	"finai/internal/core"
	flog "finai/internal/log"
)

// HeaderCache reports whether a recommendation came from the memo.
const HeaderCache = "X-Cache"

// recommendationRequest leaves monthlySavings, age and riskTolerance
// optional. Missing savings and tolerance come from the ledger's current
// savings and risk profile; a missing age is advisor.DefaultAge.
type recommendationRequest struct {
	MonthlySavings *float64 `json:"monthlySavings"`
	Age            *int     `json:"age"`
	RiskTolerance  string   `json:"riskTolerance"`
	Goals          []string `json:"goals"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errorResponseFor(err).Write(w)
		return
	}

	in := advisor.Input{Age: advisor.DefaultAge, Goals: make([]string, 0, len(req.Goals))}
	if req.Age != nil {
		in.Age = *req.Age
	}
	for _, g := range req.Goals {
		if g = strings.ToLower(sanitizeInput(g)); g != "" {
			in.Goals = append(in.Goals, g)
		}
	}
	if req.MonthlySavings != nil {
		in.MonthlySavings = *req.MonthlySavings
	} else {
		in.MonthlySavings = s.ledger.Snapshot().Savings
	}
	if strings.TrimSpace(req.RiskTolerance) != "" {
		tier, err := core.ParseRiskTier(req.RiskTolerance)
		if err != nil {
			errorResponseFor(err).Write(w)
			return
		}
		in.RiskTolerance = tier
	} else {
		in.RiskTolerance, _ = s.ledger.SuggestedInvestments()
	}

	key := recommendationKey(in)
	if rec, ok := s.recommendations.Get(key); ok {
		NewJSONResponse().Header(HeaderCache, "HIT").Data(rec).Write(w)
		return
	}

	rec, err := advisor.Recommend(s.catalog, in)
	if err != nil {
		errorResponseFor(err).Write(w)
		return
	}
	s.recommendations.Set(key, rec)
	s.logger.DebugContext(r.Context(), "Recommendation computed",
		flog.FieldOperation, flog.OpRecommend, flog.FieldRiskTier, in.RiskTolerance)
	NewJSONResponse().Header(HeaderCache, "MISS").Data(rec).Write(w)
}

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	NewJSONResponse().Data(s.catalog.Companies()).Write(w)
}

// handleFunds lists funds, optionally narrowed by tier, type, company and tag.
func (s *Server) handleFunds(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tier, hasTier, err := parseTierQuery(q, "tier")
	if err != nil {
		errorResponseFor(err).Write(w)
		return
	}

	fundType := sanitizeInput(q.Get("type"))
	company := sanitizeInput(q.Get("company"))
	var funds []catalog.Fund
	switch {
	case hasTier:
		funds = s.catalog.FundsByTier(tier)
	case company != "":
		funds = s.catalog.FundsByCompany(company)
	default:
		funds = s.catalog.Funds()
	}
	tag := strings.ToLower(sanitizeInput(q.Get("tag")))

	out := make([]catalog.Fund, 0, len(funds))
	for _, f := range funds {
		if fundType != "" && !strings.EqualFold(f.Type, fundType) {
			continue
		}
		if company != "" && f.CompanyID != company {
			continue
		}
		if tag != "" && !f.HasTag(tag) {
			continue
		}
		out = append(out, f)
	}
	NewJSONResponse().Data(out).Write(w)
}

func (s *Server) handleFund(w http.ResponseWriter, r *http.Request) {
	f, ok := s.catalog.Fund(pathParam(r, "id"))
	if !ok {
		NotFoundError("unknown fund").Write(w)
		return
	}
	NewJSONResponse().Data(f).Write(w)
}

func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	NewJSONResponse().Data(s.catalog.Strategies()).Write(w)
}
