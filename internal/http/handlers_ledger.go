package http

import (
	"errors"
	"net/http"

	"finai/internal/catalog"
	"finai/internal/core"
	"finai/internal/ledger"
	flog "finai/internal/log"
)

type ledgerResponse struct {
	ledger.State
	Totals      ledger.Totals `json:"totals"`
	SavingsRate *float64      `json:"savingsRate"`
}

func (s *Server) handleLedger(w http.ResponseWriter, r *http.Request) {
	resp := ledgerResponse{State: s.ledger.Snapshot(), Totals: s.ledger.Totals()}
	if rate, err := s.ledger.SavingsRate(); err == nil {
		resp.SavingsRate = &rate
	}
	NewJSONResponse().Data(resp).Write(w)
}

func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	NewJSONResponse().Data(s.ledger.Totals()).Write(w)
}

type amountRequest struct {
	Amount *amountValue `json:"amount"`
}

func (s *Server) handleSetIncome(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errorResponseFor(err).Write(w)
		return
	}
	amount, err := requireAmount(req.Amount)
	if err != nil {
		errorResponseFor(err).Write(w)
		return
	}
	if err := s.ledger.SetIncome(r.Context(), amount); err != nil {
		s.writeMutationError(w, r, flog.OpSetIncome, err)
		return
	}
	NewJSONResponse().Event(string(ledger.EventIncomeSet)).Data(s.ledger.Snapshot()).Write(w)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	st := s.ledger.Snapshot()
	category := sanitizeInput(r.URL.Query().Get("category"))
	if category == "" {
		NewJSONResponse().Data(st.Expenses).Write(w)
		return
	}
	if _, ok := st.Category(category); !ok {
		errorResponseFor(core.ErrUnknownCategory).Write(w)
		return
	}
	NewJSONResponse().Data(st.ExpensesFor(category)).Write(w)
}

type expenseRequest struct {
	Category    string       `json:"category"`
	Amount      *amountValue `json:"amount"`
	Description string       `json:"description"`
	Date        string       `json:"date"`
}

func (s *Server) handleRecordExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errorResponseFor(err).Write(w)
		return
	}
	amount, err := requireAmount(req.Amount)
	if err != nil {
		errorResponseFor(err).Write(w)
		return
	}
	date, err := parseDateField(req.Date)
	if err != nil {
		errorResponseFor(err).Write(w)
		return
	}

	exp, err := s.ledger.RecordExpense(r.Context(), sanitizeInput(req.Category), amount, sanitizeInput(req.Description), date)
	if err != nil {
		s.writeMutationError(w, r, flog.OpRecordExpense, err)
		return
	}
	NewJSONResponse().Status(http.StatusCreated).Event(string(ledger.EventExpenseRecorded)).Data(exp).Write(w)
}

// categoryView adds budget status to a category.
type categoryView struct {
	core.Category
	Remaining  float64 `json:"remaining"`
	OverBudget bool    `json:"overBudget"`
}

func viewCategory(c core.Category) categoryView {
	return categoryView{Category: c, Remaining: c.Remaining(), OverBudget: c.OverBudget()}
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats := s.ledger.Snapshot().Categories
	out := make([]categoryView, 0, len(cats))
	for _, c := range cats {
		out = append(out, viewCategory(c))
	}
	NewJSONResponse().Data(out).Write(w)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	c, ok := s.ledger.Snapshot().Category(pathParam(r, "name"))
	if !ok {
		errorResponseFor(core.ErrUnknownCategory).Write(w)
		return
	}
	NewJSONResponse().Data(viewCategory(c)).Write(w)
}

type limitRequest struct {
	Limit *amountValue `json:"limit"`
}

func (s *Server) handleAdjustLimit(w http.ResponseWriter, r *http.Request) {
	var req limitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errorResponseFor(err).Write(w)
		return
	}
	limit, err := requireAmount(req.Limit)
	if err != nil {
		errorResponseFor(err).Write(w)
		return
	}
	c, err := s.ledger.AdjustCategoryLimit(r.Context(), pathParam(r, "name"), limit)
	if err != nil {
		s.writeMutationError(w, r, flog.OpAdjustLimit, err)
		return
	}
	NewJSONResponse().Event(string(ledger.EventLimitAdjusted)).Data(viewCategory(c)).Write(w)
}

func (s *Server) handleQuickAdd(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errorResponseFor(err).Write(w)
		return
	}
	amount, err := requireAmount(req.Amount)
	if err != nil {
		errorResponseFor(err).Write(w)
		return
	}
	c, err := s.ledger.QuickAddToCategory(r.Context(), pathParam(r, "name"), amount)
	if err != nil {
		s.writeMutationError(w, r, flog.OpQuickAdd, err)
		return
	}
	NewJSONResponse().Event(string(ledger.EventCategoryQuickAdd)).Data(viewCategory(c)).Write(w)
}

func (s *Server) handleListInvestments(w http.ResponseWriter, r *http.Request) {
	NewJSONResponse().Data(s.ledger.Snapshot().Investments).Write(w)
}

type investmentRequest struct {
	Amount   *amountValue `json:"amount"`
	RiskTier string       `json:"riskTier"`
}

func (s *Server) handleRecordInvestment(w http.ResponseWriter, r *http.Request) {
	var req investmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errorResponseFor(err).Write(w)
		return
	}
	amount, err := requireAmount(req.Amount)
	if err != nil {
		errorResponseFor(err).Write(w)
		return
	}
	// An unparsable tier goes through as given so the ledger reports it
	// after the sign-in check.
	tier := core.RiskTier(sanitizeInput(req.RiskTier))
	if parsed, err := core.ParseRiskTier(req.RiskTier); err == nil {
		tier = parsed
	}
	inv, err := s.ledger.RecordInvestment(r.Context(), amount, tier)
	if err != nil {
		s.writeMutationError(w, r, flog.OpRecordInvestment, err)
		return
	}
	NewJSONResponse().Status(http.StatusCreated).Event(string(ledger.EventInvestmentRecorded)).Data(inv).Write(w)
}

func (s *Server) handleSavingsRate(w http.ResponseWriter, r *http.Request) {
	rate, err := s.ledger.SavingsRate()
	if err != nil {
		errorResponseFor(err).Write(w)
		return
	}
	NewJSONResponse().Data(map[string]float64{"savingsRate": rate}).Write(w)
}

type suggestionsResponse struct {
	RiskProfile core.RiskTier        `json:"riskProfile"`
	Suggestions []catalog.Suggestion `json:"suggestions"`
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	tier, sugg := s.ledger.SuggestedInvestments()
	NewJSONResponse().Data(suggestionsResponse{RiskProfile: tier, Suggestions: sugg}).Write(w)
}

// writeMutationError logs rejected mutations at warn and failures at error.
func (s *Server) writeMutationError(w http.ResponseWriter, r *http.Request, op string, err error) {
	resp := errorResponseFor(err)
	if resp.statusCode >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "Ledger mutation failed", flog.FieldOperation, op, flog.FieldError, err)
	} else if !errors.Is(err, core.ErrInvalidAmount) {
		s.logger.WarnContext(r.Context(), "Ledger mutation rejected", flog.FieldOperation, op, flog.FieldError, err)
	}
	resp.Write(w)
}
