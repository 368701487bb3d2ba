// Package ledger owns the personal finance state: income, categorized
// spending, investments and the savings derived from them.
//
// Every mutation validates first and then applies atomically under the
// ledger lock, so a failed call leaves the state exactly as it was and no
// reader ever observes a half-applied change. Subscribers are notified
// after the lock is released; the record is then persisted best-effort.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"finai/internal/catalog"
	"finai/internal/core"
	"finai/internal/storage"
)

// AuthSignal reports whether an investor is signed in. Recording an
// investment requires it.
type AuthSignal interface {
	IsSignedIn() bool
}

type Ledger struct {
	mu    sync.Mutex
	state State
	seq   uint64 // bumped by every applied mutation

	persistMu    sync.Mutex
	persistedSeq uint64

	subMu sync.Mutex
	subs  subscribers

	store   storage.Store
	auth    AuthSignal
	catalog *catalog.Catalog
	newID   func(prefix string) string
	now     func() time.Time
}

type Option func(*Ledger)

type committed struct {
	State
	seq uint64
}

// WithStore persists the record after each mutation and enables Load.
func WithStore(s storage.Store) Option {
	return func(l *Ledger) { l.store = s }
}

func WithAuth(a AuthSignal) Option {
	return func(l *Ledger) { l.auth = a }
}

func WithCatalog(c *catalog.Catalog) Option {
	return func(l *Ledger) { l.catalog = c }
}

// WithIDGenerator replaces the random id source, mainly for tests.
func WithIDGenerator(fn func(prefix string) string) Option {
	return func(l *Ledger) { l.newID = fn }
}

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New returns a ledger holding the seed state.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		state:   DefaultState(),
		catalog: catalog.Default(),
		newID:   func(prefix string) string { return prefix + uuid.NewString() },
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load replaces the in-memory state with the persisted record merged over
// the defaults. A missing record leaves the seed state in place.
func (l *Ledger) Load(ctx context.Context) error {
	if l.store == nil {
		return nil
	}
	raw, err := l.store.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		slog.InfoContext(ctx, "No persisted ledger, using defaults")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}

	st, err := decodeRecord(raw)
	if err != nil {
		return fmt.Errorf("decode ledger: %w", err)
	}

	l.mu.Lock()
	l.state = st
	l.mu.Unlock()

	slog.InfoContext(ctx, "Ledger loaded",
		"income", st.Income,
		"categories", len(st.Categories),
		"expenses", len(st.Expenses),
		"investments", len(st.Investments),
		"savings", st.Savings)
	return nil
}

// Snapshot returns a deep copy of the current state.
func (l *Ledger) Snapshot() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.clone()
}

func (l *Ledger) Totals() Totals {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Totals()
}

// Subscribe registers fn for every successful mutation. The returned
// function removes the subscription.
func (l *Ledger) Subscribe(fn func(Event)) (unsubscribe func()) {
	l.subMu.Lock()
	id := l.subs.add(fn)
	l.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.subMu.Lock()
			delete(l.subs.fns, id)
			l.subMu.Unlock()
		})
	}
}

func (l *Ledger) SetIncome(ctx context.Context, amount float64) error {
	if err := core.ValidateNonNegative(amount); err != nil {
		return fmt.Errorf("income %v: %w", amount, err)
	}

	st := l.mutate(func(s *State) {
		s.Income = amount
		s.recompute()
	})
	l.commit(ctx, st, Event{Kind: EventIncomeSet, Amount: amount})
	return nil
}

// RecordExpense appends an expense to the log and charges it to its
// category. A zero date means today.
func (l *Ledger) RecordExpense(ctx context.Context, category string, amount float64, description string, date core.Date) (core.Expense, error) {
	if date.IsZero() {
		date = core.Date{Time: l.now()}
	}
	exp := core.Expense{
		Category:    category,
		Amount:      amount,
		Date:        date.String(),
		Description: description,
	}
	if err := exp.Validate(); err != nil {
		return core.Expense{}, fmt.Errorf("record expense: %w", err)
	}

	var (
		st       committed
		notFound bool
	)
	l.mu.Lock()
	i := l.state.categoryIndex(category)
	if i < 0 {
		notFound = true
	} else {
		exp.ID = l.newID("exp-")
		l.state.Expenses = append(l.state.Expenses, exp)
		l.state.Categories[i].Amount += amount
		l.state.recompute()
		st = l.applied()
	}
	l.mu.Unlock()

	if notFound {
		return core.Expense{}, fmt.Errorf("record expense in %q: %w", category, core.ErrUnknownCategory)
	}

	l.commit(ctx, st, Event{Kind: EventExpenseRecorded, Category: category, Amount: amount, Expense: &exp})
	return exp, nil
}

// AdjustCategoryLimit sets a new spending ceiling for the category.
func (l *Ledger) AdjustCategoryLimit(ctx context.Context, category string, limit float64) (core.Category, error) {
	if err := core.ValidateAmount(limit); err != nil {
		return core.Category{}, fmt.Errorf("limit %v: %w", limit, err)
	}

	var (
		st      committed
		updated core.Category
		found   bool
	)
	l.mu.Lock()
	if i := l.state.categoryIndex(category); i >= 0 {
		found = true
		l.state.Categories[i].Limit = limit
		l.state.Categories[i].Recompute()
		updated = l.state.Categories[i]
		st = l.applied()
	}
	l.mu.Unlock()

	if !found {
		return core.Category{}, fmt.Errorf("adjust limit of %q: %w", category, core.ErrUnknownCategory)
	}

	l.commit(ctx, st, Event{Kind: EventLimitAdjusted, Category: category, Amount: limit})
	return updated, nil
}

// QuickAddToCategory charges an amount to a category without logging an
// expense.
func (l *Ledger) QuickAddToCategory(ctx context.Context, category string, amount float64) (core.Category, error) {
	if err := core.ValidateAmount(amount); err != nil {
		return core.Category{}, fmt.Errorf("quick add %v: %w", amount, err)
	}

	var (
		st      committed
		updated core.Category
		found   bool
	)
	l.mu.Lock()
	if i := l.state.categoryIndex(category); i >= 0 {
		found = true
		l.state.Categories[i].Amount += amount
		l.state.recompute()
		updated = l.state.Categories[i]
		st = l.applied()
	}
	l.mu.Unlock()

	if !found {
		return core.Category{}, fmt.Errorf("quick add to %q: %w", category, core.ErrUnknownCategory)
	}

	l.commit(ctx, st, Event{Kind: EventCategoryQuickAdd, Category: category, Amount: amount})
	return updated, nil
}

// RecordInvestment moves amount from savings into a new investment shaped
// after the tier's representative suggestion.
func (l *Ledger) RecordInvestment(ctx context.Context, amount float64, tier core.RiskTier) (core.Investment, error) {
	if l.auth == nil || !l.auth.IsSignedIn() {
		return core.Investment{}, core.ErrAuthenticationRequired
	}
	if err := tier.Validate(); err != nil {
		return core.Investment{}, fmt.Errorf("record investment: %w", err)
	}
	if err := core.ValidateAmount(amount); err != nil {
		return core.Investment{}, fmt.Errorf("record investment of %v: %w", amount, err)
	}
	sg, ok := l.catalog.RepresentativeSuggestion(tier)
	if !ok {
		return core.Investment{}, fmt.Errorf("no suggestion for tier %s", tier)
	}

	inv := core.Investment{
		Name:              sg.Name,
		Type:              string(tier),
		Amount:            amount,
		ReturnRate:        sg.MinReturn(),
		Risk:              tier,
		Description:       sg.Description,
		FundedFromSavings: true,
	}

	var (
		st        committed
		available float64
		short     bool
	)
	l.mu.Lock()
	available = l.state.Savings
	if amount > available {
		short = true
	} else {
		inv.ID = l.newID("inv-")
		l.state.Investments = append(l.state.Investments, inv)
		l.state.recompute()
		st = l.applied()
	}
	l.mu.Unlock()

	if short {
		return core.Investment{}, fmt.Errorf("invest %v with %v saved: %w", amount, available, core.ErrInsufficientFunds)
	}

	l.commit(ctx, st, Event{Kind: EventInvestmentRecorded, Amount: amount, Investment: &inv})
	return inv, nil
}

// SavingsRate is savings as a percentage of income.
func (l *Ledger) SavingsRate() (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return savingsRate(l.state)
}

func savingsRate(s State) (float64, error) {
	if s.Income == 0 {
		return 0, core.ErrDivisionUndefined
	}
	return 100 * s.Savings / s.Income, nil
}

// mutate applies fn under the lock and returns a copy of the result.
func (l *Ledger) mutate(fn func(*State)) committed {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(&l.state)
	return l.applied()
}

// applied records that a mutation happened. Callers hold l.mu.
func (l *Ledger) applied() committed {
	l.seq++
	return committed{State: l.state.clone(), seq: l.seq}
}

// commit notifies subscribers and persists st. Persistence failures are
// logged; the in-memory state stays authoritative.
func (l *Ledger) commit(ctx context.Context, st committed, ev Event) {
	ev.At = l.now()
	ev.Savings = st.Savings

	l.subMu.Lock()
	fns := l.subs.snapshot()
	l.subMu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}

	l.persist(ctx, st)
}

// persist writes st unless a newer mutation has already been written.
func (l *Ledger) persist(ctx context.Context, st committed) {
	if l.store == nil {
		return
	}
	l.persistMu.Lock()
	defer l.persistMu.Unlock()
	if st.seq <= l.persistedSeq {
		return
	}

	raw, err := json.Marshal(st.State)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to encode ledger", "error", err)
		return
	}
	if err := l.store.Put(ctx, StorageKey, raw); err != nil {
		slog.WarnContext(ctx, "Failed to persist ledger", "key", StorageKey, "error", err)
		return
	}
	l.persistedSeq = st.seq
}
