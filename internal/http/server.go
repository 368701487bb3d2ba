package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"finai/internal/advisor"
	"finai/internal/cache"
	"finai/internal/catalog"
	"finai/internal/core"
	"finai/internal/ledger"
	flog "finai/internal/log"
	"finai/internal/middleware/ratelimit"
	"finai/internal/middleware/security"
	"finai/internal/middleware/trace"
	"finai/internal/session"
)

// Ledger is the finance state the API reads and mutates.
type Ledger interface {
	Snapshot() ledger.State
	Totals() ledger.Totals
	SetIncome(ctx context.Context, amount float64) error
	RecordExpense(ctx context.Context, category string, amount float64, description string, date core.Date) (core.Expense, error)
	AdjustCategoryLimit(ctx context.Context, category string, limit float64) (core.Category, error)
	QuickAddToCategory(ctx context.Context, category string, amount float64) (core.Category, error)
	RecordInvestment(ctx context.Context, amount float64, tier core.RiskTier) (core.Investment, error)
	SavingsRate() (float64, error)
	SuggestedInvestments() (core.RiskTier, []catalog.Suggestion)
}

// Sessions is the sign-in surface the API exposes.
type Sessions interface {
	SignUp(ctx context.Context, name, email, password string) (session.User, error)
	SignIn(ctx context.Context, email, password string) (session.User, error)
	SignOut(ctx context.Context)
	CurrentUser() (session.User, bool)
}

type Options struct {
	Ledger   Ledger
	Sessions Sessions
	Catalog  *catalog.Catalog
	Logger   *flog.Logger

	RecommendationCacheSize int
	RecommendationCacheTTL  time.Duration
	RateLimit               ratelimit.Config
}

type Server struct {
	http.Server

	ledger   Ledger
	sessions Sessions
	catalog  *catalog.Catalog
	logger   *flog.Logger

	recommendations *cache.LRUCache[advisor.Recommendation]
	limiter         *ratelimit.Limiter
	detector        *security.Detector
	tracer          *trace.Middleware

	shutdownOnce sync.Once
}

// NewServer wires routes and middleware and returns a server ready for
// ListenAndServe.
func NewServer(addr string, opts Options) *Server {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Logger == nil {
		opts.Logger = flog.New(flog.DefaultConfig())
	}
	if opts.RecommendationCacheSize <= 0 {
		opts.RecommendationCacheSize = 256
	}
	if opts.RecommendationCacheTTL <= 0 {
		opts.RecommendationCacheTTL = 10 * time.Minute
	}

	logger := opts.Logger.WithComponent(flog.ComponentHTTP)
	detector := security.NewDetector()

	s := &Server{
		ledger:          opts.Ledger,
		sessions:        opts.Sessions,
		catalog:         opts.Catalog,
		logger:          logger,
		recommendations: cache.NewLRUCache[advisor.Recommendation](opts.RecommendationCacheSize, opts.RecommendationCacheTTL),
		limiter:         ratelimit.NewLimiter(opts.RateLimit),
		detector:        detector,
		tracer:          trace.NewMiddleware(logger, detector.ExtractClientIP),
	}
	s.Server = http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.tracer.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(flog.Middleware(s.logger))
	r.Use(security.NewHeadersMiddleware(security.DefaultHeadersConfig()).Middleware)
	r.Use(s.detector.Middleware(func(w http.ResponseWriter, r *http.Request) {
		s.logger.WarnContext(r.Context(), "Suspicious request blocked",
			flog.FieldPath, r.URL.Path, flog.FieldClientIP, s.detector.ExtractClientIP(r))
		BadRequestError("request rejected").Write(w)
	}))
	r.Use(s.limiter.Middleware(s.detector.ExtractClientIP, func(w http.ResponseWriter, r *http.Request) {
		s.logger.WarnContext(r.Context(), "Rate limit exceeded", flog.FieldClientIP, s.detector.ExtractClientIP(r))
		TooManyRequestsError().Write(w)
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NotFoundError("no such route").Write(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed").Write(w)
	})

	r.Get("/healthz", handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ledger", s.handleLedger)
		r.Get("/ledger/totals", s.handleTotals)
		r.Put("/income", s.handleSetIncome)

		r.Get("/expenses", s.handleListExpenses)
		r.Post("/expenses", s.handleRecordExpense)

		r.Get("/categories", s.handleListCategories)
		r.Get("/categories/{name}", s.handleGetCategory)
		r.Put("/categories/{name}/limit", s.handleAdjustLimit)
		r.Post("/categories/{name}/quick-add", s.handleQuickAdd)

		r.Get("/investments", s.handleListInvestments)
		r.Post("/investments", s.handleRecordInvestment)

		r.Get("/savings-rate", s.handleSavingsRate)
		r.Get("/suggestions", s.handleSuggestions)
		r.Post("/recommendations", s.handleRecommend)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/companies", s.handleCompanies)
			r.Get("/funds", s.handleFunds)
			r.Get("/funds/{id}", s.handleFund)
			r.Get("/strategies", s.handleStrategies)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", s.handleSignUp)
			r.Post("/signin", s.handleSignIn)
			r.Post("/signout", s.handleSignOut)
			r.Get("/me", s.handleMe)
		})

		r.Get("/stats", s.handleStats)
	})
	return r
}

// RecommendationCache exposes the memo so a cache.Manager can sweep it.
func (s *Server) RecommendationCache() *cache.LRUCache[advisor.Recommendation] {
	return s.recommendations
}

// Shutdown stops the rate limiter and drains the HTTP server once.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.limiter.Stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	NewJSONResponse().Data(map[string]string{"status": "ok"}).Write(w)
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.ledger == nil || s.sessions == nil {
		ErrorResponse(http.StatusServiceUnavailable, "not_ready", "not ready").Write(w)
		return
	}
	NewJSONResponse().Data(map[string]string{"status": "ready"}).Write(w)
}

type statsResponse struct {
	RecommendationCache cache.Stats               `json:"recommendationCache"`
	RateLimit           ratelimit.Metrics         `json:"rateLimit"`
	Security            security.DetectionMetrics `json:"security"`
	Requests            trace.Metrics             `json:"requests"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	NewJSONResponse().Data(statsResponse{
		RecommendationCache: s.recommendations.Stats(),
		RateLimit:           s.limiter.GetMetrics(),
		Security:            s.detector.GetMetrics(),
		Requests:            s.tracer.GetMetrics(),
	}).Write(w)
}
