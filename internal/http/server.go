// Package http is the JSON API over the ledger: it supplies raw field
// values to the core and renders what the core returns.
package http

import (
	"net/http"
	"time"

	applog "moneytracker/internal/log"

	"moneytracker/internal/categories"
	"moneytracker/internal/core"
	"moneytracker/internal/services"
)

// Options carries the presentation settings the handlers need.
type Options struct {
	BudgetLimit core.Money
	TaxRate     float64
	Logger      *applog.Logger
}

// NewServer wires the routes and returns a configured *http.Server.
func NewServer(addr string, ledger *services.LedgerService, suggestions *categories.Suggestions, opts Options) *http.Server {
	if opts.TaxRate == 0 {
		opts.TaxRate = core.DefaultTaxRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentHTTP)
	}

	h := &handlers{
		ledger:      ledger,
		suggestions: suggestions,
		budgetLimit: opts.BudgetLimit,
		taxRate:     opts.TaxRate,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.health)
	mux.HandleFunc("/api/v1/transactions", h.transactions)
	mux.HandleFunc("/api/v1/transactions/", h.transactionByIndex)
	mux.HandleFunc("/api/v1/statistics", h.statistics)
	mux.HandleFunc("/api/v1/categories", h.categoriesHandler)

	return &http.Server{
		Addr:           addr,
		Handler:        withRequestLogging(logger, mux),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestLogging logs method, path, status and duration for every
// request. 4xx logs at warn, 5xx at error.
func withRequestLogging(logger *applog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		args := []any{
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldStatusCode, rec.status,
			applog.FieldDuration, time.Since(start).Milliseconds(),
		}
		switch {
		case rec.status >= 500:
			logger.Error("HTTP request completed", args...)
		case rec.status >= 400:
			logger.Warn("HTTP request completed", args...)
		default:
			logger.Info("HTTP request completed", args...)
		}
	})
}
