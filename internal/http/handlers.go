package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"moneytracker/internal/categories"
	"moneytracker/internal/core"
	"moneytracker/internal/services"
)

// handlers is the transport layer over the ledger service. It converts
// raw request fields for the core and renders whatever the core returns;
// no ledger semantics live here.
type handlers struct {
	ledger      *services.LedgerService
	suggestions *categories.Suggestions
	budgetLimit core.Money
	taxRate     float64
}

// transactionView is one ledger row as rendered to the consumer.
// Variant-specific fields are present only for the owning kind.
type transactionView struct {
	Kind            string  `json:"kind"`
	Category        string  `json:"category"`
	Amount          float64 `json:"amount"`
	AmountCents     int64   `json:"amount_cents"`
	Note            string  `json:"note"`
	Timestamp       string  `json:"timestamp"`
	DisplayLabel    string  `json:"display_label"`
	FormattedAmount string  `json:"formatted_amount"`
	OverBudget      *bool   `json:"over_budget,omitempty"`
	EstimatedTax    *int64  `json:"estimated_tax_cents,omitempty"`
}

func (h *handlers) view(t core.Transaction) transactionView {
	v := transactionView{
		Kind:            string(t.Kind()),
		Category:        t.Category(),
		Amount:          t.Amount().Units(),
		AmountCents:     t.Amount().Cents,
		Note:            t.Note(),
		Timestamp:       t.Timestamp(),
		DisplayLabel:    t.DisplayLabel(),
		FormattedAmount: t.FormatAmount(),
	}
	switch tx := t.(type) {
	case *core.Outflow:
		over := tx.IsOverBudget(h.budgetLimit)
		v.OverBudget = &over
	case *core.Inflow:
		tax := tx.EstimatedTax(h.taxRate).Cents
		v.EstimatedTax = &tax
	}
	return v
}

// transactions handles:
//   - GET  /api/v1/transactions -> ledger in display order (newest first)
//   - POST /api/v1/transactions -> create one transaction
func (h *handlers) transactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ledger := h.ledger.Transactions()
		views := make([]transactionView, 0, len(ledger))
		for i := len(ledger) - 1; i >= 0; i-- {
			views = append(views, h.view(ledger[i]))
		}
		writeJSON(w, http.StatusOK, views)

	case http.MethodPost:
		var req struct {
			Kind     string `json:"kind"`
			Category string `json:"category"`
			Amount   string `json:"amount"`
			Note     string `json:"note"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		tx, err := h.ledger.Add(r.Context(),
			sanitizeInput(req.Kind),
			sanitizeInput(req.Category),
			sanitizeInput(req.Amount),
			sanitizeInput(req.Note))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, h.view(tx))

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// transactionByIndex handles DELETE /api/v1/transactions/{index}, where
// index is the display position (newest first).
func (h *handlers) transactionByIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	raw := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v1/transactions/"), "/")
	idx, err := strconv.Atoi(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid index"})
		return
	}
	if err := h.ledger.DeleteAt(r.Context(), idx); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// statistics handles GET /api/v1/statistics.
func (h *handlers) statistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	stats := h.ledger.Statistics()
	writeJSON(w, http.StatusOK, map[string]any{
		"inflow":        stats.Inflow.Units(),
		"outflow":       stats.Outflow.Units(),
		"balance":       stats.Balance.Units(),
		"inflow_cents":  stats.Inflow.Cents,
		"outflow_cents": stats.Outflow.Cents,
		"balance_cents": stats.Balance.Cents,
	})
}

// categoriesHandler handles GET /api/v1/categories?kind=outflow|inflow.
func (h *handlers) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	kind, err := core.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"kind":       string(kind),
		"categories": h.suggestions.ForKind(kind),
	})
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
