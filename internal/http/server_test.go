package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moneytracker/internal/categories"
	"moneytracker/internal/core"
	"moneytracker/internal/services"
	"moneytracker/internal/storage"
)

func newTestServer(t *testing.T) *http.Server {
	t.Helper()
	svc, err := services.NewLedgerService(context.Background(), storage.NewMemoryStore(), nil)
	if err != nil {
		t.Fatalf("NewLedgerService err=%v", err)
	}
	sugg := categories.New([]string{"Food", "Rent"}, []string{"Salary"})
	return NewServer(":0", svc, sugg, Options{
		BudgetLimit: core.Money{Cents: 2500000}, // 25000 units
		TaxRate:     0.05,
	})
}

func doJSON(t *testing.T, srv *http.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	rr := doJSON(t, srv, http.MethodGet, "/healthz", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", rr.Code)
	}
}

func TestCreateTransaction(t *testing.T) {
	srv := newTestServer(t)

	rr := doJSON(t, srv, http.MethodPost, "/api/v1/transactions",
		`{"kind":"outflow","category":"Food","amount":"30000","note":""}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}

	var view struct {
		Kind            string  `json:"kind"`
		Note            string  `json:"note"`
		Amount          float64 `json:"amount"`
		FormattedAmount string  `json:"formatted_amount"`
		OverBudget      *bool   `json:"over_budget"`
		EstimatedTax    *int64  `json:"estimated_tax_cents"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view.Kind != "outflow" || view.Amount != 30000 || view.Note != "-" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.FormattedAmount != "Rp 30,000" {
		t.Fatalf("formatted_amount=%q", view.FormattedAmount)
	}
	// 30000 over the 25000 limit.
	if view.OverBudget == nil || !*view.OverBudget {
		t.Fatalf("expected over_budget=true, got %v", view.OverBudget)
	}
	if view.EstimatedTax != nil {
		t.Fatalf("outflow must not carry estimated tax")
	}
}

func TestCreateInflowCarriesTaxEstimate(t *testing.T) {
	srv := newTestServer(t)
	rr := doJSON(t, srv, http.MethodPost, "/api/v1/transactions",
		`{"kind":"inflow","category":"Salary","amount":"500000","note":"March"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var view struct {
		OverBudget   *bool  `json:"over_budget"`
		EstimatedTax *int64 `json:"estimated_tax_cents"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view.EstimatedTax == nil || *view.EstimatedTax != 2500000 {
		t.Fatalf("estimated_tax_cents=%v, want 2500000", view.EstimatedTax)
	}
	if view.OverBudget != nil {
		t.Fatalf("inflow must not carry over_budget")
	}
}

func TestCreateValidation(t *testing.T) {
	srv := newTestServer(t)
	cases := []struct {
		name string
		body string
		want int
	}{
		{"zero amount", `{"kind":"outflow","category":"Food","amount":"0"}`, http.StatusUnprocessableEntity},
		{"negative amount", `{"kind":"outflow","category":"Food","amount":"-5"}`, http.StatusUnprocessableEntity},
		{"garbage amount", `{"kind":"outflow","category":"Food","amount":"abc"}`, http.StatusUnprocessableEntity},
		{"unknown kind", `{"kind":"transfer","category":"Food","amount":"100"}`, http.StatusBadRequest},
		{"bad body", `{{{`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doJSON(t, srv, http.MethodPost, "/api/v1/transactions", tc.body)
			if rr.Code != tc.want {
				t.Fatalf("status=%d, want %d (body=%s)", rr.Code, tc.want, rr.Body.String())
			}
		})
	}

	// Nothing was recorded.
	rr := doJSON(t, srv, http.MethodGet, "/api/v1/transactions", "")
	if rr.Code != http.StatusOK || strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("ledger not empty after rejected inputs: %s", rr.Body.String())
	}
}

func TestListDisplayOrder(t *testing.T) {
	srv := newTestServer(t)
	for _, body := range []string{
		`{"kind":"outflow","category":"Food","amount":"25000"}`,
		`{"kind":"inflow","category":"Salary","amount":"500000"}`,
	} {
		if rr := doJSON(t, srv, http.MethodPost, "/api/v1/transactions", body); rr.Code != http.StatusCreated {
			t.Fatalf("create status=%d", rr.Code)
		}
	}

	rr := doJSON(t, srv, http.MethodGet, "/api/v1/transactions", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list status=%d", rr.Code)
	}
	var views []struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(views) != 2 || views[0].Category != "Salary" || views[1].Category != "Food" {
		t.Fatalf("display order wrong: %+v", views)
	}
}

func TestStatisticsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/api/v1/transactions", `{"kind":"outflow","category":"Food","amount":"25000"}`)
	doJSON(t, srv, http.MethodPost, "/api/v1/transactions", `{"kind":"inflow","category":"Salary","amount":"500000","note":"March"}`)

	rr := doJSON(t, srv, http.MethodGet, "/api/v1/statistics", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("statistics status=%d", rr.Code)
	}
	var stats struct {
		Inflow  float64 `json:"inflow"`
		Outflow float64 `json:"outflow"`
		Balance float64 `json:"balance"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.Inflow != 500000 || stats.Outflow != 25000 || stats.Balance != 475000 {
		t.Fatalf("stats=%+v", stats)
	}
}

func TestDeleteByDisplayIndex(t *testing.T) {
	srv := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/api/v1/transactions", `{"kind":"outflow","category":"Food","amount":"25000"}`)
	doJSON(t, srv, http.MethodPost, "/api/v1/transactions", `{"kind":"inflow","category":"Salary","amount":"500000"}`)

	// Index 0 is the newest entry (Salary).
	rr := doJSON(t, srv, http.MethodDelete, "/api/v1/transactions/0", "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete status=%d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, srv, http.MethodGet, "/api/v1/transactions", "")
	var views []struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(views) != 1 || views[0].Category != "Food" {
		t.Fatalf("unexpected ledger after delete: %+v", views)
	}

	// Out of range and malformed indexes.
	if rr := doJSON(t, srv, http.MethodDelete, "/api/v1/transactions/5", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("out-of-range delete status=%d", rr.Code)
	}
	if rr := doJSON(t, srv, http.MethodDelete, "/api/v1/transactions/abc", ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("malformed index delete status=%d", rr.Code)
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rr := doJSON(t, srv, http.MethodGet, "/api/v1/categories?kind=outflow", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("categories status=%d", rr.Code)
	}
	var resp struct {
		Kind       string   `json:"kind"`
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode categories: %v", err)
	}
	if resp.Kind != "outflow" || len(resp.Categories) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if rr := doJSON(t, srv, http.MethodGet, "/api/v1/categories?kind=loan", ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("unknown kind status=%d", rr.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	cases := []struct{ method, path string }{
		{http.MethodPut, "/api/v1/transactions"},
		{http.MethodPost, "/api/v1/statistics"},
		{http.MethodPost, "/api/v1/categories"},
		{http.MethodGet, "/api/v1/transactions/0"},
	}
	for _, tc := range cases {
		if rr := doJSON(t, srv, tc.method, tc.path, ""); rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s %s status=%d, want 405", tc.method, tc.path, rr.Code)
		}
	}
}
