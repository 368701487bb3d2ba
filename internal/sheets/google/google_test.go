package google

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	ports "finai/internal/sheets"
)

type appendCall struct {
	path   string
	values [][]any
}

func newFakeSheets(t *testing.T) (*Client, *[]appendCall) {
	t.Helper()
	var (
		mu    sync.Mutex
		calls []appendCall
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var vr gsheet.ValueRange
		if err := json.NewDecoder(r.Body).Decode(&vr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mu.Lock()
		calls = append(calls, appendCall{path: r.URL.Path, values: vr.Values})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"updates": map[string]any{"updatedRange": "Sheet!A2:F2"},
		})
	}))
	t.Cleanup(srv.Close)

	svc, err := gsheet.NewService(context.Background(),
		goption.WithEndpoint(srv.URL+"/"),
		goption.WithoutAuthentication(),
		goption.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return newWithService(svc, Options{SpreadsheetID: "sheet-id"}), &calls
}

func TestNew_MissingSpreadsheetID(t *testing.T) {
	if _, err := New(context.Background(), Options{}); err == nil {
		t.Fatal("expected error for missing spreadsheet id")
	}
}

func TestNew_MissingCredentials(t *testing.T) {
	for _, k := range []string{"GOOGLE_SERVICE_ACCOUNT_JSON", "GOOGLE_SERVICE_ACCOUNT_FILE", "GOOGLE_APPLICATION_CREDENTIALS"} {
		t.Setenv(k, "")
	}
	_, err := New(context.Background(), Options{SpreadsheetID: "id"})
	if err == nil || !strings.Contains(err.Error(), "missing service account credentials") {
		t.Fatalf("expected missing credentials error, got %v", err)
	}
}

func TestNew_InvalidCredentialsJSON(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "not-json")
	_, err := New(context.Background(), Options{SpreadsheetID: "id"})
	if err == nil || !strings.Contains(err.Error(), "parse service account credentials") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestNew_CredentialsFileMissing(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_FILE", "/nonexistent/creds.json")
	_, err := New(context.Background(), Options{SpreadsheetID: "id"})
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestClient_AppendExpense(t *testing.T) {
	c, calls := newFakeSheets(t)

	ref, err := c.AppendExpense(context.Background(), ports.ExpenseRow{
		ID: "exp-1", Date: "2024-03-01", Category: "Food", Description: "Groceries", Amount: 500,
	})
	if err != nil {
		t.Fatalf("AppendExpense: %v", err)
	}
	if ref != "Sheet!A2:F2" {
		t.Errorf("unexpected ref %q", ref)
	}
	if len(*calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(*calls))
	}
	call := (*calls)[0]
	if !strings.Contains(call.path, "/v4/spreadsheets/sheet-id/values/") || !strings.HasSuffix(call.path, ":append") {
		t.Errorf("unexpected request path %q", call.path)
	}
	if !strings.Contains(call.path, "2024 Expenses") {
		t.Errorf("expected the 2024 expenses sheet, got %q", call.path)
	}
	row := call.values[0]
	if len(row) != 5 || row[1] != "Food" || row[3] != float64(500) || row[4] != "exp-1" {
		t.Errorf("unexpected row %v", row)
	}
}

func TestClient_AppendInvestment(t *testing.T) {
	c, calls := newFakeSheets(t)

	_, err := c.AppendInvestment(context.Background(), ports.InvestmentRow{
		ID: "inv-3", Date: "2025-01-10", Name: "Small Cap Mutual Funds", Tier: "high", Amount: 10000, ReturnRate: 15,
	})
	if err != nil {
		t.Fatalf("AppendInvestment: %v", err)
	}
	if !strings.Contains((*calls)[0].path, "2025 Investments") {
		t.Errorf("expected the 2025 investments sheet, got %q", (*calls)[0].path)
	}
}

func TestClient_RejectsInvalidRow(t *testing.T) {
	c := &Client{spreadsheetID: "test"}
	_, err := c.AppendExpense(context.Background(), ports.ExpenseRow{ID: "exp-1", Date: "2024-03-01", Category: "Food"})
	if !errors.Is(err, ports.ErrInvalidRow) {
		t.Fatalf("expected ErrInvalidRow, got %v", err)
	}
}

func TestClient_NilService(t *testing.T) {
	c := &Client{spreadsheetID: "test", expensesSheet: "Expenses"}
	_, err := c.AppendExpense(context.Background(), ports.ExpenseRow{ID: "exp-1", Date: "2024-03-01", Category: "Food", Amount: 1})
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("expected not initialized error, got %v", err)
	}
}

func TestYearPrefixedName(t *testing.T) {
	tests := []struct {
		baseName string
		year     int
		expected string
	}{
		{"Expenses", 2025, "2025 Expenses"},
		{"Investments", 2024, "2024 Investments"},
		{"", 2023, ""},
		{"Test Sheet", 2022, "2022 Test Sheet"},
		{"2025 Already Prefixed", 2024, "2025 Already Prefixed"},
	}

	for _, tt := range tests {
		got := yearPrefixedName(tt.baseName, tt.year)
		if got != tt.expected {
			t.Errorf("yearPrefixedName(%q, %d) = %q, want %q",
				tt.baseName, tt.year, got, tt.expected)
		}
	}
}

func TestDefaultSheetNames(t *testing.T) {
	c := newWithService(nil, Options{SpreadsheetID: " id "})
	if c.expensesSheet != "Expenses" || c.investmentsSheet != "Investments" || c.spreadsheetID != "id" {
		t.Errorf("unexpected defaults: %+v", c)
	}
}
