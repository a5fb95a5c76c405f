package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"findash/internal/core"
	"findash/internal/goals"
	"findash/internal/ledger"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	acctID := int64(2)
	snap := ledger.Snapshot{
		Accounts: []core.Account{
			{ID: 1, Bank: "CitiBank", AccountType: core.AccountChecking, Nickname: "CitiBank Checking", Last4: "1111", Balance: decimal.NewFromInt(500)},
			{ID: 2, Bank: "Robinhood", AccountType: core.AccountInvestment, Nickname: "Robinhood Investment", Last4: "2222", Balance: decimal.NewFromInt(12000)},
		},
		Transactions: []core.Transaction{
			{ID: 1, AccountID: 1, Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Description: "Payroll Deposit", Category: "Salary", Amount: decimal.NewFromInt(3000), Status: core.StatusComplete, TransferType: core.TransferDirectDeposit},
			{ID: 2, AccountID: 1, Date: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), Description: "Chipotle", Category: "Dining", Amount: decimal.NewFromInt(-40), Status: core.StatusComplete, TransferType: core.TransferDebitCard},
			{ID: 3, AccountID: 1, Date: time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC), Description: "Starbucks", Category: "Dining", Amount: decimal.NewFromInt(-60), Status: core.StatusComplete, TransferType: core.TransferDebitCard},
		},
		Goals: []core.Goal{
			{ID: 1, Name: "Brokerage Growth", Type: core.GoalInvestment, TargetAmount: decimal.NewFromInt(5000), AccountID: &acctID},
		},
	}
	store := ledger.NewStore(snap)
	srv := NewServer(":0", store, goals.NewEngine(store), Options{})
	t.Cleanup(func() {
		srv.cacheMgr.Stop()
		srv.rateLimiter.stop()
	})
	return srv
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{"/healthz", "/readyz"} {
		if rr := get(t, srv, path); rr.Code != http.StatusOK {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}
}

func TestAccountsEnvelope(t *testing.T) {
	srv := newTestServer(t)

	rr := get(t, srv, "/api/accounts?pageSize=1")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}

	var page struct {
		Total    int               `json:"total"`
		Page     int               `json:"page"`
		PageSize int               `json:"pageSize"`
		Data     []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Total != 2 || page.PageSize != 1 || len(page.Data) != 1 {
		t.Fatalf("unexpected envelope: %+v", page)
	}
}

func TestAccountsUnknownTypeRejected(t *testing.T) {
	srv := newTestServer(t)
	if rr := get(t, srv, "/api/accounts?accountType=PiggyBank"); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestTransactionsWindow(t *testing.T) {
	srv := newTestServer(t)

	all := get(t, srv, "/api/transactions")
	var txs []core.Transaction
	if err := json.Unmarshal(all.Body.Bytes(), &txs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("no bounds should return whole ledger, got %d", len(txs))
	}

	windowed := get(t, srv, "/api/transactions?startDate=2026-08-01&endDate=2026-08-01")
	txs = nil
	if err := json.Unmarshal(windowed.Body.Bytes(), &txs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(txs) != 1 || txs[0].ID != 1 {
		t.Fatalf("inclusive start-date bound expected tx 1, got %+v", txs)
	}
}

func TestTransactionsBadDate(t *testing.T) {
	srv := newTestServer(t)
	if rr := get(t, srv, "/api/transactions?startDate=yesterday"); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestTransactionsByAccount(t *testing.T) {
	srv := newTestServer(t)

	rr := get(t, srv, "/api/transactions?accountId=1&pageSize=2")
	var page struct {
		Total int                `json:"total"`
		Data  []core.Transaction `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Total != 3 || len(page.Data) != 2 {
		t.Fatalf("unexpected envelope: %+v", page)
	}
	for _, tr := range page.Data {
		if tr.AccountID != 1 {
			t.Fatalf("transaction %d belongs to account %d", tr.ID, tr.AccountID)
		}
	}
}

func TestGoalsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rr := get(t, srv, "/api/goals?startDate=2026-08-01&endDate=2026-08-31")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}

	var progress []goals.GoalProgress
	if err := json.Unmarshal(rr.Body.Bytes(), &progress); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(progress) != 1 {
		t.Fatalf("expected one goal, got %d", len(progress))
	}
	if !progress[0].CurrentAmount.Equal(decimal.NewFromInt(12000)) {
		t.Fatalf("investment goal should report the balance snapshot, got %s", progress[0].CurrentAmount)
	}

	// Second request must be served from cache with identical content.
	again := get(t, srv, "/api/goals?startDate=2026-08-01&endDate=2026-08-31")
	if again.Body.String() != rr.Body.String() {
		t.Fatal("cached response differs from first response")
	}
}

func TestGoalsBadDate(t *testing.T) {
	srv := newTestServer(t)
	if rr := get(t, srv, "/api/goals?endDate=31-12-2026"); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/goals", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}
