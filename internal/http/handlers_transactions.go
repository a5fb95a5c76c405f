package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// handleTransactions serves the ledger. Without parameters the whole ledger
// is returned (this differs from the goals endpoint's month-to-date default
// on purpose). startDate/endDate narrow the list with inclusive bounds. An
// accountId switches to the paginated per-account listing instead.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if v := strings.TrimSpace(r.URL.Query().Get("accountId")); v != "" {
		accountID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid accountId: "+v)
			return
		}
		page, pageSize := parsePagination(r)
		res, err := s.store.ListAccountTransactions(r.Context(), accountID, page, pageSize)
		if err != nil {
			slog.ErrorContext(r.Context(), "Account transaction listing failed", "error", err, "account_id", accountID)
			writeError(w, http.StatusInternalServerError, "failed to list transactions")
			return
		}
		writeJSON(w, http.StatusOK, res)
		return
	}

	window, err := parseWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := windowKey(window)
	if txs, found := s.txCache.Get(key); found {
		slog.DebugContext(r.Context(), "Transactions cache hit", "window", key, "count", len(txs))
		writeJSON(w, http.StatusOK, txs)
		return
	}

	txs, err := s.store.ListTransactions(r.Context(), window)
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}

	s.txCache.Set(key, txs)
	writeJSON(w, http.StatusOK, txs)
}
