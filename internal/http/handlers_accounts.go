package http

import (
	"log/slog"
	"net/http"
	"strings"

	"findash/internal/core"
	"findash/internal/ledger"
)

// handleAccounts lists accounts as a pagination envelope, optionally
// filtered by accountType and bank.
func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	filter := ledger.AccountFilter{
		Bank: strings.TrimSpace(r.URL.Query().Get("bank")),
	}
	filter.Page, filter.PageSize = parsePagination(r)

	if v := strings.TrimSpace(r.URL.Query().Get("accountType")); v != "" {
		t := core.AccountType(v)
		if !t.Valid() {
			writeError(w, http.StatusBadRequest, "unknown accountType: "+v)
			return
		}
		filter.AccountType = t
	}

	page, err := s.store.ListAccounts(r.Context(), filter)
	if err != nil {
		slog.ErrorContext(r.Context(), "Account listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list accounts")
		return
	}
	writeJSON(w, http.StatusOK, page)
}
