package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"findash/internal/ledger"
)

const dateLayout = "2006-01-02"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// parseWindow extracts the optional startDate/endDate query parameters as an
// inclusive window. Absent parameters leave their side of the window open;
// the engine and the transaction listing apply their own defaults.
func parseWindow(r *http.Request) (ledger.Window, error) {
	var w ledger.Window

	if v := strings.TrimSpace(r.URL.Query().Get("startDate")); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return ledger.Window{}, fmt.Errorf("invalid startDate %q: expected YYYY-MM-DD", v)
		}
		w.Start = t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("endDate")); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return ledger.Window{}, fmt.Errorf("invalid endDate %q: expected YYYY-MM-DD", v)
		}
		// End of the named day, so the bound stays inclusive for
		// intraday timestamps.
		w.End = t.Add(24*time.Hour - time.Nanosecond)
	}
	return w, nil
}

// parsePagination extracts page/pageSize query parameters; zero values mean
// "use the store default".
func parsePagination(r *http.Request) (page, pageSize int) {
	if v := strings.TrimSpace(r.URL.Query().Get("page")); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			page = p
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("pageSize")); v != "" {
		if ps, err := strconv.Atoi(v); err == nil {
			pageSize = ps
		}
	}
	return page, pageSize
}

// windowKey builds a cache key for a window. The zero window keys as "all".
func windowKey(w ledger.Window) string {
	if w.IsZero() {
		return "all"
	}
	return w.Start.Format(time.RFC3339) + "|" + w.End.Format(time.RFC3339)
}
