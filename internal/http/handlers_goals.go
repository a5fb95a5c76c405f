package http

import (
	"log/slog"
	"net/http"
)

// handleGoals runs the goal progress engine for the requested window and
// returns one annotated record per goal definition. Without parameters the
// engine defaults to month-to-date.
func (s *Server) handleGoals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	window, err := parseWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Month-to-date keys change as "now" moves; the short cache TTL keeps
	// the default window fresh enough.
	key := windowKey(window)
	if progress, found := s.goalsCache.Get(key); found {
		slog.DebugContext(r.Context(), "Goals cache hit", "window", key)
		writeJSON(w, http.StatusOK, progress)
		return
	}

	progress, err := s.engine.Progress(r.Context(), window)
	if err != nil {
		// An unknown goal type is a bug in the dataset, not a bad request.
		slog.ErrorContext(r.Context(), "Goal progress computation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute goal progress")
		return
	}

	s.goalsCache.Set(key, progress)
	writeJSON(w, http.StatusOK, progress)
}
