package ledger

import (
	"time"

	"findash/internal/core"
)

// Window is an inclusive date range. A zero Start or End leaves that side
// open; the zero Window matches every transaction.
type Window struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether no bounds were supplied at all.
func (w Window) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// Contains reports whether t falls inside the window. Both bounds are
// inclusive: a transaction dated exactly at Start or End counts.
func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && t.After(w.End) {
		return false
	}
	return true
}

// MonthToDate returns the window from the first day of now's calendar month
// through now. This is the goals engine's default; the transaction listing
// deliberately defaults to the whole ledger instead.
func MonthToDate(now time.Time) Window {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Window{Start: start, End: now}
}

// FilterByWindow returns the transactions whose date falls inside w. With no
// bounds the input is returned unfiltered. An inverted window (End before
// Start) is not an error; it simply matches nothing.
func FilterByWindow(txs []core.Transaction, w Window) []core.Transaction {
	if w.IsZero() {
		return txs
	}
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if w.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}
