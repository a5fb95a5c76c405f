package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"findash/internal/core"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func txOn(t time.Time) core.Transaction {
	return core.Transaction{Date: t, Amount: decimal.NewFromInt(1)}
}

func TestWindowContains(t *testing.T) {
	w := Window{Start: day(2026, 3, 1), End: day(2026, 3, 31)}

	cases := []struct {
		at   time.Time
		want bool
	}{
		{day(2026, 3, 1), true},  // exactly at start
		{day(2026, 3, 31), true}, // exactly at end
		{day(2026, 3, 15), true},
		{day(2026, 2, 28), false},
		{day(2026, 4, 1), false},
	}
	for i, tc := range cases {
		if got := w.Contains(tc.at); got != tc.want {
			t.Fatalf("case %d: Contains(%v) = %v, want %v", i, tc.at, got, tc.want)
		}
	}
}

func TestWindowOpenBounds(t *testing.T) {
	onlyStart := Window{Start: day(2026, 3, 1)}
	if !onlyStart.Contains(day(2030, 1, 1)) {
		t.Fatal("open end should match far future")
	}
	if onlyStart.Contains(day(2026, 2, 28)) {
		t.Fatal("start bound should still apply")
	}

	onlyEnd := Window{End: day(2026, 3, 1)}
	if !onlyEnd.Contains(day(1999, 1, 1)) {
		t.Fatal("open start should match far past")
	}
	if onlyEnd.Contains(day(2026, 3, 2)) {
		t.Fatal("end bound should still apply")
	}
}

func TestFilterByWindow_NoBoundsReturnsAll(t *testing.T) {
	txs := []core.Transaction{txOn(day(2020, 1, 1)), txOn(day(2030, 1, 1))}
	got := FilterByWindow(txs, Window{})
	if len(got) != len(txs) {
		t.Fatalf("expected full ledger, got %d of %d", len(got), len(txs))
	}
}

func TestFilterByWindow_Inverted(t *testing.T) {
	txs := []core.Transaction{txOn(day(2026, 3, 15))}
	w := Window{Start: day(2026, 4, 1), End: day(2026, 3, 1)}
	if got := FilterByWindow(txs, w); len(got) != 0 {
		t.Fatalf("inverted window should match nothing, got %d", len(got))
	}
}

func TestMonthToDate(t *testing.T) {
	now := time.Date(2026, 8, 15, 13, 45, 0, 0, time.UTC)
	w := MonthToDate(now)

	if !w.Start.Equal(day(2026, 8, 1)) {
		t.Fatalf("start = %v, want first of month", w.Start)
	}
	if !w.End.Equal(now) {
		t.Fatalf("end = %v, want now", w.End)
	}
	if !w.Contains(day(2026, 8, 1)) {
		t.Fatal("first of month must be included")
	}
	if w.Contains(day(2026, 7, 31)) {
		t.Fatal("previous month must be excluded")
	}
}
