// Package goals computes goal progress from the transaction ledger.
//
// Progress is a per-request projection: nothing here is stored, and the same
// goal can report different progress for different date windows. Aggregation
// policy is dispatched on the goal type, which is a closed set; an unknown
// type is a contract violation and surfaces as an error rather than a zero.
package goals

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"findash/internal/core"
	"findash/internal/ledger"
)

// LedgerReader is the read-only slice of the ledger store the engine needs.
type LedgerReader interface {
	ListTransactions(ctx context.Context, w ledger.Window) ([]core.Transaction, error)
	GetAccount(ctx context.Context, id int64) (core.Account, bool)
	ListGoalDefinitions(ctx context.Context) ([]core.Goal, error)
}

// GoalProgress is a goal definition materialized with its computed current
// amount. Percent is reported unclamped so Spending Limit goals past their
// target can be flagged; use ClampedPercent for progress bars.
type GoalProgress struct {
	core.Goal
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Percent       decimal.Decimal `json:"percent"`
	OverBudget    bool            `json:"overBudget"`
}

var oneHundred = decimal.NewFromInt(100)

// ClampedPercent returns Percent limited to [0, 100] for display.
func (p GoalProgress) ClampedPercent() decimal.Decimal {
	if p.Percent.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if p.Percent.GreaterThan(oneHundred) {
		return oneHundred
	}
	return p.Percent
}

// Engine computes goal progress over a ledger snapshot.
type Engine struct {
	ledger LedgerReader
	now    func() time.Time
}

func NewEngine(l LedgerReader) *Engine {
	return &Engine{ledger: l, now: time.Now}
}

// Progress returns one progress record per goal definition, in definition
// order. With a zero window the engine defaults to month-to-date. The
// computation is pure over the snapshot: calling it twice with the same
// window yields identical results.
func (e *Engine) Progress(ctx context.Context, w ledger.Window) ([]GoalProgress, error) {
	if w.IsZero() {
		w = ledger.MonthToDate(e.now())
	}

	defs, err := e.ledger.ListGoalDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goal definitions: %w", err)
	}
	txs, err := e.ledger.ListTransactions(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	lookup := func(id int64) (core.Account, bool) {
		return e.ledger.GetAccount(ctx, id)
	}
	return ComputeProgress(defs, txs, lookup)
}

// ComputeProgress annotates each goal definition with its current amount
// computed from the already-windowed transactions. Definitions are never
// mutated; the output has the same order and count as the input.
func ComputeProgress(defs []core.Goal, txs []core.Transaction, account func(int64) (core.Account, bool)) ([]GoalProgress, error) {
	out := make([]GoalProgress, 0, len(defs))
	for _, g := range defs {
		current, err := currentAmount(g, txs, account)
		if err != nil {
			return nil, fmt.Errorf("goal %d (%s): %w", g.ID, g.Name, err)
		}

		percent := decimal.Zero
		if g.TargetAmount.IsPositive() {
			percent = current.Div(g.TargetAmount).Mul(oneHundred)
		}
		out = append(out, GoalProgress{
			Goal:          g,
			CurrentAmount: current,
			Percent:       percent,
			OverBudget:    g.Type == core.GoalSpendingLimit && percent.GreaterThan(oneHundred),
		})
	}
	return out, nil
}

// currentAmount applies the per-type aggregation policy. Missing scope
// fields and unknown accounts degrade to zero; only a goal type outside the
// closed set is an error.
func currentAmount(g core.Goal, txs []core.Transaction, account func(int64) (core.Account, bool)) (decimal.Decimal, error) {
	switch g.Type {
	case core.GoalSavings:
		// Account scope wins over category scope when both are set.
		switch {
		case g.AccountID != nil:
			return sumWhere(txs, func(t core.Transaction) bool {
				return t.AccountID == *g.AccountID && t.Amount.IsPositive()
			}), nil
		case g.Category != "":
			return sumWhere(txs, func(t core.Transaction) bool {
				return t.Category == g.Category && t.Amount.IsPositive()
			}), nil
		default:
			return decimal.Zero, nil
		}

	case core.GoalSpendingLimit:
		if g.Category == "" {
			return decimal.Zero, nil
		}
		return sumWhere(txs, func(t core.Transaction) bool {
			return t.Category == g.Category && t.Amount.IsNegative()
		}).Abs(), nil

	case core.GoalDebtPayoff:
		if g.AccountID == nil {
			return decimal.Zero, nil
		}
		return sumWhere(txs, func(t core.Transaction) bool {
			return t.AccountID == *g.AccountID && t.Amount.IsNegative()
		}).Abs(), nil

	case core.GoalInvestment:
		// Point-in-time balance snapshot; the window does not apply.
		if g.AccountID == nil {
			return decimal.Zero, nil
		}
		acct, ok := account(*g.AccountID)
		if !ok {
			return decimal.Zero, nil
		}
		return acct.Balance, nil

	default:
		return decimal.Zero, fmt.Errorf("%w: %q", core.ErrUnknownGoalType, g.Type)
	}
}

func sumWhere(txs []core.Transaction, match func(core.Transaction) bool) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txs {
		if match(t) {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}
