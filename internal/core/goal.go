package core

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	GoalSavings       GoalType = "Savings"
	GoalSpendingLimit GoalType = "Spending Limit"
	GoalDebtPayoff    GoalType = "Debt Payoff"
	GoalInvestment    GoalType = "Investment"
)

// GoalType drives the aggregation policy for a goal. The set is closed;
// anything else is a programming error, not user input.
type GoalType string

func (t GoalType) Valid() bool {
	switch t {
	case GoalSavings, GoalSpendingLimit, GoalDebtPayoff, GoalInvestment:
		return true
	}
	return false
}

// Goal is a static goal definition. The current amount is never part of the
// definition: it is a per-request projection computed by the goals engine
// from the ledger and a date window.
//
// Scope: Savings and Spending Limit goals are scoped by Category or
// AccountID; Debt Payoff and Investment goals by AccountID. A missing scope
// is not an error, it just yields zero progress.
type Goal struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Type         GoalType        `json:"type"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Deadline     *time.Time      `json:"deadline,omitempty"`
	Category     string          `json:"category,omitempty"`
	AccountID    *int64          `json:"accountId,omitempty"`
	Color        string          `json:"color,omitempty"`
	Icon         string          `json:"icon,omitempty"`
	Featured     bool            `json:"featured,omitempty"`
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if !g.Type.Valid() {
		return ErrUnknownGoalType
	}
	if !g.TargetAmount.IsPositive() {
		return ErrInvalidTarget
	}
	return nil
}
