package core

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestGoalTypeValid(t *testing.T) {
	valid := []GoalType{GoalSavings, GoalSpendingLimit, GoalDebtPayoff, GoalInvestment}
	for _, gt := range valid {
		if !gt.Valid() {
			t.Fatalf("%q should be valid", gt)
		}
	}
	for _, gt := range []GoalType{"", "savings", "Lottery"} {
		if gt.Valid() {
			t.Fatalf("%q should be invalid", gt)
		}
	}
}

func TestGoalValidate(t *testing.T) {
	good := Goal{ID: 1, Name: "Emergency Fund", Type: GoalSavings, TargetAmount: decimal.NewFromInt(100)}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		g    Goal
		want error
	}{
		{Goal{Name: "", Type: GoalSavings, TargetAmount: decimal.NewFromInt(1)}, ErrEmptyName},
		{Goal{Name: "x", Type: "Lottery", TargetAmount: decimal.NewFromInt(1)}, ErrUnknownGoalType},
		{Goal{Name: "x", Type: GoalSavings, TargetAmount: decimal.Zero}, ErrInvalidTarget},
		{Goal{Name: "x", Type: GoalSavings, TargetAmount: decimal.NewFromInt(-5)}, ErrInvalidTarget},
	}
	for i, tc := range cases {
		if err := tc.g.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("case %d: got %v, want %v", i, err, tc.want)
		}
	}
}

func TestAccountTypeLiability(t *testing.T) {
	if !AccountMortgage.Liability() || !AccountCreditCard.Liability() {
		t.Fatal("mortgage and credit card are liabilities")
	}
	if AccountChecking.Liability() || AccountInvestment.Liability() {
		t.Fatal("asset accounts are not liabilities")
	}
}

func TestAccountValidate(t *testing.T) {
	good := Account{ID: 1, Bank: "Chase", AccountType: AccountSavings, Nickname: "Chase Savings", Last4: "1234"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Account{
		{AccountType: "Piggy Bank", Nickname: "x", Last4: "1234"},
		{AccountType: AccountSavings, Nickname: " ", Last4: "1234"},
		{AccountType: AccountSavings, Nickname: "x", Last4: "123"},
	}
	for i, a := range bads {
		if err := a.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		ID:           1,
		AccountID:    1,
		Date:         time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Description:  "Whole Foods",
		Category:     "Groceries",
		Amount:       decimal.NewFromInt(-42),
		Status:       StatusComplete,
		TransferType: TransferDebitCard,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Description: "x", Status: StatusComplete, TransferType: TransferACH}, // zero date
		{Date: good.Date, Description: "", Status: StatusComplete, TransferType: TransferACH},
		{Date: good.Date, Description: "x", Status: "Maybe", TransferType: TransferACH},
		{Date: good.Date, Description: "x", Status: StatusComplete, TransferType: "Carrier Pigeon"},
	}
	for i, tr := range bads {
		if err := tr.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
