package mockdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findash/internal/core"
)

var fixedNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func TestGenerate_Shape(t *testing.T) {
	snap, err := Generate(Config{Seed: 42, TxPerAccount: 25, Now: fixedNow})
	require.NoError(t, err)

	require.Len(t, snap.Accounts, len(accountTemplates))
	require.Len(t, snap.Transactions, 25*len(accountTemplates))
	require.NotEmpty(t, snap.Goals)

	seenTx := make(map[int64]bool)
	for _, tr := range snap.Transactions {
		require.NoError(t, tr.Validate())
		assert.False(t, seenTx[tr.ID], "duplicate transaction id %d", tr.ID)
		seenTx[tr.ID] = true
	}

	seenAcct := make(map[int64]bool)
	for _, a := range snap.Accounts {
		require.NoError(t, a.Validate())
		assert.False(t, seenAcct[a.ID], "duplicate account id %d", a.ID)
		seenAcct[a.ID] = true
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := Config{Seed: 7, TxPerAccount: 10, Now: fixedNow}

	first, err := Generate(cfg)
	require.NoError(t, err)
	second, err := Generate(cfg)
	require.NoError(t, err)

	require.Len(t, second.Transactions, len(first.Transactions))
	for i := range first.Transactions {
		a, b := first.Transactions[i], second.Transactions[i]
		assert.Equal(t, a.ID, b.ID)
		assert.Equal(t, a.Description, b.Description)
		assert.True(t, a.Amount.Equal(b.Amount))
		assert.True(t, a.Date.Equal(b.Date))
	}
	for i := range first.Accounts {
		assert.True(t, first.Accounts[i].Balance.Equal(second.Accounts[i].Balance))
		assert.Equal(t, first.Accounts[i].Last4, second.Accounts[i].Last4)
	}
}

func TestGenerate_SignConventions(t *testing.T) {
	snap, err := Generate(Config{Seed: 1, TxPerAccount: 50, Now: fixedNow})
	require.NoError(t, err)

	byID := make(map[int64]core.Account)
	for _, a := range snap.Accounts {
		byID[a.ID] = a
		if a.AccountType.Liability() {
			assert.False(t, a.Balance.IsPositive(), "%s balance should not be positive", a.AccountType)
		}
	}

	for _, tr := range snap.Transactions {
		acct := byID[tr.AccountID]
		switch acct.AccountType {
		case core.AccountMortgage, core.AccountCreditCard:
			assert.True(t, tr.Amount.IsNegative(), "%s transactions are outflows, got %s", acct.AccountType, tr.Amount)
		}
		assert.True(t, tr.Date.After(fixedNow.AddDate(-1, 0, -1)), "date too old: %v", tr.Date)
		assert.False(t, tr.Date.After(fixedNow), "date in the future: %v", tr.Date)
	}
}

func TestGenerate_GoalsReferenceRealAccounts(t *testing.T) {
	snap, err := Generate(Config{Seed: 3, TxPerAccount: 5, Now: fixedNow})
	require.NoError(t, err)

	byID := make(map[int64]core.Account)
	for _, a := range snap.Accounts {
		byID[a.ID] = a
	}

	for _, g := range snap.Goals {
		require.NoError(t, g.Validate())
		if g.AccountID != nil {
			_, ok := byID[*g.AccountID]
			assert.True(t, ok, "goal %q references unknown account %d", g.Name, *g.AccountID)
		}
		switch g.Type {
		case core.GoalDebtPayoff, core.GoalInvestment:
			assert.NotNil(t, g.AccountID, "goal %q must be account-scoped", g.Name)
		case core.GoalSavings, core.GoalSpendingLimit:
			assert.True(t, g.AccountID != nil || g.Category != "", "goal %q needs a scope", g.Name)
		}
	}
}
