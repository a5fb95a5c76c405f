// Package mockdata synthesizes the ledger served by the application. The
// dataset is generated once at process start and never mutated afterwards.
package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"findash/internal/core"
	"findash/internal/ledger"
)

// Config controls dataset generation. A zero Seed picks a random one; tests
// pass a fixed seed and Now for reproducible ledgers.
type Config struct {
	Seed         int64
	TxPerAccount int
	Now          time.Time
}

const defaultTxPerAccount = 100

type accountTemplate struct {
	bank        string
	accountType core.AccountType
}

var accountTemplates = []accountTemplate{
	{bank: "CitiBank", accountType: core.AccountChecking},
	{bank: "American Express", accountType: core.AccountSavings},
	{bank: "Chase", accountType: core.AccountSavings},
	{bank: "Vanguard", accountType: core.AccountRothIRA},
	{bank: "Fidelity", accountType: core.Account401k},
	{bank: "Robinhood", accountType: core.AccountInvestment},
	{bank: "Coinbase", accountType: core.AccountCrypto},
	{bank: "Chase", accountType: core.AccountMortgage},
	{bank: "American Express", accountType: core.AccountCreditCard},
	{bank: "Chase", accountType: core.AccountCreditCard},
}

var merchantsByCategory = map[string][]string{
	"Groceries":     {"Whole Foods", "Trader Joe's", "Safeway", "Kroger", "Costco"},
	"Dining":        {"Chipotle", "Panera", "Starbucks", "McDonald's", "Subway"},
	"Travel":        {"United Airlines", "Marriott", "Hilton", "Airbnb", "Hertz"},
	"Entertainment": {"Netflix", "Spotify", "AMC Theaters", "Steam", "PlayStation"},
	"Utilities":     {"PG&E", "Electric Co", "Water Utility", "Internet Provider"},
	"Rent":          {"Rent Payment", "Monthly Rent"},
	"Salary":        {"Direct Deposit - Employer", "Payroll Deposit"},
}

var tickers = []string{"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA", "NVDA"}
var coins = []string{"BTC", "ETH", "SOL", "USDC"}

// Generate builds a full ledger snapshot: one account per template, a batch
// of transactions per account, and the goal definitions wired to the
// generated accounts. Per-account batches are generated concurrently, each
// from its own seeded RNG so results stay deterministic for a given seed.
func Generate(cfg Config) (ledger.Snapshot, error) {
	if cfg.TxPerAccount == 0 {
		cfg.TxPerAccount = defaultTxPerAccount
	}
	if cfg.TxPerAccount < 0 {
		return ledger.Snapshot{}, fmt.Errorf("invalid transactions per account: %d", cfg.TxPerAccount)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()
	rng := rand.New(rand.NewSource(cfg.Seed))

	accounts := make([]core.Account, 0, len(accountTemplates))
	for i, tmpl := range accountTemplates {
		accounts = append(accounts, newAccount(rng, int64(i+1), tmpl))
	}

	perAccount := make([][]core.Transaction, len(accounts))
	var g errgroup.Group
	for i, acct := range accounts {
		i, acct := i, acct // per-iteration copies; required while building with Go < 1.22
		g.Go(func() error {
			accountRNG := rand.New(rand.NewSource(cfg.Seed + acct.ID))
			perAccount[i] = accountTransactions(accountRNG, acct, cfg.TxPerAccount, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ledger.Snapshot{}, err
	}

	var txs []core.Transaction
	var nextID int64 = 1
	for _, batch := range perAccount {
		for _, t := range batch {
			t.ID = nextID
			nextID++
			txs = append(txs, t)
		}
	}

	return ledger.Snapshot{
		Accounts:     accounts,
		Transactions: txs,
		Goals:        goalDefinitions(accounts, now),
	}, nil
}

func newAccount(rng *rand.Rand, id int64, tmpl accountTemplate) core.Account {
	var balance decimal.Decimal
	switch tmpl.accountType {
	case core.AccountMortgage:
		balance = randAmount(rng, 400000, 500000).Neg()
	case core.AccountCreditCard:
		balance = randAmount(rng, 0, 2000).Neg()
	case core.AccountInvestment:
		balance = randAmount(rng, 0, 5000)
	default:
		balance = randAmount(rng, 0, 10000)
	}

	return core.Account{
		ID:          id,
		Bank:        tmpl.bank,
		AccountType: tmpl.accountType,
		Nickname:    tmpl.bank + " " + string(tmpl.accountType),
		Last4:       fmt.Sprintf("%04d", rng.Intn(10000)),
		Balance:     balance,
	}
}

func accountTransactions(rng *rand.Rand, acct core.Account, count int, now time.Time) []core.Transaction {
	out := make([]core.Transaction, 0, count)
	for i := 0; i < count; i++ {
		category := pick(rng, categoriesFor(acct.AccountType))
		amount := txAmount(rng, acct.AccountType)
		desc := description(rng, acct.AccountType, category)

		t := core.Transaction{
			AccountID:    acct.ID,
			Date:         randDate(rng, now),
			Description:  desc,
			Category:     category,
			Amount:       amount,
			Status:       weightedStatus(rng),
			TransferType: transferType(rng, acct.AccountType, category),
			Payee:        desc,
		}
		// Occasional optional fields to keep the table interesting.
		if rng.Intn(5) == 0 {
			t.Destination = acct.Nickname
		}
		if rng.Intn(10) == 0 {
			t.Notes = "Recurring"
		}
		out = append(out, t)
	}
	return out
}

func categoriesFor(t core.AccountType) []string {
	switch t {
	case core.AccountChecking, core.AccountSavings:
		return []string{"Groceries", "Dining", "Rent", "Salary"}
	case core.AccountCreditCard:
		return []string{"Groceries", "Dining", "Travel", "Entertainment", "Utilities"}
	case core.AccountInvestment:
		return []string{"Investment Contribution", "Dividend"}
	case core.AccountRothIRA, core.Account401k:
		return []string{"Retirement Contribution", "Dividend"}
	case core.AccountCrypto:
		return []string{"Crypto Trade", "Investment Contribution"}
	case core.AccountMortgage:
		return []string{"Mortgage Payment", "Interest"}
	default:
		return []string{"Groceries", "Dining", "Travel", "Rent", "Entertainment",
			"Utilities", "Investment Contribution", "Retirement Contribution",
			"Salary", "Dividend", "Crypto Trade", "Mortgage Payment", "Interest"}
	}
}

func description(rng *rand.Rand, t core.AccountType, category string) string {
	switch t {
	case core.AccountMortgage:
		return "Monthly mortgage payment"
	case core.AccountCrypto:
		return pick(rng, coins) + " Trade"
	case core.AccountInvestment:
		return pick(rng, []string{"Buy", "Sell", "Dividend"}) + " " + pick(rng, tickers)
	case core.AccountRothIRA, core.Account401k:
		return "Automatic contribution"
	}
	if merchants, ok := merchantsByCategory[category]; ok {
		return pick(rng, merchants)
	}
	return "Generic Merchant"
}

func txAmount(rng *rand.Rand, t core.AccountType) decimal.Decimal {
	switch t {
	case core.AccountMortgage:
		return randAmount(rng, 1500, 4000).Neg()
	case core.AccountCreditCard:
		return randAmount(rng, 50, 1500).Neg()
	case core.AccountInvestment, core.AccountRothIRA, core.Account401k:
		return randSignedAmount(rng, -5000, 5000)
	default:
		return randSignedAmount(rng, -500, 5000)
	}
}

// weightedStatus mirrors the 85/10/3/2 Complete/Pending/Canceled/Declined
// distribution of the source dataset.
func weightedStatus(rng *rand.Rand) core.TransactionStatus {
	switch roll := rng.Intn(100); {
	case roll < 85:
		return core.StatusComplete
	case roll < 95:
		return core.StatusPending
	case roll < 98:
		return core.StatusCanceled
	default:
		return core.StatusDeclined
	}
}

func transferType(rng *rand.Rand, t core.AccountType, category string) core.TransferType {
	switch t {
	case core.AccountCreditCard:
		return core.TransferCreditCard
	case core.AccountMortgage:
		return core.TransferACH
	case core.AccountInvestment, core.AccountRothIRA, core.Account401k, core.AccountCrypto:
		return pick(rng, []core.TransferType{core.TransferACH, core.TransferWire})
	}
	if category == "Salary" {
		return core.TransferDirectDeposit
	}
	return pick(rng, []core.TransferType{
		core.TransferDebitCard, core.TransferACH, core.TransferCheck,
		core.TransferCash, core.TransferMobilePayment,
	})
}

// randDate spreads transactions over the trailing year so month-to-date
// windows always have data, unlike the source's fixed 2025 range.
func randDate(rng *rand.Rand, now time.Time) time.Time {
	start := now.AddDate(-1, 0, 0)
	span := now.Unix() - start.Unix()
	return time.Unix(start.Unix()+rng.Int63n(span), 0).UTC()
}

func randAmount(rng *rand.Rand, min, max int64) decimal.Decimal {
	minCents := min * 100
	maxCents := max * 100
	return decimal.New(minCents+rng.Int63n(maxCents-minCents+1), -2)
}

func randSignedAmount(rng *rand.Rand, min, max int64) decimal.Decimal {
	return randAmount(rng, 0, max-min).Add(decimal.NewFromInt(min))
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// goalDefinitions wires the static goals to the generated accounts. IDs in
// accountTemplates are stable, so lookups by type are deterministic.
func goalDefinitions(accounts []core.Account, now time.Time) []core.Goal {
	endOfYear := time.Date(now.Year(), 12, 31, 0, 0, 0, 0, time.UTC)
	endOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)

	savingsID := firstAccountID(accounts, core.AccountSavings)
	investmentID := firstAccountID(accounts, core.AccountInvestment)
	creditCardID := firstAccountID(accounts, core.AccountCreditCard)
	mortgageID := firstAccountID(accounts, core.AccountMortgage)

	return []core.Goal{
		{
			ID: 1, Name: "Emergency Fund", Type: core.GoalSavings,
			TargetAmount: decimal.NewFromInt(10000),
			AccountID:    savingsID, Deadline: &endOfYear,
			Color: "green", Icon: "piggy-bank", Featured: true,
		},
		{
			ID: 2, Name: "Dining Budget", Type: core.GoalSpendingLimit,
			TargetAmount: decimal.NewFromInt(500),
			Category:     "Dining", Deadline: &endOfMonth,
			Color: "orange", Icon: "utensils", Featured: true,
		},
		{
			ID: 3, Name: "Groceries Budget", Type: core.GoalSpendingLimit,
			TargetAmount: decimal.NewFromInt(800),
			Category:     "Groceries", Deadline: &endOfMonth,
			Color: "teal", Icon: "shopping-cart",
		},
		{
			ID: 4, Name: "Pay Down Credit Card", Type: core.GoalDebtPayoff,
			TargetAmount: decimal.NewFromInt(2000),
			AccountID:    creditCardID,
			Color:        "blue", Icon: "credit-card", Featured: true,
		},
		{
			ID: 5, Name: "Mortgage Paydown", Type: core.GoalDebtPayoff,
			TargetAmount: decimal.NewFromInt(30000),
			AccountID:    mortgageID, Deadline: &endOfYear,
			Color: "purple", Icon: "home",
		},
		{
			ID: 6, Name: "Brokerage Growth", Type: core.GoalInvestment,
			TargetAmount: decimal.NewFromInt(5000),
			AccountID:    investmentID,
			Color:        "pink", Icon: "trending-up", Featured: true,
		},
	}
}

func firstAccountID(accounts []core.Account, t core.AccountType) *int64 {
	for _, a := range accounts {
		if a.AccountType == t {
			id := a.ID
			return &id
		}
	}
	return nil
}
