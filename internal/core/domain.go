package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	AccountChecking   AccountType = "Checking"
	AccountSavings    AccountType = "Savings"
	AccountRothIRA    AccountType = "Roth IRA"
	Account401k       AccountType = "401k"
	AccountInvestment AccountType = "Investment"
	AccountCrypto     AccountType = "Crypto"
	AccountMortgage   AccountType = "Mortgage"
	AccountCreditCard AccountType = "Credit Card"
)

const (
	StatusComplete TransactionStatus = "Complete"
	StatusPending  TransactionStatus = "Pending"
	StatusCanceled TransactionStatus = "Canceled"
	StatusDeclined TransactionStatus = "Declined"
)

const (
	TransferACH           TransferType = "ACH"
	TransferWire          TransferType = "Wire"
	TransferCheck         TransferType = "Check"
	TransferDebitCard     TransferType = "Debit Card"
	TransferCreditCard    TransferType = "Credit Card"
	TransferCash          TransferType = "Cash"
	TransferMobilePayment TransferType = "Mobile Payment"
	TransferDirectDeposit TransferType = "Direct Deposit"
)

type (
	AccountType       string
	TransactionStatus string
	TransferType      string

	// Account is a bank account as generated at startup. Balances are
	// assigned independently of transaction history and never change.
	Account struct {
		ID          int64           `json:"id"`
		Bank        string          `json:"bank"`
		AccountType AccountType     `json:"accountType"`
		Nickname    string          `json:"nickname"`
		Last4       string          `json:"last4"`
		Balance     decimal.Decimal `json:"balance"`
	}

	// Transaction is a single ledger posting. Amount is signed: positive
	// for inflows (credits), negative for outflows (debits).
	Transaction struct {
		ID           int64             `json:"id"`
		AccountID    int64             `json:"accountId"`
		Date         time.Time         `json:"date"`
		Description  string            `json:"description"`
		Category     string            `json:"category"`
		Amount       decimal.Decimal   `json:"amount"`
		Status       TransactionStatus `json:"status"`
		TransferType TransferType      `json:"transferType"`
		Destination  string            `json:"destination,omitempty"`
		Payee        string            `json:"payee,omitempty"`
		Notes        string            `json:"notes,omitempty"`
	}
)

var (
	ErrEmptyName          = errors.New("empty name")
	ErrInvalidTarget      = errors.New("target amount must be positive")
	ErrUnknownGoalType    = errors.New("unknown goal type")
	ErrUnknownAccountType = errors.New("unknown account type")
)

func (t AccountType) Valid() bool {
	switch t {
	case AccountChecking, AccountSavings, AccountRothIRA, Account401k,
		AccountInvestment, AccountCrypto, AccountMortgage, AccountCreditCard:
		return true
	}
	return false
}

// Liability reports whether balances for this account type are carried as
// negative amounts.
func (t AccountType) Liability() bool {
	return t == AccountMortgage || t == AccountCreditCard
}

func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusComplete, StatusPending, StatusCanceled, StatusDeclined:
		return true
	}
	return false
}

func (t TransferType) Valid() bool {
	switch t {
	case TransferACH, TransferWire, TransferCheck, TransferDebitCard,
		TransferCreditCard, TransferCash, TransferMobilePayment, TransferDirectDeposit:
		return true
	}
	return false
}

func (a Account) Validate() error {
	if !a.AccountType.Valid() {
		return ErrUnknownAccountType
	}
	if strings.TrimSpace(a.Nickname) == "" {
		return ErrEmptyName
	}
	if len(a.Last4) != 4 {
		return errors.New("last4 must be a 4-digit string")
	}
	return nil
}

func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return errors.New("date cannot be zero")
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return errors.New("empty description")
	}
	if !t.Status.Valid() {
		return errors.New("unknown transaction status")
	}
	if !t.TransferType.Valid() {
		return errors.New("unknown transfer type")
	}
	return nil
}
