package ledger

import (
	"context"
	"sync"

	"findash/internal/core"
)

const (
	DefaultAccountPageSize     = 10
	DefaultTransactionPageSize = 20
	maxPageSize                = 100
)

// Snapshot is the full generated dataset handed to the store at startup.
type Snapshot struct {
	Accounts     []core.Account
	Transactions []core.Transaction
	Goals        []core.Goal
}

// Page is the pagination envelope returned by list operations.
type Page[T any] struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Data     []T `json:"data"`
}

// AccountFilter narrows account listings. Zero values match everything.
type AccountFilter struct {
	AccountType core.AccountType
	Bank        string
	Page        int
	PageSize    int
}

// Store holds the in-memory ledger. It is populated once and read-only
// afterwards; all reads copy out so callers can never mutate the snapshot.
type Store struct {
	mu       sync.RWMutex
	accounts []core.Account
	byID     map[int64]core.Account
	txs      []core.Transaction
	goals    []core.Goal
}

func NewStore(snap Snapshot) *Store {
	s := &Store{
		accounts: append([]core.Account(nil), snap.Accounts...),
		txs:      append([]core.Transaction(nil), snap.Transactions...),
		goals:    append([]core.Goal(nil), snap.Goals...),
		byID:     make(map[int64]core.Account, len(snap.Accounts)),
	}
	for _, a := range s.accounts {
		s.byID[a.ID] = a
	}
	return s
}

// ListAccounts returns a paginated page of accounts matching the filter.
func (s *Store) ListAccounts(_ context.Context, f AccountFilter) (Page[core.Account], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]core.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		if f.AccountType != "" && a.AccountType != f.AccountType {
			continue
		}
		if f.Bank != "" && a.Bank != f.Bank {
			continue
		}
		matched = append(matched, a)
	}
	return paginate(matched, f.Page, f.PageSize, DefaultAccountPageSize), nil
}

// GetAccount returns the account with the given id. Missing accounts are not
// an error here: the goals engine degrades them to zero progress.
func (s *Store) GetAccount(_ context.Context, id int64) (core.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.byID[id]
	return a, ok
}

// ListTransactions returns all transactions inside the window. With a zero
// window the entire ledger is returned.
func (s *Store) ListTransactions(_ context.Context, w Window) ([]core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	filtered := FilterByWindow(s.txs, w)
	out := make([]core.Transaction, len(filtered))
	copy(out, filtered)
	return out, nil
}

// ListAccountTransactions returns a paginated page of one account's
// transactions, unwindowed.
func (s *Store) ListAccountTransactions(_ context.Context, accountID int64, page, pageSize int) (Page[core.Transaction], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]core.Transaction, 0, len(s.txs))
	for _, t := range s.txs {
		if t.AccountID == accountID {
			matched = append(matched, t)
		}
	}
	return paginate(matched, page, pageSize, DefaultTransactionPageSize), nil
}

// ListGoalDefinitions returns the static goal definitions.
func (s *Store) ListGoalDefinitions(_ context.Context) ([]core.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Goal, len(s.goals))
	copy(out, s.goals)
	return out, nil
}

func paginate[T any](items []T, page, pageSize, defaultSize int) Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	data := make([]T, end-start)
	copy(data, items[start:end])
	return Page[T]{
		Total:    len(items),
		Page:     page,
		PageSize: pageSize,
		Data:     data,
	}
}
