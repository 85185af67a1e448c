// Package ledger implements the in-memory account and transaction store.
// The Store is the single owner of both collections; balance mutation and
// log appends only happen inside WithTransfer.
package ledger

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"transfer-ledger/internal/domain"
	"transfer-ledger/internal/errors"
)

type Store struct {
	mu           sync.RWMutex
	accounts     map[string]*domain.Account
	transactions []domain.Transaction
	logger       *slog.Logger
}

// NewStore creates an empty Store instance
func NewStore(logger *slog.Logger) *Store {
	return &Store{
		accounts: make(map[string]*domain.Account),
		logger:   logger,
	}
}

// CreateAccount registers a new account. Used at startup to install the
// seed set; accounts are never created through the transfer path.
func (s *Store) CreateAccount(account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.ID]; exists {
		s.logger.Warn("Duplicate account creation attempt", "account_id", account.ID)
		return errors.ErrDuplicateAccount
	}

	cp := *account
	s.accounts[account.ID] = &cp
	return nil
}

// GetAccount returns a copy of the account, so callers cannot reach the
// store's internal state.
func (s *Store) GetAccount(id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, errors.ErrAccountNotFound
	}

	cp := *account
	return &cp, nil
}

// ListTransactions returns the full log, most recent first.
func (s *Store) ListTransactions() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Transaction, len(s.transactions))
	copy(out, s.transactions)
	sortByTimestampDesc(out)
	return out
}

// ListTransactionsForAccount returns the transactions where the account is
// either side of the transfer, most recent first.
func (s *Store) ListTransactionsForAccount(id string) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.FromAccountID == id || tx.ToAccountID == id {
			out = append(out, tx)
		}
	}
	sortByTimestampDesc(out)
	return out
}

// Statement returns the account together with its transactions. Both sides
// are read under the same lock, so the pair always reflects the same set of
// completed transfers.
func (s *Store) Statement(id string) (*domain.Account, []domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, nil, errors.ErrAccountNotFound
	}
	cp := *account

	txs := make([]domain.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.FromAccountID == id || tx.ToAccountID == id {
			txs = append(txs, tx)
		}
	}
	sortByTimestampDesc(txs)
	return &cp, txs, nil
}

// WithTransfer executes fn against a staged view of the store while holding
// the write lock. Staged balance updates and log appends are applied only if
// fn returns nil, so a failed transfer leaves no partial state behind.
func (s *Store) WithTransfer(fn func(tx domain.LedgerTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &storeTx{
		store:    s,
		balances: make(map[string]decimal.Decimal),
	}

	if err := fn(tx); err != nil {
		return err
	}

	for id, balance := range tx.balances {
		s.accounts[id].Balance = balance
	}
	s.transactions = append(s.transactions, tx.appended...)

	return nil
}

// sortByTimestampDesc orders newest first; the stable sort keeps insertion
// order for equal timestamps.
func sortByTimestampDesc(txs []domain.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Timestamp.After(txs[j].Timestamp)
	})
}

// storeTx is the mutable view handed to WithTransfer callbacks. Writes are
// staged locally and folded into the store on success. The store's lock is
// already held for the lifetime of the view.
type storeTx struct {
	store    *Store
	balances map[string]decimal.Decimal
	appended []domain.Transaction
}

func (t *storeTx) GetAccount(id string) (*domain.Account, error) {
	account, ok := t.store.accounts[id]
	if !ok {
		return nil, errors.ErrAccountNotFound
	}

	cp := *account
	if balance, staged := t.balances[id]; staged {
		cp.Balance = balance
	}
	return &cp, nil
}

func (t *storeTx) UpdateBalance(id string, newBalance decimal.Decimal) error {
	if _, ok := t.store.accounts[id]; !ok {
		t.store.logger.Warn("No account found to update", "account_id", id)
		return errors.ErrAccountNotFound
	}

	t.balances[id] = newBalance
	return nil
}

func (t *storeTx) AddTransaction(tx *domain.Transaction) error {
	t.appended = append(t.appended, *tx)
	return nil
}
