package domain

import (
	"github.com/shopspring/decimal"
)

// Ledger is the single source of truth for accounts and the transaction log.
// The service layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_ledger.go -source=ledger.go Ledger
type Ledger interface {
	GetAccount(id string) (*Account, error)
	ListTransactions() []Transaction
	ListTransactionsForAccount(id string) []Transaction

	// Statement reads the account and its transactions as one consistent
	// snapshot: a transfer committing concurrently is either reflected in
	// both the balance and the list, or in neither.
	Statement(id string) (*Account, []Transaction, error)

	// WithTransfer runs fn against a mutable view of the ledger under
	// exclusive access. Writes made through the view become visible only
	// if fn returns nil; any error discards them all.
	WithTransfer(fn func(tx LedgerTx) error) error
}

// LedgerTx exposes the mutation operations available inside WithTransfer.
// Only the transfer service may drive these.
type LedgerTx interface {
	GetAccount(id string) (*Account, error)
	UpdateBalance(id string, newBalance decimal.Decimal) error
	AddTransaction(tx *Transaction) error
}
