package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// DefaultDescription is used when a transfer request carries no description.
const DefaultDescription = "Transferência"

type Transaction struct {
	ID              string          `json:"id"`
	TransactionCode string          `json:"transactionCode"`
	FromAccountID   string          `json:"fromAccountId"`
	ToAccountID     string          `json:"toAccountId"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Timestamp       time.Time       `json:"timestamp"`
	Status          Status          `json:"status"`
}
