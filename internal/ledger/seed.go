package ledger

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"transfer-ledger/internal/domain"
)

// NewSeededStore builds a Store pre-loaded with the fixed account set and a
// few historical transactions, so statements have content from the first
// request on.
func NewSeededStore(logger *slog.Logger) *Store {
	s := NewStore(logger)

	accounts := []domain.Account{
		{ID: "acc-001", Name: "João Silva", Balance: decimal.RequireFromString("15000.00")},
		{ID: "acc-002", Name: "Maria Santos", Balance: decimal.RequireFromString("8500.00")},
		{ID: "acc-003", Name: "Pedro Oliveira", Balance: decimal.RequireFromString("25000.00")},
	}
	for i := range accounts {
		if err := s.CreateAccount(&accounts[i]); err != nil {
			logger.Error("Failed to seed account", "account_id", accounts[i].ID, "error", err)
		}
	}

	s.mu.Lock()
	s.transactions = append(s.transactions, seedTransactions()...)
	s.mu.Unlock()

	logger.Info("Ledger seeded", "accounts", len(accounts), "transactions", len(s.transactions))
	return s
}

func seedTransactions() []domain.Transaction {
	seed := []struct {
		id, code, from, to, amount, description string
		timestamp                               time.Time
	}{
		{"1", "TRX-20241028-001", "acc-001", "acc-002", "1200.00", "Pagamento de aluguel", time.Date(2024, 10, 1, 10, 30, 0, 0, time.UTC)},
		{"2", "TRX-20241028-002", "acc-003", "acc-001", "6500.00", "Pagamento de serviços", time.Date(2024, 10, 5, 14, 20, 0, 0, time.UTC)},
		{"3", "TRX-20241028-003", "acc-001", "acc-003", "350.00", "Transferência entre contas", time.Date(2024, 10, 10, 9, 15, 0, 0, time.UTC)},
		{"4", "TRX-20241028-004", "acc-002", "acc-001", "8200.00", "Compra de equipamentos", time.Date(2024, 10, 15, 16, 45, 0, 0, time.UTC)},
		{"5", "TRX-20241028-005", "acc-001", "acc-002", "450.00", "Pagamento de conta de luz", time.Date(2024, 10, 20, 11, 0, 0, 0, time.UTC)},
		{"6", "TRX-20241028-006", "acc-003", "acc-001", "12500.00", "Investimento", time.Date(2024, 10, 22, 13, 30, 0, 0, time.UTC)},
		{"7", "TRX-20241028-007", "acc-001", "acc-003", "280.00", "Reembolso", time.Date(2024, 10, 25, 10, 0, 0, 0, time.UTC)},
	}

	txs := make([]domain.Transaction, 0, len(seed))
	for _, row := range seed {
		txs = append(txs, domain.Transaction{
			ID:              row.id,
			TransactionCode: row.code,
			FromAccountID:   row.from,
			ToAccountID:     row.to,
			Amount:          decimal.RequireFromString(row.amount),
			Description:     row.description,
			Timestamp:       row.timestamp,
			Status:          domain.StatusCompleted,
		})
	}
	return txs
}
