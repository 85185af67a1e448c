package service

import (
	"log/slog"

	"transfer-ledger/internal/domain"
	"transfer-ledger/internal/errors"
)

// QueryService provides read-only views over the ledger.
type QueryService struct {
	ledger domain.Ledger
	logger *slog.Logger
}

func NewQueryService(ledger domain.Ledger, logger *slog.Logger) *QueryService {
	return &QueryService{
		ledger: ledger,
		logger: logger,
	}
}

// Statement is an account's current state plus its transaction history.
type Statement struct {
	Account      *domain.Account      `json:"account"`
	Transactions []domain.Transaction `json:"transactions"`
}

func (s *QueryService) Statement(accountID string) (*Statement, error) {
	if accountID == "" {
		return nil, errors.ErrMissingParameter.WithDetails("accountId is required")
	}

	account, transactions, err := s.ledger.Statement(accountID)
	if err != nil {
		s.logger.Warn("Statement requested for unknown account", "account_id", accountID)
		return nil, err
	}

	return &Statement{
		Account:      account,
		Transactions: transactions,
	}, nil
}

func (s *QueryService) AllTransactions() []domain.Transaction {
	return s.ledger.ListTransactions()
}
