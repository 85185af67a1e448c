package service

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"transfer-ledger/internal/domain"
	"transfer-ledger/internal/errors"
	"transfer-ledger/internal/txcode"
)

// TransferService validates and executes transfers. It is the only writer of
// ledger state.
type TransferService struct {
	ledger domain.Ledger
	codes  txcode.Generator
	logger *slog.Logger
}

func NewTransferService(ledger domain.Ledger, codes txcode.Generator, logger *slog.Logger) *TransferService {
	return &TransferService{
		ledger: ledger,
		codes:  codes,
		logger: logger,
	}
}

type TransferRequest struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Description   string
}

// Execute runs the full transfer: business-rule validation, then the
// debit/credit/append applied as one unit inside the ledger's critical
// section. Every failure is terminal for the request; there are no retries.
func (s *TransferService) Execute(req *TransferRequest) (*domain.Transaction, error) {
	s.logger.Info("Processing transfer",
		"from_account_id", req.FromAccountID,
		"to_account_id", req.ToAccountID,
		"amount", req.Amount)

	if err := s.validate(req); err != nil {
		return nil, err
	}

	var result *domain.Transaction

	err := s.ledger.WithTransfer(func(tx domain.LedgerTx) error {
		from, err := tx.GetAccount(req.FromAccountID)
		if err != nil {
			return notFound(err, "source", req.FromAccountID)
		}

		to, err := tx.GetAccount(req.ToAccountID)
		if err != nil {
			return notFound(err, "destination", req.ToAccountID)
		}

		if from.Balance.LessThan(req.Amount) {
			return errors.ErrInsufficientFunds.WithDetailsf(
				"available balance: %s, requested amount: %s",
				from.Balance.StringFixed(2), req.Amount.StringFixed(2))
		}

		description := req.Description
		if description == "" {
			description = domain.DefaultDescription
		}

		transaction := &domain.Transaction{
			ID:              "txn-" + uuid.NewString(),
			TransactionCode: s.codes.Next(),
			FromAccountID:   from.ID,
			ToAccountID:     to.ID,
			Amount:          req.Amount,
			Description:     description,
			Timestamp:       time.Now(),
			Status:          domain.StatusCompleted,
		}

		if err := tx.UpdateBalance(from.ID, from.Balance.Sub(req.Amount)); err != nil {
			return err
		}
		if err := tx.UpdateBalance(to.ID, to.Balance.Add(req.Amount)); err != nil {
			return err
		}
		if err := tx.AddTransaction(transaction); err != nil {
			return err
		}

		result = transaction
		return nil
	})

	if err != nil {
		s.logger.Warn("Transfer rejected",
			"from_account_id", req.FromAccountID,
			"to_account_id", req.ToAccountID,
			"error", err)
		return nil, err
	}

	s.logger.Info("Transfer completed successfully",
		"transaction_id", result.ID,
		"transaction_code", result.TransactionCode)
	return result, nil
}

func (s *TransferService) validate(req *TransferRequest) error {
	if req.FromAccountID == "" || req.ToAccountID == "" {
		return errors.ErrMissingFields.WithDetails("fromAccountId, toAccountId and amount are required")
	}

	if req.FromAccountID == req.ToAccountID {
		return errors.ErrSameAccount.WithDetails("cannot transfer to the same account")
	}

	if !req.Amount.IsPositive() {
		return errors.ErrInvalidAmount
	}

	return nil
}

// notFound tags an account lookup failure with the side of the transfer it
// occurred on. Anything other than a not-found result passes through as-is.
func notFound(err error, side, accountID string) error {
	if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.AccountNotFound {
		return errors.NewAppErrorf(errors.AccountNotFound, "%s account not found", side).
			WithDetailsf("account %s does not exist", accountID)
	}
	return err
}
