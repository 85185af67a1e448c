package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"transfer-ledger/internal/domain"
	"transfer-ledger/internal/errors"
	"transfer-ledger/internal/service"
)

type TransferHandler struct {
	transferService *service.TransferService
}

func NewTransferHandler(transferService *service.TransferService) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
	}
}

type transferPayload struct {
	FromAccountID string      `json:"fromAccountId"`
	ToAccountID   string      `json:"toAccountId"`
	Amount        json.Number `json:"amount"`
	Description   string      `json:"description"`
}

type transferResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Transaction *domain.Transaction `json:"transaction"`
}

func (h *TransferHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.ErrMissingFields.WithDetails("invalid request body"))
		return
	}

	// An absent amount is a missing field; a present but malformed or
	// non-positive one is an invalid amount.
	if req.Amount.String() == "" {
		writeError(w, errors.ErrMissingFields.WithDetails("fromAccountId, toAccountId and amount are required"))
		return
	}

	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		writeError(w, errors.ErrInvalidAmount.WithDetails("invalid amount format"))
		return
	}

	transaction, err := h.transferService.Execute(&service.TransferRequest{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        amount,
		Description:   req.Description,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, transferResponse{
		Success:     true,
		Message:     "transfer completed successfully",
		Transaction: transaction,
	})
}
