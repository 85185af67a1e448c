package handler

import (
	"net/http"

	"transfer-ledger/internal/domain"
	"transfer-ledger/internal/service"
)

type QueryHandler struct {
	queryService *service.QueryService
}

func NewQueryHandler(queryService *service.QueryService) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
	}
}

type transactionListResponse struct {
	Success      bool                 `json:"success"`
	Transactions []domain.Transaction `json:"transactions"`
}

type statementResponse struct {
	Success      bool                 `json:"success"`
	Account      *domain.Account      `json:"account"`
	Transactions []domain.Transaction `json:"transactions"`
}

func (h *QueryHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, transactionListResponse{
		Success:      true,
		Transactions: h.queryService.AllTransactions(),
	})
}

func (h *QueryHandler) Statement(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("accountId")

	statement, err := h.queryService.Statement(accountID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statementResponse{
		Success:      true,
		Account:      statement.Account,
		Transactions: statement.Transactions,
	})
}
