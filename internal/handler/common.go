package handler

import (
	"encoding/json"
	"net/http"

	"transfer-ledger/internal/errors"
)

// errorResponse is the failure envelope shared by every endpoint.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, appErr *errors.AppError) {
	detail := appErr.Details
	if detail == "" {
		detail = string(appErr.Code)
	}

	writeJSON(w, appErr.HTTPStatus(), errorResponse{
		Success: false,
		Message: appErr.Message,
		Error:   detail,
	})
}

// writeServiceError translates any service failure, keeping unexpected
// errors generic so internals never leak to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		writeError(w, appErr)
		return
	}
	writeError(w, errors.NewAppError(errors.InternalError, "an unexpected error occurred"))
}
