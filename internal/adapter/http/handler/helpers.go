package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeFailure writes an expected business failure as a normal-path
// success=false outcome, never as a fault.
func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.OutcomeResponse{
		Success: false,
		Message: message,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoTransactions):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrLoginRejected),
		errors.Is(err, domain.ErrIncorrectPIN),
		errors.Is(err, domain.ErrTooManyAttempts),
		errors.Is(err, domain.ErrAdminCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrAccountLocked):
		return http.StatusLocked
	case errors.Is(err, domain.ErrNonZeroBalance):
		return http.StatusConflict
	case errors.Is(err, domain.ErrAccountInactive),
		errors.Is(err, domain.ErrDepositRejected),
		errors.Is(err, domain.ErrWithdrawalRejected),
		errors.Is(err, domain.ErrTransferRejected),
		errors.Is(err, domain.ErrSameAccount),
		errors.Is(err, domain.ErrPINFormat),
		errors.Is(err, domain.ErrAdminActionRejected):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeDomainError maps err to a status and renders the outcome shape.
func writeDomainError(w http.ResponseWriter, err error) {
	status := mapDomainError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		// Do not leak internals (persistence paths etc) to the shell.
		message = "internal server error"
	}
	writeFailure(w, status, message)
}
