package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/adapter/http/middleware"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// ATMService defines the behavior needed by ATMHandler.
type ATMService interface {
	Deposit(ctx context.Context, number string, amount decimal.Decimal) (*domain.Transaction, error)
	Withdraw(ctx context.Context, number string, amount decimal.Decimal) (*domain.Transaction, error)
	Transfer(ctx context.Context, from, to string, amount decimal.Decimal) (*domain.Transaction, error)
	Balance(number string) (decimal.Decimal, error)
	History(number string) ([]*domain.Transaction, error)
	ChangePIN(ctx context.Context, number, oldPIN, newPIN string) error
	LastReceipt(number string) (string, error)
}

// ATMHandler handles the authenticated customer operations.
type ATMHandler struct {
	atmUC   ATMService
	metrics *metrics.Metrics
}

// NewATMHandler creates a new ATMHandler.
func NewATMHandler(atmUC ATMService, m *metrics.Metrics) *ATMHandler {
	return &ATMHandler{atmUC: atmUC, metrics: m}
}

func (h *ATMHandler) sessionAccount(w http.ResponseWriter, r *http.Request) (string, bool) {
	number, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "no authenticated account")
		return "", false
	}
	return number, true
}

// Deposit adds money to the session's account.
func (h *ATMHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	number, ok := h.sessionAccount(w, r)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.atmUC.Deposit(r.Context(), number, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.metrics.Deposits.Inc()
	writeJSON(w, http.StatusCreated, dto.TransactionResult{
		Success:     true,
		Message:     "deposit successful",
		Transaction: dto.TransactionFromDomain(tx),
	})
}

// Withdraw removes money from the session's account.
func (h *ATMHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	number, ok := h.sessionAccount(w, r)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.atmUC.Withdraw(r.Context(), number, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.metrics.Withdrawals.Inc()
	writeJSON(w, http.StatusCreated, dto.TransactionResult{
		Success:     true,
		Message:     "withdrawal successful",
		Transaction: dto.TransactionFromDomain(tx),
	})
}

// Transfer moves money from the session's account to another.
func (h *ATMHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	number, ok := h.sessionAccount(w, r)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.atmUC.Transfer(r.Context(), number, req.ToAccount, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.metrics.Transfers.Inc()
	writeJSON(w, http.StatusCreated, dto.TransactionResult{
		Success:     true,
		Message:     "transfer successful",
		Transaction: dto.TransactionFromDomain(tx),
	})
}

// Balance reports the session account's available balance.
func (h *ATMHandler) Balance(w http.ResponseWriter, r *http.Request) {
	number, ok := h.sessionAccount(w, r)
	if !ok {
		return
	}

	balance, err := h.atmUC.Balance(number)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		AccountNumber: number,
		Balance:       balance,
	})
}

// History returns the session account's transaction log.
func (h *ATMHandler) History(w http.ResponseWriter, r *http.Request) {
	number, ok := h.sessionAccount(w, r)
	if !ok {
		return
	}

	history, err := h.atmUC.History(number)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(history))
}

// ChangePIN replaces the session account's PIN.
func (h *ATMHandler) ChangePIN(w http.ResponseWriter, r *http.Request) {
	number, ok := h.sessionAccount(w, r)
	if !ok {
		return
	}

	var req dto.ChangePINRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ConfirmPIN != "" && req.ConfirmPIN != req.NewPIN {
		writeFailure(w, http.StatusBadRequest, "PINs do not match")
		return
	}

	if err := h.atmUC.ChangePIN(r.Context(), number, req.CurrentPIN, req.NewPIN); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.OutcomeResponse{Success: true, Message: "PIN changed successfully"})
}

// Receipt renders a receipt for the most recent transaction.
func (h *ATMHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	number, ok := h.sessionAccount(w, r)
	if !ok {
		return
	}

	receipt, err := h.atmUC.LastReceipt(number)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ReceiptResponse{Receipt: receipt})
}
