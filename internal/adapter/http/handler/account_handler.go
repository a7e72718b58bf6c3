package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/adapter/http/middleware"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
	"github.com/iho/gobank/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	OpenAccount(ctx context.Context, input usecase.OpenAccountInput) (*domain.Account, error)
	CloseAccount(ctx context.Context, number, adminUser string) error
	UnlockAccount(ctx context.Context, number, adminUser string) error
	GetAccount(number string) (*domain.Account, error)
	ListAccounts() []*domain.Account
}

// AccountHandler handles account lifecycle and admin inspection.
type AccountHandler struct {
	accountUC AccountService
	metrics   *metrics.Metrics
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService, m *metrics.Metrics) *AccountHandler {
	return &AccountHandler{accountUC: accountUC, metrics: m}
}

// Open opens a new account. No session is required; this is the one
// walk-up operation.
func (h *AccountHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req dto.OpenAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ConfirmPIN != "" && req.ConfirmPIN != req.PIN {
		writeFailure(w, http.StatusBadRequest, "PINs do not match")
		return
	}

	account, err := h.accountUC.OpenAccount(r.Context(), usecase.OpenAccountInput{
		Name:           req.Name,
		PIN:            req.PIN,
		InitialDeposit: req.InitialDeposit,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.metrics.AccountsOpened.Inc()
	writeJSON(w, http.StatusCreated, dto.AccountOpenedResponse{
		Success:       true,
		AccountNumber: account.Number,
		Message:       "account created successfully",
	})
}

// List lists every account for an admin.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts := h.accountUC.ListAccounts()
	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.AccountsFromDomain(accounts),
		Total:    len(accounts),
	})
}

// Get returns one account's state and full log for an admin. The raw
// log is reported even for a locked account; admin inspection is not
// subject to the lock mask.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	account, err := h.accountUC.GetAccount(number)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountDetailResponse{
		Account:      dto.AccountFromDomain(account),
		Transactions: dto.TransactionsFromDomain(account.Log),
	})
}

// Unlock clears an account's lockout.
func (h *AccountHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	adminUser, _ := middleware.AdminFromContext(r.Context())

	if err := h.accountUC.UnlockAccount(r.Context(), number, adminUser); err != nil {
		writeDomainError(w, err)
		return
	}

	h.metrics.AccountsUnlocked.Inc()
	writeJSON(w, http.StatusOK, dto.OutcomeResponse{Success: true, Message: "account unlocked successfully"})
}

// Close removes a zero-balance account from the ledger.
func (h *AccountHandler) Close(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	adminUser, _ := middleware.AdminFromContext(r.Context())

	if err := h.accountUC.CloseAccount(r.Context(), number, adminUser); err != nil {
		writeDomainError(w, err)
		return
	}

	h.metrics.AccountsClosed.Inc()
	writeJSON(w, http.StatusOK, dto.OutcomeResponse{Success: true, Message: "account closed successfully"})
}
