package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/auth"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// AuthService defines the behavior needed by AuthHandler.
type AuthService interface {
	Authenticate(ctx context.Context, number, pin string) (*domain.Account, error)
	AuthenticateAdmin(username, password string) error
}

// AuthHandler handles customer and admin login.
type AuthHandler struct {
	authUC   AuthService
	sessions *auth.SessionManager
	metrics  *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUC AuthService, sessions *auth.SessionManager, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		authUC:   authUC,
		sessions: sessions,
		metrics:  m,
	}
}

// Login authenticates a customer by account number and PIN and issues a
// session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.metrics.AuthAttempts.WithLabelValues("customer").Inc()

	account, err := h.authUC.Authenticate(r.Context(), req.AccountNumber, req.PIN)
	if err != nil {
		h.metrics.AuthFailures.WithLabelValues("customer").Inc()
		if errors.Is(err, domain.ErrTooManyAttempts) {
			h.metrics.Lockouts.Inc()
		}
		writeDomainError(w, err)
		return
	}

	token, err := h.sessions.GenerateCustomer(account.Number)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "failed to establish session")
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{Success: true, Token: token})
}

// AdminLogin authenticates an admin and issues an admin session token.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.metrics.AuthAttempts.WithLabelValues("admin").Inc()

	if err := h.authUC.AuthenticateAdmin(req.Username, req.Password); err != nil {
		h.metrics.AuthFailures.WithLabelValues("admin").Inc()
		writeDomainError(w, err)
		return
	}

	token, err := h.sessions.GenerateAdmin(req.Username)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "failed to establish session")
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{Success: true, Token: token})
}
