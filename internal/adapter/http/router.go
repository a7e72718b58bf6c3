package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/adapter/http/handler"
	"github.com/iho/gobank/internal/adapter/http/middleware"
	"github.com/iho/gobank/internal/infrastructure/auth"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	AccountHandler *handler.AccountHandler
	ATMHandler     *handler.ATMHandler
	HealthHandler  *handler.HealthHandler
	Sessions       *auth.SessionManager
	Logger         zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Probes and metrics
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Walk-up operations
		r.Post("/auth/login", cfg.AuthHandler.Login)
		r.Post("/auth/admin/login", cfg.AuthHandler.AdminLogin)
		r.Post("/accounts", cfg.AccountHandler.Open)

		// Customer session
		r.Route("/me", func(r chi.Router) {
			r.Use(middleware.CustomerAuth(cfg.Sessions))
			r.Get("/balance", cfg.ATMHandler.Balance)
			r.Get("/transactions", cfg.ATMHandler.History)
			r.Get("/receipt", cfg.ATMHandler.Receipt)
			r.Post("/deposits", cfg.ATMHandler.Deposit)
			r.Post("/withdrawals", cfg.ATMHandler.Withdraw)
			r.Post("/transfers", cfg.ATMHandler.Transfer)
			r.Put("/pin", cfg.ATMHandler.ChangePIN)
		})

		// Admin session
		r.Route("/admin/accounts", func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.Sessions))
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{number}", cfg.AccountHandler.Get)
			r.Post("/{number}/unlock", cfg.AccountHandler.Unlock)
			r.Delete("/{number}", cfg.AccountHandler.Close)
		})
	})

	return r
}
