package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/iho/gobank/internal/infrastructure/auth"
)

// ContextKey is the type for context keys.
type ContextKey string

const (
	// AccountContextKey holds the authenticated customer's account number.
	AccountContextKey ContextKey = "account_number"
	// AdminContextKey holds the authenticated admin's username.
	AdminContextKey ContextKey = "admin_user"
)

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// CustomerAuth requires a customer session token and puts the bound
// account number into the request context.
func CustomerAuth(sessions *auth.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				http.Error(w, "missing or malformed authorization header", http.StatusUnauthorized)
				return
			}

			claims, err := sessions.Verify(token)
			if err != nil || claims.Role != auth.RoleCustomer || claims.AccountNumber == "" {
				http.Error(w, "invalid or expired session", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), AccountContextKey, claims.AccountNumber)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminAuth requires an admin session token and puts the username into
// the request context.
func AdminAuth(sessions *auth.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				http.Error(w, "missing or malformed authorization header", http.StatusUnauthorized)
				return
			}

			claims, err := sessions.Verify(token)
			if err != nil || claims.Role != auth.RoleAdmin || claims.AdminUser == "" {
				http.Error(w, "invalid or expired session", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), AdminContextKey, claims.AdminUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccountFromContext extracts the authenticated account number.
func AccountFromContext(ctx context.Context) (string, bool) {
	number, ok := ctx.Value(AccountContextKey).(string)
	return number, ok
}

// AdminFromContext extracts the authenticated admin username.
func AdminFromContext(ctx context.Context) (string, bool) {
	user, ok := ctx.Value(AdminContextKey).(string)
	return user, ok
}
