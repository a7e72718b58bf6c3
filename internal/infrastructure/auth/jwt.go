package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iho/gobank/internal/domain"
)

// Role distinguishes the two session kinds.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Claims bind an HTTP session to either a customer account or an admin
// username for the duration of the interaction.
type Claims struct {
	AccountNumber string `json:"account_number,omitempty"`
	AdminUser     string `json:"admin_user,omitempty"`
	Role          Role   `json:"role"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies session tokens.
type SessionManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

// NewSessionManager creates a new SessionManager.
func NewSessionManager(secretKey string, tokenDuration time.Duration) *SessionManager {
	return &SessionManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

// GenerateCustomer issues a token bound to an account number.
func (m *SessionManager) GenerateCustomer(accountNumber string) (string, error) {
	return m.generate(Claims{
		AccountNumber: accountNumber,
		Role:          RoleCustomer,
	})
}

// GenerateAdmin issues a token bound to an admin username.
func (m *SessionManager) GenerateAdmin(username string) (string, error) {
	return m.generate(Claims{
		AdminUser: username,
		Role:      RoleAdmin,
	})
}

func (m *SessionManager) generate(claims Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// Verify verifies a session token and returns its claims.
func (m *SessionManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
