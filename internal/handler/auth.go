package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AuthHeader is the header name for JWT authentication
	AuthHeader = "Authorization"
	// TokenQueryParam carries the token for WebSocket upgrades, which cannot
	// set headers from a browser
	TokenQueryParam = "token"
	// TokenExpiry is the JWT token expiry duration
	TokenExpiry = 24 * time.Hour
	tokenIssuer = "open-sunsama-shell"
)

// AuthMiddleware provides JWT authentication for the event bridge.
// With an empty secret authentication is disabled.
type AuthMiddleware struct {
	secret string
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

// IsEnabled returns true if authentication is enabled
func (m *AuthMiddleware) IsEnabled() bool {
	return m.secret != ""
}

// GenerateToken generates a JWT token
func (m *AuthMiddleware) GenerateToken() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    tokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// ValidateToken validates a JWT token
func (m *AuthMiddleware) ValidateToken(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(m.secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())

	return err == nil && token.Valid
}

// Wrap wraps a handler with JWT authentication
func (m *AuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.IsEnabled() {
			next.ServeHTTP(w, r)
			return
		}

		token := r.URL.Query().Get(TokenQueryParam)
		if authHeader := r.Header.Get(AuthHeader); strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
		if token == "" || !m.ValidateToken(token) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// VerifySecret checks if the provided secret is correct
func (m *AuthMiddleware) VerifySecret(secret string) bool {
	if !m.IsEnabled() {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(m.secret), []byte(secret)) == 1
}
