package rest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/echub/compliance-hub-backend/internal/infrastructure/cache"
)

// authMiddleware gates the admin endpoints. Tokens are signed JWTs
// whose session claim must still exist in the session store, so a
// logout or revocation takes effect immediately.
type authMiddleware struct {
	secret   []byte
	sessions cache.SessionStore
}

func newAuthMiddleware(secret string, sessions cache.SessionStore) *authMiddleware {
	return &authMiddleware{
		secret:   []byte(secret),
		sessions: sessions,
	}
}

type tokenClaims struct {
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

func (m *authMiddleware) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, r, http.StatusUnauthorized,
				"MISSING_TOKEN", "authorization header required", nil)
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeError(w, r, http.StatusUnauthorized,
				"INVALID_TOKEN", "authorization header must use the Bearer scheme", nil)
			return
		}

		claims := &tokenClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return m.secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			writeError(w, r, http.StatusUnauthorized,
				"INVALID_TOKEN", "token is invalid or expired", nil)
			return
		}

		if claims.SessionID != "" && m.sessions != nil {
			if _, err := m.sessions.GetSession(r.Context(), claims.SessionID); err != nil {
				writeError(w, r, http.StatusUnauthorized,
					"SESSION_EXPIRED", "session is no longer valid", nil)
				return
			}
			// sliding expiry: activity keeps the session alive
			_ = m.sessions.ExtendSession(r.Context(), claims.SessionID, cache.SessionTTL)
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, userRoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole wraps a handler so only the given role may reach it.
func requireRole(role string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ := r.Context().Value(userRoleKey).(string)
		if got != role {
			writeError(w, r, http.StatusForbidden,
				"FORBIDDEN", "insufficient permissions", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IssueToken signs an admin JWT bound to a session id. Exposed for the
// login flow and for test setup.
func IssueToken(secret, userID, role, sessionID string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:    userID,
		Role:      role,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			Issuer:    "echub-backend",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
