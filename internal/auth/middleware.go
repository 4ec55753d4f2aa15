// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"homefolio/internal/logging"
	"homefolio/internal/models"
)

type contextKey string

// claimsContextKey carries the validated session claims.
const claimsContextKey contextKey = "auth_claims"

// SessionCookieName is the HTTP-only cookie the login endpoint sets.
const SessionCookieName = "token"

// ClaimsFromContext returns the validated session claims, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}

// ContextWithClaims attaches validated claims. Exposed for handler tests.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// Middleware wires the JWT manager into the request pipeline.
type Middleware struct {
	jwt *JWTManager
}

// NewMiddleware creates the auth middleware.
func NewMiddleware(jwt *JWTManager) *Middleware {
	return &Middleware{jwt: jwt}
}

// extractToken pulls the session token from the Authorization header
// (Bearer scheme) or, failing that, from the session cookie.
func extractToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// Authenticate rejects requests without a valid session token (401) and
// attaches the claims to the request context otherwise.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			return
		}
		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Rejected session token")
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
	})
}

// RequireAdmin rejects authenticated requests whose session lacks the admin
// role (403). Must run after Authenticate.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.Role != models.RoleAdmin {
			writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "admin privileges required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdminStrict answers 403 for every unauthorized request, whether the
// token is missing, invalid or merely under-privileged. Used where the
// write surface should not distinguish the two cases.
func (m *Middleware) RequireAdminStrict(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "admin privileges required")
			return
		}
		claims, err := m.jwt.ValidateToken(token)
		if err != nil || claims.Role != models.RoleAdmin {
			writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "admin privileges required")
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
	})
}

func writeAuthError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Error().Err(err).Msg("Failed to encode auth error response")
	}
}
