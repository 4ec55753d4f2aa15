// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package api

import (
	"net/http"

	"homefolio/internal/auth"
	"homefolio/internal/logging"
	"homefolio/internal/metrics"
	"homefolio/internal/models"
)

// handleLogin verifies the operator credential and issues a session token.
// The token is returned in the body and also set as an HTTP-only cookie so
// browser clients need no token plumbing.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if !s.credentials.Verify(req.Username, req.Password) {
		metrics.RecordLoginAttempt(false)
		logging.Ctx(r.Context()).Warn().
			Str("username", req.Username).
			Msg("Login rejected")
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid username or password")
		return
	}

	avatar := ""
	if profile, err := s.store.Profile(); err == nil {
		avatar = profile.AvatarURL
	}

	token, expiresAt, err := s.jwt.GenerateToken(req.Username, models.RoleAdmin, avatar)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Token generation failed")
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to create session")
		return
	}

	metrics.RecordLoginAttempt(true)
	logging.Ctx(r.Context()).Info().
		Str("username", req.Username).
		Time("expires_at", expiresAt).
		Msg("Login succeeded")

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})

	respondJSON(w, http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  req.Username,
		Role:      models.RoleAdmin,
		Avatar:    avatar,
	})
}

// handleLogout clears the session cookie. Tokens are stateless, so the
// bearer copy simply expires on its own.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}
