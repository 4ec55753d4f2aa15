// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package api

import (
	"net/http"

	"homefolio/internal/logging"
	"homefolio/internal/metrics"
)

// handleSteam serves the cached Steam gaming summary. A miss (or forced
// refresh) fetches upstream and repopulates the cache; upstream failures
// never poison it. The user id and API key may come from query parameters,
// the stored profile or configuration, in that order.
func (s *Server) handleSteam(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = s.steamUserID()
	}
	if userID == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "missing userId")
		return
	}
	apiKey := r.URL.Query().Get("apiKey")
	if apiKey == "" {
		apiKey = s.cfg.Steam.APIKey
	}
	if apiKey == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "missing apiKey")
		return
	}

	cacheKey := "steam-" + userID
	if !forcedRefresh(r) {
		if cached, ok := s.cache.Get(cacheKey); ok {
			metrics.RecordProviderCacheHit("steam")
			respondJSONCached(w, http.StatusOK, cached, true)
			return
		}
	}

	metrics.RecordProviderCacheMiss("steam")
	summary, err := s.steam.FetchSummary(r.Context(), userID, apiKey)
	if err != nil {
		metrics.RecordProviderUpstreamError("steam")
		logging.Ctx(r.Context()).Error().Err(err).Msg("Steam fetch failed")
		respondError(w, http.StatusInternalServerError, "UPSTREAM_ERROR", "failed to fetch steam data")
		return
	}

	s.cache.SetWithTTL(cacheKey, summary, s.cfg.Steam.CacheTTL)
	respondJSON(w, http.StatusOK, summary)
}

// handleNeteaseMusic serves the cached weekly listening record. The user id
// may come from the uid query parameter, the stored profile or
// configuration, in that order.
func (s *Server) handleNeteaseMusic(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("uid")
	if userID == "" {
		userID = s.neteaseUserID()
	}
	if userID == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "missing uid")
		return
	}

	cacheKey := "netease-" + userID
	if !forcedRefresh(r) {
		if cached, ok := s.cache.Get(cacheKey); ok {
			metrics.RecordProviderCacheHit("netease")
			respondJSONCached(w, http.StatusOK, cached, true)
			return
		}
	}

	metrics.RecordProviderCacheMiss("netease")
	summary, err := s.netease.FetchWeeklyRecord(r.Context(), userID)
	if err != nil {
		metrics.RecordProviderUpstreamError("netease")
		logging.Ctx(r.Context()).Error().Err(err).Msg("NetEase fetch failed")
		respondError(w, http.StatusInternalServerError, "UPSTREAM_ERROR", "failed to fetch music data")
		return
	}

	s.cache.SetWithTTL(cacheKey, summary, s.cfg.Netease.CacheTTL)
	respondJSON(w, http.StatusOK, summary)
}

// steamUserID prefers the profile-stored id, falling back to configuration.
func (s *Server) steamUserID() string {
	if profile, err := s.store.Profile(); err == nil && profile.SteamUserID != "" {
		return profile.SteamUserID
	}
	return s.cfg.Steam.UserID
}

// neteaseUserID prefers the profile-stored id, falling back to
// configuration.
func (s *Server) neteaseUserID() string {
	if profile, err := s.store.Profile(); err == nil && profile.NeteaseUserID != "" {
		return profile.NeteaseUserID
	}
	return s.cfg.Netease.UserID
}
