// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

// Package api wires the HTTP surface: routing, handlers and response
// shaping.
package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"homefolio/internal/logging"
	"homefolio/internal/models"
	"homefolio/internal/validation"
)

// maxRequestBody bounds request payloads. The settings document is small;
// anything near this limit is abuse.
const maxRequestBody = 1 << 20

// respondJSON writes a success envelope.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	respondJSONCached(w, status, data, false)
}

// respondJSONCached writes a success envelope, marking cache-served
// responses in the metadata.
func respondJSONCached(w http.ResponseWriter, status int, data interface{}, cached bool) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			Cached:    cached,
		},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Error().Err(err).Msg("Failed to encode response")
	}
}

// respondError writes an error envelope.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondAPIError(w, status, &models.APIError{Code: code, Message: message})
}

// respondAPIError writes an error envelope with a pre-built error body.
func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error:    apiErr,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Error().Err(err).Msg("Failed to encode error response")
	}
}

// decodeRequest parses a JSON body into dst and validates it. On failure it
// writes the error response and returns false.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "failed to read request body")
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "request body is not valid JSON")
		return false
	}
	if err := validation.ValidateStruct(dst); err != nil {
		var reqErr *validation.RequestValidationError
		if errors.As(err, &reqErr) {
			respondAPIError(w, http.StatusBadRequest, reqErr.ToAPIError())
		} else {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		}
		return false
	}
	return true
}

// intURLParam parses an integer chi route parameter.
func intURLParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return val, nil
}

// forcedRefresh reports whether the client asked to bypass the provider
// cache, via the refresh=1 query parameter or a no-cache Cache-Control.
func forcedRefresh(r *http.Request) bool {
	if r.URL.Query().Get("refresh") == "1" {
		return true
	}
	cc := strings.ToLower(r.Header.Get("Cache-Control"))
	return strings.Contains(cc, "no-cache") || strings.Contains(cc, "max-age=0")
}
