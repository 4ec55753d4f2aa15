// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

// Package middleware provides HTTP middleware shared by all route groups.
package middleware

import (
	"net/http"

	"homefolio/internal/logging"
)

// RequestIDHeader is the response header exposing the per-request id.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request a unique id, honoring one provided by the
// client, and attaches a request-scoped logger to the context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}
		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
