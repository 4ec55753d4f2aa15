// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"
)

func TestIPRateLimiterAllow(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(1), 2)
	defer l.Stop()

	if !l.Allow("10.0.0.1") || !l.Allow("10.0.0.1") {
		t.Error("burst of 2 should be allowed")
	}
	if l.Allow("10.0.0.1") {
		t.Error("third immediate request should be throttled")
	}

	// A different client has its own bucket.
	if !l.Allow("10.0.0.2") {
		t.Error("fresh client throttled")
	}
}

func TestIPRateLimiterHandler(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(1), 1)
	defer l.Stop()

	handler := l.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/steam", nil)
	req.RemoteAddr = "10.0.0.1:52000"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("429 content type = %q", ct)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		remoteAddr string
		want       string
	}{
		{"10.0.0.1:52000", "10.0.0.1"},
		{"[::1]:52000", "::1"},
		{"10.0.0.1", "10.0.0.1"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = tt.remoteAddr
		if got := clientIP(req); got != tt.want {
			t.Errorf("clientIP(%q) = %q, want %q", tt.remoteAddr, got, tt.want)
		}
	}
}
