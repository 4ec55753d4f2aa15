// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package models

import "time"

// APIResponse is the standardized response wrapper used by every HTTP
// endpoint.
//
// Status is "success" or "error". Data carries the payload on success;
// Error carries structured details on failure. Metadata is always present.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries per-response observability fields.
// Cached marks responses served from the provider cache.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Cached    bool      `json:"cached,omitempty"`
}

// APIError is the structured error body.
//
// Common codes: VALIDATION_ERROR, INVALID_REQUEST, UNAUTHORIZED, FORBIDDEN,
// NOT_FOUND, SETTINGS_ERROR, UPSTREAM_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RoleAdmin is the single privilege level of the one operator account.
const RoleAdmin = "admin"

// LoginRequest is the credential payload for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful authentication. The token is also
// set as an HTTP-only cookie.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
}

// ReorderRequest moves a list element from OldIndex to NewIndex.
type ReorderRequest struct {
	OldIndex int `json:"old_index" validate:"gte=0"`
	NewIndex int `json:"new_index" validate:"gte=0"`
}
