// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

// ContextWithRequestID returns a context carrying the request ID, with a
// child logger attached so Ctx(ctx) emits the ID on every event.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	logger := Logger().With().Str("request_id", requestID).Logger()
	ctx = logger.WithContext(ctx)
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID, or "" when absent.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// GenerateRequestID returns a new UUID v4 request identifier.
func GenerateRequestID() string {
	return uuid.New().String()
}

// Ctx returns the logger attached to the context, falling back to the
// global logger when none is attached.
func Ctx(ctx context.Context) *zerolog.Logger {
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		l := Logger()
		return &l
	}
	return logger
}
