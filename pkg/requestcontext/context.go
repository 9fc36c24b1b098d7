// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values. Middleware sets them, services read them, and
// tests inject them without running the middleware chain.
package requestcontext

import (
	"context"
	"time"

	"sscs-bulk-scan/internal/domain"
)

type (
	requestIDKey   struct{}
	requestTimeKey struct{}
	tokenKey       struct{}
)

// Exported context keys for tests that need context.WithValue directly.
var (
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
	ContextKeyToken       = tokenKey{}
)

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Now retrieves the request-scoped time, falling back to time.Now for
// non-HTTP contexts such as workers and tests that don't care.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context. Tests use it to pin the
// 13-month MRN comparison to a known day.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}

// Token retrieves the credential bundle forwarded to the case store.
func Token(ctx context.Context) domain.Token {
	if token, ok := ctx.Value(ContextKeyToken).(domain.Token); ok {
		return token
	}
	return domain.Token{}
}

// WithToken injects a credential bundle into the context.
func WithToken(ctx context.Context, token domain.Token) context.Context {
	return context.WithValue(ctx, ContextKeyToken, token)
}
