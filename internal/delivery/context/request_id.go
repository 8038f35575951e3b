// Package context carries request-scoped values between the HTTP layer and the use cases:
// the request id, a logger already tagged with it, and the authenticated principal.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey names values stored on echo.Context.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"

	// HeaderXRequestID is both read from the client and echoed back.
	HeaderXRequestID = "X-Request-Id"
)

type (
	requestIDContextKey struct{}
	loggerContextKey    struct{}
)

// SetRequestID stores the id on echo.Context for the response envelope.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the id assigned by the request id middleware, falling back to
// the request context. Empty when neither carries one, so the envelope omits it.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey{}).(string)

	return id
}

// WithLogger attaches a request-scoped logger. Services pick it up through GetLoggerOrDefault.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// GetLogger returns nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerContextKey{}).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault lets background callers such as the session sweeper share code
// paths with request handlers.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
