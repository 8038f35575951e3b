package context

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

type principalContextKey struct{}

// KeyPrincipal is the echo.Context key of the authenticated principal.
const KeyPrincipal ContextKey = "principal"

// WithPrincipal attaches the authenticated principal to the context.
func WithPrincipal(ctx context.Context, principal *entity.AuthenticatedPrincipal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal)
}

// PrincipalFromContext extracts the authenticated principal from the context.
func PrincipalFromContext(ctx context.Context) (*entity.AuthenticatedPrincipal, bool) {
	if ctx == nil {
		return nil, false
	}
	principal, ok := ctx.Value(principalContextKey{}).(*entity.AuthenticatedPrincipal)
	if !ok || principal == nil {
		return nil, false
	}

	return principal, true
}

// SetPrincipal stores the principal in both echo.Context and the request context.
func SetPrincipal(c echo.Context, principal *entity.AuthenticatedPrincipal) {
	c.Set(string(KeyPrincipal), principal)
	c.SetRequest(c.Request().WithContext(WithPrincipal(c.Request().Context(), principal)))
}

// GetPrincipal extracts the principal set by the authentication middleware.
func GetPrincipal(c echo.Context) (*entity.AuthenticatedPrincipal, bool) {
	principal, ok := c.Get(string(KeyPrincipal)).(*entity.AuthenticatedPrincipal)
	if !ok || principal == nil {
		return nil, false
	}

	return principal, true
}
