package middleware

import (
	"log/slog"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/delivery/http/response"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"
	"backoffice/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware is the request gate: bearer token in, authenticated principal on the context out.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC, logger: params.Logger}
}

// Authenticate resolves the access token against the session store and the role graph.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := util.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return response.AppError(c, domainerrors.ErrInvalidToken)
		}

		principal, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetPrincipal(c, principal)
		if logger := deliverycontext.GetLogger(c.Request().Context()); logger != nil {
			ctx := deliverycontext.WithLogger(c.Request().Context(), logger.With(slog.Int64("principal_id", principal.PrincipalID)))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequirePermission rejects principals lacking permission. It must run after Authenticate.
func (m *AuthMiddleware) RequirePermission(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Permission check ran without an authenticated principal",
					slog.String("permission", permission),
					slog.String("path", c.Path()),
				)

				return response.AppError(c, domainerrors.ErrInternalError.WithDetails("middleware misordered"))
			}
			if err := m.authUC.RequirePermission(principal, permission); err != nil {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Permission denied",
					slog.String("permission", permission),
					slog.String("path", c.Path()),
				)

				return response.HandleAppError(c, err)
			}

			return next(c)
		}
	}
}
