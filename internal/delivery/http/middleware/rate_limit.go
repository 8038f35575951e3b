package middleware

import (
	"time"

	"backoffice/config"
	"backoffice/internal/delivery/http/response"
	domainerrors "backoffice/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const loginLimiterExpiry = 3 * time.Minute

// NewLoginRateLimiter throttles credential guessing per client IP. It returns nil when
// auth.loginRateLimit is not positive.
func NewLoginRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	if cfg.Auth == nil || cfg.Auth.LoginRateLimit <= 0 {
		return nil
	}

	burst := cfg.Auth.LoginBurst
	if burst <= 0 {
		burst = 1
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.Auth.LoginRateLimit),
		Burst:     burst,
		ExpiresIn: loginLimiterExpiry,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.AppError(c, domainerrors.ErrInternalError)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.AppError(c, domainerrors.ErrTooManyRequests)
		},
	})
}
