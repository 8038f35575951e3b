package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// permissionOnlyAuth answers RequirePermission and fails on anything else.
type permissionOnlyAuth struct {
	usecase.AuthUsecase

	calls int
}

func (a *permissionOnlyAuth) RequirePermission(principal *entity.AuthenticatedPrincipal, permission string) error {
	a.calls++
	if !principal.Can(permission) {
		return domainerrors.ErrForbidden
	}

	return nil
}

func (a *permissionOnlyAuth) Authenticate(context.Context, string) (*entity.AuthenticatedPrincipal, error) {
	panic("unexpected Authenticate")
}

func runRequirePermission(t *testing.T, principal *entity.AuthenticatedPrincipal) (*httptest.ResponseRecorder, *permissionOnlyAuth, *bytes.Buffer) {
	t.Helper()

	logs := &bytes.Buffer{}
	authUC := &permissionOnlyAuth{}
	m := NewAuthMiddleware(AuthMiddlewareParams{
		AuthUC: authUC,
		Logger: slog.New(slog.NewTextHandler(logs, nil)),
	})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/roles", nil), rec)
	if principal != nil {
		deliverycontext.SetPrincipal(c, principal)
	}

	handler := m.RequirePermission(entity.PermissionRoleManagement)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	assert.NoError(t, handler(c))

	return rec, authUC, logs
}

func TestAuthMiddleware_RequirePermission(t *testing.T) {
	rec, authUC, _ := runRequirePermission(t, &entity.AuthenticatedPrincipal{
		PrincipalID: 7,
		Permissions: entity.NewPermissions(entity.PermissionRoleManagement),
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, authUC.calls)

	rec, _, logs := runRequirePermission(t, &entity.AuthenticatedPrincipal{PrincipalID: 7})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, logs.String(), "Permission denied")
}

func TestAuthMiddleware_RequirePermissionWithoutPrincipal(t *testing.T) {
	rec, authUC, logs := runRequirePermission(t, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INTERNAL_ERROR"`)
	assert.NotContains(t, rec.Body.String(), "misordered", "details stay out of 5xx bodies")
	assert.Zero(t, authUC.calls)
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "without an authenticated principal")
}
