package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler lets a principal inspect and end its own sessions.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{sessionUC: params.SessionUC, logger: params.Logger}
}

// List returns the caller's active sessions, least recently used first.
func (h *SessionHandler) List(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sessions, err := h.sessionUC.ListActive(c.Request().Context(), principal.PrincipalID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSessionResponses(sessions, principal.SessionID), "")
}

// Revoke ends one of the caller's sessions.
func (h *SessionHandler) Revoke(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	sessionID, err := paramID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.sessionUC.Revoke(c.Request().Context(), principal.PrincipalID, sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Session revoked")
}

// RevokeAll ends every session of the caller, the current one included.
func (h *SessionHandler) RevokeAll(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	count, err := h.sessionUC.RevokeAll(c.Request().Context(), principal.PrincipalID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"revoked": count}, "Sessions revoked")
}
