// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers liveness probes.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// bindAndValidate decodes the JSON body into req and runs the struct validator.
// It writes the 400 response itself and reports whether the handler may continue.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err.Error())
	}

	return true, nil
}

func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return id, nil
}

// currentPrincipal is only called behind AuthMiddleware.Authenticate.
func currentPrincipal(c echo.Context) (*entity.AuthenticatedPrincipal, error) {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}

	return principal, nil
}

// PrincipalResponse is the client view of a principal.
type PrincipalResponse struct {
	ID           int64    `json:"id"`
	EmployeeCode string   `json:"employeeCode"`
	Name         string   `json:"name"`
	Username     string   `json:"username,omitempty"`
	Active       *bool    `json:"active,omitempty"`
	Permissions  []string `json:"permissions,omitempty"`
}

func newSummaryResponse(summary *usecase.PrincipalSummary) *PrincipalResponse {
	if summary == nil {
		return nil
	}

	permissions := summary.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	return &PrincipalResponse{
		ID:           summary.ID,
		EmployeeCode: summary.EmployeeCode,
		Name:         summary.Name,
		Username:     summary.Username,
		Permissions:  permissions,
	}
}

// SessionResponse is the client view of a session. Token hashes are never exposed.
type SessionResponse struct {
	ID               int64     `json:"id"`
	CreatedAt        time.Time `json:"createdAt"`
	LastActivityAt   time.Time `json:"lastActivityAt"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
	Current          bool      `json:"current"`
}

func newSessionResponses(sessions []*entity.Session, currentID int64) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, SessionResponse{
			ID:               session.ID,
			CreatedAt:        session.CreatedAt,
			LastActivityAt:   session.LastActivityAt,
			AccessExpiresAt:  session.AccessExpiresAt,
			RefreshExpiresAt: session.RefreshExpiresAt,
			Current:          session.ID == currentID,
		})
	}

	return out
}
