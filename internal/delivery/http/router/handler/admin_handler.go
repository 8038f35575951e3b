package handler

import (
	"log/slog"
	"net/http"
	"time"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AdminHandler administers principals and their accounts.
type AdminHandler struct {
	accountUC usecase.AccountUsecase
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		accountUC: params.AccountUC,
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// ProvisionPrincipalRequest is the body of POST /principals.
type ProvisionPrincipalRequest struct {
	EmployeeCode string `json:"employeeCode" validate:"required,len=8,alphanum,uppercase"`
	Name         string `json:"name" validate:"required,max=128"`
}

// CreateAccountRequest is the body of POST /principals/:id/account.
type CreateAccountRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

// SetEnabledRequest is the body of PUT /principals/:id/account/enabled.
type SetEnabledRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// AccountResponse is the client view of an account. Hashes and counters stay server side.
type AccountResponse struct {
	PrincipalID int64  `json:"principalId"`
	Username    string `json:"username"`
	Enabled     bool   `json:"enabled"`
}

// RecoveryTokenResponse carries a recovery token. It is shown once.
type RecoveryTokenResponse struct {
	RecoveryToken string    `json:"recoveryToken"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// ProvisionPrincipal creates an employee identity.
func (h *AdminHandler) ProvisionPrincipal(c echo.Context) error {
	var req ProvisionPrincipalRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	principal, err := h.accountUC.ProvisionPrincipal(c.Request().Context(), &usecase.ProvisionPrincipalInput{
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &PrincipalResponse{
		ID:           principal.ID,
		EmployeeCode: principal.EmployeeCode,
		Name:         principal.Name,
		Active:       &principal.Active,
	}, "Principal provisioned")
}

// CreateAccount attaches credentials to a principal.
func (h *AdminHandler) CreateAccount(c echo.Context) error {
	principalID, err := paramID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req CreateAccountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	account, err := h.accountUC.CreateAccount(c.Request().Context(), &usecase.CreateAccountInput{
		PrincipalID: principalID,
		Username:    req.Username,
		Password:    req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &AccountResponse{
		PrincipalID: account.PrincipalID,
		Username:    account.Username,
		Enabled:     account.Enabled,
	}, "Account created")
}

// Unlock resets the failed-attempt counter.
func (h *AdminHandler) Unlock(c echo.Context) error {
	principalID, err := paramID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.accountUC.ResetFailedAttempts(c.Request().Context(), principalID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Account unlocked")
}

// SetEnabled toggles the administrative gate of an account.
func (h *AdminHandler) SetEnabled(c echo.Context) error {
	principalID, err := paramID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req SetEnabledRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.accountUC.SetEnabled(c.Request().Context(), principalID, *req.Enabled); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Account updated")
}

// IssueRecoveryToken hands out a single-use password recovery token.
func (h *AdminHandler) IssueRecoveryToken(c echo.Context) error {
	principalID, err := paramID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.accountUC.IssueRecoveryToken(c.Request().Context(), principalID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &RecoveryTokenResponse{
		RecoveryToken: output.Token,
		ExpiresAt:     output.ExpiresAt,
	}, "Recovery token issued")
}

// Deactivate retires a principal.
func (h *AdminHandler) Deactivate(c echo.Context) error {
	principalID, err := paramID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.accountUC.DeactivatePrincipal(c.Request().Context(), principalID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Principal deactivated")
}

// ListSessions returns the active sessions of any principal.
func (h *AdminHandler) ListSessions(c echo.Context) error {
	principalID, err := paramID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sessions, err := h.sessionUC.ListActive(c.Request().Context(), principalID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSessionResponses(sessions, 0), "")
}
