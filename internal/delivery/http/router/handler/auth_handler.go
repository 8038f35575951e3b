package handler

import (
	"log/slog"
	"net/http"
	"time"

	"backoffice/internal/delivery/http/response"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"
	"backoffice/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC    usecase.AuthUsecase
	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AuthHandler serves login, refresh, logout and password recovery.
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:    params.AuthUC,
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// ResetPasswordRequest is the body of POST /auth/password/reset.
type ResetPasswordRequest struct {
	RecoveryToken string `json:"recoveryToken" validate:"required"`
	NewPassword   string `json:"newPassword" validate:"required,max=128"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken      string             `json:"accessToken"`
	RefreshToken     string             `json:"refreshToken"`
	TokenType        string             `json:"tokenType"`
	ExpiresIn        int64              `json:"expiresIn"` // seconds until the access token expires
	ExpiresAt        time.Time          `json:"expiresAt"`
	RefreshExpiresAt time.Time          `json:"refreshExpiresAt"`
	Principal        *PrincipalResponse `json:"principal"`
}

func newTokenResponse(output *usecase.AuthOutput) *TokenResponse {
	expiresIn := int64(time.Until(output.Tokens.AccessExpiresAt).Seconds())
	if expiresIn < 0 {
		expiresIn = 0
	}

	return &TokenResponse{
		AccessToken:      output.Tokens.AccessToken,
		RefreshToken:     output.Tokens.RefreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        expiresIn,
		ExpiresAt:        output.Tokens.AccessExpiresAt,
		RefreshExpiresAt: output.Tokens.RefreshExpiresAt,
		Principal:        newSummaryResponse(output.Principal),
	}
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTokenResponse(output), "Login successful")
}

// Refresh exchanges a refresh token for a new pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.authUC.Refresh(c.Request().Context(), &usecase.RefreshInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTokenResponse(output), "Token refreshed successfully")
}

// Logout ends the session of the bearer access token. Repeating it is harmless.
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := util.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if !ok {
		return response.AppError(c, domainerrors.ErrInvalidToken)
	}

	if err := h.authUC.Logout(c.Request().Context(), &usecase.LogoutInput{AccessToken: token}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// ResetPassword redeems a recovery token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	err := h.accountUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		RecoveryToken: req.RecoveryToken,
		NewPassword:   req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successful")
}

// Me returns the authenticated principal with its effective permissions.
func (h *AuthHandler) Me(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.authUC.Describe(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSummaryResponse(summary), "")
}
