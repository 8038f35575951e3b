// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a principal to log in.
type LoginInput struct {
	Username string
	Password string
}

// RefreshInput carries the refresh token presented by the client.
type RefreshInput struct {
	RefreshToken string
}

// LogoutInput carries the access token of the session to end.
type LogoutInput struct {
	AccessToken string
}

// --- Output DTOs ---

// PrincipalSummary is the principal view returned to clients.
type PrincipalSummary struct {
	ID           int64
	EmployeeCode string
	Name         string
	Username     string
	Permissions  []string
}

// AuthOutput returns the issued token pair after a successful login or refresh.
type AuthOutput struct {
	Tokens    *entity.TokenPair
	Principal *PrincipalSummary
}

// AuthUsecase is the authentication orchestrator: login, refresh, logout and the request gate.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*AuthOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	// Authenticate verifies an access token against the signature, the session store
	// and the role graph. The result is immutable for the rest of the request.
	Authenticate(ctx context.Context, accessToken string) (*entity.AuthenticatedPrincipal, error)
	// RequirePermission returns ErrForbidden unless the principal holds the permission.
	RequirePermission(principal *entity.AuthenticatedPrincipal, permission string) error
	Describe(ctx context.Context, principal *entity.AuthenticatedPrincipal) (*PrincipalSummary, error)
}
