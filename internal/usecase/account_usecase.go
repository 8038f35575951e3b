package usecase

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
)

// ProvisionPrincipalInput defines a new employee identity.
type ProvisionPrincipalInput struct {
	EmployeeCode string
	Name         string
}

// CreateAccountInput attaches credentials to an existing principal.
type CreateAccountInput struct {
	PrincipalID int64
	Username    string
	Password    string
}

// ResetPasswordInput redeems a recovery token.
type ResetPasswordInput struct {
	RecoveryToken string
	NewPassword   string
}

// RecoveryTokenOutput holds the raw recovery token. It is only ever returned once.
type RecoveryTokenOutput struct {
	Token     string
	ExpiresAt time.Time
}

// AccountUsecase administers principals and their credentials.
type AccountUsecase interface {
	ProvisionPrincipal(ctx context.Context, input *ProvisionPrincipalInput) (*entity.Principal, error)
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.AuthAccount, error)
	// ResetFailedAttempts is the administrative unlock.
	ResetFailedAttempts(ctx context.Context, principalID int64) error
	// SetEnabled toggles the administrative gate. Disabling also ends every session.
	SetEnabled(ctx context.Context, principalID int64, enabled bool) error
	IssueRecoveryToken(ctx context.Context, principalID int64) (*RecoveryTokenOutput, error)
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	// DeactivatePrincipal marks the principal inactive, disables its account and ends its sessions.
	DeactivatePrincipal(ctx context.Context, principalID int64) error
}
