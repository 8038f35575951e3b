package repository

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for credential persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("auth account not found")
	// ErrAccountExists is returned when the username is taken or the principal already has an account.
	ErrAccountExists = errors.New("auth account already exists")
)

// AuthAccountRepository defines the credential store operations.
// Every mutation on an unknown principal returns ErrAccountNotFound.
type AuthAccountRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.AuthAccount, error)
	FindByPrincipalID(ctx context.Context, principalID int64) (*entity.AuthAccount, error)

	// Create persists an account whose PasswordHash is already computed. Assigns account.ID.
	Create(ctx context.Context, account *entity.AuthAccount) error

	SetPasswordHash(ctx context.Context, principalID int64, hash string) error

	// IncrementFailedAttempts atomically adds one to the counter and returns the new value.
	IncrementFailedAttempts(ctx context.Context, principalID int64) (int, error)
	ResetFailedAttempts(ctx context.Context, principalID int64) error
	SetEnabled(ctx context.Context, principalID int64, enabled bool) error

	// SetRecoveryToken stores a recovery token hash. An empty hash clears it.
	SetRecoveryToken(ctx context.Context, principalID int64, hash string, expiresAt *time.Time) error
	FindByRecoveryTokenHash(ctx context.Context, hash string) (*entity.AuthAccount, error)
}
