package repository

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrSessionNotFound is returned when no session (or no valid session) matches.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionRotated is returned by Rotate when the session no longer carries the
	// expected refresh token, i.e. a concurrent refresh won.
	ErrSessionRotated = errors.New("session already rotated")
)

// SessionRotation carries the replacement token material for an in-place rotation.
type SessionRotation struct {
	PreviousRefreshHash string
	AccessTokenHash     string
	RefreshTokenHash    string
	AccessExpiresAt     time.Time
	RefreshExpiresAt    time.Time
	RotatedAt           time.Time
}

// SessionRepository defines the server-side session store.
type SessionRepository interface {
	// Create assigns session.ID on success.
	Create(ctx context.Context, session *entity.Session) error

	FindByID(ctx context.Context, id int64) (*entity.Session, error)

	// FindByAccessHash ignores validity, used by logout.
	FindByAccessHash(ctx context.Context, accessHash string) (*entity.Session, error)

	// FindValidByAccessHash returns the session only if active and the access token is unexpired at now.
	FindValidByAccessHash(ctx context.Context, accessHash string, now time.Time) (*entity.Session, error)

	// FindValidByRefreshHash returns the session only if active and the refresh token is unexpired at now.
	FindValidByRefreshHash(ctx context.Context, refreshHash string, now time.Time) (*entity.Session, error)

	Touch(ctx context.Context, id int64, now time.Time) error

	// Rotate replaces both token hashes and expiries of an active session whose current refresh
	// hash equals rotation.PreviousRefreshHash. Returns ErrSessionRotated otherwise.
	Rotate(ctx context.Context, id int64, rotation SessionRotation) error

	// Deactivate is idempotent.
	Deactivate(ctx context.Context, id int64) error

	// DeactivateAllForPrincipal returns the number of sessions it deactivated.
	DeactivateAllForPrincipal(ctx context.Context, principalID int64) (int, error)

	// DeactivateMany returns the number of sessions it deactivated.
	DeactivateMany(ctx context.Context, ids []int64) (int, error)

	// ListActiveForPrincipal returns active, refreshable sessions ordered by
	// LastActivityAt ascending, then ID ascending.
	ListActiveForPrincipal(ctx context.Context, principalID int64, now time.Time) ([]*entity.Session, error)

	// SweepExpired deactivates active sessions whose refresh expiry has passed and returns the count.
	SweepExpired(ctx context.Context, now time.Time) (int, error)
}
