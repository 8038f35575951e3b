package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// SessionUsecase manages server-side sessions.
type SessionUsecase interface {
	ListActive(ctx context.Context, principalID int64) ([]*entity.Session, error)
	// Revoke ends one session owned by principalID. Foreign sessions yield ErrForbidden.
	Revoke(ctx context.Context, principalID, sessionID int64) error
	RevokeAll(ctx context.Context, principalID int64) (int, error)
	// EnforceLimit keeps at most maxSessions active sessions, evicting the least recently
	// active first. A non-positive maxSessions disables the limit.
	EnforceLimit(ctx context.Context, principalID int64, maxSessions int) (int, error)
	SweepExpired(ctx context.Context) (int, error)
}
