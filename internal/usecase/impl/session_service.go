package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager   repository.TransactionManager
	sessionRepo repository.SessionRepository
	metrics     service.AuthMetrics
	now         func() time.Time
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	SessionRepo repository.SessionRepository
	Metrics     service.AuthMetrics `optional:"true"`
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:   params.TxManager,
		sessionRepo: params.SessionRepo,
		metrics:     metricsOrNop(params.Metrics),
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) ListActive(ctx context.Context, principalID int64) ([]*entity.Session, error) {
	sessions, err := srv.sessionRepo.ListActiveForPrincipal(ctx, principalID, srv.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active sessions")
	}

	return sessions, nil
}

func (srv *sessionService) Revoke(ctx context.Context, principalID, sessionID int64) error {
	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrNotFound.WithDetails("session does not exist")
		}

		return errors.Wrap(err, "failed to find session")
	}
	if session.PrincipalID != principalID {
		srv.log(ctx).Warn("Attempt to revoke a foreign session", slog.Int64("principalID", principalID), slog.Int64("sessionID", sessionID))

		return domainerrors.ErrForbidden.WithDetails("session belongs to another principal")
	}

	if err := srv.sessionRepo.Deactivate(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}
	srv.log(ctx).Info("Session revoked", slog.Int64("principalID", principalID), slog.Int64("sessionID", sessionID))

	return nil
}

func (srv *sessionService) RevokeAll(ctx context.Context, principalID int64) (int, error) {
	count, err := srv.sessionRepo.DeactivateAllForPrincipal(ctx, principalID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to revoke sessions")
	}
	srv.log(ctx).Info("All sessions revoked", slog.Int64("principalID", principalID), slog.Int("count", count))

	return count, nil
}

func (srv *sessionService) EnforceLimit(ctx context.Context, principalID int64, maxSessions int) (int, error) {
	if maxSessions <= 0 {
		return 0, nil
	}

	var evicted int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPrincipalRepository().AcquireSessionMutex(ctx, principalID); err != nil {
			return errors.Wrap(err, "failed to lock principal sessions")
		}

		var err error
		evicted, err = enforceSessionLimit(ctx, repoFactory.NewSessionRepository(), principalID, maxSessions, srv.now())

		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to execute session limit transaction")
	}
	srv.metrics.SessionsEvicted(evicted)

	return evicted, nil
}

func (srv *sessionService) SweepExpired(ctx context.Context) (int, error) {
	count, err := srv.sessionRepo.SweepExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to sweep expired sessions")
	}
	srv.metrics.SessionsSwept(count)
	if count > 0 {
		srv.log(ctx).Info("Expired sessions swept", slog.Int("count", count))
	}

	return count, nil
}

// enforceSessionLimit deactivates the least recently active sessions beyond maxSessions.
// Callers must hold the principal's session mutex in the same transaction as sessionRepo.
func enforceSessionLimit(ctx context.Context, sessionRepo repository.SessionRepository, principalID int64, maxSessions int, now time.Time) (int, error) {
	if maxSessions <= 0 {
		return 0, nil
	}

	sessions, err := sessionRepo.ListActiveForPrincipal(ctx, principalID, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list active sessions")
	}

	excess := len(sessions) - maxSessions
	if excess <= 0 {
		return 0, nil
	}

	// Oldest first: ListActiveForPrincipal orders by last activity, then id.
	ids := make([]int64, 0, excess)
	for _, session := range sessions[:excess] {
		ids = append(ids, session.ID)
	}

	evicted, err := sessionRepo.DeactivateMany(ctx, ids)
	if err != nil {
		return 0, errors.Wrap(err, "failed to evict sessions")
	}

	return evicted, nil
}

type nopAuthMetrics struct{}

func (nopAuthMetrics) LoginAttempt(string)   {}
func (nopAuthMetrics) RefreshAttempt(string) {}
func (nopAuthMetrics) SessionsEvicted(int)   {}
func (nopAuthMetrics) SessionsSwept(int)     {}

func metricsOrNop(metrics service.AuthMetrics) service.AuthMetrics {
	if metrics == nil {
		return nopAuthMetrics{}
	}

	return metrics
}
