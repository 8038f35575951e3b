// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	principalRepo     repository.PrincipalRepository
	accountRepo       repository.AuthAccountRepository
	sessionRepo       repository.SessionRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	permissions       usecase.PermissionUsecase
	metrics           service.AuthMetrics
	policy            service.LockoutPolicy
	maxActiveSessions int
	touchInterval     time.Duration
	now               func() time.Time
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	PrincipalRepo repository.PrincipalRepository
	AccountRepo   repository.AuthAccountRepository
	SessionRepo   repository.SessionRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	Permissions   usecase.PermissionUsecase
	Metrics       service.AuthMetrics `optional:"true"`
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	threshold := config.DefaultLockoutThreshold
	maxActiveSessions := config.DefaultMaxActiveSessions
	touchInterval := config.DefaultTouchInterval
	if params.Config != nil && params.Config.Auth != nil {
		threshold = params.Config.Auth.LockoutThreshold
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
		touchInterval = params.Config.Auth.TouchInterval
	}

	return &authService{
		txManager:         params.TxManager,
		principalRepo:     params.PrincipalRepo,
		accountRepo:       params.AccountRepo,
		sessionRepo:       params.SessionRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		permissions:       params.Permissions,
		metrics:           metricsOrNop(params.Metrics),
		policy:            service.NewLockoutPolicy(threshold),
		maxActiveSessions: maxActiveSessions,
		touchInterval:     touchInterval,
		now:               time.Now,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login walks the account through the enabled, lockout and password gates, then opens a session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	output, err := srv.login(ctx, input)
	srv.metrics.LoginAttempt(outcomeOf(err))
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Principal logged in", slog.Int64("principalID", output.Principal.ID))

	return output, nil
}

func (srv *authService) login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	principal, err := srv.principalRepo.FindByID(ctx, account.PrincipalID)
	if err != nil {
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "account has no principal")
		}

		return nil, errors.Wrap(err, "failed to load principal")
	}

	if err := srv.checkGates(principal, account); err != nil {
		return nil, err
	}

	// bcrypt is CPU-bound, compare outside any transaction.
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		failed, err := srv.accountRepo.IncrementFailedAttempts(ctx, account.PrincipalID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to record failed attempt")
		}
		srv.log(ctx).Warn("Password mismatch",
			slog.Int64("principalID", account.PrincipalID),
			slog.Int("failedAttempts", failed),
			slog.Int("remainingAttempts", srv.policy.RemainingAttempts(failed)),
		)

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	tokens, err := srv.tokenService.IssuePair(account.PrincipalID, account.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	if err := srv.openSession(ctx, account.PrincipalID, tokens); err != nil {
		return nil, err
	}

	perms, err := srv.permissions.Resolve(ctx, account.PrincipalID)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{
		Tokens:    tokens,
		Principal: summarize(principal, account.Username, perms),
	}, nil
}

// checkGates applies the administrative gate before the lockout counter.
func (srv *authService) checkGates(principal *entity.Principal, account *entity.AuthAccount) error {
	if !principal.Active {
		return errors.Wrap(domainerrors.ErrAccountLocked, "principal is deactivated")
	}

	switch srv.policy.Evaluate(account) {
	case service.LockoutDisabled:
		return errors.Wrap(domainerrors.ErrAccountLocked, "account is disabled")
	case service.LockoutLocked:
		return errors.Wrap(domainerrors.ErrAccountLocked, "too many failed attempts")
	default:
		return nil
	}
}

// openSession resets the counter, persists the session and enforces the session limit in one
// transaction. The principal row lock serialises concurrent logins of the same principal.
func (srv *authService) openSession(ctx context.Context, principalID int64, tokens *entity.TokenPair) error {
	now := srv.now()

	var evicted int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPrincipalRepository().AcquireSessionMutex(ctx, principalID); err != nil {
			return errors.Wrap(err, "failed to lock principal sessions")
		}

		accountRepo := repoFactory.NewAuthAccountRepository()

		// Re-check under the lock: the account may have been locked or disabled since it was read.
		account, err := accountRepo.FindByPrincipalID(ctx, principalID)
		if err != nil {
			return errors.Wrap(err, "failed to reload account")
		}
		if srv.policy.Evaluate(account) != service.LockoutOpen {
			return errors.Wrap(domainerrors.ErrAccountLocked, "account was locked during login")
		}

		if err := accountRepo.ResetFailedAttempts(ctx, principalID); err != nil {
			return errors.Wrap(err, "failed to reset failed attempts")
		}

		sessionRepo := repoFactory.NewSessionRepository()
		session := &entity.Session{
			PrincipalID:      principalID,
			AccessTokenHash:  srv.tokenService.HashToken(tokens.AccessToken),
			RefreshTokenHash: srv.tokenService.HashToken(tokens.RefreshToken),
			AccessExpiresAt:  tokens.AccessExpiresAt,
			RefreshExpiresAt: tokens.RefreshExpiresAt,
			CreatedAt:        now,
			LastActivityAt:   now,
			Active:           true,
		}
		if err := sessionRepo.Create(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create session")
		}

		evicted, err = enforceSessionLimit(ctx, sessionRepo, principalID, srv.maxActiveSessions, now)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute login transaction")
	}

	if evicted > 0 {
		srv.metrics.SessionsEvicted(evicted)
		srv.log(ctx).Info("Evicted sessions over the limit", slog.Int64("principalID", principalID), slog.Int("count", evicted))
	}

	return nil
}

// Refresh rotates both tokens of the session holding the presented refresh token.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.AuthOutput, error) {
	output, err := srv.refresh(ctx, input)
	srv.metrics.RefreshAttempt(outcomeOf(err))
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("Session refreshed", slog.Int64("principalID", output.Principal.ID))

	return output, nil
}

func (srv *authService) refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.Verify(input.RefreshToken, service.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	previousHash := srv.tokenService.HashToken(input.RefreshToken)
	session, err := srv.sessionRepo.FindValidByRefreshHash(ctx, previousHash, srv.now())
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidToken, "refresh token is not attached to an active session")
		}

		return nil, errors.Wrap(err, "failed to find session")
	}
	if session.PrincipalID != claims.PrincipalID {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "refresh token does not match its session")
	}

	account, err := srv.accountRepo.FindByPrincipalID(ctx, session.PrincipalID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidToken, "account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}
	principal, err := srv.principalRepo.FindByID(ctx, session.PrincipalID)
	if err != nil {
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidToken, "principal no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load principal")
	}
	if !principal.Active || !account.Enabled {
		return nil, errors.Wrap(domainerrors.ErrAccountLocked, "account is disabled")
	}

	tokens, err := srv.tokenService.IssuePair(account.PrincipalID, account.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	err = srv.sessionRepo.Rotate(ctx, session.ID, repository.SessionRotation{
		PreviousRefreshHash: previousHash,
		AccessTokenHash:     srv.tokenService.HashToken(tokens.AccessToken),
		RefreshTokenHash:    srv.tokenService.HashToken(tokens.RefreshToken),
		AccessExpiresAt:     tokens.AccessExpiresAt,
		RefreshExpiresAt:    tokens.RefreshExpiresAt,
		RotatedAt:           srv.now(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrSessionRotated) {
			return nil, errors.Wrap(domainerrors.ErrInvalidToken, "refresh token was already used")
		}

		return nil, errors.Wrap(err, "failed to rotate session")
	}

	perms, err := srv.permissions.Resolve(ctx, account.PrincipalID)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{
		Tokens:    tokens,
		Principal: summarize(principal, account.Username, perms),
	}, nil
}

// Logout deactivates the session of the access token. An expired token may still log out,
// and an unknown or already inactive session is not an error.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if _, err := srv.tokenService.VerifyIgnoringExpiry(input.AccessToken, service.TokenTypeAccess); err != nil {
		return err
	}

	session, err := srv.sessionRepo.FindByAccessHash(ctx, srv.tokenService.HashToken(input.AccessToken))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			srv.log(ctx).Debug("Logout for unknown session")

			return nil
		}

		return errors.Wrap(err, "failed to find session")
	}
	if !session.Active {
		return nil
	}

	if err := srv.sessionRepo.Deactivate(ctx, session.ID); err != nil {
		return errors.Wrap(err, "failed to deactivate session")
	}
	srv.log(ctx).Info("Principal logged out", slog.Int64("principalID", session.PrincipalID), slog.Int64("sessionID", session.ID))

	return nil
}

func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*entity.AuthenticatedPrincipal, error) {
	claims, err := srv.tokenService.Verify(accessToken, service.TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	session, err := srv.sessionRepo.FindValidByAccessHash(ctx, srv.tokenService.HashToken(accessToken), now)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidToken, "access token is not attached to an active session")
		}

		return nil, errors.Wrap(err, "failed to find session")
	}
	if session.PrincipalID != claims.PrincipalID {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "access token does not match its session")
	}

	perms, err := srv.permissions.Resolve(ctx, session.PrincipalID)
	if err != nil {
		return nil, err
	}

	if srv.touchInterval < 0 || now.Sub(session.LastActivityAt) >= srv.touchInterval {
		if err := srv.sessionRepo.Touch(ctx, session.ID, now); err != nil {
			srv.log(ctx).Warn("Failed to touch session", slog.Int64("sessionID", session.ID), slog.Any("error", err))
		}
	}

	return &entity.AuthenticatedPrincipal{
		PrincipalID: session.PrincipalID,
		Username:    claims.Subject,
		SessionID:   session.ID,
		Permissions: perms,
	}, nil
}

func (srv *authService) RequirePermission(principal *entity.AuthenticatedPrincipal, permission string) error {
	if !principal.Can(permission) {
		return domainerrors.ErrForbidden.WithDetails("missing " + permission)
	}

	return nil
}

func (srv *authService) Describe(ctx context.Context, principal *entity.AuthenticatedPrincipal) (*usecase.PrincipalSummary, error) {
	record, err := srv.principalRepo.FindByID(ctx, principal.PrincipalID)
	if err != nil {
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("principal does not exist")
		}

		return nil, errors.Wrap(err, "failed to load principal")
	}

	return summarize(record, principal.Username, principal.Permissions), nil
}

func summarize(principal *entity.Principal, username string, perms entity.Permissions) *usecase.PrincipalSummary {
	return &usecase.PrincipalSummary{
		ID:           principal.ID,
		EmployeeCode: principal.EmployeeCode,
		Name:         principal.Name,
		Username:     username,
		Permissions:  perms.Strings(),
	}
}

// outcomeOf maps a login or refresh result onto its metrics label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return service.OutcomeSuccess
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return service.OutcomeInvalidCredentials
	case errors.Is(err, domainerrors.ErrAccountLocked):
		return service.OutcomeLocked
	case errors.Is(err, domainerrors.ErrExpiredToken):
		return service.OutcomeExpiredToken
	case errors.Is(err, domainerrors.ErrInvalidToken):
		return service.OutcomeInvalidToken
	default:
		return service.OutcomeError
	}
}
