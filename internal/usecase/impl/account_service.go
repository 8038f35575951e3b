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
	"backoffice/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const recoveryTokenBytes = 32

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager        repository.TransactionManager
	principalRepo    repository.PrincipalRepository
	accountRepo      repository.AuthAccountRepository
	hasher           service.PasswordHasher
	recoveryTokenTTL time.Duration
	now              func() time.Time
	logger           *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	PrincipalRepo repository.PrincipalRepository
	AccountRepo   repository.AuthAccountRepository
	Hasher        service.PasswordHasher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	recoveryTokenTTL := config.DefaultRecoveryTokenTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.RecoveryTokenTTL > 0 {
		recoveryTokenTTL = params.Config.Auth.RecoveryTokenTTL
	}

	return &accountService{
		txManager:        params.TxManager,
		principalRepo:    params.PrincipalRepo,
		accountRepo:      params.AccountRepo,
		hasher:           params.Hasher,
		recoveryTokenTTL: recoveryTokenTTL,
		now:              time.Now,
		logger:           params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) ProvisionPrincipal(ctx context.Context, input *usecase.ProvisionPrincipalInput) (*entity.Principal, error) {
	if !entity.ValidEmployeeCode(input.EmployeeCode) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("employee code must be 8 upper-case letters or digits")
	}
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	principal := &entity.Principal{
		EmployeeCode: input.EmployeeCode,
		Name:         input.Name,
		Active:       true,
	}
	if err := srv.principalRepo.Create(ctx, principal); err != nil {
		if errors.Is(err, repository.ErrEmployeeCodeTaken) {
			return nil, domainerrors.ErrDuplicateResource.WithDetails("employee code " + input.EmployeeCode + " already exists")
		}

		return nil, errors.Wrap(err, "failed to create principal")
	}
	srv.log(ctx).Info("Principal provisioned", slog.Int64("principalID", principal.ID))

	return principal, nil
}

func (srv *accountService) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*entity.AuthAccount, error) {
	if input.Username == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username is required")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &entity.AuthAccount{
		PrincipalID:  input.PrincipalID,
		Username:     input.Username,
		PasswordHash: hash,
		Enabled:      true,
	}
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		switch {
		case errors.Is(err, repository.ErrAccountExists):
			return nil, domainerrors.ErrDuplicateResource.WithDetails("username taken or principal already has an account")
		case errors.Is(err, repository.ErrPrincipalNotFound):
			return nil, domainerrors.ErrNotFound.WithDetails("principal does not exist")
		default:
			return nil, errors.Wrap(err, "failed to create account")
		}
	}
	srv.log(ctx).Info("Account created", slog.Int64("principalID", account.PrincipalID), slog.String("username", account.Username))

	return account, nil
}

func (srv *accountService) ResetFailedAttempts(ctx context.Context, principalID int64) error {
	if err := srv.accountRepo.ResetFailedAttempts(ctx, principalID); err != nil {
		return accountNotFound(err, "failed to reset failed attempts")
	}
	srv.log(ctx).Info("Account unlocked", slog.Int64("principalID", principalID))

	return nil
}

func (srv *accountService) SetEnabled(ctx context.Context, principalID int64, enabled bool) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewAuthAccountRepository().SetEnabled(ctx, principalID, enabled); err != nil {
			return err
		}
		if enabled {
			return nil
		}

		_, err := repoFactory.NewSessionRepository().DeactivateAllForPrincipal(ctx, principalID)

		return err
	})
	if err != nil {
		return accountNotFound(err, "failed to update enabled flag")
	}
	srv.log(ctx).Info("Account enabled flag changed", slog.Int64("principalID", principalID), slog.Bool("enabled", enabled))

	return nil
}

func (srv *accountService) IssueRecoveryToken(ctx context.Context, principalID int64) (*usecase.RecoveryTokenOutput, error) {
	token, err := util.RandomToken(recoveryTokenBytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate recovery token")
	}
	expiresAt := srv.now().Add(srv.recoveryTokenTTL)

	if err := srv.accountRepo.SetRecoveryToken(ctx, principalID, util.SHA256Hex(token), &expiresAt); err != nil {
		return nil, accountNotFound(err, "failed to store recovery token")
	}
	srv.log(ctx).Info("Recovery token issued", slog.Int64("principalID", principalID), slog.Time("expiresAt", expiresAt))

	return &usecase.RecoveryTokenOutput{Token: token, ExpiresAt: expiresAt}, nil
}

// ResetPassword replaces the password, clears the lockout counter and the token, and ends
// every session of the principal.
func (srv *accountService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if input.RecoveryToken == "" {
		return errors.Wrap(domainerrors.ErrInvalidToken, "recovery token is required")
	}

	account, err := srv.accountRepo.FindByRecoveryTokenHash(ctx, util.SHA256Hex(input.RecoveryToken))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidToken, "unknown recovery token")
		}

		return errors.Wrap(err, "failed to find recovery token")
	}
	if !account.HasRecoveryToken(srv.now()) {
		return errors.Wrap(domainerrors.ErrInvalidToken, "recovery token has expired")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}
	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAuthAccountRepository()

		// The token is cleared in the same transaction, so it redeems at most once.
		current, err := accountRepo.FindByRecoveryTokenHash(ctx, account.RecoveryTokenHash)
		if err != nil {
			return err
		}
		if current.PrincipalID != account.PrincipalID {
			return repository.ErrAccountNotFound
		}

		if err := accountRepo.SetPasswordHash(ctx, account.PrincipalID, hash); err != nil {
			return err
		}
		if err := accountRepo.ResetFailedAttempts(ctx, account.PrincipalID); err != nil {
			return err
		}
		if err := accountRepo.SetRecoveryToken(ctx, account.PrincipalID, "", nil); err != nil {
			return err
		}
		_, err = repoFactory.NewSessionRepository().DeactivateAllForPrincipal(ctx, account.PrincipalID)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidToken, "recovery token was already used")
		}

		return errors.Wrap(err, "failed to execute password reset transaction")
	}
	srv.log(ctx).Info("Password reset", slog.Int64("principalID", account.PrincipalID))

	return nil
}

func (srv *accountService) DeactivatePrincipal(ctx context.Context, principalID int64) error {
	var sessions int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		principalRepo := repoFactory.NewPrincipalRepository()
		if err := principalRepo.AcquireSessionMutex(ctx, principalID); err != nil {
			return err
		}
		if err := principalRepo.SetActive(ctx, principalID, false); err != nil {
			return err
		}

		// A principal without credentials has nothing to disable.
		err := repoFactory.NewAuthAccountRepository().SetEnabled(ctx, principalID, false)
		if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
			return err
		}

		sessions, err = repoFactory.NewSessionRepository().DeactivateAllForPrincipal(ctx, principalID)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			return domainerrors.ErrNotFound.WithDetails("principal does not exist")
		}

		return errors.Wrap(err, "failed to execute deactivation transaction")
	}
	srv.log(ctx).Info("Principal deactivated", slog.Int64("principalID", principalID), slog.Int("sessions", sessions))

	return nil
}

// accountNotFound translates the repository sentinel for administrative callers.
func accountNotFound(err error, message string) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrNotFound.WithDetails("account does not exist")
	}

	return errors.Wrap(err, message)
}
