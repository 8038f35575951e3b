package postgres

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// authAccountRepository implements repository.AuthAccountRepository using GORM.
// Lookups go to the primary: a replica lagging behind a counter increment would
// let a locked account through.
type authAccountRepository struct {
	db *gorm.DB
}

func NewAuthAccountRepository(db *gorm.DB) repository.AuthAccountRepository {
	return &authAccountRepository{db: db}
}

func (repo *authAccountRepository) FindByUsername(ctx context.Context, username string) (*entity.AuthAccount, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *authAccountRepository) FindByPrincipalID(ctx context.Context, principalID int64) (*entity.AuthAccount, error) {
	return repo.findOne(ctx, "principal_id = ?", principalID)
}

func (repo *authAccountRepository) FindByRecoveryTokenHash(ctx context.Context, hash string) (*entity.AuthAccount, error) {
	if hash == "" {
		return nil, repository.ErrAccountNotFound
	}

	return repo.findOne(ctx, "recovery_token_hash = ?", hash)
}

func (repo *authAccountRepository) findOne(ctx context.Context, query string, arg any) (*entity.AuthAccount, error) {
	var accountM model.AuthAccountModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where(query, arg).
		Take(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find auth account")
	}

	return toAuthAccountDomain(&accountM), nil
}

func (repo *authAccountRepository) Create(ctx context.Context, account *entity.AuthAccount) error {
	accountM := fromAuthAccountDomain(account)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAccountExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPrincipalNotFound
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create auth account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

func (repo *authAccountRepository) SetPasswordHash(ctx context.Context, principalID int64, hash string) error {
	return repo.update(ctx, principalID, map[string]any{"password_hash": hash}, "failed to update password")
}

// IncrementFailedAttempts is a single UPDATE ... SET failed_attempts = failed_attempts + 1
// RETURNING failed_attempts, so concurrent failures are never lost.
func (repo *authAccountRepository) IncrementFailedAttempts(ctx context.Context, principalID int64) (int, error) {
	var accountM model.AuthAccountModel
	result := repo.db.WithContext(ctx).
		Model(&accountM).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "failed_attempts"}}}).
		Where("principal_id = ?", principalID).
		Updates(map[string]any{
			"failed_attempts": gorm.Expr("failed_attempts + 1"),
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment failed attempts")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrAccountNotFound
	}

	return accountM.FailedAttempts, nil
}

func (repo *authAccountRepository) ResetFailedAttempts(ctx context.Context, principalID int64) error {
	return repo.update(ctx, principalID, map[string]any{"failed_attempts": 0}, "failed to reset failed attempts")
}

func (repo *authAccountRepository) SetEnabled(ctx context.Context, principalID int64, enabled bool) error {
	return repo.update(ctx, principalID, map[string]any{"enabled": enabled}, "failed to update enabled flag")
}

func (repo *authAccountRepository) SetRecoveryToken(ctx context.Context, principalID int64, hash string, expiresAt *time.Time) error {
	var hashValue *string
	if hash != "" {
		hashValue = &hash
	} else {
		expiresAt = nil
	}

	return repo.update(ctx, principalID, map[string]any{
		"recovery_token_hash":       hashValue,
		"recovery_token_expires_at": expiresAt,
	}, "failed to update recovery token")
}

func (repo *authAccountRepository) update(ctx context.Context, principalID int64, values map[string]any, details string) error {
	values["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.AuthAccountModel{}).
		Where("principal_id = ?", principalID).
		Updates(values)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrAccountExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, details)
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func toAuthAccountDomain(data *model.AuthAccountModel) *entity.AuthAccount {
	if data == nil {
		return nil
	}

	account := &entity.AuthAccount{
		ID:                     data.ID,
		PrincipalID:            data.PrincipalID,
		Username:               data.Username,
		PasswordHash:           data.PasswordHash,
		Enabled:                data.Enabled,
		FailedAttempts:         data.FailedAttempts,
		RecoveryTokenExpiresAt: data.RecoveryTokenExpiresAt,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
	if data.RecoveryTokenHash != nil {
		account.RecoveryTokenHash = *data.RecoveryTokenHash
	}

	return account
}

func fromAuthAccountDomain(data *entity.AuthAccount) *model.AuthAccountModel {
	if data == nil {
		return nil
	}

	accountM := &model.AuthAccountModel{
		ID:                     data.ID,
		PrincipalID:            data.PrincipalID,
		Username:               data.Username,
		PasswordHash:           data.PasswordHash,
		Enabled:                data.Enabled,
		FailedAttempts:         data.FailedAttempts,
		RecoveryTokenExpiresAt: data.RecoveryTokenExpiresAt,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
	if data.RecoveryTokenHash != "" {
		hash := data.RecoveryTokenHash
		accountM.RecoveryTokenHash = &hash
	}

	return accountM
}
