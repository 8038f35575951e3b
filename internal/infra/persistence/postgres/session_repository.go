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

// sessionRepository implements repository.SessionRepository using GORM.
// Sessions are never deleted; deactivation flips the active flag.
type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateResource.WrapMessage("session token already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPrincipalNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.ID = sessionM.ID

	return nil
}

func (repo *sessionRepository) FindByID(ctx context.Context, id int64) (*entity.Session, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *sessionRepository) FindByAccessHash(ctx context.Context, accessHash string) (*entity.Session, error) {
	return repo.findOne(ctx, "access_token_hash = ?", accessHash)
}

func (repo *sessionRepository) FindValidByAccessHash(ctx context.Context, accessHash string, now time.Time) (*entity.Session, error) {
	return repo.findOne(ctx,
		"access_token_hash = ? AND active = ? AND access_expires_at > ?", accessHash, true, now)
}

func (repo *sessionRepository) FindValidByRefreshHash(ctx context.Context, refreshHash string, now time.Time) (*entity.Session, error) {
	return repo.findOne(ctx,
		"refresh_token_hash = ? AND active = ? AND refresh_expires_at > ?", refreshHash, true, now)
}

func (repo *sessionRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where(query, args...).
		Take(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return toSessionDomain(&sessionM), nil
}

func (repo *sessionRepository) Touch(ctx context.Context, id int64, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ? AND active = ? AND last_activity_at < ?", id, true, now).
		Update("last_activity_at", now)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to touch session")
	}

	return nil
}

// Rotate is a compare-and-swap on the previous refresh hash.
func (repo *sessionRepository) Rotate(ctx context.Context, id int64, rotation repository.SessionRotation) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ? AND refresh_token_hash = ? AND active = ?", id, rotation.PreviousRefreshHash, true).
		Updates(map[string]any{
			"access_token_hash":  rotation.AccessTokenHash,
			"refresh_token_hash": rotation.RefreshTokenHash,
			"access_expires_at":  rotation.AccessExpiresAt,
			"refresh_expires_at": rotation.RefreshExpiresAt,
			"last_activity_at":   rotation.RotatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rotate session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionRotated
	}

	return nil
}

func (repo *sessionRepository) Deactivate(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate session")
	}

	return nil
}

func (repo *sessionRepository) DeactivateAllForPrincipal(ctx context.Context, principalID int64) (int, error) {
	return repo.deactivateWhere(ctx, "failed to deactivate sessions",
		"principal_id = ? AND active = ?", principalID, true)
}

func (repo *sessionRepository) DeactivateMany(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	return repo.deactivateWhere(ctx, "failed to deactivate sessions",
		"id IN ? AND active = ?", ids, true)
}

// SweepExpired deactivates on refresh expiry; an expired access token alone is still refreshable.
func (repo *sessionRepository) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	return repo.deactivateWhere(ctx, "failed to sweep expired sessions",
		"active = ? AND refresh_expires_at <= ?", true, now)
}

func (repo *sessionRepository) deactivateWhere(ctx context.Context, details string, query string, args ...any) (int, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where(query, args...).
		Update("active", false)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, details)
	}

	return int(result.RowsAffected), nil
}

func (repo *sessionRepository) ListActiveForPrincipal(ctx context.Context, principalID int64, now time.Time) ([]*entity.Session, error) {
	var sessionModels []*model.SessionModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("principal_id = ? AND active = ? AND refresh_expires_at > ?", principalID, true, now).
		Order("last_activity_at ASC").
		Order("id ASC").
		Find(&sessionModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	sessions := make([]*entity.Session, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toSessionDomain(sessionM))
	}

	return sessions, nil
}

func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:               data.ID,
		PrincipalID:      data.PrincipalID,
		AccessTokenHash:  data.AccessTokenHash,
		RefreshTokenHash: data.RefreshTokenHash,
		AccessExpiresAt:  data.AccessExpiresAt,
		RefreshExpiresAt: data.RefreshExpiresAt,
		CreatedAt:        data.CreatedAt,
		LastActivityAt:   data.LastActivityAt,
		Active:           data.Active,
	}
}

func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:               data.ID,
		PrincipalID:      data.PrincipalID,
		AccessTokenHash:  data.AccessTokenHash,
		RefreshTokenHash: data.RefreshTokenHash,
		AccessExpiresAt:  data.AccessExpiresAt,
		RefreshExpiresAt: data.RefreshExpiresAt,
		CreatedAt:        data.CreatedAt,
		LastActivityAt:   data.LastActivityAt,
		Active:           data.Active,
	}
}
