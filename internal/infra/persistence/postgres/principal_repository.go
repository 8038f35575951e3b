package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// principalRepository implements repository.PrincipalRepository using GORM.
type principalRepository struct {
	db *gorm.DB
}

func NewPrincipalRepository(db *gorm.DB) repository.PrincipalRepository {
	return &principalRepository{db: db}
}

func (repo *principalRepository) FindByID(ctx context.Context, id int64) (*entity.Principal, error) {
	var principalM model.PrincipalModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		Take(&principalM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrincipalNotFound
		}

		return nil, errors.Wrap(err, "failed to find principal by id")
	}

	return toPrincipalDomain(&principalM), nil
}

func (repo *principalRepository) Create(ctx context.Context, principal *entity.Principal) error {
	principalM := fromPrincipalDomain(principal)

	if err := repo.db.WithContext(ctx).Create(principalM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmployeeCodeTaken
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid principal data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create principal")
	}

	principal.ID = principalM.ID
	principal.CreatedAt = principalM.CreatedAt
	principal.UpdatedAt = principalM.UpdatedAt

	return nil
}

func (repo *principalRepository) SetActive(ctx context.Context, id int64, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PrincipalModel{}).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update principal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPrincipalNotFound
	}

	return nil
}

// AcquireSessionMutex locks the principal row with SELECT ... FOR UPDATE. Only meaningful
// inside a transaction; the lock is released on commit or rollback.
func (repo *principalRepository) AcquireSessionMutex(ctx context.Context, id int64) error {
	var principalM model.PrincipalModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		Take(&principalM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrPrincipalNotFound
		}

		return errors.Wrap(err, "failed to lock principal")
	}

	return nil
}

func toPrincipalDomain(data *model.PrincipalModel) *entity.Principal {
	if data == nil {
		return nil
	}

	return &entity.Principal{
		ID:           data.ID,
		EmployeeCode: data.EmployeeCode,
		Name:         data.Name,
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromPrincipalDomain(data *entity.Principal) *model.PrincipalModel {
	if data == nil {
		return nil
	}

	return &model.PrincipalModel{
		ID:           data.ID,
		EmployeeCode: data.EmployeeCode,
		Name:         data.Name,
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
