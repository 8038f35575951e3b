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

// rbacRepository implements repository.RBACRepository using GORM.
type rbacRepository struct {
	db *gorm.DB
}

func NewRBACRepository(db *gorm.DB) repository.RBACRepository {
	return &rbacRepository{db: db}
}

func (repo *rbacRepository) CreateRole(ctx context.Context, role *entity.Role) error {
	roleM := &model.RoleModel{Name: role.Name, Description: role.Description}

	if err := repo.db.WithContext(ctx).Create(roleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRoleExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create role")
	}

	role.ID = roleM.ID
	role.CreatedAt = roleM.CreatedAt

	return nil
}

func (repo *rbacRepository) FindRoleByID(ctx context.Context, id int64) (*entity.Role, error) {
	var roleM model.RoleModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role")
	}

	return toRoleDomain(&roleM), nil
}

func (repo *rbacRepository) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	var roleModels []*model.RoleModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, toRoleDomain(roleM))
	}

	return roles, nil
}

func (repo *rbacRepository) CreatePermission(ctx context.Context, permission *entity.Permission) error {
	permissionM := &model.PermissionModel{Name: permission.Name, Description: permission.Description}

	if err := repo.db.WithContext(ctx).Create(permissionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPermissionExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create permission")
	}

	permission.ID = permissionM.ID
	permission.CreatedAt = permissionM.CreatedAt

	return nil
}

func (repo *rbacRepository) FindPermissionByName(ctx context.Context, name string) (*entity.Permission, error) {
	var permissionM model.PermissionModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).Take(&permissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPermissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find permission")
	}

	return &entity.Permission{
		ID:          permissionM.ID,
		Name:        permissionM.Name,
		Description: permissionM.Description,
		CreatedAt:   permissionM.CreatedAt,
	}, nil
}

func (repo *rbacRepository) GrantPermission(ctx context.Context, roleID, permissionID int64) error {
	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.RolePermissionModel{RoleID: roleID, PermissionID: permissionID}).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("role or permission does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to grant permission")
	}

	return nil
}

func (repo *rbacRepository) RevokePermission(ctx context.Context, roleID, permissionID int64) error {
	err := repo.db.WithContext(ctx).
		Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		Delete(&model.RolePermissionModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to revoke permission")
	}

	return nil
}

func (repo *rbacRepository) AssignRole(ctx context.Context, principalID, roleID int64) error {
	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.UserRoleModel{PrincipalID: principalID, RoleID: roleID}).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("principal or role does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to assign role")
	}

	return nil
}

func (repo *rbacRepository) RevokeRole(ctx context.Context, principalID, roleID int64) error {
	err := repo.db.WithContext(ctx).
		Where("principal_id = ? AND role_id = ?", principalID, roleID).
		Delete(&model.UserRoleModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to revoke role")
	}

	return nil
}

func (repo *rbacRepository) PrincipalIDsWithRole(ctx context.Context, roleID int64) ([]int64, error) {
	var ids []int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserRoleModel{}).
		Where("role_id = ?", roleID).
		Order("principal_id ASC").
		Pluck("principal_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list role members")
	}

	return ids, nil
}

// PermissionNamesForPrincipal walks user_roles -> role_permissions -> permissions in one query.
func (repo *rbacRepository) PermissionNamesForPrincipal(ctx context.Context, principalID int64) ([]string, error) {
	var names []string
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.PermissionModel{}).
		Distinct("permissions.name").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Joins("JOIN user_roles ON user_roles.role_id = role_permissions.role_id").
		Where("user_roles.principal_id = ?", principalID).
		Order("permissions.name ASC").
		Pluck("permissions.name", &names).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve permissions")
	}

	return names, nil
}

func toRoleDomain(data *model.RoleModel) *entity.Role {
	return &entity.Role{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}
