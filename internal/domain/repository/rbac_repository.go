package repository

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	ErrRoleNotFound       = errors.New("role not found")
	ErrPermissionNotFound = errors.New("permission not found")
	ErrRoleExists         = errors.New("role already exists")
	ErrPermissionExists   = errors.New("permission already exists")
)

// RBACRepository persists the role graph. Grants and assignments are idempotent.
type RBACRepository interface {
	CreateRole(ctx context.Context, role *entity.Role) error
	FindRoleByID(ctx context.Context, id int64) (*entity.Role, error)
	ListRoles(ctx context.Context) ([]*entity.Role, error)

	CreatePermission(ctx context.Context, permission *entity.Permission) error
	FindPermissionByName(ctx context.Context, name string) (*entity.Permission, error)

	GrantPermission(ctx context.Context, roleID, permissionID int64) error
	RevokePermission(ctx context.Context, roleID, permissionID int64) error

	AssignRole(ctx context.Context, principalID, roleID int64) error
	RevokeRole(ctx context.Context, principalID, roleID int64) error

	// PrincipalIDsWithRole lists the principals currently holding the role.
	PrincipalIDsWithRole(ctx context.Context, roleID int64) ([]int64, error)

	// PermissionNamesForPrincipal returns the union of the permission names over all roles
	// of the principal. Order and duplicates are unspecified.
	PermissionNamesForPrincipal(ctx context.Context, principalID int64) ([]string, error)
}
