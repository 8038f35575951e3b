package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// CreateRoleInput defines a new role.
type CreateRoleInput struct {
	Name        string
	Description string
}

// CreatePermissionInput defines a new permission. Names follow PERMISSION_<NAME>.
type CreatePermissionInput struct {
	Name        string
	Description string
}

// PermissionUsecase resolves effective permissions and administers the role graph.
type PermissionUsecase interface {
	// Resolve returns the sorted union of permissions over every role of the principal.
	Resolve(ctx context.Context, principalID int64) (entity.Permissions, error)
	CreateRole(ctx context.Context, input *CreateRoleInput) (*entity.Role, error)
	ListRoles(ctx context.Context) ([]*entity.Role, error)
	CreatePermission(ctx context.Context, input *CreatePermissionInput) (*entity.Permission, error)
	GrantPermission(ctx context.Context, roleID int64, permissionName string) error
	RevokePermission(ctx context.Context, roleID int64, permissionName string) error
	AssignRole(ctx context.Context, principalID, roleID int64) error
	RevokeRole(ctx context.Context, principalID, roleID int64) error
}
