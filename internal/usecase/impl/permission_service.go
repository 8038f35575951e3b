package impl

import (
	"context"
	"log/slog"
	"regexp"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var permissionNamePattern = regexp.MustCompile(`^PERMISSION_[A-Z0-9_]+$`)

// permissionService implements the PermissionUsecase interface.
type permissionService struct {
	rbacRepo repository.RBACRepository
	cache    service.PermissionCache
	logger   *slog.Logger
}

// PermissionServiceParams holds dependencies for PermissionService, injected by Fx.
type PermissionServiceParams struct {
	fx.In

	RBACRepo repository.RBACRepository
	Cache    service.PermissionCache `optional:"true"`
	Logger   *slog.Logger
}

// NewPermissionService is the constructor for permissionService.
func NewPermissionService(params PermissionServiceParams) usecase.PermissionUsecase {
	return &permissionService{
		rbacRepo: params.RBACRepo,
		cache:    params.Cache,
		logger:   params.Logger,
	}
}

func (srv *permissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *permissionService) Resolve(ctx context.Context, principalID int64) (entity.Permissions, error) {
	var generation uint64
	if srv.cache != nil {
		perms, gen, ok := srv.cache.Get(principalID)
		if ok {
			return perms, nil
		}
		generation = gen
	}

	names, err := srv.rbacRepo.PermissionNamesForPrincipal(ctx, principalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve permissions")
	}

	perms := entity.NewPermissions(names...)
	if srv.cache != nil {
		// Skipped when the role graph changed during the read.
		srv.cache.Set(principalID, generation, perms)
	}

	return perms, nil
}

func (srv *permissionService) CreateRole(ctx context.Context, input *usecase.CreateRoleInput) (*entity.Role, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role name is required")
	}

	role := &entity.Role{Name: input.Name, Description: input.Description}
	if err := srv.rbacRepo.CreateRole(ctx, role); err != nil {
		if errors.Is(err, repository.ErrRoleExists) {
			return nil, domainerrors.ErrDuplicateResource.WithDetails("role " + input.Name + " already exists")
		}

		return nil, errors.Wrap(err, "failed to create role")
	}
	srv.log(ctx).Info("Role created", slog.Int64("roleID", role.ID), slog.String("name", role.Name))

	return role, nil
}

func (srv *permissionService) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	roles, err := srv.rbacRepo.ListRoles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	return roles, nil
}

func (srv *permissionService) CreatePermission(ctx context.Context, input *usecase.CreatePermissionInput) (*entity.Permission, error) {
	if !permissionNamePattern.MatchString(input.Name) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("permission name must match PERMISSION_<NAME>")
	}

	permission := &entity.Permission{Name: input.Name, Description: input.Description}
	if err := srv.rbacRepo.CreatePermission(ctx, permission); err != nil {
		if errors.Is(err, repository.ErrPermissionExists) {
			return nil, domainerrors.ErrDuplicateResource.WithDetails("permission " + input.Name + " already exists")
		}

		return nil, errors.Wrap(err, "failed to create permission")
	}
	srv.log(ctx).Info("Permission created", slog.Int64("permissionID", permission.ID), slog.String("name", permission.Name))

	return permission, nil
}

func (srv *permissionService) GrantPermission(ctx context.Context, roleID int64, permissionName string) error {
	permission, err := srv.findPermission(ctx, permissionName)
	if err != nil {
		return err
	}
	if err := srv.rbacRepo.GrantPermission(ctx, roleID, permission.ID); err != nil {
		return errors.Wrap(err, "failed to grant permission")
	}
	srv.invalidateRoleHolders(ctx, roleID)
	srv.log(ctx).Info("Permission granted", slog.Int64("roleID", roleID), slog.String("permission", permissionName))

	return nil
}

func (srv *permissionService) RevokePermission(ctx context.Context, roleID int64, permissionName string) error {
	permission, err := srv.findPermission(ctx, permissionName)
	if err != nil {
		return err
	}
	if err := srv.rbacRepo.RevokePermission(ctx, roleID, permission.ID); err != nil {
		return errors.Wrap(err, "failed to revoke permission")
	}
	srv.invalidateRoleHolders(ctx, roleID)
	srv.log(ctx).Info("Permission revoked", slog.Int64("roleID", roleID), slog.String("permission", permissionName))

	return nil
}

func (srv *permissionService) AssignRole(ctx context.Context, principalID, roleID int64) error {
	if err := srv.rbacRepo.AssignRole(ctx, principalID, roleID); err != nil {
		return errors.Wrap(err, "failed to assign role")
	}
	srv.invalidate(principalID)
	srv.log(ctx).Info("Role assigned", slog.Int64("principalID", principalID), slog.Int64("roleID", roleID))

	return nil
}

func (srv *permissionService) RevokeRole(ctx context.Context, principalID, roleID int64) error {
	if err := srv.rbacRepo.RevokeRole(ctx, principalID, roleID); err != nil {
		return errors.Wrap(err, "failed to revoke role")
	}
	srv.invalidate(principalID)
	srv.log(ctx).Info("Role revoked", slog.Int64("principalID", principalID), slog.Int64("roleID", roleID))

	return nil
}

func (srv *permissionService) findPermission(ctx context.Context, name string) (*entity.Permission, error) {
	permission, err := srv.rbacRepo.FindPermissionByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrPermissionNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("permission " + name + " does not exist")
		}

		return nil, errors.Wrap(err, "failed to find permission")
	}

	return permission, nil
}

// invalidateRoleHolders drops the cached sets of every principal holding the role.
// If the holders cannot be listed the whole cache is purged instead.
func (srv *permissionService) invalidateRoleHolders(ctx context.Context, roleID int64) {
	if srv.cache == nil {
		return
	}

	holders, err := srv.rbacRepo.PrincipalIDsWithRole(ctx, roleID)
	if err != nil {
		srv.log(ctx).Warn("Failed to list role holders, purging permission cache", slog.Int64("roleID", roleID), slog.Any("error", err))
		srv.cache.Purge()

		return
	}
	srv.cache.Invalidate(holders...)
}

func (srv *permissionService) invalidate(principalIDs ...int64) {
	if srv.cache != nil {
		srv.cache.Invalidate(principalIDs...)
	}
}
