package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
)

type rbacRepository struct {
	conn conn
}

func (repo *rbacRepository) CreateRole(ctx context.Context, role *entity.Role) error {
	return repo.conn.run(ctx, func(st *state) error {
		for _, existing := range st.roles {
			if existing.Name == role.Name {
				return repository.ErrRoleExists
			}
		}

		row := *role
		row.ID = st.id()
		row.CreatedAt = time.Now()
		st.roles[row.ID] = row
		*role = row

		return nil
	})
}

func (repo *rbacRepository) FindRoleByID(ctx context.Context, id int64) (*entity.Role, error) {
	var out *entity.Role
	err := repo.conn.run(ctx, func(st *state) error {
		role, ok := st.roles[id]
		if !ok {
			return repository.ErrRoleNotFound
		}
		out = &role

		return nil
	})

	return out, err
}

func (repo *rbacRepository) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	var out []*entity.Role
	err := repo.conn.run(ctx, func(st *state) error {
		for _, role := range st.roles {
			out = append(out, &role)
		}

		return nil
	})
	slices.SortFunc(out, func(a, b *entity.Role) int { return strings.Compare(a.Name, b.Name) })

	return out, err
}

func (repo *rbacRepository) CreatePermission(ctx context.Context, permission *entity.Permission) error {
	return repo.conn.run(ctx, func(st *state) error {
		for _, existing := range st.permissions {
			if existing.Name == permission.Name {
				return repository.ErrPermissionExists
			}
		}

		row := *permission
		row.ID = st.id()
		row.CreatedAt = time.Now()
		st.permissions[row.ID] = row
		*permission = row

		return nil
	})
}

func (repo *rbacRepository) FindPermissionByName(ctx context.Context, name string) (*entity.Permission, error) {
	var out *entity.Permission
	err := repo.conn.run(ctx, func(st *state) error {
		for _, permission := range st.permissions {
			if permission.Name == name {
				out = &permission

				return nil
			}
		}

		return repository.ErrPermissionNotFound
	})

	return out, err
}

func (repo *rbacRepository) GrantPermission(ctx context.Context, roleID, permissionID int64) error {
	return repo.conn.run(ctx, func(st *state) error {
		_, roleOK := st.roles[roleID]
		_, permissionOK := st.permissions[permissionID]
		if !roleOK || !permissionOK {
			return domainerrors.ErrNotFound.WrapMessage("role or permission does not exist")
		}
		st.rolePermissions[entity.RolePermission{RoleID: roleID, PermissionID: permissionID}] = struct{}{}

		return nil
	})
}

func (repo *rbacRepository) RevokePermission(ctx context.Context, roleID, permissionID int64) error {
	return repo.conn.run(ctx, func(st *state) error {
		delete(st.rolePermissions, entity.RolePermission{RoleID: roleID, PermissionID: permissionID})

		return nil
	})
}

func (repo *rbacRepository) AssignRole(ctx context.Context, principalID, roleID int64) error {
	return repo.conn.run(ctx, func(st *state) error {
		_, principalOK := st.principals[principalID]
		_, roleOK := st.roles[roleID]
		if !principalOK || !roleOK {
			return domainerrors.ErrNotFound.WrapMessage("principal or role does not exist")
		}
		st.userRoles[entity.UserRole{PrincipalID: principalID, RoleID: roleID}] = struct{}{}

		return nil
	})
}

func (repo *rbacRepository) RevokeRole(ctx context.Context, principalID, roleID int64) error {
	return repo.conn.run(ctx, func(st *state) error {
		delete(st.userRoles, entity.UserRole{PrincipalID: principalID, RoleID: roleID})

		return nil
	})
}

func (repo *rbacRepository) PrincipalIDsWithRole(ctx context.Context, roleID int64) ([]int64, error) {
	var out []int64
	err := repo.conn.run(ctx, func(st *state) error {
		for assignment := range st.userRoles {
			if assignment.RoleID == roleID {
				out = append(out, assignment.PrincipalID)
			}
		}

		return nil
	})
	slices.Sort(out)

	return out, err
}

func (repo *rbacRepository) PermissionNamesForPrincipal(ctx context.Context, principalID int64) ([]string, error) {
	var out []string
	err := repo.conn.run(ctx, func(st *state) error {
		for assignment := range st.userRoles {
			if assignment.PrincipalID != principalID {
				continue
			}
			for grant := range st.rolePermissions {
				if grant.RoleID != assignment.RoleID {
					continue
				}
				if permission, ok := st.permissions[grant.PermissionID]; ok {
					out = append(out, permission.Name)
				}
			}
		}

		return nil
	})

	return out, err
}
