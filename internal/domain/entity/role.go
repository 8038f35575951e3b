package entity

import (
	"slices"
	"time"
)

// Well-known permissions guarding the administrative surface.
const (
	PermissionUserManagement = "PERMISSION_USER_MANAGEMENT"
	PermissionRoleManagement = "PERMISSION_ROLE_MANAGEMENT"
)

// Role is a named bundle of permissions.
type Role struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

// Permission is a named capability.
type Permission struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

// RolePermission grants a permission to a role. (RoleID, PermissionID) is unique.
type RolePermission struct {
	RoleID       int64
	PermissionID int64
}

// UserRole assigns a role to a principal. (PrincipalID, RoleID) is unique.
type UserRole struct {
	PrincipalID int64
	RoleID      int64
}

// Permissions is a sorted, duplicate-free set of permission names.
type Permissions []string

// NewPermissions sorts and deduplicates names.
func NewPermissions(names ...string) Permissions {
	out := make(Permissions, 0, len(names))
	for _, name := range names {
		if name != "" {
			out = append(out, name)
		}
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// Contains checks if the set holds the named permission.
func (ps Permissions) Contains(name string) bool {
	_, found := slices.BinarySearch(ps, name)

	return found
}

// Strings returns a copy as a plain string slice.
func (ps Permissions) Strings() []string {
	return slices.Clone([]string(ps))
}
