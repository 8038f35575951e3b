package model

import "time"

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex:idx_roles_name"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (RoleModel) TableName() string {
	return "roles"
}

// PermissionModel mirrors the 'permissions' table.
type PermissionModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex:idx_permissions_name"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (PermissionModel) TableName() string {
	return "permissions"
}

// RolePermissionModel is the role -> permission join row.
type RolePermissionModel struct {
	RoleID       int64 `gorm:"primaryKey"`
	PermissionID int64 `gorm:"primaryKey"`

	Role       RoleModel       `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
	Permission PermissionModel `gorm:"foreignKey:PermissionID;constraint:OnDelete:CASCADE"`
}

func (RolePermissionModel) TableName() string {
	return "role_permissions"
}

// UserRoleModel is the principal -> role join row.
type UserRoleModel struct {
	PrincipalID int64 `gorm:"primaryKey"`
	RoleID      int64 `gorm:"primaryKey;index:idx_user_roles_role_id"`

	Principal PrincipalModel `gorm:"foreignKey:PrincipalID;constraint:OnDelete:CASCADE"`
	Role      RoleModel      `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&PrincipalModel{},
		&AuthAccountModel{},
		&SessionModel{},
		&RoleModel{},
		&PermissionModel{},
		&RolePermissionModel{},
		&UserRoleModel{},
	}
}
