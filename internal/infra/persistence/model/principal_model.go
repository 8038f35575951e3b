package model

import "time"

// PrincipalModel mirrors the 'principals' table.
type PrincipalModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	EmployeeCode string `gorm:"type:char(8);uniqueIndex:idx_principals_employee_code;not null"`
	Name         string `gorm:"type:varchar(255);not null"`
	Active       bool   `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrincipalModel) TableName() string {
	return "principals"
}
