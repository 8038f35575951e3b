package model

import "time"

// AuthAccountModel mirrors the 'auth_accounts' table. One account per principal.
type AuthAccountModel struct {
	ID                     int64   `gorm:"primaryKey;autoIncrement"`
	PrincipalID            int64   `gorm:"not null;uniqueIndex:idx_auth_accounts_principal_id"`
	Username               string  `gorm:"type:varchar(64);not null;uniqueIndex:idx_auth_accounts_username"`
	PasswordHash           string  `gorm:"type:varchar(255);not null"`
	Enabled                bool    `gorm:"not null"`
	FailedAttempts         int     `gorm:"not null;default:0;check:chk_auth_accounts_failed_attempts,failed_attempts >= 0"`
	RecoveryTokenHash      *string `gorm:"type:char(64);uniqueIndex:idx_auth_accounts_recovery_token_hash"`
	RecoveryTokenExpiresAt *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time

	Principal PrincipalModel `gorm:"foreignKey:PrincipalID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AuthAccountModel) TableName() string {
	return "auth_accounts"
}

// SessionModel mirrors the 'sessions' table. Token columns hold SHA-256 hex digests.
type SessionModel struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	PrincipalID      int64     `gorm:"not null;index:idx_sessions_principal_active,priority:1"`
	AccessTokenHash  string    `gorm:"type:char(64);not null;uniqueIndex:idx_sessions_access_token_hash"`
	RefreshTokenHash string    `gorm:"type:char(64);not null;uniqueIndex:idx_sessions_refresh_token_hash"`
	AccessExpiresAt  time.Time `gorm:"not null"`
	RefreshExpiresAt time.Time `gorm:"not null;index:idx_sessions_refresh_expires_at"`
	CreatedAt        time.Time `gorm:"not null"`
	LastActivityAt   time.Time `gorm:"not null"`
	Active           bool      `gorm:"not null;index:idx_sessions_principal_active,priority:2"`

	Principal PrincipalModel `gorm:"foreignKey:PrincipalID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
