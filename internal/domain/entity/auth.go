package entity

import "time"

// AuthAccount is the credential record attached to exactly one principal.
// Locked is never stored: it is derived from FailedAttempts and the lockout threshold.
type AuthAccount struct {
	ID                     int64
	PrincipalID            int64
	Username               string
	PasswordHash           string // bcrypt hash, the plaintext is never kept
	Enabled                bool
	FailedAttempts         int
	RecoveryTokenHash      string // SHA-256 of the outstanding recovery token, empty when none
	RecoveryTokenExpiresAt *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// HasRecoveryToken reports whether a recovery token is outstanding and unexpired at now.
func (a *AuthAccount) HasRecoveryToken(now time.Time) bool {
	return a.RecoveryTokenHash != "" &&
		a.RecoveryTokenExpiresAt != nil &&
		now.Before(*a.RecoveryTokenExpiresAt)
}

// Session is the server-side record of one login. Tokens are stored as SHA-256 hashes.
// A session is valid only while Active and before the relevant expiry; expiry never deletes it.
type Session struct {
	ID               int64
	PrincipalID      int64
	AccessTokenHash  string
	RefreshTokenHash string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
	CreatedAt        time.Time
	LastActivityAt   time.Time
	Active           bool
}

// AccessValidAt reports whether the access token of the session is usable at now.
func (s *Session) AccessValidAt(now time.Time) bool {
	return s.Active && now.Before(s.AccessExpiresAt)
}

// RefreshValidAt reports whether the refresh token of the session is usable at now.
func (s *Session) RefreshValidAt(now time.Time) bool {
	return s.Active && now.Before(s.RefreshExpiresAt)
}

// TokenPair is a freshly issued access/refresh token pair. Raw tokens only live here.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// AuthenticatedPrincipal is the immutable result of the request gate.
type AuthenticatedPrincipal struct {
	PrincipalID int64
	Username    string
	SessionID   int64
	Permissions Permissions
}

// Can reports whether the principal holds the named permission.
func (p *AuthenticatedPrincipal) Can(permission string) bool {
	if p == nil {
		return false
	}

	return p.Permissions.Contains(permission)
}
