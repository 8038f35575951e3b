package service

import (
	"time"

	"backoffice/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes access from refresh tokens inside the claims.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims defines the custom claims for the JWT tokens. Subject carries the username.
type Claims struct {
	PrincipalID int64     `json:"pid"`
	Type        TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed tokens. It is stateless and never
// consults the session store.
type TokenService interface {
	IssueAccess(principalID int64, username string) (token string, expiresAt time.Time, err error)
	IssueRefresh(principalID int64, username string) (token string, expiresAt time.Time, err error)
	IssuePair(principalID int64, username string) (*entity.TokenPair, error)

	// Verify checks signature, algorithm, type and expiry. It returns
	// domainerrors.ErrExpiredToken for an otherwise valid expired token and
	// domainerrors.ErrInvalidToken for everything else.
	Verify(token string, expected TokenType) (*Claims, error)

	// VerifyIgnoringExpiry is Verify without the expiry check.
	VerifyIgnoringExpiry(token string, expected TokenType) (*Claims, error)

	// ExtractSubject returns the username of a verified access token.
	ExtractSubject(token string) (string, error)

	// HashToken returns the digest under which a token is persisted.
	HashToken(token string) string

	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}
