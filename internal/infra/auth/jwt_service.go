package auth

import (
	"time"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
// Access and refresh tokens are signed with different secrets.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	tokenCfg := config.TokenConfig{
		Issuer:     config.DefaultTokenIssuer,
		AccessTTL:  config.DefaultAccessTokenTTL,
		RefreshTTL: config.DefaultRefreshTokenTTL,
	}
	if cfg.Token != nil {
		tokenCfg = *cfg.Token
	}

	return newJWTService(cfg.SecretKey.Access, cfg.SecretKey.Refresh, tokenCfg, time.Now), nil
}

func newJWTService(accessSecret, refreshSecret string, tokenCfg config.TokenConfig, now func() time.Time) *jwtService {
	return &jwtService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		issuer:        tokenCfg.Issuer,
		accessTTL:     tokenCfg.AccessTTL,
		refreshTTL:    tokenCfg.RefreshTTL,
		now:           now,
	}
}

func (s *jwtService) IssueAccess(principalID int64, username string) (string, time.Time, error) {
	return s.issue(principalID, username, service.TokenTypeAccess, s.now())
}

func (s *jwtService) IssueRefresh(principalID int64, username string) (string, time.Time, error) {
	return s.issue(principalID, username, service.TokenTypeRefresh, s.now())
}

// IssuePair signs both tokens against the same clock reading.
func (s *jwtService) IssuePair(principalID int64, username string) (*entity.TokenPair, error) {
	issuedAt := s.now()

	access, accessExp, err := s.issue(principalID, username, service.TokenTypeAccess, issuedAt)
	if err != nil {
		return nil, err
	}

	refresh, refreshExp, err := s.issue(principalID, username, service.TokenTypeRefresh, issuedAt)
	if err != nil {
		return nil, err
	}

	return &entity.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (s *jwtService) Verify(token string, expected service.TokenType) (*service.Claims, error) {
	return s.verify(token, expected, true)
}

func (s *jwtService) VerifyIgnoringExpiry(token string, expected service.TokenType) (*service.Claims, error) {
	return s.verify(token, expected, false)
}

func (s *jwtService) ExtractSubject(token string) (string, error) {
	claims, err := s.Verify(token, service.TokenTypeAccess)
	if err != nil {
		return "", err
	}

	return claims.Subject, nil
}

// HashToken returns the hex SHA-256 digest stored in place of the raw token.
func (s *jwtService) HashToken(token string) string {
	return util.SHA256Hex(token)
}

func (s *jwtService) AccessTTL() time.Duration {
	return s.accessTTL
}

func (s *jwtService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) issue(principalID int64, username string, tokenType service.TokenType, issuedAt time.Time) (string, time.Time, error) {
	ttl, secret := s.paramsFor(tokenType)
	expiresAt := issuedAt.Add(ttl).Truncate(jwt.TimePrecision)

	claims := service.Claims{
		PrincipalID: principalID,
		Type:        tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   username,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, errors.Wrapf(err, "failed to sign %s token", tokenType)
	}

	return signed, expiresAt, nil
}

func (s *jwtService) verify(token string, expected service.TokenType, checkExpiry bool) (*service.Claims, error) {
	_, secret := s.paramsFor(expected)

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if checkExpiry {
		opts = append(opts, jwt.WithExpirationRequired(), jwt.WithIssuer(s.issuer))
	} else {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &service.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, opts...)
	if err != nil {
		if checkExpiry && errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrExpiredToken
		}

		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}
	if !parsed.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	if claims.Type != expected {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected token type " + string(claims.Type))
	}
	if !checkExpiry && claims.Issuer != s.issuer {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected issuer")
	}
	if claims.Subject == "" || claims.PrincipalID == 0 {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("missing subject")
	}

	return claims, nil
}

func (s *jwtService) paramsFor(tokenType service.TokenType) (time.Duration, []byte) {
	if tokenType == service.TokenTypeRefresh {
		return s.refreshTTL, s.refreshSecret
	}

	return s.accessTTL, s.accessSecret
}
