package auth

import (
	"strings"
	"testing"
	"time"

	"backoffice/config"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "test_access_secret_key_very_long_for_testing"
	testRefreshSecret = "test_refresh_secret_key_very_long_for_testing"
)

type testClock struct {
	current time.Time
}

func (c *testClock) Now() time.Time {
	return c.current
}

func (c *testClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestJWTService(clock *testClock) *jwtService {
	return newJWTService(testAccessSecret, testRefreshSecret, config.TokenConfig{
		Issuer:     "backoffice-test",
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}, clock.Now)
}

func TestJWTService_IssuePairAndVerify(t *testing.T) {
	clock := &testClock{current: time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(clock)

	pair, err := svc.IssuePair(42, "bob")
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, clock.current.Add(30*time.Minute), pair.AccessExpiresAt)
	assert.Equal(t, clock.current.Add(24*time.Hour), pair.RefreshExpiresAt)

	accessClaims, err := svc.Verify(pair.AccessToken, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(42), accessClaims.PrincipalID)
	assert.Equal(t, "bob", accessClaims.Subject)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.NotEmpty(t, accessClaims.ID)

	refreshClaims, err := svc.Verify(pair.RefreshToken, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)

	subject, err := svc.ExtractSubject(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "bob", subject)
}

func TestJWTService_TokensAreUniqueWithinTheSameSecond(t *testing.T) {
	clock := &testClock{current: time.Now()}
	svc := newTestJWTService(clock)

	first, _, err := svc.IssueAccess(1, "alice")
	require.NoError(t, err)
	second, _, err := svc.IssueAccess(1, "alice")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, svc.HashToken(first), svc.HashToken(second))
}

func TestJWTService_WrongTypeIsInvalid(t *testing.T) {
	clock := &testClock{current: time.Now()}
	svc := newTestJWTService(clock)

	pair, err := svc.IssuePair(7, "carol")
	require.NoError(t, err)

	_, err = svc.Verify(pair.RefreshToken, service.TokenTypeAccess)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	_, err = svc.Verify(pair.AccessToken, service.TokenTypeRefresh)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_Expiry(t *testing.T) {
	clock := &testClock{current: time.Now()}
	svc := newTestJWTService(clock)

	pair, err := svc.IssuePair(7, "carol")
	require.NoError(t, err)

	clock.Advance(31 * time.Minute)

	_, err = svc.Verify(pair.AccessToken, service.TokenTypeAccess)
	assert.ErrorIs(t, err, domainerrors.ErrExpiredToken)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidToken)

	claims, err := svc.VerifyIgnoringExpiry(pair.AccessToken, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.PrincipalID)

	_, err = svc.Verify(pair.RefreshToken, service.TokenTypeRefresh)
	assert.NoError(t, err, "refresh token outlives the access token")
}

func TestJWTService_InvalidTokens(t *testing.T) {
	clock := &testClock{current: time.Now()}
	svc := newTestJWTService(clock)

	pair, err := svc.IssuePair(7, "carol")
	require.NoError(t, err)

	tampered := pair.AccessToken[:len(pair.AccessToken)-2] + "xx"
	if strings.HasSuffix(pair.AccessToken, "xx") {
		tampered = pair.AccessToken[:len(pair.AccessToken)-2] + "yy"
	}

	other := newJWTService("another_access_secret", testRefreshSecret, config.TokenConfig{
		Issuer: "backoffice-test", AccessTTL: time.Minute, RefreshTTL: time.Hour,
	}, clock.Now)
	foreign, _, err := other.IssueAccess(7, "carol")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "carol", "pid": 7, "token_type": "access", "iss": "backoffice-test",
		"exp": clock.current.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":        "clearly-not-a-jwt-token-format",
		"empty":          "",
		"tampered":       tampered,
		"foreign secret": foreign,
		"alg none":       noneToken,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token, service.TokenTypeAccess)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

			_, err = svc.VerifyIgnoringExpiry(token, service.TokenTypeAccess)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		})
	}
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	cfg := &config.Config{}
	cfg.SecretKey.Access = testAccessSecret
	cfg.SecretKey.Refresh = testRefreshSecret
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAccessTokenTTL, svc.AccessTTL())
	assert.Equal(t, config.DefaultRefreshTokenTTL, svc.RefreshTTL())
}
