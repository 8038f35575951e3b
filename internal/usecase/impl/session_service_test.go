package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedSessions stores sessions whose last activity is spaced one minute apart, oldest first.
func seedSessions(t *testing.T, h *harness, principalID int64, count int) []*entity.Session {
	t.Helper()

	now := h.clock.Now()
	sessions := make([]*entity.Session, 0, count)
	for i := range count {
		session := &entity.Session{
			PrincipalID:      principalID,
			AccessTokenHash:  fmt.Sprintf("access-%d-%d", principalID, i),
			RefreshTokenHash: fmt.Sprintf("refresh-%d-%d", principalID, i),
			AccessExpiresAt:  now.Add(time.Hour),
			RefreshExpiresAt: now.Add(24 * time.Hour),
			CreatedAt:        now,
			LastActivityAt:   now.Add(time.Duration(i-count) * time.Minute),
			Active:           true,
		}
		require.NoError(t, h.store.Sessions().Create(context.Background(), session))
		sessions = append(sessions, session)
	}

	return sessions
}

func TestSessionService_EnforceLimitEvictsOldest(t *testing.T) {
	h := newHarness(t, 0)
	bob := h.provision(t, testEmployeeCode, "bob", testPassword)
	ctx := context.Background()
	seeded := seedSessions(t, h, bob.ID, 4)

	evicted, err := h.sessions.EnforceLimit(ctx, bob.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, evicted)

	active, err := h.sessions.ListActive(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, active, 3)
	for _, session := range active {
		assert.NotEqual(t, seeded[0].ID, session.ID, "the least recently active session is evicted")
	}
	assert.Equal(t, 1, h.metrics.evicted)
}

func TestSessionService_EnforceLimitTieBreaksOnLowestID(t *testing.T) {
	h := newHarness(t, 0)
	bob := h.provision(t, testEmployeeCode, "bob", testPassword)
	ctx := context.Background()
	now := h.clock.Now()

	var ids []int64
	for i := range 3 {
		session := &entity.Session{
			PrincipalID:      bob.ID,
			AccessTokenHash:  fmt.Sprintf("a%d", i),
			RefreshTokenHash: fmt.Sprintf("r%d", i),
			AccessExpiresAt:  now.Add(time.Hour),
			RefreshExpiresAt: now.Add(time.Hour),
			LastActivityAt:   now.Add(-time.Minute),
			Active:           true,
		}
		require.NoError(t, h.store.Sessions().Create(ctx, session))
		ids = append(ids, session.ID)
	}

	_, err := h.sessions.EnforceLimit(ctx, bob.ID, 2)
	require.NoError(t, err)

	evicted, err := h.store.Sessions().FindByID(ctx, ids[0])
	require.NoError(t, err)
	assert.False(t, evicted.Active)
}

func TestSessionService_EnforceLimitDisabled(t *testing.T) {
	h := newHarness(t, 0)
	bob := h.provision(t, testEmployeeCode, "bob", testPassword)
	seedSessions(t, h, bob.ID, 4)

	evicted, err := h.sessions.EnforceLimit(context.Background(), bob.ID, 0)
	require.NoError(t, err)
	assert.Zero(t, evicted)
}

func TestSessionService_LoginEnforcesLimit(t *testing.T) {
	h := newHarness(t, 3)
	bob := h.provision(t, testEmployeeCode, "bob", testPassword)
	ctx := context.Background()

	var first string
	for i := range 4 {
		output, err := h.login("bob", testPassword)
		require.NoError(t, err)
		if i == 0 {
			first = output.Tokens.AccessToken
		}
		h.clock.Advance(time.Second)
	}

	active, err := h.sessions.ListActive(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, active, 3)

	_, err = h.auth.Authenticate(ctx, first)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken, "oldest session was evicted")
}

func TestSessionService_ConcurrentLoginsRespectLimit(t *testing.T) {
	h := newHarness(t, 2)
	bob := h.provision(t, testEmployeeCode, "bob", testPassword)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.login("bob", testPassword)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	active, err := h.sessions.ListActive(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestSessionService_Revoke(t *testing.T) {
	h := newHarness(t, 0)
	bob := h.provision(t, testEmployeeCode, "bob", testPassword)
	alice := h.provision(t, "EMP00002", "alice", testPassword)
	ctx := context.Background()
	bobSessions := seedSessions(t, h, bob.ID, 2)

	err := h.sessions.Revoke(ctx, alice.ID, bobSessions[0].ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = h.sessions.Revoke(ctx, bob.ID, 9999)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.NoError(t, h.sessions.Revoke(ctx, bob.ID, bobSessions[0].ID))
	require.NoError(t, h.sessions.Revoke(ctx, bob.ID, bobSessions[0].ID), "revoking twice is harmless")

	count, err := h.sessions.RevokeAll(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSessionService_SweepExpired(t *testing.T) {
	h := newHarness(t, 0)
	bob := h.provision(t, testEmployeeCode, "bob", testPassword)
	ctx := context.Background()
	seedSessions(t, h, bob.ID, 2)

	count, err := h.sessions.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	h.clock.Advance(2 * time.Hour)
	count, err = h.sessions.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "an expired access token alone keeps the session refreshable")

	h.clock.Advance(24 * time.Hour)
	count, err = h.sessions.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, h.metrics.swept)
}
