package postgres

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_RotateLosesRace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec(`UPDATE "sessions" SET .* WHERE id = \$\d+ AND refresh_token_hash = \$\d+ AND active = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Rotate(context.Background(), 5, repository.SessionRotation{
		PreviousRefreshHash: "old",
		AccessTokenHash:     "a2",
		RefreshTokenHash:    "r2",
		AccessExpiresAt:     time.Now().Add(time.Minute),
		RefreshExpiresAt:    time.Now().Add(time.Hour),
		RotatedAt:           time.Now(),
	})
	assert.ErrorIs(t, err, repository.ErrSessionRotated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_RotateWins(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec(`UPDATE "sessions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Rotate(context.Background(), 5, repository.SessionRotation{PreviousRefreshHash: "old"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_SweepExpiredUsesRefreshExpiry(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE "sessions" SET "active"=\$1 WHERE active = \$2 AND refresh_expires_at <= \$3`).
		WithArgs(false, true, now).
		WillReturnResult(sqlmock.NewResult(0, 4))

	count, err := repo.SweepExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_ListActiveOrdersByActivity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "principal_id", "active", "last_activity_at"}).
		AddRow(3, 7, true, now.Add(-time.Hour)).
		AddRow(1, 7, true, now.Add(-time.Minute))
	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE principal_id = \$1 AND active = \$2 AND refresh_expires_at > \$3 ORDER BY last_activity_at ASC,id ASC`).
		WithArgs(int64(7), true, now).
		WillReturnRows(rows)

	sessions, err := repo.ListActiveForPrincipal(context.Background(), 7, now)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, int64(3), sessions[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindValidByAccessHashNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE access_token_hash = \$1 AND active = \$2 AND access_expires_at > \$3`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindValidByAccessHash(context.Background(), "hash", time.Now())
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_DeactivateManyEmptyIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	count, err := repo.DeactivateMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
