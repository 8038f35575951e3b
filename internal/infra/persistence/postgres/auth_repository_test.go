package postgres

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthAccountRepository_IncrementFailedAttemptsIsAtomic(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthAccountRepository(db)

	mock.ExpectQuery(`UPDATE "auth_accounts" SET "failed_attempts"=failed_attempts \+ 1,"updated_at"=\$1 WHERE principal_id = \$2 RETURNING "failed_attempts"`).
		WithArgs(sqlmock.AnyArg(), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"failed_attempts"}).AddRow(3))

	count, err := repo.IncrementFailedAttempts(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthAccountRepository_IncrementUnknownAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthAccountRepository(db)

	mock.ExpectQuery(`UPDATE "auth_accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"failed_attempts"}))

	_, err := repo.IncrementFailedAttempts(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthAccountRepository_FindByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthAccountRepository(db)

	rows := sqlmock.NewRows([]string{"id", "principal_id", "username", "password_hash", "enabled", "failed_attempts", "recovery_token_hash"}).
		AddRow(1, 7, "bob", "$2a$10$hash", true, 2, nil)
	mock.ExpectQuery(`SELECT \* FROM "auth_accounts" WHERE username = \$1`).
		WillReturnRows(rows)

	account, err := repo.FindByUsername(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(7), account.PrincipalID)
	assert.Equal(t, 2, account.FailedAttempts)
	assert.Empty(t, account.RecoveryTokenHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthAccountRepository_FindByUsernameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthAccountRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "auth_accounts" WHERE username = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAuthAccountRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthAccountRepository(db)

	mock.ExpectQuery(`INSERT INTO "auth_accounts"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_auth_accounts_username"})

	err := repo.Create(context.Background(), &entity.AuthAccount{
		PrincipalID: 7, Username: "bob", PasswordHash: "$2a$10$hash", Enabled: true,
	})
	assert.ErrorIs(t, err, repository.ErrAccountExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthAccountRepository_ResetUnknownAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthAccountRepository(db)

	mock.ExpectExec(`UPDATE "auth_accounts" SET "failed_attempts"=\$1,"updated_at"=\$2 WHERE principal_id = \$3`).
		WithArgs(0, sqlmock.AnyArg(), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ResetFailedAttempts(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
