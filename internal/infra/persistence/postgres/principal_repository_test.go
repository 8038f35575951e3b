package postgres

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipalRepository_AcquireSessionMutexLocksRow(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "principals" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	err := NewTransactionManager(db).Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return factory.NewPrincipalRepository().AcquireSessionMutex(context.Background(), 7)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrincipalRepository_AcquireSessionMutexRollsBackOnMissingPrincipal(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := NewTransactionManager(db).Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return factory.NewPrincipalRepository().AcquireSessionMutex(context.Background(), 7)
	})
	assert.ErrorIs(t, err, repository.ErrPrincipalNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrincipalRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPrincipalRepository(db)

	mock.ExpectQuery(`INSERT INTO "principals" \("employee_code","name","active","created_at","updated_at"\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	principal := &entity.Principal{EmployeeCode: "EMP00011", Name: "Bob", Active: true}
	require.NoError(t, repo.Create(context.Background(), principal))
	assert.Equal(t, int64(11), principal.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
