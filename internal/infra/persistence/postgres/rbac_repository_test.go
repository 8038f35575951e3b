package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRBACRepository_PermissionNamesForPrincipalJoinsRoleGraph(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRBACRepository(db)

	mock.ExpectQuery(`SELECT DISTINCT .*name.* FROM "permissions" JOIN role_permissions .* JOIN user_roles .* WHERE user_roles.principal_id = \$1 ORDER BY permissions.name ASC`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("X").AddRow("Y").AddRow("Z"))

	names, err := repo.PermissionNamesForPrincipal(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "Z"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRBACRepository_AssignRoleIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRBACRepository(db)

	mock.ExpectExec(`INSERT INTO "user_roles" \("principal_id","role_id"\) VALUES \(\$1,\$2\) ON CONFLICT DO NOTHING`).
		WithArgs(int64(7), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.AssignRole(context.Background(), 7, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
