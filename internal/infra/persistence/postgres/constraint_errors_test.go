package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "idx_auth_accounts_username"}, "insert")
	fk := &pgconn.PgError{Code: "23503"}
	notNull := &pgconn.PgError{Code: "23502"}
	check := &pgconn.PgError{Code: "23514"}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(fk))
	assert.Equal(t, "idx_auth_accounts_username", violatedConstraint(unique))

	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.True(t, isCheckConstraintViolation(check))

	plain := errors.New("connection refused")
	assert.False(t, isUniqueConstraintViolation(plain))
	assert.False(t, isForeignKeyConstraintViolation(plain))
	assert.False(t, isNotNullConstraintViolation(plain))
	assert.False(t, isCheckConstraintViolation(plain))
	assert.Empty(t, violatedConstraint(plain))
}
