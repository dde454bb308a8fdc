package errors

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(gorm.ErrRecordNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", gorm.ErrRecordNotFound)))
	assert.False(t, IsNotFound(fmt.Errorf("other error")))
	assert.False(t, IsNotFound(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create: %w", unique)))

	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(fmt.Errorf("other error")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503"}
	assert.True(t, IsForeignKeyViolation(fk))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("create: %w", fk)))

	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsForeignKeyViolation(nil))
}

func TestAppError(t *testing.T) {
	base := fmt.Errorf("connection refused")
	appErr := NewAppError(ErrCodeDBError, "query failed", base)

	assert.Contains(t, appErr.Error(), "DB_ERROR")
	assert.Contains(t, appErr.Error(), "query failed")
	assert.True(t, IsAppError(appErr))
	assert.Equal(t, appErr, GetAppError(appErr))

	assert.False(t, IsAppError(base))
	assert.Nil(t, GetAppError(base))
}
