package controllers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tourism/config"
	"tourism/services"
)

// setupMockDB thay config.DB bằng gorm chạy trên driver sqlmock,
// mọi query tới store phải được khai báo trước trong test
func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	config.DB = gormDB
	return mock
}

// bearerToken phát hành header Authorization hợp lệ cho userID
func bearerToken(t *testing.T, userID uint) string {
	t.Helper()
	require.NoError(t, services.InitTokenSecret("test-secret"))
	token, err := services.GenerateToken(userID, "user@example.com")
	require.NoError(t, err)
	return "Bearer " + token
}
