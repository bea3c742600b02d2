package repository

import (
	"context"
	"testing"

	"inkwell/database"
	"inkwell/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func createTestUser(t *testing.T, repo UserRepository, name, email string) *models.User {
	t.Helper()

	user := &models.User{Name: name, Email: email}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}
