package testutils

import (
	"testing"

	"voice-sales-backend/internal/database"

	"gorm.io/gorm"
)

// NewSQLiteDB opens a migrated in-memory SQLite database that lives for the duration of the test.
// The database uses a single connection, so concurrent transactions serialize.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.InitializeSQLite("file::memory:", nil)
	if err != nil {
		t.Fatalf("failed to open sqlite test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
