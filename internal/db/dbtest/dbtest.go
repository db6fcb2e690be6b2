// Package dbtest opens migrated in-memory databases for tests.
package dbtest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/atik-theme/atik-assistant/internal/db"
)

// New returns a migrated in-memory sqlite database private to the test.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err, "failed to create test database")

	// every connection of an in-memory database is a new database
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(conn), "failed to migrate test database")

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return conn
}
