// Package dbtest opens seeded in-memory databases for tests.
package dbtest

import (
	"testing"

	"github.com/junaidrashid-git/cornerstore-api/config"
	"github.com/junaidrashid-git/cornerstore-api/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Open returns a migrated but empty in-memory sqlite database that is closed
// when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.DatabaseConfig{
		Driver:   "sqlite",
		URL:      "file::memory:",
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// Seeded returns an in-memory database loaded with the bootstrap rows.
func Seeded(t testing.TB) *gorm.DB {
	t.Helper()

	db := Open(t)
	require.NoError(t, database.SeedData(db))
	return db
}
