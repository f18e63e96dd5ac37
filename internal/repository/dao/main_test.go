package dao

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory sqlite database with every table
// migrated. The pool is pinned to one connection so the database survives
// between queries.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, InitTables(db))

	return db
}

func TestLikePattern(t *testing.T) {
	require.Equal(t, "%title%", likePattern("TITLE"))
	require.Equal(t, `%100\%%`, likePattern("100%"))
	require.Equal(t, `%a\_b%`, likePattern("a_b"))
	require.Equal(t, `%a\\b%`, likePattern(`a\b`))
}
