// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// No expectations: the first statement goose issues fails.
	err = Migrate(context.Background(), db, DialectPostgres)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(context.Background(), nil, DialectSQLite)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(context.Background(), db, "mysql")

	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}

// TestSource_SameHistoryForEveryDialect verifies that both dialects carry
// the same versioned files.
func TestSource_SameHistoryForEveryDialect(t *testing.T) {
	names := func(dialect string) []string {
		fsys, err := Source(dialect)
		require.NoError(t, err)
		files, err := fs.Glob(fsys, "*.sql")
		require.NoError(t, err)
		return files
	}

	sqliteFiles := names(DialectSQLite)
	assert.NotEmpty(t, sqliteFiles)
	assert.Equal(t, sqliteFiles, names(DialectPostgres))
}

func TestMigrate_SQLiteSchemaAndSeeds(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db, DialectSQLite))
	// A second run has nothing left to apply.
	require.NoError(t, Migrate(ctx, db, DialectSQLite))

	var settings, projects, users int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&settings))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM projects WHERE user_id IS NULL AND active = 1`).Scan(&projects))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&users))

	assert.Equal(t, 3, settings)
	assert.Equal(t, 5, projects)
	assert.Zero(t, users)

	var goal string
	require.NoError(t, db.QueryRow(`SELECT value FROM settings WHERE key = 'monthly_goal_hours'`).Scan(&goal))
	assert.Equal(t, "160", goal)
}

func TestMigrate_SQLiteEnforcesHoursRange(t *testing.T) {
	db := openMemoryDB(t)
	require.NoError(t, Migrate(context.Background(), db, DialectSQLite))

	_, err := db.Exec(`INSERT INTO time_entries (project_id, date, hours) VALUES (1, '2024-01-10', 25)`)
	assert.Error(t, err)

	_, err = db.Exec(`INSERT INTO time_entries (project_id, date, hours) VALUES (999, '2024-01-10', 2)`)
	assert.Error(t, err, "foreign key must be enforced")

	_, err = db.Exec(`INSERT INTO time_entries (project_id, date, hours) VALUES (1, '2024-01-10', 24)`)
	assert.NoError(t, err)
}
