package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posts/db"
)

func TestOpenMigratesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.db")

	conn, err := db.Open(db.DriverSQLite, path)
	require.NoError(t, err)
	defer conn.Close()

	var count int
	err = conn.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestOpenTwiceIsNoChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.db")

	first, err := db.Open(db.DriverSQLite, path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := db.Open(db.DriverSQLite, path)
	require.NoError(t, err)
	assert.NoError(t, second.Close())
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := db.Open("mysql", "whatever")
	assert.Error(t, err)
}
