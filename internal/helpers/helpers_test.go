package helpers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	t.Run("should flatten a multi-line query into one line", func(t *testing.T) {
		query := "SELECT id, msg\n\tFROM logs\n\tWHERE id = ?"

		got := NormalizeQuery(query)

		assert.Equal(t, "SELECT id, msg FROM logs WHERE id = ?", got, "Expected a single trimmed line")
	})

	t.Run("should leave a single-line query untouched", func(t *testing.T) {
		got := NormalizeQuery("DELETE FROM temp")

		assert.Equal(t, "DELETE FROM temp", got, "Expected the query to pass through")
	})
}

func TestCreateDSN(t *testing.T) {
	t.Run("should join the path and the database file name", func(t *testing.T) {
		dir := t.TempDir()

		dsn, err := CreateDSN(dir, "app.db")

		assert.NoError(t, err, "Expected no error while creating the DSN")
		assert.Equal(t, filepath.Join(dir, "app.db"), dsn, "Expected the DSN to point inside the path")
	})

	t.Run("should create missing directories", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "deeper")

		dsn, err := CreateDSN(dir, "app.db")

		assert.NoError(t, err, "Expected no error while creating directories")
		assert.DirExists(t, dir, "Expected the nested directories to exist")
		assert.Equal(t, filepath.Join(dir, "app.db"), dsn, "Expected the DSN to point inside the path")
	})

	t.Run("should fall back to the current directory for an empty path", func(t *testing.T) {
		dsn, err := CreateDSN("", "app.db")

		assert.NoError(t, err, "Expected no error for an empty path")
		assert.Equal(t, "app.db", filepath.Base(dsn), "Expected the file name to be kept")
	})
}
