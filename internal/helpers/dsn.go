package helpers

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateDSN creates a DSN string for a file-backed SQLite database.
//
// If the path is empty, the current directory is used to create the
// database file. Missing directories are created.
//
// Parameters:
//   - path: the path to the database file
//   - db: the database file name
//
// Returns:
//   - dsn: the DSN string
//   - error: an error if the operation failed
func CreateDSN(path, db string) (string, error) {
	if path == "" {
		currentDir, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}

		return filepath.Join(currentDir, db), nil
	}

	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return "", fmt.Errorf("creating directories: %w", err)
	}

	return filepath.Join(path, db), nil
}
