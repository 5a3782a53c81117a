package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/lucasvillarinho/querypack/database/drivers"
)

type stubDatabase struct {
	engine drivers.Driver
}

func (s *stubDatabase) GetEngine() drivers.Driver { return s.engine }
func (s *stubDatabase) Name() string              { return "testdb" }
func (s *stubDatabase) Ping() error               { return s.engine.Ping() }
func (s *stubDatabase) Close() error              { return s.engine.Close() }

func TestNewRecorder(t *testing.T) {
	ctx := context.Background()

	t.Run("should create the log table", func(t *testing.T) {
		mock := &drivers.Mock{}

		rec, err := NewRecorder(ctx, &stubDatabase{engine: mock}, zerolog.Nop())

		assert.NoError(t, err, "Expected no error while creating the recorder")
		assert.NotNil(t, rec, "Expected a valid recorder instance")
		assert.Contains(t, mock.ExecutedQuery, "CREATE TABLE IF NOT EXISTS querypack_log",
			"Expected the log table to be created")
	})

	t.Run("should return an error if table creation fails", func(t *testing.T) {
		mock := &drivers.Mock{ExecuteErr: errors.New("database is read only")}

		rec, err := NewRecorder(ctx, &stubDatabase{engine: mock}, zerolog.Nop())

		assert.Error(t, err, "Expected an error when table creation fails")
		assert.Nil(t, rec, "Expected no recorder instance on error")
		assert.Contains(t, err.Error(), "failed to create log table", "Expected the error message to match")
	})
}

func TestRecorderFail(t *testing.T) {
	ctx := context.Background()

	t.Run("should insert the normalized query and the error text", func(t *testing.T) {
		mock := &drivers.Mock{}
		rec, err := NewRecorder(ctx, &stubDatabase{engine: mock}, zerolog.Nop())
		assert.NoError(t, err, "Expected no error while creating the recorder")

		rec.Fail(ctx, "SELECT *\n  FROM users", errors.New("table users does not exist"))

		assert.Equal(t, insertSQL, mock.ExecutedQuery, "Expected the insert statement to run")
		assert.Equal(t, []interface{}{"SELECT * FROM users", "table users does not exist"},
			mock.ExecutedArgs, "Expected the normalized query and error text as arguments")
	})
}
