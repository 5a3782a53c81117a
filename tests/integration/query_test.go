package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucasvillarinho/querypack"
	"github.com/lucasvillarinho/querypack/database"
	"github.com/lucasvillarinho/querypack/query"
)

func TestRunnerIntegration(t *testing.T) {
	ctx := context.Background()

	runner, err := querypack.New(database.DriverModernc, t.TempDir(), "", "", "itest.db")
	assert.NoError(t, err, "Failed to initialize the runner")
	defer runner.Close()

	t.Run("Should create a table over the raw path", func(t *testing.T) {
		out := runner.Run(ctx, `CREATE TABLE logs (id INTEGER PRIMARY KEY, msg TEXT, score REAL)`,
			nil, query.WithoutResult())

		assert.NoError(t, out.Err, "Expected the table creation to succeed, but got: %v", out.Err)
	})

	t.Run("Should insert with auto brackets", func(t *testing.T) {
		out := runner.Run(ctx, "INSERT INTO logs (msg, score) VALUES",
			[]query.Value{query.Text("hello"), query.Float(0.5)},
			query.WithMessage("insert failed: "),
			query.WithoutResult(),
			query.WithAutoBrackets(),
		)

		assert.NoError(t, out.Err, "Expected the insert to succeed, but got: %v", out.Err)
		assert.Equal(t, int64(1), out.Affected, "Expected one affected row")
		assert.Empty(t, out.Rows, "Expected no result set when results were not requested")
	})

	t.Run("Should fetch rows keyed by column names with native types", func(t *testing.T) {
		out := runner.Run(ctx, "SELECT id, msg, score FROM logs WHERE id=",
			[]query.Value{query.Int(1)},
			query.WithAutoBrackets(),
		)

		assert.NoError(t, out.Err, "Expected the select to succeed, but got: %v", out.Err)
		assert.Len(t, out.Rows, 1, "Expected exactly one row")
		assert.Equal(t, int64(1), out.Rows[0]["id"], "Expected a native integer id")
		assert.Equal(t, "hello", out.Rows[0]["msg"], "Expected the inserted message")
		assert.Equal(t, 0.5, out.Rows[0]["score"], "Expected a native float score")
	})

	t.Run("Should yield identical result sets for identical reads", func(t *testing.T) {
		first := runner.Run(ctx, "SELECT msg FROM logs", nil)
		assert.NoError(t, first.Err, "Expected the first read to succeed")

		second := runner.Run(ctx, "SELECT msg FROM logs", nil)
		assert.NoError(t, second.Err, "Expected the second read to succeed")

		assert.Equal(t, first.Rows, second.Rows, "Expected identical result sets")
	})

	t.Run("Should record a syntax error with the caller message", func(t *testing.T) {
		out := runner.Run(ctx, "SELEC msg FROM logs WHERE id=",
			[]query.Value{query.Int(1)},
			query.WithMessage("bad template: "),
			query.WithAutoBrackets(),
		)

		assert.Error(t, out.Err, "Expected a syntax error for a malformed template")
		var synErr *query.InvalidSyntaxError
		assert.ErrorAs(t, out.Err, &synErr, "Expected an *InvalidSyntaxError")
		assert.Contains(t, out.Err.Error(), "bad template: ", "Expected the caller message prefix")
		assert.True(t, runner.HasError(), "Expected HasError after the failure")
		assert.Empty(t, runner.Rows(), "Expected an empty result set after the failure")
	})

	t.Run("Should delete over the raw path and count the affected rows", func(t *testing.T) {
		out := runner.Run(ctx, "DELETE FROM logs", nil, query.WithoutResult())

		assert.NoError(t, out.Err, "Expected the delete to succeed, but got: %v", out.Err)
		assert.Equal(t, int64(1), out.Affected, "Expected the affected count to reflect deleted rows")
		assert.False(t, runner.HasError(), "Expected HasError to be false after success")
	})
}

func TestConstructionIntegration(t *testing.T) {
	t.Run("Should fail with a ConnectionError for an unsupported driver", func(t *testing.T) {
		_, err := querypack.New(database.Driver("oracle"), "localhost", "", "", "app")

		var connErr *database.ConnectionError
		assert.ErrorAs(t, err, &connErr, "Expected a *ConnectionError")
	})

	t.Run("Should fail with a DatabaseSelectionError for an unopenable file", func(t *testing.T) {
		_, err := querypack.New(database.DriverModernc, t.TempDir(), "", "", ".")

		var selErr *database.DatabaseSelectionError
		assert.ErrorAs(t, err, &selErr, "Expected a *DatabaseSelectionError")
	})
}
