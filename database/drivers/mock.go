package drivers

import (
	"context"
	"database/sql"
)

// Mock is a hand-written Driver double for unit tests.
type Mock struct {
	SelectErr  error
	PrepareErr error
	ExecuteErr error
	QueryErr   error
	PingErr    error

	SelectedDatabase string
	ExecutedQuery    string
	ExecutedArgs     []interface{}
	PingCount        int

	ExecuteResult sql.Result
	QueryRows     *sql.Rows
}

func (m *Mock) SelectDatabase(name string) error {
	m.SelectedDatabase = name
	return m.SelectErr
}

func (m *Mock) Prepare(_ context.Context, query string) (*sql.Stmt, error) {
	m.ExecutedQuery = query
	return nil, m.PrepareErr
}

func (m *Mock) Execute(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	m.ExecutedQuery = query
	m.ExecutedArgs = args
	if m.ExecuteErr != nil {
		return nil, m.ExecuteErr
	}
	return m.ExecuteResult, nil
}

func (m *Mock) Query(_ context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	m.ExecutedQuery = query
	m.ExecutedArgs = args
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	return m.QueryRows, nil
}

func (m *Mock) Ping() error {
	m.PingCount++
	return m.PingErr
}

func (m *Mock) Close() error {
	return nil
}
