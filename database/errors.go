package database

import "fmt"

// ConnectionError reports that no session could be established. It is
// fatal to construction; the wrapped error carries the driver's native
// code and message.
type ConnectionError struct {
	Host string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connecting to %q: %v", e.Host, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// DatabaseSelectionError reports that the named database could not be
// selected on an otherwise valid session. It is fatal to construction.
type DatabaseSelectionError struct {
	Name string
	Err  error
}

func (e *DatabaseSelectionError) Error() string {
	return fmt.Sprintf("selecting database %q: %v", e.Name, e.Err)
}

func (e *DatabaseSelectionError) Unwrap() error {
	return e.Err
}
