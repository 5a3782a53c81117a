package query

import "fmt"

// BindTypeError reports a bind variable whose kind is not one of the
// four supported variants (in practice: the zero Value).
type BindTypeError struct {
	Position int
}

func (e *BindTypeError) Error() string {
	return fmt.Sprintf("unsupported bind variable kind at position %d", e.Position)
}

// InvalidSyntaxError reports that the SQL template failed to compile
// into a prepared statement. Message is the caller-visible text,
// composed per the driver-error flag; the native driver error is
// always reachable through Unwrap regardless of that flag.
type InvalidSyntaxError struct {
	Message string
	Err     error
}

func (e *InvalidSyntaxError) Error() string {
	return e.Message
}

func (e *InvalidSyntaxError) Unwrap() error {
	return e.Err
}

// ExecutionError reports that a statement failed while executing or
// while its results were being fetched. Message composition follows
// the same rules as InvalidSyntaxError.
type ExecutionError struct {
	Message string
	Err     error
}

func (e *ExecutionError) Error() string {
	return e.Message
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
