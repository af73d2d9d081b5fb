package service

import "fmt"

// ValidationError represents caller input issues.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DataAccessError wraps a failed repository fetch. The engine never
// retries; the error propagates to the caller untouched.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// ComputationError indicates the fetched data violated the input contract,
// e.g. a negative payment amount. Every internal division is guarded, so
// this never originates from the arithmetic itself.
type ComputationError struct {
	Message string
}

func (e *ComputationError) Error() string {
	return e.Message
}
