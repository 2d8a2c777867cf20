package main

import "fmt"

// OutputWriteError reports a failure to persist the generated presentation.
type OutputWriteError struct {
	Path string
	Err  error
}

// Error returns the formatted message: failed to write presentation <path>.
func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("failed to write presentation %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error, supporting errors.Is/errors.As.
func (e *OutputWriteError) Unwrap() error {
	return e.Err
}

// WrapOperationError wraps an error with a consistent "failed to {operation}: %w" format.
// If err is nil, returns nil.
func WrapOperationError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}
