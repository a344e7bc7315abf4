package matching

import "fmt"

// ValidationError marks a client-caused failure: missing or blank tags, or
// an out-of-range numeric parameter. No side effects have been performed
// when one is returned, and the HTTP layer maps it to a 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// UpstreamError marks a failed external call, either the embedding provider
// or the store's ranking function. The HTTP layer maps it to a 500 with a
// generic message plus the error text in a details field.
type UpstreamError struct {
	Op  string // "embedding" or "ranking"
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
