// Package errorz defines the error kinds surfaced by the trivia API.
// Callers wrap a kind with fmt.Errorf("...: %w", kind) and match it with errors.Is.
package errorz

import "errors"

var (
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("resource cannot be processed")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal server error")
)
