package services

import (
	"errors"
	"fmt"
)

// ErrStoreAccessDenied is returned when the requesting user does not own
// the target store. Handlers map it to 403.
var ErrStoreAccessDenied = errors.New("store access denied")

// ValidationError marks missing or malformed input. Handlers map it to 400
// with the message exposed to the client.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// UpstreamError wraps a media-host or database failure. Handlers map it to
// 500 with a generic message; the wrapped error is only logged.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
