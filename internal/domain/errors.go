package domain

import "fmt"

// ValidationError reports a malformed or incomplete request body. Mapped to
// 400 at the transport boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UpstreamError reports a non-2xx status from the completion API. The
// upstream status code and message are surfaced to the caller as-is.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error [%d]: %s", e.StatusCode, e.Message)
}

// MalformedResponseError reports an otherwise-successful upstream call whose
// body is missing the expected completion structure. Mapped to 500.
type MalformedResponseError struct {
	Detail string
}

func (e *MalformedResponseError) Error() string {
	return "malformed upstream response: " + e.Detail
}

// StorageError reports a local persistence failure. Mapped to 500.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error in %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
