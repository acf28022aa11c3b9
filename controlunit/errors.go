package controlunit

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by control unit operations and backends.
// Transient and permanent failures are not distinguished at this layer;
// the caller decides whether to retry a whole operation.
var (
	// ErrPermissionDenied indicates the transport resource is not accessible.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrDeviceNotFound indicates no control unit could be located.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrNotConnected indicates an exchange was attempted without a connection.
	ErrNotConnected = errors.New("not connected")

	// ErrTimedOut indicates an exchange exceeded its configured timeout.
	ErrTimedOut = errors.New("request timed out")

	// ErrInvalidResponse indicates the device answered with a malformed frame.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrNoResponse indicates the device delivered an empty response.
	ErrNoResponse = errors.New("no response")
)

// NotSupportedError indicates the transport does not support a requested
// operation.
type NotSupportedError struct {
	Detail string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("not supported: %s", e.Detail)
}

// RuntimeError indicates an unexpected transport condition described by
// its detail message.
type RuntimeError struct {
	Detail string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %s", e.Detail)
}

// OtherError wraps a transport error that has no mapping into the
// taxonomy. The cause is carried for diagnostics only and is never
// inspected programmatically by this package.
type OtherError struct {
	Cause error
}

func (e *OtherError) Error() string {
	return fmt.Sprintf("backend error: %v", e.Cause)
}

func (e *OtherError) Unwrap() error {
	return e.Cause
}
