package controlunit

import (
	"context"
	"time"
)

// Backend is the byte transport used to exchange frames with a control
// unit. Implementations exist for bluetooth low energy (package ble) and
// direct serial connections (package serialport); any medium able to
// send a frame and deliver a single response may implement it, including
// loopbacks for tests.
//
// All four operations are bounded by the supplied context or timeout;
// exceeding the bound yields ErrTimedOut rather than hanging.
type Backend interface {
	// Connect establishes the connection with the control unit and
	// acquires whatever resource the transport needs. Connecting an
	// already connected backend is a no-op.
	Connect(ctx context.Context) error

	// Disconnect releases the connection. It is idempotent and order
	// tolerant: disconnecting anything not connected is a no-op.
	Disconnect(ctx context.Context) error

	// IsConnected reports whether the backend is currently connected.
	IsConnected(ctx context.Context) (bool, error)

	// Request sends the given frame to the control unit and waits for
	// exactly one response, normalized into the serial byte layout.
	Request(ctx context.Context, data []byte, timeout time.Duration) ([]byte, error)
}
