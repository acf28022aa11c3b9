// Package serialport implements a direct serial backend for a control
// unit on top of go.bug.st/serial.
package serialport

import (
	"context"
	"errors"
	"time"

	"go.bug.st/serial"

	"github.com/Rookfighter/carrlink/controlunit"
)

// baudRate is the fixed line speed of the control unit serial interface,
// 8N1 framing.
const baudRate = 19200

// responseTerminator ends every response the control unit sends over the
// serial line. It is not part of the payload handed to the codec.
const responseTerminator = '$'

// readChunkSize is the size of the scratch buffer for port reads; serial
// responses are at most 18 bytes plus the terminator.
const readChunkSize = 64

// port is the subset of serial.Port the backend relies on, narrowed so
// the framing logic can be exercised against a fake in tests.
type port interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	SetReadTimeout(t time.Duration) error
	Close() error
}

// Backend is a direct serial transport for a control unit. It implements
// controlunit.Backend.
type Backend struct {
	name string
	open func(name string) (port, error)
	port port
}

// New creates a backend for the serial device with the given name, e.g.
// "/dev/ttyUSB0" or "COM3".
func New(name string) *Backend {
	return &Backend{
		name: name,
		open: func(name string) (port, error) {
			return serial.Open(name, &serial.Mode{BaudRate: baudRate})
		},
	}
}

// Connect opens the serial port. Connecting an already connected backend
// is a no-op.
func (b *Backend) Connect(ctx context.Context) error {
	if b.port != nil {
		return nil
	}

	p, err := b.open(b.name)
	if err != nil {
		return convertError(err)
	}
	b.port = p
	return nil
}

// Disconnect closes the serial port. Disconnecting a backend that is not
// connected is a no-op.
func (b *Backend) Disconnect(ctx context.Context) error {
	if b.port == nil {
		return nil
	}

	err := b.port.Close()
	b.port = nil
	if err != nil {
		return convertError(err)
	}
	return nil
}

// IsConnected reports whether the serial port is open.
func (b *Backend) IsConnected(ctx context.Context) (bool, error) {
	return b.port != nil, nil
}

// Request writes the frame and reads the response up to the '$'
// terminator, which is excluded from the returned payload. A line that
// stays silent past the timeout yields controlunit.ErrTimedOut.
func (b *Backend) Request(ctx context.Context, data []byte, timeout time.Duration) ([]byte, error) {
	if b.port == nil {
		return nil, controlunit.ErrNotConnected
	}

	if err := b.port.SetReadTimeout(timeout); err != nil {
		return nil, convertError(err)
	}

	if _, err := b.port.Write(data); err != nil {
		return nil, convertError(err)
	}

	deadline := time.Now().Add(timeout)
	var response []byte
	buf := make([]byte, readChunkSize)

	for {
		if err := ctx.Err(); err != nil {
			return nil, convertError(err)
		}

		n, err := b.port.Read(buf)
		if err != nil {
			return nil, convertError(err)
		}

		for i := 0; i < n; i++ {
			if buf[i] == responseTerminator {
				return response, nil
			}
			response = append(response, buf[i])
		}

		// A zero-byte read means the read timeout elapsed; the deadline
		// check catches a response trickling in slower than the timeout.
		if n == 0 || time.Now().After(deadline) {
			return nil, controlunit.ErrTimedOut
		}
	}
}

// convertError maps native failures into the controlunit error taxonomy.
func convertError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return controlunit.ErrTimedOut
	default:
		return &controlunit.OtherError{Cause: err}
	}
}
