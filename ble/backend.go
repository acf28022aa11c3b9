package ble

import (
	"context"
	"errors"
	"time"

	"tinygo.org/x/bluetooth"

	"github.com/Rookfighter/carrlink/controlunit"
)

// GATT layout of the control unit.
var (
	serviceUUID = mustUUID("39df7777-b1b4-b90b-57f1-7144ae4e4a6a")
	outputUUID  = mustUUID("39df8888-b1b4-b90b-57f1-7144ae4e4a6a")
	notifyUUID  = mustUUID("39df9999-b1b4-b90b-57f1-7144ae4e4a6a")
)

// responseTerminator ends every notification payload sent by the control
// unit.
const responseTerminator = '$'

// notificationBacklog bounds the buffered notifications; stale payloads
// are drained before each request anyway.
const notificationBacklog = 8

func mustUUID(s string) bluetooth.UUID {
	uuid, err := bluetooth.ParseUUID(s)
	if err != nil {
		panic(err)
	}
	return uuid
}

// Backend is a bluetooth low energy transport for a control unit. It
// implements controlunit.Backend.
//
// A Backend drives one peripheral and must not be shared between
// concurrent requests; see the controlunit package documentation.
type Backend struct {
	adapter *bluetooth.Adapter
	address bluetooth.Address

	device     bluetooth.Device
	connected  bool
	subscribed bool

	outputChar bluetooth.DeviceCharacteristic
	notifyChar bluetooth.DeviceCharacteristic

	notifications chan []byte
}

// New creates a backend for the peripheral with the given address. The
// adapter must already be enabled.
func New(adapter *bluetooth.Adapter, address bluetooth.Address) *Backend {
	return &Backend{
		adapter:       adapter,
		address:       address,
		notifications: make(chan []byte, notificationBacklog),
	}
}

// Connect connects to the peripheral, resolves the control unit service
// and its two characteristics, and subscribes to notifications.
// Connecting an already connected and subscribed backend is a no-op.
func (b *Backend) Connect(ctx context.Context) error {
	if b.connected && b.subscribed {
		return nil
	}

	if !b.connected {
		device, err := b.adapter.Connect(b.address, bluetooth.ConnectionParams{})
		if err != nil {
			return convertError(err)
		}
		b.device = device
		b.connected = true
	}

	services, err := b.device.DiscoverServices([]bluetooth.UUID{serviceUUID})
	if err != nil {
		return convertError(err)
	}
	if len(services) == 0 {
		return &controlunit.RuntimeError{Detail: "control unit service not found"}
	}

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{outputUUID, notifyUUID})
	if err != nil {
		return convertError(err)
	}

	var haveOutput, haveNotify bool
	for _, char := range chars {
		switch char.UUID() {
		case outputUUID:
			b.outputChar = char
			haveOutput = true
		case notifyUUID:
			b.notifyChar = char
			haveNotify = true
		}
	}
	if !haveOutput || !haveNotify {
		return &controlunit.RuntimeError{Detail: "control unit characteristics not found"}
	}

	if !b.subscribed {
		err := b.notifyChar.EnableNotifications(func(buf []byte) {
			payload := make([]byte, len(buf))
			copy(payload, buf)
			select {
			case b.notifications <- payload:
			default:
			}
		})
		if err != nil {
			return convertError(err)
		}
		b.subscribed = true
	}

	return nil
}

// Disconnect unsubscribes from notifications and drops the connection.
// Both steps are skipped when not active, so Disconnect is idempotent
// and order tolerant.
func (b *Backend) Disconnect(ctx context.Context) error {
	if b.subscribed {
		if err := b.notifyChar.EnableNotifications(nil); err != nil {
			return convertError(err)
		}
		b.subscribed = false
	}

	if b.connected {
		if err := b.device.Disconnect(); err != nil {
			return convertError(err)
		}
		b.connected = false
	}

	return nil
}

// IsConnected reports whether the link is up and the notification
// subscription is active.
func (b *Backend) IsConnected(ctx context.Context) (bool, error) {
	return b.connected && b.subscribed, nil
}

// Request writes the frame to the output characteristic and waits for
// exactly one notification, normalized into the serial byte layout.
// Exceeding the timeout yields controlunit.ErrTimedOut.
func (b *Backend) Request(ctx context.Context, data []byte, timeout time.Duration) ([]byte, error) {
	if !b.connected || !b.subscribed {
		return nil, controlunit.ErrNotConnected
	}

	// Drop notifications left over from a previous exchange so the next
	// payload received belongs to this request.
	b.drainNotifications()

	if _, err := b.outputChar.WriteWithoutResponse(data); err != nil {
		return nil, convertError(err)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case payload := <-b.notifications:
		return normalizeResponse(data, payload), nil
	case <-timer.C:
		return nil, controlunit.ErrTimedOut
	case <-ctx.Done():
		return nil, convertError(ctx.Err())
	}
}

func (b *Backend) drainNotifications() {
	for {
		select {
		case <-b.notifications:
		default:
			return
		}
	}
}

// normalizeResponse strips the transport framing applied to bluetooth
// notifications so responses match the serial byte layout: the trailing
// '$' terminator is removed and the echoed command byte is re-prepended
// when the device omitted it.
func normalizeResponse(request, payload []byte) []byte {
	response := payload
	if n := len(response); n > 0 && response[n-1] == responseTerminator {
		response = response[:n-1]
	}

	if len(request) > 0 && (len(response) == 0 || response[0] != request[0]) {
		normalized := make([]byte, 0, len(response)+1)
		normalized = append(normalized, request[0])
		normalized = append(normalized, response...)
		return normalized
	}

	return response
}

// convertError maps native transport failures into the controlunit error
// taxonomy. The bluetooth package exposes no stable error set, so
// anything without a direct mapping is wrapped for diagnostics.
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
