// Package ble implements a bluetooth low energy backend for a control
// unit on top of tinygo.org/x/bluetooth.
//
// The control unit exposes a single GATT service with one characteristic
// for outbound writes and one notification characteristic for responses.
// Request writes a frame and waits for exactly one notification, bounded
// by the caller-supplied timeout.
//
// Notifications carry transport framing the serial line does not: the
// payload ends with a '$' terminator and omits the echoed command byte.
// The backend normalizes both quirks so the codec always sees the serial
// byte layout.
//
// DiscoverFirst scans for the first peripheral advertising itself as
// "Control Unit" and returns a ready controlunit.ControlUnit:
//
//	adapter := bluetooth.DefaultAdapter
//	if err := adapter.Enable(); err != nil {
//	    log.Fatal(err)
//	}
//	cu, err := ble.DiscoverFirst(adapter, 5*time.Second)
package ble
