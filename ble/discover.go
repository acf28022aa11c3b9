package ble

import (
	"time"

	"tinygo.org/x/bluetooth"

	"github.com/Rookfighter/carrlink/controlunit"
)

// deviceName is the advertised local name of a control unit.
const deviceName = "Control Unit"

// DiscoverFirst scans for the first peripheral in range advertising
// itself as a control unit and returns a ControlUnit driving it over
// bluetooth. The returned unit is not yet connected. DiscoverFirst
// returns controlunit.ErrDeviceNotFound when the scan window elapses
// without a match.
func DiscoverFirst(adapter *bluetooth.Adapter, scanWindow time.Duration, opts ...controlunit.Option) (*controlunit.ControlUnit, error) {
	var (
		found   bluetooth.ScanResult
		matched bool
	)

	timer := time.AfterFunc(scanWindow, func() {
		adapter.StopScan()
	})
	defer timer.Stop()

	// Scan blocks until StopScan is called, either by the match below or
	// by the scan window elapsing.
	err := adapter.Scan(func(a *bluetooth.Adapter, result bluetooth.ScanResult) {
		if matched || result.LocalName() != deviceName {
			return
		}
		found = result
		matched = true
		a.StopScan()
	})
	if err != nil {
		return nil, convertError(err)
	}
	if !matched {
		return nil, controlunit.ErrDeviceNotFound
	}

	return controlunit.New(New(adapter, found.Address), opts...), nil
}
