package protocol

import "time"

// MaxControllerCount is the maximum number of controllers a control unit
// can address.
const MaxControllerCount = 8

// StartSignal is the phase of the start light countdown emitted by the
// track.
type StartSignal uint8

const (
	StartSignalNone  StartSignal = 0
	StartSignalFive  StartSignal = 2
	StartSignalFour  StartSignal = 3
	StartSignalThree StartSignal = 4
	StartSignalTwo   StartSignal = 5
	StartSignalOne   StartSignal = 6
	StartSignalGo    StartSignal = 7
)

// startSignalFromNibble converts a decoded status nibble into a start
// signal phase. Unassigned values are rejected.
func startSignalFromNibble(v byte) (StartSignal, bool) {
	switch s := StartSignal(v); s {
	case StartSignalNone, StartSignalFive, StartSignalFour, StartSignalThree,
		StartSignalTwo, StartSignalOne, StartSignalGo:
		return s, true
	default:
		return StartSignalNone, false
	}
}

func (s StartSignal) String() string {
	switch s {
	case StartSignalNone:
		return "none"
	case StartSignalFive:
		return "5"
	case StartSignalFour:
		return "4"
	case StartSignalThree:
		return "3"
	case StartSignalTwo:
		return "2"
	case StartSignalOne:
		return "1"
	case StartSignalGo:
		return "go"
	default:
		return "unknown"
	}
}

// TrackStatus is a snapshot of the global race state reported by the
// control unit. All fields are valid only at decode time; no history is
// retained.
type TrackStatus struct {
	// FuelLevels holds the fuel level of each controller, in range [0, 15].
	FuelLevels [MaxControllerCount]int

	// IsRefueling marks the controllers currently refueling at the pit lane.
	IsRefueling [MaxControllerCount]bool

	// StartSignal is the countdown indicator for the start of a race.
	StartSignal StartSignal

	// FuelEnabled reports whether fuel simulation is enabled on the track.
	FuelEnabled bool

	// RealFuelEnabled reports whether real fuel mode is enabled.
	RealFuelEnabled bool

	// PitLaneConnected reports whether a pit lane adapter is connected.
	PitLaneConnected bool

	// LapCounterConnected reports whether a lap counter adapter is connected.
	LapCounterConnected bool

	// ControllerCount is the number of controllers currently in use.
	ControllerCount int
}

// LapStatus is a single controller's most recent lap timing event.
type LapStatus struct {
	// Controller identifies the controller, 0-based.
	Controller int

	// Sector is the track sector where the time was taken.
	Sector int

	// Time is the measured time with millisecond resolution.
	Time time.Duration
}

// Status is a status message returned by the control unit: either a
// TrackStatus or a LapStatus. Which variant is produced depends solely
// on the decoded response, never on caller intent.
type Status interface {
	isStatus()
}

func (TrackStatus) isStatus() {}
func (LapStatus) isStatus()   {}
