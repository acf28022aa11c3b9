package protocol

import "time"

// LapTime is a lap timestamp with millisecond resolution, as carried by
// lap status messages. The zero value is a timestamp of zero.
type LapTime struct {
	milliseconds uint32
}

// LapTimeFromMillis creates a lap time from a raw millisecond count.
func LapTimeFromMillis(milliseconds uint32) LapTime {
	return LapTime{milliseconds: milliseconds}
}

// Millis returns the raw millisecond count of the lap time.
func (t LapTime) Millis() uint32 {
	return t.milliseconds
}

// Add returns the lap time shifted forward by the given duration.
func (t LapTime) Add(d time.Duration) LapTime {
	return LapTime{milliseconds: t.milliseconds + uint32(d.Milliseconds())}
}

// Sub returns the lap time shifted backward by the given duration.
func (t LapTime) Sub(d time.Duration) LapTime {
	return LapTime{milliseconds: t.milliseconds - uint32(d.Milliseconds())}
}

// Diff returns the duration elapsed between the other lap time and this
// one.
func (t LapTime) Diff(other LapTime) time.Duration {
	return time.Duration(t.milliseconds-other.milliseconds) * time.Millisecond
}
