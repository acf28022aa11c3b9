package protocol

import "time"

// Track status field offsets behind the "?:" prefix.
const (
	fuelLevelOffset       = 2
	startSignalOffset     = fuelLevelOffset + MaxControllerCount
	trackModeOffset       = startSignalOffset + 1
	refuelOffset          = trackModeOffset + 1
	controllerCountOffset = refuelOffset + 2
)

// Lap status field offsets behind the '?' marker.
const (
	lapControllerOffset = 1
	lapTimeOffset       = lapControllerOffset + 1
	lapSectorOffset     = lapTimeOffset + timeNibbleCount
)

// timeNibbleCount is the number of nibble bytes carrying the 32-bit lap
// time.
const timeNibbleCount = 8

// decodeUint32 reconstructs a 32-bit value from eight nibble bytes. The
// wire order is not sequential: each pair of adjacent bytes is swapped
// before being read MSB-first, so the nibbles land at bit positions
// 24, 28, 16, 20, 8, 12, 0 and 4.
func decodeUint32(data []byte) uint32 {
	return uint32(data[0]&0x0F)<<24 |
		uint32(data[1]&0x0F)<<28 |
		uint32(data[2]&0x0F)<<16 |
		uint32(data[3]&0x0F)<<20 |
		uint32(data[4]&0x0F)<<8 |
		uint32(data[5]&0x0F)<<12 |
		uint32(data[6]&0x0F) |
		uint32(data[7]&0x0F)<<4
}

// decodeTrackStatus decodes a track status response. Both response sizes
// share the same field layout; the long form carries two additional
// trailing data bytes before the checksum.
func decodeTrackStatus(data []byte) (TrackStatus, bool) {
	if len(data) != TrackStatusResponseSize && len(data) != TrackStatusLongResponseSize {
		return TrackStatus{}, false
	}
	if data[0] != StatusMarker || data[1] != TrackStatusSeparator {
		return TrackStatus{}, false
	}
	if !CheckChecksum(data) {
		return TrackStatus{}, false
	}

	var result TrackStatus

	for i := 0; i < MaxControllerCount; i++ {
		result.FuelLevels[i] = int(data[fuelLevelOffset+i] & 0x0F)
	}

	signal, ok := startSignalFromNibble(data[startSignalOffset] & 0x0F)
	if !ok {
		return TrackStatus{}, false
	}
	result.StartSignal = signal

	// Bit 0 drives both the fuel mode and the pit lane flag, bit 1 both
	// the real fuel mode and the lap counter flag.
	mode := data[trackModeOffset]
	result.FuelEnabled = mode&0x01 != 0
	result.RealFuelEnabled = mode&0x02 != 0
	result.PitLaneConnected = mode&0x01 != 0
	result.LapCounterConnected = mode&0x02 != 0

	// The refuel mask replicates its low nibble into the high nibble
	// before being tested per slot.
	refuelMask := (data[refuelOffset] & 0x0F) | (data[refuelOffset]&0x0F)<<4
	for i := range result.IsRefueling {
		result.IsRefueling[i] = refuelMask&(1<<i) != 0
	}

	result.ControllerCount = int(data[controllerCountOffset] & 0x0F)

	return result, true
}

// decodeLapStatus decodes a lap status response. The 1-based controller
// index on the wire is converted to 0-based.
func decodeLapStatus(data []byte) (LapStatus, bool) {
	if len(data) != LapStatusResponseSize {
		return LapStatus{}, false
	}
	if data[0] != StatusMarker {
		return LapStatus{}, false
	}
	if !CheckChecksum(data) {
		return LapStatus{}, false
	}

	var result LapStatus
	result.Controller = int(data[lapControllerOffset]&0x0F) - 1
	millis := decodeUint32(data[lapTimeOffset : lapTimeOffset+timeNibbleCount])
	result.Time = time.Duration(millis) * time.Millisecond
	result.Sector = int(data[lapSectorOffset] & 0x0F)

	return result, true
}

// DecodeStatus decodes a status response into either a TrackStatus or a
// LapStatus. Track status decoding is attempted first; the order is part
// of the contract since both shapes share the leading '?' marker.
func DecodeStatus(data []byte) (Status, bool) {
	if track, ok := decodeTrackStatus(data); ok {
		return track, true
	}
	if lap, ok := decodeLapStatus(data); ok {
		return lap, true
	}
	return nil, false
}

// DecodeVersion decodes a version response into the 4-character firmware
// version string.
func DecodeVersion(data []byte) (string, bool) {
	if len(data) != VersionResponseSize {
		return "", false
	}
	if data[0] != VersionMarker {
		return "", false
	}
	if !CheckChecksum(data) {
		return "", false
	}
	return string(data[1 : len(data)-1]), true
}

// DecodeEmpty reports whether the response acknowledges the given
// request. Write-only commands are acknowledged by echoing the command
// marker byte; only the leading bytes are compared.
func DecodeEmpty(request, response []byte) bool {
	return len(request) > 0 && len(response) > 0 && response[0] == request[0]
}
