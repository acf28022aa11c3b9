package protocol

// Set-word addresses and repetition counts used by the fixed commands.
const (
	resetPositionsAddress     byte = 0x06
	resetPositionsValue       byte = 0x09
	resetPositionsRepetitions byte = 0x01

	speedAddressOffset byte = 0x00
	brakeAddressOffset byte = 0x01
	fuelAddressOffset  byte = 0x02
	levelRepetitions   byte = 0x02

	lapLowAddress   byte = 0xF2
	lapHighAddress  byte = 0xF1
	lapRepetitions  byte = 0x01
)

// StatusRequest returns the single-byte frame polling the control unit
// for the current track or lap status. Single-byte queries carry no
// checksum.
func StatusRequest() []byte {
	return []byte{StatusMarker}
}

// VersionRequest returns the single-byte frame querying the firmware
// version of the control unit.
func VersionRequest() []byte {
	return []byte{VersionMarker}
}

// encodeNibble encodes the low nibble of value on top of ValueBase.
func encodeNibble(value byte) byte {
	return ValueBase + (value & 0x0F)
}

// EncodePlayerAddress packs a 3-bit player index (bits 7-5) and a 5-bit
// address offset (bits 4-0) into a single set-word address byte.
func EncodePlayerAddress(addressOffset, player byte) byte {
	return ((player & 0x07) << 5) | (addressOffset & 0x1F)
}

// BuildButtonPressRequest constructs a button press request frame for
// the given button identifier.
//
// Frame structure:
//
//	['T'][BUTTON][CHECKSUM]
func BuildButtonPressRequest(button byte) []byte {
	frame := []byte{ButtonMarker, encodeNibble(button), 0}
	frame[ButtonPressRequestSize-1] = checksumByte(frame[:ButtonPressRequestSize-1])
	return frame
}

// buildSetWordRequest constructs a generic set-word request frame. The
// address travels as two raw nibbles while value and repetitions are
// encoded on top of ValueBase.
//
// Frame structure:
//
//	['J'][ADDR_L][ADDR_H][VALUE][REPEAT][CHECKSUM]
func buildSetWordRequest(address, value, repetitions byte) []byte {
	frame := []byte{
		SetWordMarker,
		address & 0x0F,
		address >> 4,
		encodeNibble(value),
		encodeNibble(repetitions),
		0,
	}
	frame[SetWordRequestSize-1] = checksumByte(frame[:SetWordRequestSize-1])
	return frame
}

// BuildResetPositionsRequest constructs the request resetting the player
// positions shown on the position tower.
func BuildResetPositionsRequest() []byte {
	return buildSetWordRequest(resetPositionsAddress, resetPositionsValue, resetPositionsRepetitions)
}

// BuildResetClockRequest constructs the request resetting the race clock
// for all players.
//
// Frame structure:
//
//	['='][NIBBLE(1)][NIBBLE(0)][CHECKSUM]
func BuildResetClockRequest() []byte {
	frame := []byte{ResetClockMarker, encodeNibble(0x01), encodeNibble(0x00), 0}
	frame[ResetClockRequestSize-1] = checksumByte(frame[:ResetClockRequestSize-1])
	return frame
}

// BuildSetSpeedLevelRequest constructs the request setting the speed
// level of the given player. The value is truncated to its low nibble.
func BuildSetSpeedLevelRequest(player, value byte) []byte {
	return buildSetWordRequest(EncodePlayerAddress(speedAddressOffset, player), value, levelRepetitions)
}

// BuildSetBrakeLevelRequest constructs the request setting the brake
// level of the given player. The value is truncated to its low nibble.
func BuildSetBrakeLevelRequest(player, value byte) []byte {
	return buildSetWordRequest(EncodePlayerAddress(brakeAddressOffset, player), value, levelRepetitions)
}

// BuildSetFuelLevelRequest constructs the request setting the fuel level
// of the given player. The value is truncated to its low nibble.
func BuildSetFuelLevelRequest(player, value byte) []byte {
	return buildSetWordRequest(EncodePlayerAddress(fuelAddressOffset, player), value, levelRepetitions)
}

// BuildSetLapLowRequest constructs the request setting the low nibble of
// the lap number shown on the position tower.
func BuildSetLapLowRequest(value byte) []byte {
	return buildSetWordRequest(lapLowAddress, value, lapRepetitions)
}

// BuildSetLapHighRequest constructs the request setting the high nibble
// of the lap number shown on the position tower.
func BuildSetLapHighRequest(value byte) []byte {
	return buildSetWordRequest(lapHighAddress, value, lapRepetitions)
}
