// Package protocol implements the wire format spoken by a Carrera control
// unit over serial or bluetooth low energy.
//
// # Protocol Overview
//
// The control unit exchanges small byte frames. Every frame starts with a
// command marker byte; numeric payloads are packed one nibble per byte on
// top of the ASCII digit zero so they survive text-oriented transports.
// Most frames end with a 4-bit checksum:
//
//	Button press:  ['T'][BUTTON][CHECKSUM]
//	Set word:      ['J'][ADDR_L][ADDR_H][VALUE][REPEAT][CHECKSUM]
//	Reset clock:   ['='][NIBBLE(1)][NIBBLE(0)][CHECKSUM]
//	Status query:  ['?']                    (no checksum)
//	Version query: ['0']                    (no checksum)
//
// The checksum is the low nibble of the byte sum of the preceding frame
// bytes, transmitted on top of ValueBase like any other data nibble. On
// received frames the leading marker byte is excluded from the sum and
// only the low nibble of the trailing byte is compared.
//
// # Command Builders
//
// Use the Build* functions to create request frames:
//
//	frame := protocol.BuildButtonPressRequest(protocol.ButtonEnter)
//	frame := protocol.BuildSetSpeedLevelRequest(player, level)
//	// ... etc
//
// # Response Decoders
//
// Decoders are pure functions returning (value, ok). They never return a
// partially decoded value: any length, marker, checksum, or enumeration
// mismatch yields ok == false.
//
//	status, ok := protocol.DecodeStatus(response)
//	version, ok := protocol.DecodeVersion(response)
//	ok := protocol.DecodeEmpty(request, response)
//
// DecodeStatus returns either a TrackStatus or a LapStatus; the two
// response shapes share the '?' marker and are told apart purely by
// length and content. Track status decoding is attempted first and that
// order is part of the contract.
package protocol
