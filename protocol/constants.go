package protocol

// Marker bytes leading each frame type.
const (
	// StatusMarker leads status requests and both status response shapes
	StatusMarker = '?'

	// VersionMarker leads version requests and responses
	VersionMarker = '0'

	// ButtonMarker leads button press command frames
	ButtonMarker = 'T'

	// SetWordMarker leads generic set-word command frames
	SetWordMarker = 'J'

	// ResetClockMarker leads reset-clock command frames
	ResetClockMarker = '='

	// TrackStatusSeparator follows the marker in track status responses
	TrackStatusSeparator = ':'
)

// ValueBase is added to every encoded data nibble so that numeric
// payloads travel as printable bytes.
const ValueBase byte = '0'

// Button identifiers accepted by the button press command.
const (
	ButtonEscape byte = 1
	ButtonEnter  byte = 2
	ButtonSpeed  byte = 5
	ButtonBrake  byte = 6
	ButtonFuel   byte = 7
	ButtonCode   byte = 8
)

// MinChecksumFrameSize is the smallest frame that can carry a valid
// checksum: one payload byte plus the trailing checksum byte.
const MinChecksumFrameSize = 2

// Fixed frame sizes.
const (
	// ButtonPressRequestSize is the size of a button press request (3 bytes)
	ButtonPressRequestSize = 3

	// SetWordRequestSize is the size of a set-word request (6 bytes)
	SetWordRequestSize = 6

	// ResetClockRequestSize is the size of a reset-clock request (4 bytes)
	ResetClockRequestSize = 4

	// VersionResponseSize is the size of a version response (6 bytes)
	VersionResponseSize = 6

	// TrackStatusResponseSize is the size of a track status response (16 bytes)
	TrackStatusResponseSize = 16

	// TrackStatusLongResponseSize is the size of a track status response
	// carrying two additional trailing data bytes (18 bytes)
	TrackStatusLongResponseSize = TrackStatusResponseSize + 2

	// LapStatusResponseSize is the size of a lap status response (12 bytes)
	LapStatusResponseSize = 12
)
