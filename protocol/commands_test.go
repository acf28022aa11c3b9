package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusAndVersionRequests(t *testing.T) {
	assert.Equal(t, []byte{'?'}, StatusRequest())
	assert.Equal(t, []byte{'0'}, VersionRequest())
}

func TestBuildButtonPressRequest(t *testing.T) {
	tests := []struct {
		name     string
		button   byte
		expected []byte
	}{
		{name: "escape", button: ButtonEscape, expected: []byte{0x54, 0x31, 0x35}},
		{name: "enter", button: ButtonEnter, expected: []byte{0x54, 0x32, 0x36}},
		{name: "speed", button: ButtonSpeed, expected: []byte{0x54, 0x35, 0x39}},
		{name: "brake", button: ButtonBrake, expected: []byte{0x54, 0x36, 0x3A}},
		{name: "fuel", button: ButtonFuel, expected: []byte{0x54, 0x37, 0x3B}},
		{name: "code", button: ButtonCode, expected: []byte{0x54, 0x38, 0x3C}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := BuildButtonPressRequest(tt.button)
			assert.Len(t, frame, ButtonPressRequestSize)
			assert.Equal(t, tt.expected, frame)
		})
	}
}

func TestBuildResetPositionsRequest(t *testing.T) {
	assert.Equal(t, []byte{0x4A, 0x06, 0x00, 0x39, 0x31, 0x3A}, BuildResetPositionsRequest())
}

func TestBuildResetClockRequest(t *testing.T) {
	assert.Equal(t, []byte{0x3D, 0x31, 0x30, 0x3E}, BuildResetClockRequest())
}

func TestBuildSetLevelRequests(t *testing.T) {
	tests := []struct {
		name     string
		build    func(player, value byte) []byte
		expected []byte
	}{
		{
			name:     "speed player 0 level 5",
			build:    BuildSetSpeedLevelRequest,
			expected: []byte{0x4A, 0x00, 0x00, 0x35, 0x32, 0x31},
		},
		{
			name:     "brake player 0 level 5",
			build:    BuildSetBrakeLevelRequest,
			expected: []byte{0x4A, 0x01, 0x00, 0x35, 0x32, 0x32},
		},
		{
			name:     "fuel player 0 level 5",
			build:    BuildSetFuelLevelRequest,
			expected: []byte{0x4A, 0x02, 0x00, 0x35, 0x32, 0x33},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := tt.build(0, 5)
			assert.Len(t, frame, SetWordRequestSize)
			assert.Equal(t, tt.expected, frame)
		})
	}
}

func TestBuildSetSpeedLevelRequestBoundaryPlayer(t *testing.T) {
	frame := BuildSetSpeedLevelRequest(7, 15)
	// player 7 packs into bits 7-5: address 0xE0, split into raw nibbles.
	assert.Equal(t, []byte{0x4A, 0x00, 0x0E, 0x3F, 0x32, 0x39}, frame)
}

func TestBuildSetLapRequests(t *testing.T) {
	assert.Equal(t, []byte{0x4A, 0x01, 0x0F, 0x32, 0x31, 0x3D}, BuildSetLapHighRequest(0x02))
	assert.Equal(t, []byte{0x4A, 0x02, 0x0F, 0x3A, 0x31, 0x36}, BuildSetLapLowRequest(0x0A))
}

func TestEncodePlayerAddress(t *testing.T) {
	tests := []struct {
		name          string
		addressOffset byte
		player        byte
		expected      byte
	}{
		{name: "player 0 offset 0", addressOffset: 0, player: 0, expected: 0x00},
		{name: "player 0 offset 2", addressOffset: 2, player: 0, expected: 0x02},
		{name: "player 7 offset 0", addressOffset: 0, player: 7, expected: 0xE0},
		{name: "player 7 offset 31", addressOffset: 31, player: 7, expected: 0xFF},
		{name: "player index masked to 3 bits", addressOffset: 0, player: 0x0F, expected: 0xE0},
		{name: "offset masked to 5 bits", addressOffset: 0xFF, player: 0, expected: 0x1F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EncodePlayerAddress(tt.addressOffset, tt.player))
		})
	}
}

// The speed, brake and fuel address spaces must not overlap for any
// player index.
func TestPlayerAddressSpacesDisjoint(t *testing.T) {
	seen := make(map[byte]string)
	offsets := map[string]byte{"speed": 0x00, "brake": 0x01, "fuel": 0x02}

	for name, offset := range offsets {
		for player := byte(0); player < MaxControllerCount; player++ {
			address := EncodePlayerAddress(offset, player)
			if prev, ok := seen[address]; ok {
				t.Fatalf("address 0x%02X used by both %s and %s", address, prev, name)
			}
			seen[address] = name
		}
	}
}

// A full press round-trip against a synthetic echo response for every
// named button.
func TestButtonPressRoundTrip(t *testing.T) {
	buttons := []byte{ButtonEscape, ButtonEnter, ButtonSpeed, ButtonBrake, ButtonFuel, ButtonCode}
	for _, button := range buttons {
		request := BuildButtonPressRequest(button)
		echo := []byte{request[0], 0x00}
		assert.True(t, DecodeEmpty(request, echo), "button %d", button)
	}
}
