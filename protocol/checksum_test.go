package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeChecksum(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected byte
	}{
		{
			name:     "empty data",
			data:     []byte{},
			expected: 0x00,
		},
		{
			name:     "single byte",
			data:     []byte{0x54},
			expected: 0x04,
		},
		{
			name:     "button press payload",
			data:     []byte{0x54, 0x32},
			expected: 0x06,
		},
		{
			name:     "sum overflowing a byte",
			data:     []byte{0xFF, 0xFF, 0xFF},
			expected: 0x0D,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeChecksum(tt.data))
		})
	}
}

func TestCheckChecksum(t *testing.T) {
	tests := []struct {
		name  string
		frame []byte
		valid bool
	}{
		{
			name:  "empty frame",
			frame: []byte{},
			valid: false,
		},
		{
			name:  "single byte frame",
			frame: []byte{0x3F},
			valid: false,
		},
		{
			name:  "minimum valid frame",
			frame: []byte{0x3F, 0x30},
			valid: true,
		},
		{
			name:  "valid version response",
			frame: []byte{0x30, 0x35, 0x33, 0x33, 0x37, 0x32},
			valid: true,
		},
		{
			name:  "checksum without value base",
			frame: []byte{0x30, 0x35, 0x33, 0x33, 0x37, 0x02},
			valid: true,
		},
		{
			name:  "wrong checksum nibble",
			frame: []byte{0x30, 0x35, 0x33, 0x33, 0x37, 0x33},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, CheckChecksum(tt.frame))
		})
	}
}

// Mutating any single payload byte of a valid frame must invalidate it.
func TestCheckChecksumSingleByteMutation(t *testing.T) {
	frame := []byte{
		0x3F, 0x3A,
		0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37, 0x38,
		0x32, 0x03, 0x35, 0x30, 0x36,
		0x3E,
	}
	assert.True(t, CheckChecksum(frame))

	for i := 1; i < len(frame); i++ {
		mutated := append([]byte(nil), frame...)
		mutated[i] ^= 0x01
		assert.False(t, CheckChecksum(mutated), "mutation at index %d not detected", i)
	}
}
