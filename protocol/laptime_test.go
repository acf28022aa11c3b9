package protocol

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLapTimeArithmetic(t *testing.T) {
	start := LapTimeFromMillis(10000)

	assert.Equal(t, uint32(10000), start.Millis())
	assert.Equal(t, uint32(12500), start.Add(2500*time.Millisecond).Millis())
	assert.Equal(t, uint32(7500), start.Sub(2500*time.Millisecond).Millis())
}

func TestLapTimeDiff(t *testing.T) {
	first := LapTimeFromMillis(10000)
	second := LapTimeFromMillis(73456)

	assert.Equal(t, 63456*time.Millisecond, second.Diff(first))
	assert.Equal(t, time.Duration(0), first.Diff(first))
}
