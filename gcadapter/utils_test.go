package gcadapter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrectStickOffset(t *testing.T) {
	assert.Equal(t, uint8(128), correctStickOffset(140, 140))
	assert.Equal(t, uint8(138), correctStickOffset(150, 140))
	assert.Equal(t, uint8(118), correctStickOffset(130, 140))
	// Saturate instead of wrapping.
	assert.Equal(t, uint8(255), correctStickOffset(255, 50))
	assert.Equal(t, uint8(0), correctStickOffset(10, 200))
}

func TestCorrectTriggerOffset(t *testing.T) {
	assert.Equal(t, uint8(20), correctTriggerOffset(50, 30))
	assert.Equal(t, uint8(0), correctTriggerOffset(10, 30))
}

func TestClampStick(t *testing.T) {
	x, y := clampStick(128, 128)
	assert.Equal(t, uint8(0), x)
	assert.Equal(t, uint8(0), y)

	x, y = clampStick(128+40, 128-30)
	assert.Equal(t, int8(40), int8(x))
	assert.Equal(t, int8(-30), int8(y))

	x, y = clampStick(255, 255)
	fx, fy := float64(int8(x)), float64(int8(y))
	assert.LessOrEqual(t, math.Hypot(fx, fy), stickRadius)
	assert.Equal(t, int8(x), int8(y))
}

func TestProcessTrigger(t *testing.T) {
	assert.InDelta(t, 1.0, processTrigger(250, 0), 1e-6)
	assert.InDelta(t, 0.5, processTrigger(100, 30), 1e-6)
}
