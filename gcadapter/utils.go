package gcadapter

import "math"

const (
	// stickRadius is the usable deflection of a stick, in raw counts.
	stickRadius = 80.
	// stickScale maps stickRadius counts to 1.
	stickScale = 1 / stickRadius
	// triggerTravel is the usable travel of an analog trigger.
	triggerTravel = 140
)

func processStick(x, y, dx, dy uint8) (float32, float32) {
	x, y = correctStickOffset(x, dx), correctStickOffset(y, dy)
	x, y = clampStick(x, y)
	return float32(stickScale * float64(int8(x))), float32(stickScale * float64(int8(y)))
}

func processTrigger(v, neutral uint8) float32 {
	v = correctTriggerOffset(v, neutral)
	if v > triggerTravel {
		v = triggerTravel
	}
	return float32(v) / triggerTravel
}

// clampStick recenters a stick on 0 and limits it to a circle of
// stickRadius counts. The results are two's complement bytes.
func clampStick(x, y uint8) (uint8, uint8) {
	fX, fY := float64(int8(x-128)), float64(int8(y-128))
	magnitudeSquared := fX*fX + fY*fY

	if magnitudeSquared < 1e-3 {
		return 0, 0
	}

	magnitude := math.Sqrt(magnitudeSquared)
	if magnitude > stickRadius {
		fX = fX * stickRadius / magnitude
		fY = fY * stickRadius / magnitude
	}
	return uint8(int8(fX)), uint8(int8(fY))
}

// correctStickOffset shifts x so that xNeutral lands on 128, saturating at
// 0 and 255 instead of wrapping.
func correctStickOffset(x, xNeutral uint8) uint8 {
	if x > xNeutral {
		xDiff := x - xNeutral
		xNew := uint8(128) + xDiff
		if xNew < 128 {
			xNew = 255
		}
		return xNew
	}
	xDiff := xNeutral - x
	xNew := uint8(128) - xDiff
	if xNew > 128 {
		xNew = 0
	}
	return xNew
}

func correctTriggerOffset(x, xNeutral uint8) uint8 {
	xNew := x - xNeutral
	if xNew > (255 - xNeutral) {
		xNew = 0
	}
	return xNew
}
