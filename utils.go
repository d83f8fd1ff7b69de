package joydrive

import "math"

// Clamp limits v to [lo, hi]. NaN is treated as 0.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return math.Max(lo, math.Min(hi, 0))
	}
	return math.Max(lo, math.Min(hi, v))
}

// Sign returns -1, 0 or 1. Unlike math.Copysign, Sign(0) is 0, which
// makes the strafe command zero whenever the stick sits on the
// horizontal center line. NaN maps to 0 as well.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// NormalizeAngle wraps an angle in radians into [-pi, pi).
func NormalizeAngle(rad float64) float64 {
	a := math.Mod(rad+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
