package joydrive

import "math"

// Default pad geometry: a 400x400 surface with the boundary circle centered.
const (
	DefaultCenterX = 200
	DefaultCenterY = 200
	DefaultRadius  = 100.
	DefaultLength  = 18.
	DefaultWidth   = 18.
)

// Pointer is a position on the drawing surface, in logical pixels.
type Pointer struct {
	X int
	Y int
}

// Geometry describes the pad boundary and the robot footprint. Radius and
// Length must be positive; with a zero Radius the axes still stay in
// [-1, 1] (any offset saturates), but RCW is undefined for a zero Length.
type Geometry struct {
	CenterX int
	CenterY int
	Radius  float64
	Length  float64
	Width   float64
}

// DefaultGeometry returns the geometry of the stock 400x400 pad with an 18x18 robot.
func DefaultGeometry() Geometry {
	return Geometry{
		CenterX: DefaultCenterX,
		CenterY: DefaultCenterY,
		Radius:  DefaultRadius,
		Length:  DefaultLength,
		Width:   DefaultWidth,
	}
}

// Center returns the pad center as a pointer position.
func (g Geometry) Center() Pointer {
	return Pointer{X: g.CenterX, Y: g.CenterY}
}

// RotationFactor is sqrt(L^2 + W^2) / L, the scale from strafe to rotation.
func (g Geometry) RotationFactor() float64 {
	return math.Hypot(g.Length, g.Width) / g.Length
}

// Axes are the joystick values, each in [-1, 1].
type Axes struct {
	X float64
	Y float64
}

// DriveVector holds the holonomic drive commands.
type DriveVector struct {
	FWD float64
	STR float64
	RCW float64
}

// Reading is everything the pad displays for one pointer position.
type Reading struct {
	Axes  Axes
	Drive DriveVector
}

// Normalize converts a pointer position into joystick axes. Positions
// outside the boundary saturate at -1 or 1.
func (g Geometry) Normalize(p Pointer) Axes {
	return Axes{
		X: Clamp(float64(p.X-g.CenterX)/g.Radius, -1, 1),
		Y: Clamp(float64(p.Y-g.CenterY)/g.Radius, -1, 1),
	}
}

// Drive derives the drive vector from joystick axes.
//
// Screen Y grows downward, so pushing the stick up gives a positive FWD.
// The strafe term flips with the sign of Y and vanishes on the horizontal
// center line (see Sign).
func (g Geometry) Drive(a Axes) DriveVector {
	str := -a.X * Sign(a.Y)
	return DriveVector{
		FWD: -a.Y,
		STR: str,
		RCW: str * g.RotationFactor(),
	}
}

// Compute normalizes p and derives its drive vector.
func (g Geometry) Compute(p Pointer) Reading {
	axes := g.Normalize(p)
	return Reading{Axes: axes, Drive: g.Drive(axes)}
}
