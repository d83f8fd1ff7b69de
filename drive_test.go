package joydrive

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sqrt2 = 1.4142135623730951

func TestNormalizeClamps(t *testing.T) {
	g := DefaultGeometry()
	a := assert.New(t)

	for _, p := range []Pointer{
		{10000, 200}, {-10000, 200}, {200, 10000}, {200, -10000},
		{1000, 1000}, {-1000, -1000}, {0, 0}, {400, 400}, {250, 150},
	} {
		axes := g.Normalize(p)
		a.GreaterOrEqual(axes.X, -1.0, "%+v", p)
		a.LessOrEqual(axes.X, 1.0, "%+v", p)
		a.GreaterOrEqual(axes.Y, -1.0, "%+v", p)
		a.LessOrEqual(axes.Y, 1.0, "%+v", p)
	}

	a.Equal(1.0, g.Normalize(Pointer{10000, 200}).X)
	a.Equal(-1.0, g.Normalize(Pointer{200, -10000}).Y)
	a.Equal(Axes{X: 0.5, Y: -0.5}, g.Normalize(Pointer{250, 150}))
}

func TestDriveEquations(t *testing.T) {
	g := DefaultGeometry()
	a := assert.New(t)

	for _, y := range []float64{-1, -0.5, -0.01, 0, 0.01, 0.5, 1} {
		for _, x := range []float64{-1, -0.3, 0, 0.3, 1} {
			d := g.Drive(Axes{X: x, Y: y})
			a.Equal(-y, d.FWD)
			switch {
			case y > 0:
				a.Equal(-x, d.STR)
			case y < 0:
				a.Equal(x, d.STR)
			default:
				a.Zero(d.STR)
			}
			a.InDelta(d.STR*sqrt2, d.RCW, 1e-12)
		}
	}
}

func TestComputeScenarios(t *testing.T) {
	g := DefaultGeometry()

	tests := []struct {
		name string
		p    Pointer
		want Reading
	}{
		{"center", Pointer{200, 200}, Reading{}},
		{"full right on center line", Pointer{300, 200}, Reading{Axes: Axes{X: 1}}},
		{"full up", Pointer{200, 100}, Reading{Axes: Axes{Y: -1}, Drive: DriveVector{FWD: 1}}},
		{"up right", Pointer{300, 100}, Reading{Axes: Axes{X: 1, Y: -1}, Drive: DriveVector{FWD: 1, STR: 1, RCW: sqrt2}}},
		{"far outside", Pointer{1000, 1000}, Reading{Axes: Axes{X: 1, Y: 1}, Drive: DriveVector{FWD: -1, STR: -1, RCW: -sqrt2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Compute(tt.p)
			assert.InDelta(t, tt.want.Axes.X, got.Axes.X, 1e-9)
			assert.InDelta(t, tt.want.Axes.Y, got.Axes.Y, 1e-9)
			assert.InDelta(t, tt.want.Drive.FWD, got.Drive.FWD, 1e-9)
			assert.InDelta(t, tt.want.Drive.STR, got.Drive.STR, 1e-9)
			assert.InDelta(t, tt.want.Drive.RCW, got.Drive.RCW, 1e-9)
		})
	}
}

func TestRotationFactor(t *testing.T) {
	assert.InDelta(t, 1.4142, DefaultGeometry().RotationFactor(), 1e-4)

	g := Geometry{Radius: 100, Length: 30, Width: 40}
	assert.InDelta(t, 50.0/30.0, g.RotationFactor(), 1e-12)
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(0.2))
	assert.Equal(t, -1.0, Sign(-3))
	assert.Zero(t, Sign(0))
	assert.Zero(t, Sign(math.Copysign(0, -1)))
	assert.Zero(t, Sign(math.NaN()))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(7, -1, 1))
	assert.Equal(t, -1.0, Clamp(-7, -1, 1))
	assert.Equal(t, 0.25, Clamp(0.25, -1, 1))
	assert.Equal(t, 1.0, Clamp(math.Inf(1), -1, 1))
	assert.Zero(t, Clamp(math.NaN(), -1, 1))
	assert.Equal(t, 2.0, Clamp(math.NaN(), 2, 3))
}

func TestNormalizeZeroRadius(t *testing.T) {
	var g Geometry

	// 0/0 at the center and x/0 elsewhere must still land in [-1, 1].
	assert.Equal(t, Axes{}, g.Normalize(Pointer{0, 0}))
	assert.Equal(t, Axes{X: 1, Y: -1}, g.Normalize(Pointer{5, -5}))
	assert.Equal(t, Axes{X: -1}, g.Normalize(Pointer{-5, 0}))
}
