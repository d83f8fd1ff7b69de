package gcadapter

import (
	"math"

	"github.com/Gurvan/go-joydrive"
)

// Controllers is what StickSource needs from an adapter.
type Controllers interface {
	Controller(PORT uint8) *GCInputs
}

// StickSource turns the main stick of one controller into pad pointer
// positions. It reports nothing while the controller is unplugged.
type StickSource struct {
	adapter  Controllers
	port     uint8
	geometry joydrive.Geometry
}

// NewStickSource reads the controller on port PORT of adapter.
func NewStickSource(adapter Controllers, PORT uint8, g joydrive.Geometry) *StickSource {
	return &StickSource{adapter: adapter, port: PORT, geometry: g}
}

// Pointer maps full deflection to the boundary circle. The stick's Y axis
// points up while the surface's points down.
func (s *StickSource) Pointer() (joydrive.Pointer, bool) {
	in := s.adapter.Controller(s.port)
	if in == nil || !in.PluggedIn {
		return joydrive.Pointer{}, false
	}
	return StickToPointer(in.StickX, in.StickY, s.geometry), true
}

// StickToPointer places a stick deflection on the pad.
func StickToPointer(x, y float32, g joydrive.Geometry) joydrive.Pointer {
	return joydrive.Pointer{
		X: g.CenterX + int(math.Round(float64(x)*g.Radius)),
		Y: g.CenterY - int(math.Round(float64(y)*g.Radius)),
	}
}
