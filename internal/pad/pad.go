// Package pad holds the joystick pad state and the renderer-agnostic frame
// built from it.
package pad

import (
	"fmt"
	"image"
	"image/color"

	"github.com/Gurvan/go-joydrive"
)

// DotRadius is the radius of the pointer dot.
const DotRadius = 10

var (
	BoundaryColor = color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}
	DotColor      = color.RGBA{B: 0xFF, A: 0xFF}
	TextColor     = color.Black
)

// State is the only data the pad keeps: the latest pointer position.
type State struct {
	Pointer joydrive.Pointer
}

// Initial returns the state with the pointer resting at the pad center.
func Initial(g joydrive.Geometry) State {
	return State{Pointer: g.Center()}
}

// Apply replaces the pointer with the event position. The latest event wins.
func Apply(_ State, p joydrive.Pointer) State {
	return State{Pointer: p}
}

// PointerSource supplies pointer positions to the pad. ok is false when the
// source has nothing new for this tick.
type PointerSource interface {
	Pointer() (p joydrive.Pointer, ok bool)
}

// Options toggles optional parts of the frame.
type Options struct {
	ShowModules bool
}

// Circle is a circle in surface coordinates.
type Circle struct {
	Center image.Point
	Radius float64
}

// Text is one line of text anchored at its top-left corner.
type Text struct {
	At   image.Point
	Line string
}

// Frame is everything a renderer has to draw.
type Frame struct {
	Boundary Circle
	Dot      Circle
	Lines    []Text
	Reading  joydrive.Reading
	Modules  joydrive.ModuleAngles
}

// Build computes the reading for s and lays out the frame.
func Build(s State, g joydrive.Geometry, opts Options) Frame {
	r := g.Compute(s.Pointer)
	f := Frame{
		Boundary: Circle{Center: image.Pt(g.CenterX, g.CenterY), Radius: g.Radius},
		Dot:      Circle{Center: image.Pt(s.Pointer.X, s.Pointer.Y), Radius: DotRadius},
		Reading:  r,
		Lines:    Lines(r),
	}
	if opts.ShowModules {
		f.Modules = g.Modules(r.Drive)
		f.Lines = append(f.Lines, ModuleLines(f.Modules)...)
	}
	return f
}

// Lines formats a reading as the five text lines of the pad.
func Lines(r joydrive.Reading) []Text {
	return []Text{
		{At: image.Pt(20, 20), Line: fmt.Sprintf("Joystick X: %.2f", r.Axes.X)},
		{At: image.Pt(20, 40), Line: fmt.Sprintf("Joystick Y: %.2f", r.Axes.Y)},
		{At: image.Pt(20, 70), Line: fmt.Sprintf("FWD = %.2f", r.Drive.FWD)},
		{At: image.Pt(20, 90), Line: fmt.Sprintf("STR = %.2f", r.Drive.STR)},
		{At: image.Pt(20, 110), Line: fmt.Sprintf("RCW = %.2f", r.Drive.RCW)},
	}
}

// ModuleLines formats swerve module angles, one line per module, below the
// drive lines.
func ModuleLines(m joydrive.ModuleAngles) []Text {
	out := make([]Text, 0, len(joydrive.Modules)+1)
	y := 140
	for _, mod := range joydrive.Modules {
		out = append(out, Text{At: image.Pt(20, y), Line: fmt.Sprintf("%s = %.0f deg", mod, m.Degrees(mod))})
		y += 20
	}
	if m.Idle {
		out = append(out, Text{At: image.Pt(20, y), Line: "modules idle"})
	}
	return out
}
