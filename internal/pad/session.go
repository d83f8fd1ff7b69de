package pad

import (
	"context"
	"errors"

	"github.com/Gurvan/go-joydrive"
)

// ErrStopped is returned by Session.Step once the pad should close.
var ErrStopped = errors.New("pad: stopped")

// Input is what a renderer saw during one tick.
type Input struct {
	Quit      bool
	MouseDown bool
	Mouse     joydrive.Pointer
	Touches   []joydrive.Pointer
}

// Pick returns the pointer for this tick. A configured source wins over
// mouse and touch; a held mouse button wins over touch.
func Pick(src PointerSource, in Input) (joydrive.Pointer, bool) {
	if src != nil {
		return src.Pointer()
	}
	if in.MouseDown {
		return in.Mouse, true
	}
	if len(in.Touches) > 0 {
		return in.Touches[0], true
	}
	return joydrive.Pointer{}, false
}

// Session drives one pad: it owns the state value and the last frame.
type Session struct {
	geometry joydrive.Geometry
	options  Options
	source   PointerSource
	state    State
	frame    Frame
	started  bool
}

func NewSession(g joydrive.Geometry, opts Options, src PointerSource) *Session {
	s := &Session{geometry: g, options: opts, source: src, state: Initial(g)}
	s.frame = Build(s.state, g, opts)
	return s
}

// Step applies one tick of input. changed is true on the first step and
// whenever the reading differs from the previous one. Step returns
// ErrStopped when ctx is done or the input asks to quit.
func (s *Session) Step(ctx context.Context, in Input) (changed bool, err error) {
	if ctx.Err() != nil || in.Quit {
		return false, ErrStopped
	}
	if p, ok := Pick(s.source, in); ok {
		s.state = Apply(s.state, p)
	}
	prev := s.frame.Reading
	s.frame = Build(s.state, s.geometry, s.options)
	changed = !s.started || s.frame.Reading != prev
	s.started = true
	return changed, nil
}

func (s *Session) State() State { return s.state }

func (s *Session) Frame() Frame { return s.frame }
