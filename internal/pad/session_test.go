package pad

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gurvan/go-joydrive"
)

type fixedSource struct {
	p  joydrive.Pointer
	ok bool
}

func (s fixedSource) Pointer() (joydrive.Pointer, bool) { return s.p, s.ok }

func TestPickSourceOverridesMouseAndTouch(t *testing.T) {
	in := Input{
		MouseDown: true,
		Mouse:     joydrive.Pointer{X: 1, Y: 1},
		Touches:   []joydrive.Pointer{{X: 2, Y: 2}},
	}

	p, ok := Pick(fixedSource{p: joydrive.Pointer{X: 300, Y: 100}, ok: true}, in)
	assert.True(t, ok)
	assert.Equal(t, joydrive.Pointer{X: 300, Y: 100}, p)

	// A silent source still hides the mouse.
	_, ok = Pick(fixedSource{}, in)
	assert.False(t, ok)
}

func TestPickMouseThenTouch(t *testing.T) {
	p, ok := Pick(nil, Input{MouseDown: true, Mouse: joydrive.Pointer{X: 1, Y: 1}, Touches: []joydrive.Pointer{{X: 2, Y: 2}}})
	assert.True(t, ok)
	assert.Equal(t, joydrive.Pointer{X: 1, Y: 1}, p)

	// Hovering without the button held is not a drag.
	p, ok = Pick(nil, Input{Mouse: joydrive.Pointer{X: 1, Y: 1}, Touches: []joydrive.Pointer{{X: 2, Y: 2}, {X: 3, Y: 3}}})
	assert.True(t, ok)
	assert.Equal(t, joydrive.Pointer{X: 2, Y: 2}, p)

	_, ok = Pick(nil, Input{Mouse: joydrive.Pointer{X: 1, Y: 1}})
	assert.False(t, ok)
}

func TestSessionStep(t *testing.T) {
	s := NewSession(joydrive.DefaultGeometry(), Options{}, nil)
	ctx := context.Background()
	assert.Equal(t, joydrive.Pointer{X: 200, Y: 200}, s.State().Pointer)

	changed, err := s.Step(ctx, Input{})
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = s.Step(ctx, Input{})
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = s.Step(ctx, Input{MouseDown: true, Mouse: joydrive.Pointer{X: 300, Y: 100}})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "RCW = 1.41", s.Frame().Lines[4].Line)

	// Releasing the button keeps the last position.
	changed, err = s.Step(ctx, Input{})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, joydrive.Pointer{X: 300, Y: 100}, s.State().Pointer)
}

func TestSessionStopsOnQuit(t *testing.T) {
	s := NewSession(joydrive.DefaultGeometry(), Options{}, nil)
	_, err := s.Step(context.Background(), Input{Quit: true})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestSessionStopsOnCanceledContext(t *testing.T) {
	s := NewSession(joydrive.DefaultGeometry(), Options{}, fixedSource{p: joydrive.Pointer{X: 300, Y: 100}, ok: true})
	ctx, cancel := context.WithCancel(context.Background())

	_, err := s.Step(ctx, Input{})
	require.NoError(t, err)

	cancel()
	_, err = s.Step(ctx, Input{})
	assert.ErrorIs(t, err, ErrStopped)
	// The frame is left as it was before the stop.
	assert.Equal(t, joydrive.Pointer{X: 300, Y: 100}, s.State().Pointer)
}
