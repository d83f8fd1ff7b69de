package pad

import "github.com/Gurvan/go-joydrive"

// Replay is a PointerSource that plays back a fixed list of positions, one
// per call, and then reports nothing.
type Replay struct {
	points []joydrive.Pointer
	next   int
}

func NewReplay(points []joydrive.Pointer) *Replay {
	return &Replay{points: points}
}

func (r *Replay) Pointer() (joydrive.Pointer, bool) {
	if r.next >= len(r.points) {
		return joydrive.Pointer{}, false
	}
	p := r.points[r.next]
	r.next++
	return p, true
}

// Done reports whether every position has been played.
func (r *Replay) Done() bool {
	return r.next >= len(r.points)
}
