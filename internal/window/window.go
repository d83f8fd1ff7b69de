// Package window draws the pad in a desktop window with ebiten.
package window

import (
	"context"
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Gurvan/go-joydrive"
	"github.com/Gurvan/go-joydrive/internal/buildinfo"
	"github.com/Gurvan/go-joydrive/internal/log"
	"github.com/Gurvan/go-joydrive/internal/pad"
)

// Config describes the window and where its pointer comes from.
type Config struct {
	Width    int
	Height   int
	Title    string
	Geometry joydrive.Geometry
	Options  pad.Options
	// Source replaces mouse and touch input when set.
	Source pad.PointerSource
	Logger log.Log
}

// Run opens the window and blocks until it is closed, Escape is pressed
// or ctx is done.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Logger == nil {
		cfg.Logger = log.Nop()
	}
	g := &padGame{
		ctx:     ctx,
		cfg:     cfg,
		session: pad.NewSession(cfg.Geometry, cfg.Options, cfg.Source),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type padGame struct {
	ctx     context.Context
	cfg     Config
	session *pad.Session
	face    text.Face
	touches []ebiten.TouchID
}

func (g *padGame) Update() error {
	changed, err := g.session.Step(g.ctx, g.input())
	if errors.Is(err, pad.ErrStopped) {
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if changed {
		s := g.session.State()
		d := g.session.Frame().Reading.Drive
		g.cfg.Logger.Debug("reading",
			log.Int("x", s.Pointer.X),
			log.Int("y", s.Pointer.Y),
			log.Float64("fwd", d.FWD),
			log.Float64("str", d.STR),
			log.Float64("rcw", d.RCW),
		)
	}
	return nil
}

// input samples mouse, touch and keyboard for this tick.
func (g *padGame) input() pad.Input {
	in := pad.Input{
		Quit:      inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		MouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	x, y := ebiten.CursorPosition()
	in.Mouse = joydrive.Pointer{X: x, Y: y}

	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		tx, ty := ebiten.TouchPosition(id)
		in.Touches = append(in.Touches, joydrive.Pointer{X: tx, Y: ty})
	}
	return in
}

func (g *padGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	f := g.session.Frame()
	b := f.Boundary
	vector.StrokeCircle(screen, float32(b.Center.X), float32(b.Center.Y), float32(b.Radius), 1, pad.BoundaryColor, true)
	d := f.Dot
	vector.DrawFilledCircle(screen, float32(d.Center.X), float32(d.Center.Y), float32(d.Radius), pad.DotColor, true)

	for _, l := range f.Lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(l.At.X), float64(l.At.Y))
		op.ColorScale.ScaleWithColor(pad.TextColor)
		text.Draw(screen, l.Line, g.face, op)
	}
}

func (g *padGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
