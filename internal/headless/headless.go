// Package headless runs the pad without a window, logging every reading
// that changes.
package headless

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gurvan/go-joydrive"
	"github.com/Gurvan/go-joydrive/internal/log"
	"github.com/Gurvan/go-joydrive/internal/pad"
)

// Config controls the no-window runner.
type Config struct {
	Hz       int
	Ticks    uint64 // 0 = run until ctx is done or the source is exhausted
	Geometry joydrive.Geometry
	Options  pad.Options
	Source   pad.PointerSource
	Logger   log.Log
}

// finite is implemented by sources that run out, such as pad.Replay.
type finite interface {
	Done() bool
}

// Run ticks the pad at cfg.Hz. Each tick takes at most one pointer position
// from the source.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Source == nil {
		return fmt.Errorf("headless: no pointer source")
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Nop()
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	session := pad.NewSession(cfg.Geometry, cfg.Options, cfg.Source)
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			changed, err := session.Step(ctx, pad.Input{})
			if errors.Is(err, pad.ErrStopped) {
				return ctx.Err()
			}
			if err != nil {
				return err
			}
			if changed {
				logFrame(cfg.Logger, session.State(), session.Frame(), cfg.Options)
			}

			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
			if src, ok := cfg.Source.(finite); ok && src.Done() && cfg.Ticks == 0 {
				return nil
			}
		}
	}
}

func logFrame(l log.Log, s pad.State, f pad.Frame, opts pad.Options) {
	fields := []log.Field{
		log.Int("x", s.Pointer.X),
		log.Int("y", s.Pointer.Y),
		log.Float64("xj", f.Reading.Axes.X),
		log.Float64("yj", f.Reading.Axes.Y),
		log.Float64("fwd", f.Reading.Drive.FWD),
		log.Float64("str", f.Reading.Drive.STR),
		log.Float64("rcw", f.Reading.Drive.RCW),
	}
	if opts.ShowModules {
		for _, m := range joydrive.Modules {
			fields = append(fields, log.Float64(m.String(), f.Modules.Angle(m)))
		}
		fields = append(fields, log.Bool("idle", f.Modules.Idle))
	}
	l.Info("reading", fields...)
}
