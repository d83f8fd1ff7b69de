// Package config loads the pad configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Gurvan/go-joydrive"
)

const (
	defaultWindowWidth  = 400
	defaultWindowHeight = 400
	defaultWindowTitle  = "Joystick Drive Visualizer"
	defaultLogLevel     = "info"
)

// Config holds runtime configuration values.
type Config struct {
	Window      Window   `yaml:"window"`
	Geometry    Geometry `yaml:"geometry"`
	ShowModules bool     `yaml:"show_modules"`
	Replay      []Point  `yaml:"replay"`
	LogLevel    string   `yaml:"log_level"`
}

// Window is the logical drawing surface.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Geometry mirrors joydrive.Geometry with YAML keys.
type Geometry struct {
	CenterX int     `yaml:"center_x"`
	CenterY int     `yaml:"center_y"`
	Radius  float64 `yaml:"radius"`
	Length  float64 `yaml:"length"`
	Width   float64 `yaml:"width"`
}

// Point is one scripted pointer position for headless replay.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Default returns the stock 400x400 pad.
func Default() Config {
	g := joydrive.DefaultGeometry()
	return Config{
		Window: Window{
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
			Title:  defaultWindowTitle,
		},
		Geometry: Geometry{
			CenterX: g.CenterX,
			CenterY: g.CenterY,
			Radius:  g.Radius,
			Length:  g.Length,
			Width:   g.Width,
		},
		LogLevel: defaultLogLevel,
	}
}

// Load reads a YAML file over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads YAML from r over the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the pad cannot draw or compute with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Geometry.Radius <= 0 {
		return fmt.Errorf("geometry.radius: must be positive, got %v", c.Geometry.Radius)
	}
	if c.Geometry.Length <= 0 {
		return fmt.Errorf("geometry.length: must be positive, got %v", c.Geometry.Length)
	}
	if c.Geometry.Width < 0 {
		return fmt.Errorf("geometry.width: must not be negative, got %v", c.Geometry.Width)
	}
	return nil
}

// PadGeometry converts the YAML geometry into the calculator's.
func (c Config) PadGeometry() joydrive.Geometry {
	return joydrive.Geometry{
		CenterX: c.Geometry.CenterX,
		CenterY: c.Geometry.CenterY,
		Radius:  c.Geometry.Radius,
		Length:  c.Geometry.Length,
		Width:   c.Geometry.Width,
	}
}

// ReplayPointers returns the replay script as pointer positions.
func (c Config) ReplayPointers() []joydrive.Pointer {
	out := make([]joydrive.Pointer, len(c.Replay))
	for i, p := range c.Replay {
		out[i] = joydrive.Pointer{X: p.X, Y: p.Y}
	}
	return out
}
