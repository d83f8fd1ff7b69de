package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/Gurvan/go-joydrive/gcadapter"
	"github.com/Gurvan/go-joydrive/internal/buildinfo"
	"github.com/Gurvan/go-joydrive/internal/config"
	"github.com/Gurvan/go-joydrive/internal/headless"
	"github.com/Gurvan/go-joydrive/internal/log"
	"github.com/Gurvan/go-joydrive/internal/pad"
	"github.com/Gurvan/go-joydrive/internal/window"
)

func main() {
	var (
		configPath string
		logLevel   string
		useGC      bool
		gcPort     uint
		hcfg       headless.Config
		headlessOn bool
	)
	flag.StringVar(&configPath, "config", "", "YAML config file (defaults when empty).")
	flag.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides the config).")
	flag.BoolVar(&useGC, "gc", false, "Drive the pad with a GameCube controller stick instead of the mouse.")
	flag.UintVar(&gcPort, "gc-port", 1, "GameCube adapter port, 1-4.")
	flag.BoolVar(&headlessOn, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = until the source is exhausted).")
	flag.Parse()

	if err := run(configPath, logLevel, useGC, gcPort, headlessOn, hcfg); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, logLevel string, useGC bool, gcPort uint, headlessOn bool, hcfg headless.Config) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger := log.New(level)
	defer logger.Sync()

	geom := cfg.PadGeometry()
	opts := pad.Options{ShowModules: cfg.ShowModules}
	logger.Info("joydrive starting",
		log.String("build", buildinfo.Short()),
		log.Bool("headless", headlessOn),
		log.Bool("gc", useGC),
	)

	// Both the window and the headless loop watch ctx, so Ctrl-C closes
	// either one and stops the adapter's poll loop with it.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var source pad.PointerSource
	if useGC {
		if gcPort < 1 || gcPort > 4 {
			return fmt.Errorf("gc-port must be 1-4, got %d", gcPort)
		}
		adapter, err := gcadapter.NewGCAdapter(gcadapter.WithLogger(logger))
		if err != nil {
			return err
		}
		defer adapter.Close()
		adapter.StartPolling(ctx)
		source = gcadapter.NewStickSource(adapter, uint8(gcPort-1), geom)
	}

	if headlessOn {
		if source == nil {
			source = pad.NewReplay(cfg.ReplayPointers())
		}
		hcfg.Geometry = geom
		hcfg.Options = opts
		hcfg.Source = source
		hcfg.Logger = logger
		return headless.Run(ctx, hcfg)
	}

	return window.Run(ctx, window.Config{
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Title:    cfg.Window.Title,
		Geometry: geom,
		Options:  opts,
		Source:   source,
		Logger:   logger,
	})
}
