package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/urfave/cli"
	"github.com/valerio/go-gba2d/gba2d"
	"github.com/valerio/go-gba2d/gba2d/backend"
	"github.com/valerio/go-gba2d/gba2d/backend/headless"
	"github.com/valerio/go-gba2d/gba2d/backend/sdl2"
	"github.com/valerio/go-gba2d/gba2d/backend/terminal"
	"github.com/valerio/go-gba2d/gba2d/backend/window"
	"github.com/valerio/go-gba2d/gba2d/demo"
	"github.com/valerio/go-gba2d/gba2d/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "gba2d"
	app.Description = "Runs the gba2d demos on a simulated GBA display"
	app.Usage = "gba2d [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "demo",
			Usage: "Demo to run: " + strings.Join(demo.Names(), ", "),
			Value: "basic",
		},
		cli.StringFlag{
			Name:  "backend",
			Usage: "Output backend: terminal, window, sdl2 or headless",
			Value: "terminal",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run (required for headless, 0 = until quit otherwise)",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn or error",
			Value: "info",
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Window scale factor for the window and sdl2 backends",
			Value: backend.DefaultScale,
		},
		cli.StringFlag{
			Name:  "limiter",
			Usage: "Frame pacing: adaptive, ticker or none (headless always runs unthrottled)",
			Value: "adaptive",
		},
	}
	app.Action = run

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running gba2d", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := new(slog.LevelVar)
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.String("log-level"), err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	demoName := c.String("demo")
	game, err := demo.ByName(demoName)
	if err != nil {
		cli.ShowAppHelp(c)
		return err
	}

	be, err := newBackend(c, demoName)
	if err != nil {
		return err
	}

	console, err := gba2d.New(game)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	limiter, err := newLimiter(c)
	if err != nil {
		return err
	}
	if t, ok := limiter.(*timing.TickerLimiter); ok {
		defer t.Stop()
	}

	err = gba2d.Run(ctx, console, gba2d.RunConfig{
		Backend: be,
		BackendConfig: backend.Config{
			Title:      "gba2d - " + demoName,
			Scale:      c.Int("scale"),
			ShowStatus: true,
		},
		Limiter:   limiter,
		MaxFrames: c.Int("frames"),
		LogLevel:  level,
	})
	if errors.Is(err, context.Canceled) {
		slog.Info("Interrupted", "frames", console.FrameCount())
		return nil
	}
	if err != nil {
		return err
	}

	slog.Info("Run completed", "frames", console.FrameCount())
	return nil
}

func newBackend(c *cli.Context, demoName string) (backend.Backend, error) {
	switch name := c.String("backend"); name {
	case "terminal":
		return terminal.New(), nil
	case "window":
		return window.New(), nil
	case "sdl2":
		return sdl2.New(), nil
	case "headless":
		frames := c.Int("frames")
		if frames <= 0 {
			return nil, errors.New("headless mode requires --frames option with a positive value")
		}

		snapshotConfig, err := headless.CreateSnapshotConfig(c.Int("snapshot-interval"), c.String("snapshot-dir"), demoName)
		if err != nil {
			return nil, err
		}
		return headless.New(frames, snapshotConfig), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

func newLimiter(c *cli.Context) (timing.Limiter, error) {
	if c.String("backend") == "headless" {
		return timing.NewNoOpLimiter(), nil
	}
	switch name := c.String("limiter"); name {
	case "adaptive":
		return timing.New(true), nil
	case "ticker":
		return timing.NewTickerLimiter(), nil
	case "none":
		return timing.New(false), nil
	default:
		return nil, fmt.Errorf("unknown limiter %q", name)
	}
}
