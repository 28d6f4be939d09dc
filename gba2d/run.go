package gba2d

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/valerio/go-gba2d/gba2d/backend"
	"github.com/valerio/go-gba2d/gba2d/input/action"
	"github.com/valerio/go-gba2d/gba2d/input/event"
	"github.com/valerio/go-gba2d/gba2d/timing"
)

// RunConfig configures the host run loop.
type RunConfig struct {
	Backend       backend.Backend
	BackendConfig backend.Config

	// Limiter paces frames; nil runs unthrottled.
	Limiter timing.Limiter

	// MaxFrames stops the loop after that many frames; 0 runs until quit.
	MaxFrames int

	// LogLevel, when set, is adjusted by the debug log level actions.
	LogLevel *slog.LevelVar
}

// Run drives console until the backend or the game asks to quit, MaxFrames
// is reached or ctx is cancelled. Each iteration runs a frame, presents it
// and dispatches the input the backend collected.
func Run(ctx context.Context, c *Console, cfg RunConfig) error {
	if cfg.Backend == nil {
		return errors.New("no backend configured")
	}
	be := cfg.Backend

	if err := be.Init(cfg.BackendConfig); err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}
	defer func() {
		if err := be.Cleanup(); err != nil {
			slog.Error("Backend cleanup failed", "error", err)
		}
	}()

	limiter := cfg.Limiter
	if limiter == nil {
		limiter = timing.NewNoOpLimiter()
	}
	limiter.Reset()

	handler, _ := be.(backend.ActionHandler)
	if cfg.LogLevel != nil {
		c.SetLogLevel(cfg.LogLevel)
	}

	for frames := 0; cfg.MaxFrames <= 0 || frames < cfg.MaxFrames; frames++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		gameErr := c.RunUntilFrame()
		if gameErr != nil && !errors.Is(gameErr, ErrQuit) {
			return gameErr
		}

		events, err := be.Update(c.CurrentFrame())
		if err != nil {
			return fmt.Errorf("backend update failed: %w", err)
		}

		if dispatch(c, handler, events) || gameErr != nil {
			slog.Info("Quit requested", "frame", c.FrameCount())
			return nil
		}

		limiter.WaitForNextFrame()
	}

	slog.Info("Frame limit reached", "frames", cfg.MaxFrames)
	return nil
}

// dispatch hands events to the console and, for accepted host presses, to
// the backend, reporting whether a quit was requested.
func dispatch(c *Console, handler backend.ActionHandler, events []backend.InputEvent) bool {
	quit := false
	for _, evt := range events {
		if evt.Type == event.Press && evt.Action == action.HostQuit {
			quit = true
			continue
		}
		accepted := c.HandleAction(evt.Action, evt.Type)
		if !accepted || handler == nil || evt.Type != event.Press {
			continue
		}
		if action.GetInfo(evt.Action).Category != action.CategoryGameInput {
			handler.HandleAction(evt.Action)
		}
	}
	return quit
}
