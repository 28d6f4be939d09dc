package gba2d

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/valerio/go-gba2d/gba2d/input"
	"github.com/valerio/go-gba2d/gba2d/input/action"
	"github.com/valerio/go-gba2d/gba2d/input/event"
	"github.com/valerio/go-gba2d/gba2d/input/host"
	"github.com/valerio/go-gba2d/gba2d/memory"
	"github.com/valerio/go-gba2d/gba2d/video"
)

// ErrQuit may be returned by Game.Frame to end the run loop cleanly.
var ErrQuit = errors.New("game requested quit")

// Game is a program written against the core library. Frame runs one
// iteration of its main loop, usually ending in Display.VSync.
type Game interface {
	Init(d *video.Display) error
	Frame(d *video.Display, k *input.Keypad) error
}

// Console runs a Game on the simulated hardware and captures what the
// LCD shows after each frame.
type Console struct {
	mmu     *memory.MMU
	display *video.Display
	keypad  *input.Keypad
	manager *host.Manager
	game    Game

	// logLevel is shifted by the debug log level actions when set.
	logLevel *slog.LevelVar

	frame  *video.FrameBuffer
	frames uint64
	paused bool
	step   bool
}

// New creates a console for game and runs the game's Init.
func New(game Game) (*Console, error) {
	mmu := memory.New()
	c := &Console{
		mmu:     mmu,
		display: video.NewDisplay(mmu),
		keypad:  input.NewKeypad(mmu),
		manager: host.NewManager(mmu.Keypad()),
		game:    game,
		frame:   video.NewFrameBuffer(video.ScreenWidth, video.ScreenHeight),
	}

	c.manager.On(action.HostPauseToggle, event.Press, c.togglePause)
	c.manager.On(action.HostStepFrame, event.Press, c.Step)
	c.manager.On(action.DebugLogLevelIncrease, event.Press, func() { c.shiftLogLevel(-4) })
	c.manager.On(action.DebugLogLevelDecrease, event.Press, func() { c.shiftLogLevel(4) })

	if err := game.Init(c.display); err != nil {
		return nil, fmt.Errorf("failed to initialize game: %w", err)
	}
	return c, nil
}

// RunUntilFrame runs one game frame and captures the result. A game that
// returns without waiting for vblank gets one so the LCD always advances
// by at least a frame.
func (c *Console) RunUntilFrame() error {
	if c.paused && !c.step {
		return nil
	}
	c.step = false

	before := c.mmu.LCD().Frames()
	err := c.game.Frame(c.display, c.keypad)
	if err != nil && !errors.Is(err, ErrQuit) {
		return fmt.Errorf("frame %d: %w", c.frames, err)
	}
	if c.mmu.LCD().Frames() == before {
		c.display.VSync()
	}

	video.CaptureInto(c.mmu, c.frame)
	c.frames++
	return err
}

// CurrentFrame returns the most recent capture. The buffer is reused
// between frames.
func (c *Console) CurrentFrame() *video.FrameBuffer {
	return c.frame
}

// HandleAction routes a host input to the keypad or the console controls.
// It reports false when the input was dropped by the debounce.
func (c *Console) HandleAction(act action.Action, evt event.Type) bool {
	return c.manager.Trigger(act, evt)
}

// SetLogLevel hands the console a level for the debug log level actions to
// adjust; nil disables them.
func (c *Console) SetLogLevel(level *slog.LevelVar) {
	c.logLevel = level
}

// shiftLogLevel moves the level by delta, staying within Debug..Error.
func (c *Console) shiftLogLevel(delta slog.Level) {
	if c.logLevel == nil {
		return
	}
	next := c.logLevel.Level() + delta
	if next < slog.LevelDebug || next > slog.LevelError {
		return
	}
	c.logLevel.Set(next)
	slog.Info("Log level changed", "level", next)
}

// ReleaseAll lets go of every button, for backends losing focus.
func (c *Console) ReleaseAll() {
	c.manager.ReleaseAll()
}

// FrameCount returns the number of frames the game has run.
func (c *Console) FrameCount() uint64 {
	return c.frames
}

func (c *Console) Paused() bool {
	return c.paused
}

// Pause stops running game frames; the last capture stays current.
func (c *Console) Pause() {
	c.paused = true
}

func (c *Console) Resume() {
	c.paused = false
	c.step = false
}

// Step runs exactly one more frame while paused.
func (c *Console) Step() {
	if c.paused {
		c.step = true
	}
}

func (c *Console) togglePause() {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
	slog.Info("Pause toggled", "paused", c.paused, "frame", c.frames)
}

// MMU exposes the simulated memory, mainly for tests and tracing.
func (c *Console) MMU() *memory.MMU {
	return c.mmu
}

func (c *Console) Display() *video.Display {
	return c.display
}
