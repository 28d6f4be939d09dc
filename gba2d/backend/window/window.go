//go:build cgo

package window

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/valerio/go-gba2d/gba2d/backend"
	"github.com/valerio/go-gba2d/gba2d/debug"
	"github.com/valerio/go-gba2d/gba2d/input/action"
	"github.com/valerio/go-gba2d/gba2d/video"
	"golang.org/x/image/font/basicfont"
)

const shutdownTimeout = time.Second

// Backend presents frames in a desktop window using ebiten. ebiten owns
// its own loop, so frames and input cross between it and Update under mu.
type Backend struct {
	config backend.Config

	mu         sync.Mutex
	pixels     []byte
	eventQueue []backend.InputEvent
	frames     uint64
	runErr     error

	closing atomic.Bool
	ready   chan struct{}
	done    chan struct{}

	currentFrame *video.FrameBuffer
}

// New creates a new window backend
func New() *Backend {
	return &Backend{
		pixels: make([]byte, video.ScreenWidth*video.ScreenHeight*bytesPerPixel),
		ready:  make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Init opens the window and waits for the first draw.
func (w *Backend) Init(config backend.Config) error {
	w.config = config
	scale := config.ScaleOrDefault()

	ebiten.SetWindowSize(video.ScreenWidth*scale, video.ScreenHeight*scale)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)

	go func() {
		defer close(w.done)
		err := ebiten.RunGame(&game{w: w})
		if err != nil && !errors.Is(err, ebiten.Termination) {
			w.mu.Lock()
			w.runErr = err
			w.mu.Unlock()
		}
		if !w.closing.Load() {
			w.mu.Lock()
			w.eventQueue = append(w.eventQueue, backend.Press(action.HostQuit))
			w.mu.Unlock()
			if w.config.Callbacks.OnQuit != nil {
				w.config.Callbacks.OnQuit()
			}
		}
	}()

	select {
	case <-w.ready:
		slog.Info("Window backend initialized", "scale", scale)
		return nil
	case <-w.done:
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.runErr == nil {
			return errors.New("window closed before the first frame")
		}
		return fmt.Errorf("failed to open window: %w", w.runErr)
	}
}

// Update hands frame to the window and returns the input collected since
// the previous call.
func (w *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	w.currentFrame = frame

	w.mu.Lock()
	defer w.mu.Unlock()

	toRGBA(frame.ToSlice(), w.pixels)
	w.frames++

	events := w.eventQueue
	w.eventQueue = nil
	return events, w.runErr
}

// Cleanup stops the ebiten loop.
func (w *Backend) Cleanup() error {
	w.closing.Store(true)
	select {
	case <-w.done:
	case <-time.After(shutdownTimeout):
		slog.Warn("Window did not close in time")
	}
	return nil
}

// HandleAction processes backend-specific actions
func (w *Backend) HandleAction(act action.Action) {
	if act == action.HostSnapshot {
		debug.TakeSnapshot(w.currentFrame)
	}
}

// keyMapping maps ebiten keys to actions
var keyMapping = map[ebiten.Key]action.Action{
	ebiten.KeyF12:    action.HostSnapshot,
	ebiten.KeyEscape: action.HostQuit,
	ebiten.KeySpace:  action.HostPauseToggle,
	ebiten.KeyF:      action.HostStepFrame,

	ebiten.KeyEqual: action.DebugLogLevelIncrease,
	ebiten.KeyMinus: action.DebugLogLevelDecrease,

	ebiten.KeyEnter:      action.ButtonStart,
	ebiten.KeyBackspace:  action.ButtonSelect,
	ebiten.KeyZ:          action.ButtonA,
	ebiten.KeyX:          action.ButtonB,
	ebiten.KeyA:          action.ButtonL,
	ebiten.KeyS:          action.ButtonR,
	ebiten.KeyArrowUp:    action.ButtonUp,
	ebiten.KeyArrowDown:  action.ButtonDown,
	ebiten.KeyArrowLeft:  action.ButtonLeft,
	ebiten.KeyArrowRight: action.ButtonRight,
}

// game adapts Backend to ebiten.Game, whose Update clashes with
// backend.Backend.
type game struct {
	w      *Backend
	screen *ebiten.Image
}

// Update is called by ebiten once per tick.
func (g *game) Update() error {
	w := g.w
	if w.closing.Load() {
		return ebiten.Termination
	}

	var events []backend.InputEvent
	for key, act := range keyMapping {
		if inpututil.IsKeyJustPressed(key) {
			events = append(events, backend.Press(act))
		} else if inpututil.IsKeyJustReleased(key) && action.GetInfo(act).Category == action.CategoryGameInput {
			events = append(events, backend.Release(act))
		}
	}

	if len(events) > 0 {
		w.mu.Lock()
		w.eventQueue = append(w.eventQueue, events...)
		w.mu.Unlock()
	}
	return nil
}

// Draw is called by ebiten to present the latest frame.
func (g *game) Draw(screen *ebiten.Image) {
	w := g.w
	if g.screen == nil {
		g.screen = ebiten.NewImage(video.ScreenWidth, video.ScreenHeight)
	}

	w.mu.Lock()
	g.screen.WritePixels(w.pixels)
	frames := w.frames
	w.mu.Unlock()

	screen.DrawImage(g.screen, nil)
	if w.config.ShowStatus {
		status := statusText(frames, ebiten.ActualFPS())
		ebitenutil.DrawRect(screen, 0, 0, float64(len(status)*7+4), 15, color.RGBA{A: 0xA0})
		text.Draw(screen, status, basicfont.Face7x13, 2, 11, color.White)
	}

	select {
	case <-w.ready:
	default:
		close(w.ready)
	}
}

// Layout keeps the logical screen at the native resolution and lets
// ebiten scale it to the window.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return video.ScreenWidth, video.ScreenHeight
}
