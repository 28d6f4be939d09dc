//go:build sdl2

package sdl2

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/valerio/go-gba2d/gba2d/backend"
	"github.com/valerio/go-gba2d/gba2d/debug"
	"github.com/valerio/go-gba2d/gba2d/input/action"
	"github.com/valerio/go-gba2d/gba2d/video"
	"github.com/veandco/go-sdl2/sdl"
)

// Backend implements the Backend interface using SDL2 bindings
// Note: building this requires SDL2 development libraries installed.
// Default builds skip this and use a stubbed renderer, see build tags (sdl2)
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	running  bool
	config   backend.Config

	pixels       []byte
	eventQueue   []backend.InputEvent
	currentFrame *video.FrameBuffer
}

// New creates a new SDL2 backend
func New() *Backend {
	return &Backend{
		pixels: make([]byte, video.ScreenWidth*video.ScreenHeight*bytesPerPixel),
	}
}

// Init initializes the SDL2 backend
func (s *Backend) Init(config backend.Config) error {
	s.config = config
	scale := int32(config.ScaleOrDefault())

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		video.ScreenWidth*scale,
		video.ScreenHeight*scale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %w", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	s.renderer = renderer

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING,
		video.ScreenWidth,
		video.ScreenHeight,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create texture: %w", err)
	}
	s.texture = texture

	s.running = true
	slog.Info("SDL2 backend initialized", "scale", scale)
	return nil
}

// Update renders a frame and processes events
func (s *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		s.handleEvent(ev)
	}

	events := s.eventQueue
	s.eventQueue = nil

	if !s.running {
		return events, nil
	}

	s.currentFrame = frame
	if err := s.renderFrame(frame); err != nil {
		return events, err
	}
	return events, nil
}

// Cleanup cleans up SDL2 resources
func (s *Backend) Cleanup() error {
	slog.Info("Cleaning up SDL2 backend")

	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()

	return nil
}

// HandleAction processes backend-specific actions
func (s *Backend) HandleAction(act action.Action) {
	if act == action.HostSnapshot {
		debug.TakeSnapshot(s.currentFrame)
	}
}

func (s *Backend) handleEvent(ev sdl.Event) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		s.running = false
		s.eventQueue = append(s.eventQueue, backend.Press(action.HostQuit))
		if s.config.Callbacks.OnQuit != nil {
			s.config.Callbacks.OnQuit()
		}

	case *sdl.KeyboardEvent:
		act, ok := keyMapping[e.Keysym.Sym]
		if !ok {
			return
		}
		if e.Type == sdl.KEYDOWN {
			// Ignore key repeat events
			if e.Repeat != 0 {
				return
			}
			s.eventQueue = append(s.eventQueue, backend.Press(act))
		} else if e.Type == sdl.KEYUP && action.GetInfo(act).Category == action.CategoryGameInput {
			s.eventQueue = append(s.eventQueue, backend.Release(act))
		}
	}
}

// keyMapping maps SDL2 keys to actions
var keyMapping = map[sdl.Keycode]action.Action{
	// Host controls
	sdl.K_F12:    action.HostSnapshot,
	sdl.K_ESCAPE: action.HostQuit,
	sdl.K_SPACE:  action.HostPauseToggle,
	sdl.K_f:      action.HostStepFrame,

	// Debug controls
	sdl.K_EQUALS: action.DebugLogLevelIncrease,
	sdl.K_MINUS:  action.DebugLogLevelDecrease,

	// Keypad
	sdl.K_RETURN:    action.ButtonStart,
	sdl.K_BACKSPACE: action.ButtonSelect,
	sdl.K_z:         action.ButtonA,
	sdl.K_x:         action.ButtonB,
	sdl.K_a:         action.ButtonL,
	sdl.K_s:         action.ButtonR,
	sdl.K_UP:        action.ButtonUp,
	sdl.K_DOWN:      action.ButtonDown,
	sdl.K_LEFT:      action.ButtonLeft,
	sdl.K_RIGHT:     action.ButtonRight,
}

func (s *Backend) renderFrame(frame *video.FrameBuffer) error {
	toRGBA8888(frame.ToSlice(), s.pixels)

	if err := s.texture.Update(nil, unsafe.Pointer(&s.pixels[0]), video.ScreenWidth*bytesPerPixel); err != nil {
		return fmt.Errorf("failed to update texture: %w", err)
	}

	s.renderer.SetDrawColor(0, 0, 0, 0xFF)
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()
	return nil
}
