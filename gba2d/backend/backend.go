package backend

import (
	"errors"

	"github.com/valerio/go-gba2d/gba2d/input/action"
	"github.com/valerio/go-gba2d/gba2d/input/event"
	"github.com/valerio/go-gba2d/gba2d/video"
)

// ErrUnavailable is returned by Init of a backend compiled out of this build.
var ErrUnavailable = errors.New("backend not available in this build")

// Backend presents frames on a host and collects host input.
// Backends are responsible for:
// - Rendering frames to their specific output (terminal, window, files)
// - Translating platform-specific input events to InputEvents
// - Handling backend-specific features (snapshots, status overlays)
type Backend interface {
	// Init configures the backend. It must be called before Update.
	Init(config Config) error

	// Update presents frame and returns the input events that arrived
	// since the previous call.
	Update(frame *video.FrameBuffer) ([]InputEvent, error)

	// Cleanup releases resources when shutting down.
	Cleanup() error
}

// ActionHandler is implemented by backends that react to host actions
// themselves, such as the snapshot key.
type ActionHandler interface {
	HandleAction(act action.Action)
}

// InputEvent is one host input, already mapped to an action.
type InputEvent struct {
	Action action.Action
	Type   event.Type
}

// Config holds configuration for backends.
type Config struct {
	Title      string
	Scale      int
	ShowStatus bool // Backends may ignore unsupported features
	Callbacks  Callbacks
}

// Callbacks allows backends to reach the run loop outside of Update.
type Callbacks struct {
	// OnQuit is called when the host asks to shut down (window closed,
	// SIGINT). The quit is also reported as a HostQuit event.
	OnQuit func()
}

// DefaultScale is the window scale factor when none is configured.
const DefaultScale = 3

// ScaleOrDefault returns c.Scale, or DefaultScale if unset.
func (c Config) ScaleOrDefault() int {
	if c.Scale <= 0 {
		return DefaultScale
	}
	return c.Scale
}

// Press is shorthand for a press event.
func Press(act action.Action) InputEvent {
	return InputEvent{Action: act, Type: event.Press}
}

// Release is shorthand for a release event.
func Release(act action.Action) InputEvent {
	return InputEvent{Action: act, Type: event.Release}
}
