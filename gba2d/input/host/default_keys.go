package host

import "github.com/valerio/go-gba2d/gba2d/input/action"

// DefaultKeyMap provides default key mappings that work across backends.
// Backends can use these mappings as a base and override/extend as needed.
var DefaultKeyMap = map[string]action.Action{
	// Keypad
	"z":         action.ButtonA,
	"x":         action.ButtonB,
	"Enter":     action.ButtonStart,
	"Backspace": action.ButtonSelect,
	"Up":        action.ButtonUp,
	"Down":      action.ButtonDown,
	"Left":      action.ButtonLeft,
	"Right":     action.ButtonRight,
	"a":         action.ButtonL,
	"s":         action.ButtonR,

	// Host controls
	"Space":  action.HostPauseToggle,
	"p":      action.HostPauseToggle,
	"f":      action.HostStepFrame,
	"F12":    action.HostSnapshot,
	"Escape": action.HostQuit,
	"q":      action.HostQuit,

	// Debug controls
	"+": action.DebugLogLevelIncrease,
	"=": action.DebugLogLevelIncrease,
	"-": action.DebugLogLevelDecrease,
	"_": action.DebugLogLevelDecrease,
}

// GetDefaultMapping returns the default action for a key, if one exists
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
