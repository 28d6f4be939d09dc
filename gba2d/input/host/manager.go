// Package host turns host key presses into actions: button actions drive
// the simulated keypad, the rest reach registered callbacks.
package host

import (
	"log/slog"
	"time"

	"github.com/valerio/go-gba2d/gba2d/input/action"
	"github.com/valerio/go-gba2d/gba2d/input/event"
	"github.com/valerio/go-gba2d/gba2d/memory"
)

const (
	// debounceDuration is the minimum time between debounced events
	debounceDuration = 300 * time.Millisecond
)

// Manager handles input actions and their associated callbacks.
// Button actions go straight to the simulated keypad; everything else is
// dispatched to registered callbacks.
type Manager struct {
	handlers      map[action.Action]map[event.Type][]func()
	lastTriggered map[action.Action]map[event.Type]time.Time
	keypad        *memory.Keypad

	now func() time.Time
}

func NewManager(k *memory.Keypad) *Manager {
	return &Manager{
		handlers:      make(map[action.Action]map[event.Type][]func()),
		lastTriggered: make(map[action.Action]map[event.Type]time.Time),
		keypad:        k,
		now:           time.Now,
	}
}

// On registers a callback for a specific action and event type
func (m *Manager) On(act action.Action, evt event.Type, callback func()) {
	if m.handlers[act] == nil {
		m.handlers[act] = make(map[event.Type][]func())
	}
	m.handlers[act][evt] = append(m.handlers[act][evt], callback)
}

// Trigger handles the given action and event type. It reports false when
// the event was dropped by the debounce.
func (m *Manager) Trigger(act action.Action, evt event.Type) bool {
	if key, ok := keypadKey(act); ok {
		if m.keypad == nil {
			return true
		}
		switch evt {
		case event.Press, event.Hold:
			m.keypad.Press(key)
		case event.Release:
			m.keypad.Release(key)
		}
		return true
	}

	// Host and debug presses are debounced: terminals deliver key repeat
	// as a stream of presses.
	if evt == event.Press {
		now := m.now()
		if m.lastTriggered[act] == nil {
			m.lastTriggered[act] = make(map[event.Type]time.Time)
		}
		if last, ok := m.lastTriggered[act][evt]; ok && now.Sub(last) < debounceDuration {
			slog.Debug("Debounced action", "action", act)
			return false
		}
		m.lastTriggered[act][evt] = now
	}

	for _, callback := range m.handlers[act][evt] {
		callback()
	}
	return true
}

// ReleaseAll lets go of every keypad button.
func (m *Manager) ReleaseAll() {
	if m.keypad != nil {
		m.keypad.Reset()
	}
}

// keypadKey maps button actions to keypad keys
func keypadKey(act action.Action) (memory.KeypadKey, bool) {
	switch act {
	case action.ButtonA:
		return memory.KeypadA, true
	case action.ButtonB:
		return memory.KeypadB, true
	case action.ButtonSelect:
		return memory.KeypadSelect, true
	case action.ButtonStart:
		return memory.KeypadStart, true
	case action.ButtonRight:
		return memory.KeypadRight, true
	case action.ButtonLeft:
		return memory.KeypadLeft, true
	case action.ButtonUp:
		return memory.KeypadUp, true
	case action.ButtonDown:
		return memory.KeypadDown, true
	case action.ButtonR:
		return memory.KeypadR, true
	case action.ButtonL:
		return memory.KeypadL, true
	default:
		return 0, false
	}
}
