package host

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-gba2d/gba2d/input/action"
	"github.com/valerio/go-gba2d/gba2d/input/event"
	"github.com/valerio/go-gba2d/gba2d/memory"
)

func TestManagerRoutesButtonsToKeypad(t *testing.T) {
	tests := []struct {
		act action.Action
		key memory.KeypadKey
	}{
		{action.ButtonA, memory.KeypadA},
		{action.ButtonB, memory.KeypadB},
		{action.ButtonSelect, memory.KeypadSelect},
		{action.ButtonStart, memory.KeypadStart},
		{action.ButtonRight, memory.KeypadRight},
		{action.ButtonLeft, memory.KeypadLeft},
		{action.ButtonUp, memory.KeypadUp},
		{action.ButtonDown, memory.KeypadDown},
		{action.ButtonR, memory.KeypadR},
		{action.ButtonL, memory.KeypadL},
	}

	for _, tt := range tests {
		t.Run(tt.act.String(), func(t *testing.T) {
			k := memory.NewKeypad()
			m := NewManager(k)

			m.Trigger(tt.act, event.Press)
			assert.True(t, k.Pressed(tt.key))

			m.Trigger(tt.act, event.Release)
			assert.False(t, k.Pressed(tt.key))

			m.Trigger(tt.act, event.Hold)
			assert.True(t, k.Pressed(tt.key))
		})
	}
}

func TestManagerButtonsAreNotDebounced(t *testing.T) {
	k := memory.NewKeypad()
	m := NewManager(k)

	for i := 0; i < 3; i++ {
		m.Trigger(action.ButtonA, event.Press)
		assert.True(t, k.Pressed(memory.KeypadA))
		m.Trigger(action.ButtonA, event.Release)
		assert.False(t, k.Pressed(memory.KeypadA))
	}
}

func TestManagerHostCallbacks(t *testing.T) {
	m := NewManager(memory.NewKeypad())
	calls := 0
	m.On(action.HostPauseToggle, event.Press, func() { calls++ })
	m.On(action.HostPauseToggle, event.Press, func() { calls += 10 })

	m.Trigger(action.HostPauseToggle, event.Press)
	assert.Equal(t, 11, calls)

	m.Trigger(action.HostSnapshot, event.Press)
	assert.Equal(t, 11, calls)
}

func TestManagerDebounce(t *testing.T) {
	tests := []struct {
		name       string
		evt        event.Type
		gap        time.Duration
		wantSecond bool
	}{
		{"rapid press", event.Press, 100 * time.Millisecond, false},
		{"slow press", event.Press, 400 * time.Millisecond, true},
		{"rapid release", event.Release, 10 * time.Millisecond, true},
		{"hold", event.Hold, 10 * time.Millisecond, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := time.Unix(0, 0)
			m := NewManager(nil)
			m.now = func() time.Time { return clock }

			calls := 0
			m.On(action.HostStepFrame, tt.evt, func() { calls++ })

			assert.True(t, m.Trigger(action.HostStepFrame, tt.evt))
			assert.Equal(t, 1, calls, "first event always passes")

			clock = clock.Add(tt.gap)
			assert.Equal(t, tt.wantSecond, m.Trigger(action.HostStepFrame, tt.evt))
			if tt.wantSecond {
				assert.Equal(t, 2, calls)
			} else {
				assert.Equal(t, 1, calls)
			}
		})
	}
}

func TestManagerReleaseAll(t *testing.T) {
	k := memory.NewKeypad()
	m := NewManager(k)
	m.Trigger(action.ButtonUp, event.Press)
	m.Trigger(action.ButtonR, event.Press)

	m.ReleaseAll()

	assert.False(t, k.Pressed(memory.KeypadUp))
	assert.False(t, k.Pressed(memory.KeypadR))
}

func TestDefaultKeyMapCoversEveryButton(t *testing.T) {
	mapped := map[action.Action]bool{}
	for _, act := range DefaultKeyMap {
		mapped[act] = true
	}
	for act := action.ButtonA; act <= action.ButtonL; act++ {
		assert.True(t, mapped[act], "no default key for %v", act)
		assert.Equal(t, action.CategoryGameInput, action.GetInfo(act).Category)
	}
	assert.True(t, mapped[action.HostQuit])

	act, ok := GetDefaultMapping("Escape")
	assert.True(t, ok)
	assert.Equal(t, action.HostQuit, act)

	_, ok = GetDefaultMapping("F7")
	assert.False(t, ok)
}
