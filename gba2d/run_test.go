package gba2d_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-gba2d/gba2d"
	"github.com/valerio/go-gba2d/gba2d/backend"
	"github.com/valerio/go-gba2d/gba2d/input/action"
	"github.com/valerio/go-gba2d/gba2d/video"
)

// MockBackend is a test backend that returns predetermined events
type MockBackend struct {
	events      [][]backend.InputEvent // Per Update call
	initErr     error
	updateErr   error
	initialized bool
	cleanedUp   bool
	updateCalls int
	handled     []action.Action
	frames      []uint32 // Pixel (0,0) of each presented frame
}

func (m *MockBackend) Init(config backend.Config) error {
	m.initialized = true
	return m.initErr
}

func (m *MockBackend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	m.updateCalls++
	m.frames = append(m.frames, frame.GetPixel(0, 0))
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if m.updateCalls <= len(m.events) {
		return m.events[m.updateCalls-1], nil
	}
	return nil, nil
}

func (m *MockBackend) Cleanup() error {
	m.cleanedUp = true
	return nil
}

func (m *MockBackend) HandleAction(act action.Action) {
	m.handled = append(m.handled, act)
}

var _ backend.Backend = (*MockBackend)(nil)

func TestEventFlow(t *testing.T) {
	tests := []struct {
		name          string
		events        [][]backend.InputEvent
		maxFrames     int
		expectedCalls int
		expectedGame  int
	}{
		{
			name:          "quit event stops loop",
			events:        [][]backend.InputEvent{{backend.Press(action.HostQuit)}},
			expectedCalls: 1,
			expectedGame:  1,
		},
		{
			name: "quit on a later frame",
			events: [][]backend.InputEvent{
				nil,
				{backend.Press(action.ButtonA)},
				{backend.Release(action.ButtonA), backend.Press(action.HostQuit)},
			},
			expectedCalls: 3,
			expectedGame:  3,
		},
		{
			name: "pause stops game frames but not presentation",
			events: [][]backend.InputEvent{
				{backend.Press(action.HostPauseToggle)},
			},
			maxFrames:     4,
			expectedCalls: 4,
			expectedGame:  1,
		},
		{
			name:          "no events runs until frame limit",
			maxFrames:     5,
			expectedCalls: 5,
			expectedGame:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &dotGame{}
			c := newConsole(t, g)
			mock := &MockBackend{events: tt.events}

			err := gba2d.Run(context.Background(), c, gba2d.RunConfig{
				Backend:       mock,
				BackendConfig: backend.Config{Title: "Test"},
				MaxFrames:     tt.maxFrames,
			})
			require.NoError(t, err)

			assert.True(t, mock.initialized)
			assert.True(t, mock.cleanedUp)
			assert.Equal(t, tt.expectedCalls, mock.updateCalls)
			assert.Equal(t, tt.expectedGame, g.frames)
		})
	}
}

func TestRunButtonReachesGame(t *testing.T) {
	g := &dotGame{}
	c := newConsole(t, g)
	mock := &MockBackend{events: [][]backend.InputEvent{
		{backend.Press(action.ButtonA)},
		nil,
		{backend.Release(action.ButtonA)},
	}}

	require.NoError(t, gba2d.Run(context.Background(), c, gba2d.RunConfig{Backend: mock, MaxFrames: 4}))

	green, red := video.Green.Pixel(), video.Red.Pixel()
	assert.Equal(t, []uint32{green, red, red, green}, mock.frames)
	assert.Equal(t, 1, g.hits)
	assert.Empty(t, mock.handled, "game input is not a backend action")
}

func TestRunHostActionsReachBackend(t *testing.T) {
	c := newConsole(t, &dotGame{})
	mock := &MockBackend{events: [][]backend.InputEvent{
		{backend.Press(action.HostSnapshot), backend.Press(action.DebugLogLevelIncrease)},
	}}
	level := new(slog.LevelVar)

	require.NoError(t, gba2d.Run(context.Background(), c, gba2d.RunConfig{
		Backend:   mock,
		MaxFrames: 2,
		LogLevel:  level,
	}))

	assert.Equal(t, []action.Action{action.HostSnapshot, action.DebugLogLevelIncrease}, mock.handled)
	assert.Equal(t, slog.LevelDebug, level.Level())
}

func TestRunLogLevelRepeatIsDebounced(t *testing.T) {
	c := newConsole(t, &dotGame{})
	mock := &MockBackend{events: [][]backend.InputEvent{
		{backend.Press(action.DebugLogLevelIncrease)},
		{backend.Press(action.DebugLogLevelIncrease)},
	}}
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	require.NoError(t, gba2d.Run(context.Background(), c, gba2d.RunConfig{
		Backend:   mock,
		MaxFrames: 3,
		LogLevel:  level,
	}))

	assert.Equal(t, slog.LevelInfo, level.Level(), "key repeat shifts the level once")
	assert.Equal(t, []action.Action{action.DebugLogLevelIncrease}, mock.handled)
}

func TestRunGameQuit(t *testing.T) {
	c := newConsole(t, &dotGame{err: gba2d.ErrQuit})
	mock := &MockBackend{}

	require.NoError(t, gba2d.Run(context.Background(), c, gba2d.RunConfig{Backend: mock}))
	assert.Equal(t, 1, mock.updateCalls, "final frame is still presented")
}

func TestRunErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("no backend", func(t *testing.T) {
		c := newConsole(t, &dotGame{})
		assert.Error(t, gba2d.Run(context.Background(), c, gba2d.RunConfig{}))
	})

	t.Run("init", func(t *testing.T) {
		c := newConsole(t, &dotGame{})
		err := gba2d.Run(context.Background(), c, gba2d.RunConfig{Backend: &MockBackend{initErr: backend.ErrUnavailable}})
		assert.ErrorIs(t, err, backend.ErrUnavailable)
	})

	t.Run("update", func(t *testing.T) {
		c := newConsole(t, &dotGame{})
		mock := &MockBackend{updateErr: boom}
		err := gba2d.Run(context.Background(), c, gba2d.RunConfig{Backend: mock})
		assert.ErrorIs(t, err, boom)
		assert.True(t, mock.cleanedUp)
	})

	t.Run("game", func(t *testing.T) {
		c := newConsole(t, &dotGame{err: boom})
		err := gba2d.Run(context.Background(), c, gba2d.RunConfig{Backend: &MockBackend{}})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled", func(t *testing.T) {
		c := newConsole(t, &dotGame{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		mock := &MockBackend{}
		err := gba2d.Run(ctx, c, gba2d.RunConfig{Backend: mock})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, mock.updateCalls)
	})
}
