package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-gba2d/gba2d/backend"
	"github.com/valerio/go-gba2d/gba2d/backend/terminal/render"
	"github.com/valerio/go-gba2d/gba2d/debug"
	"github.com/valerio/go-gba2d/gba2d/input/action"
	"github.com/valerio/go-gba2d/gba2d/input/event"
	"github.com/valerio/go-gba2d/gba2d/input/host"
	"github.com/valerio/go-gba2d/gba2d/video"
)

const (
	width  = video.ScreenWidth
	height = video.ScreenHeight

	minTermWidth  = 40
	minTermHeight = 12
	minLogWidth   = 30

	// keyTimeout is how long a game key counts as held after its last
	// key event. Terminals report no key-up, only autorepeat.
	keyTimeout = 100 * time.Millisecond
)

// Backend implements the Backend interface using tcell for terminal rendering.
// Pixels are drawn two rows per cell with half blocks; recent log lines are
// shown to the right of the screen when the terminal is wide enough.
type Backend struct {
	screen    tcell.Screen
	running   bool
	logBuffer *render.LogBuffer
	logLevel  slog.Level
	config    backend.Config

	eventQueue []backend.InputEvent
	keyStates  map[action.Action]time.Time // Last time each key was seen
	activeKeys map[action.Action]bool      // Keys active in previous frame

	signals    chan os.Signal
	prevLogger *slog.Logger

	currentFrame *video.FrameBuffer
	now          func() time.Time
}

// New creates a new terminal backend on the process terminal.
func New() *Backend {
	return &Backend{
		logLevel: slog.LevelInfo,
		now:      time.Now,
	}
}

// NewWithScreen creates a terminal backend drawing to screen, which Init
// will initialize.
func NewWithScreen(screen tcell.Screen) *Backend {
	b := New()
	b.screen = screen
	return b
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.Config) error {
	t.config = config
	t.keyStates = make(map[action.Action]time.Time)
	t.activeKeys = make(map[action.Action]bool)

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	t.running = true

	// Logs would corrupt the screen, so route them into the panel.
	t.logBuffer = render.NewLogBuffer(200)
	t.prevLogger = slog.Default()
	slog.SetDefault(slog.New(render.NewLogBufferHandler(t.logBuffer, slog.LevelDebug)))

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	t.signals = make(chan os.Signal, 1)
	signal.Notify(t.signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	slog.Info("Terminal backend initialized")
	return nil
}

// Update renders a frame and processes events
func (t *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	now := t.now()

	select {
	case sig := <-t.signals:
		slog.Info("Received signal, quitting", "signal", sig)
		t.quit()
	default:
	}

	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev, now)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	events := t.gameKeyEvents(now)
	events = append(events, t.eventQueue...)
	t.eventQueue = nil

	if !t.running {
		return events, nil
	}

	t.currentFrame = frame
	t.render(frame)
	t.screen.Show()

	return events, nil
}

// gameKeyEvents turns the timestamps of recently seen game keys into
// press, hold and release events.
func (t *Backend) gameKeyEvents(now time.Time) []backend.InputEvent {
	var events []backend.InputEvent
	currentlyActive := make(map[action.Action]bool)

	for act, lastSeen := range t.keyStates {
		if now.Sub(lastSeen) >= keyTimeout {
			delete(t.keyStates, act)
			continue
		}
		currentlyActive[act] = true
		if t.activeKeys[act] {
			events = append(events, backend.InputEvent{Action: act, Type: event.Hold})
		} else {
			slog.Debug("Key press", "action", act)
			events = append(events, backend.Press(act))
		}
	}

	for act := range t.activeKeys {
		if !currentlyActive[act] {
			slog.Debug("Key release", "action", act)
			events = append(events, backend.Release(act))
		}
	}

	t.activeKeys = currentlyActive
	return events
}

// Cleanup cleans up terminal resources
func (t *Backend) Cleanup() error {
	if t.signals != nil {
		signal.Stop(t.signals)
	}
	if t.prevLogger != nil {
		slog.SetDefault(t.prevLogger)
	}
	if t.screen != nil {
		t.screen.Fini()
	}
	return nil
}

// HandleAction processes backend-specific actions
func (t *Backend) HandleAction(act action.Action) {
	switch act {
	case action.HostSnapshot:
		debug.TakeSnapshot(t.currentFrame)
	case action.DebugLogLevelIncrease:
		t.changeLogLevel(1)
	case action.DebugLogLevelDecrease:
		t.changeLogLevel(-1)
	}
}

func (t *Backend) quit() {
	if !t.running {
		return
	}
	t.running = false
	t.eventQueue = append(t.eventQueue, backend.Press(action.HostQuit))
	if t.config.Callbacks.OnQuit != nil {
		t.config.Callbacks.OnQuit()
	}
}

func (t *Backend) processKeyEvent(ev *tcell.EventKey, now time.Time) {
	act, ok := keyMapping[ev.Key()]
	if !ok && ev.Key() == tcell.KeyRune {
		act, ok = runeMapping[ev.Rune()]
	}
	if !ok {
		return
	}

	if act == action.HostQuit {
		t.quit()
		return
	}

	if action.GetInfo(act).Category != action.CategoryGameInput {
		t.eventQueue = append(t.eventQueue, backend.Press(act))
		return
	}

	// Without key-up events two held directions cannot be told apart
	// from a direction change, so the newest one wins.
	if act.IsDPad() {
		delete(t.keyStates, action.ButtonUp)
		delete(t.keyStates, action.ButtonDown)
		delete(t.keyStates, action.ButtonLeft)
		delete(t.keyStates, action.ButtonRight)
	}
	t.keyStates[act] = now
}

// tcellKeyNameMap converts tcell keys to key names used in default mappings
var tcellKeyNameMap = map[tcell.Key]string{
	tcell.KeyEnter:      "Enter",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyUp:         "Up",
	tcell.KeyDown:       "Down",
	tcell.KeyLeft:       "Left",
	tcell.KeyRight:      "Right",
	tcell.KeyEscape:     "Escape",
	tcell.KeyF12:        "F12",
}

// buildKeyMapping creates the key mapping from default mappings
func buildKeyMapping() map[tcell.Key]action.Action {
	mapping := make(map[tcell.Key]action.Action)
	for key, keyName := range tcellKeyNameMap {
		if act, ok := host.GetDefaultMapping(keyName); ok {
			mapping[key] = act
		}
	}
	mapping[tcell.KeyCtrlC] = action.HostQuit
	return mapping
}

// buildRuneMapping creates the rune mapping from default mappings
func buildRuneMapping() map[rune]action.Action {
	mapping := make(map[rune]action.Action)
	for keyName, act := range host.DefaultKeyMap {
		r := []rune(keyName)
		if len(r) == 1 {
			mapping[r[0]] = act
		}
	}
	if act, ok := host.GetDefaultMapping("Space"); ok {
		mapping[' '] = act
	}
	return mapping
}

var (
	keyMapping  = buildKeyMapping()
	runeMapping = buildRuneMapping()
)

func (t *Backend) changeLogLevel(direction int) {
	oldLevel := t.logLevel
	// Levels are spaced by 4: Debug -4, Info 0, Warn 4, Error 8.
	next := t.logLevel - slog.Level(4*direction)
	if next >= slog.LevelDebug && next <= slog.LevelError {
		t.logLevel = next
	}
	if oldLevel != t.logLevel {
		slog.Info("Log filter changed", "from", oldLevel, "to", t.logLevel)
	}
}

func (t *Backend) render(frame *video.FrameBuffer) {
	termWidth, termHeight := t.screen.Size()
	t.screen.Clear()

	if termWidth < minTermWidth || termHeight < minTermHeight {
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		t.drawText(0, termHeight/2, termWidth, msg, tcell.StyleDefault.Foreground(tcell.ColorRed))
		return
	}

	// Row 0 is the title, the last row the help line.
	cols := min(width, termWidth)
	rows := min(height/2, termHeight-2)

	title := " " + t.config.Title + " "
	t.drawText(1, 0, cols, title, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	t.drawFrame(frame, cols, rows)

	if logX := cols + 1; termWidth-logX >= minLogWidth {
		border := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		for y := 0; y < termHeight-1; y++ {
			t.screen.SetContent(cols, y, '│', nil, border)
		}
		t.drawLogs(logX+1, 1, termWidth-logX-1, termHeight-2)
	}

	help := " Z/X=A/B Enter=Start Bksp=Select A/S=L/R Space=pause F=step F12=snapshot +/-=logs Q=quit "
	t.drawText(0, termHeight-1, termWidth, help, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// drawFrame draws frame into cols x rows cells starting at row 1,
// downsampling when the terminal is smaller than the frame.
func (t *Backend) drawFrame(frame *video.FrameBuffer, cols, rows int) {
	pixels := frame.ToSlice()
	fw, fh := int(frame.Width()), int(frame.Height())

	for cy := 0; cy < rows; cy++ {
		top := render.Downsample(cy*2, fh, rows*2)
		bottom := min(render.Downsample(cy*2+1, fh, rows*2), fh-1)
		for cx := 0; cx < cols; cx++ {
			x := render.Downsample(cx, fw, cols)
			r, style := render.HalfBlockStyle(pixels[top*fw+x], pixels[bottom*fw+x])
			t.screen.SetContent(cx, cy+1, r, nil, style)
		}
	}
}

func (t *Backend) drawLogs(startX, startY, maxWidth, rows int) {
	if maxWidth <= 0 || rows <= 0 {
		return
	}

	label := fmt.Sprintf(" Logs [%s] ", t.logLevel)
	t.drawText(startX, 0, maxWidth, label, tcell.StyleDefault.Foreground(tcell.ColorYellow))

	for i, entry := range t.logBuffer.Recent(rows, t.logLevel) {
		style := tcell.StyleDefault.Foreground(tcell.ColorBlue)
		switch {
		case entry.Level >= slog.LevelError:
			style = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		case entry.Level >= slog.LevelWarn:
			style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
		case entry.Level < slog.LevelInfo:
			style = tcell.StyleDefault.Foreground(tcell.ColorGray)
		}

		text := render.FormatLogEntry(entry)
		if len(text) > maxWidth && maxWidth > 3 {
			text = text[:maxWidth-3] + "..."
		}
		t.drawText(startX, startY+i, maxWidth, text, style)
	}
}

func (t *Backend) drawText(x, y, maxWidth int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		if i >= maxWidth {
			return
		}
		t.screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}
