package action

// Action represents input actions that can be performed on the host
type Action int

const (
	// Keypad buttons
	ButtonA Action = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonRight
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonR
	ButtonL

	// Host features
	HostPauseToggle
	HostStepFrame
	HostSnapshot
	HostQuit

	// Debug controls
	DebugLogLevelIncrease
	DebugLogLevelDecrease
)

// Category groups actions by who consumes them.
type Category int

const (
	CategoryGameInput Category = iota
	CategoryHost
	CategoryDebug
)

func (c Category) String() string {
	switch c {
	case CategoryGameInput:
		return "game"
	case CategoryHost:
		return "host"
	case CategoryDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Info describes an action for logs and help text.
type Info struct {
	Description string
	Category    Category
}

var infos = map[Action]Info{
	ButtonA:      {"Button A", CategoryGameInput},
	ButtonB:      {"Button B", CategoryGameInput},
	ButtonSelect: {"Select", CategoryGameInput},
	ButtonStart:  {"Start", CategoryGameInput},
	ButtonRight:  {"D-pad right", CategoryGameInput},
	ButtonLeft:   {"D-pad left", CategoryGameInput},
	ButtonUp:     {"D-pad up", CategoryGameInput},
	ButtonDown:   {"D-pad down", CategoryGameInput},
	ButtonR:      {"Shoulder R", CategoryGameInput},
	ButtonL:      {"Shoulder L", CategoryGameInput},

	HostPauseToggle: {"Pause/resume", CategoryHost},
	HostStepFrame:   {"Step one frame", CategoryHost},
	HostSnapshot:    {"Save snapshot", CategoryHost},
	HostQuit:        {"Quit", CategoryHost},

	DebugLogLevelIncrease: {"More log output", CategoryDebug},
	DebugLogLevelDecrease: {"Less log output", CategoryDebug},
}

// GetInfo returns the description and category of act.
func GetInfo(act Action) Info {
	if info, ok := infos[act]; ok {
		return info
	}
	return Info{Description: "Unknown", Category: CategoryHost}
}

func (a Action) String() string {
	return GetInfo(a).Description
}

// IsDPad reports whether act is one of the four directions.
func (a Action) IsDPad() bool {
	return a == ButtonUp || a == ButtonDown || a == ButtonLeft || a == ButtonRight
}
