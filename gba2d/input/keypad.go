// Package input samples the keypad once per frame and answers edge queries
// against the two most recent samples.
package input

import (
	"fmt"

	"github.com/valerio/go-gba2d/gba2d/addr"
	"github.com/valerio/go-gba2d/gba2d/mmio"
)

// Key is a button mask as laid out in KEYINPUT. Masks can be or'ed
// together; a query on a combined mask asks about the whole group.
type Key uint16

const (
	KeyA      Key = 0x0001
	KeyB      Key = 0x0002
	KeySelect Key = 0x0004
	KeyStart  Key = 0x0008
	KeyRight  Key = 0x0010
	KeyLeft   Key = 0x0020
	KeyUp     Key = 0x0040
	KeyDown   Key = 0x0080
	KeyR      Key = 0x0100
	KeyL      Key = 0x0200

	KeyAny Key = Key(addr.KeyMask)
)

// Keys lists every button in register order.
var Keys = []Key{KeyA, KeyB, KeySelect, KeyStart, KeyRight, KeyLeft, KeyUp, KeyDown, KeyR, KeyL}

var keyNames = map[Key]string{
	KeyA:      "A",
	KeyB:      "B",
	KeySelect: "Select",
	KeyStart:  "Start",
	KeyRight:  "Right",
	KeyLeft:   "Left",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyR:      "R",
	KeyL:      "L",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(0x%04X)", uint16(k))
}

// Edge classifies a key across the last two samples.
type Edge uint8

const (
	// Idle: up in both samples.
	Idle Edge = iota
	// Hit: pressed since the previous sample.
	Hit
	// Held: down in both samples.
	Held
	// Released: let go since the previous sample.
	Released
)

func (e Edge) String() string {
	switch e {
	case Idle:
		return "Idle"
	case Hit:
		return "Hit"
	case Held:
		return "Held"
	case Released:
		return "Released"
	default:
		return "Edge(?)"
	}
}

// Keypad holds the current and previous KEYINPUT samples. Bits are
// active-low: 0 means pressed.
//
// Both samples start with every button released, so a button already down
// at the first Poll reads as a Hit.
type Keypad struct {
	bus      mmio.Bus
	previous uint16
	current  uint16
}

func NewKeypad(bus mmio.Bus) *Keypad {
	return &Keypad{
		bus:      bus,
		previous: addr.KeyMask,
		current:  addr.KeyMask,
	}
}

// Poll shifts the current sample into previous and reads a new one.
// Call it once per frame.
func (p *Keypad) Poll() {
	p.previous = p.current
	p.current = p.bus.Read16(addr.KEYINPUT)
}

// KeyDown reports whether k is pressed now.
func (p *Keypad) KeyDown(k Key) bool {
	return p.current&uint16(k) == 0
}

// KeyHeld reports whether k was pressed in both samples.
func (p *Keypad) KeyHeld(k Key) bool {
	return p.current&uint16(k) == 0 && p.previous&uint16(k) == 0
}

// KeyHit reports whether k went down since the previous sample.
func (p *Keypad) KeyHit(k Key) bool {
	return p.current&uint16(k) == 0 && p.previous&uint16(k) != 0
}

// KeyReleased reports whether k came up since the previous sample.
func (p *Keypad) KeyReleased(k Key) bool {
	return p.current&uint16(k) != 0 && p.previous&uint16(k) == 0
}

// Edge returns the single classification that applies to k.
func (p *Keypad) Edge(k Key) Edge {
	switch {
	case p.KeyHit(k):
		return Hit
	case p.KeyHeld(k):
		return Held
	case p.KeyReleased(k):
		return Released
	default:
		return Idle
	}
}

func (p *Keypad) Current() uint16  { return p.current }
func (p *Keypad) Previous() uint16 { return p.previous }

// Reset forgets both samples.
func (p *Keypad) Reset() {
	p.previous = addr.KeyMask
	p.current = addr.KeyMask
}
