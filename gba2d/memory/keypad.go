package memory

import (
	"github.com/valerio/go-gba2d/gba2d/addr"
	"github.com/valerio/go-gba2d/gba2d/bit"
)

// KeypadKey is the bit index of a button in KEYINPUT.
type KeypadKey uint8

const (
	KeypadA KeypadKey = iota
	KeypadB
	KeypadSelect
	KeypadStart
	KeypadRight
	KeypadLeft
	KeypadUp
	KeypadDown
	KeypadR
	KeypadL
)

// Keypad is the simulated button hardware behind KEYINPUT.
// A cleared bit means the button is pressed.
type Keypad struct {
	state uint16
}

// NewKeypad creates a keypad with every button released.
func NewKeypad() *Keypad {
	return &Keypad{state: addr.KeyMask}
}

// Read returns the current value of KEYINPUT.
func (k *Keypad) Read() uint16 {
	return k.state
}

// Press updates the keypad state when a key is pressed.
func (k *Keypad) Press(key KeypadKey) {
	if key > KeypadL {
		return
	}
	k.state = bit.Clear16(uint8(key), k.state)
}

// Release updates the keypad state when a key is released.
func (k *Keypad) Release(key KeypadKey) {
	if key > KeypadL {
		return
	}
	k.state = bit.Set16(uint8(key), k.state)
}

// Pressed reports whether key is currently held down.
func (k *Keypad) Pressed(key KeypadKey) bool {
	return !bit.IsSet16(uint8(key), k.state)
}

// Set overwrites the raw register value. Bits above the ten buttons read as 0.
func (k *Keypad) Set(value uint16) {
	k.state = value & addr.KeyMask
}

func (k *Keypad) Reset() {
	k.state = addr.KeyMask
}
