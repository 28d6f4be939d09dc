package memory

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-gba2d/gba2d/addr"
	"github.com/valerio/go-gba2d/gba2d/bit"
	"github.com/valerio/go-gba2d/gba2d/mmio"
)

type memRegion uint8

const (
	regionUnmapped memRegion = iota
	regionIO
	regionVRAM
)

// DefaultPollCycles is the time a read of VCOUNT or DISPSTAT costs.
// Busy-wait loops on those registers only make progress because reads
// advance the LCD.
const DefaultPollCycles = 16

// dispstatWritable are the DISPSTAT bits software can set: the IRQ enables
// (3-5) and the VCount setting (8-15).
const dispstatWritable uint16 = 0xFF38

// MMU is the host-side model of the memory map: the I/O register block and
// video RAM. It implements mmio.Bus.
type MMU struct {
	vram []byte
	io   []byte

	lcd    *LCD
	keypad *Keypad

	// PollCycles is how many cycles each VCOUNT/DISPSTAT read advances the LCD.
	PollCycles int

	// OnWrite, if set, observes every accepted write.
	OnWrite func(address uint32, value uint16)
}

var _ mmio.Bus = (*MMU)(nil)

// New creates a memory map in its power-on state: VRAM and registers
// zeroed, every button released, scan-out at line 0.
func New() *MMU {
	return &MMU{
		vram:       make([]byte, addr.VRAMSize),
		io:         make([]byte, addr.IOSize),
		lcd:        NewLCD(),
		keypad:     NewKeypad(),
		PollCycles: DefaultPollCycles,
	}
}

func (m *MMU) LCD() *LCD {
	return m.lcd
}

func (m *MMU) Keypad() *Keypad {
	return m.keypad
}

// Tick advances any i/o that needs it, if any.
func (m *MMU) Tick(cycles int) {
	m.lcd.Tick(cycles)
}

// Reset clears VRAM and registers and rewinds the LCD. Keypad state is kept:
// it belongs to whoever is holding the buttons.
func (m *MMU) Reset() {
	clear(m.vram)
	clear(m.io)
	m.lcd.Reset()
}

func regionOf(address uint32) memRegion {
	switch address >> 24 {
	case 0x04:
		if address <= addr.IOEnd {
			return regionIO
		}
	case 0x06:
		return regionVRAM
	}
	return regionUnmapped
}

// vramOffset maps an address in the VRAM region to an offset into the 96KB
// of video memory. The region mirrors every 128KB and the upper 32KB of each
// mirror repeats the 32KB below it.
func vramOffset(address uint32) uint32 {
	off := (address - addr.VRAM) & 0x1FFFF
	if off >= addr.VRAMSize {
		off -= 0x8000
	}
	return off
}

// Read16 performs a halfword read. Unaligned addresses are forced down to
// the halfword boundary.
func (m *MMU) Read16(address uint32) uint16 {
	address &^= 1

	switch regionOf(address) {
	case regionVRAM:
		off := vramOffset(address)
		return bit.Combine(m.vram[off+1], m.vram[off])
	case regionIO:
		return m.readIO(address)
	default:
		slog.Debug("Read from unmapped address", "addr", fmt.Sprintf("0x%08X", address))
		return 0
	}
}

// Write16 performs a halfword write. Writes to read-only registers and
// unmapped addresses are dropped.
func (m *MMU) Write16(address uint32, value uint16) {
	address &^= 1

	switch regionOf(address) {
	case regionVRAM:
		off := vramOffset(address)
		m.vram[off] = bit.Low(value)
		m.vram[off+1] = bit.High(value)
	case regionIO:
		if !m.writeIO(address, value) {
			return
		}
	default:
		slog.Debug("Write to unmapped address", "addr", fmt.Sprintf("0x%08X", address), "value", fmt.Sprintf("0x%04X", value))
		return
	}

	if m.OnWrite != nil {
		m.OnWrite(address, value)
	}
}

func (m *MMU) readIO(address uint32) uint16 {
	switch address {
	case addr.VCOUNT:
		m.lcd.Tick(m.PollCycles)
		return m.lcd.VCount()
	case addr.DISPSTAT:
		m.lcd.Tick(m.PollCycles)
		stored := m.ioWord(address) & dispstatWritable
		return stored | m.lcd.Status(bit.High(stored))
	case addr.KEYINPUT:
		return m.keypad.Read()
	default:
		return m.ioWord(address)
	}
}

func (m *MMU) writeIO(address uint32, value uint16) bool {
	switch address {
	case addr.VCOUNT, addr.KEYINPUT:
		slog.Debug("Write to read-only register", "addr", fmt.Sprintf("0x%08X", address), "value", fmt.Sprintf("0x%04X", value))
		return false
	case addr.DISPSTAT:
		m.setIOWord(address, value&dispstatWritable)
	default:
		m.setIOWord(address, value)
	}
	return true
}

func (m *MMU) ioWord(address uint32) uint16 {
	off := address - addr.IOStart
	return bit.Combine(m.io[off+1], m.io[off])
}

func (m *MMU) setIOWord(address uint32, value uint16) {
	off := address - addr.IOStart
	m.io[off] = bit.Low(value)
	m.io[off+1] = bit.High(value)
}
