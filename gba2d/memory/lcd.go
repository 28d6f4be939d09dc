package memory

import "github.com/valerio/go-gba2d/gba2d/addr"

// LCDMode is the phase of scan-out the LCD is currently in.
type LCDMode int

const (
	HDraw LCDMode = iota
	HBlank
	VBlank
)

// Scan-out timing, in CPU cycles.
const (
	hdrawCycles  = 960
	hblankCycles = 272
	LineCycles   = hdrawCycles + hblankCycles
	VisibleLines = 160
	TotalLines   = 228
	FrameCycles  = LineCycles * TotalLines
)

// LCD models the scanline counter behind VCOUNT and the status flags of
// DISPSTAT. It keeps time only, rendering is left to whoever reads VRAM.
type LCD struct {
	line   int
	cycles int
	frames uint64

	// OnVBlank, if set, is called every time scan-out enters VBlank.
	OnVBlank func()
}

func NewLCD() *LCD {
	return &LCD{}
}

// Tick advances scan-out by the given amount of CPU cycles.
func (l *LCD) Tick(cycles int) {
	l.cycles += cycles

	for l.cycles >= LineCycles {
		l.cycles -= LineCycles
		l.line++

		switch l.line {
		case VisibleLines:
			l.frames++
			if l.OnVBlank != nil {
				l.OnVBlank()
			}
		case TotalLines:
			l.line = 0
		}
	}
}

// Mode returns the current scan-out phase.
func (l *LCD) Mode() LCDMode {
	if l.line >= VisibleLines {
		return VBlank
	}
	if l.cycles >= hdrawCycles {
		return HBlank
	}
	return HDraw
}

// VCount returns the scanline being drawn, 0-227.
func (l *LCD) VCount() uint16 {
	return uint16(l.line)
}

// Status returns the read-only flag bits of DISPSTAT. lyc is the VCount
// setting (bits 8-15 of DISPSTAT) used for the match flag.
func (l *LCD) Status(lyc uint8) uint16 {
	var status uint16

	// the VBlank flag is cleared on the last line even though it is
	// still outside the visible area
	if l.line >= VisibleLines && l.line < TotalLines-1 {
		status |= addr.VBlankFlag
	}
	if l.cycles >= hdrawCycles {
		status |= addr.HBlankFlag
	}
	if uint8(l.line) == lyc {
		status |= addr.VCounterFlag
	}

	return status
}

// Frames returns how many times scan-out entered VBlank.
func (l *LCD) Frames() uint64 {
	return l.frames
}

// CyclesUntilVBlank returns how long until the next VBlank begins.
func (l *LCD) CyclesUntilVBlank() int {
	lines := VisibleLines - l.line
	if lines <= 0 {
		lines += TotalLines
	}
	return lines*LineCycles - l.cycles
}

func (l *LCD) Reset() {
	l.line = 0
	l.cycles = 0
	l.frames = 0
}
