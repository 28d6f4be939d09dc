package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-gba2d/gba2d/addr"
)

func TestLCDTiming(t *testing.T) {
	tests := []struct {
		name   string
		cycles int
		line   uint16
		mode   LCDMode
	}{
		{"power on", 0, 0, HDraw},
		{"end of hdraw", hdrawCycles - 1, 0, HDraw},
		{"hblank", hdrawCycles, 0, HBlank},
		{"next line", LineCycles, 1, HDraw},
		{"last visible line", (VisibleLines - 1) * LineCycles, 159, HDraw},
		{"vblank", VisibleLines * LineCycles, 160, VBlank},
		{"vblank hblank period", VisibleLines*LineCycles + hdrawCycles, 160, VBlank},
		{"last line", (TotalLines - 1) * LineCycles, 227, VBlank},
		{"wraps", FrameCycles, 0, HDraw},
		{"second frame", FrameCycles + 5*LineCycles, 5, HDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLCD()
			l.Tick(tt.cycles)
			assert.Equal(t, tt.line, l.VCount())
			assert.Equal(t, tt.mode, l.Mode())
		})
	}
}

func TestLCDTickInSmallSteps(t *testing.T) {
	a, b := NewLCD(), NewLCD()

	a.Tick(FrameCycles + 1000)
	for i := 0; i < FrameCycles+1000; i += 8 {
		b.Tick(8)
	}

	assert.Equal(t, a.VCount(), b.VCount())
	assert.Equal(t, a.Mode(), b.Mode())
	assert.Equal(t, a.Frames(), b.Frames())
}

func TestLCDFramesAndCallback(t *testing.T) {
	l := NewLCD()
	var vblanks int
	l.OnVBlank = func() { vblanks++ }

	l.Tick(3 * FrameCycles)

	assert.Equal(t, uint64(3), l.Frames())
	assert.Equal(t, 3, vblanks)
}

func TestLCDStatusFlags(t *testing.T) {
	l := NewLCD()
	assert.Zero(t, l.Status(0xFF)&addr.VBlankFlag)

	l.Tick(VisibleLines * LineCycles)
	assert.NotZero(t, l.Status(0xFF)&addr.VBlankFlag)

	// flag is already clear on line 227
	l.Tick((TotalLines - 1 - VisibleLines) * LineCycles)
	assert.Equal(t, uint16(227), l.VCount())
	assert.Zero(t, l.Status(0xFF)&addr.VBlankFlag)

	l.Tick(LineCycles + hdrawCycles)
	assert.NotZero(t, l.Status(0xFF)&addr.HBlankFlag)
}

func TestLCDCyclesUntilVBlank(t *testing.T) {
	l := NewLCD()
	assert.Equal(t, VisibleLines*LineCycles, l.CyclesUntilVBlank())

	l.Tick(l.CyclesUntilVBlank())
	assert.Equal(t, VBlank, l.Mode())
	assert.Equal(t, FrameCycles, l.CyclesUntilVBlank())

	l.Tick(100)
	assert.Equal(t, FrameCycles-100, l.CyclesUntilVBlank())
}
