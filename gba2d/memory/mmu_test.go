package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-gba2d/gba2d/addr"
)

func TestMMUVRAMReadWrite(t *testing.T) {
	m := New()

	m.Write16(addr.VRAM, 0x7FFF)
	m.Write16(addr.Page1+2, 0x001F)
	m.Write16(addr.VRAM+addr.VRAMSize-2, 0x1234)

	assert.Equal(t, uint16(0x7FFF), m.Read16(addr.VRAM))
	assert.Equal(t, uint16(0x001F), m.Read16(addr.Page1+2))
	assert.Equal(t, uint16(0x1234), m.Read16(addr.VRAM+addr.VRAMSize-2))
	assert.Equal(t, uint16(0), m.Read16(addr.VRAM+4))
}

func TestMMUUnalignedAccess(t *testing.T) {
	m := New()

	m.Write16(addr.VRAM+5, 0xBEEF)

	assert.Equal(t, uint16(0xBEEF), m.Read16(addr.VRAM+4))
	assert.Equal(t, uint16(0xBEEF), m.Read16(addr.VRAM+5))
}

func TestMMUVRAMMirrors(t *testing.T) {
	tests := []struct {
		name   string
		mirror uint32
		base   uint32
	}{
		{"128KB mirror", addr.VRAM + 0x20000, addr.VRAM},
		{"upper 32KB repeats", addr.VRAM + 0x18000, addr.VRAM + 0x10000},
		{"upper 32KB in mirror", addr.VRAM + 0x3A000, addr.VRAM + 0x12000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.Write16(tt.mirror, 0x4321)
			assert.Equal(t, uint16(0x4321), m.Read16(tt.base))
		})
	}
}

func TestMMUDisplayControl(t *testing.T) {
	m := New()

	m.Write16(addr.DISPCNT, 0x0405)
	assert.Equal(t, uint16(0x0405), m.Read16(addr.DISPCNT))
}

func TestMMUReadOnlyRegisters(t *testing.T) {
	m := New()
	var writes int
	m.OnWrite = func(uint32, uint16) { writes++ }

	m.Write16(addr.KEYINPUT, 0x0000)
	m.Write16(addr.VCOUNT, 100)

	assert.Equal(t, addr.KeyMask, m.Read16(addr.KEYINPUT))
	assert.Less(t, m.Read16(addr.VCOUNT), uint16(100))
	assert.Zero(t, writes)
}

func TestMMUUnmapped(t *testing.T) {
	m := New()
	var writes int
	m.OnWrite = func(uint32, uint16) { writes++ }

	m.Write16(0x02000000, 0xFFFF)
	assert.Equal(t, uint16(0), m.Read16(0x02000000))
	assert.Equal(t, uint16(0), m.Read16(addr.IOEnd+1))
	assert.Zero(t, writes)
}

func TestMMUOnWrite(t *testing.T) {
	m := New()

	type write struct {
		address uint32
		value   uint16
	}
	var seen []write
	m.OnWrite = func(address uint32, value uint16) {
		seen = append(seen, write{address, value})
	}

	m.Write16(addr.DISPCNT, 0x0403)
	m.Write16(addr.VRAM+3, 0x001F)

	require.Len(t, seen, 2)
	assert.Equal(t, write{addr.DISPCNT, 0x0403}, seen[0])
	assert.Equal(t, write{addr.VRAM + 2, 0x001F}, seen[1])
}

func TestMMUVCountAdvancesOnRead(t *testing.T) {
	m := New()
	m.PollCycles = LineCycles

	assert.Equal(t, uint16(1), m.Read16(addr.VCOUNT))
	assert.Equal(t, uint16(2), m.Read16(addr.VCOUNT))
}

func TestMMUDispStat(t *testing.T) {
	m := New()
	m.PollCycles = 0

	// only IRQ enables and the VCount setting are writable
	m.Write16(addr.DISPSTAT, 0xFFFF)
	assert.Equal(t, uint16(0xFF38), m.Read16(addr.DISPSTAT)&0xFF38)

	m.Write16(addr.DISPSTAT, 0)
	assert.Zero(t, m.Read16(addr.DISPSTAT)&addr.VBlankFlag)

	m.Tick(VisibleLines * LineCycles)
	assert.NotZero(t, m.Read16(addr.DISPSTAT)&addr.VBlankFlag)
}

func TestMMUDispStatVCounterMatch(t *testing.T) {
	m := New()
	m.PollCycles = 0

	m.Write16(addr.DISPSTAT, uint16(3)<<8)
	assert.Zero(t, m.Read16(addr.DISPSTAT)&addr.VCounterFlag)

	m.Tick(3 * LineCycles)
	assert.NotZero(t, m.Read16(addr.DISPSTAT)&addr.VCounterFlag)
}

func TestMMUKeypadRegister(t *testing.T) {
	m := New()

	m.Keypad().Press(KeypadA)
	assert.Equal(t, uint16(0x03FE), m.Read16(addr.KEYINPUT))

	m.Keypad().Press(KeypadL)
	assert.Equal(t, uint16(0x01FE), m.Read16(addr.KEYINPUT))

	m.Keypad().Release(KeypadA)
	assert.Equal(t, uint16(0x01FF), m.Read16(addr.KEYINPUT))
}

func TestMMUReset(t *testing.T) {
	m := New()
	m.Write16(addr.VRAM, 0x1111)
	m.Write16(addr.DISPCNT, 0x0403)
	m.Tick(FrameCycles + 10)
	m.Keypad().Press(KeypadStart)

	m.Reset()

	assert.Zero(t, m.Read16(addr.VRAM))
	assert.Zero(t, m.Read16(addr.DISPCNT))
	assert.Zero(t, m.LCD().Frames())
	assert.True(t, m.Keypad().Pressed(KeypadStart))
}
