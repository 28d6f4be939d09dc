package video

import (
	"github.com/valerio/go-gba2d/gba2d/addr"
	"github.com/valerio/go-gba2d/gba2d/bit"
)

// VideoMode is the BG mode field of DISPCNT.
type VideoMode uint16

const (
	Mode0 VideoMode = iota
	Mode1
	Mode2
	// Mode3 is a single 240x160 16bpp bitmap.
	Mode3
	// Mode4 is two 240x160 8bpp paletted pages.
	Mode4
	// Mode5 is two 160x128 16bpp pages.
	Mode5
)

// Paged reports whether the mode has two bitmap pages selectable with
// the frame-1 bit.
func (m VideoMode) Paged() bool {
	return m == Mode4 || m == Mode5
}

// DisplayControl is the DISPCNT bitfield. The zero value is mode 0 with
// every layer disabled.
type DisplayControl uint16

func (c DisplayControl) with(mask uint16, on bool) DisplayControl {
	if on {
		return DisplayControl(uint16(c) | mask)
	}
	return DisplayControl(uint16(c) &^ mask)
}

func (c DisplayControl) VideoMode() VideoMode {
	return VideoMode(bit.ExtractBits16(uint16(c), 2, 0))
}

func (c DisplayControl) WithVideoMode(m VideoMode) DisplayControl {
	return DisplayControl(uint16(c)&^addr.VideoModeMask | uint16(m)&addr.VideoModeMask)
}

func (c DisplayControl) ShowFrame1() bool { return bit.AnySet(addr.ShowFrame1, uint16(c)) }
func (c DisplayControl) ShowBG0() bool    { return bit.AnySet(addr.ShowBG0, uint16(c)) }
func (c DisplayControl) ShowBG1() bool    { return bit.AnySet(addr.ShowBG1, uint16(c)) }
func (c DisplayControl) ShowBG2() bool    { return bit.AnySet(addr.ShowBG2, uint16(c)) }
func (c DisplayControl) ShowBG3() bool    { return bit.AnySet(addr.ShowBG3, uint16(c)) }
func (c DisplayControl) ShowOBJ() bool    { return bit.AnySet(addr.ShowOBJ, uint16(c)) }
func (c DisplayControl) ForcedBlank() bool {
	return bit.AnySet(addr.ForcedBlank, uint16(c))
}

func (c DisplayControl) WithShowFrame1(on bool) DisplayControl { return c.with(addr.ShowFrame1, on) }
func (c DisplayControl) WithShowBG0(on bool) DisplayControl    { return c.with(addr.ShowBG0, on) }
func (c DisplayControl) WithShowBG1(on bool) DisplayControl    { return c.with(addr.ShowBG1, on) }
func (c DisplayControl) WithShowBG2(on bool) DisplayControl    { return c.with(addr.ShowBG2, on) }
func (c DisplayControl) WithShowBG3(on bool) DisplayControl    { return c.with(addr.ShowBG3, on) }
func (c DisplayControl) WithShowOBJ(on bool) DisplayControl    { return c.with(addr.ShowOBJ, on) }
func (c DisplayControl) WithForcedBlank(on bool) DisplayControl {
	return c.with(addr.ForcedBlank, on)
}
