// Package video drives the bitmap display: display control, page flipping,
// VBlank synchronisation and the drawing primitives.
package video

import (
	"github.com/valerio/go-gba2d/gba2d/addr"
	"github.com/valerio/go-gba2d/gba2d/bit"
	"github.com/valerio/go-gba2d/gba2d/mmio"
)

const (
	// ScreenWidth and ScreenHeight are the LCD size, and the mode 3 bitmap size.
	ScreenWidth  = 240
	ScreenHeight = 160
	// Mode5Width and Mode5Height are the size of one mode 5 page.
	Mode5Width  = 160
	Mode5Height = 128
)

// Display is the drawing context for the bitmap modes. It owns the
// current-page pointer; everything else lives in hardware registers
// reached through the bus.
//
// A Display is not safe for concurrent use. There is exactly one per
// program, owned by the game loop.
type Display struct {
	bus  mmio.Bus
	page uint32
}

// NewDisplay returns a display drawing to page 0.
func NewDisplay(bus mmio.Bus) *Display {
	return &Display{
		bus:  bus,
		page: addr.VRAM,
	}
}

// SetDisplayMode writes ctrl to DISPCNT as is.
func (d *Display) SetDisplayMode(ctrl DisplayControl) {
	d.bus.Write16(addr.DISPCNT, uint16(ctrl))
}

// DisplayControl reads DISPCNT back.
func (d *Display) DisplayControl() DisplayControl {
	return DisplayControl(d.bus.Read16(addr.DISPCNT))
}

// VideoMode returns the BG mode field of DISPCNT.
func (d *Display) VideoMode() VideoMode {
	return VideoMode(bit.ExtractBits16(d.bus.Read16(addr.DISPCNT), 2, 0))
}

// FlipPage swaps the page drawn to and toggles the page scanned out.
//
// The two are toggled together, so the relation between them is the one
// established when the display mode was set: configure mode 5 with
// WithShowFrame1(true) to scan out page 1 while drawing to page 0, and
// every flip then hands the finished page to the LCD.
// Call it during VBlank.
func (d *Display) FlipPage() {
	d.page ^= addr.PageSize
	ctrl := d.bus.Read16(addr.DISPCNT)
	d.bus.Write16(addr.DISPCNT, bit.Toggle16(addr.ShowFrame1, ctrl))
}

// Page returns the base address of the page primitives draw to.
func (d *Display) Page() uint32 {
	return d.page
}

// VSync waits for the start of the next VBlank.
//
// It first lets any VBlank in progress finish, so calling it twice in
// the same blank period still waits a whole frame.
func (d *Display) VSync() {
	for d.bus.Read16(addr.VCOUNT) >= ScreenHeight {
	}
	for d.bus.Read16(addr.VCOUNT) < ScreenHeight {
	}
}

// Stride returns the width in pixels of a bitmap row in the current mode.
func (d *Display) Stride() uint32 {
	if d.VideoMode() == Mode5 {
		return Mode5Width
	}
	return ScreenWidth
}

// Size returns the drawable area of the current mode.
func (d *Display) Size() (width, height uint32) {
	if d.VideoMode() == Mode5 {
		return Mode5Width, Mode5Height
	}
	return ScreenWidth, ScreenHeight
}

// target returns where primitives write: the current page in the paged
// modes, the single bitmap otherwise. Both logical pages alias the mode 3
// framebuffer.
func (d *Display) target() (base, stride uint32) {
	switch d.VideoMode() {
	case Mode5:
		return d.page, Mode5Width
	case Mode4:
		return d.page, ScreenWidth
	default:
		return addr.VRAM, ScreenWidth
	}
}

// Clear fills the visible area of the current page with c.
func (d *Display) Clear(c Color) {
	base, _ := d.target()
	width, height := d.Size()
	for i := uint32(0); i < width*height; i++ {
		d.bus.Write16(base+i*2, uint16(c))
	}
}
