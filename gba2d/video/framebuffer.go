package video

import (
	"github.com/valerio/go-gba2d/gba2d/addr"
	"github.com/valerio/go-gba2d/gba2d/mmio"
)

// FrameBuffer is a host-side copy of one scanned-out frame, one 0xRRGGBBAA
// pixel per LCD dot.
type FrameBuffer struct {
	width  uint
	height uint
	buffer []uint32
}

// NewFrameBuffer creates a frame buffer with the specified size.
func NewFrameBuffer(width, height uint) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		buffer: make([]uint32, width*height),
	}
}

func (fb *FrameBuffer) Width() uint  { return fb.width }
func (fb *FrameBuffer) Height() uint { return fb.height }

func (fb *FrameBuffer) GetPixel(x, y uint) uint32 {
	return fb.buffer[y*fb.width+x]
}

func (fb *FrameBuffer) SetPixel(x, y uint, c Color) {
	fb.buffer[y*fb.width+x] = c.Pixel()
}

func (fb *FrameBuffer) ToSlice() []uint32 {
	return fb.buffer
}

// Fill sets every pixel to c.
func (fb *FrameBuffer) Fill(c Color) {
	p := c.Pixel()
	for i := range fb.buffer {
		fb.buffer[i] = p
	}
}

// Capture decodes what the LCD would show for the current DISPCNT into a
// new screen-sized frame buffer.
func Capture(bus mmio.Bus) *FrameBuffer {
	fb := NewFrameBuffer(ScreenWidth, ScreenHeight)
	CaptureInto(bus, fb)
	return fb
}

// CaptureInto is Capture reusing fb, which must be screen sized.
//
// Mode 3 is decoded from the single bitmap, mode 5 from the page selected
// by the frame-1 bit and placed top-left. Forced blank shows white; any
// other mode shows the black backdrop.
func CaptureInto(bus mmio.Bus, fb *FrameBuffer) {
	ctrl := DisplayControl(bus.Read16(addr.DISPCNT))

	if ctrl.ForcedBlank() {
		fb.Fill(White)
		return
	}

	switch ctrl.VideoMode() {
	case Mode3:
		decode(bus, fb, addr.VRAM, ScreenWidth, ScreenHeight)
	case Mode5:
		fb.Fill(Black)
		base := addr.VRAM
		if ctrl.ShowFrame1() {
			base = addr.Page1
		}
		decode(bus, fb, base, Mode5Width, Mode5Height)
	default:
		fb.Fill(Black)
	}
}

func decode(bus mmio.Bus, fb *FrameBuffer, base uint32, width, height uint) {
	for y := uint(0); y < height; y++ {
		row := base + uint32(y*width*2)
		for x := uint(0); x < width; x++ {
			fb.SetPixel(x, y, Color(bus.Read16(row+uint32(x*2))))
		}
	}
}
