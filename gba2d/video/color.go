package video

import "image/color"

// Color is a 15-bit BGR555 value: red in bits 0-4, green in 5-9, blue in 10-14.
type Color uint16

const (
	Black   Color = 0x0000
	Red     Color = 0x001F
	Green   Color = 0x03E0
	Yellow  Color = 0x03FF
	Blue    Color = 0x7C00
	Magenta Color = 0x7C1F
	Cyan    Color = 0x7FE0
	White   Color = 0x7FFF
)

// RGB builds a color from 5-bit channels. Higher bits are discarded.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r)&0x1F | (uint16(g)&0x1F)<<5 | (uint16(b)&0x1F)<<10)
}

// FromRGBA converts an 8-bit-per-channel color, dropping alpha.
func FromRGBA(c color.RGBA) Color {
	return RGB(c.R>>3, c.G>>3, c.B>>3)
}

// Components returns the 5-bit channels.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c & 0x1F), uint8((c >> 5) & 0x1F), uint8((c >> 10) & 0x1F)
}

// ToRGBA expands the color to 8 bits per channel, fully opaque.
func (c Color) ToRGBA() color.RGBA {
	r, g, b := c.Components()
	return color.RGBA{R: expand5(r), G: expand5(g), B: expand5(b), A: 0xFF}
}

// Pixel packs the color as 0xRRGGBBAA, the FrameBuffer format.
func (c Color) Pixel() uint32 {
	rgba := c.ToRGBA()
	return uint32(rgba.R)<<24 | uint32(rgba.G)<<16 | uint32(rgba.B)<<8 | uint32(rgba.A)
}

func expand5(v uint8) uint8 {
	return v<<3 | v>>2
}
