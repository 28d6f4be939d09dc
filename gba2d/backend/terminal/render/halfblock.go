package render

import "github.com/gdamore/tcell/v2"

// UpperHalf is drawn with the top pixel as foreground and the bottom pixel
// as background, packing two pixel rows into one terminal row.
const UpperHalf = '▀'

// PixelColor converts an 0xRRGGBBAA frame buffer pixel to a terminal color.
func PixelColor(pixel uint32) tcell.Color {
	return tcell.NewRGBColor(int32(pixel>>24&0xFF), int32(pixel>>16&0xFF), int32(pixel>>8&0xFF))
}

// HalfBlockStyle returns the cell content for a vertical pixel pair.
func HalfBlockStyle(top, bottom uint32) (rune, tcell.Style) {
	return UpperHalf, tcell.StyleDefault.Foreground(PixelColor(top)).Background(PixelColor(bottom))
}

// Downsample picks the source coordinate for output cell i when n source
// pixels are shown in m cells.
func Downsample(i, n, m int) int {
	if m >= n {
		return i
	}
	return i * n / m
}
