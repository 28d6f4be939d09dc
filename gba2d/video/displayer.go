package video

import (
	"image/color"

	"github.com/valerio/go-gba2d/gba2d/algebra"
	"tinygo.org/x/drivers"
)

// Displayer lets tinygo drivers and tinyfont draw into the current page.
// Unlike the primitives it clips: pixels outside the mode's bitmap are
// dropped, since glyph boxes routinely hang off the edge.
type Displayer struct {
	d *Display
}

var _ drivers.Displayer = (*Displayer)(nil)

func NewDisplayer(d *Display) *Displayer {
	return &Displayer{d: d}
}

func (s *Displayer) Size() (x, y int16) {
	w, h := s.d.Size()
	return int16(w), int16(h)
}

func (s *Displayer) SetPixel(x, y int16, c color.RGBA) {
	w, h := s.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.d.Point(algebra.New(uint32(x), uint32(y)), FromRGBA(c))
}

// Display is a no-op: pixels land in VRAM as they are set.
func (s *Displayer) Display() error {
	return nil
}

// FillRectangle fills width x height pixels at (x, y), clipped.
func (s *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	w, h := s.Size()
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, w), min(y+height, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	s.d.Rect(algebra.New(uint32(x0), uint32(y0)), uint32(x1-x0-1), uint32(y1-y0-1), FromRGBA(c))
	return nil
}
