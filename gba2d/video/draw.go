package video

import "github.com/valerio/go-gba2d/gba2d/algebra"

// Point sets the pixel at p. p must lie inside the current mode's bitmap;
// nothing is clipped.
func (d *Display) Point(p algebra.Vec2[uint32], c Color) {
	base, stride := d.target()
	d.plot(base, stride, p.X, p.Y, c)
}

// Rect fills the rectangle from p to p+(w, h), both corners included, so
// (w+1)*(h+1) pixels are written.
func (d *Display) Rect(p algebra.Vec2[uint32], w, h uint32, c Color) {
	base, stride := d.target()
	for y := p.Y; y <= p.Y+h; y++ {
		for x := p.X; x <= p.X+w; x++ {
			d.plot(base, stride, x, y, c)
		}
	}
}

// Frame outlines the rectangle from p to p+(w, h).
func (d *Display) Frame(p algebra.Vec2[uint32], w, h uint32, c Color) {
	tl := p
	tr := algebra.New(p.X+w, p.Y)
	bl := algebra.New(p.X, p.Y+h)
	br := algebra.New(p.X+w, p.Y+h)

	d.Line(tl, tr, c)
	d.Line(bl, br, c)
	d.Line(tl, bl, c)
	d.Line(tr, br, c)
}

// Line draws the segment from p1 to p2, both endpoints included.
// Axis-aligned segments are written as spans; anything else is rasterized
// with integer Bresenham. The same pixels are written whichever way round
// the endpoints are given.
func (d *Display) Line(p1, p2 algebra.Vec2[uint32], c Color) {
	base, stride := d.target()

	switch {
	case p1.Y == p2.Y:
		for x := min(p1.X, p2.X); x <= max(p1.X, p2.X); x++ {
			d.plot(base, stride, x, p1.Y, c)
		}
	case p1.X == p2.X:
		for y := min(p1.Y, p2.Y); y <= max(p1.Y, p2.Y); y++ {
			d.plot(base, stride, p1.X, y, c)
		}
	default:
		if p2.X < p1.X {
			p1, p2 = p2, p1
		}
		d.bresenham(base, stride, p1, p2, c)
	}
}

// bresenham expects p1.X < p2.X.
func (d *Display) bresenham(base, stride uint32, p1, p2 algebra.Vec2[uint32], c Color) {
	x, y := int32(p1.X), int32(p1.Y)
	x1, y1 := int32(p2.X), int32(p2.Y)

	dx := x1 - x
	dy := y1 - y
	sy := int32(1)
	if dy < 0 {
		dy = -dy
		sy = -1
	}

	err := dx - dy
	for {
		d.plot(base, stride, uint32(x), uint32(y), c)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x++
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func (d *Display) plot(base, stride, x, y uint32, c Color) {
	d.bus.Write16(base+2*(y*stride+x), uint16(c))
}
