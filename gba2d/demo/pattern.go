package demo

import (
	"log/slog"

	"github.com/valerio/go-gba2d/gba2d/algebra"
	"github.com/valerio/go-gba2d/gba2d/input"
	"github.com/valerio/go-gba2d/gba2d/video"
)

const (
	tileSize    = 16
	stripeWidth = 8
)

// Pattern draws full screen test patterns, cycled with A.
type Pattern struct {
	kind int
	tick uint32
}

var patternNames = []string{"checkerboard", "stripes", "diagonal"}

func (p *Pattern) Init(d *video.Display) error {
	d.SetDisplayMode(mode3)
	return nil
}

func (p *Pattern) Frame(d *video.Display, k *input.Keypad) error {
	k.Poll()
	if k.KeyHit(input.KeyA) {
		p.kind = (p.kind + 1) % len(patternNames)
		slog.Info("Switched to test pattern", "pattern", patternNames[p.kind])
	}

	switch p.kind {
	case 0:
		p.checkerboard(d)
	case 1:
		p.stripes(d)
	case 2:
		p.diagonal(d)
	}

	d.VSync()
	p.tick++
	return nil
}

// Name returns the pattern currently shown.
func (p *Pattern) Name() string { return patternNames[p.kind] }

func (p *Pattern) checkerboard(d *video.Display) {
	for y := uint32(0); y < video.ScreenHeight; y += tileSize {
		for x := uint32(0); x < video.ScreenWidth; x += tileSize {
			c := video.White
			if (x/tileSize+y/tileSize)%2 == 1 {
				c = video.Blue
			}
			d.Rect(algebra.New(x, y), tileSize-1, tileSize-1, c)
		}
	}
}

// stripes scroll one pixel per frame.
func (p *Pattern) stripes(d *video.Display) {
	for x := uint32(0); x < video.ScreenWidth; x++ {
		c := video.Cyan
		if ((x+p.tick)/stripeWidth)%2 == 1 {
			c = video.Black
		}
		d.Line(algebra.New(x, 0), algebra.New[uint32](x, video.ScreenHeight-1), c)
	}
}

func (p *Pattern) diagonal(d *video.Display) {
	d.Clear(video.Black)
	const bottom = video.ScreenHeight - 1
	for x := uint32(0); x < video.ScreenWidth; x += stripeWidth {
		// Clip each 45 degree line to the screen.
		end := min(x+bottom, video.ScreenWidth-1)
		d.Line(algebra.New(x, 0), algebra.New(end, end-x), video.Green)
	}
	d.Frame(algebra.New[uint32](0, 0), video.ScreenWidth-1, video.ScreenHeight-1, video.Red)
}
