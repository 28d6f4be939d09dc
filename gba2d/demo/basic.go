package demo

import (
	"github.com/valerio/go-gba2d/gba2d/algebra"
	"github.com/valerio/go-gba2d/gba2d/input"
	"github.com/valerio/go-gba2d/gba2d/video"
)

// Basic draws a filled yellow square while A is held and a magenta
// outline otherwise.
type Basic struct{}

func (b *Basic) Init(d *video.Display) error {
	d.SetDisplayMode(mode3)
	return nil
}

func (b *Basic) Frame(d *video.Display, k *input.Keypad) error {
	d.VSync()
	d.Clear(video.Black)
	k.Poll()

	origin := algebra.New[uint32](20, 20)
	if k.KeyDown(input.KeyA) {
		d.Rect(origin, 40, 40, video.Yellow)
	} else {
		d.Frame(origin, 40, 40, video.Magenta)
	}
	return nil
}
