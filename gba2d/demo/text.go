package demo

import (
	"fmt"
	"strings"

	"github.com/valerio/go-gba2d/gba2d/input"
	"github.com/valerio/go-gba2d/gba2d/video"
	"tinygo.org/x/tinyfont"
)

// Text prints the held keys and a frame counter with tinyfont.
type Text struct {
	screen *video.Displayer
	frames int
}

func (t *Text) Init(d *video.Display) error {
	d.SetDisplayMode(mode3)
	t.screen = video.NewDisplayer(d)
	return nil
}

func (t *Text) Frame(d *video.Display, k *input.Keypad) error {
	k.Poll()
	d.Clear(video.Black)

	white := video.White.ToRGBA()
	tinyfont.WriteLine(t.screen, &tinyfont.TomThumb, 4, 10, "gba2d", white)
	tinyfont.WriteLine(t.screen, &tinyfont.TomThumb, 4, 20, "keys: "+heldKeys(k), video.Yellow.ToRGBA())
	tinyfont.WriteLine(t.screen, &tinyfont.TomThumb, 4, 30, fmt.Sprintf("frame %d", t.frames), white)

	d.VSync()
	t.frames++
	return nil
}

func heldKeys(k *input.Keypad) string {
	var held []string
	for _, key := range input.Keys {
		if k.KeyDown(key) {
			held = append(held, key.String())
		}
	}
	if len(held) == 0 {
		return "-"
	}
	return strings.Join(held, " ")
}
