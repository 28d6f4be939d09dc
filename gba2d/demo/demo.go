// Package demo holds small games written against the core library, used
// by the gba2d command and as end to end tests of the drawing code.
package demo

import (
	"fmt"
	"sort"

	"github.com/valerio/go-gba2d/gba2d/input"
	"github.com/valerio/go-gba2d/gba2d/video"
)

var (
	mode3 = video.DisplayControl(0).WithVideoMode(video.Mode3).WithShowBG2(true)
	mode5 = video.DisplayControl(0).WithVideoMode(video.Mode5).WithShowBG2(true)
)

// Game matches gba2d.Game so demos can run on the host console while the
// on-device build links only the core packages.
type Game interface {
	Init(d *video.Display) error
	Frame(d *video.Display, k *input.Keypad) error
}

var registry = map[string]func() Game{
	"basic":   func() Game { return &Basic{} },
	"flip":    func() Game { return NewFlip() },
	"pattern": func() Game { return &Pattern{} },
	"text":    func() Game { return &Text{} },
}

// ByName returns a fresh instance of the named demo.
func ByName(name string) (Game, error) {
	newGame, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown demo %q (available: %v)", name, Names())
	}
	return newGame(), nil
}

// Names lists the available demos in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
