//go:build gameboyadvance

// Command gba2d-rom runs a demo on real hardware or an emulator:
//
//	tinygo build -target=gameboy-advance -o gba2d.gba ./cmd/gba2d-rom
package main

import (
	"github.com/valerio/go-gba2d/gba2d/demo"
	"github.com/valerio/go-gba2d/gba2d/input"
	"github.com/valerio/go-gba2d/gba2d/mmio"
	"github.com/valerio/go-gba2d/gba2d/video"
)

func main() {
	bus := mmio.Hardware{}
	display := video.NewDisplay(bus)
	keypad := input.NewKeypad(bus)

	game := demo.NewFlip()
	if err := game.Init(display); err != nil {
		panic(err)
	}
	for {
		if err := game.Frame(display, keypad); err != nil {
			panic(err)
		}
	}
}
