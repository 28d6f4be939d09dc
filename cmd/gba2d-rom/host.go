//go:build !gameboyadvance

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "gba2d-rom targets the console: tinygo build -target=gameboy-advance ./cmd/gba2d-rom")
	fmt.Fprintln(os.Stderr, "use cmd/gba2d to run the demos on this machine")
	os.Exit(2)
}
