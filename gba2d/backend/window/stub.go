//go:build !cgo

package window

import (
	"fmt"

	"github.com/valerio/go-gba2d/gba2d/backend"
	"github.com/valerio/go-gba2d/gba2d/video"
)

// Backend stub for builds without cgo, which ebiten needs on most hosts.
type Backend struct{}

// New creates a stub window backend that returns an error
func New() *Backend {
	return &Backend{}
}

// Init returns an error indicating the window backend is not available
func (w *Backend) Init(config backend.Config) error {
	return fmt.Errorf("window: %w - build with CGO_ENABLED=1 to enable", backend.ErrUnavailable)
}

// Update returns an error
func (w *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	return nil, fmt.Errorf("window: %w", backend.ErrUnavailable)
}

// Cleanup does nothing
func (w *Backend) Cleanup() error {
	return nil
}
