package headless

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/valerio/go-gba2d/gba2d/backend"
	"github.com/valerio/go-gba2d/gba2d/debug"
	"github.com/valerio/go-gba2d/gba2d/input/action"
	"github.com/valerio/go-gba2d/gba2d/video"
)

// Backend implements the Backend interface for automated testing and batch
// processing. It presents nothing and asks to quit after maxFrames.
type Backend struct {
	config         backend.Config
	frameCount     int
	maxFrames      int
	snapshotConfig SnapshotConfig
}

// SnapshotConfig holds configuration for frame snapshots
type SnapshotConfig struct {
	Enabled   bool
	Interval  int    // Save snapshot every N frames
	Directory string // Directory to save snapshots
	Name      string // Prefix for snapshot filenames
	Text      bool   // Also write a text rendering next to each PNG
}

func New(maxFrames int, snapshotConfig SnapshotConfig) *Backend {
	return &Backend{
		maxFrames:      maxFrames,
		snapshotConfig: snapshotConfig,
	}
}

func (h *Backend) Init(config backend.Config) error {
	if h.maxFrames <= 0 {
		return fmt.Errorf("headless mode requires a positive frame count, got %d", h.maxFrames)
	}
	h.config = config

	slog.Info("Running headless mode",
		"frames", h.maxFrames,
		"snapshot_interval", h.snapshotConfig.Interval,
		"snapshot_dir", h.snapshotConfig.Directory)

	return nil
}

// Update processes a frame and handles snapshots
func (h *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	h.frameCount++

	if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval == 0 {
		h.saveSnapshot(frame)
	}

	if h.frameCount%60 == 0 {
		slog.Info("Frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}

	if h.frameCount < h.maxFrames {
		return nil, nil
	}

	// Save final snapshot if enabled and we haven't just saved one
	if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval != 0 {
		h.saveSnapshot(frame)
	}

	if h.snapshotConfig.Enabled {
		slog.Info("Headless execution completed", "frames", h.maxFrames, "snapshots_saved_to", h.snapshotConfig.Directory)
	} else {
		slog.Info("Headless execution completed", "frames", h.maxFrames)
	}

	return []backend.InputEvent{backend.Press(action.HostQuit)}, nil
}

func (h *Backend) Cleanup() error {
	return nil
}

// FrameCount returns how many frames have been presented.
func (h *Backend) FrameCount() int {
	return h.frameCount
}

// CreateSnapshotConfig creates a snapshot configuration from CLI parameters
func CreateSnapshotConfig(interval int, directory, name string) (SnapshotConfig, error) {
	config := SnapshotConfig{
		Enabled:  interval > 0,
		Interval: interval,
		Name:     name,
	}

	if !config.Enabled {
		return config, nil
	}

	if directory == "" {
		tempDir, err := os.MkdirTemp("", "gba2d-snapshots-*")
		if err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = tempDir
	} else {
		if err := os.MkdirAll(directory, 0755); err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = directory
	}

	return config, nil
}

func (h *Backend) snapshotBaseName() string {
	return fmt.Sprintf("%s_frame_%d", h.snapshotConfig.Name, h.frameCount)
}

// saveSnapshot saves a PNG snapshot for the current frame
func (h *Backend) saveSnapshot(frame *video.FrameBuffer) {
	base := h.snapshotBaseName()
	path := filepath.Join(h.snapshotConfig.Directory, base+".png")

	if err := debug.SaveFramePNG(frame, path); err != nil {
		slog.Error("Failed to save PNG snapshot", "frame", h.frameCount, "error", err)
		return
	}
	slog.Debug("Saved frame snapshot", "frame", h.frameCount, "path", path)

	if !h.snapshotConfig.Text {
		return
	}
	if err := h.saveText(frame, filepath.Join(h.snapshotConfig.Directory, base+".txt")); err != nil {
		slog.Error("Failed to save text snapshot", "frame", h.frameCount, "error", err)
	}
}

func (h *Backend) saveText(frame *video.FrameBuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	fmt.Fprintf(f, "# %s frame %d (%dx%d)\n", h.snapshotConfig.Name, h.frameCount, frame.Width(), frame.Height())
	if err := debug.WriteTextSnapshot(f, frame); err != nil {
		return err
	}
	return f.Close()
}
