// Package timing paces the host run loop at the LCD refresh rate.
package timing

import (
	"time"

	"github.com/valerio/go-gba2d/gba2d/memory"
)

// Limiter controls how fast host frames are produced.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	// Returns immediately if timing is behind schedule.
	WaitForNextFrame()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return noOpLimiter{}
}

type noOpLimiter struct{}

func (noOpLimiter) WaitForNextFrame() {}
func (noOpLimiter) Reset()            {}

const (
	// CPUFrequency is the system clock, 2^24 Hz.
	CPUFrequency = 16777216
	// CyclesPerFrame is one full LCD refresh including VBlank.
	CyclesPerFrame = memory.FrameCycles
)

// TargetFPS is the LCD refresh rate, about 59.73 Hz.
func TargetFPS() float64 {
	return float64(CPUFrequency) / float64(CyclesPerFrame)
}

// FrameDuration returns the target duration of a single frame.
func FrameDuration() time.Duration {
	return time.Duration(float64(time.Second) / TargetFPS())
}

// New returns the limiter for a run mode: unthrottled runs get a no-op,
// everything else the adaptive limiter.
func New(throttle bool) Limiter {
	if !throttle {
		return NewNoOpLimiter()
	}
	return NewAdaptiveLimiter()
}
