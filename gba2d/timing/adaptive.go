package timing

import (
	"log/slog"
	"time"
)

const (
	// spinThreshold is how close to the deadline sleeping stops and
	// busy-waiting starts.
	spinThreshold = 2 * time.Millisecond
	// maxLag is how far behind schedule the limiter falls before it gives
	// up catching up and restarts from now.
	maxLag = 5 * time.Millisecond
	// driftWindow is how many frames pass between drift checks.
	driftWindow = 60
)

// AdaptiveLimiter sleeps for most of the frame and spins for the last
// couple of milliseconds, correcting accumulated drift once a second.
type AdaptiveLimiter struct {
	frameTime time.Duration
	next      time.Time
	frames    int64

	now   func() time.Time
	sleep func(time.Duration)
}

func NewAdaptiveLimiter() *AdaptiveLimiter {
	return newAdaptiveLimiter(FrameDuration(), time.Now, time.Sleep)
}

func newAdaptiveLimiter(frameTime time.Duration, now func() time.Time, sleep func(time.Duration)) *AdaptiveLimiter {
	return &AdaptiveLimiter{
		frameTime: frameTime,
		next:      now(),
		now:       now,
		sleep:     sleep,
	}
}

func (a *AdaptiveLimiter) WaitForNextFrame() {
	now := a.now()
	wait := a.next.Sub(now)

	switch {
	case wait > spinThreshold:
		a.sleep(wait - time.Millisecond)
		a.spin()
	case wait > 0:
		a.spin()
	case wait < -maxLag:
		a.next = now
	}

	a.next = a.next.Add(a.frameTime)
	a.frames++

	if a.frames%driftWindow == 0 {
		drift := a.now().Sub(a.next)
		if drift.Abs() > 10*time.Millisecond {
			a.next = a.next.Add(drift / 10)
			slog.Debug("Frame timing drift correction", "drift_ms", drift.Milliseconds())
		}
	}
}

func (a *AdaptiveLimiter) spin() {
	for a.now().Before(a.next) {
	}
}

func (a *AdaptiveLimiter) Reset() {
	a.next = a.now()
	a.frames = 0
}
