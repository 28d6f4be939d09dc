package render

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogBufferWrapsAndOrdersNewestFirst(t *testing.T) {
	lb := NewLogBuffer(3)
	for i, msg := range []string{"a", "b", "c", "d"} {
		lb.Add(LogEntry{Level: slog.Level(i * 4), Message: msg})
	}

	assert.Equal(t, 3, lb.Len())
	var msgs []string
	for _, e := range lb.Recent(0, slog.LevelDebug) {
		msgs = append(msgs, e.Message)
	}
	assert.Equal(t, []string{"d", "c", "b"}, msgs)

	got := lb.Recent(1, slog.LevelDebug)
	require.Len(t, got, 1)
	assert.Equal(t, "d", got[0].Message)

	got = lb.Recent(0, slog.LevelError)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[1].Message)

	lb.Clear()
	assert.Empty(t, lb.Recent(0, slog.LevelDebug))
}

func TestLogBufferConcurrentAdd(t *testing.T) {
	lb := NewLogBuffer(50)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				lb.Add(LogEntry{Message: "x"})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, lb.Len())
}

func TestLogBufferHandler(t *testing.T) {
	lb := NewLogBuffer(10)
	logger := slog.New(NewLogBufferHandler(lb, slog.LevelInfo))

	logger.Debug("hidden")
	logger.With("backend", "terminal").WithGroup("frame").Info("drawn", "n", 3, slog.Group("size", "w", 240))

	entries := lb.Recent(0, slog.LevelDebug)
	require.Len(t, entries, 1)
	assert.Equal(t, "drawn backend=terminal frame.n=3 frame.size.w=240", entries[0].Message)
	assert.True(t, NewLogBufferHandler(lb, slog.LevelWarn).Enabled(context.Background(), slog.LevelError))
}

func TestFormatLogEntry(t *testing.T) {
	ts := time.Date(2024, 1, 1, 13, 4, 5, 0, time.UTC)
	assert.Equal(t, "13:04:05 [WRN] careful", FormatLogEntry(LogEntry{Time: ts, Level: slog.LevelWarn, Message: "careful"}))
	assert.Equal(t, "13:04:05 [DBG] x", FormatLogEntry(LogEntry{Time: ts, Level: slog.LevelDebug - 4, Message: "x"}))
}

func TestHalfBlockStyle(t *testing.T) {
	r, style := HalfBlockStyle(0xFF0000FF, 0x0000FFFF)
	fg, bg, _ := style.Decompose()

	assert.Equal(t, UpperHalf, r)
	assert.Equal(t, tcell.NewRGBColor(0xFF, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0xFF), bg)
}

func TestDownsample(t *testing.T) {
	assert.Equal(t, 7, Downsample(7, 240, 300))
	assert.Equal(t, 0, Downsample(0, 240, 120))
	assert.Equal(t, 238, Downsample(119, 240, 120))
}
