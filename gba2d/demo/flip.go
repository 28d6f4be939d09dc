package demo

import (
	"log/slog"

	"github.com/valerio/go-gba2d/gba2d/algebra"
	"github.com/valerio/go-gba2d/gba2d/input"
	"github.com/valerio/go-gba2d/gba2d/video"
)

// Rect spans w+1 by h+1 pixels, so a sprite at x covers x..x+size.
const (
	ballSize     = 4
	paddleX      = 4
	paddleWidth  = 4
	paddleHeight = 24
	paddleSpeed  = 2
)

// Flip bounces a ball around the mode 5 bitmap, drawing each frame on the
// hidden page and flipping after vblank. A paddle on the left moves with
// Up and Down; Start pauses.
type Flip struct {
	ball   algebra.Vec2[int32]
	speed  algebra.Vec2[int32]
	paddle int32
	paused bool
	misses int
	bounds algebra.Vec2[int32]
}

func NewFlip() *Flip {
	return &Flip{
		ball:   algebra.New[int32](80, 64),
		speed:  algebra.New[int32](2, 1),
		paddle: (video.Mode5Height - paddleHeight) / 2,
		bounds: algebra.New[int32](video.Mode5Width, video.Mode5Height),
	}
}

// Init shows page 1 so drawing starts on the hidden page 0.
func (f *Flip) Init(d *video.Display) error {
	d.SetDisplayMode(mode5.WithShowFrame1(true))
	return nil
}

func (f *Flip) Frame(d *video.Display, k *input.Keypad) error {
	k.Poll()
	if k.KeyHit(input.KeyStart) {
		f.paused = !f.paused
		slog.Debug("Flip demo pause", "paused", f.paused)
	}
	if !f.paused {
		f.update(k)
	}

	d.Clear(video.Black)
	d.Rect(algebra.New[uint32](paddleX, uint32(f.paddle)), paddleWidth, paddleHeight, video.White)
	d.Rect(algebra.New(uint32(f.ball.X), uint32(f.ball.Y)), ballSize, ballSize, video.Yellow)

	d.VSync()
	d.FlipPage()
	return nil
}

func (f *Flip) update(k *input.Keypad) {
	if k.KeyDown(input.KeyUp) {
		f.paddle = max(f.paddle-paddleSpeed, 0)
	}
	if k.KeyDown(input.KeyDown) {
		f.paddle = min(f.paddle+paddleSpeed, f.bounds.Y-paddleHeight-1)
	}

	next := f.ball.Add(f.speed)

	if f.speed.X < 0 && next.X <= paddleX+paddleWidth && next.X+ballSize > paddleX &&
		next.Y+ballSize > f.paddle && next.Y < f.paddle+paddleHeight {
		f.speed.X = -f.speed.X
	} else if next.X < 0 || next.X+ballSize >= f.bounds.X {
		if next.X < 0 {
			f.misses++
		}
		f.speed.X = -f.speed.X
	}
	if next.Y < 0 || next.Y+ballSize >= f.bounds.Y {
		f.speed.Y = -f.speed.Y
	}

	f.ball.AddAssign(f.speed)
}

// Ball returns the top-left corner of the ball.
func (f *Flip) Ball() algebra.Vec2[int32] { return f.ball }

func (f *Flip) Paused() bool { return f.paused }

// Misses counts the times the ball hit the left wall behind the paddle.
func (f *Flip) Misses() int { return f.misses }

// Paddle returns the paddle's top row.
func (f *Flip) Paddle() int32 { return f.paddle }
