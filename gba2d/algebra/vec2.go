// Package algebra provides small value types for 2D game math.
package algebra

import "fmt"

// Number is the set of element types a Vec2 can be built over: every type
// with the full +, -, *, / operator set.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Vec2 is a 2D vector with generic numeric components.
// It is a plain value: copy it freely, compare it with ==.
type Vec2[T Number] struct {
	X T
	Y T
}

// New returns the vector (x, y).
func New[T Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat returns a vector with both components set to n.
func Splat[T Number](n T) Vec2[T] {
	return Vec2[T]{X: n, Y: n}
}

func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] {
	return Vec2[T]{X: a.X + b.X, Y: a.Y + b.Y}
}

func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] {
	return Vec2[T]{X: a.X - b.X, Y: a.Y - b.Y}
}

// Mul scales both components by s.
func (a Vec2[T]) Mul(s T) Vec2[T] {
	return Vec2[T]{X: a.X * s, Y: a.Y * s}
}

// Div divides both components by s. Integer division by zero panics.
func (a Vec2[T]) Div(s T) Vec2[T] {
	return Vec2[T]{X: a.X / s, Y: a.Y / s}
}

func (a *Vec2[T]) AddAssign(b Vec2[T]) {
	a.X += b.X
	a.Y += b.Y
}

func (a *Vec2[T]) SubAssign(b Vec2[T]) {
	a.X -= b.X
	a.Y -= b.Y
}

func (a *Vec2[T]) MulAssign(s T) {
	a.X *= s
	a.Y *= s
}

func (a *Vec2[T]) DivAssign(s T) {
	a.X /= s
	a.Y /= s
}

// Dot returns a.X*b.X + a.Y*b.Y.
func (a Vec2[T]) Dot(b Vec2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the z component of the 3D cross product of a and b,
// a.X*b.Y - a.Y*b.X. It is positive when b lies counter-clockwise of a
// (in a Y-up frame).
//
// Earlier revisions computed a.X*b.Y - b.X*b.Y, which ignores a.Y entirely.
func (a Vec2[T]) Cross(b Vec2[T]) T {
	return a.X*b.Y - a.Y*b.X
}

func (a Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", a.X, a.Y)
}
