// Package vec provides small generic 2D/3D/4D vector value types with
// component-wise and scalar arithmetic. All operations return new
// values; the types are plain data and safe to copy.
package vec

import "fmt"

// Number constrains vector components to the built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vec2 is a two-component vector.
type Vec2[T Number] struct {
	X, Y T
}

// Splat2 creates a Vec2 with both components set to v.
func Splat2[T Number](v T) Vec2[T] {
	return Vec2[T]{X: v, Y: v}
}

func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X + b.X, a.Y + b.Y} }
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X - b.X, a.Y - b.Y} }
func (a Vec2[T]) Mul(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X * b.X, a.Y * b.Y} }
func (a Vec2[T]) Div(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X / b.X, a.Y / b.Y} }

func (a Vec2[T]) AddS(v T) Vec2[T] { return Vec2[T]{a.X + v, a.Y + v} }
func (a Vec2[T]) SubS(v T) Vec2[T] { return Vec2[T]{a.X - v, a.Y - v} }
func (a Vec2[T]) MulS(v T) Vec2[T] { return Vec2[T]{a.X * v, a.Y * v} }
func (a Vec2[T]) DivS(v T) Vec2[T] { return Vec2[T]{a.X / v, a.Y / v} }

// Sum returns the sum of the components.
func (a Vec2[T]) Sum() T { return a.X + a.Y }

// Zero returns the zero vector.
func (Vec2[T]) Zero() Vec2[T] { return Vec2[T]{} }

func (a Vec2[T]) String() string { return fmt.Sprintf("%v, %v", a.X, a.Y) }

// Vec3 is a three-component vector.
type Vec3[T Number] struct {
	X, Y, Z T
}

// Splat3 creates a Vec3 with all components set to v.
func Splat3[T Number](v T) Vec3[T] {
	return Vec3[T]{X: v, Y: v, Z: v}
}

func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3[T]) Mul(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }
func (a Vec3[T]) Div(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X / b.X, a.Y / b.Y, a.Z / b.Z} }

func (a Vec3[T]) AddS(v T) Vec3[T] { return Vec3[T]{a.X + v, a.Y + v, a.Z + v} }
func (a Vec3[T]) SubS(v T) Vec3[T] { return Vec3[T]{a.X - v, a.Y - v, a.Z - v} }
func (a Vec3[T]) MulS(v T) Vec3[T] { return Vec3[T]{a.X * v, a.Y * v, a.Z * v} }
func (a Vec3[T]) DivS(v T) Vec3[T] { return Vec3[T]{a.X / v, a.Y / v, a.Z / v} }

// Sum returns the sum of the components.
func (a Vec3[T]) Sum() T { return a.X + a.Y + a.Z }

// Zero returns the zero vector.
func (Vec3[T]) Zero() Vec3[T] { return Vec3[T]{} }

func (a Vec3[T]) String() string { return fmt.Sprintf("%v, %v, %v", a.X, a.Y, a.Z) }

// Vec4 is a four-component vector.
type Vec4[T Number] struct {
	X, Y, Z, W T
}

// Splat4 creates a Vec4 with all components set to v.
func Splat4[T Number](v T) Vec4[T] {
	return Vec4[T]{X: v, Y: v, Z: v, W: v}
}

func (a Vec4[T]) Add(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}
func (a Vec4[T]) Sub(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}
func (a Vec4[T]) Mul(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W}
}
func (a Vec4[T]) Div(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X / b.X, a.Y / b.Y, a.Z / b.Z, a.W / b.W}
}

func (a Vec4[T]) AddS(v T) Vec4[T] { return Vec4[T]{a.X + v, a.Y + v, a.Z + v, a.W + v} }
func (a Vec4[T]) SubS(v T) Vec4[T] { return Vec4[T]{a.X - v, a.Y - v, a.Z - v, a.W - v} }
func (a Vec4[T]) MulS(v T) Vec4[T] { return Vec4[T]{a.X * v, a.Y * v, a.Z * v, a.W * v} }
func (a Vec4[T]) DivS(v T) Vec4[T] { return Vec4[T]{a.X / v, a.Y / v, a.Z / v, a.W / v} }

// Sum returns the sum of the components.
func (a Vec4[T]) Sum() T { return a.X + a.Y + a.Z + a.W }

// Zero returns the zero vector.
func (Vec4[T]) Zero() Vec4[T] { return Vec4[T]{} }

func (a Vec4[T]) String() string {
	return fmt.Sprintf("%v, %v, %v, %v", a.X, a.Y, a.Z, a.W)
}
