// Package vector provides small fixed-size vectors whose positional accessors
// are gated by size at compile time: Z() only exists on 3 component vectors.
package vector

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Real is the set of scalar types a vector may hold
type Real interface {
	~float32 | ~float64 | ~int | ~int32 | ~int64
}

// SizeAtLeast2 is implemented by vectors with an X and a Y component
type SizeAtLeast2[T Real] interface {
	X() T
	Y() T
}

// SizeAtLeast3 is implemented by vectors with X, Y and Z components
type SizeAtLeast3[T Real] interface {
	SizeAtLeast2[T]
	Z() T
}

// Point is the size-agnostic view used by containers such as a mesh
type Point interface {
	Len() int
	Coord(i int) float64
}

var (
	_ SizeAtLeast2[float64] = Vec2[float64]{}
	_ SizeAtLeast2[float64] = Vec3[float64]{}
	_ SizeAtLeast3[float64] = Vec3[float64]{}
	_ Point                 = Vec2[float64]{}
	_ Point                 = Vec3[float64]{}
)

// Vec2 is an immutable 2 component vector
type Vec2[T Real] struct {
	v [2]T
}

// Vec3 is an immutable 3 component vector
type Vec3[T Real] struct {
	v [3]T
}

func New2[T Real](x, y T) Vec2[T] { return Vec2[T]{v: [2]T{x, y}} }

func New3[T Real](x, y, z T) Vec3[T] { return Vec3[T]{v: [3]T{x, y, z}} }

func (v Vec2[T]) X() T { return v.v[0] }
func (v Vec2[T]) Y() T { return v.v[1] }
func (v Vec2[T]) Len() int { return 2 }

// Index returns component i. Indexing past the end is a caller bug and panics.
func (v Vec2[T]) Index(i int) T {
	checkIndex(i, 2)
	return v.v[i]
}

func (v Vec2[T]) Coord(i int) float64 { return float64(v.Index(i)) }

// Slice returns a copy of the components
func (v Vec2[T]) Slice() []T { return []T{v.v[0], v.v[1]} }

// VecDense converts the vector into a gonum column vector
func (v Vec2[T]) VecDense() *mat.VecDense {
	return mat.NewVecDense(2, []float64{float64(v.v[0]), float64(v.v[1])})
}

func (v Vec2[T]) String() string { return fmt.Sprintf("(%v, %v)", v.v[0], v.v[1]) }

func (v Vec3[T]) X() T { return v.v[0] }
func (v Vec3[T]) Y() T { return v.v[1] }
func (v Vec3[T]) Z() T { return v.v[2] }
func (v Vec3[T]) Len() int { return 3 }

// Index returns component i. Indexing past the end is a caller bug and panics.
func (v Vec3[T]) Index(i int) T {
	checkIndex(i, 3)
	return v.v[i]
}

func (v Vec3[T]) Coord(i int) float64 { return float64(v.Index(i)) }

// Slice returns a copy of the components
func (v Vec3[T]) Slice() []T { return []T{v.v[0], v.v[1], v.v[2]} }

// VecDense converts the vector into a gonum column vector
func (v Vec3[T]) VecDense() *mat.VecDense {
	return mat.NewVecDense(3, []float64{float64(v.v[0]), float64(v.v[1]), float64(v.v[2])})
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.v[0], v.v[1], v.v[2])
}

func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("vector: index %d out of range for length %d", i, n))
	}
}
