package basis

import (
	"errors"
	"fmt"

	"github.com/notargets/MPMKernel/element"
	"github.com/notargets/MPMKernel/vector"
	"gonum.org/v1/gonum/floats"
)

// ErrUnsupportedDimension is returned by New for dimensions other than 1, 2, 3
var ErrUnsupportedDimension = errors.New("basis: unsupported dimension")

// Basis is the dimension tagged view over Basis1D, Basis2D and Basis3D. The
// number of coordinates passed must equal Dimensions(); anything else is a
// caller bug and panics.
type Basis interface {
	Dimensions() element.Dimensionality
	EvaluateAt(x ...float64) float64
	DerivativeAt(x ...float64) []float64
}

var (
	_ Basis = Basis1D[PiecewiseLinear]{}
	_ Basis = Basis2D[PiecewiseLinear]{}
	_ Basis = Basis3D[CubicSpline]{}
)

// New builds the basis for dim around f
func New(dim element.Dimensionality, f Function) (Basis, error) {
	switch dim {
	case element.D1:
		return NewBasis1D(f), nil
	case element.D2:
		return NewBasis2D(f), nil
	case element.D3:
		return NewBasis3D(f), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedDimension, dim)
}

// Basis1D passes scalars straight through to its kernel
type Basis1D[F Function] struct {
	f F
}

func NewBasis1D[F Function](f F) Basis1D[F] { return Basis1D[F]{f: f} }

func (b Basis1D[F]) Kernel() F { return b.f }

func (b Basis1D[F]) Evaluate(x float64) float64 { return b.f.Evaluate(x) }

func (b Basis1D[F]) Derivative(x float64) float64 { return b.f.Derivative(x) }

func (Basis1D[F]) Dimensions() element.Dimensionality { return element.D1 }

func (b Basis1D[F]) EvaluateAt(x ...float64) float64 {
	checkArity(x, 1)
	return b.Evaluate(x[0])
}

func (b Basis1D[F]) DerivativeAt(x ...float64) []float64 {
	checkArity(x, 1)
	return []float64{b.Derivative(x[0])}
}

// Basis2D is the tensor product N(x)N(y)
type Basis2D[F Function] struct {
	f F
}

func NewBasis2D[F Function](f F) Basis2D[F] { return Basis2D[F]{f: f} }

func (b Basis2D[F]) Kernel() F { return b.f }

func (b Basis2D[F]) Evaluate(v vector.Vec2[float64]) float64 {
	return b.f.Evaluate(v.X()) * b.f.Evaluate(v.Y())
}

// Derivative returns [N'(y)N(x), N'(x)N(y)]. The axis pairing is the reverse
// of the product rule used by Basis3D; use Gradient for the textbook form.
func (b Basis2D[F]) Derivative(v vector.Vec2[float64]) vector.Vec2[float64] {
	dx := b.f.Derivative(v.X())
	dy := b.f.Derivative(v.Y())
	return vector.New2(dy*b.f.Evaluate(v.X()), dx*b.f.Evaluate(v.Y()))
}

// Gradient returns the product rule gradient [N'(x)N(y), N(x)N'(y)]
func (b Basis2D[F]) Gradient(v vector.Vec2[float64]) vector.Vec2[float64] {
	nx, ny := b.f.Evaluate(v.X()), b.f.Evaluate(v.Y())
	return vector.New2(b.f.Derivative(v.X())*ny, nx*b.f.Derivative(v.Y()))
}

func (Basis2D[F]) Dimensions() element.Dimensionality { return element.D2 }

func (b Basis2D[F]) EvaluateAt(x ...float64) float64 {
	checkArity(x, 2)
	return b.Evaluate(vector.New2(x[0], x[1]))
}

func (b Basis2D[F]) DerivativeAt(x ...float64) []float64 {
	checkArity(x, 2)
	return b.Derivative(vector.New2(x[0], x[1])).Slice()
}

// Basis3D is the tensor product N(x)N(y)N(z)
type Basis3D[F Function] struct {
	f F
}

func NewBasis3D[F Function](f F) Basis3D[F] { return Basis3D[F]{f: f} }

func (b Basis3D[F]) Kernel() F { return b.f }

func (b Basis3D[F]) Evaluate(v vector.Vec3[float64]) float64 {
	return b.f.Evaluate(v.X()) * b.f.Evaluate(v.Y()) * b.f.Evaluate(v.Z())
}

// Derivative returns the product rule gradient of N(x)N(y)N(z)
func (b Basis3D[F]) Derivative(v vector.Vec3[float64]) vector.Vec3[float64] {
	var (
		nx, ny, nz = b.f.Evaluate(v.X()), b.f.Evaluate(v.Y()), b.f.Evaluate(v.Z())
		dx, dy, dz = b.f.Derivative(v.X()), b.f.Derivative(v.Y()), b.f.Derivative(v.Z())
	)
	return vector.New3(dx*ny*nz, dy*nx*nz, dz*nx*ny)
}

// Gradient is the same as Derivative in 3D
func (b Basis3D[F]) Gradient(v vector.Vec3[float64]) vector.Vec3[float64] {
	return b.Derivative(v)
}

func (Basis3D[F]) Dimensions() element.Dimensionality { return element.D3 }

func (b Basis3D[F]) EvaluateAt(x ...float64) float64 {
	checkArity(x, 3)
	return b.Evaluate(vector.New3(x[0], x[1], x[2]))
}

func (b Basis3D[F]) DerivativeAt(x ...float64) []float64 {
	checkArity(x, 3)
	return b.Derivative(vector.New3(x[0], x[1], x[2])).Slice()
}

// Weights evaluates b at each offset. If an output slice is given the result
// is written into it and returned.
func Weights(b Basis, offsets [][]float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(offsets))}
	}
	for i, x := range offsets {
		out[0][i] = b.EvaluateAt(x...)
	}
	return out[0]
}

// TensorProduct evaluates the separable product of f over an arbitrary number
// of axes. It is the reference the fixed dimension bases must agree with.
func TensorProduct(f Function, x ...float64) float64 {
	return floats.Prod(EvaluateAll(f, x))
}

func checkArity(x []float64, n int) {
	if len(x) != n {
		panic(fmt.Sprintf("basis: got %d coordinates for a %dD basis", len(x), n))
	}
}
