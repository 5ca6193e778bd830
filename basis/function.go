// Package basis evaluates the interpolation kernels used to move quantities
// between particles and grid nodes, and lifts them into separable 1, 2 and 3
// dimensional tensor product bases.
//
// Kernels take the scaled offset between a particle and a node, typically
// (xp - xi) / h, and are zero outside their compact support.
package basis

import (
	"errors"
	"fmt"
	"math"
)

// Function is a one dimensional interpolation kernel. Implementations are
// stateless and both methods are pure.
type Function interface {
	Evaluate(x float64) float64
	Derivative(x float64) float64
}

// ErrUnknownKernel is returned by KernelByName for unrecognised names
var ErrUnknownKernel = errors.New("basis: unknown kernel")

var (
	_ Function = PiecewiseLinear{}
	_ Function = CubicSpline{}
)

// PiecewiseLinear is the hat function with support [-1, 1]
type PiecewiseLinear struct{}

func (PiecewiseLinear) Evaluate(x float64) float64 {
	a := math.Abs(x)
	if 0 <= a && a < 1 {
		return 1 - a
	}
	return 0
}

func (PiecewiseLinear) Derivative(x float64) float64 {
	switch {
	case -1 <= x && x < 0:
		return 1
	case 0 <= x && x <= 1:
		return -1
	}
	return 0
}

func (PiecewiseLinear) Support() float64 { return 1 }

func (PiecewiseLinear) Name() string { return "linear" }

// CubicSpline is the cubic B-spline kernel with support [-2, 2]
type CubicSpline struct{}

func (CubicSpline) Evaluate(x float64) float64 {
	a := math.Abs(x)
	switch {
	case 0 <= a && a < 1:
		return 0.5*a*a*a - a*a + 2./3.
	case 1 <= a && a <= 2:
		return (-1./6.)*a*a*a + a*a - 2*a + 4./3.
	}
	return 0
}

func (CubicSpline) Derivative(x float64) float64 {
	a := math.Abs(x)
	switch {
	case 0 <= a && a < 1:
		return x * (1.5*a - 2)
	case 1 <= a && a <= 2:
		return x * (2 - 0.5*a - 2/a)
	}
	return 0
}

func (CubicSpline) Support() float64 { return 2 }

func (CubicSpline) Name() string { return "cubic" }

// KernelByName resolves "linear" or "cubic" to a kernel
func KernelByName(name string) (Function, error) {
	switch name {
	case "linear":
		return PiecewiseLinear{}, nil
	case "cubic":
		return CubicSpline{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
}

// EvaluateAll evaluates f at every x. If an output slice is given the result
// is written into it and returned, otherwise a new slice is allocated.
func EvaluateAll(f Function, xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = f.Evaluate(x)
	}
	return out[0]
}

// DerivativeAll is EvaluateAll for the kernel derivative
func DerivativeAll(f Function, xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = f.Derivative(x)
	}
	return out[0]
}
