// SPDX-License-Identifier: MIT

// Package matrix - vector kernels over plain []float64.
//
// Purpose:
//   - Give the solvers one place for the handful of vector operations they
//     need (norms, dot product, axpy-style updates), on top of gonum/floats.
//   - Keep the Matrix-side error surface: binary kernels validate lengths and
//     return ErrDimensionMismatch instead of letting gonum panic.
//
// Complexity quicksheet:
//   - Every kernel is O(n) time; allocating kernels are O(n) space.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation tags for vector kernels.
const (
	opDot       = "Dot"
	opSubVec    = "SubVec"
	opAddScaled = "AddScaled"
)

// Norm returns the Euclidean norm ‖x‖₂. Norm(nil) == 0.
// Complexity: O(n).
func Norm(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return floats.Norm(x, 2)
}

// MaxAbs returns the max-norm ‖x‖∞ = max_i |x_i|. MaxAbs(nil) == 0.
// NaN entries propagate (the result is NaN).
// Complexity: O(n).
func MaxAbs(x []float64) float64 {
	var best float64
	for _, v := range x {
		if math.IsNaN(v) {
			return math.NaN()
		}
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best
}

// Dot returns a·b.
//
// Errors:
//   - ErrDimensionMismatch when len(a) != len(b) (wrapped with "Dot").
//
// Complexity: O(n).
func Dot(a, b []float64) (float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return floats.Dot(a, b), nil
}

// SubVec returns a freshly allocated a − b.
//
// Errors:
//   - ErrDimensionMismatch when len(a) != len(b) (wrapped with "SubVec").
//
// Complexity: O(n).
func SubVec(a, b []float64) ([]float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, matrixErrorf(opSubVec, err)
	}

	return floats.SubTo(make([]float64, len(a)), a, b), nil
}

// AddScaled returns a freshly allocated y + alpha·s.
//
// Errors:
//   - ErrDimensionMismatch when len(y) != len(s) (wrapped with "AddScaled").
//
// Complexity: O(n).
func AddScaled(y []float64, alpha float64, s []float64) ([]float64, error) {
	if err := ValidateSameLen(y, s); err != nil {
		return nil, matrixErrorf(opAddScaled, err)
	}

	return floats.AddScaledTo(make([]float64, len(y)), y, alpha, s), nil
}

// ScaleVec multiplies x by alpha in place.
// Complexity: O(n).
func ScaleVec(alpha float64, x []float64) {
	floats.Scale(alpha, x)
}

// AllFinite reports whether every entry of x is neither NaN nor ±Inf.
// Complexity: O(n).
func AllFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// CloneVec returns an independent copy of x (nil stays nil).
// Complexity: O(n).
func CloneVec(x []float64) []float64 {
	if x == nil {
		return nil
	}
	out := make([]float64, len(x))
	copy(out, x)

	return out
}
