// SPDX-License-Identifier: MIT

// Package matrix - Moore–Penrose pseudo-inverse.
//
// Purpose:
//   - Invert possibly singular or non-square matrices for the Newton step
//     J⁺·F, using a thin singular value decomposition from gonum/mat.
//   - Fail loudly on non-finite input or a decomposition that does not
//     converge, instead of returning garbage.
//
// Complexity quicksheet:
//   - PseudoInverse: O(m·n·min(m,n)) for the SVD plus O(m·n·k) to assemble.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// PseudoInverse returns the n×m Moore–Penrose inverse A⁺ of the m×n matrix a.
//
// Implementation:
//   - Stage 1: validate a (non-nil) and tol (finite, ≥ 0).
//   - Stage 2: copy a into a gonum *mat.Dense, rejecting NaN/±Inf.
//   - Stage 3: thin SVD A = U·Σ·Vᵀ.
//   - Stage 4: A⁺ = V·Σ⁺·Uᵀ where Σ⁺ inverts singular values σ > tol and
//     zeroes the rest (absolute cutoff).
//
// Behavior highlights:
//   - A matrix whose singular values are all ≤ tol yields the zero matrix,
//     not an error.
//   - The input is never mutated.
//
// Errors (wrapped with "PseudoInverse"):
//   - ErrNilMatrix           when a is nil.
//   - ErrBadTolerance        when tol is negative, NaN or ±Inf.
//   - ErrNaNInf              when a holds NaN/±Inf.
//   - ErrDecompositionFailed when the SVD does not converge or Σ⁺ overflows.
//
// Complexity:
//   - Time O(m·n·min(m,n)), Space O(m·n).
func PseudoInverse(a Matrix, tol float64) (*Dense, error) {
	// Stage 1: validate inputs.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return nil, matrixErrorf(opPinv, ErrBadTolerance)
	}

	// Stage 2: bridge to gonum.
	g, err := toGonum(a)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}

	// Stage 3: thin SVD.
	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDThin); !ok {
		return nil, matrixErrorf(opPinv, ErrDecompositionFailed)
	}
	sigma := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// Stage 4: assemble V·Σ⁺·Uᵀ into an n×m Dense.
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(cols, rows, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	var (
		i, j, l int
		inv     float64
	)
	for l = range sigma {
		if sigma[l] <= tol {
			continue // below the numerical rank cutoff
		}
		inv = 1 / sigma[l]
		for i = 0; i < cols; i++ {
			vil := v.At(i, l) * inv
			if vil == 0 {
				continue
			}
			for j = 0; j < rows; j++ {
				res.data[i*rows+j] += vil * u.At(j, l)
			}
		}
	}
	if !AllFinite(res.data) {
		return nil, matrixErrorf(opPinv, fmt.Errorf("inverse overflowed: %w", ErrDecompositionFailed))
	}
	res.validateNaNInf = DefaultValidateNaNInf

	return res, nil
}

// SingularValues returns the singular values of a in descending order.
//
// Errors: same as PseudoInverse, minus ErrBadTolerance.
//
// Complexity: O(m·n·min(m,n)).
func SingularValues(a Matrix) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	g, err := toGonum(a)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDNone); !ok {
		return nil, matrixErrorf(opPinv, ErrDecompositionFailed)
	}

	return svd.Values(nil), nil
}

// toGonum copies any Matrix into a gonum *mat.Dense, rejecting NaN/±Inf.
// Complexity: O(r*c).
func toGonum(a Matrix) (*mat.Dense, error) {
	rows, cols := a.Rows(), a.Cols()
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	src, err := flat(a)
	if err != nil {
		return nil, err
	}
	if !AllFinite(src) {
		return nil, ErrNaNInf
	}
	buf := make([]float64, len(src))
	copy(buf, src)

	return mat.NewDense(rows, cols, buf), nil
}
