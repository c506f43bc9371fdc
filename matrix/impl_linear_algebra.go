// SPDX-License-Identifier: MIT
// Package matrix provides kernels over any Matrix implementation:
// element-wise addition and subtraction, multiplication, transpose,
// scalar scaling, matrix–vector product and the outer product.
//
// Notes:
//   - Operands are read through flat(): a *Dense exposes its backing slice,
//     any other implementation is copied once through At. Kernels then walk
//     row-major slices with fixed loop orders, so every implementation gives
//     bit-identical results.
//   - Kernels wrap errors via matrixErrorf with a package-level op tag.

package matrix

import "fmt"

// ZeroSum is the initial value of accumulators in dot-product style loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opOuter     = "Outer"
	opPinv      = "PseudoInverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// flat returns m as a row-major slice of length Rows()*Cols().
// The slice of a *Dense is shared: callers must treat it as read-only.
//
// Errors: whatever m.At reports for an in-range index.
//
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func flat(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.data, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	var (
		i, j int
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if out[i*cols+j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// result allocates the rows×cols output of a kernel. Kernel outputs skip
// the NaN/Inf policy: non-finite values are data the caller must see.
func result(rows, cols int, tag string) (*Dense, error) {
	res, err := NewDense(rows, cols, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return res, nil
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: one flat loop over both operands.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, tag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	av, err := flat(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	bv, err := flat(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	res, err := result(a.Rows(), a.Cols(), tag)
	if err != nil {
		return nil, err
	}
	for idx := range res.data {
		res.data[idx] = av[idx] + sign*bv[idx]
	}

	return res, nil
}

// Add returns a + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
//
// Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Sub").
//
// Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul returns the product A × B.
//
// Implementation:
//   - Stage 1: validate A, B non-nil and A.Cols == B.Rows.
//   - Stage 2: i→k→j loop over row-major strides.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - Zero entries are not skipped: 0·Inf must still surface as NaN.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	av, err := flat(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bv, err := flat(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := result(rows, cols, opMul)
	if err != nil {
		return nil, err
	}
	var (
		i, k, j  int
		aik      float64
		out, row []float64
	)
	for i = 0; i < rows; i++ {
		out = res.data[i*cols : (i+1)*cols]
		for k = 0; k < inner; k++ {
			aik = av[i*inner+k]
			row = bv[k*cols : (k+1)*cols]
			for j = range out {
				out[j] += aik * row[j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ. m is never mutated.
//
// Errors:
//   - ErrNilMatrix (wrapped with "Transpose").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := flat(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := result(cols, rows, opTranspose)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src[i*cols+j]
		}
	}

	return res, nil
}

// Scale returns alpha·m.
//
// Errors:
//   - ErrNilMatrix (wrapped with "Scale").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	src, err := flat(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := result(m.Rows(), m.Cols(), opScale)
	if err != nil {
		return nil, err
	}
	for idx, v := range src {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	src, err := flat(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	cols := len(x)
	y := make([]float64, m.Rows())
	var (
		acc float64
		row []float64
	)
	for i := range y {
		acc = ZeroSum
		row = src[i*cols : (i+1)*cols]
		for j, v := range row {
			acc += v * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Outer returns the rank-one matrix u·vᵀ of shape len(u)×len(v).
//
// Errors:
//   - ErrInvalidDimensions when u or v is empty (wrapped with "Outer").
//
// Complexity: Time O(len(u)*len(v)), Space O(len(u)*len(v)).
func Outer(u, v []float64) (*Dense, error) {
	res, err := result(len(u), len(v), opOuter)
	if err != nil {
		return nil, err
	}
	var (
		row []float64
		j   int
	)
	for i, ui := range u {
		row = res.data[i*res.c : (i+1)*res.c]
		for j = range v {
			row[j] = ui * v[j]
		}
	}

	return res, nil
}
