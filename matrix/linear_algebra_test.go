// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rootfind/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// viewMatrix is a read-only Matrix backed by a function; it forces the
// generic At-based code paths of every kernel.
type viewMatrix struct {
	r, c int
	at   func(i, j int) float64
}

func (v viewMatrix) Rows() int { return v.r }
func (v viewMatrix) Cols() int { return v.c }
func (v viewMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, matrix.ErrOutOfRange
	}

	return v.at(i, j), nil
}
func (v viewMatrix) Set(int, int, float64) error { return matrix.ErrOutOfRange }
func (v viewMatrix) Clone() matrix.Matrix        { return v }

// assertMatrix compares m against row-major want within delta.
func assertMatrix(t *testing.T, want []float64, m matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows()*m.Cols(), "shape")
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			got, err := m.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want[i*m.Cols()+j], got, delta, "(%d,%d)", i, j)
		}
	}
}

func TestAddSub(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 2, 3, 4)
	b := mustDense(t, 2, 2, 4, 3, 2, 1)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assertMatrix(t, []float64{5, 5, 5, 5}, sum, 0)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	assertMatrix(t, []float64{-3, -1, 1, 3}, diff, 0)

	_, err = matrix.Add(a, mustDense(t, 1, 2, 0, 0))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := mustDense(t, 2, 3,
		1, 2, 3,
		4, 5, 6)
	b := mustDense(t, 3, 2,
		7, 8,
		9, 10,
		11, 12)

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assertMatrix(t, []float64{58, 64, 139, 154}, p, 0)

	view := viewMatrix{r: 3, c: 2, at: func(i, j int) float64 { v, _ := b.At(i, j); return v }}
	p, err = matrix.Mul(a, view)
	require.NoError(t, err)
	assertMatrix(t, []float64{58, 64, 139, 154}, p, 0)

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul_ZeroTimesInf keeps 0·Inf visible as NaN.
func TestMul_ZeroTimesInf(t *testing.T) {
	a := mustDense(t, 1, 2, 0, 1)
	b, err := matrix.NewDenseFrom(2, 1, []float64{math.Inf(1), 1}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	v, _ := p.At(0, 0)
	assert.True(t, math.IsNaN(v))
}

func TestTransposeScale(t *testing.T) {
	a := mustDense(t, 2, 3,
		1, 2, 3,
		4, 5, 6)

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	assertMatrix(t, []float64{1, 4, 2, 5, 3, 6}, tr, 0)

	view := viewMatrix{r: 1, c: 2, at: func(_, j int) float64 { return float64(j + 1) }}
	tr, err = matrix.Transpose(view)
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Rows())
	assertMatrix(t, []float64{1, 2}, tr, 0)

	sc, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	assertMatrix(t, []float64{-2, -4, -6, -8, -10, -12}, sc, 0)

	sc, err = matrix.Scale(view, 3)
	require.NoError(t, err)
	assertMatrix(t, []float64{3, 6}, sc, 0)

	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	a := mustDense(t, 2, 2,
		2, -1,
		1, 1)

	y, err := matrix.MatVec(a, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3}, y)

	view := viewMatrix{r: 2, c: 2, at: func(i, j int) float64 { v, _ := a.At(i, j); return v }}
	y, err = matrix.MatVec(view, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3}, y)

	_, err = matrix.MatVec(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.MatVec(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestOuter(t *testing.T) {
	o, err := matrix.Outer([]float64{1, 2}, []float64{3, 4, 5})
	require.NoError(t, err)
	assertMatrix(t, []float64{3, 4, 5, 6, 8, 10}, o, 0)

	_, err = matrix.Outer(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
