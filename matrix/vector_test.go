// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rootfind/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormMaxAbs(t *testing.T) {
	assert.Equal(t, 0.0, matrix.Norm(nil))
	assert.InDelta(t, 5.0, matrix.Norm([]float64{3, -4}), 1e-15)

	assert.Equal(t, 0.0, matrix.MaxAbs(nil))
	assert.Equal(t, 4.0, matrix.MaxAbs([]float64{3, -4, 1}))
	assert.True(t, math.IsInf(matrix.MaxAbs([]float64{1, math.Inf(-1)}), 1))
	assert.True(t, math.IsNaN(matrix.MaxAbs([]float64{100, math.NaN(), 1})), "NaN must not be hidden by larger entries")
}

func TestDotSubAddScaled(t *testing.T) {
	d, err := matrix.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32.0, d)

	a := []float64{5, 7}
	b := []float64{1, 2}
	s, err := matrix.SubVec(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5}, s)
	assert.Equal(t, []float64{5, 7}, a, "SubVec allocates")

	y, err := matrix.AddScaled(a, -2, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3}, y)

	_, err = matrix.Dot(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.SubVec(a, nil)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AddScaled(a, 1, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestScaleCloneFinite(t *testing.T) {
	x := []float64{1, -2}
	matrix.ScaleVec(-0.5, x)
	assert.Equal(t, []float64{-0.5, 1}, x)

	c := matrix.CloneVec(x)
	c[0] = 42
	assert.Equal(t, -0.5, x[0])
	assert.Nil(t, matrix.CloneVec(nil))

	assert.True(t, matrix.AllFinite(nil))
	assert.True(t, matrix.AllFinite([]float64{0, -1e308}))
	assert.False(t, matrix.AllFinite([]float64{0, math.NaN()}))
	assert.False(t, matrix.AllFinite([]float64{math.Inf(1)}))
}
