package fdiff_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rootfind/fdiff"
	"github.com/katalvlaran/rootfind/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// polySystem is F(x) = (x0² − x1, x0·x1 + sin(x2), exp(x2) − x0).
func polySystem(x []float64) []float64 {
	return []float64{
		x[0]*x[0] - x[1],
		x[0]*x[1] + math.Sin(x[2]),
		math.Exp(x[2]) - x[0],
	}
}

// polyJacobian is the analytic Jacobian of polySystem.
func polyJacobian(x []float64) [][]float64 {
	return [][]float64{
		{2 * x[0], -1, 0},
		{x[1], x[0], math.Cos(x[2])},
		{-1, 0, math.Exp(x[2])},
	}
}

// countingFunc wraps f and counts how often it is invoked.
func countingFunc(f fdiff.Func, calls *int) fdiff.Func {
	return func(x []float64) []float64 {
		*calls++

		return f(x)
	}
}

func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// TestJacobian_MatchesAnalytic checks the estimate against exact partials.
func TestJacobian_MatchesAnalytic(t *testing.T) {
	x := []float64{1.5, -0.5, 0.25}
	jac := fdiff.Jacobian(polySystem, polySystem(x), x)
	want := polyJacobian(x)

	require.Equal(t, 3, jac.Rows())
	require.Equal(t, 3, jac.Cols())
	for i := range want {
		for j := range want[i] {
			assert.InDelta(t, want[i][j], at(t, jac, i, j), 1e-6, "J[%d][%d]", i, j)
		}
	}
}

// TestJacobian_AgreesWithGonumForward cross-checks against gonum's
// forward-difference Jacobian using the same absolute step.
func TestJacobian_AgreesWithGonumForward(t *testing.T) {
	const h = 1e-7
	x := []float64{0.3, 2.0, -1.1}
	fx := polySystem(x)

	ours := fdiff.Jacobian(polySystem, fx, x, fdiff.WithAbsoluteStep(), fdiff.WithStep(h))

	ref := mat.NewDense(3, 3, nil)
	fd.Jacobian(ref, func(dst, xx []float64) {
		copy(dst, polySystem(xx))
	}, x, &fd.JacobianSettings{
		Formula:     fd.Forward,
		Step:        h,
		OriginValue: fx,
	})

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, ref.At(i, j), at(t, ours, i, j), 1e-6, "J[%d][%d]", i, j)
		}
	}
}

// TestJacobian_EvaluationCounts verifies n calls for Jacobian and n+1 for JacobianAt.
func TestJacobian_EvaluationCounts(t *testing.T) {
	x := []float64{1, 2, 3}

	calls := 0
	f := countingFunc(polySystem, &calls)
	fx := polySystem(x)
	_ = fdiff.Jacobian(f, fx, x)
	assert.Equal(t, 3, calls, "Jacobian must call F exactly n times")

	calls = 0
	_ = fdiff.JacobianAt(f, x)
	assert.Equal(t, 4, calls, "JacobianAt must call F exactly n+1 times")
}

// TestJacobian_DoesNotMutateInputs ensures x and fx are untouched, even when F
// scribbles over the slice it receives.
func TestJacobian_DoesNotMutateInputs(t *testing.T) {
	x := []float64{1, 2}
	fx := []float64{0, 0}
	xCopy := append([]float64(nil), x...)
	fxCopy := append([]float64(nil), fx...)

	hostile := func(v []float64) []float64 {
		out := []float64{v[0], v[1]}
		v[0], v[1] = 99, 99

		return out
	}
	_ = fdiff.Jacobian(hostile, fx, x)
	assert.Equal(t, xCopy, x)
	assert.Equal(t, fxCopy, fx)

	_ = fdiff.JacobianAt(hostile, x)
	assert.Equal(t, xCopy, x)
}

// TestJacobian_ZeroCoordinateStep verifies the fallback step at xⱼ = 0
// still yields the right slope for a linear map.
func TestJacobian_ZeroCoordinateStep(t *testing.T) {
	lin := func(x []float64) []float64 {
		return []float64{3*x[0] - 2*x[1], x[0] + 4*x[1]}
	}
	x := []float64{0, 0}
	jac := fdiff.JacobianAt(lin, x)

	assert.InDelta(t, 3.0, at(t, jac, 0, 0), 1e-6)
	assert.InDelta(t, -2.0, at(t, jac, 0, 1), 1e-6)
	assert.InDelta(t, 1.0, at(t, jac, 1, 0), 1e-6)
	assert.InDelta(t, 4.0, at(t, jac, 1, 1), 1e-6)
}

// TestJacobian_LargeMagnitudeUsesRelativeStep checks that at |x| = 1e8 the
// relative step keeps the estimate accurate where a fixed √ε step would be
// swallowed by rounding.
func TestJacobian_LargeMagnitudeUsesRelativeStep(t *testing.T) {
	sq := func(x []float64) []float64 { return []float64{x[0] * x[0]} }
	x := []float64{1e8}

	jac := fdiff.JacobianAt(sq, x)
	assert.InEpsilon(t, 2e8, at(t, jac, 0, 0), 1e-6)
}

// TestJacobian_NonFiniteEstimateIsReturned shows that a blow-up in F is
// passed through rather than hidden.
func TestJacobian_NonFiniteEstimateIsReturned(t *testing.T) {
	f := func(x []float64) []float64 {
		if x[0] != 1 {
			return []float64{math.Inf(1)}
		}

		return []float64{0}
	}
	jac := fdiff.JacobianAt(f, []float64{1})
	assert.True(t, math.IsInf(at(t, jac, 0, 0), 1))
}

// TestJacobian_Panics covers the programmer-error contract.
func TestJacobian_Panics(t *testing.T) {
	assert.Panics(t, func() { fdiff.Jacobian(nil, []float64{0}, []float64{0}) }, "nil F")
	assert.Panics(t, func() { fdiff.Jacobian(polySystem, nil, nil) }, "empty x")
	assert.Panics(t, func() { fdiff.Jacobian(polySystem, []float64{1, 2}, []float64{1, 2, 3}) }, "residual length")
	assert.Panics(t, func() {
		bad := func(x []float64) []float64 { return []float64{0} }
		fdiff.Jacobian(bad, []float64{0, 0}, []float64{1, 2})
	}, "F output length")
	assert.Panics(t, func() { fdiff.JacobianAt(nil, []float64{1}) }, "nil F")
	assert.Panics(t, func() {
		bad := func(x []float64) []float64 { return nil }
		fdiff.JacobianAt(bad, []float64{1})
	}, "F output length at origin")
}

// TestWithStep_Panics verifies invalid steps are rejected at option construction.
func TestWithStep_Panics(t *testing.T) {
	assert.Panics(t, func() { fdiff.WithStep(0) })
	assert.Panics(t, func() { fdiff.WithStep(-1e-8) })
	assert.Panics(t, func() { fdiff.WithStep(math.NaN()) })
	assert.Panics(t, func() { fdiff.WithStep(math.Inf(1)) })
	assert.NotPanics(t, func() { fdiff.WithStep(1e-6) })
}

// TestDefaultOptions pins the defaults.
func TestDefaultOptions(t *testing.T) {
	o := fdiff.DefaultOptions()
	assert.Equal(t, math.Sqrt(2.220446049250313e-16), o.Step)
	assert.True(t, o.Relative)
}
