// Package matrix is the dense linear-algebra layer used by the root finders.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Kernels: Add, Sub, Mul, Transpose, Scale, MatVec, Outer.
//   - Vector kernels over plain []float64: Norm, Dot, MaxAbs, SubVec,
//     AddScaled, ScaleVec, AllFinite.
//   - PseudoInverse, the Moore–Penrose inverse computed from a thin SVD with
//     an absolute singular-value cutoff.
//
// Vectors are plain slices; their dimension is checked at run time and a
// mismatch is reported as ErrDimensionMismatch. Decompositions are delegated
// to gonum (gonum.org/v1/gonum/mat), element-wise vector work to
// gonum.org/v1/gonum/floats.
//
// All kernels allocate their result and never mutate their operands.
// Errors are package sentinels wrapped with an operation tag, so callers
// match them with errors.Is.
package matrix
