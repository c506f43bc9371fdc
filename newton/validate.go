package newton

import "github.com/katalvlaran/rootfind/matrix"

// validateInput checks the caller's arguments before any iteration.
//
// Errors: ErrNilFunc, ErrEmptyInput, ErrBadTolerance, ErrNonFinite.
func validateInput(f Func, x0 []float64, acc float64) error {
	if f == nil {
		return ErrNilFunc
	}
	if len(x0) == 0 {
		return ErrEmptyInput
	}
	if !finite(acc) || acc <= 0 {
		return ErrBadTolerance
	}
	if !matrix.AllFinite(x0) {
		return ErrNonFinite
	}

	return nil
}
