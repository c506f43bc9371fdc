package linesearch

import (
	"errors"
	"fmt"
)

var (
	// ErrLineSearch is matched by every search failure.
	ErrLineSearch = errors.New("linesearch: could not find adequate step")

	// ErrNotDescent indicates g·p ≥ 0 (or NaN): p does not decrease the merit.
	ErrNotDescent = errors.New("linesearch: direction is not a descent direction")

	// ErrStepCollapsed indicates λ fell below its minimum (or the trial cap
	// was reached) without sufficient decrease.
	ErrStepCollapsed = errors.New("linesearch: step length collapsed")

	// ErrLocalMinimum accompanies ErrStepCollapsed when the merit gradient is
	// vanishing at x_old while F is not: a local minimum of ½‖F‖² that is not a root.
	ErrLocalMinimum = errors.New("linesearch: local minimum of merit function")

	// ErrNilMerit indicates a nil merit function.
	ErrNilMerit = errors.New("linesearch: merit function is nil")

	// ErrDimensionMismatch indicates x_old, g and p differ in length or are empty.
	ErrDimensionMismatch = errors.New("linesearch: dimension mismatch")

	// ErrBadStepMax indicates a step bound that is not finite and > 0.
	ErrBadStepMax = errors.New("linesearch: stepMax must be finite and > 0")
)

// failure ties a specific cause to ErrLineSearch.
func failure(cause error) error {
	return fmt.Errorf("%w: %w", ErrLineSearch, cause)
}
