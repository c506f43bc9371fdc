// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - validateNaNInf controls whether Set() rejects NaN/±Inf. Finite-difference
//     Jacobians are built with the policy OFF: a non-finite entry is the
//     caller's concern there and is rejected later by PseudoInverse.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation (the default).
//
// Complexity:
//   - Time O(1), Space O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation in Set.
// Use when a matrix may legitimately hold NaN/±Inf that a later stage
// (e.g., PseudoInverse) is responsible for rejecting.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
