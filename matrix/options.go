// SPDX-License-Identifier: MIT
// Package matrix - functional options and numeric policy defaults.
//
// Purpose:
//   - Keep the single numeric tolerance of the solver stack in ONE place.
//   - Offer functional options (Option func(*Options)) with
//     last-writer-wins semantics.
//
// AI-Hints:
//   - Downstream packages (gaussjordan, linsys) reuse DefaultEpsilon so that
//     pivot skipping, normalization short-circuits and classification agree.

package matrix

import "math"

// Numeric defaults.
const (
	// DefaultEpsilon is the tolerance for every magnitude comparison in the
	// elimination and classification paths (|x| ≤ eps ⇒ treated as zero).
	DefaultEpsilon = 1e-10

	// DefaultValidateNaNInf rejects NaN/±Inf on Set and ingestion.
	DefaultValidateNaNInf = true

	// DefaultRcond is the relative cutoff for small singular values in
	// PseudoInverse (σ ≤ rcond·σmax ⇒ treated as zero).
	DefaultRcond = 1e-15
)

// Option mutates Options during construction.
type Option func(*Options)

// Options holds the ingestion policy of NewDenseFromRows.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithNoValidateNaNInf disables the finite-only policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
