// SPDX-License-Identifier: MIT
// Package matrix: functional options shared by every tolerance-sensitive
// entry point (Determinant, Inverse, IsSymmetric, ...). The reduction and
// factorization packages re-export the same pattern with their own knobs.

package matrix

import "math"

// DefaultEpsilon is the package-wide tolerance: any magnitude below it is
// treated as an exact zero by pivot selection, symmetry predicates and
// determinant snapping.
const DefaultEpsilon = 1e-9

// Options carries the numeric policy of a single call.
type Options struct {
	eps float64
}

// Option mutates Options. Options are gathered fresh per call; a misuse is
// a programmer error and panics immediately rather than corrupting results.
type Option func(*Options)

// WithEpsilon overrides the zero-tolerance for one call.
// Panics when eps is negative, NaN or infinite — such a tolerance can only
// come from a bug at the call site.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("matrix: WithEpsilon requires a finite, non-negative tolerance")
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
