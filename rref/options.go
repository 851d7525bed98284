// SPDX-License-Identifier: MIT
// Package rref: functional options, mirroring the matrix package pattern.

package rref

import "math"

// DefaultEpsilon is the tolerance under which a pivot candidate (and, after
// the reduced pass, any residue) is treated as zero.
const DefaultEpsilon = 1e-9

// Options carries the numeric policy of one Reducer.
type Options struct {
	eps float64
}

// Option mutates Options.
type Option func(*Options)

// WithEpsilon overrides the zero-tolerance.
// Panics when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("rref: WithEpsilon requires a finite, non-negative tolerance")
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
