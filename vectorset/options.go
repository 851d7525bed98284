// SPDX-License-Identifier: MIT
// Package vectorset: functional options, mirroring the matrix package
// pattern plus the Gram–Schmidt normalization knob.

package vectorset

import "math"

// DefaultEpsilon is the tolerance under which a Gram–Schmidt residual (or a
// pivot candidate during rank computation) is treated as zero.
const DefaultEpsilon = 1e-9

// Options carries the numeric policy of one Set or one orthogonalization.
type Options struct {
	eps       float64
	epsSet    bool // WithEpsilon was supplied, even with the default value
	normalize bool
}

// Option mutates Options.
type Option func(*Options)

// WithEpsilon overrides the zero-tolerance.
// Panics when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("vectorset: WithEpsilon requires a finite, non-negative tolerance")
	}

	return func(o *Options) {
		o.eps = eps
		o.epsSet = true
	}
}

// WithNormalize makes GramSchmidt return an orthonormal family instead of a
// merely orthogonal one.
func WithNormalize() Option {
	return func(o *Options) { o.normalize = true }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
