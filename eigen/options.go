// SPDX-License-Identifier: MIT
// Package eigen: functional options, mirroring the matrix package pattern.

package eigen

import "math"

const (
	// DefaultEpsilon is the tolerance for degenerate Gram–Schmidt residuals
	// and for the kernel extraction of A−λI.
	DefaultEpsilon = 1e-9

	// DefaultMaxIterations bounds the QR iteration. There is no convergence
	// test; the count is the only stopping rule.
	DefaultMaxIterations = 1000
)

// Options carries the numeric policy of one decomposition.
type Options struct {
	eps     float64
	maxIter int
}

// Option mutates Options.
type Option func(*Options)

// WithEpsilon overrides the zero-tolerance.
// Panics when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("eigen: WithEpsilon requires a finite, non-negative tolerance")
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations overrides the QR iteration count.
// Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("eigen: WithMaxIterations requires a positive count")
	}

	return func(o *Options) { o.maxIter = n }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, maxIter: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
