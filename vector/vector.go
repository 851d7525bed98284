// SPDX-License-Identifier: MIT
// Package vector: dense float64 vectors and their atomic operations.
// Higher-level, set-level analysis (independence, bases, Gram–Schmidt)
// lives in the vectorset package; this file is dependency-free on purpose.

package vector

import (
	"errors"
	"math"
)

// DefaultEpsilon is the tolerance under which a scalar or a norm is treated
// as zero by Div and Normalized.
const DefaultEpsilon = 1e-9

var (
	// ErrLengthMismatch is returned when two vectors of different lengths
	// are combined (Add, Sub, Dot, ...).
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrZeroScalar is returned by Div when the divisor is below tolerance.
	ErrZeroScalar = errors.New("vector: scalar too small")

	// ErrZeroVector is returned by Normalized when the norm is below
	// tolerance and a unit vector cannot be produced.
	ErrZeroVector = errors.New("vector: cannot normalize zero vector")
)

// Vector is a dense vector of float64 components.
type Vector []float64

// New returns a zero-initialized vector of length n.
// n <= 0 yields an empty (nil-like) vector; callers validate upstream.
func New(n int) Vector {
	if n <= 0 {
		return Vector{}
	}

	return make(Vector, n)
}

// Of builds a vector from the given components.
// The arguments are copied; the result does not alias the caller's slice.
func Of(values ...float64) Vector {
	v := make(Vector, len(values))
	copy(v, values)

	return v
}

// Clone returns an independent deep copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Len returns the number of components.
func (v Vector) Len() int { return len(v) }

// Add returns v + w as a fresh vector.
// Returns ErrLengthMismatch when lengths differ.
func (v Vector) Add(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, ErrLengthMismatch
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}

	return out, nil
}

// Sub returns v - w as a fresh vector.
// Returns ErrLengthMismatch when lengths differ.
func (v Vector) Sub(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, ErrLengthMismatch
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - w[i]
	}

	return out, nil
}

// Scale returns s·v as a fresh vector.
func (v Vector) Scale(s float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * s
	}

	return out
}

// Div returns v / s as a fresh vector.
// |s| < DefaultEpsilon is a hard error: a near-zero divisor would blow the
// components up into numeric noise.
func (v Vector) Div(s float64) (Vector, error) {
	if math.Abs(s) < DefaultEpsilon {
		return nil, ErrZeroScalar
	}

	return v.Scale(1 / s), nil
}

// AddInPlace accumulates w into v without allocating.
// Returns ErrLengthMismatch when lengths differ; v is untouched on error.
func (v Vector) AddInPlace(w Vector) error {
	if len(v) != len(w) {
		return ErrLengthMismatch
	}
	for i := range v {
		v[i] += w[i]
	}

	return nil
}

// SubInPlace subtracts w from v without allocating.
// Returns ErrLengthMismatch when lengths differ; v is untouched on error.
func (v Vector) SubInPlace(w Vector) error {
	if len(v) != len(w) {
		return ErrLengthMismatch
	}
	for i := range v {
		v[i] -= w[i]
	}

	return nil
}

// ScaleInPlace multiplies every component of v by s without allocating.
func (v Vector) ScaleInPlace(s float64) {
	for i := range v {
		v[i] *= s
	}
}

// Dot returns the inner product ⟨v, w⟩.
// Returns ErrLengthMismatch when lengths differ.
func (v Vector) Dot(w Vector) (float64, error) {
	if len(v) != len(w) {
		return 0, ErrLengthMismatch
	}
	var sum float64
	for i := range v {
		sum += v[i] * w[i]
	}

	return sum, nil
}

// Norm returns the Euclidean (L2) norm of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// MaxAbs returns the largest absolute component of v (the L∞ norm).
// An empty vector yields 0.
func (v Vector) MaxAbs() float64 {
	var max float64
	for _, x := range v {
		if a := math.Abs(x); a > max {
			max = a
		}
	}

	return max
}

// Normalized returns v scaled to unit norm as a fresh vector.
// Returns ErrZeroVector when the norm is below DefaultEpsilon.
func (v Vector) Normalized() (Vector, error) {
	n := v.Norm()
	if n < DefaultEpsilon {
		return nil, ErrZeroVector
	}

	return v.Scale(1 / n), nil
}

// IsOrthogonalTo reports whether ⟨v, w⟩ is zero within eps.
// Returns ErrLengthMismatch when lengths differ.
func (v Vector) IsOrthogonalTo(w Vector, eps float64) (bool, error) {
	d, err := v.Dot(w)
	if err != nil {
		return false, err
	}

	return math.Abs(d) < eps, nil
}
