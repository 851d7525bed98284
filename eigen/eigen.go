// SPDX-License-Identifier: MIT
// Package eigen: the unshifted QR iteration and eigenvector extraction.

package eigen

import (
	"math"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/rref"
	"github.com/katalvlaran/lvlinalg/vector"
)

// Result pairs each approximated eigenvalue with one eigenvector slot.
type Result struct {
	// Values holds the diagonal of the final QR iterate, in row order.
	Values vector.Vector
	// Vectors[i] is an eigenvector for Values[i] — normalized when its norm
	// allows it. A value repeated within tolerance walks further into the
	// kernel basis of A−λI, so a k-fold eigenvalue with a k-dimensional
	// eigenspace yields k independent vectors spanning it. A slot whose
	// kernel ran out (or came back empty) holds a zero-vector placeholder.
	Vectors []vector.Vector
}

// Decompose approximates the eigenvalues and eigenvectors of a square
// matrix by the unshifted QR iteration: A ← R·Q for a fixed number of
// iterations, then eigenvalues from the diagonal and eigenvectors from the
// kernel of A−λI. Returns matrix.ErrNonSquare for non-square input.
//
// The result is approximate — see the package comment for the complex-pair
// limitation.
func Decompose(a matrix.Matrix, opts ...Option) (Result, error) {
	if err := matrix.ValidateSquare("Decompose", a); err != nil {
		return Result{}, err
	}
	o := gatherOptions(opts...)

	iter, err := matrix.CloneMatrix(a)
	if err != nil {
		return Result{}, err
	}
	for k := 0; k < o.maxIter; k++ {
		pair, qrErr := QR(iter, WithEpsilon(o.eps))
		if qrErr != nil {
			return Result{}, qrErr
		}
		// R·Q = Qᵀ·A·Q keeps the spectrum while pushing mass below the
		// diagonal toward zero
		iter, err = matrix.Mul(pair.R, pair.Q)
		if err != nil {
			return Result{}, err
		}
	}

	n := a.Rows()
	values := vector.New(n)
	for i := 0; i < n; i++ {
		v, atErr := iter.At(i, i)
		if atErr != nil {
			return Result{}, atErr
		}
		values[i] = v
	}

	vectors := make([]vector.Vector, n)
	for i, lambda := range values {
		// the k-th repetition of a value claims the k-th kernel basis member
		ordinal := 0
		for j := 0; j < i; j++ {
			if math.Abs(values[j]-lambda) < o.eps {
				ordinal++
			}
		}
		vectors[i], err = eigenvectorFor(a, lambda, o.eps, ordinal)
		if err != nil {
			return Result{}, err
		}
	}

	return Result{Values: values, Vectors: vectors}, nil
}

// Values is a facade returning only the eigenvalue approximates.
func Values(a matrix.Matrix, opts ...Option) (vector.Vector, error) {
	res, err := Decompose(a, opts...)
	if err != nil {
		return nil, err
	}

	return res.Values, nil
}

// eigenvectorFor extracts the ordinal-th kernel basis vector of A−λI, so
// repeated eigenvalues receive distinct members of their shared eigenspace.
// A kernel that is empty — λ not exact enough to make the shift
// near-singular — or too small for the ordinal yields a zero placeholder,
// so every eigenvalue keeps its slot.
func eigenvectorFor(a matrix.Matrix, lambda, eps float64, ordinal int) (vector.Vector, error) {
	id, err := matrix.IdentityLike(a)
	if err != nil {
		return nil, err
	}
	scaledID, err := matrix.Scale(id, lambda)
	if err != nil {
		return nil, err
	}
	shifted, err := matrix.Sub(a, scaledID)
	if err != nil {
		return nil, err
	}

	red, err := rref.New(shifted, rref.WithEpsilon(eps))
	if err != nil {
		return nil, err
	}
	kernel := red.Kernel()
	if ordinal >= len(kernel) {
		return vector.New(a.Cols()), nil
	}

	v := kernel[ordinal]
	if u, nErr := v.Normalized(); nErr == nil {
		return u, nil
	}

	// norm below tolerance: hand back the raw kernel vector unchanged
	return v, nil
}
