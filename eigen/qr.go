// SPDX-License-Identifier: MIT
// Package eigen: QR factorization by classical Gram–Schmidt.

package eigen

import (
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/vector"
)

// QRPair holds one factorization A = Q·R.
type QRPair struct {
	// Q has orthonormal columns when A has full column rank; a dependent
	// column of A leaves a degenerate near-zero column in Q.
	Q *matrix.Dense
	// R is upper triangular with an exactly zero strict lower triangle.
	R *matrix.Dense
}

// QR factors a square matrix by classical Gram–Schmidt.
// A column whose residual collapses below tolerance is dependent on its
// predecessors; the unnormalized residual is kept as a degenerate Q column
// and the factorization proceeds — the caller sees the degeneracy in Q, not
// an error. Returns matrix.ErrNonSquare for non-square input.
func QR(a matrix.Matrix, opts ...Option) (QRPair, error) {
	if err := matrix.ValidateSquare("QR", a); err != nil {
		return QRPair{}, err
	}
	o := gatherOptions(opts...)

	n := a.Rows()
	cols := make([]vector.Vector, n)
	for j := 0; j < n; j++ {
		c, err := matrix.Column(a, j)
		if err != nil {
			return QRPair{}, err
		}
		cols[j] = c
	}

	// orthogonalize column by column
	qcols := make([]vector.Vector, n)
	for j := 0; j < n; j++ {
		u := cols[j].Clone()
		for k := 0; k < j; k++ {
			d, err := u.Dot(qcols[k])
			if err != nil {
				return QRPair{}, err
			}
			if err = u.SubInPlace(qcols[k].Scale(d)); err != nil {
				return QRPair{}, err
			}
		}
		if norm := u.Norm(); norm >= o.eps {
			u.ScaleInPlace(1 / norm)
		}
		// a sub-tolerance residual stays unnormalized: the column was
		// dependent and Q carries the degeneracy
		qcols[j] = u
	}

	q, err := matrix.NewDense(n, n)
	if err != nil {
		return QRPair{}, err
	}
	for j, u := range qcols {
		for i, x := range u {
			_ = q.Set(i, j, x)
		}
	}

	// R = Qᵀ·A, with the strict lower triangle pinned to exact zeros
	qt, err := matrix.Transpose(q)
	if err != nil {
		return QRPair{}, err
	}
	r, err := matrix.Mul(qt, a)
	if err != nil {
		return QRPair{}, err
	}
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			_ = r.Set(i, j, 0)
		}
	}

	return QRPair{Q: q, R: r}, nil
}
