// SPDX-License-Identifier: MIT
// Package matrix: square-matrix routines — determinant, inversion,
// similarity transform, structural predicates and the rank normal form.
// All of them are expressed through the elementary row operations above,
// with partial pivoting wherever elimination happens.

package matrix

import "math"

const (
	opDeterminant         = "Determinant"
	opInverse             = "Inverse"
	opSimilarityTransform = "SimilarityTransform"
	opIsSymmetric         = "IsSymmetric"
	opIsSkewSymmetric     = "IsSkewSymmetric"
	opIsOrthogonal        = "IsOrthogonal"
	opIsDiagonalizable    = "IsDiagonalizable"
	opRankNormalForm      = "RankNormalForm"
)

// Determinant computes det(a) by partial-pivoted triangularization on a
// working copy. A pivot below tolerance means a dependent row, and the
// determinant is an exact 0 — likewise a final product that lands below
// tolerance is snapped to 0 rather than reported as numeric dust.
// Returns ErrNonSquare for non-square input.
func Determinant(a Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquare(opDeterminant, a); err != nil {
		return 0, err
	}
	o := gatherOptions(opts...)

	w := toDense(a)
	n := w.r
	det := 1.0
	for col := 0; col < n; col++ {
		// partial pivoting: the largest |entry| at or below the diagonal
		pivot := col
		best := math.Abs(w.data[col*n+col])
		for i := col + 1; i < n; i++ {
			if v := math.Abs(w.data[i*n+col]); v > best {
				best, pivot = v, i
			}
		}
		if best < o.eps {
			return 0, nil
		}
		if pivot != col {
			_ = w.SwapRows(col, pivot)
			det = -det
		}

		p := w.data[col*n+col]
		det *= p
		for i := col + 1; i < n; i++ {
			factor := w.data[i*n+col] / p
			_ = w.AddScaledRow(i, col, -factor, o.eps)
			w.data[i*n+col] = 0
		}
	}

	if math.Abs(det) < o.eps {
		return 0, nil
	}

	return det, nil
}

// Inverse computes a⁻¹ by Gauss–Jordan elimination on the augmentation
// [a | I], with the same partial pivoting discipline as Determinant.
// Returns ErrNonSquare for non-square input and ErrSingular when a pivot
// column collapses below tolerance.
func Inverse(a Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(opInverse, a); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	n := a.Rows()
	id, _ := NewIdentity(n)
	w, err := Augment(a, id)
	if err != nil {
		return nil, err
	}

	wc := w.c
	for col := 0; col < n; col++ {
		pivot := col
		best := math.Abs(w.data[col*wc+col])
		for i := col + 1; i < n; i++ {
			if v := math.Abs(w.data[i*wc+col]); v > best {
				best, pivot = v, i
			}
		}
		if best < o.eps {
			return nil, validatorErrorf(opInverse, ErrSingular)
		}
		_ = w.SwapRows(col, pivot)

		// divide rather than multiply by 1/p: a pivot above 1/eps would make
		// the reciprocal fail the zero-factor guard of ScaleRow
		p := w.data[col*wc+col]
		for k := col * wc; k < (col+1)*wc; k++ {
			w.data[k] /= p
		}
		w.data[col*wc+col] = 1
		for i := 0; i < n; i++ {
			if i == col {
				continue
			}
			factor := w.data[i*wc+col]
			_ = w.AddScaledRow(i, col, -factor, o.eps)
			w.data[i*wc+col] = 0
		}
	}

	// right half of the augmentation is the inverse
	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], w.data[i*wc+n:(i+1)*wc])
	}

	return inv, nil
}

// SimilarityTransform computes p⁻¹·a·p — the coordinates of the linear map
// a in the basis given by the columns of p.
// Returns ErrNonSquare or ErrDimensionMismatch on shape disagreement and
// ErrSingular when p cannot be inverted.
func SimilarityTransform(a, p Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(opSimilarityTransform, a); err != nil {
		return nil, err
	}
	if err := ValidateSameShape(opSimilarityTransform, a, p); err != nil {
		return nil, err
	}

	pInv, err := Inverse(p, opts...)
	if err != nil {
		return nil, err
	}
	ap, err := Mul(a, p)
	if err != nil {
		return nil, err
	}

	return Mul(pInv, ap)
}

// IsSquare reports whether m has as many rows as columns.
func IsSquare(m Matrix) bool {
	return m != nil && m.Rows() == m.Cols()
}

// IsSymmetric reports whether a equals its transpose within eps.
// A non-square matrix is simply not symmetric — no error.
func IsSymmetric(a Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(opIsSymmetric, a); err != nil {
		return false, err
	}
	if !IsSquare(a) {
		return false, nil
	}
	o := gatherOptions(opts...)

	n := a.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			x, _ := a.At(i, j)
			y, _ := a.At(j, i)
			if math.Abs(x-y) > o.eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsSkewSymmetric reports whether aᵀ == -a within eps (in particular the
// diagonal must vanish). A non-square matrix is not skew-symmetric.
func IsSkewSymmetric(a Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(opIsSkewSymmetric, a); err != nil {
		return false, err
	}
	if !IsSquare(a) {
		return false, nil
	}
	o := gatherOptions(opts...)

	n := a.Rows()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			x, _ := a.At(i, j)
			y, _ := a.At(j, i)
			if math.Abs(x+y) > o.eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsOrthogonal reports whether aᵀ·a == I within eps.
// Returns ErrNonSquare for non-square input.
func IsOrthogonal(a Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquare(opIsOrthogonal, a); err != nil {
		return false, err
	}
	o := gatherOptions(opts...)

	at, err := Transpose(a)
	if err != nil {
		return false, err
	}
	prod, err := Mul(at, a)
	if err != nil {
		return false, err
	}

	n := prod.r
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(prod.data[i*n+j]-want) > o.eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsDiagonalizable is reserved: deciding diagonalizability needs eigenvalue
// multiplicities and eigenspace dimensions, which the unshifted iteration
// in the eigen package cannot certify reliably.
// Always returns ErrNotImplemented.
func IsDiagonalizable(a Matrix, opts ...Option) (bool, error) {
	return false, validatorErrorf(opIsDiagonalizable, ErrNotImplemented)
}

// RankNormalForm returns the canonical form [[I_r, 0], [0, 0]] of a, where
// r is the rank of a computed by partial-pivoted elimination.
func RankNormalForm(a Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(opRankNormalForm, a); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	r := echelonRank(toDense(a), o.eps)
	out := &Dense{r: a.Rows(), c: a.Cols(), data: make([]float64, a.Rows()*a.Cols())}
	for i := 0; i < r; i++ {
		out.data[i*out.c+i] = 1
	}

	return out, nil
}

// toDense materializes any Matrix as a private working *Dense copy.
func toDense(a Matrix) *Dense {
	if d, ok := a.(*Dense); ok {
		return d.CloneDense()
	}
	out := &Dense{r: a.Rows(), c: a.Cols(), data: make([]float64, a.Rows()*a.Cols())}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			v, _ := a.At(i, j)
			out.data[i*out.c+j] = v
		}
	}

	return out
}

// echelonRank destructively reduces w to row echelon form with partial
// pivoting and returns the number of pivots found. A column whose best
// candidate is below eps contributes no pivot and elimination moves on.
func echelonRank(w *Dense, eps float64) int {
	row := 0
	for col := 0; col < w.c && row < w.r; col++ {
		pivot := row
		best := math.Abs(w.data[row*w.c+col])
		for i := row + 1; i < w.r; i++ {
			if v := math.Abs(w.data[i*w.c+col]); v > best {
				best, pivot = v, i
			}
		}
		if best < eps {
			continue
		}
		_ = w.SwapRows(row, pivot)

		p := w.data[row*w.c+col]
		for i := row + 1; i < w.r; i++ {
			factor := w.data[i*w.c+col] / p
			_ = w.AddScaledRow(i, row, -factor, eps)
			w.data[i*w.c+col] = 0
		}
		row++
	}

	return row
}
