// SPDX-License-Identifier: MIT
// Package rref: the two reduction passes.
// Everything here is expressed through the elementary row operations of the
// matrix package; shape validity is guaranteed by construction, so row-op
// errors cannot occur and are discarded.

package rref

import "math"

// ToEchelon drives the working copy to row echelon form with partial
// pivoting. Idempotent: a Reducer at Echelon or beyond is left untouched.
func (r *Reducer) ToEchelon() {
	if r.state >= Echelon {
		return
	}

	w := r.work
	rows, cols := w.Rows(), w.Cols()
	row := 0
	for col := 0; col < cols && row < rows; col++ {
		// largest |entry| at or below the cursor wins the pivot
		pivot, best := row, 0.0
		for i := row; i < rows; i++ {
			v, _ := w.At(i, col)
			if a := math.Abs(v); a > best {
				best, pivot = a, i
			}
		}
		if best < r.eps {
			// no usable pivot: the column is dependent, move right
			continue
		}

		_ = w.SwapRows(row, pivot)
		r.pivotRows = append(r.pivotRows, row)
		r.pivotCols = append(r.pivotCols, col)

		p, _ := w.At(row, col)
		for i := row + 1; i < rows; i++ {
			v, _ := w.At(i, col)
			_ = w.AddScaledRow(i, row, -v/p, r.eps)
			// the eliminated entry is zero by construction; store it exactly
			_ = w.Set(i, col, 0)
		}
		row++
	}

	r.state = Echelon
}

// ToReducedEchelon drives the working copy to reduced row echelon form:
// pivots scaled to exactly 1, pivot columns cleared above, and every
// sub-tolerance residue snapped to 0. Runs the echelon pass first when
// needed. Idempotent.
func (r *Reducer) ToReducedEchelon() {
	if r.state >= ReducedEchelon {
		return
	}
	r.ToEchelon()

	w := r.work
	// back-substitution, last pivot first
	for k := len(r.pivotRows) - 1; k >= 0; k-- {
		pr, pc := r.pivotRows[k], r.pivotCols[k]
		p, _ := w.At(pr, pc)
		// divide rather than multiply by 1/p: a pivot above 1/eps would make
		// the reciprocal fail the zero-factor guard of ScaleRow
		for j := 0; j < w.Cols(); j++ {
			v, _ := w.At(pr, j)
			_ = w.Set(pr, j, v/p)
		}
		_ = w.Set(pr, pc, 1)

		for i := pr - 1; i >= 0; i-- {
			v, _ := w.At(i, pc)
			_ = w.AddScaledRow(i, pr, -v, r.eps)
			_ = w.Set(i, pc, 0)
		}
	}

	// final snap: elimination residues below tolerance become exact zeros
	for i := 0; i < w.Rows(); i++ {
		for j := 0; j < w.Cols(); j++ {
			v, _ := w.At(i, j)
			if math.Abs(v) < r.eps {
				_ = w.Set(i, j, 0)
			}
		}
	}

	r.state = ReducedEchelon
}
