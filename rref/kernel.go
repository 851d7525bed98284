// SPDX-License-Identifier: MIT
// Package rref: kernel (null space) extraction from the reduced form.

package rref

import "github.com/katalvlaran/lvlinalg/vector"

// Kernel returns a basis of the null space of the input matrix, one vector
// per free (non-pivot) column. The reduction is driven to ReducedEchelon
// first when needed. A full-column-rank matrix yields an empty basis.
//
// Construction, read directly off the reduced form: basis vector b for free
// column f has b[f] = 1, b[pivotCols[k]] = -work[pivotRows[k]][f] for every
// pivot k, and 0 elsewhere. Substituting shows A·b = 0.
func (r *Reducer) Kernel() []vector.Vector {
	r.ToReducedEchelon()

	cols := r.work.Cols()
	isPivotCol := make([]bool, cols)
	for _, pc := range r.pivotCols {
		isPivotCol[pc] = true
	}

	basis := make([]vector.Vector, 0, cols-len(r.pivotCols))
	for f := 0; f < cols; f++ {
		if isPivotCol[f] {
			continue
		}

		b := vector.New(cols)
		b[f] = 1
		for k := range r.pivotRows {
			v, _ := r.work.At(r.pivotRows[k], f)
			b[r.pivotCols[k]] = -v
		}
		basis = append(basis, b)
	}

	return basis
}
