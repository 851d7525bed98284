// SPDX-License-Identifier: MIT
// Package matrix: public abstractions and the dense row-major carrier.
// Kernels accept the Matrix interface and return concrete *Dense values;
// *Dense operands unlock flat-slice fast paths inside the kernels.

package matrix

// Matrix is the minimal read/write surface every kernel in this package
// (and the reduction/factorization packages above it) operates on.
//
// Contract:
//   - Rows()/Cols() are O(1) and never fail.
//   - At/Set return ErrOutOfRange for indices outside [0,Rows)×[0,Cols);
//     they never panic.
//   - Clone returns a deep, independent copy.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)
	// Set stores v at (i, j) or returns ErrOutOfRange.
	Set(i, j int, v float64) error
	// Clone returns a deep copy sharing no storage with the receiver.
	Clone() Matrix
}

// Dense is a dense, row-major float64 matrix: element (i, j) lives at
// data[i*c+j]. The zero value is an empty 0×0 matrix, which is also the
// state a source is left in after Move.
type Dense struct {
	r, c int
	data []float64
}

// compile-time interface conformance
var _ Matrix = (*Dense)(nil)
