// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered conditions;
// panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the call site — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or
	// c<=0) or an input grid is ragged. Constructors validate before
	// allocating.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) and row operations MUST return this,
	// not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub with different shapes, Mul where a.Cols != b.Rows,
	// Augment with different row counts, MatVec with a wrong vector length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (determinant,
	// inversion, similarity transform) but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrZeroScalar is returned by ScaleRow when the scaling factor is below
	// tolerance — scaling a row by ~0 would degenerate it irreversibly.
	ErrZeroScalar = errors.New("matrix: scaling factor too small")

	// ErrSingular is returned when inversion (or a block row scaling) meets
	// a matrix whose determinant is below tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was
	// passed where a value is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotImplemented marks an intentionally unsupported operation on the
	// matrix surface (currently the diagonalizability test).
	ErrNotImplemented = errors.New("matrix: operation not implemented")
)
