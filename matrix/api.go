// SPDX-License-Identifier: MIT
// Package matrix: thin convenience layer over the constructors and kernels.
// Nothing here adds semantics — only ergonomic shapes for common calls.

package matrix

// NewZeros returns a zero-filled r×c matrix (alias of NewDense).
func NewZeros(r, c int) (*Dense, error) { return NewDense(r, c) }

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil("ZerosLike", m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns an identity matrix with m's row count.
// Returns ErrNonSquare when m is not square.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare("IdentityLike", m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}

// CloneMatrix deep-copies any Matrix into a concrete *Dense.
func CloneMatrix(m Matrix) (*Dense, error) {
	if err := ValidateNotNil("CloneMatrix", m); err != nil {
		return nil, err
	}

	return toDense(m), nil
}

// T is shorthand for Transpose.
func T(a Matrix) (*Dense, error) { return Transpose(a) }
