// SPDX-License-Identifier: MIT
// Package blockmatrix: elementary block matrices. Left-multiplying by one
// of these performs the corresponding block row operation, mirroring the
// scalar elementary matrices of Gaussian elimination.

package blockmatrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// SwapMatrix returns the n×n block identity with grid rows i and j
// exchanged: E·B equals B with block rows i and j swapped. Blocks are r×r.
func SwapMatrix(n, r, i, j int) (*Block, error) {
	e, err := Identity(n, r)
	if err != nil {
		return nil, err
	}
	if err = e.SwapBlockRows(i, j); err != nil {
		return nil, err
	}

	return e, nil
}

// ScaleMatrix returns the n×n block identity whose (i, i) block is s:
// E·B equals B with grid row i left-multiplied by s. The multiplier must
// be r×r and invertible within eps (pass eps <= 0 for the default), or
// ErrSingular is returned.
func ScaleMatrix(n, r, i int, s matrix.Matrix, eps float64) (*Block, error) {
	e, err := Identity(n, r)
	if err != nil {
		return nil, err
	}
	if err = e.validateBlockRow("ScaleMatrix", i); err != nil {
		return nil, err
	}
	if err = e.validateMultiplier("ScaleMatrix", s); err != nil {
		return nil, err
	}
	if eps <= 0 {
		eps = matrix.DefaultEpsilon
	}

	det, err := matrix.Determinant(s, matrix.WithEpsilon(eps))
	if err != nil {
		return nil, err
	}
	if det == 0 {
		return nil, fmt.Errorf("ScaleMatrix(%d): %w", i, ErrSingular)
	}

	return e, e.Set(i, i, s)
}

// AddMatrix returns the n×n block identity whose (dst, src) block is s:
// E·B equals B with s·row(src) accumulated into row(dst). Any r×r
// multiplier is accepted, singular ones included.
func AddMatrix(n, r, dst, src int, s matrix.Matrix) (*Block, error) {
	if dst == src {
		return nil, fmt.Errorf("AddMatrix: dst == src (%d): %w", dst, ErrDimensionMismatch)
	}
	e, err := Identity(n, r)
	if err != nil {
		return nil, err
	}
	if err = e.validateBlockRow("AddMatrix", dst); err != nil {
		return nil, err
	}
	if err = e.validateBlockRow("AddMatrix", src); err != nil {
		return nil, err
	}
	if err = e.validateMultiplier("AddMatrix", s); err != nil {
		return nil, err
	}

	return e, e.Set(dst, src, s)
}
