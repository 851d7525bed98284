// SPDX-License-Identifier: MIT
// Package blockmatrix: block analogues of the elementary row operations.

package blockmatrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// ErrSingular is returned by ScaleBlockRow for a non-invertible multiplier:
// the block analogue of scaling a scalar row by zero.
var ErrSingular = errors.New("blockmatrix: singular block multiplier")

// SwapBlockRows exchanges grid rows i and j in place.
// Returns ErrOutOfRange for invalid indices.
func (b *Block) SwapBlockRows(i, j int) error {
	if err := b.validateBlockRow("SwapBlockRows", i); err != nil {
		return err
	}
	if err := b.validateBlockRow("SwapBlockRows", j); err != nil {
		return err
	}
	if i == j {
		return nil
	}

	for k := 0; k < b.bC; k++ {
		b.cells[i*b.bC+k], b.cells[j*b.bC+k] = b.cells[j*b.bC+k], b.cells[i*b.bC+k]
	}

	return nil
}

// ScaleBlockRow left-multiplies every cell of grid row i by s in place.
// s must be square, match the block row size, and be invertible within eps
// (pass eps <= 0 for the default): an equivalence transform needs an
// invertible multiplier just as a scalar row scaling needs a nonzero
// factor. Returns ErrSingular otherwise.
func (b *Block) ScaleBlockRow(i int, s matrix.Matrix, eps float64) error {
	if err := b.validateBlockRow("ScaleBlockRow", i); err != nil {
		return err
	}
	if err := b.validateMultiplier("ScaleBlockRow", s); err != nil {
		return err
	}
	if eps <= 0 {
		eps = matrix.DefaultEpsilon
	}

	det, err := matrix.Determinant(s, matrix.WithEpsilon(eps))
	if err != nil {
		return err
	}
	if det == 0 {
		return fmt.Errorf("ScaleBlockRow(%d): %w", i, ErrSingular)
	}

	for k := 0; k < b.bC; k++ {
		prod, mErr := matrix.Mul(s, b.cells[i*b.bC+k])
		if mErr != nil {
			return mErr
		}
		b.cells[i*b.bC+k] = prod
	}

	return nil
}

// AddScaledBlockRow accumulates s·row(src) into row(dst) in place:
// dst[k] += s·src[k] for every grid column k. The multiplier may be any
// square matrix of the block row size, including a singular one — adding a
// degenerate multiple is still an equivalence transform.
func (b *Block) AddScaledBlockRow(dst, src int, s matrix.Matrix) error {
	if err := b.validateBlockRow("AddScaledBlockRow", dst); err != nil {
		return err
	}
	if err := b.validateBlockRow("AddScaledBlockRow", src); err != nil {
		return err
	}
	if err := b.validateMultiplier("AddScaledBlockRow", s); err != nil {
		return err
	}

	for k := 0; k < b.bC; k++ {
		prod, err := matrix.Mul(s, b.cells[src*b.bC+k])
		if err != nil {
			return err
		}
		sum, err := matrix.Add(b.cells[dst*b.bC+k], prod)
		if err != nil {
			return err
		}
		b.cells[dst*b.bC+k] = sum
	}

	return nil
}

func (b *Block) validateBlockRow(op string, i int) error {
	if i < 0 || i >= b.bR {
		return fmt.Errorf("%s: row %d on %dx%d grid: %w", op, i, b.bR, b.bC, ErrOutOfRange)
	}

	return nil
}

func (b *Block) validateMultiplier(op string, s matrix.Matrix) error {
	if s == nil || s.Rows() != s.Cols() || s.Rows() != b.r {
		return fmt.Errorf("%s: %w", op, ErrDimensionMismatch)
	}

	return nil
}
