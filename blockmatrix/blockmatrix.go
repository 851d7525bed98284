// SPDX-License-Identifier: MIT
// Package blockmatrix: the Block grid — construction, access, arithmetic.

package blockmatrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
)

var (
	// ErrBadGrid is returned when a grid shape or a block shape is invalid,
	// or when the supplied blocks disagree on shape.
	ErrBadGrid = errors.New("blockmatrix: invalid block grid")

	// ErrOutOfRange indicates a block index outside the grid.
	ErrOutOfRange = errors.New("blockmatrix: block index out of range")

	// ErrDimensionMismatch indicates incompatible grids or multipliers.
	ErrDimensionMismatch = errors.New("blockmatrix: dimension mismatch")
)

// Block is a bR×bC grid of equally-shaped r×c dense blocks.
type Block struct {
	bR, bC int // grid shape
	r, c   int // shape of every block
	cells  []*matrix.Dense
}

// New returns a block matrix of bR×bC zero blocks, each r×c.
// Returns ErrBadGrid when any dimension is non-positive.
func New(bR, bC, r, c int) (*Block, error) {
	if bR <= 0 || bC <= 0 || r <= 0 || c <= 0 {
		return nil, fmt.Errorf("New(%d, %d, %d, %d): %w", bR, bC, r, c, ErrBadGrid)
	}

	b := &Block{bR: bR, bC: bC, r: r, c: c, cells: make([]*matrix.Dense, bR*bC)}
	for i := range b.cells {
		z, err := matrix.NewZeros(r, c)
		if err != nil {
			return nil, err
		}
		b.cells[i] = z
	}

	return b, nil
}

// FromGrid builds a block matrix from a grid of matrices, deep-copying each
// cell. Every cell must share one shape; nil cells and ragged grids are
// rejected with ErrBadGrid.
func FromGrid(grid [][]matrix.Matrix) (*Block, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("FromGrid: %w", ErrBadGrid)
	}
	bC := len(grid[0])
	first := grid[0][0]
	if first == nil {
		return nil, fmt.Errorf("FromGrid: nil cell (0, 0): %w", ErrBadGrid)
	}
	r, c := first.Rows(), first.Cols()

	b := &Block{bR: len(grid), bC: bC, r: r, c: c, cells: make([]*matrix.Dense, len(grid)*bC)}
	for i, row := range grid {
		if len(row) != bC {
			return nil, fmt.Errorf("FromGrid: grid row %d has %d cells, want %d: %w",
				i, len(row), bC, ErrBadGrid)
		}
		for j, cell := range row {
			if cell == nil {
				return nil, fmt.Errorf("FromGrid: nil cell (%d, %d): %w", i, j, ErrBadGrid)
			}
			if cell.Rows() != r || cell.Cols() != c {
				return nil, fmt.Errorf("FromGrid: cell (%d, %d) is %dx%d, want %dx%d: %w",
					i, j, cell.Rows(), cell.Cols(), r, c, ErrBadGrid)
			}
			d, err := matrix.CloneMatrix(cell)
			if err != nil {
				return nil, err
			}
			b.cells[i*bC+j] = d
		}
	}

	return b, nil
}

// Identity returns the n×n block identity: identity blocks on the grid
// diagonal, zero blocks elsewhere. Each block is r×r.
func Identity(n, r int) (*Block, error) {
	b, err := New(n, n, r, r)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id, idErr := matrix.NewIdentity(r)
		if idErr != nil {
			return nil, idErr
		}
		b.cells[i*n+i] = id
	}

	return b, nil
}

// BlockRows returns the grid row count.
func (b *Block) BlockRows() int { return b.bR }

// BlockCols returns the grid column count.
func (b *Block) BlockCols() int { return b.bC }

// BlockShape returns the shape shared by every block.
func (b *Block) BlockShape() (r, c int) { return b.r, b.c }

// TotalRows returns the row count of the flattened matrix.
func (b *Block) TotalRows() int { return b.bR * b.r }

// TotalCols returns the column count of the flattened matrix.
func (b *Block) TotalCols() int { return b.bC * b.c }

// At returns a deep copy of the block at grid position (i, j).
// Returns ErrOutOfRange for indices outside the grid.
func (b *Block) At(i, j int) (*matrix.Dense, error) {
	if i < 0 || i >= b.bR || j < 0 || j >= b.bC {
		return nil, fmt.Errorf("At(%d, %d) on %dx%d grid: %w", i, j, b.bR, b.bC, ErrOutOfRange)
	}

	return b.cells[i*b.bC+j].CloneDense(), nil
}

// Set stores a deep copy of m at grid position (i, j).
// Returns ErrOutOfRange for bad indices and ErrDimensionMismatch when m
// does not match the block shape.
func (b *Block) Set(i, j int, m matrix.Matrix) error {
	if i < 0 || i >= b.bR || j < 0 || j >= b.bC {
		return fmt.Errorf("Set(%d, %d) on %dx%d grid: %w", i, j, b.bR, b.bC, ErrOutOfRange)
	}
	if m == nil || m.Rows() != b.r || m.Cols() != b.c {
		return fmt.Errorf("Set(%d, %d): %w", i, j, ErrDimensionMismatch)
	}
	d, err := matrix.CloneMatrix(m)
	if err != nil {
		return err
	}
	b.cells[i*b.bC+j] = d

	return nil
}

// Clone returns a deep copy of the whole grid.
func (b *Block) Clone() *Block {
	out := &Block{bR: b.bR, bC: b.bC, r: b.r, c: b.c, cells: make([]*matrix.Dense, len(b.cells))}
	for i, cell := range b.cells {
		out.cells[i] = cell.CloneDense()
	}

	return out
}

// Add returns a + b cell by cell.
// Returns ErrDimensionMismatch when the grids or block shapes disagree.
func Add(a, b *Block) (*Block, error) {
	if err := validateSameGrid("Add", a, b); err != nil {
		return nil, err
	}

	out := a.Clone()
	for i := range out.cells {
		sum, err := matrix.Add(a.cells[i], b.cells[i])
		if err != nil {
			return nil, err
		}
		out.cells[i] = sum
	}

	return out, nil
}

// Sub returns a - b cell by cell.
func Sub(a, b *Block) (*Block, error) {
	if err := validateSameGrid("Sub", a, b); err != nil {
		return nil, err
	}

	out := a.Clone()
	for i := range out.cells {
		diff, err := matrix.Sub(a.cells[i], b.cells[i])
		if err != nil {
			return nil, err
		}
		out.cells[i] = diff
	}

	return out, nil
}

// Scale multiplies every cell by the scalar s.
func Scale(a *Block, s float64) (*Block, error) {
	if a == nil {
		return nil, fmt.Errorf("Scale: %w", ErrBadGrid)
	}

	out := a.Clone()
	for i := range out.cells {
		scaled, err := matrix.Scale(a.cells[i], s)
		if err != nil {
			return nil, err
		}
		out.cells[i] = scaled
	}

	return out, nil
}

// Neg returns -a.
func Neg(a *Block) (*Block, error) { return Scale(a, -1) }

// Mul returns the block product a·b: cell (i, j) is the sum over k of
// a[i][k]·b[k][j]. Grid shapes must chain and the block shapes must be
// multiplication-compatible; otherwise ErrDimensionMismatch.
func Mul(a, b *Block) (*Block, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Mul: %w", ErrBadGrid)
	}
	if a.bC != b.bR || a.c != b.r {
		return nil, fmt.Errorf("Mul: %w", ErrDimensionMismatch)
	}

	out := &Block{bR: a.bR, bC: b.bC, r: a.r, c: b.c, cells: make([]*matrix.Dense, a.bR*b.bC)}
	for i := 0; i < a.bR; i++ {
		for j := 0; j < b.bC; j++ {
			acc, err := matrix.NewZeros(a.r, b.c)
			if err != nil {
				return nil, err
			}
			for k := 0; k < a.bC; k++ {
				prod, mErr := matrix.Mul(a.cells[i*a.bC+k], b.cells[k*b.bC+j])
				if mErr != nil {
					return nil, mErr
				}
				acc, err = matrix.Add(acc, prod)
				if err != nil {
					return nil, err
				}
			}
			out.cells[i*out.bC+j] = acc
		}
	}

	return out, nil
}

// Transpose returns the block transpose: the grid is transposed and every
// cell is transposed.
func Transpose(a *Block) (*Block, error) {
	if a == nil {
		return nil, fmt.Errorf("Transpose: %w", ErrBadGrid)
	}

	out := &Block{bR: a.bC, bC: a.bR, r: a.c, c: a.r, cells: make([]*matrix.Dense, len(a.cells))}
	for i := 0; i < a.bR; i++ {
		for j := 0; j < a.bC; j++ {
			ct, err := matrix.Transpose(a.cells[i*a.bC+j])
			if err != nil {
				return nil, err
			}
			out.cells[j*out.bC+i] = ct
		}
	}

	return out, nil
}

// Flatten materializes the grid as one (bR·r)×(bC·c) dense matrix.
func (b *Block) Flatten() (*matrix.Dense, error) {
	out, err := matrix.NewZeros(b.bR*b.r, b.bC*b.c)
	if err != nil {
		return nil, err
	}
	for bi := 0; bi < b.bR; bi++ {
		for bj := 0; bj < b.bC; bj++ {
			cell := b.cells[bi*b.bC+bj]
			for i := 0; i < b.r; i++ {
				for j := 0; j < b.c; j++ {
					v, atErr := cell.At(i, j)
					if atErr != nil {
						return nil, atErr
					}
					if err = out.Set(bi*b.r+i, bj*b.c+j, v); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return out, nil
}

// validateSameGrid requires identical grid and block shapes.
func validateSameGrid(op string, a, b *Block) error {
	if a == nil || b == nil {
		return fmt.Errorf("%s: %w", op, ErrBadGrid)
	}
	if a.bR != b.bR || a.bC != b.bC || a.r != b.r || a.c != b.c {
		return fmt.Errorf("%s: %w", op, ErrDimensionMismatch)
	}

	return nil
}
