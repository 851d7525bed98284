package blockmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/blockmatrix"
	"github.com/katalvlaran/lvlinalg/matrix"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// twoByTwoGrid builds a 2×2 grid of 2×2 blocks with distinct entries.
func twoByTwoGrid(t *testing.T) *blockmatrix.Block {
	t.Helper()
	b, err := blockmatrix.FromGrid([][]matrix.Matrix{
		{mustDense(t, [][]float64{{1, 2}, {3, 4}}), mustDense(t, [][]float64{{5, 6}, {7, 8}})},
		{mustDense(t, [][]float64{{9, 10}, {11, 12}}), mustDense(t, [][]float64{{13, 14}, {15, 16}})},
	})
	require.NoError(t, err)

	return b
}

func TestConstructionValidation(t *testing.T) {
	_, err := blockmatrix.New(0, 1, 2, 2)
	require.ErrorIs(t, err, blockmatrix.ErrBadGrid)

	_, err = blockmatrix.FromGrid(nil)
	require.ErrorIs(t, err, blockmatrix.ErrBadGrid)

	// ragged block shapes
	_, err = blockmatrix.FromGrid([][]matrix.Matrix{
		{mustDense(t, [][]float64{{1, 2}, {3, 4}})},
		{mustDense(t, [][]float64{{1}})},
	})
	require.ErrorIs(t, err, blockmatrix.ErrBadGrid)

	b, err := blockmatrix.New(2, 3, 4, 5)
	require.NoError(t, err)
	require.Equal(t, 2, b.BlockRows())
	require.Equal(t, 3, b.BlockCols())
	r, c := b.BlockShape()
	require.Equal(t, 4, r)
	require.Equal(t, 5, c)
}

func TestAtSetDeepCopies(t *testing.T) {
	b := twoByTwoGrid(t)

	cell, err := b.At(0, 0)
	require.NoError(t, err)
	require.NoError(t, cell.Set(0, 0, 99))

	// mutating the returned copy must not leak into the grid
	again, err := b.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, at(t, again, 0, 0))

	src := mustDense(t, [][]float64{{0, 0}, {0, 0}})
	require.NoError(t, b.Set(1, 1, src))
	require.NoError(t, src.Set(0, 0, 42))
	cell, err = b.At(1, 1)
	require.NoError(t, err)
	require.Zero(t, at(t, cell, 0, 0))

	_, err = b.At(2, 0)
	require.ErrorIs(t, err, blockmatrix.ErrOutOfRange)
	require.ErrorIs(t, b.Set(0, 0, mustDense(t, [][]float64{{1}})), blockmatrix.ErrDimensionMismatch)
}

func TestAddSubScale(t *testing.T) {
	b := twoByTwoGrid(t)

	sum, err := blockmatrix.Add(b, b)
	require.NoError(t, err)
	cell, err := sum.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, at(t, cell, 0, 0))

	diff, err := blockmatrix.Sub(sum, b)
	require.NoError(t, err)
	cell, err = diff.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 13.0, at(t, cell, 0, 0))

	scaled, err := blockmatrix.Scale(b, 10)
	require.NoError(t, err)
	cell, err = scaled.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 50.0, at(t, cell, 0, 0))

	other, err := blockmatrix.New(1, 1, 2, 2)
	require.NoError(t, err)
	_, err = blockmatrix.Add(b, other)
	require.ErrorIs(t, err, blockmatrix.ErrDimensionMismatch)
}

func TestMulAgainstFlatten(t *testing.T) {
	// the block product must agree with the flat product of the flattened
	// operands
	a := twoByTwoGrid(t)
	b := twoByTwoGrid(t)

	blockProd, err := blockmatrix.Mul(a, b)
	require.NoError(t, err)
	flatBlock, err := blockProd.Flatten()
	require.NoError(t, err)

	fa, err := a.Flatten()
	require.NoError(t, err)
	fb, err := b.Flatten()
	require.NoError(t, err)
	flatProd, err := matrix.Mul(fa, fb)
	require.NoError(t, err)

	for i := 0; i < flatProd.Rows(); i++ {
		for j := 0; j < flatProd.Cols(); j++ {
			require.Equal(t, at(t, flatProd, i, j), at(t, flatBlock, i, j))
		}
	}
}

func TestTransposeAgainstFlatten(t *testing.T) {
	b := twoByTwoGrid(t)

	bt, err := blockmatrix.Transpose(b)
	require.NoError(t, err)
	flatBT, err := bt.Flatten()
	require.NoError(t, err)

	flat, err := b.Flatten()
	require.NoError(t, err)
	flatT, err := matrix.Transpose(flat)
	require.NoError(t, err)

	for i := 0; i < flatT.Rows(); i++ {
		for j := 0; j < flatT.Cols(); j++ {
			require.Equal(t, at(t, flatT, i, j), at(t, flatBT, i, j))
		}
	}
}

func TestIdentityIsNeutral(t *testing.T) {
	b := twoByTwoGrid(t)
	id, err := blockmatrix.Identity(2, 2)
	require.NoError(t, err)

	prod, err := blockmatrix.Mul(id, b)
	require.NoError(t, err)
	want, err := b.Flatten()
	require.NoError(t, err)
	got, err := prod.Flatten()
	require.NoError(t, err)

	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.Equal(t, at(t, want, i, j), at(t, got, i, j))
		}
	}
}

func TestSwapBlockRows(t *testing.T) {
	b := twoByTwoGrid(t)
	require.NoError(t, b.SwapBlockRows(0, 1))

	cell, err := b.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 9.0, at(t, cell, 0, 0))

	require.ErrorIs(t, b.SwapBlockRows(0, 2), blockmatrix.ErrOutOfRange)
}

func TestScaleBlockRow(t *testing.T) {
	b := twoByTwoGrid(t)

	// 2·I is invertible: each cell of row 0 doubles
	twoI := mustDense(t, [][]float64{{2, 0}, {0, 2}})
	require.NoError(t, b.ScaleBlockRow(0, twoI, 0))
	cell, err := b.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 10.0, at(t, cell, 0, 0))

	// a singular multiplier is rejected, like a zero scalar factor
	sing := mustDense(t, [][]float64{{1, 2}, {2, 4}})
	require.ErrorIs(t, b.ScaleBlockRow(1, sing, 0), blockmatrix.ErrSingular)

	require.ErrorIs(t, b.ScaleBlockRow(0, mustDense(t, [][]float64{{1}}), 0),
		blockmatrix.ErrDimensionMismatch)
}

func TestAddScaledBlockRow(t *testing.T) {
	b := twoByTwoGrid(t)
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	// dst += I·src is a plain block-row addition
	require.NoError(t, b.AddScaledBlockRow(1, 0, id))
	cell, err := b.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 10.0, at(t, cell, 0, 0))

	// a singular multiplier is fine here
	sing := mustDense(t, [][]float64{{1, 2}, {2, 4}})
	require.NoError(t, b.AddScaledBlockRow(0, 1, sing))

	require.ErrorIs(t, b.AddScaledBlockRow(0, 5, id), blockmatrix.ErrOutOfRange)
}
