// Package blockmatrix handles matrices partitioned into a grid of
// equally-shaped dense blocks.
//
// A Block is a bR×bC grid whose cells are r×c matrices. All arithmetic —
// addition, block-wise multiplication, transposition — delegates to the
// matrix package cell by cell; the package adds no new numeric kernels of
// its own.
//
// The block analogues of the elementary row operations mirror the scalar
// ones: SwapBlockRows exchanges grid rows, AddScaledBlockRow accumulates a
// left-multiplied copy of one grid row into another, and ScaleBlockRow
// left-multiplies a grid row by a square matrix — which must be invertible,
// exactly as a scalar row factor must be nonzero, so the operation remains
// an equivalence transform.
//
// Flatten materializes the grid as one ordinary dense matrix.
package blockmatrix
