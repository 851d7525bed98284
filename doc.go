// Package lvlinalg is a dense numerical linear-algebra toolkit: row
// reduction, rank and null-space analysis, QR factorization and iterative
// eigen approximation over float64 matrices.
//
// 🚀 What is lvlinalg?
//
//	A small, deterministic library that brings together:
//		• vector/      — elementwise vector arithmetic, dot products, norms
//		• matrix/      — row-major Dense matrices, row operations, kernels
//		                 (Add/Sub/Mul/Transpose), determinant & inversion
//		• rref/        — row-echelon reduction with partial pivoting, rank,
//		                 pivot tracking and kernel (null-space) bases
//		• eigen/       — Gram–Schmidt QR factorization and the unshifted QR
//		                 eigenvalue iteration with eigenvector recovery
//		• linsys/      — linear-system classification (none/unique/infinite)
//		                 with particular + homogeneous solutions
//		• vectorset/   — linear independence, basis extraction, Gram–Schmidt
//		• blockmatrix/ — block-partitioned matrices with block row operations
//
// ✨ Why choose lvlinalg?
//
//   - Predictable numerics — one configurable tolerance per entry point,
//     partial pivoting everywhere a pivot is chosen, explicit residue zeroing
//   - Rock-solid error surface — sentinel errors, errors.Is-friendly, no
//     panics on user input
//   - Pure Go core — single-threaded, allocation-conscious, deterministic
//     loop orders; no hidden concurrency that could reorder pivot selection
//
// Everything is numerically approximate by design: sub-tolerance pivots are
// soft outcomes (a column simply contributes no pivot), while structural
// problems (shape mismatches, out-of-range indices, singular inversion) are
// hard sentinel errors.
//
// Quick taste:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {2, 4}})
//	red, _ := rref.New(a)
//	red.ToReducedEchelon()
//	basis := red.Kernel() // [(-2, 1)]
//
// Dive into the per-package docs for tutorials and the exact tolerance and
// degeneracy policies of each algorithm.
package lvlinalg
