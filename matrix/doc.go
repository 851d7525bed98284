// Package matrix provides dense, row-major float64 matrices and the
// structural kernels every higher algorithm in lvlinalg builds on.
//
// The package offers:
//
//   - Dense — a flat, row-major implementation of the Matrix interface with
//     O(1) bounds-checked element access and deep Clone / destructive Move.
//   - Row operations (SwapRows, ScaleRow, AddScaledRow) — the only mutation
//     primitives used by the reduction and factorization packages.
//   - Elementwise and structural kernels: Add, Sub, Mul, Scale, Neg,
//     Transpose, Hadamard, MatVec, Augment, Row/Column extraction.
//   - Square-matrix routines: Determinant (partial-pivoted triangularization
//     that snaps sub-tolerance results to an exact 0), Inverse (pivoted
//     Gauss–Jordan over the [A|I] augmentation), SimilarityTransform, and
//     the symmetry/orthogonality predicates.
//
// Numeric policy: one tolerance, configurable per entry point through
// WithEpsilon (default DefaultEpsilon = 1e-9). Structural problems — bad
// shapes, out-of-range indices, non-square inputs, singular inversion — are
// hard sentinel errors matched with errors.Is; sub-tolerance magnitudes are
// soft outcomes handled by policy (a determinant declares 0, AddScaledRow
// skips negligible work) rather than by failing.
//
// Every kernel validates fail-fast through the central validators, never
// mutates its operands, and keeps deterministic loop orders; concrete
// *Dense operands unlock flat-slice fast paths.
package matrix
