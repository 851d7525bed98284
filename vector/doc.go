// Package vector provides elementwise arithmetic on dense float64 vectors:
// addition, subtraction, scaling, dot products, Euclidean norms and
// normalization.
//
// A Vector is a plain []float64 with value semantics on every operation
// that returns a Vector: results are freshly allocated, inputs are never
// mutated. In-place variants (AddInPlace, ScaleInPlace, ...) exist for hot
// loops that want to avoid allocations.
//
// Numeric policy:
//
//   - Length mismatches are hard errors (ErrLengthMismatch).
//   - Division by a scalar with |s| < DefaultEpsilon is a hard error
//     (ErrZeroScalar) — it would degenerate the vector irreversibly.
//   - Normalizing a vector whose norm is below DefaultEpsilon is a hard
//     error (ErrZeroVector); callers that prefer a soft fallback can keep
//     the original vector (see eigen's eigenvector recovery for an example).
//
// Complexity: every operation is a single pass, O(n) time, O(n) space for
// the allocating variants and O(1) space for the in-place ones.
package vector
