// Package eigen approximates real eigenvalues and eigenvectors of square
// matrices with the unshifted QR iteration.
//
// QR factors a matrix by classical Gram–Schmidt: each column is stripped of
// its projections onto the previous Q columns and normalized. A residual
// that collapses below tolerance marks a dependent column; the unnormalized
// (near-zero) residual is kept as a degenerate Q column rather than failing,
// so the factorization always completes. R = Qᵀ·A with the strict lower
// triangle forced to exact zeros.
//
// Decompose repeats A ← R·Q — a similarity transform, since R·Q = Qᵀ·A·Q —
// for a fixed number of iterations (default DefaultMaxIterations) and reads
// eigenvalue approximates off the final diagonal. For each value λ the
// eigenvector is the kernel of A−λI; when λ is not exact enough to make the
// shifted matrix near-singular, a zero-vector placeholder fills the slot so
// callers always get one vector per value. Vectors are normalized when
// their norm allows it.
//
// Known limitation: the unshifted iteration does not detect complex
// conjugate pairs. A matrix with complex eigenvalues (a rotation, say)
// yields real diagonal readings that are simply wrong — callers needing
// certainty must check the residual A·v ≈ λ·v themselves.
package eigen
