// Package vectorset analyzes finite collections of vectors: linear
// independence, rank, basis extraction and Gram–Schmidt orthogonalization.
//
// A Set stacks its vectors into a matrix — as columns by default, or as
// rows with the Rows orientation — and delegates all structural questions
// to the reduction engine: Rank reduces the stacked matrix, IsIndependent
// compares rank against the vector count, and Basis keeps exactly the
// vectors whose stacked columns carry pivots, so the returned basis is
// always a subset of the input in input order.
//
// GramSchmidt orthogonalizes sequentially and drops vectors whose residual
// collapses below tolerance, so the result is always an independent
// orthogonal family; WithNormalize additionally scales it orthonormal.
package vectorset
