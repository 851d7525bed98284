// Package linsys solves and classifies linear systems A·x = b through the
// reduction engine.
//
// Solve augments A with b, reduces [A|b] to reduced row echelon form and
// reads the answer off the pivot structure:
//
//   - the augmented column holds a pivot → the system is inconsistent
//     (NoSolution);
//   - every unknown has a pivot → exactly one solution (Unique);
//   - fewer pivots than unknowns → an affine family (Infinite): a
//     particular solution with free variables set to 0, plus a kernel basis
//     of A spanning the homogeneous part.
package linsys
