// Package rref reduces matrices to (reduced) row echelon form with partial
// pivoting and derives rank, pivot structure and kernel bases from the
// result.
//
// The central type is Reducer — a small state machine over a private working
// copy of the input:
//
//	Unreduced ──ToEchelon──▶ Echelon ──ToReducedEchelon──▶ ReducedEchelon
//
// Each transition is idempotent: calling ToEchelon on a matrix already in
// echelon form (or beyond) is a no-op, and ToReducedEchelon performs the
// echelon pass first when needed. Reset returns the Reducer to the pristine
// input so a different tolerance can be tried on the same matrix.
//
// Pivoting policy: within the current column the entry of largest absolute
// value at or below the cursor row is chosen. When even that entry is below
// tolerance the column contributes no pivot — the column cursor advances and
// the row cursor stays, which is exactly how rank deficiency is detected.
// Eliminated entries are written as exact zeros, and the reduced pass ends
// with a full sweep that snaps every sub-tolerance residue to 0.
//
// Kernel returns a basis of the null space read directly off the reduced
// form: one basis vector per free column, with a 1 in the free coordinate
// and the negated column entries in the pivot coordinates.
//
// One-shot facades (Rank, ReducedForm, NormalForm) cover the common cases
// without exposing the state machine.
package rref
