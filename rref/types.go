// SPDX-License-Identifier: MIT
// Package rref: public types — the reduction state enum and the Reducer.

package rref

import (
	"errors"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// ErrNilMatrix is returned by New when the input matrix is nil.
var ErrNilMatrix = errors.New("rref: nil matrix")

// State tracks how far a Reducer has progressed.
type State int

const (
	// Unreduced is the initial state: the working copy equals the input.
	Unreduced State = iota
	// Echelon means the working copy is in row echelon form.
	Echelon
	// ReducedEchelon means the working copy is in reduced row echelon form:
	// every pivot is exactly 1 and is the only nonzero entry of its column.
	ReducedEchelon
)

// String renders the state for logs and test failures.
func (s State) String() string {
	switch s {
	case Unreduced:
		return "Unreduced"
	case Echelon:
		return "Echelon"
	case ReducedEchelon:
		return "ReducedEchelon"
	default:
		return "Unknown"
	}
}

// Reducer owns a working copy of one matrix and drives it through the
// reduction states. It is not safe for concurrent use.
type Reducer struct {
	orig *matrix.Dense // pristine input, kept for Reset
	work *matrix.Dense // the matrix being reduced
	eps  float64

	state     State
	pivotRows []int // row of the i-th pivot
	pivotCols []int // column of the i-th pivot
}

// New builds a Reducer over a deep copy of m; the caller's matrix is never
// touched. Returns ErrNilMatrix for nil input.
func New(m matrix.Matrix, opts ...Option) (*Reducer, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := gatherOptions(opts...)

	orig, err := matrix.CloneMatrix(m)
	if err != nil {
		return nil, err
	}

	return &Reducer{
		orig:  orig,
		work:  orig.CloneDense(),
		eps:   o.eps,
		state: Unreduced,
	}, nil
}

// State reports the current reduction state.
func (r *Reducer) State() State { return r.state }

// IsEchelon reports whether the working copy is at least in echelon form.
func (r *Reducer) IsEchelon() bool { return r.state >= Echelon }

// IsReducedEchelon reports whether the working copy is fully reduced.
func (r *Reducer) IsReducedEchelon() bool { return r.state >= ReducedEchelon }

// Matrix returns a deep copy of the current working matrix; mutating the
// result cannot disturb the Reducer.
func (r *Reducer) Matrix() *matrix.Dense { return r.work.CloneDense() }

// Rank returns the number of pivots found so far. Before ToEchelon it is 0.
func (r *Reducer) Rank() int { return len(r.pivotRows) }

// PivotRows returns a defensive copy of the pivot row indices in discovery
// order.
func (r *Reducer) PivotRows() []int { return append([]int(nil), r.pivotRows...) }

// PivotCols returns a defensive copy of the pivot column indices in
// discovery order.
func (r *Reducer) PivotCols() []int { return append([]int(nil), r.pivotCols...) }

// Reset restores the pristine input and forgets all pivots, so the same
// matrix can be reduced again (typically under a different tolerance set
// through SetEpsilon).
func (r *Reducer) Reset() {
	r.work = r.orig.CloneDense()
	r.state = Unreduced
	r.pivotRows = nil
	r.pivotCols = nil
}

// SetEpsilon changes the tolerance used by subsequent transitions. It does
// not rewind work already done; call Reset to re-reduce under the new value.
func (r *Reducer) SetEpsilon(eps float64) {
	if eps > 0 {
		r.eps = eps
	}
}
