// SPDX-License-Identifier: MIT
// Package linsys: classification and solution of A·x = b.

package linsys

import (
	"errors"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/rref"
	"github.com/katalvlaran/lvlinalg/vector"
)

// ErrBadSystem is returned when b's length does not match A's row count.
var ErrBadSystem = errors.New("linsys: right-hand side length does not match coefficient rows")

// Kind classifies the solution set of a linear system.
type Kind int

const (
	// NoSolution marks an inconsistent system.
	NoSolution Kind = iota
	// Unique marks a system with exactly one solution.
	Unique
	// Infinite marks an underdetermined consistent system.
	Infinite
)

// String renders the kind for logs and test failures.
func (k Kind) String() string {
	switch k {
	case NoSolution:
		return "NoSolution"
	case Unique:
		return "Unique"
	case Infinite:
		return "Infinite"
	default:
		return "Unknown"
	}
}

// Solution describes the full solution set of one system.
type Solution struct {
	Kind Kind
	// Particular is one solution of A·x = b (free variables pinned to 0).
	// Nil when Kind is NoSolution.
	Particular vector.Vector
	// Nullspace is a basis of the kernel of A: the homogeneous directions
	// along which Particular may be shifted. Empty when Kind is Unique,
	// nil when Kind is NoSolution.
	Nullspace []vector.Vector
}

// Solve classifies and solves A·x = b.
// Returns ErrBadSystem when len(b) != a.Rows().
func Solve(a matrix.Matrix, b vector.Vector, opts ...rref.Option) (Solution, error) {
	if err := matrix.ValidateNotNil("Solve", a); err != nil {
		return Solution{}, err
	}
	if b.Len() != a.Rows() {
		return Solution{}, ErrBadSystem
	}

	rhs, err := matrix.NewDense(b.Len(), 1)
	if err != nil {
		return Solution{}, err
	}
	for i, x := range b {
		_ = rhs.Set(i, 0, x)
	}
	aug, err := matrix.Augment(a, rhs)
	if err != nil {
		return Solution{}, err
	}

	red, err := rref.New(aug, opts...)
	if err != nil {
		return Solution{}, err
	}
	red.ToReducedEchelon()

	unknowns := a.Cols()
	pivotCols := red.PivotCols()
	pivotRows := red.PivotRows()

	// a pivot in the augmented column means 0 = 1 somewhere
	for _, pc := range pivotCols {
		if pc == unknowns {
			return Solution{Kind: NoSolution}, nil
		}
	}

	// particular solution: free variables at 0, pivot variables read off
	// the reduced augmented column
	reduced := red.Matrix()
	particular := vector.New(unknowns)
	for k, pc := range pivotCols {
		v, atErr := reduced.At(pivotRows[k], unknowns)
		if atErr != nil {
			return Solution{}, atErr
		}
		particular[pc] = v
	}

	if len(pivotCols) == unknowns {
		return Solution{Kind: Unique, Particular: particular, Nullspace: nil}, nil
	}

	// homogeneous directions come from the kernel of A itself
	redA, err := rref.New(a, opts...)
	if err != nil {
		return Solution{}, err
	}

	return Solution{
		Kind:       Infinite,
		Particular: particular,
		Nullspace:  redA.Kernel(),
	}, nil
}
