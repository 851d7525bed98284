// SPDX-License-Identifier: MIT
// Package vectorset: the Set type and its reduction-backed analysis.

package vectorset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/rref"
	"github.com/katalvlaran/lvlinalg/vector"
)

var (
	// ErrEmptySet is returned by New for a set with no vectors.
	ErrEmptySet = errors.New("vectorset: empty vector set")

	// ErrRaggedSet is returned by New when the vectors disagree on length.
	ErrRaggedSet = errors.New("vectorset: vectors have inconsistent lengths")
)

// Orientation selects how a Set stacks its vectors into a matrix.
type Orientation int

const (
	// Columns stacks each vector as a matrix column (the default).
	Columns Orientation = iota
	// Rows stacks each vector as a matrix row.
	Rows
)

// Set is an ordered collection of equally-sized vectors.
type Set struct {
	vecs   []vector.Vector
	dim    int
	orient Orientation
	eps    float64
}

// New builds a Set from the given vectors; each vector is deep-copied.
// Returns ErrEmptySet for no vectors and ErrRaggedSet when lengths differ.
func New(orient Orientation, vecs []vector.Vector, opts ...Option) (*Set, error) {
	if len(vecs) == 0 || vecs[0].Len() == 0 {
		return nil, ErrEmptySet
	}
	dim := vecs[0].Len()
	for i, v := range vecs {
		if v.Len() != dim {
			return nil, fmt.Errorf("vector %d has length %d, want %d: %w",
				i, v.Len(), dim, ErrRaggedSet)
		}
	}
	o := gatherOptions(opts...)

	owned := make([]vector.Vector, len(vecs))
	for i, v := range vecs {
		owned[i] = v.Clone()
	}

	return &Set{vecs: owned, dim: dim, orient: orient, eps: o.eps}, nil
}

// Of is shorthand for New(Columns, vecs).
func Of(vecs ...vector.Vector) (*Set, error) { return New(Columns, vecs) }

// Len returns the number of vectors in the set.
func (s *Set) Len() int { return len(s.vecs) }

// Dim returns the length every member vector shares.
func (s *Set) Dim() int { return s.dim }

// Vectors returns a deep copy of the member vectors in input order.
func (s *Set) Vectors() []vector.Vector {
	out := make([]vector.Vector, len(s.vecs))
	for i, v := range s.vecs {
		out[i] = v.Clone()
	}

	return out
}

// Stack materializes the set as a matrix in the set's orientation.
func (s *Set) Stack() (*matrix.Dense, error) {
	if s.orient == Rows {
		grid := make([][]float64, len(s.vecs))
		for i, v := range s.vecs {
			grid[i] = v
		}

		return matrix.NewDenseFromRows(grid)
	}

	m, err := matrix.NewDense(s.dim, len(s.vecs))
	if err != nil {
		return nil, err
	}
	for j, v := range s.vecs {
		for i, x := range v {
			_ = m.Set(i, j, x)
		}
	}

	return m, nil
}

// Rank returns the dimension of the span of the set.
func (s *Set) Rank() (int, error) {
	m, err := s.Stack()
	if err != nil {
		return 0, err
	}

	return rref.Rank(m, rref.WithEpsilon(s.eps))
}

// Dimension is an alias of Rank: the dimension of the spanned subspace.
func (s *Set) Dimension() (int, error) { return s.Rank() }

// IsIndependent reports whether the vectors are linearly independent, i.e.
// whether the rank equals the vector count.
func (s *Set) IsIndependent() (bool, error) {
	rank, err := s.Rank()
	if err != nil {
		return false, err
	}

	return rank == len(s.vecs), nil
}

// Basis returns a maximal independent subset of the input, in input order.
// The members whose stacked columns carry pivots are kept; the result is a
// deep copy.
func (s *Set) Basis() ([]vector.Vector, error) {
	m, err := s.columnStack()
	if err != nil {
		return nil, err
	}
	red, err := rref.New(m, rref.WithEpsilon(s.eps))
	if err != nil {
		return nil, err
	}
	red.ToEchelon()

	basis := make([]vector.Vector, 0, red.Rank())
	for _, pc := range red.PivotCols() {
		basis = append(basis, s.vecs[pc].Clone())
	}

	return basis, nil
}

// columnStack always stacks vectors as columns, regardless of orientation:
// pivot columns of this matrix index member vectors directly.
func (s *Set) columnStack() (*matrix.Dense, error) {
	m, err := matrix.NewDense(s.dim, len(s.vecs))
	if err != nil {
		return nil, err
	}
	for j, v := range s.vecs {
		for i, x := range v {
			_ = m.Set(i, j, x)
		}
	}

	return m, nil
}
