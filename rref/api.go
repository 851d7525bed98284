// SPDX-License-Identifier: MIT
// Package rref: one-shot facades over the Reducer state machine.

package rref

import "github.com/katalvlaran/lvlinalg/matrix"

// Rank returns the rank of m.
func Rank(m matrix.Matrix, opts ...Option) (int, error) {
	r, err := New(m, opts...)
	if err != nil {
		return 0, err
	}
	r.ToEchelon()

	return r.Rank(), nil
}

// ReducedForm returns the reduced row echelon form of m as a fresh matrix.
func ReducedForm(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	r, err := New(m, opts...)
	if err != nil {
		return nil, err
	}
	r.ToReducedEchelon()

	return r.Matrix(), nil
}

// NormalForm returns the rank normal form [[I_r, 0], [0, 0]] of m.
func NormalForm(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	r, err := New(m, opts...)
	if err != nil {
		return nil, err
	}
	r.ToEchelon()

	out, err := matrix.NewZeros(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < r.Rank(); i++ {
		_ = out.Set(i, i, 1)
	}

	return out, nil
}
