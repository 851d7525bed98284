// SPDX-License-Identifier: MIT
// Package matrix: Dense — construction, element access, copy and move.

package matrix

import (
	"fmt"
	"strings"
)

// NewDense returns a zero-filled r×c matrix.
// Returns ErrBadShape when r <= 0 or c <= 0.
func NewDense(r, c int) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("NewDense(%d, %d): %w", r, c, ErrBadShape)
	}

	return &Dense{r: r, c: c, data: make([]float64, r*c)}, nil
}

// NewDenseFromRows builds a matrix from a row-of-rows grid. The grid is
// copied; the result never aliases the caller's slices.
// Returns ErrBadShape when the grid is empty or ragged.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: %w", ErrBadShape)
	}
	c := len(rows[0])
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d columns, want %d: %w",
				i, len(row), c, ErrBadShape)
		}
	}

	m := &Dense{r: len(rows), c: c, data: make([]float64, len(rows)*c)}
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// NewIdentity returns the n×n identity matrix.
// Returns ErrBadShape when n <= 0.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf maps (i, j) to the flat offset, reporting validity.
func (m *Dense) indexOf(i, j int) (int, bool) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, false
	}

	return i*m.c + j, true
}

// At returns the element at (i, j).
// Returns ErrOutOfRange for indices outside the matrix.
func (m *Dense) At(i, j int) (float64, error) {
	k, ok := m.indexOf(i, j)
	if !ok {
		return 0, fmt.Errorf("At(%d, %d) on %dx%d: %w", i, j, m.r, m.c, ErrOutOfRange)
	}

	return m.data[k], nil
}

// Set stores v at (i, j).
// Returns ErrOutOfRange for indices outside the matrix.
func (m *Dense) Set(i, j int, v float64) error {
	k, ok := m.indexOf(i, j)
	if !ok {
		return fmt.Errorf("Set(%d, %d) on %dx%d: %w", i, j, m.r, m.c, ErrOutOfRange)
	}
	m.data[k] = v

	return nil
}

// Clone returns a deep copy of m as a Matrix.
func (m *Dense) Clone() Matrix { return m.CloneDense() }

// CloneDense returns a deep copy of m with a concrete type.
func (m *Dense) CloneDense() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Move transfers the backing storage of m into a fresh matrix without
// copying. After the call m is an empty 0×0 matrix; the returned matrix
// owns the data exclusively.
func (m *Dense) Move() *Dense {
	out := &Dense{r: m.r, c: m.c, data: m.data}
	m.r, m.c, m.data = 0, 0, nil

	return out
}

// String renders the matrix row by row, one bracketed row per line.
// Intended for debugging and examples, not for serialization.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
