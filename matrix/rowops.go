// SPDX-License-Identifier: MIT
// Package matrix: elementary row operations — the only mutating primitives.
// Gaussian elimination, RREF reduction and Gauss–Jordan inversion are
// expressed entirely through these three calls.

package matrix

import "math"

const (
	opSwapRows     = "SwapRows"
	opScaleRow     = "ScaleRow"
	opAddScaledRow = "AddScaledRow"
)

// SwapRows exchanges rows i and j in place. Swapping a row with itself is a
// no-op. Returns ErrOutOfRange for invalid indices.
func (m *Dense) SwapRows(i, j int) error {
	if err := ValidateRowIndex(opSwapRows, m, i); err != nil {
		return err
	}
	if err := ValidateRowIndex(opSwapRows, m, j); err != nil {
		return err
	}
	if i == j {
		return nil
	}

	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// ScaleRow multiplies row i by s in place.
// A factor below eps would collapse the row into noise and cannot be undone,
// so it is a hard ErrZeroScalar. Pass eps <= 0 to use DefaultEpsilon.
func (m *Dense) ScaleRow(i int, s, eps float64) error {
	if err := ValidateRowIndex(opScaleRow, m, i); err != nil {
		return err
	}
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	if math.Abs(s) < eps {
		return validatorErrorf(opScaleRow, ErrZeroScalar)
	}

	row := m.data[i*m.c : (i+1)*m.c]
	for k := range row {
		row[k] *= s
	}

	return nil
}

// AddScaledRow adds s times row src into row dst in place.
// Unlike ScaleRow, a factor below eps is harmless — the destination would be
// unchanged anyway — so the call degrades to a silent no-op. Pass eps <= 0
// to use DefaultEpsilon.
func (m *Dense) AddScaledRow(dst, src int, s, eps float64) error {
	if err := ValidateRowIndex(opAddScaledRow, m, dst); err != nil {
		return err
	}
	if err := ValidateRowIndex(opAddScaledRow, m, src); err != nil {
		return err
	}
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	if math.Abs(s) < eps {
		return nil
	}

	d := m.data[dst*m.c : (dst+1)*m.c]
	r := m.data[src*m.c : (src+1)*m.c]
	for k := range d {
		d[k] += s * r[k]
	}

	return nil
}
