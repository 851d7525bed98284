// SPDX-License-Identifier: MIT
// Package matrix: non-mutating kernels — elementwise arithmetic, products,
// transpose, augmentation and row/column extraction. Every kernel returns a
// fresh *Dense and leaves its operands untouched. Concrete *Dense operands
// take the flat-slice fast path; anything else goes through At.

package matrix

import "github.com/katalvlaran/lvlinalg/vector"

const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opNeg       = "Neg"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opHadamard  = "Hadamard"
	opAugment   = "Augment"
	opColumn    = "Column"
	opRow       = "Row"
)

// addSub is the shared elementwise combiner behind Add and Sub.
func addSub(op string, a, b Matrix, sign float64) (*Dense, error) {
	if err := ValidateSameShape(op, a, b); err != nil {
		return nil, err
	}

	out := &Dense{r: a.Rows(), c: a.Cols(), data: make([]float64, a.Rows()*a.Cols())}
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for k := range out.data {
			out.data[k] = da.data[k] + sign*db.data[k]
		}

		return out, nil
	}

	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			va, _ := a.At(i, j)
			vb, _ := b.At(i, j)
			out.data[i*out.c+j] = va + sign*vb
		}
	}

	return out, nil
}

// Add returns a + b. Returns ErrDimensionMismatch on shape disagreement.
func Add(a, b Matrix) (*Dense, error) { return addSub(opAdd, a, b, +1) }

// Sub returns a - b. Returns ErrDimensionMismatch on shape disagreement.
func Sub(a, b Matrix) (*Dense, error) { return addSub(opSub, a, b, -1) }

// Mul returns the matrix product a·b.
// Returns ErrDimensionMismatch when a.Cols != b.Rows.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(opMul, a, b); err != nil {
		return nil, err
	}

	n, inner, p := a.Rows(), a.Cols(), b.Cols()
	out := &Dense{r: n, c: p, data: make([]float64, n*p)}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		// i-k-j order keeps both reads and writes sequential.
		for i := 0; i < n; i++ {
			for k := 0; k < inner; k++ {
				aik := da.data[i*inner+k]
				if aik == 0 {
					continue
				}
				rowB := db.data[k*p : (k+1)*p]
				rowOut := out.data[i*p : (i+1)*p]
				for j := range rowOut {
					rowOut[j] += aik * rowB[j]
				}
			}
		}

		return out, nil
	}

	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			var sum float64
			for k := 0; k < inner; k++ {
				va, _ := a.At(i, k)
				vb, _ := b.At(k, j)
				sum += va * vb
			}
			out.data[i*p+j] = sum
		}
	}

	return out, nil
}

// Scale returns s·a as a fresh matrix.
func Scale(a Matrix, s float64) (*Dense, error) {
	if err := ValidateNotNil(opScale, a); err != nil {
		return nil, err
	}

	out := &Dense{r: a.Rows(), c: a.Cols(), data: make([]float64, a.Rows()*a.Cols())}
	if da, ok := a.(*Dense); ok {
		for k := range out.data {
			out.data[k] = s * da.data[k]
		}

		return out, nil
	}

	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			v, _ := a.At(i, j)
			out.data[i*out.c+j] = s * v
		}
	}

	return out, nil
}

// Neg returns -a.
func Neg(a Matrix) (*Dense, error) {
	if err := ValidateNotNil(opNeg, a); err != nil {
		return nil, err
	}

	return Scale(a, -1)
}

// Transpose returns aᵀ.
func Transpose(a Matrix) (*Dense, error) {
	if err := ValidateNotNil(opTranspose, a); err != nil {
		return nil, err
	}

	r, c := a.Rows(), a.Cols()
	out := &Dense{r: c, c: r, data: make([]float64, r*c)}
	if da, ok := a.(*Dense); ok {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				out.data[j*r+i] = da.data[i*c+j]
			}
		}

		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, _ := a.At(i, j)
			out.data[j*r+i] = v
		}
	}

	return out, nil
}

// MatVec returns the product a·v as a fresh vector.
// Returns ErrDimensionMismatch when len(v) != a.Cols.
func MatVec(a Matrix, v vector.Vector) (vector.Vector, error) {
	if err := ValidateVecLen(opMatVec, a, v.Len()); err != nil {
		return nil, err
	}

	r, c := a.Rows(), a.Cols()
	out := vector.New(r)
	if da, ok := a.(*Dense); ok {
		for i := 0; i < r; i++ {
			row := da.data[i*c : (i+1)*c]
			var sum float64
			for j, x := range row {
				sum += x * v[j]
			}
			out[i] = sum
		}

		return out, nil
	}

	for i := 0; i < r; i++ {
		var sum float64
		for j := 0; j < c; j++ {
			x, _ := a.At(i, j)
			sum += x * v[j]
		}
		out[i] = sum
	}

	return out, nil
}

// Hadamard returns the elementwise (Schur) product a∘b.
// Returns ErrDimensionMismatch on shape disagreement.
func Hadamard(a, b Matrix) (*Dense, error) {
	if err := ValidateSameShape(opHadamard, a, b); err != nil {
		return nil, err
	}

	out := &Dense{r: a.Rows(), c: a.Cols(), data: make([]float64, a.Rows()*a.Cols())}
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for k := range out.data {
			out.data[k] = da.data[k] * db.data[k]
		}

		return out, nil
	}

	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			va, _ := a.At(i, j)
			vb, _ := b.At(i, j)
			out.data[i*out.c+j] = va * vb
		}
	}

	return out, nil
}

// Augment returns the block matrix [a | b].
// Returns ErrDimensionMismatch when the row counts differ.
func Augment(a, b Matrix) (*Dense, error) {
	if err := ValidateAugmentCompatible(opAugment, a, b); err != nil {
		return nil, err
	}

	r, ca, cb := a.Rows(), a.Cols(), b.Cols()
	out := &Dense{r: r, c: ca + cb, data: make([]float64, r*(ca+cb))}
	for i := 0; i < r; i++ {
		for j := 0; j < ca; j++ {
			v, _ := a.At(i, j)
			out.data[i*out.c+j] = v
		}
		for j := 0; j < cb; j++ {
			v, _ := b.At(i, j)
			out.data[i*out.c+ca+j] = v
		}
	}

	return out, nil
}

// Column extracts column j as a fresh vector.
// Returns ErrOutOfRange for an invalid column index.
func Column(a Matrix, j int) (vector.Vector, error) {
	if err := ValidateNotNil(opColumn, a); err != nil {
		return nil, err
	}
	if j < 0 || j >= a.Cols() {
		return nil, validatorErrorf(opColumn, ErrOutOfRange)
	}

	out := vector.New(a.Rows())
	for i := range out {
		v, _ := a.At(i, j)
		out[i] = v
	}

	return out, nil
}

// Row extracts row i as a fresh vector.
// Returns ErrOutOfRange for an invalid row index.
func Row(a Matrix, i int) (vector.Vector, error) {
	if err := ValidateRowIndex(opRow, a, i); err != nil {
		return nil, err
	}

	out := vector.New(a.Cols())
	for j := range out {
		v, _ := a.At(i, j)
		out[j] = v
	}

	return out, nil
}
