package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	gmat "gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// toGonum mirrors a matrix into a gonum dense for oracle comparisons.
func toGonum(t *testing.T, m matrix.Matrix) *gmat.Dense {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = MustAt(t, m, i, j)
		}
	}

	return gmat.NewDense(r, c, data)
}

func TestDeterminant(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}, 1},
		{"two_by_two", [][]float64{{1, 2}, {3, 4}}, -2},
		{"singular", [][]float64{{1, 2}, {2, 4}}, 0},
		{"three_by_three", [][]float64{{4, 2, 1}, {2, 3, 0}, {0, 1, 2}}, 18},
		{"needs_pivoting", [][]float64{{0, 1}, {1, 0}}, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := MustDense(t, tc.rows)
			got, err := matrix.Determinant(m)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-9)
			if tc.want == 0 {
				require.Zero(t, got, "a dependent matrix must report an exact 0")
			}

			// cross-check against the reference implementation
			require.InDelta(t, gmat.Det(toGonum(t, m)), got, 1e-9)
		})
	}

	_, err := matrix.Determinant(MustDense(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverse(t *testing.T) {
	a := MustDense(t, [][]float64{{4, 7}, {2, 6}})

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)

	// A·A⁻¹ == I
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	requireMatrixEqual(t, id, prod, 1e-12)

	// cross-check against the reference implementation
	var oracle gmat.Dense
	require.NoError(t, oracle.Inverse(toGonum(t, a)))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.InDelta(t, oracle.At(i, j), MustAt(t, inv, i, j), 1e-12)
		}
	}
}

func TestInverseNeedsPivoting(t *testing.T) {
	// zero leading entry forces a row swap before the first elimination
	a := MustDense(t, [][]float64{{0, 1, 0}, {1, 0, 0}, {0, 0, 2}})

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	requireMatrixEqual(t, id, prod, 1e-12)
}

func TestInverseLargePivot(t *testing.T) {
	// a pivot above 1/eps makes its reciprocal smaller than the tolerance;
	// the entry is a perfectly good pivot and must not be mistaken for zero
	inv, err := matrix.Inverse(MustDense(t, [][]float64{{1e10}}))
	require.NoError(t, err)
	require.Equal(t, 1e-10, MustAt(t, inv, 0, 0))

	a := MustDense(t, [][]float64{{1e10, 0}, {0, 4}})
	inv, err = matrix.Inverse(a)
	require.NoError(t, err)
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	requireMatrixEqual(t, id, prod, 1e-12)
}

func TestInverseSingular(t *testing.T) {
	_, err := matrix.Inverse(MustDense(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(MustDense(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestSimilarityTransform(t *testing.T) {
	// diag(1, 2) conjugated by an invertible P keeps its eigenvalues;
	// conjugating by the identity must return the matrix itself.
	a := MustDense(t, [][]float64{{1, 0}, {0, 2}})
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	same, err := matrix.SimilarityTransform(a, id)
	require.NoError(t, err)
	requireMatrixEqual(t, a, same, 1e-12)

	p := MustDense(t, [][]float64{{1, 1}, {0, 1}})
	b, err := matrix.SimilarityTransform(a, p)
	require.NoError(t, err)
	// trace and determinant are similarity invariants
	require.InDelta(t, 3.0, MustAt(t, b, 0, 0)+MustAt(t, b, 1, 1), 1e-12)
	det, err := matrix.Determinant(b)
	require.NoError(t, err)
	require.InDelta(t, 2.0, det, 1e-12)

	_, err = matrix.SimilarityTransform(a, MustDense(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSymmetryPredicates(t *testing.T) {
	sym := MustDense(t, [][]float64{{1, 2}, {2, 3}})
	ok, err := matrix.IsSymmetric(sym)
	require.NoError(t, err)
	require.True(t, ok)

	asym := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	ok, err = matrix.IsSymmetric(asym)
	require.NoError(t, err)
	require.False(t, ok)

	// a rectangular matrix is simply not symmetric
	ok, err = matrix.IsSymmetric(MustDense(t, [][]float64{{1, 2, 3}}))
	require.NoError(t, err)
	require.False(t, ok)

	skew := MustDense(t, [][]float64{{0, 2}, {-2, 0}})
	ok, err = matrix.IsSkewSymmetric(skew)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.IsSkewSymmetric(sym)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIsOrthogonal(t *testing.T) {
	rot := MustDense(t, [][]float64{{0, -1}, {1, 0}})
	ok, err := matrix.IsOrthogonal(rot)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.IsOrthogonal(MustDense(t, [][]float64{{1, 1}, {0, 1}}))
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.IsOrthogonal(MustDense(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestIsDiagonalizableReserved(t *testing.T) {
	_, err := matrix.IsDiagonalizable(MustDense(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrNotImplemented)
}

func TestRankNormalForm(t *testing.T) {
	// rank 1: second row is a multiple of the first
	a := MustDense(t, [][]float64{{1, 2}, {2, 4}})
	nf, err := matrix.RankNormalForm(a)
	require.NoError(t, err)
	requireMatrixEqual(t, MustDense(t, [][]float64{{1, 0}, {0, 0}}), nf, 0)

	// full rank rectangular
	b := MustDense(t, [][]float64{{1, 0, 5}, {0, 1, 7}})
	nf, err = matrix.RankNormalForm(b)
	require.NoError(t, err)
	requireMatrixEqual(t, MustDense(t, [][]float64{{1, 0, 0}, {0, 1, 0}}), nf, 0)
}
