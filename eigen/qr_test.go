package eigen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/eigen"
	"github.com/katalvlaran/lvlinalg/matrix"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireClose compares two matrices elementwise within tol.
func requireClose(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.InDeltaf(t, at(t, want, i, j), at(t, got, i, j), tol,
				"element (%d, %d)", i, j)
		}
	}
}

func TestQRRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
	}{
		{"well_conditioned", [][]float64{{2, 1}, {1, 3}}},
		{"needs_reordering", [][]float64{{0, 1}, {1, 0}}},
		{"three_by_three", [][]float64{{1, 2, 0}, {0, 1, 1}, {1, 0, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustDense(t, tc.rows)
			pair, err := eigen.QR(a)
			require.NoError(t, err)

			// Q·R reconstructs A
			qr, err := matrix.Mul(pair.Q, pair.R)
			require.NoError(t, err)
			requireClose(t, a, qr, 1e-12)

			// Qᵀ·Q == I
			ok, err := matrix.IsOrthogonal(pair.Q, matrix.WithEpsilon(1e-12))
			require.NoError(t, err)
			require.True(t, ok)

			// strict lower triangle of R is exactly zero
			for i := 1; i < pair.R.Rows(); i++ {
				for j := 0; j < i; j++ {
					require.Zero(t, at(t, pair.R, i, j))
				}
			}
		})
	}
}

func TestQRDegenerateColumn(t *testing.T) {
	// second column is twice the first: its residual vanishes, the
	// factorization must still complete with Q·R == A
	a := mustDense(t, [][]float64{{1, 2}, {1, 2}})
	pair, err := eigen.QR(a)
	require.NoError(t, err)

	qr, err := matrix.Mul(pair.Q, pair.R)
	require.NoError(t, err)
	requireClose(t, a, qr, 1e-12)

	// the degenerate Q column stays near zero instead of being blown up
	var norm float64
	for i := 0; i < 2; i++ {
		norm += at(t, pair.Q, i, 1) * at(t, pair.Q, i, 1)
	}
	require.Less(t, math.Sqrt(norm), 1e-9)
}

func TestQRNonSquare(t *testing.T) {
	_, err := eigen.QR(mustDense(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
