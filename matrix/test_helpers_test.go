package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// MustDense builds a matrix from rows and fails the test on error.
func MustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) and fails the test on error.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSet writes (i, j) and fails the test on error.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// requireMatrixEqual compares two matrices elementwise within tol.
func requireMatrixEqual(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "row count")
	require.Equal(t, want.Cols(), got.Cols(), "column count")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.InDeltaf(t, MustAt(t, want, i, j), MustAt(t, got, i, j), tol,
				"element (%d, %d)", i, j)
		}
	}
}

// hide wraps a *Dense so kernels see only the Matrix interface and must take
// their At/Set fallback path.
type hide struct{ m matrix.Matrix }

func (h hide) Rows() int                    { return h.m.Rows() }
func (h hide) Cols() int                    { return h.m.Cols() }
func (h hide) At(i, j int) (float64, error) { return h.m.At(i, j) }
func (h hide) Set(i, j int, v float64) error {
	return h.m.Set(i, j, v)
}
func (h hide) Clone() matrix.Matrix { return hide{m: h.m.Clone()} }
