package rref_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/rref"
)

// ReducerSuite drives one Reducer through its full life cycle per test.
type ReducerSuite struct {
	suite.Suite

	input *matrix.Dense
	red   *rref.Reducer
}

func (s *ReducerSuite) SetupTest() {
	var err error
	s.input, err = matrix.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{2, 4, 6},
		{1, 0, 1},
	})
	s.Require().NoError(err)

	s.red, err = rref.New(s.input)
	s.Require().NoError(err)
}

func (s *ReducerSuite) TestFreshReducerIsUnreduced() {
	s.Equal(rref.Unreduced, s.red.State())
	s.False(s.red.IsEchelon())
	s.False(s.red.IsReducedEchelon())
	s.Zero(s.red.Rank())
}

func (s *ReducerSuite) TestEchelonFindsRank() {
	s.red.ToEchelon()

	s.True(s.red.IsEchelon())
	s.False(s.red.IsReducedEchelon())
	// row 1 duplicates row 0 scaled: rank 2
	s.Equal(2, s.red.Rank())
	s.Equal([]int{0, 1}, s.red.PivotCols())
}

func (s *ReducerSuite) TestReducedImpliesEchelon() {
	s.red.ToReducedEchelon()

	s.True(s.red.IsEchelon())
	s.True(s.red.IsReducedEchelon())
	s.Equal(rref.ReducedEchelon, s.red.State())
}

func (s *ReducerSuite) TestKernelMatchesRank() {
	kernel := s.red.Kernel()
	s.Len(kernel, s.input.Cols()-s.red.Rank())

	for _, v := range kernel {
		av, err := matrix.MatVec(s.input, v)
		s.Require().NoError(err)
		s.Less(av.MaxAbs(), 1e-9)
	}
}

func (s *ReducerSuite) TestResetRewindsEverything() {
	s.red.ToReducedEchelon()
	s.red.Reset()

	s.Equal(rref.Unreduced, s.red.State())
	s.Zero(s.red.Rank())
	s.Empty(s.red.PivotCols())

	// the working copy is back to the pristine input
	got := s.red.Matrix()
	for i := 0; i < s.input.Rows(); i++ {
		for j := 0; j < s.input.Cols(); j++ {
			want, err := s.input.At(i, j)
			s.Require().NoError(err)
			v, err := got.At(i, j)
			s.Require().NoError(err)
			s.Equal(want, v)
		}
	}
}

func TestReducerSuite(t *testing.T) {
	suite.Run(t, new(ReducerSuite))
}
