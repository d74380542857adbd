// SPDX-License-Identifier: MIT
package linsys_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/netflow/gaussjordan"
	"github.com/katalvlaran/netflow/linsys"
	"github.com/katalvlaran/netflow/matrix"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

////////////////////////////////////////////////////////////////////////////////
// Network scenarios
////////////////////////////////////////////////////////////////////////////////

// ScenarioSuite covers the three reference networks.
type ScenarioSuite struct {
	suite.Suite
	demand []float64
}

func (s *ScenarioSuite) SetupTest() {
	s.demand = []float64{100, 200, 150}
}

// Triangle network: singular Laplacian, demand does not sum to zero.
func (s *ScenarioSuite) TestTriangleIsInconsistent() {
	a := dense(s.T(), [][]float64{{-2, 1, 1}, {1, -2, 1}, {1, 1, -2}})

	res, err := linsys.Solve(a, s.demand)
	s.Require().NoError(err)

	c := res.Classification
	s.InDelta(0, c.Determinant, 1e-9)
	s.Equal(2, c.RankA)
	s.Equal(3, c.RankAugmented)
	s.Equal(linsys.CaseInconsistent, c.Case)
	s.False(c.HasExactSolution())
	s.True(c.IsSingular())

	s.Equal(linsys.MethodPseudoInverse, res.Method)
	s.InDelta(450/math.Sqrt(3), res.Residual, 1e-6)
	s.InDelta(50.0/3, res.X[0], 1e-9)
	s.InDelta(-50.0/3, res.X[1], 1e-9)
	s.InDelta(0, res.X[2], 1e-9)
}

// Adjusted triangle: diagonal −3 makes the network invertible.
func (s *ScenarioSuite) TestAdjustedTriangleIsUnique() {
	a := dense(s.T(), [][]float64{{-3, 1, 1}, {1, -3, 1}, {1, 1, -3}})

	res, err := linsys.Solve(a, s.demand, linsys.WithTrace())
	s.Require().NoError(err)

	s.Equal(linsys.CaseUnique, res.Classification.Case)
	s.InDelta(-16, res.Classification.Determinant, 1e-9)
	s.Equal(linsys.MethodInverse, res.Method)
	s.Less(res.Residual, 1e-6)
	s.InDeltaSlice([]float64{-137.5, -162.5, -150}, res.X, 1e-9)
	s.NotEmpty(res.Steps)
	s.Equal(0, res.Steps[0].Index)
}

// Diagonal system: exact answer and no swaps.
func (s *ScenarioSuite) TestDiagonalExact() {
	a := dense(s.T(), [][]float64{{2, 0}, {0, 2}})

	res, err := linsys.Solve(a, []float64{4, 6}, linsys.WithTrace())
	s.Require().NoError(err)
	s.Equal([]float64{2, 3}, res.X)
	s.Equal(0.0, res.Residual)
	for _, st := range res.Steps {
		s.NotEqual(gaussjordan.Swap, st.Kind)
	}
}

// Dependent rows with a compatible demand: the minimum-norm answer is exact.
func (s *ScenarioSuite) TestDependentRowsConsistent() {
	a := dense(s.T(), [][]float64{{1, 2}, {2, 4}})

	res, err := linsys.Solve(a, []float64{1, 2})
	s.Require().NoError(err)

	s.Equal(linsys.CaseConsistentUnderdetermined, res.Classification.Case)
	s.Equal(linsys.MethodPseudoInverse, res.Method)
	s.Less(res.Residual, 1e-9)
	s.InDeltaSlice([]float64{0.2, 0.4}, res.X, 1e-9)
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

////////////////////////////////////////////////////////////////////////////////
// Boundaries & errors
////////////////////////////////////////////////////////////////////////////////

func TestSolve_OneByOne(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		a, b   float64
		want   linsys.Case
		wantX  float64
		method linsys.Method
	}{
		{"regular", 4, 10, linsys.CaseUnique, 2.5, linsys.MethodInverse},
		{"zero-coefficient nonzero demand", 0, 3, linsys.CaseInconsistent, 0, linsys.MethodPseudoInverse},
		{"all zero", 0, 0, linsys.CaseConsistentUnderdetermined, 0, linsys.MethodPseudoInverse},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := linsys.Solve(dense(t, [][]float64{{tc.a}}), []float64{tc.b})
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Classification.Case)
			assert.Equal(t, tc.method, res.Method)
			assert.InDelta(t, tc.wantX, res.X[0], 1e-12)
		})
	}
}

func TestSolve_EmptySystem(t *testing.T) {
	t.Parallel()

	res, err := linsys.Solve(dense(t, nil), nil)
	require.NoError(t, err)
	assert.Empty(t, res.X)
	assert.NotNil(t, res.X)
	assert.Equal(t, linsys.MethodNone, res.Method)
	assert.Equal(t, 1.0, res.Classification.Determinant)
	assert.Nil(t, res.Inverse)
}

func TestSolve_ShapeErrors(t *testing.T) {
	t.Parallel()

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = linsys.Solve(rect, []float64{1, 2})
	require.ErrorIs(t, err, linsys.ErrShape)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = linsys.Solve(dense(t, [][]float64{{1, 0}, {0, 1}}), []float64{1})
	require.ErrorIs(t, err, linsys.ErrShape)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = linsys.Solve(nil, nil)
	require.ErrorIs(t, err, linsys.ErrShape)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = linsys.Classify(rect, []float64{1, 2}, 1e-10)
	require.ErrorIs(t, err, linsys.ErrShape)
}

func TestSolve_RejectsNonFinite(t *testing.T) {
	t.Parallel()

	_, err := linsys.Solve(dense(t, [][]float64{{1}}), []float64{math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.NotErrorIs(t, err, linsys.ErrShape)
}

func TestClassify_RejectsBadEpsilon(t *testing.T) {
	t.Parallel()

	a := dense(t, [][]float64{{1, 0}, {0, 1}})
	for _, eps := range []float64{-1e-9, math.NaN(), math.Inf(1)} {
		_, err := linsys.Classify(a, []float64{1, 1}, eps)
		require.ErrorIs(t, err, linsys.ErrBadEpsilon, "eps=%v", eps)
		require.NotErrorIs(t, err, matrix.ErrNaNInf, "eps=%v", eps)
	}

	_, err := linsys.Classify(a, []float64{1, 1}, 0)
	require.NoError(t, err)
}

func TestSolve_InputsNotMutated(t *testing.T) {
	t.Parallel()

	a := dense(t, [][]float64{{0, 2}, {3, 1}})
	b := []float64{4, 5}
	before := a.RowsCopy()

	_, err := linsys.Solve(a, b, linsys.WithTrace())
	require.NoError(t, err)
	assert.Equal(t, before, a.RowsCopy())
	assert.Equal(t, []float64{4, 5}, b)
}

////////////////////////////////////////////////////////////////////////////////
// Properties
////////////////////////////////////////////////////////////////////////////////

func randomSystem(rng *rand.Rand, n int, dominant bool) (*matrix.Dense, []float64) {
	a, _ := matrix.NewDense(n, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if dominant && i == j {
				v += float64(n)
			}
			_ = a.Set(i, j, v)
		}
		b[i] = rng.Float64()*200 - 100
	}

	return a, b
}

func TestSolve_ResidualSmallForInvertible(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	for n := 1; n <= 8; n++ {
		a, b := randomSystem(rng, n, true)
		res, err := linsys.Solve(a, b)
		require.NoError(t, err)
		require.Equal(t, linsys.CaseUnique, res.Classification.Case)
		assert.Less(t, res.Residual, 1e-6, "n=%d", n)
	}
}

func TestSolve_Idempotent(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	a, b := randomSystem(rng, 6, false)
	first, err := linsys.Solve(a, b)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := linsys.Solve(a, b)
		require.NoError(t, err)
		for k := range first.X {
			require.Equal(t, math.Float64bits(first.X[k]), math.Float64bits(again.X[k]))
		}
	}
}

func TestSolve_MethodFollowsClassification(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(9))
	systems := [][][]float64{
		{{-2, 1, 1}, {1, -2, 1}, {1, 1, -2}},
		{{-3, 1, 1}, {1, -3, 1}, {1, 1, -3}},
		{{1, 2}, {2, 4}},
		{{0}},
	}
	for i := 0; i < 10; i++ {
		a, _ := randomSystem(rng, 4, false)
		systems = append(systems, a.RowsCopy())
	}

	for _, rows := range systems {
		a := dense(t, rows)
		b := make([]float64, len(rows))
		for i := range b {
			b[i] = float64(i + 1)
		}
		cls, err := linsys.Classify(a, b, matrix.DefaultEpsilon)
		require.NoError(t, err)
		res, err := linsys.Solve(a, b)
		require.NoError(t, err)

		assert.Equal(t, cls, res.Classification)
		assert.Equal(t, cls.Case == linsys.CaseUnique, res.Method == linsys.MethodInverse, "%v", rows)
		switch cls.Case {
		case linsys.CaseConsistentUnderdetermined:
			assert.Less(t, res.Residual, 1e-9, "%v", rows)
		case linsys.CaseInconsistent:
			assert.Greater(t, res.Residual, 0.0, "%v", rows)
		}
	}
}

func TestSolve_IllConditionedFallsBackToPseudoInverse(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	a := dense(t, [][]float64{{0.4, 0}, {0, 10}})

	res, err := linsys.Solve(a, []float64{0.4, 10},
		linsys.WithEpsilon(0.5),
		linsys.WithTrace(),
		linsys.WithLogger(zap.New(core)),
	)
	require.NoError(t, err)

	assert.Equal(t, linsys.CaseUnique, res.Classification.Case)
	assert.Equal(t, linsys.MethodPseudoInverse, res.Method)
	assert.InDeltaSlice(t, []float64{1, 1}, res.X, 1e-12)
	assert.Equal(t, 1, logs.FilterMessageSnippet("falling back").Len())
}

func TestSolve_SingularTraceIsBestEffort(t *testing.T) {
	t.Parallel()

	a := dense(t, [][]float64{{-2, 1, 1}, {1, -2, 1}, {1, 1, -2}})
	res, err := linsys.Solve(a, []float64{100, 200, 150}, linsys.WithTrace())
	require.NoError(t, err)
	assert.Equal(t, linsys.MethodPseudoInverse, res.Method)
	assert.NotEmpty(t, res.Steps)

	res, err = linsys.Solve(a, []float64{100, 200, 150})
	require.NoError(t, err)
	assert.Empty(t, res.Steps)
}

func TestSolve_LogsAtDebug(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	_, err := linsys.Solve(dense(t, [][]float64{{2}}), []float64{4}, linsys.WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("classified system").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "unique", entries[0].ContextMap()["case"])
}

////////////////////////////////////////////////////////////////////////////////
// Invert & options
////////////////////////////////////////////////////////////////////////////////

func TestInvert(t *testing.T) {
	t.Parallel()

	a := dense(t, [][]float64{{-3, 1, 1}, {1, -3, 1}, {1, 1, -3}})
	inv, steps, err := linsys.Invert(a, linsys.WithTrace())
	require.NoError(t, err)
	assert.NotEmpty(t, steps)

	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	id, _ := matrix.NewIdentity(3)
	ok, err := matrix.AllClose(prod, id, 0, 1e-6)
	require.NoError(t, err)
	assert.True(t, ok)

	_, steps, err = linsys.Invert(dense(t, [][]float64{{-2, 1, 1}, {1, -2, 1}, {1, 1, -2}}), linsys.WithTrace())
	require.ErrorIs(t, err, matrix.ErrSingular)
	assert.NotEmpty(t, steps)

	rect, _ := matrix.NewDense(1, 2)
	_, _, err = linsys.Invert(rect)
	require.ErrorIs(t, err, linsys.ErrShape)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { linsys.WithEpsilon(-1) })
	assert.Panics(t, func() { linsys.WithRcond(math.Inf(1)) })
	assert.NotPanics(t, func() { linsys.WithLogger(nil) })
}

func TestCaseMethodStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "consistent-underdetermined", linsys.CaseConsistentUnderdetermined.String())
	assert.Equal(t, "inconsistent", linsys.CaseInconsistent.String())
	assert.Equal(t, "pseudo-inverse", linsys.MethodPseudoInverse.String())
	assert.Equal(t, "none", linsys.MethodNone.String())
	assert.Equal(t, "case(7)", linsys.Case(7).String())
}
