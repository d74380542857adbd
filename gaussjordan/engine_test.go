// SPDX-License-Identifier: MIT
package gaussjordan_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netflow/gaussjordan"
	"github.com/katalvlaran/netflow/matrix"
)

// hide wraps a Matrix so that kernels cannot see the concrete *Dense.
type hide struct{ matrix.Matrix }

// denseEqual lets cmp compare snapshots by value.
var denseEqual = cmp.Comparer(func(a, b *matrix.Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	return cmp.Equal(a.RowsCopy(), b.RowsCopy())
})

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func mustAug(t *testing.T, a [][]float64, b []float64) *matrix.Dense {
	t.Helper()
	aug, err := matrix.AugmentVec(mustRows(t, a), b)
	require.NoError(t, err)

	return aug
}

func TestReduce_StepSequence_2x2(t *testing.T) {
	t.Parallel()

	aug := mustAug(t, [][]float64{{1, 2}, {3, 4}}, []float64{5, 6})
	red, err := gaussjordan.Reduce(aug, 2, gaussjordan.WithTrace())
	require.NoError(t, err)

	want := []gaussjordan.Step{
		{Index: 0, Kind: gaussjordan.Swap, Phase: gaussjordan.Forward, Label: "R1 <-> R2", Column: 0, Row: 0, Source: 1},
		{Index: 1, Kind: gaussjordan.Normalize, Phase: gaussjordan.Forward, Label: "R1 = R1 / (3)", Column: 0, Row: 0, Source: -1},
		{Index: 2, Kind: gaussjordan.Eliminate, Phase: gaussjordan.Forward, Label: "R2 = R2 - (1) * R1", Column: 0, Row: 1, Source: 0},
		{Index: 3, Kind: gaussjordan.Normalize, Phase: gaussjordan.Forward, Label: "R2 = R2 / (0.6667)", Column: 1, Row: 1, Source: -1},
		{Index: 4, Kind: gaussjordan.Eliminate, Phase: gaussjordan.Backward, Label: "R1 = R1 - (1.333) * R2", Column: 1, Row: 0, Source: 1},
	}
	ignore := cmpopts.IgnoreFields(gaussjordan.Step{}, "Matrix", "Factor")
	if diff := cmp.Diff(want, red.Steps, ignore); diff != "" {
		t.Fatalf("step sequence mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 0.0, red.Steps[0].Factor)
	assert.InDelta(t, 3, red.Steps[1].Factor, 1e-12)
	assert.InDelta(t, 2.0/3.0, red.Steps[3].Factor, 1e-12)

	// the first snapshot is the matrix right after the swap
	assert.Equal(t, [][]float64{{3, 4, 6}, {1, 2, 5}}, red.Steps[0].Matrix.RowsCopy())

	require.True(t, red.Complete)
	require.Equal(t, []int{0, 1}, red.Pivots)
	x, err := matrix.Column(red.Matrix, 2)
	require.NoError(t, err)
	assert.InDelta(t, -4, x[0], 1e-12)
	assert.InDelta(t, 4.5, x[1], 1e-12)
}

func TestReduce_DiagonalHasNoSwaps(t *testing.T) {
	t.Parallel()

	aug := mustAug(t, [][]float64{{2, 0}, {0, 2}}, []float64{4, 6})
	red, err := gaussjordan.Reduce(aug, 2, gaussjordan.WithTrace())
	require.NoError(t, err)

	for _, st := range red.Steps {
		assert.NotEqual(t, gaussjordan.Swap, st.Kind, st.Label)
	}
	assert.Equal(t, [][]float64{{1, 0, 2}, {0, 1, 3}}, red.Matrix.RowsCopy())
}

func TestReduce_NoTraceRecordsNothing(t *testing.T) {
	t.Parallel()

	aug := mustAug(t, [][]float64{{1, 2}, {3, 4}}, []float64{5, 6})
	red, err := gaussjordan.Reduce(aug, 2)
	require.NoError(t, err)
	assert.Empty(t, red.Steps)
	assert.True(t, red.Complete)
}

func TestReduce_RankDeficientSkipsColumn(t *testing.T) {
	t.Parallel()

	aug := mustAug(t, [][]float64{{-2, 1, 1}, {1, -2, 1}, {1, 1, -2}}, []float64{100, 200, 150})
	red, err := gaussjordan.Reduce(aug, 3, gaussjordan.WithTrace())
	require.NoError(t, err)

	assert.False(t, red.Complete)
	assert.Equal(t, 2, red.Rank)
	assert.Equal(t, []int{0, 1}, red.Pivots)

	// the third row collapses to [0 0 0 | Σb]
	row, err := red.Matrix.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, row[:3])
	assert.InDelta(t, 450, row[3], 1e-9)
}

func TestReduce_InputNotMutated(t *testing.T) {
	t.Parallel()

	aug := mustAug(t, [][]float64{{1, 2}, {3, 4}}, []float64{5, 6})
	before := aug.RowsCopy()

	_, err := gaussjordan.Reduce(aug, 2, gaussjordan.WithTrace())
	require.NoError(t, err)
	_, err = gaussjordan.Reduce(hide{aug}, 2)
	require.NoError(t, err)

	assert.Equal(t, before, aug.RowsCopy())
}

func TestReduce_FallbackMatchesDense(t *testing.T) {
	t.Parallel()

	aug := mustAug(t, [][]float64{{0, 2, 1}, {4, 1, 0}, {1, 1, 5}}, []float64{1, 2, 3})
	r1, err := gaussjordan.Reduce(aug, 3, gaussjordan.WithTrace())
	require.NoError(t, err)
	r2, err := gaussjordan.Reduce(hide{aug}, 3, gaussjordan.WithTrace())
	require.NoError(t, err)

	if diff := cmp.Diff(r1, r2, denseEqual); diff != "" {
		t.Fatalf("fallback differs (-dense +wrapped):\n%s", diff)
	}
}

func TestReduce_Errors(t *testing.T) {
	t.Parallel()

	_, err := gaussjordan.Reduce(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	aug := mustAug(t, [][]float64{{1, 2}, {3, 4}}, []float64{5, 6})
	for _, n := range []int{-1, 1, 3} {
		_, err = gaussjordan.Reduce(aug, n)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch, "pivotCols=%d", n)
		require.ErrorIs(t, err, gaussjordan.ErrPivotColumns)
	}

	bad, err := matrix.NewDenseFromRows([][]float64{{1, math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	_, err = gaussjordan.Reduce(bad, 1)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestReduce_EmptySystem(t *testing.T) {
	t.Parallel()

	aug := mustAug(t, nil, nil)
	red, err := gaussjordan.Reduce(aug, 0, gaussjordan.WithTrace())
	require.NoError(t, err)
	assert.True(t, red.Complete)
	assert.Zero(t, red.Rank)
	assert.Empty(t, red.Steps)
}

func TestReduce_EpsilonGovernsPivotSkip(t *testing.T) {
	t.Parallel()

	aug := mustAug(t, [][]float64{{1e-6, 0}, {0, 1}}, []float64{1, 1})

	red, err := gaussjordan.Reduce(aug, 2)
	require.NoError(t, err)
	assert.True(t, red.Complete)

	red, err = gaussjordan.Reduce(aug, 2, gaussjordan.WithEpsilon(1e-3))
	require.NoError(t, err)
	assert.False(t, red.Complete)
	assert.Equal(t, []int{1}, red.Pivots)
}

func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		assert.Panics(t, func() { gaussjordan.WithEpsilon(eps) })
	}
	assert.NotPanics(t, func() { gaussjordan.WithEpsilon(0) })
}

func TestKindPhaseString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "swap", gaussjordan.Swap.String())
	assert.Equal(t, "normalize", gaussjordan.Normalize.String())
	assert.Equal(t, "eliminate", gaussjordan.Eliminate.String())
	assert.Equal(t, "kind(9)", gaussjordan.Kind(9).String())
	assert.Equal(t, "forward", gaussjordan.Forward.String())
	assert.Equal(t, "backward", gaussjordan.Backward.String())
}

func TestInvert_IdentityProduct(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	for _, n := range []int{1, 2, 3, 5, 8} {
		a, err := matrix.NewDense(n, n)
		require.NoError(t, err)
		// diagonally dominant, hence invertible and well conditioned
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v := rng.Float64()*2 - 1
				if i == j {
					v += float64(n) + 1
				}
				require.NoError(t, a.Set(i, j, v))
			}
		}

		inv, red, err := gaussjordan.Invert(a)
		require.NoError(t, err, "n=%d", n)
		require.True(t, red.Complete)

		prod, err := matrix.Mul(a, inv)
		require.NoError(t, err)
		id, err := matrix.NewIdentity(n)
		require.NoError(t, err)
		ok, err := matrix.AllClose(prod, id, 0, 1e-6)
		require.NoError(t, err)
		assert.True(t, ok, "A·A⁻¹ != I for n=%d", n)
	}
}

func TestInvert_Singular(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2}, {2, 4}})
	inv, red, err := gaussjordan.Invert(a, gaussjordan.WithTrace())
	require.Error(t, err)
	assert.True(t, errors.Is(err, gaussjordan.ErrSingular))
	assert.True(t, errors.Is(err, matrix.ErrSingular))
	assert.Nil(t, inv)
	require.NotNil(t, red)
	assert.Equal(t, 1, red.Rank)
	assert.NotEmpty(t, red.Steps)
}

func TestInvert_NonSquare(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = gaussjordan.Invert(a)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInvert_Empty(t *testing.T) {
	t.Parallel()

	inv, red, err := gaussjordan.Invert(mustRows(t, nil))
	require.NoError(t, err)
	assert.Equal(t, 0, inv.Rows())
	assert.True(t, red.Complete)
}

func TestSolve(t *testing.T) {
	t.Parallel()

	x, red, err := gaussjordan.Solve(mustRows(t, [][]float64{{2, 0}, {0, 2}}), []float64{4, 6})
	require.NoError(t, err)
	assert.True(t, red.Complete)
	assert.Equal(t, []float64{2, 3}, x)

	_, _, err = gaussjordan.Solve(mustRows(t, [][]float64{{2, 0}, {0, 2}}), []float64{4})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// singular systems still return a best-effort column
	x, red, err = gaussjordan.Solve(mustRows(t, [][]float64{{1, 1}, {1, 1}}), []float64{2, 2})
	require.NoError(t, err)
	assert.False(t, red.Complete)
	assert.Len(t, x, 2)
}
