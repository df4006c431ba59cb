package reduce_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/reduce"
)

// TestMean_Basic verifies per-group means with a missing cell.
func TestMean_Basic(t *testing.T) {
	values := block(t, []float64{1, 3, math.NaN(), 10}, 4, 1)
	labels := []int{0, 0, 0, 1}

	out := block(t, make([]float64, 2), 2, 1)
	counts := make([]int64, 2)

	require.NoError(t, reduce.Mean(out, counts, values, labels, reduce.DefaultOptions()))
	assert.Equal(t, 2.0, out.Data[0], "NaN excluded from the mean")
	assert.Equal(t, 10.0, out.Data[1])
	assert.Equal(t, []int64{3, 1}, counts)
}

// TestMean_EmptyGroupIsNaN verifies the ≥1 observation requirement.
func TestMean_EmptyGroupIsNaN(t *testing.T) {
	values := block(t, []float64{math.NaN()}, 1, 1)
	labels := []int{0}

	out := block(t, make([]float64, 2), 2, 1)
	counts := make([]int64, 2)

	require.NoError(t, reduce.Mean(out, counts, values, labels, reduce.DefaultOptions()))
	assert.True(t, math.IsNaN(out.Data[0]))
	assert.True(t, math.IsNaN(out.Data[1]))
}

// TestMean_RejectsMinCount verifies the fixed-threshold contract.
func TestMean_RejectsMinCount(t *testing.T) {
	values := block(t, []float64{1}, 1, 1)
	out := block(t, make([]float64, 1), 1, 1)
	opts := reduce.DefaultOptions()
	opts.MinCount = 2

	err := reduce.Mean(out, make([]int64, 1), values, []int{0}, opts)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

// TestMeanInt64_Datetimelike is the timestamp-mean scenario: NaT rows
// drop out and the division truncates.
func TestMeanInt64_Datetimelike(t *testing.T) {
	values, err := core.BlockFrom([]int64{100, core.NaT, 200, 300}, 4, 1)
	require.NoError(t, err)
	labels := []int{0, 0, 1, 1}

	out, err := core.BlockFrom(make([]int64, 2), 2, 1)
	require.NoError(t, err)
	counts := make([]int64, 2)

	require.NoError(t, reduce.MeanInt64(out, counts, values, labels, true, reduce.DefaultOptions()))
	assert.Equal(t, int64(100), out.Data[0])
	assert.Equal(t, int64(250), out.Data[1])
	assert.Equal(t, []int64{2, 2}, counts)
}

// TestMeanInt64_EmptyGroupIsNaT verifies the sentinel output.
func TestMeanInt64_EmptyGroupIsNaT(t *testing.T) {
	values, err := core.BlockFrom([]int64{core.NaT}, 1, 1)
	require.NoError(t, err)

	out, err := core.BlockFrom(make([]int64, 1), 1, 1)
	require.NoError(t, err)
	counts := make([]int64, 1)

	require.NoError(t, reduce.MeanInt64(out, counts, values, []int{0}, true, reduce.DefaultOptions()))
	assert.Equal(t, core.NaT, out.Data[0])
}

// TestVar_SingleObservationGroup is the ddof scenario: one group with
// two points, one with a single point.
func TestVar_SingleObservationGroup(t *testing.T) {
	values := block(t, []float64{5, 7, 9}, 3, 1)
	labels := []int{0, 0, 1}

	out := block(t, make([]float64, 2), 2, 1)
	counts := make([]int64, 2)

	require.NoError(t, reduce.Var(out, counts, values, labels, reduce.DefaultVarOptions()))
	assert.Equal(t, 2.0, out.Data[0])
	assert.True(t, math.IsNaN(out.Data[1]), "n ≤ ddof is undefined")
}

// TestVar_DDofZero verifies the population variance path.
func TestVar_DDofZero(t *testing.T) {
	values := block(t, []float64{1, 3}, 2, 1)
	labels := []int{0, 0}

	out := block(t, make([]float64, 1), 1, 1)
	opts := reduce.DefaultVarOptions()
	opts.DDof = 0

	require.NoError(t, reduce.Var(out, make([]int64, 1), values, labels, opts))
	assert.Equal(t, 1.0, out.Data[0])
}

// TestVar_BadArguments verifies rejection of a negative ddof and a
// supplied min-count.
func TestVar_BadArguments(t *testing.T) {
	values := block(t, []float64{1}, 1, 1)
	out := block(t, make([]float64, 1), 1, 1)

	opts := reduce.DefaultVarOptions()
	opts.DDof = -1
	assert.ErrorIs(t, reduce.Var(out, make([]int64, 1), values, []int{0}, opts), core.ErrInvalidArgument)

	opts = reduce.DefaultVarOptions()
	opts.MinCount = 3
	assert.ErrorIs(t, reduce.Var(out, make([]int64, 1), values, []int{0}, opts), core.ErrInvalidArgument)
}
