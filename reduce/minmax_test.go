package reduce_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/na"
	"github.com/katalvlaran/lvlagg/reduce"
)

// TestMinMax_Float verifies extrema per group with NaN exclusion.
func TestMinMax_Float(t *testing.T) {
	values := block(t, []float64{3, math.NaN(), 1, 7, 2}, 5, 1)
	labels := []int{0, 0, 0, 1, 1}

	outMin := block(t, make([]float64, 2), 2, 1)
	outMax := block(t, make([]float64, 2), 2, 1)
	pol := na.Float[float64]{}

	require.NoError(t, reduce.Min(pol, outMin, make([]int64, 2), values, labels, reduce.DefaultOptions()))
	require.NoError(t, reduce.Max(pol, outMax, make([]int64, 2), values, labels, reduce.DefaultOptions()))

	assert.Equal(t, 1.0, outMin.Data[0])
	assert.Equal(t, 3.0, outMax.Data[0])
	assert.Equal(t, 2.0, outMin.Data[1])
	assert.Equal(t, 7.0, outMax.Data[1])
}

// TestMinMax_EmptyGroupAlwaysNA verifies the implicit ≥1 threshold.
func TestMinMax_EmptyGroupAlwaysNA(t *testing.T) {
	values := block(t, []float64{5}, 1, 1)
	labels := []int{1} // group 0 empty

	out := block(t, make([]float64, 2), 2, 1)
	require.NoError(t, reduce.Min(na.Float[float64]{}, out, make([]int64, 2), values, labels, reduce.DefaultOptions()))
	assert.True(t, math.IsNaN(out.Data[0]), "empty group is NA even with MinCount unset")
	assert.Equal(t, 5.0, out.Data[1])
}

// TestMinMax_Int64Datetimelike verifies NaT exclusion and the sentinel
// NA output.
func TestMinMax_Int64Datetimelike(t *testing.T) {
	values, err := core.BlockFrom([]int64{30, core.NaT, 10, core.NaT}, 4, 1)
	require.NoError(t, err)
	labels := []int{0, 0, 0, 1}

	out, err := core.BlockFrom(make([]int64, 2), 2, 1)
	require.NoError(t, err)

	pol := na.Int64{DatetimeLike: true}
	require.NoError(t, reduce.Min(pol, out, make([]int64, 2), values, labels, reduce.DefaultOptions()))
	assert.Equal(t, int64(10), out.Data[0])
	assert.Equal(t, core.NaT, out.Data[1], "all-NaT group emits the sentinel")
}

// TestMinMax_Uint64 verifies the unsigned seeds and the result-mask
// requirement for empty groups.
func TestMinMax_Uint64(t *testing.T) {
	values, err := core.BlockFrom([]uint64{7, 3, math.MaxUint64}, 3, 1)
	require.NoError(t, err)
	labels := []int{0, 0, 0}

	out, err := core.BlockFrom(make([]uint64, 1), 1, 1)
	require.NoError(t, err)
	require.NoError(t, reduce.Max(na.Uint64{}, out, make([]int64, 1), values, labels, reduce.DefaultOptions()))
	assert.Equal(t, uint64(math.MaxUint64), out.Data[0])

	// Empty group without a result mask fails fast.
	out2, err := core.BlockFrom(make([]uint64, 2), 2, 1)
	require.NoError(t, err)
	err = reduce.Min(na.Uint64{}, out2, make([]int64, 2), values, labels, reduce.DefaultOptions())
	assert.ErrorIs(t, err, core.ErrEmptyGroupUnsigned)
}

// TestMinMax_MinCount verifies the max(μ,1) coercion.
func TestMinMax_MinCount(t *testing.T) {
	values := block(t, []float64{1, 2, 9}, 3, 1)
	labels := []int{0, 0, 1}

	out := block(t, make([]float64, 2), 2, 1)
	opts := reduce.DefaultOptions()
	opts.MinCount = 2

	require.NoError(t, reduce.Max(na.Float[float64]{}, out, make([]int64, 2), values, labels, opts))
	assert.Equal(t, 2.0, out.Data[0])
	assert.True(t, math.IsNaN(out.Data[1]), "one observation under μ=2")
}
