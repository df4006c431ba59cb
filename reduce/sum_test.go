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

// block builds an N×K float64 block from a flat row-major literal.
func block(t *testing.T, data []float64, rows, cols int) core.Block[float64] {
	t.Helper()
	b, err := core.BlockFrom(data, rows, cols)
	require.NoError(t, err)

	return b
}

// TestSum_NAAndMinCount is the canonical sum scenario: one NaN per
// column, a raised observation threshold, counts per label.
func TestSum_NAAndMinCount(t *testing.T) {
	values := block(t, []float64{
		1, 2,
		math.NaN(), 3,
		4, math.NaN(),
	}, 3, 2)
	labels := []int{0, 0, 1}

	out := block(t, make([]float64, 4), 2, 2)
	counts := make([]int64, 2)
	opts := reduce.DefaultOptions()
	opts.MinCount = 2

	require.NoError(t, reduce.Sum(na.Float[float64]{}, out, counts, values, labels, opts))

	assert.True(t, math.IsNaN(out.Data[0]), "group 0 col 0 has one observation")
	assert.Equal(t, 5.0, out.Data[1])
	assert.True(t, math.IsNaN(out.Data[2]))
	assert.True(t, math.IsNaN(out.Data[3]))
	assert.Equal(t, []int64{2, 1}, counts, "counts include all-NA cells' rows")
}

// TestSum_EmptyGroupDefaultsToZero verifies the identity value with the
// threshold unset.
func TestSum_EmptyGroupDefaultsToZero(t *testing.T) {
	values := block(t, []float64{1, 2}, 2, 1)
	labels := []int{1, 1} // group 0 stays empty

	out := block(t, make([]float64, 2), 2, 1)
	counts := make([]int64, 2)

	require.NoError(t, reduce.Sum(na.Float[float64]{}, out, counts, values, labels, reduce.DefaultOptions()))
	assert.Equal(t, 0.0, out.Data[0], "empty group sums to zero")
	assert.Equal(t, 3.0, out.Data[1])
}

// TestSum_KahanCompensation verifies a term plain summation would lose.
func TestSum_KahanCompensation(t *testing.T) {
	values := block(t, []float64{1e16, 1, -1e16}, 3, 1)
	labels := []int{0, 0, 0}

	out := block(t, make([]float64, 1), 1, 1)
	counts := make([]int64, 1)

	require.NoError(t, reduce.Sum(na.Float[float64]{}, out, counts, values, labels, reduce.DefaultOptions()))
	assert.Equal(t, 1.0, out.Data[0])
}

// TestSum_LabelSkipping verifies rows of the NA group contribute to
// nothing.
func TestSum_LabelSkipping(t *testing.T) {
	values := block(t, []float64{1, 100, 2}, 3, 1)
	labels := []int{0, -1, 0}

	out := block(t, make([]float64, 1), 1, 1)
	counts := make([]int64, 1)

	require.NoError(t, reduce.Sum(na.Float[float64]{}, out, counts, values, labels, reduce.DefaultOptions()))
	assert.Equal(t, 3.0, out.Data[0])
	assert.Equal(t, []int64{2}, counts)
}

// TestSum_ValidityMask verifies an external mask overrides the values'
// bit patterns.
func TestSum_ValidityMask(t *testing.T) {
	values := block(t, []float64{1, 2, 4}, 3, 1)
	labels := []int{0, 0, 0}
	mask, err := core.BlockFrom([]bool{false, true, false}, 3, 1)
	require.NoError(t, err)

	out := block(t, make([]float64, 1), 1, 1)
	counts := make([]int64, 1)
	opts := reduce.DefaultOptions()
	opts.Mask = mask

	require.NoError(t, reduce.Sum(na.Float[float64]{}, out, counts, values, labels, opts))
	assert.Equal(t, 5.0, out.Data[0], "masked 2 must not contribute")
}

// TestSum_Int64Datetimelike verifies NaT skipping and the NaT output
// representation under a raised threshold.
func TestSum_Int64Datetimelike(t *testing.T) {
	values, err := core.BlockFrom([]int64{10, core.NaT, 20}, 3, 1)
	require.NoError(t, err)
	labels := []int{0, 1, 0}

	out, err := core.BlockFrom(make([]int64, 2), 2, 1)
	require.NoError(t, err)
	counts := make([]int64, 2)
	opts := reduce.DefaultOptions()
	opts.MinCount = 1

	pol := na.Int64{DatetimeLike: true}
	require.NoError(t, reduce.Sum(pol, out, counts, values, labels, opts))
	assert.Equal(t, int64(30), out.Data[0])
	assert.Equal(t, core.NaT, out.Data[1], "all-NaT group emits the sentinel")
}

// TestSum_Uint64EmptyGroup verifies the unsigned failure path and its
// result-mask escape hatch.
func TestSum_Uint64EmptyGroup(t *testing.T) {
	values, err := core.BlockFrom([]uint64{1, 2}, 2, 1)
	require.NoError(t, err)
	labels := []int{1, 1} // group 0 empty

	out, err := core.BlockFrom(make([]uint64, 2), 2, 1)
	require.NoError(t, err)
	counts := make([]int64, 2)
	opts := reduce.DefaultOptions()
	opts.MinCount = 1

	err = reduce.Sum(na.Uint64{}, out, counts, values, labels, opts)
	assert.ErrorIs(t, err, core.ErrEmptyGroupUnsigned)

	// With a result mask, the same call succeeds and flags the cell.
	rm, err := core.BlockFrom(make([]bool, 2), 2, 1)
	require.NoError(t, err)
	counts = make([]int64, 2)
	opts.ResultMask = rm
	require.NoError(t, reduce.Sum(na.Uint64{}, out, counts, values, labels, opts))
	assert.True(t, rm.Data[0])
	assert.False(t, rm.Data[1])
	assert.Equal(t, uint64(3), out.Data[1])
}

// TestSum_LengthMismatch verifies validation fires before any write.
func TestSum_LengthMismatch(t *testing.T) {
	values := block(t, []float64{1, 2}, 2, 1)
	out := block(t, []float64{-7}, 1, 1)
	counts := make([]int64, 1)

	err := reduce.Sum(na.Float[float64]{}, out, counts, values, []int{0}, reduce.DefaultOptions())
	assert.ErrorIs(t, err, core.ErrLengthMismatch)
	assert.Equal(t, -7.0, out.Data[0], "no write on validation failure")
}

// TestSumObject verifies assign-on-first and the combiner from the
// second contribution on.
func TestSumObject(t *testing.T) {
	values, err := core.BlockFrom([]any{"a", nil, "b"}, 3, 1)
	require.NoError(t, err)
	labels := []int{0, 0, 0}

	out, err := core.BlockFrom(make([]any, 1), 1, 1)
	require.NoError(t, err)
	counts := make([]int64, 1)

	concat := func(acc, v any) any { return acc.(string) + v.(string) }
	require.NoError(t, reduce.SumObject(na.Object{}, concat, out, counts, values, labels, reduce.DefaultOptions()))
	assert.Equal(t, "ab", out.Data[0])

	// A nil combiner is a caller bug, not a crash.
	err = reduce.SumObject(na.Object{}, nil, out, counts, values, labels, reduce.DefaultOptions())
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

// TestProd verifies products, missing handling, and the identity value
// for empty groups.
func TestProd(t *testing.T) {
	values := block(t, []float64{2, 3, math.NaN(), 4}, 4, 1)
	labels := []int{0, 0, 0, 1}

	out := block(t, make([]float64, 3), 3, 1)
	counts := make([]int64, 3)

	require.NoError(t, reduce.Prod(out, counts, values, labels, reduce.DefaultOptions()))
	assert.Equal(t, 6.0, out.Data[0])
	assert.Equal(t, 4.0, out.Data[1])
	assert.Equal(t, 1.0, out.Data[2], "empty group keeps the identity product")
}

// TestSum_MinCountMonotone verifies raising the threshold only ever
// turns finite cells into NA.
func TestSum_MinCountMonotone(t *testing.T) {
	values := block(t, []float64{1, 2, 3}, 3, 1)
	labels := []int{0, 0, 1}

	for mc := int64(0); mc <= 4; mc++ {
		out := block(t, make([]float64, 2), 2, 1)
		counts := make([]int64, 2)
		opts := reduce.DefaultOptions()
		opts.MinCount = mc
		require.NoError(t, reduce.Sum(na.Float[float64]{}, out, counts, values, labels, opts))

		if mc <= 2 {
			assert.Equal(t, 3.0, out.Data[0], "mc=%d", mc)
		} else {
			assert.True(t, math.IsNaN(out.Data[0]), "mc=%d", mc)
		}
		if mc <= 1 {
			assert.Equal(t, 3.0, out.Data[1], "mc=%d", mc)
		} else {
			assert.True(t, math.IsNaN(out.Data[1]), "mc=%d", mc)
		}
	}
}
