package rank_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/na"
	"github.com/katalvlaran/lvlagg/order"
	"github.com/katalvlaran/lvlagg/rank"
)

// TestRank_PerColumn verifies each column ranks independently over the
// row-major block.
func TestRank_PerColumn(t *testing.T) {
	values, err := core.BlockFrom([]float64{
		3, 10,
		1, 30,
		2, 20,
	}, 3, 2)
	require.NoError(t, err)
	labels := []int{0, 0, 0}

	out, err := core.NewBlock[float64](3, 2)
	require.NoError(t, err)
	require.NoError(t, rank.Rank(na.Float[float64]{}, out, values, labels, core.Bools{}, order.DefaultRankOptions()))

	assert.Equal(t, []float64{3, 1, 1, 3, 2, 2}, out.Data)
}

// TestRank_GroupsAndNA verifies group restarts, NaN for the NA group,
// and the mask column slicing.
func TestRank_GroupsAndNA(t *testing.T) {
	values, err := core.BlockFrom([]float64{5, 1, 7, 3, 4}, 5, 1)
	require.NoError(t, err)
	labels := []int{0, 0, 1, -1, 1}
	mask, err := core.BlockFrom([]bool{false, true, false, false, false}, 5, 1)
	require.NoError(t, err)

	out, err := core.NewBlock[float64](5, 1)
	require.NoError(t, err)
	require.NoError(t, rank.Rank(na.Float[float64]{}, out, values, labels, mask, order.DefaultRankOptions()))

	assert.Equal(t, 1.0, out.Data[0], "masked row leaves a single ranked value")
	assert.True(t, math.IsNaN(out.Data[1]))
	assert.Equal(t, 2.0, out.Data[2])
	assert.True(t, math.IsNaN(out.Data[3]), "label -1 ranks as NaN")
	assert.Equal(t, 1.0, out.Data[4])
}

// TestRank_Int64Datetimelike verifies ranking over the sentinel-NA
// integer family.
func TestRank_Int64Datetimelike(t *testing.T) {
	values, err := core.BlockFrom([]int64{30, core.NaT, 10}, 3, 1)
	require.NoError(t, err)
	labels := []int{0, 0, 0}

	out, err := core.NewBlock[float64](3, 1)
	require.NoError(t, err)
	pol := na.Int64{DatetimeLike: true}
	require.NoError(t, rank.Rank(pol, out, values, labels, core.Bools{}, order.DefaultRankOptions()))

	assert.Equal(t, 2.0, out.Data[0])
	assert.True(t, math.IsNaN(out.Data[1]))
	assert.Equal(t, 1.0, out.Data[2])
}

// TestRank_Validation verifies shape and option rejection.
func TestRank_Validation(t *testing.T) {
	values, err := core.BlockFrom([]float64{1, 2}, 2, 1)
	require.NoError(t, err)
	short, err := core.NewBlock[float64](1, 1)
	require.NoError(t, err)

	err = rank.Rank(na.Float[float64]{}, short, values, []int{0, 0}, core.Bools{}, order.DefaultRankOptions())
	assert.ErrorIs(t, err, core.ErrShapeMismatch)

	out, err := core.NewBlock[float64](2, 1)
	require.NoError(t, err)
	bad := order.DefaultRankOptions()
	bad.NAOption = order.NABottom + 1
	err = rank.Rank(na.Float[float64]{}, out, values, []int{0, 0}, core.Bools{}, bad)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}
