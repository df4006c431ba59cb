// SPDX-License-Identifier: MIT
// Package rank: per-column group-aware ranking.

package rank

import (
	"fmt"

	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/na"
	"github.com/katalvlaran/lvlagg/order"
)

// Rank writes the within-group rank of every cell of values into out
// (N×K float64). Rows with label -1 rank as NaN. mask, when supplied,
// overrides the policy's per-value missingness test.
//
// Each column is sliced into a contiguous scratch pair, ranked by
// order.Rank1D, and copied back — the block layout never leaks into the
// rank routine.
//
// Complexity: O(K·N log N) time, O(N) scratch reused across columns.
func Rank[T core.Real, P na.Policy[T]](
	pol P,
	out core.Block[float64],
	values core.Block[T],
	labels []int,
	mask core.Bools,
	opts order.RankOptions,
) error {
	if err := core.ValidateAligned(values.Rows, labels, 0); err != nil {
		return fmt.Errorf("rank: %w", err)
	}
	if err := core.ValidateShape(out, values.Rows, values.Cols); err != nil {
		return fmt.Errorf("rank: %w", err)
	}
	if err := core.ValidateMask(mask, values.Rows, values.Cols); err != nil {
		return fmt.Errorf("rank: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("rank: %w", err)
	}

	n, k := values.Rows, values.Cols
	colVals := make([]T, n)
	colOut := make([]float64, n)
	var colMask []bool
	if !mask.IsEmpty() {
		colMask = make([]bool, n)
	}

	for j := 0; j < k; j++ {
		for i := 0; i < n; i++ {
			colVals[i] = values.Data[i*k+j]
			if colMask != nil {
				colMask[i] = mask.Data[i*k+j]
			}
		}
		if err := order.Rank1D(pol, colOut, colVals, labels, colMask, opts); err != nil {
			return fmt.Errorf("rank: %w", err)
		}
		for i := 0; i < n; i++ {
			out.Data[i*k+j] = colOut[i]
		}
	}

	return nil
}
