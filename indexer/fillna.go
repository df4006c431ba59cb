// SPDX-License-Identifier: MIT
// Package indexer: forward/backward fill source positions.

package indexer

import (
	"fmt"

	"github.com/katalvlaran/lvlagg/core"
)

// Fillna fills out[i] with the row index a missing position copies from
// under forward fill, or -1 when nothing fills it. sortedLabels is a
// stable argsort of labels (order.LabelSort); pass it reversed for
// backward fill. mask marks missing rows (true = missing). limit caps
// consecutive fills from one source (-1 = unbounded). When dropna is
// set, rows with label -1 map to -1 and break any fill chain.
//
// The walk follows sortedLabels, tracking the last non-missing row of
// the current group and the number of consecutive fills since it; both
// reset at every group boundary. A position past the limit maps to -1
// and stays unfilled until the next real value.
//
// Complexity: O(N) time, O(1) scratch.
func Fillna(out, labels, sortedLabels []int, mask []bool, limit int, dropna bool) error {
	n := len(labels)
	if len(out) != n || len(sortedLabels) != n || len(mask) != n {
		return fmt.Errorf("indexer: %w", core.ErrLengthMismatch)
	}
	if limit < -1 {
		return fmt.Errorf("indexer: %w", core.ErrInvalidArgument)
	}

	currFillIdx := -1
	filledVals := 0

	var idx int
	for i := 0; i < n; i++ {
		idx = sortedLabels[i]
		switch {
		case dropna && labels[idx] == -1:
			currFillIdx = -1
		case mask[idx]:
			// Stop filling once past the limit; the counter keeps
			// growing so the chain stays broken until a real value.
			if limit != -1 && filledVals >= limit {
				currFillIdx = -1
			}
			filledVals++
		default:
			filledVals = 0
			currFillIdx = idx
		}
		out[idx] = currFillIdx

		// Group boundary: nothing carries across labels.
		if i == n-1 || labels[idx] != labels[sortedLabels[i+1]] {
			currFillIdx = -1
			filledVals = 0
		}
	}

	return nil
}
