// SPDX-License-Identifier: MIT
// Package order: stable counting sort of group labels.

package order

import "github.com/katalvlaran/lvlagg/core"

// LabelSort computes a stable permutation that groups row indices by
// label: rows with label -1 first (the "NA group" span), then every real
// group in ascending label order, each span preserving original row
// order.
//
// Returns:
//   - indexer: length len(labels); indexer[pos] is the row index placed
//     at position pos of the sorted order.
//   - counts:  length ngroups+1; counts[0] is the NA-group span length,
//     counts[g+1] the span length of group g. The span of group g starts
//     at offset counts[0]+counts[1]+...+counts[g].
//
// Counting sort: two passes over labels, O(n + ngroups) time and memory.
// Returns core.ErrInvalidArgument when ngroups < 0 or a label falls
// outside [-1, ngroups).
func LabelSort(labels []int, ngroups int) (indexer []int, counts []int64, err error) {
	if ngroups < 0 {
		return nil, nil, core.ErrInvalidArgument
	}

	n := len(labels)
	counts = make([]int64, ngroups+1)

	// Pass 1: tally span sizes (label -1 maps to bucket 0).
	var lab int
	for i := 0; i < n; i++ {
		lab = labels[i]
		if lab < -1 || lab >= ngroups {
			return nil, nil, core.ErrInvalidArgument
		}
		counts[lab+1]++
	}

	// Prefix the tallies into starting write cursors per bucket.
	where := make([]int64, ngroups+1)
	for g := 1; g <= ngroups; g++ {
		where[g] = where[g-1] + counts[g-1]
	}

	// Pass 2: scatter row indices, stable within each bucket.
	indexer = make([]int, n)
	for i := 0; i < n; i++ {
		lab = labels[i] + 1
		indexer[where[lab]] = i
		where[lab]++
	}

	return indexer, counts, nil
}
