// SPDX-License-Identifier: MIT
// Package reduce: group medians via partial selection.

package reduce

import (
	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/na"
	"github.com/katalvlaran/lvlagg/order"
)

// Median computes the per-group, per-column median. Floating element
// families only; opts.MinCount must stay unset.
//
// Stage 1 (Validate): shared checks.
// Stage 2 (Partition): one stable counting sort of the labels
// (order.LabelSort) yields contiguous row spans per group.
// Stage 3 (Select): for every column, each group's non-NA values are
// gathered into a reusable scratch span that order.KthSmallest may
// partition in place. Odd counts take the middle order statistic; even
// counts average the two middle ones (the lower middle is the maximum of
// the partitioned left half — no second selection needed). Empty cells
// become NaN or set the result mask.
//
// Complexity: O(K·N) expected time on top of the O(N + G) label sort;
// O(N) scratch reused across columns.
func Median[T core.Float](
	out core.Block[T],
	counts []int64,
	values core.Block[T],
	labels []int,
	opts Options,
) error {
	var pol na.Float[T]
	ngroups, err := validateReduce(out, counts, values, labels, opts)
	if err != nil {
		return errReduce(err)
	}
	if opts.MinCount != MinCountUnset {
		return errReduce(core.ErrInvalidArgument)
	}

	// Stage 2: label partition (NA-group span first, then group spans).
	indexer, spans, err := order.LabelSort(labels, ngroups)
	if err != nil {
		return errReduce(err)
	}
	for g := 0; g < ngroups; g++ {
		counts[g] += spans[g+1]
	}

	k := values.Cols
	scratch := make([]T, 0, values.Rows)

	var (
		row, flat int
		v, m      T
	)
	for j := 0; j < k; j++ {
		off := int(spans[0]) // skip the NA-group span
		for g := 0; g < ngroups; g++ {
			cnt := int(spans[g+1])

			// Gather the group's non-NA column values into scratch.
			scratch = scratch[:0]
			for pos := off; pos < off+cnt; pos++ {
				row = indexer[pos]
				flat = row*k + j
				v = values.Data[flat]
				if cellNA(pol, opts.Mask, flat, v) {
					continue
				}
				scratch = append(scratch, v)
			}
			off += cnt

			flat = g*k + j
			n := len(scratch)
			if n == 0 {
				if err = setNA(pol, out, opts.ResultMask, flat); err != nil {
					return errReduce(err)
				}
				continue
			}

			// Stage 3: select the middle order statistic(s) in place.
			half := n / 2
			m = order.KthSmallest(scratch, half)
			if n%2 == 1 {
				out.Data[flat] = m
				continue
			}
			lower := scratch[0] // max of the partitioned left half
			for t := 1; t < half; t++ {
				if scratch[t] > lower {
					lower = scratch[t]
				}
			}
			out.Data[flat] = (lower + m) / 2
		}
	}

	return nil
}
