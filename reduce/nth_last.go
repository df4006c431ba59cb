// SPDX-License-Identifier: MIT
// Package reduce: positional selectors (first / nth / last non-NA).

package reduce

import (
	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/na"
)

// First records the first non-NA value of every (group, column) cell —
// Nth with Rank 1. Works for every element family, object included.
func First[T any, P na.Policy[T]](
	pol P,
	out core.Block[T],
	counts []int64,
	values core.Block[T],
	labels []int,
	opts Options,
) error {
	n := DefaultNthOptions()
	n.Options = opts

	return Nth(pol, out, counts, values, labels, n)
}

// Nth records the value observed when a cell's non-NA tally first
// reaches opts.Rank (1-based, in ascending row order). The cell freezes
// there: later observations never overwrite it. Cells whose tally stays
// below max(MinCount, 1) — or that never reach Rank — end up NA.
//
// Complexity: O(N·K) time, O(G·K) scratch.
func Nth[T any, P na.Policy[T]](
	pol P,
	out core.Block[T],
	counts []int64,
	values core.Block[T],
	labels []int,
	opts NthOptions,
) error {
	ngroups, err := validateReduce(out, counts, values, labels, opts.Options)
	if err != nil {
		return errReduce(err)
	}
	if opts.Rank < 1 {
		return errReduce(core.ErrInvalidArgument)
	}

	k := values.Cols
	nobs := make([]int64, ngroups*k)
	picked := make([]bool, ngroups*k)
	acc := make([]T, ngroups*k)

	var (
		lab, base, gbase, flat int
		v                      T
	)
	for i := 0; i < values.Rows; i++ {
		lab = labels[i]
		if lab < 0 {
			continue
		}
		counts[lab]++
		base = i * k
		gbase = lab * k
		for j := 0; j < k; j++ {
			flat = base + j
			v = values.Data[flat]
			if cellNA(pol, opts.Mask, flat, v) {
				continue
			}
			nobs[gbase+j]++
			if nobs[gbase+j] == opts.Rank {
				acc[gbase+j] = v
				picked[gbase+j] = true
			}
		}
	}

	threshold := minCountAtLeastOne(opts.MinCount)
	for g := 0; g < ngroups; g++ {
		gbase = g * k
		for j := 0; j < k; j++ {
			flat = gbase + j
			if !picked[flat] || nobs[flat] < threshold {
				if err = setNA(pol, out, opts.ResultMask, flat); err != nil {
					return errReduce(err)
				}
				continue
			}
			out.Data[flat] = acc[flat]
		}
	}

	return nil
}

// Last records the most recent non-NA value of every (group, column)
// cell: each non-NA observation overwrites the previous one, so the
// ascending row order decides. Cells with fewer than max(MinCount, 1)
// observations end up NA.
func Last[T any, P na.Policy[T]](
	pol P,
	out core.Block[T],
	counts []int64,
	values core.Block[T],
	labels []int,
	opts Options,
) error {
	ngroups, err := validateReduce(out, counts, values, labels, opts)
	if err != nil {
		return errReduce(err)
	}

	k := values.Cols
	nobs := make([]int64, ngroups*k)
	acc := make([]T, ngroups*k)

	var (
		lab, base, gbase, flat int
		v                      T
	)
	for i := 0; i < values.Rows; i++ {
		lab = labels[i]
		if lab < 0 {
			continue
		}
		counts[lab]++
		base = i * k
		gbase = lab * k
		for j := 0; j < k; j++ {
			flat = base + j
			v = values.Data[flat]
			if cellNA(pol, opts.Mask, flat, v) {
				continue
			}
			nobs[gbase+j]++
			acc[gbase+j] = v
		}
	}

	threshold := minCountAtLeastOne(opts.MinCount)
	for g := 0; g < ngroups; g++ {
		gbase = g * k
		for j := 0; j < k; j++ {
			flat = gbase + j
			if nobs[flat] < threshold {
				if err = setNA(pol, out, opts.ResultMask, flat); err != nil {
					return errReduce(err)
				}
				continue
			}
			out.Data[flat] = acc[flat]
		}
	}

	return nil
}
