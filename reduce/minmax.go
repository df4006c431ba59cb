// SPDX-License-Identifier: MIT
// Package reduce: group extrema.

package reduce

import (
	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/na"
)

// Min computes the per-group, per-column minimum. Ordered element
// families only (int64, uint64, float32, float64). The observation
// threshold is max(opts.MinCount, 1): a group with no non-NA cells is
// always NA.
func Min[T core.Real, P na.Policy[T]](
	pol P,
	out core.Block[T],
	counts []int64,
	values core.Block[T],
	labels []int,
	opts Options,
) error {
	return minMax(pol, out, counts, values, labels, opts, false)
}

// Max computes the per-group, per-column maximum. Same contract as Min.
func Max[T core.Real, P na.Policy[T]](
	pol P,
	out core.Block[T],
	counts []int64,
	values core.Block[T],
	labels []int,
	opts Options,
) error {
	return minMax(pol, out, counts, values, labels, opts, true)
}

// minMax is the fused extremum kernel behind Min and Max.
//
// Stage 1 (Validate): shared checks + element-family sentinel lookup.
// Stage 2 (Accumulate): running extremum per (group, column), started at
// the type's extreme sentinel so the first real value always wins.
// Stage 3 (Finalize): cells below max(MinCount, 1) observations become
// NA; an unsatisfiable uint64 NA without a result mask aborts with
// core.ErrEmptyGroupUnsigned.
func minMax[T core.Real, P na.Policy[T]](
	pol P,
	out core.Block[T],
	counts []int64,
	values core.Block[T],
	labels []int,
	opts Options,
	computeMax bool,
) error {
	ngroups, err := validateReduce(out, counts, values, labels, opts)
	if err != nil {
		return errReduce(err)
	}
	start, err := core.ExtremeOf[T](computeMax)
	if err != nil {
		return errReduce(err)
	}

	k := values.Cols
	nobs := make([]int64, ngroups*k)
	acc := make([]T, ngroups*k)
	for i := range acc {
		acc[i] = start
	}

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
			if computeMax {
				if v > acc[gbase+j] {
					acc[gbase+j] = v
				}
			} else if v < acc[gbase+j] {
				acc[gbase+j] = v
			}
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
