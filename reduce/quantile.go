// SPDX-License-Identifier: MIT
// Package reduce: interpolated group quantiles.

package reduce

import (
	"math"

	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/na"
)

// Quantile computes interpolated quantiles of a single series per group.
//
// sortIndexer is a caller-provided permutation ordering rows first by
// label ascending (the -1 "NA group" leading), then by value ascending
// with missing rows at the tail of each group's span — typically built
// on top of order.LabelSort. out is G×|Qs|, float64. Probabilities
// outside [0,1] and unknown interpolation tags are rejected before any
// computation.
//
// Per group g with m non-NA rows and each probability q:
//
//	idx  = grpStart + ⌊q·(m−1)⌋
//	frac = q·(m−1) − ⌊q·(m−1)⌋
//
// frac = 0 (and mode lower) take the order statistic at idx directly;
// otherwise the next statistic joins per the interpolation mode. Groups
// with m = 0 emit NaN for every q (or set the result mask).
//
// Complexity: O(N + G·|Qs|) given the precomputed permutation.
func Quantile[T core.Real, P na.Policy[T]](
	pol P,
	out core.Block[float64],
	values []T,
	labels []int,
	sortIndexer []int,
	opts QuantileOptions,
) error {
	// Validation: lengths, tags, probability domain.
	n := len(values)
	if len(labels) != n || len(sortIndexer) != n {
		return errReduce(core.ErrLengthMismatch)
	}
	if opts.Mask != nil && len(opts.Mask) != n {
		return errReduce(core.ErrShapeMismatch)
	}
	if opts.Interpolation > InterpMidpoint || len(opts.Qs) == 0 {
		return errReduce(core.ErrInvalidArgument)
	}
	for _, q := range opts.Qs {
		if q < 0 || q > 1 || q != q {
			return errReduce(core.ErrInvalidArgument)
		}
	}
	ngroups := out.Rows
	nq := len(opts.Qs)
	if out.Cols != nq || len(out.Data) != ngroups*nq {
		return errReduce(core.ErrShapeMismatch)
	}
	if err := core.ValidateMask(opts.ResultMask, ngroups, nq); err != nil {
		return errReduce(err)
	}

	missing := func(i int) bool {
		if opts.Mask != nil {
			return opts.Mask[i]
		}

		return pol.IsNA(values[i])
	}

	// Per-group tallies: total span lengths and non-NA counts.
	grpSizes := make([]int, ngroups)
	nonNA := make([]int, ngroups)
	naGroup := 0
	for i := 0; i < n; i++ {
		lab := labels[i]
		if lab < 0 {
			naGroup++
			continue
		}
		if lab >= ngroups {
			return errReduce(core.ErrInvalidArgument)
		}
		grpSizes[lab]++
		if !missing(i) {
			nonNA[lab]++
		}
	}

	grpStart := naGroup // the -1 span leads the permutation
	for g := 0; g < ngroups; g++ {
		m := nonNA[g]
		obase := g * nq
		for qi, q := range opts.Qs {
			if m == 0 {
				if !opts.ResultMask.IsEmpty() {
					opts.ResultMask.Data[obase+qi] = true
				} else {
					out.Data[obase+qi] = math.NaN()
				}
				continue
			}

			pos := q * float64(m-1)
			idx := grpStart + int(pos)
			frac := pos - math.Floor(pos)
			v := float64(values[sortIndexer[idx]])

			if frac == 0 || opts.Interpolation == InterpLower {
				out.Data[obase+qi] = v
				continue
			}

			next := float64(values[sortIndexer[idx+1]])
			switch opts.Interpolation {
			case InterpLinear:
				out.Data[obase+qi] = v + (next-v)*frac
			case InterpHigher:
				out.Data[obase+qi] = next
			case InterpMidpoint:
				out.Data[obase+qi] = (v + next) / 2
			case InterpNearest:
				if frac > 0.5 || (frac == 0.5 && q > 0.5) {
					out.Data[obase+qi] = next
				} else {
					out.Data[obase+qi] = v
				}
			}
		}
		grpStart += grpSizes[g]
	}

	return nil
}
