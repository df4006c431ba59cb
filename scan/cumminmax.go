// SPDX-License-Identifier: MIT
// Package scan: cumulative extrema with a per-cell NA latch.

package scan

import (
	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/na"
)

// Cummin writes the within-group running minimum of every cell. Ordered
// element families only. See cumMinMax for the NA latch contract.
func Cummin[T core.Real, P na.Policy[T]](
	pol P,
	out core.Block[T],
	values core.Block[T],
	labels []int,
	ngroups int,
	opts Options,
) error {
	return cumMinMax(pol, out, values, labels, ngroups, opts, false)
}

// Cummax writes the within-group running maximum of every cell.
func Cummax[T core.Real, P na.Policy[T]](
	pol P,
	out core.Block[T],
	values core.Block[T],
	labels []int,
	ngroups int,
	opts Options,
) error {
	return cumMinMax(pol, out, values, labels, ngroups, opts, true)
}

// cumMinMax is the fused running-extremum kernel behind Cummin/Cummax.
//
// Each (group, column) cell carries two pieces of state: the running
// extremum, seeded with the element family's extreme sentinel, and a
// seen-NA latch. The latch has exactly two states — clean and seen-NA —
// and the transition is one-way: under SkipNA=false, the first missing
// cell flips it, and from then on every row of that cell emits NA
// regardless of input. Under SkipNA=true the latch never engages and
// missing cells only emit NA at their own row.
//
// NA propagation is written to the output side only (result-mask bit or
// in-band representation); the caller's input mask is never mutated.
func cumMinMax[T core.Real, P na.Policy[T]](
	pol P,
	out core.Block[T],
	values core.Block[T],
	labels []int,
	ngroups int,
	opts Options,
	computeMax bool,
) error {
	if err := validateScan(out, values, labels, ngroups, opts); err != nil {
		return errScan(err)
	}
	seed, err := core.ExtremeOf[T](computeMax)
	if err != nil {
		return errScan(err)
	}

	k := values.Cols
	acc := make([]T, ngroups*k)
	for i := range acc {
		acc[i] = seed
	}
	seenNA := make([]bool, ngroups*k)

	var (
		lab, base, gbase, flat int
		v                      T
	)
	for i := 0; i < values.Rows; i++ {
		lab = labels[i]
		if lab < 0 {
			continue
		}
		base = i * k
		gbase = lab * k
		for j := 0; j < k; j++ {
			flat = base + j

			// Latched: every subsequent output of this cell is NA.
			if !opts.SkipNA && seenNA[gbase+j] {
				if err = setRowNA(pol, out, opts.ResultMask, flat); err != nil {
					return errScan(err)
				}
				continue
			}

			v = values.Data[flat]
			if cellNA(pol, opts.Mask, flat, v) {
				seenNA[gbase+j] = true
				if err = setRowNA(pol, out, opts.ResultMask, flat); err != nil {
					return errScan(err)
				}
				continue
			}

			if computeMax {
				if v > acc[gbase+j] {
					acc[gbase+j] = v
				}
			} else if v < acc[gbase+j] {
				acc[gbase+j] = v
			}
			out.Data[flat] = acc[gbase+j]
		}
	}

	return nil
}
