// SPDX-License-Identifier: MIT
// Package scan: cumulative sums and products.

package scan

import (
	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/na"
)

// Cumsum writes the within-group running sum of every cell: out[i,j] is
// the sum of column j over all rows i' ≤ i sharing labels[i]. Rows may
// be shuffled arbitrarily across groups; the within-group order is the
// row order. Rows with label -1 are skipped and their out row untouched.
//
// The per-(group, column) accumulator is Kahan-compensated; for integer
// element types the compensation is identically zero and the recurrence
// is exact.
//
// Missing cells always emit NA at their own row. Under SkipNA=false the
// first missing cell additionally poisons its (group, column) state —
// every later row of that cell emits NA — and breaks out of the row's
// column loop, leaving the row's remaining columns untouched. This
// short-circuit is observable, documented behavior.
//
// Complexity: O(N·K) time, O(G·K) scratch.
func Cumsum[T core.Number, P na.Policy[T]](
	pol P,
	out core.Block[T],
	values core.Block[T],
	labels []int,
	ngroups int,
	opts Options,
) error {
	if err := validateScan(out, values, labels, ngroups, opts); err != nil {
		return errScan(err)
	}

	k := values.Cols
	acc := make([]na.Kahan[T], ngroups*k)
	var poisoned []bool
	if !opts.SkipNA {
		poisoned = make([]bool, ngroups*k)
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
		base = i * k
		gbase = lab * k
		for j := 0; j < k; j++ {
			flat = base + j
			if poisoned != nil && poisoned[gbase+j] {
				if err := setRowNA(pol, out, opts.ResultMask, flat); err != nil {
					return errScan(err)
				}
				continue
			}
			v = values.Data[flat]
			if cellNA(pol, opts.Mask, flat, v) {
				if err := setRowNA(pol, out, opts.ResultMask, flat); err != nil {
					return errScan(err)
				}
				if !opts.SkipNA {
					poisoned[gbase+j] = true
					break // row's remaining columns stay untouched
				}
				continue
			}
			acc[gbase+j].Add(v)
			out.Data[flat] = acc[gbase+j].Sum()
		}
	}

	return nil
}

// Cumprod writes the within-group running product of every cell.
// Floating element families only; the NA contract matches Cumsum,
// including the SkipNA=false poison-and-break behavior.
func Cumprod[T core.Float](
	out core.Block[T],
	values core.Block[T],
	labels []int,
	ngroups int,
	opts Options,
) error {
	var pol na.Float[T]
	if err := validateScan(out, values, labels, ngroups, opts); err != nil {
		return errScan(err)
	}

	k := values.Cols
	acc := make([]T, ngroups*k)
	for i := range acc {
		acc[i] = 1
	}
	var poisoned []bool
	if !opts.SkipNA {
		poisoned = make([]bool, ngroups*k)
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
		base = i * k
		gbase = lab * k
		for j := 0; j < k; j++ {
			flat = base + j
			if poisoned != nil && poisoned[gbase+j] {
				if err := setRowNA(pol, out, opts.ResultMask, flat); err != nil {
					return errScan(err)
				}
				continue
			}
			v = values.Data[flat]
			if cellNA(pol, opts.Mask, flat, v) {
				if err := setRowNA(pol, out, opts.ResultMask, flat); err != nil {
					return errScan(err)
				}
				if !opts.SkipNA {
					poisoned[gbase+j] = true
					break
				}
				continue
			}
			acc[gbase+j] *= v
			out.Data[flat] = acc[gbase+j]
		}
	}

	return nil
}
