// SPDX-License-Identifier: MIT
// Package reduce: group means and variance.

package reduce

import (
	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/na"
)

// Mean computes per-group, per-column means over floating values, with a
// Kahan-compensated numerator. A group needs at least one non-NA
// observation; empty cells become NaN (or set the result mask).
//
// The observation threshold is fixed: opts.MinCount must stay unset
// (MinCountUnset), anything else is rejected with core.ErrInvalidArgument.
func Mean[T core.Float](
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

	k := values.Cols
	nobs := make([]int64, ngroups*k)
	acc := make([]na.Kahan[T], ngroups*k)

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
			acc[gbase+j].Add(v)
		}
	}

	for g := 0; g < ngroups; g++ {
		gbase = g * k
		for j := 0; j < k; j++ {
			flat = gbase + j
			if nobs[flat] == 0 {
				if err = setNA(pol, out, opts.ResultMask, flat); err != nil {
					return errReduce(err)
				}
				continue
			}
			out.Data[flat] = acc[flat].Sum() / T(nobs[flat])
		}
	}

	return nil
}

// MeanInt64 computes per-group means over int64 data — the datetime-like
// path, where the mean of a group of timestamps is again a timestamp.
// The numerator accumulates exactly in int64 and the finalize divides
// with Go's truncating integer division. Empty cells become NaT (or set
// the result mask). datetimeLike gates the NaT-sentinel missing test on
// input; the output representation is NaT either way.
func MeanInt64(
	out core.Block[int64],
	counts []int64,
	values core.Block[int64],
	labels []int,
	datetimeLike bool,
	opts Options,
) error {
	pol := na.Int64{DatetimeLike: datetimeLike}
	ngroups, err := validateReduce(out, counts, values, labels, opts)
	if err != nil {
		return errReduce(err)
	}
	if opts.MinCount != MinCountUnset {
		return errReduce(core.ErrInvalidArgument)
	}

	k := values.Cols
	nobs := make([]int64, ngroups*k)
	sum := make([]int64, ngroups*k)

	var (
		lab, base, gbase, flat int
		v                      int64
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
			sum[gbase+j] += v
		}
	}

	for g := 0; g < ngroups; g++ {
		gbase = g * k
		for j := 0; j < k; j++ {
			flat = gbase + j
			if nobs[flat] == 0 {
				if err = setNA(pol, out, opts.ResultMask, flat); err != nil {
					return errReduce(err)
				}
				continue
			}
			out.Data[flat] = sum[flat] / nobs[flat]
		}
	}

	return nil
}

// Var computes per-group, per-column variance via the Welford online
// recurrence — one streaming pass, no stored residuals. A cell with
// nobs ≤ DDof observations produces NaN (or sets the result mask).
// opts.MinCount must stay unset.
func Var[T core.Float](
	out core.Block[T],
	counts []int64,
	values core.Block[T],
	labels []int,
	opts VarOptions,
) error {
	var pol na.Float[T]
	ngroups, err := validateReduce(out, counts, values, labels, opts.Options)
	if err != nil {
		return errReduce(err)
	}
	if opts.MinCount != MinCountUnset || opts.DDof < 0 {
		return errReduce(core.ErrInvalidArgument)
	}

	k := values.Cols
	acc := make([]na.Welford[T], ngroups*k)

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
			acc[gbase+j].Add(v)
		}
	}

	for g := 0; g < ngroups; g++ {
		gbase = g * k
		for j := 0; j < k; j++ {
			flat = gbase + j
			if acc[flat].Count() <= opts.DDof {
				if err = setNA(pol, out, opts.ResultMask, flat); err != nil {
					return errReduce(err)
				}
				continue
			}
			out.Data[flat] = acc[flat].Variance(opts.DDof)
		}
	}

	return nil
}
