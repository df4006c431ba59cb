// SPDX-License-Identifier: MIT
// Package reduce: group sums and products.

package reduce

import (
	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/na"
)

// Sum accumulates per-group, per-column sums of values into out.
//
// The accumulator is Kahan-compensated: for floating and complex element
// types the final sum differs from the exact sum by at most 2·ε·Σ|v|
// independent of the group size. For integer types the compensation term
// is identically zero (integer arithmetic is exact), so the same
// recurrence degenerates to a plain sum at no cost.
//
// counts[g] tallies every row with label g, including rows whose cells
// were all missing. The observation threshold is opts.MinCount taken
// as-is (unset → 0): an empty group sums to zero unless the caller
// raises the threshold.
//
// Stage 1 (Validate): shared shape checks, no writes on failure.
// Stage 2 (Accumulate): row-major pass, column loop innermost.
// Stage 3 (Finalize): cells below the threshold become NA (result mask
// bit, or the policy representation; uint64 without a result mask fails
// with core.ErrEmptyGroupUnsigned and leaves outputs undefined).
//
// Complexity: O(N·K) time, O(G·K) scratch.
func Sum[T core.Number, P na.Policy[T]](
	pol P,
	out core.Block[T],
	counts []int64,
	values core.Block[T],
	labels []int,
	opts Options,
) error {
	// Stage 1: validation.
	ngroups, err := validateReduce(out, counts, values, labels, opts)
	if err != nil {
		return errReduce(err)
	}

	k := values.Cols
	nobs := make([]int64, ngroups*k)
	acc := make([]na.Kahan[T], ngroups*k)

	// Stage 2: accumulate.
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

	// Stage 3: finalize under the observation threshold.
	threshold := minCountOrZero(opts.MinCount)
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
			out.Data[flat] = acc[flat].Sum()
		}
	}

	return nil
}

// SumObject accumulates per-group sums of arbitrary values via a
// caller-supplied combiner. The first contribution to a cell is assigned,
// not combined, so non-numeric payloads are never coerced through a zero
// value. No compensation is applied.
//
// add combines two prior contributions; it is only invoked from the
// second contribution on. The missing test comes from pol (typically
// na.Object with the caller's null check); opts.Mask overrides it.
func SumObject(
	pol na.Object,
	add func(acc, v any) any,
	out core.Block[any],
	counts []int64,
	values core.Block[any],
	labels []int,
	opts Options,
) error {
	ngroups, err := validateReduce(out, counts, values, labels, opts)
	if err != nil {
		return errReduce(err)
	}
	if add == nil {
		return errReduce(core.ErrInvalidArgument)
	}

	k := values.Cols
	nobs := make([]int64, ngroups*k)
	acc := make([]any, ngroups*k)

	var (
		lab, base, gbase, flat int
		v                      any
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
			if nobs[gbase+j] == 1 {
				acc[gbase+j] = v // first contribution: assign, don't combine
			} else {
				acc[gbase+j] = add(acc[gbase+j], v)
			}
		}
	}

	threshold := minCountOrZero(opts.MinCount)
	for g := 0; g < ngroups; g++ {
		gbase = g * k
		for j := 0; j < k; j++ {
			flat = gbase + j
			if nobs[flat] < threshold || nobs[flat] == 0 {
				out.Data[flat] = nil
				if !opts.ResultMask.IsEmpty() {
					opts.ResultMask.Data[flat] = true
				}
				continue
			}
			out.Data[flat] = acc[flat]
		}
	}

	return nil
}

// Prod accumulates per-group, per-column products. Floating element
// types only. The running product starts at 1; the observation threshold
// is opts.MinCount taken as-is (unset → 0), so an empty group keeps the
// identity product unless the caller raises the threshold.
func Prod[T core.Float](
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

	k := values.Cols
	nobs := make([]int64, ngroups*k)
	acc := make([]T, ngroups*k)
	for i := range acc {
		acc[i] = 1
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
			acc[gbase+j] *= v
		}
	}

	threshold := minCountOrZero(opts.MinCount)
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
