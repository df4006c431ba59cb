// SPDX-License-Identifier: MIT
// Package reduce: open/high/low/close over a single series.

package reduce

import (
	"math"

	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/na"
)

// Column offsets of the OHLC output block.
const (
	ohlcOpen = iota
	ohlcHigh
	ohlcLow
	ohlcClose
	ohlcWidth
)

// OHLC reduces each group of a single series to its open/high/low/close:
// the first non-NA value, the running maximum and minimum, and the most
// recent non-NA value. out must be G×4; values must be N×1 (the kernel
// handles exactly one series — core.ErrInvalidArgument otherwise).
//
// counts[g] tallies every row of group g, all-NA rows included. Groups
// with no non-NA entries stay NaN across all four columns (or set the
// result mask). opts.MinCount must stay unset.
func OHLC[T core.Float](
	out core.Block[T],
	counts []int64,
	values core.Block[T],
	labels []int,
	opts Options,
) error {
	var pol na.Float[T]
	if values.Cols != 1 || out.Cols != ohlcWidth {
		return errReduce(core.ErrInvalidArgument)
	}
	if err := core.ValidateAligned(values.Rows, labels, out.Rows); err != nil {
		return errReduce(err)
	}
	if len(counts) != out.Rows || len(out.Data) != out.Rows*ohlcWidth {
		return errReduce(core.ErrLengthMismatch)
	}
	if err := core.ValidateMask(opts.Mask, values.Rows, 1); err != nil {
		return errReduce(err)
	}
	if err := core.ValidateMask(opts.ResultMask, out.Rows, ohlcWidth); err != nil {
		return errReduce(err)
	}
	if opts.MinCount != MinCountUnset {
		return errReduce(core.ErrInvalidArgument)
	}

	ngroups := out.Rows
	nan := T(math.NaN())
	for i := range out.Data {
		out.Data[i] = nan
	}
	seen := make([]bool, ngroups)

	var (
		lab, gbase int
		v          T
	)
	for i := 0; i < values.Rows; i++ {
		lab = labels[i]
		if lab < 0 {
			continue
		}
		counts[lab]++
		v = values.Data[i]
		if cellNA(pol, opts.Mask, i, v) {
			continue
		}
		gbase = lab * ohlcWidth
		if !seen[lab] {
			seen[lab] = true
			out.Data[gbase+ohlcOpen] = v
			out.Data[gbase+ohlcHigh] = v
			out.Data[gbase+ohlcLow] = v
			out.Data[gbase+ohlcClose] = v
			continue
		}
		if v > out.Data[gbase+ohlcHigh] {
			out.Data[gbase+ohlcHigh] = v
		}
		if v < out.Data[gbase+ohlcLow] {
			out.Data[gbase+ohlcLow] = v
		}
		out.Data[gbase+ohlcClose] = v
	}

	if !opts.ResultMask.IsEmpty() {
		for g := 0; g < ngroups; g++ {
			if seen[g] {
				continue
			}
			gbase = g * ohlcWidth
			for c := 0; c < ohlcWidth; c++ {
				opts.ResultMask.Data[gbase+c] = true
			}
		}
	}

	return nil
}
