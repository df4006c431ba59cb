// SPDX-License-Identifier: MIT
// Package reduce: truth reductions with Kleene semantics.

package reduce

import "github.com/katalvlaran/lvlagg/core"

// AnyAll reduces int8 truth values (0/1) per group and column.
//
// The output convention is int8 {0, 1, -1}: -1 appears only under
// opts.Nullable, when Kleene three-valued logic leaves a cell
// undetermined — at least one masked cell seen, no decisive value.
//
// Every cell starts at 1−flag, where flag is 1 for TestAny and 0 for
// TestAll; the flag value is absorbing. Per input cell:
//
//   - SkipNA and masked        → ignored;
//   - Nullable and masked      → an unconcluded cell flips to -1;
//   - value equals flag        → the cell locks at flag.
//
// Rows with label -1 contribute nothing.
func AnyAll(
	out core.Block[int8],
	values core.Block[int8],
	labels []int,
	opts AnyAllOptions,
) error {
	if opts.ValTest > TestAll {
		return errReduce(core.ErrInvalidArgument)
	}
	if err := core.ValidateAligned(values.Rows, labels, out.Rows); err != nil {
		return errReduce(err)
	}
	if out.Cols != values.Cols || len(out.Data) != out.Rows*out.Cols {
		return errReduce(core.ErrShapeMismatch)
	}
	if len(values.Data) != values.Rows*values.Cols {
		return errReduce(core.ErrShapeMismatch)
	}
	if err := core.ValidateMask(opts.Mask, values.Rows, values.Cols); err != nil {
		return errReduce(err)
	}

	var flag int8
	if opts.ValTest == TestAny {
		flag = 1
	}
	for i := range out.Data {
		out.Data[i] = 1 - flag
	}

	k := values.Cols
	hasMask := !opts.Mask.IsEmpty()

	var (
		lab, base, gbase, flat int
		masked                 bool
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
			masked = hasMask && opts.Mask.Data[flat]

			switch {
			case opts.SkipNA && masked:
				// ignored entirely
			case opts.Nullable && masked:
				if out.Data[gbase+j] != flag {
					out.Data[gbase+j] = -1 // unknown, pending a decisive value
				}
			case values.Data[flat] == flag:
				out.Data[gbase+j] = flag // absorbing
			}
		}
	}

	return nil
}
