// SPDX-License-Identifier: MIT
// Package reduce: the shared reducer skeleton.
// Every reducer is two phases: a row-major accumulation pass (column loop
// inside the row loop, matching the row-major storage), then a per-group
// finalize pass that applies the observation threshold and writes either
// the finished aggregate or the NA representation.

package reduce

import (
	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/na"
)

// validateReduce runs the shared entry checks of every reducer: value
// rows align with labels, counts aligns with the output's group rows,
// column counts agree, and optional masks match their sides. It returns
// the group count (out.Rows). No write happens before these checks.
func validateReduce[T, O any](
	out core.Block[O],
	counts []int64,
	values core.Block[T],
	labels []int,
	opts Options,
) (int, error) {
	if err := core.ValidateAligned(values.Rows, labels, out.Rows); err != nil {
		return 0, err
	}
	if len(counts) != out.Rows {
		return 0, core.ErrLengthMismatch
	}
	if out.Cols != values.Cols || len(out.Data) != out.Rows*out.Cols {
		return 0, core.ErrShapeMismatch
	}
	if len(values.Data) != values.Rows*values.Cols {
		return 0, core.ErrShapeMismatch
	}
	if err := core.ValidateMask(opts.Mask, values.Rows, values.Cols); err != nil {
		return 0, err
	}
	if err := core.ValidateMask(opts.ResultMask, out.Rows, out.Cols); err != nil {
		return 0, err
	}

	return out.Rows, nil
}

// cellNA reports whether input cell flat offset is missing: the external
// mask wins when present, otherwise the policy's value test decides.
func cellNA[T any, P na.Policy[T]](pol P, mask core.Bools, flat int, v T) bool {
	if !mask.IsEmpty() {
		return mask.Data[flat]
	}

	return pol.IsNA(v)
}

// setNA writes the NA representation into output cell flat offset. With
// a result mask the bit is set and the value cell is left alone; without
// one the policy's in-band representation is used. When the element type
// has none (uint64) the finalize pass aborts with ErrEmptyGroupUnsigned
// and outputs are undefined.
func setNA[T any, P na.Policy[T]](pol P, out core.Block[T], rm core.Bools, flat int) error {
	if !rm.IsEmpty() {
		rm.Data[flat] = true

		return nil
	}
	v, ok := pol.NA()
	if !ok {
		return core.ErrEmptyGroupUnsigned
	}
	out.Data[flat] = v

	return nil
}

// minCountOrZero resolves the Sum/Prod threshold: unset means zero, so
// an empty group keeps its identity value.
func minCountOrZero(mc int64) int64 {
	if mc < 0 {
		return 0
	}

	return mc
}

// minCountAtLeastOne resolves the First/Last/Nth/Min/Max threshold:
// whatever the caller passed, at least one observation is required.
func minCountAtLeastOne(mc int64) int64 {
	if mc < 1 {
		return 1
	}

	return mc
}
