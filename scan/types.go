// SPDX-License-Identifier: MIT
// Package scan: configuration surface and sentinel wrapping.

package scan

import (
	"fmt"

	"github.com/katalvlaran/lvlagg/core"
)

// Options configures the cumulative kernels.
//
//	SkipNA     - when true (default), missing cells emit NA at their own
//	             row but leave the running state untouched; when false,
//	             the first missing cell poisons its (group, column) state
//	             and every later row of that cell is NA.
//	Mask       - optional N×K validity mask (true = missing). Read-only:
//	             scans never write into the caller's mask.
//	ResultMask - optional N×K output mask; when present, NA output cells
//	             set a mask bit instead of an in-band representation.
type Options struct {
	SkipNA     bool
	Mask       core.Bools
	ResultMask core.Bools
}

// DefaultOptions returns the skip-missing configuration with no masks.
func DefaultOptions() Options {
	return Options{SkipNA: true}
}

// errScan wraps a core sentinel with the package prefix at the boundary.
func errScan(err error) error {
	return fmt.Errorf("scan: %w", err)
}

// validateScan runs the shared entry checks of every scan: out mirrors
// the value block row for row, labels align, masks match. Returns nil
// only if no buffer needs to be touched on failure.
func validateScan[T any](
	out core.Block[T],
	values core.Block[T],
	labels []int,
	ngroups int,
	opts Options,
) error {
	if err := core.ValidateAligned(values.Rows, labels, ngroups); err != nil {
		return err
	}
	if err := core.ValidateShape(out, values.Rows, values.Cols); err != nil {
		return err
	}
	if len(values.Data) != values.Rows*values.Cols {
		return core.ErrShapeMismatch
	}
	if err := core.ValidateMask(opts.Mask, values.Rows, values.Cols); err != nil {
		return err
	}

	return core.ValidateMask(opts.ResultMask, values.Rows, values.Cols)
}
