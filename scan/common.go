// SPDX-License-Identifier: MIT
// Package scan: shared inner-loop helpers.

package scan

import (
	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/na"
)

// cellNA reports whether input cell flat offset is missing: the external
// mask wins when present, otherwise the policy's value test decides.
func cellNA[T any, P na.Policy[T]](pol P, mask core.Bools, flat int, v T) bool {
	if !mask.IsEmpty() {
		return mask.Data[flat]
	}

	return pol.IsNA(v)
}

// setRowNA writes the NA representation into output row cell flat
// offset: a result-mask bit when one is supplied, the policy's in-band
// representation otherwise. Element families without one (uint64) need
// the result mask and fail with core.ErrEmptyGroupUnsigned.
func setRowNA[T any, P na.Policy[T]](pol P, out core.Block[T], rm core.Bools, flat int) error {
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
