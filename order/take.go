// SPDX-License-Identifier: MIT
// Package order: gather by indices.

package order

import "github.com/katalvlaran/lvlagg/core"

// Take gathers src elements into dst following idx: dst[pos] = src[idx[pos]].
// dst and idx must have equal length; every index must be a valid src
// offset (callers drop -1 sentinels before gathering).
// Returns core.ErrLengthMismatch or core.ErrInvalidArgument.
func Take[T any](dst, src []T, idx []int) error {
	if len(dst) != len(idx) {
		return core.ErrLengthMismatch
	}
	for pos, i := range idx {
		if i < 0 || i >= len(src) {
			return core.ErrInvalidArgument
		}
		dst[pos] = src[i]
	}

	return nil
}
