// SPDX-License-Identifier: MIT
// Package core: extremum seed values per element family.

package core

import "math"

// ExtremeOf returns the sentinel a running extremum starts from: the
// value every real observation beats. forMax=true asks for the
// minimum-most seed, forMax=false for the maximum-most one.
//
// The signed-integer bounds are ±I64_MAX, not I64_MIN: the most negative
// value is reserved as the NaT sentinel. Families outside
// {int64, uint64, float32, float64} report ErrUnsupportedType.
func ExtremeOf[T Real](forMax bool) (T, error) {
	var z T
	switch p := any(&z).(type) {
	case *float64:
		if forMax {
			*p = math.Inf(-1)
		} else {
			*p = math.Inf(1)
		}
	case *float32:
		if forMax {
			*p = float32(math.Inf(-1))
		} else {
			*p = float32(math.Inf(1))
		}
	case *int64:
		if forMax {
			*p = -math.MaxInt64
		} else {
			*p = math.MaxInt64
		}
	case *uint64:
		if forMax {
			*p = 0
		} else {
			*p = math.MaxUint64
		}
	default:
		return z, ErrUnsupportedType
	}

	return z, nil
}
