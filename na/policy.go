// SPDX-License-Identifier: MIT
// Package na: per-family missingness policies.
// Each element family answers "is this missing?" and "what does missing
// look like on output?" in its own way; kernels are generic over both.

package na

import (
	"math"

	"github.com/katalvlaran/lvlagg/core"
)

// Policy decides missingness for element type T.
//
// IsNA reports whether an input cell is missing by its value alone; an
// external validity mask, when present, takes precedence and is consulted
// by the kernel, not the policy.
//
// NA returns the output representation of a missing cell. ok=false means
// T has no in-band representation (uint64): the kernel must set a result
// mask bit instead, or fail with core.ErrEmptyGroupUnsigned.
type Policy[T any] interface {
	IsNA(v T) bool
	NA() (T, bool)
}

// Float treats IEEE NaN as missing, via the self-inequality test.
type Float[T core.Float] struct{}

// IsNA reports v != v, true exactly for NaN.
func (Float[T]) IsNA(v T) bool { return v != v }

// NA returns NaN.
func (Float[T]) NA() (T, bool) { return T(math.NaN()), true }

// Complex treats a value with NaN in either component as missing.
type Complex[T core.Complex] struct{}

// IsNA reports v != v; complex equality compares both components, so the
// test is true when the real or imaginary part is NaN.
func (Complex[T]) IsNA(v T) bool { return v != v }

// NA returns NaN+NaN·i.
func (Complex[T]) NA() (T, bool) {
	return T(complex(math.NaN(), math.NaN())), true
}

// Int64 carries the datetime-like flag: only datetime-like callers treat
// the NaT sentinel as missing on input. On output NaT is always the
// representation, since int64 has no other spare bit pattern.
type Int64 struct {
	DatetimeLike bool
}

// IsNA reports v == NaT, but only for datetime-like data; a plain int64
// column has no missing values.
func (p Int64) IsNA(v int64) bool { return p.DatetimeLike && v == core.NaT }

// NA returns the NaT sentinel.
func (Int64) NA() (int64, bool) { return core.NaT, true }

// Uint64 never has missing input values and has no output representation:
// every bit pattern is a valid count.
type Uint64 struct{}

// IsNA always reports false.
func (Uint64) IsNA(uint64) bool { return false }

// NA reports ok=false: the caller needs a result mask.
func (Uint64) NA() (uint64, bool) { return 0, false }

// Object delegates the null test to the caller. A nil IsNull treats only
// untyped nil as missing.
type Object struct {
	IsNull func(v any) bool
}

// IsNA applies the caller's null check.
func (p Object) IsNA(v any) bool {
	if p.IsNull != nil {
		return p.IsNull(v)
	}

	return v == nil
}

// NA returns nil.
func (Object) NA() (any, bool) { return nil, true }
