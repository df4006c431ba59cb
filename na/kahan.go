// SPDX-License-Identifier: MIT
// Package na: Kahan compensated summation.

package na

import "github.com/katalvlaran/lvlagg/core"

// Kahan is a compensated running sum. For floating and complex types
// the compensation term captures the low-order bits lost by each
// addition and feeds them back into the next one, keeping the total
// round-off bounded by 2·ε·Σ|v| regardless of the number of terms. For
// integer types the arithmetic is exact and the compensation is
// identically zero, so the same recurrence doubles as a plain sum.
//
// The zero value is an empty sum, ready to use.
type Kahan[T core.Number] struct {
	sum  T
	comp T
}

// Add folds v into the running sum.
//
//	y = v − comp; t = sum + y; comp = (t − sum) − y; sum = t
//
// For complex types the recurrence applies component-wise through the
// ordinary complex arithmetic.
func (k *Kahan[T]) Add(v T) {
	y := v - k.comp
	t := k.sum + y
	k.comp = (t - k.sum) - y
	k.sum = t
}

// Sum returns the compensated total.
func (k *Kahan[T]) Sum() T { return k.sum }

// Reset clears the sum and its compensation.
func (k *Kahan[T]) Reset() {
	var zero T
	k.sum, k.comp = zero, zero
}
