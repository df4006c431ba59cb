// SPDX-License-Identifier: MIT
// Package na: Welford online mean / M2 recurrence.

package na

import (
	"math"

	"github.com/katalvlaran/lvlagg/core"
)

// Welford accumulates a running mean and sum of squared deviations (M2)
// in a single pass:
//
//	n ← n + 1
//	δ = v − mean
//	mean += δ/n
//	M2 += δ·(v − mean)
//
// The zero value is an empty accumulator.
type Welford[T core.Float] struct {
	mean T
	m2   T
	n    int64
}

// Add folds one observation into the accumulator.
func (w *Welford[T]) Add(v T) {
	w.n++
	delta := v - w.mean
	w.mean += delta / T(w.n)
	w.m2 += delta * (v - w.mean)
}

// Count returns the number of observations folded in so far.
func (w *Welford[T]) Count() int64 { return w.n }

// Mean returns the running mean (zero when empty).
func (w *Welford[T]) Mean() T { return w.mean }

// Variance returns M2/(n − ddof), or NaN when n ≤ ddof.
func (w *Welford[T]) Variance(ddof int64) T {
	if w.n <= ddof {
		return T(math.NaN())
	}

	return w.m2 / T(w.n-ddof)
}
