// SPDX-License-Identifier: MIT
// Package reduce: configuration surface and sentinel wrapping.
// This file declares the shared reducer Options, the kernel-specific
// option structs, the interpolation and any/all tags, and the boundary
// error wrapper. All sentinels live in package core; reduce wraps them
// with its own prefix so callers can still match via errors.Is.

package reduce

import (
	"fmt"

	"github.com/katalvlaran/lvlagg/core"
)

// MinCountUnset is the "not supplied" sentinel for Options.MinCount.
// Kernels with a fixed observation threshold (mean, var, ohlc, median,
// quantile) reject any other value.
const MinCountUnset int64 = -1

// Options configures the reducer kernels.
//
//	MinCount   - minimum non-NA contributions per output cell; below it
//	             the cell is rewritten to NA. Sum/Prod treat unset as 0
//	             (an empty group sums to zero); First/Last/Nth/Min/Max
//	             coerce the threshold to at least 1.
//	Mask       - optional N×K validity mask (true = the input cell is
//	             missing, regardless of its bit pattern).
//	ResultMask - optional G×K output mask; when present, NA output cells
//	             set a mask bit instead of an in-band representation.
type Options struct {
	MinCount   int64
	Mask       core.Bools
	ResultMask core.Bools
}

// DefaultOptions returns Options with no masks and MinCount unset.
func DefaultOptions() Options {
	return Options{MinCount: MinCountUnset}
}

// VarOptions configures Var.
//
//	DDof - delta degrees of freedom; groups with ≤ DDof observations
//	       produce NaN. Default 1 (sample variance).
type VarOptions struct {
	Options
	DDof int64
}

// DefaultVarOptions returns sample-variance defaults (DDof = 1).
func DefaultVarOptions() VarOptions {
	return VarOptions{Options: DefaultOptions(), DDof: 1}
}

// NthOptions configures Nth.
//
//	Rank - 1-based index of the non-NA observation to record. The cell
//	       freezes on the Rank-th non-NA value; later values never
//	       overwrite it.
type NthOptions struct {
	Options
	Rank int64
}

// DefaultNthOptions returns first-observation defaults (Rank = 1).
func DefaultNthOptions() NthOptions {
	return NthOptions{Options: DefaultOptions(), Rank: 1}
}

// Interpolation selects how Quantile resolves a probability that falls
// between two order statistics.
type Interpolation uint8

const (
	// InterpLinear interpolates v + (v'−v)·frac.
	InterpLinear Interpolation = iota

	// InterpLower takes the lower order statistic.
	InterpLower

	// InterpHigher takes the higher order statistic.
	InterpHigher

	// InterpNearest takes whichever statistic is closer (ties broken
	// toward the higher one for q > 0.5).
	InterpNearest

	// InterpMidpoint averages the two statistics.
	InterpMidpoint
)

// QuantileOptions configures Quantile.
//
//	Qs            - probabilities in [0,1], one output column per entry.
//	Interpolation - one of the five interpolation tags.
//	Mask          - optional per-row validity mask (true = missing).
//	ResultMask    - optional G×|Qs| output mask.
type QuantileOptions struct {
	Qs            []float64
	Interpolation Interpolation
	Mask          []bool
	ResultMask    core.Bools
}

// DefaultQuantileOptions returns a linear-interpolation median request.
func DefaultQuantileOptions() QuantileOptions {
	return QuantileOptions{Qs: []float64{0.5}, Interpolation: InterpLinear}
}

// ValTest selects the truth reduction AnyAll applies.
type ValTest uint8

const (
	// TestAny reports whether the group contains a true value.
	TestAny ValTest = iota

	// TestAll reports whether the group contains only true values.
	TestAll
)

// AnyAllOptions configures AnyAll.
//
//	ValTest  - TestAny or TestAll.
//	SkipNA   - ignore missing cells entirely.
//	Nullable - enable Kleene logic: a masked cell leaves -1 (unknown) in
//	           cells where no decisive value has been seen.
//	Mask     - N×K validity mask (true = missing). Required when either
//	           SkipNA or Nullable needs to see missingness.
type AnyAllOptions struct {
	ValTest  ValTest
	SkipNA   bool
	Nullable bool
	Mask     core.Bools
}

// DefaultAnyAllOptions returns an "any, skip missing" configuration.
func DefaultAnyAllOptions() AnyAllOptions {
	return AnyAllOptions{ValTest: TestAny, SkipNA: true}
}

// errReduce wraps a core sentinel with the package prefix at the
// boundary. Callers match the sentinel through errors.Is.
func errReduce(err error) error {
	return fmt.Errorf("reduce: %w", err)
}
