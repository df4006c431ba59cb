// SPDX-License-Identifier: MIT
// Package core: numeric constraint sets and missing-value sentinels.
// This file declares the element-type families every kernel is
// monomorphized over, plus the NaT sentinel for signed-integer data.

package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// NaT is the missing-value sentinel for int64 and datetime-like data:
// the most negative 64-bit integer. It doubles as the output NA
// representation for every signed-integer reducer cell.
const NaT int64 = math.MinInt64

// Float is the native floating-point family.
type Float interface {
	constraints.Float
}

// Complex is the complex family. Arithmetic (+, -, *) is defined;
// ordering is not, so extremum kernels exclude it.
type Complex interface {
	constraints.Complex
}

// Floating covers every family that carries IEEE round-off and therefore
// benefits from Kahan compensation.
type Floating interface {
	constraints.Float | constraints.Complex
}

// Real covers the ordered numeric families: the only ones admitted by
// min/max, median, quantile and rank kernels.
type Real interface {
	constraints.Integer | constraints.Float
}

// Number covers every arithmetic family a sum or scan can run over.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}
