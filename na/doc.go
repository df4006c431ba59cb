// Package na is the single source of truth for missingness in lvlagg.
//
// Every kernel asks the same two questions about an element type T:
//
//  1. is this cell missing?   — Policy.IsNA, unless an external validity
//     mask overrides it;
//  2. how do I write "missing" into an output cell of type T? —
//     Policy.NA, which may report that T has no in-band representation
//     at all (uint64), in which case the kernel falls back to a result
//     mask or fails.
//
// Policies are small value types. The numeric ones are zero-size, so a
// kernel instantiated with, say, Float[float64] compiles down to the
// direct `v != v` test with no indirection in the inner loop.
//
// The package also carries the two numerically careful accumulators the
// kernels share:
//
//   - Kahan — compensated running sum. The final sum differs from the
//     exact sum by at most 2·ε·Σ|v| under round-to-nearest, independent
//     of the number of terms.
//   - Welford — online mean/M2 recurrence for single-pass variance.
package na
