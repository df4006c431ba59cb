// Package scan implements the group-wise cumulative kernels of lvlagg:
// running sum, product, minimum and maximum.
//
// Unlike the reducers, scans emit one output row per input row: out is
// N×K and out[i,j] depends only on rows i' ≤ i with labels[i'] equal to
// labels[i]. Input rows may be shuffled arbitrarily across groups; the
// within-group order is always the original row order. Rows with label
// -1 are skipped and their output rows left untouched.
//
// Missing-cell behavior is governed by Options.SkipNA:
//
//   - SkipNA=true (default): a missing cell emits NA at its own row and
//     the running state is unaffected — later rows resume from the last
//     real value.
//   - SkipNA=false: the first missing cell poisons its (group, column)
//     state permanently. Cumsum and Cumprod additionally break out of
//     that row's column loop, leaving the row's remaining columns
//     untouched — an observable short-circuit kept for compatibility.
//     Cummin and Cummax latch per cell without the short-circuit.
//
// Cumsum carries Kahan compensation for floating and complex element
// types; for integers the same recurrence is exact. The caller's input
// mask is read-only in every scan; NA output goes to the result mask or
// the in-band representation.
package scan
