// Package reduce implements the group-wise reduction kernels of lvlagg:
// sum, product, mean, variance, extrema, positional selectors
// (first/nth/last), OHLC, median, interpolated quantiles, and Kleene
// any/all.
//
// # Data flow
//
// Every reducer consumes the shared columnar model of package core: an
// N×K value block, a length-N label vector with entries in
// {-1} ∪ [0, G), an optional N×K validity mask, and caller-preallocated
// outputs — a G×K (G×4 for OHLC, G×|qs| for Quantile) block, a length-G
// counts vector, and an optional result mask. Kernels run in two phases:
//
//  1. Accumulate — one row-major streaming pass; the column loop sits
//     inside the row loop to match the row-major storage. Rows with
//     label -1 contribute nothing; counts[g] tallies every row of group
//     g, all-NA rows included.
//  2. Finalize — per (group, column) cell: below the kernel's
//     observation threshold the cell becomes NA (result-mask bit when
//     one is supplied, the element family's in-band representation
//     otherwise), else the finished aggregate is written.
//
// # Observation thresholds
//
//   - Sum, Prod          — MinCount as passed (unset → 0).
//   - First, Nth, Last,
//     Min, Max           — max(MinCount, 1).
//   - Mean, Var, OHLC,
//     Median, Quantile   — fixed (≥1 non-NA; Var needs > DDof);
//     MinCount must stay unset.
//
// Raising MinCount can only turn finite cells into NA, never the
// reverse.
//
// # Numerical care
//
// Sum and Mean carry Kahan compensation; Var uses the Welford online
// recurrence. Reducers make no ordering promise within a group beyond
// what the kernel defines (first/nth/last observe ascending row index).
//
// # Failure semantics
//
// All errors surface synchronously: validation failures before any
// write, and core.ErrEmptyGroupUnsigned — a uint64 cell that needs NA
// with no result mask — from the finalize pass, after which outputs are
// undefined. Sentinels are wrapped with the "reduce:" prefix and match
// through errors.Is.
package reduce
