// Package order supplies the ordering collaborators the lvlagg kernels
// lean on: an in-place partial selection (KthSmallest), a stable counting
// sort of group labels (LabelSort), an index gather (Take), and a
// group-aware 1-D rank routine (Rank1D).
//
// These routines own the "sorting" half of the contract between the
// aggregation kernels and their inputs:
//
//   - reduce.Median gathers each group into a contiguous scratch span via
//     LabelSort + Take, then lets KthSmallest partition the span in place;
//   - reduce.Quantile consumes a label-major, value-ascending permutation
//     the caller typically builds on top of LabelSort;
//   - indexer.Fillna walks a LabelSort permutation forwards (ffill) or
//     backwards (bfill);
//   - rank.Rank delegates each column to Rank1D.
//
// Determinism: every routine is single-threaded, uses stable ordering
// where ties matter (Rank1D "first", LabelSort), and never consults
// global state.
package order
