// Package indexer computes group-local index vectors: which input row
// should appear at each position after a within-group shift (Shift), and
// which row a missing position should copy from under forward/backward
// fill (Fillna).
//
// Both kernels produce indices, not values: out[i] is a row offset into
// the original input, or -1 where no source row exists. The caller
// gathers values afterwards (order.Take), which keeps the kernels
// element-type agnostic.
//
// Shift respects the "NA group": rows with label -1 always map to -1.
// Fillna walks a stable label argsort supplied by the caller
// (order.LabelSort for forward fill; reverse the permutation for
// backward fill) and honors a consecutive-fill limit.
package indexer
