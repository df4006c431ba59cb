// Package rank computes within-group ranks over a columnar block,
// column by column.
//
// The heavy lifting — ordering, tie resolution, NA placement — lives in
// order.Rank1D; this package's contract is the per-column walk: slice
// each column out of the row-major block, rank it with group awareness,
// and copy the result into the matching output column.
//
// Options are order.RankOptions: ties method (average, min, max, first,
// dense), sort direction, percentage scaling, and NA placement (keep,
// top, bottom). Missing values come from the element family's policy or
// an explicit validity mask; datetime-like int64 columns use
// na.Int64{DatetimeLike: true}.
package rank
