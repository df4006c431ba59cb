// Package lvlagg is a library of group-wise aggregation kernels: dense,
// typed batch primitives that consume a row-partitioned columnar dataset
// and produce per-group reductions, per-row cumulative transforms, and
// group-local rank/shift/fill operations.
//
// 🚀 What is lvlagg?
//
//	A numerically careful, NA-aware kernel set over a minimal columnar
//	model (an N×K value block + a length-N group label vector):
//
//	  • Reductions: sum, product, mean, variance, min/max, first/nth/last,
//	    OHLC, median, interpolated quantiles, Kleene any/all
//	  • Scans: cumulative sum, product, min, max — within-group, in row order
//	  • Utilities: shift indexer, forward/backward fill indexer, rank
//
// ✨ Why choose lvlagg?
//
//   - Numerically careful — Kahan-compensated sums, Welford variance
//   - NA-aware            — per-family missing-value policies, validity
//     and result masks, min-count thresholds
//   - Predictable         — caller-owned buffers, sentinel errors, no
//     partial writes on validation failure
//   - Pure Go             — generic kernels, no cgo, no reflection in
//     inner loops
//
// Everything is organized under small, focused packages:
//
//	core/    — columnar Block, label conventions, error taxonomy, NaT
//	na/      — missingness policies, Kahan & Welford accumulators
//	reduce/  — the reducer kernels
//	scan/    — the cumulative kernels
//	indexer/ — group-local shift and fillna index vectors
//	order/   — selection, label sort, gather, 1-D rank
//	rank/    — group-aware rank over blocks
//	cmd/     — the lvlagg CSV aggregation CLI
//
// Dive into DESIGN.md for the design ledger and per-kernel notes.
//
//	go get github.com/katalvlaran/lvlagg
package lvlagg
