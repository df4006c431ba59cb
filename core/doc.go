// Package core defines the columnar data model shared by every lvlagg
// kernel package, together with the unified error taxonomy and the numeric
// constraint sets the kernels are instantiated over.
//
// The model is deliberately small:
//
//   - Block[T]  — a dense, row-major 2-D buffer of N×K values. Row index is
//     the observation; column index is an independent series aggregated in
//     parallel. Backed by a flat slice for cache friendliness, exactly like
//     a Dense matrix.
//   - Labels    — a 1-D signed vector of length N assigning each row to a
//     group in [0, ngroups); label -1 marks the "NA group", excluded from
//     all aggregation.
//   - Bools     — Block[bool], used both as an input validity mask
//     (true = the cell is missing regardless of its bit pattern) and as an
//     output result mask (true = the output cell is NA). The zero value
//     means "absent".
//
// Missing-value representations are per element family:
//
//   - int64   — the NaT sentinel (math.MinInt64), shared with datetime-like
//     data.
//   - uint64  — none. Kernels that must emit NA for a uint64 cell require a
//     result mask and fail with ErrEmptyGroupUnsigned otherwise.
//   - float32/float64 — IEEE NaN.
//   - complex64/complex128 — NaN in either component.
//   - object (any) — the caller decides, via a null-check hook.
//
// All buffers are caller-owned and preallocated; kernels never retain
// references after return.
//
// Errors:
//
//	ErrLengthMismatch     - values rows != len(labels).
//	ErrShapeMismatch      - mask/out/result-mask shape incompatible.
//	ErrInvalidArgument    - scalar parameter outside its domain.
//	ErrEmptyGroupUnsigned - uint64 NA needed without a result mask.
//	ErrUnsupportedType    - element family outside the kernel's set.
package core
