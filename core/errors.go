// SPDX-License-Identifier: MIT
// Package core: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors shared by every
// kernel package. All kernels MUST return these sentinels (possibly wrapped
// with their own package prefix) and tests MUST check them via errors.Is.
// No kernel panics on user-triggered error conditions.

package core

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "core: ..." for consistency and to allow
// easy grepping across logs. Kernel packages wrap these sentinels with
// fmt.Errorf("reduce: %w", ErrX) at their boundary — callers still match
// with errors.Is.

var (
	// ErrLengthMismatch indicates the row count of the value block disagrees
	// with the length of the label vector. Raised before any write.
	ErrLengthMismatch = errors.New("core: values/labels length mismatch")

	// ErrShapeMismatch indicates an auxiliary buffer (mask, result mask,
	// output block) has dimensions incompatible with the value block.
	ErrShapeMismatch = errors.New("core: incompatible buffer shape")

	// ErrInvalidArgument indicates a kernel-specific scalar is out of its
	// documented domain: an unknown interpolation or ties tag, a quantile
	// probability outside [0,1], a negative group count, a min-count passed
	// to a kernel that fixes its own threshold.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrEmptyGroupUnsigned indicates a reducer output cell required a
	// missing-value representation, the element type is uint64 (which has
	// none), and no result mask was supplied. Detected at finalize time;
	// outputs are undefined after this error.
	ErrEmptyGroupUnsigned = errors.New("core: empty group needs NA but uint64 has no NA representation (supply a result mask)")

	// ErrUnsupportedType indicates the element type is outside the kernel's
	// admitted family (e.g. product over integers).
	ErrUnsupportedType = errors.New("core: unsupported element type for kernel")
)
