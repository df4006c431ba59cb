// SPDX-License-Identifier: MIT
// Package order: in-place partial selection.

package order

import "github.com/katalvlaran/lvlagg/core"

// KthSmallest returns the k-th smallest element of a (0-based k),
// partially sorting a in place around that order statistic.
//
// Classic Hoare selection: repeatedly partition the window [l, m] around
// the element currently at index k until the window shrinks onto k. Average O(n) time,
// O(1) extra memory. The caller owns a and must expect it reordered.
//
// Preconditions (not checked): len(a) > 0 and 0 ≤ k < len(a).
func KthSmallest[T core.Real](a []T, k int) T {
	l, m := 0, len(a)-1

	for l < m {
		x := a[k]
		i, j := l, m

		for {
			for a[i] < x {
				i++
			}
			for x < a[j] {
				j--
			}
			if i <= j {
				a[i], a[j] = a[j], a[i]
				i++
				j--
			}
			if i > j {
				break
			}
		}

		if j < k {
			l = i
		}
		if k < i {
			m = j
		}
	}

	return a[k]
}
