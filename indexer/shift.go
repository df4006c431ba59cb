// SPDX-License-Identifier: MIT
// Package indexer: within-group shift.

package indexer

import (
	"fmt"

	"github.com/katalvlaran/lvlagg/core"
)

// Shift fills out[i] with the input position whose value lands at row i
// after shifting every group by periods rows: positive periods shift
// forward (row i sees the value periods rows earlier in its group),
// negative periods shift backward. Positions with no source row — the
// first |periods| rows of each group for a forward shift, the last for
// a backward one — and rows with label -1 map to -1. A zero shift is
// the identity (outside the NA group).
//
// The walk proceeds in the signed direction and keeps, per group, a
// ring buffer of the last |periods| row positions plus a seen counter:
// once a group has seen more than |periods| rows, the slot about to be
// overwritten holds exactly the row |periods| steps back.
//
// Complexity: O(N + G·|periods|) time and scratch.
func Shift(out []int, labels []int, ngroups, periods int) error {
	if len(out) != len(labels) {
		return fmt.Errorf("indexer: %w", core.ErrLengthMismatch)
	}
	if ngroups < 0 {
		return fmt.Errorf("indexer: %w", core.ErrInvalidArgument)
	}

	n := len(labels)
	if periods == 0 {
		for i := 0; i < n; i++ {
			if labels[i] < 0 {
				out[i] = -1
			} else {
				out[i] = i
			}
		}

		return nil
	}

	start, end, step := 0, n, 1
	absPeriods := periods
	if periods < 0 {
		start, end, step = n-1, -1, -1
		absPeriods = -periods
	}

	seen := make([]int, ngroups)
	ring := make([]int, ngroups*absPeriods)

	var lab, slot int
	for ii := start; ii != end; ii += step {
		lab = labels[ii]
		if lab < 0 {
			out[ii] = -1
			continue
		}
		seen[lab]++
		slot = lab*absPeriods + seen[lab]%absPeriods
		if seen[lab] > absPeriods {
			out[ii] = ring[slot]
		} else {
			out[ii] = -1
		}
		ring[slot] = ii
	}

	return nil
}
